package controllers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/filaleve/filaleve-web/internal/pkg/upstream"
)

func TestCleanCPF(t *testing.T) {
	assert.Equal(t, "12345678901", cleanCPF("123.456.789-01"))
	assert.Equal(t, "12345678901", cleanCPF("12345678901"))
	assert.Equal(t, "", cleanCPF("abc"))
	assert.Equal(t, "", cleanCPF(""))
}

func TestSafeRedirectTarget(t *testing.T) {
	assert.Equal(t, "/dashboard", safeRedirectTarget("/dashboard"))
	assert.Equal(t, "/change-password", safeRedirectTarget("/change-password"))

	// Off-site and scheme-relative targets are dropped.
	assert.Equal(t, "", safeRedirectTarget("https://evil.example"))
	assert.Equal(t, "", safeRedirectTarget("//evil.example"))
	assert.Equal(t, "", safeRedirectTarget(""))
}

func TestFormErrorMessage(t *testing.T) {
	cases := []struct {
		name string
		form any
		want string
	}{
		{"short cpf", loginForm{CPF: "123", Password: "x"}, "Por favor, insira um CPF válido (11 dígitos)."},
		{"missing password", loginForm{CPF: "12345678901"}, "A senha é obrigatória."},
		{"missing name", registerForm{CPF: "12345678901", Password: "x"}, "O nome é obrigatório para o cadastro."},
		{"short new password", changePasswordForm{CurrentPassword: "x", NewPassword: "abc"}, "A nova senha deve ter pelo menos 8 caracteres."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate.Struct(tc.form)
			assert.Error(t, err)
			assert.Equal(t, tc.want, formErrorMessage(err))
		})
	}

	assert.Equal(t, "Dados inválidos. Verifique o formulário.", formErrorMessage(errors.New("not a validation error")))
}

func TestLoginFailureMessage(t *testing.T) {
	assert.Equal(t, "CPF ou senha inválidos.",
		loginFailureMessage(upstream.ErrAuthentication))
	assert.Equal(t, "CPF inválido",
		loginFailureMessage(&upstream.ValidationError{Message: "CPF inválido"}))
	assert.Equal(t, "conta bloqueada",
		loginFailureMessage(&upstream.APIError{StatusCode: 403, Message: "conta bloqueada"}))
	assert.Equal(t, "Erro na comunicação com o servidor. Tente novamente.",
		loginFailureMessage(errors.New("dial tcp: connection refused")))
}
