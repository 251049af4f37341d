package controllers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/filaleve/filaleve-web/internal/pkg/session"
	"github.com/filaleve/filaleve-web/internal/pkg/upstream"
	"github.com/filaleve/filaleve-web/internal/pkg/usercontext"
)

var validate = validator.New()

type loginForm struct {
	CPF      string `validate:"required,len=11,numeric"`
	Password string `validate:"required"`
}

type registerForm struct {
	Name     string `validate:"required"`
	CPF      string `validate:"required,len=11,numeric"`
	Password string `validate:"required"`
}

type changePasswordForm struct {
	CurrentPassword string `validate:"required"`
	NewPassword     string `validate:"required,min=8"`
}

// formErrorMessage maps the first validation failure to the pt-BR
// message the forms show.
func formErrorMessage(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return "Dados inválidos. Verifique o formulário."
	}
	switch errs[0].Field() {
	case "CPF":
		return "Por favor, insira um CPF válido (11 dígitos)."
	case "Password", "CurrentPassword":
		return "A senha é obrigatória."
	case "NewPassword":
		return "A nova senha deve ter pelo menos 8 caracteres."
	case "Name":
		return "O nome é obrigatório para o cadastro."
	}
	return "Dados inválidos. Verifique o formulário."
}

// loginFailureMessage turns an upstream login failure into the message
// the form shows. Backend-provided messages are surfaced verbatim.
func loginFailureMessage(err error) string {
	if errors.Is(err, upstream.ErrAuthentication) {
		return "CPF ou senha inválidos."
	}
	if msg := upstream.ErrorMessage(err); msg != "" {
		var ve *upstream.ValidationError
		var ae *upstream.APIError
		if errors.As(err, &ve) || errors.As(err, &ae) {
			return msg
		}
	}
	return "Erro na comunicação com o servidor. Tente novamente."
}

func HandleAuthLogin(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		form := loginForm{
			CPF:      cleanCPF(c.FormValue("cpf")),
			Password: c.FormValue("password"),
		}
		fm := fiber.Map{"type": "error"}

		if err := validate.Struct(form); err != nil {
			fm["message"] = formErrorMessage(err)
			return flash.WithError(c, fm).Redirect("/login")
		}

		user, credential, err := authService.Login(c.Context(), form.CPF, form.Password)
		if err != nil {
			fm["message"] = loginFailureMessage(err)
			return flash.WithError(c, fm).Redirect("/login")
		}

		if err := usercontext.StoreIdentity(c, user, credential); err != nil {
			fm["message"] = "Não foi possível iniciar a sessão. Tente novamente."
			return flash.WithError(c, fm).Redirect("/login")
		}

		target := safeRedirectTarget(c.FormValue("redirect"))
		if target == "" {
			target = "/dashboard"
		}
		return c.Redirect(target, fiber.StatusSeeOther)
	}

	return c.Render("login", renderData(c, "login", fiber.Map{
		"Redirect": safeRedirectTarget(c.Query("redirect")),
	}), "layouts/main")
}

func HandleAuthRegister(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		form := registerForm{
			Name:     c.FormValue("name"),
			CPF:      cleanCPF(c.FormValue("cpf")),
			Password: c.FormValue("password"),
		}
		fm := fiber.Map{"type": "error"}

		if err := validate.Struct(form); err != nil {
			fm["message"] = formErrorMessage(err)
			return flash.WithError(c, fm).Redirect("/register")
		}

		if err := authService.Register(c.Context(), form.Name, form.CPF, form.Password); err != nil {
			fm["message"] = loginFailureMessage(err)
			return flash.WithError(c, fm).Redirect("/register")
		}

		fm = fiber.Map{
			"type":    "success",
			"message": "Cadastro realizado com sucesso! Faça o login.",
		}
		return flash.WithSuccess(c, fm).Redirect("/login")
	}

	return c.Render("register", renderData(c, "register", nil), "layouts/main")
}

func HandleAuthLogout(c *fiber.Ctx) error {
	// Backend invalidation is best-effort; the local session is cleared
	// no matter what.
	authService.Logout(c.Context(), usercontext.Credential(c))

	if err := session.Destroy(c); err != nil {
		fm := fiber.Map{
			"type":    "error",
			"message": "Sessão encerrada.",
		}
		return flash.WithError(c, fm).Redirect("/login")
	}

	fm := fiber.Map{
		"type":    "success",
		"message": "Até logo!",
	}
	return flash.WithSuccess(c, fm).Redirect("/login")
}

func HandleChangePassword(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		form := changePasswordForm{
			CurrentPassword: c.FormValue("current_password"),
			NewPassword:     c.FormValue("new_password"),
		}
		fm := fiber.Map{"type": "error"}

		if err := validate.Struct(form); err != nil {
			fm["message"] = formErrorMessage(err)
			return flash.WithError(c, fm).Redirect("/change-password")
		}

		err := authService.ChangePassword(c.Context(), usercontext.Credential(c), form.CurrentPassword, form.NewPassword)
		if err != nil {
			if errors.Is(err, upstream.ErrAuthentication) {
				fm["message"] = "Senha atual incorreta."
			} else {
				fm["message"] = loginFailureMessage(err)
			}
			return flash.WithError(c, fm).Redirect("/change-password")
		}

		fm = fiber.Map{
			"type":    "success",
			"message": "Senha alterada com sucesso!",
		}
		return flash.WithSuccess(c, fm).Redirect("/dashboard")
	}

	return c.Render("change_password", renderData(c, "change-password", nil), "layouts/main")
}
