package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := &Client{
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
	}
	return client, srv
}

func TestLoginCapturesCookieCredential(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "12345678901", payload["cpf"])

		http.SetCookie(w, &http.Cookie{Name: "connect.sid", Value: "s%3Aabc123", Path: "/", HttpOnly: true})
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"cpf":"12345678901","name":"Maria","role":"owner","isActive":true}`))
	}))
	defer srv.Close()

	user, credential, err := client.Login(context.Background(), "12345678901", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Maria", user.Name)
	assert.Equal(t, "connect.sid=s%3Aabc123", credential)
}

func TestLoginAcceptsNestedUserEnvelope(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "connect.sid", Value: "tok"})
		w.Write([]byte(`{"user":{"cpf":"12345678901","name":"Maria"},"message":"ok"}`))
	}))
	defer srv.Close()

	user, _, err := client.Login(context.Background(), "12345678901", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Maria", user.Name)
}

func TestUnauthorizedMapsToAuthenticationError(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	var revoked string
	client.SetOnUnauthorized(func(credential string) { revoked = credential })

	_, err := client.Me(context.Background(), "connect.sid=stale")
	assert.ErrorIs(t, err, ErrAuthentication)
	assert.Equal(t, "connect.sid=stale", revoked)
}

func TestBadRequestMapsToValidationError(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"CNPJ inválido"}`))
	}))
	defer srv.Close()

	_, err := client.GetOrganization(context.Background(), "connect.sid=tok", "000")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "CNPJ inválido", vErr.Message)
}

func TestServerErrorMapsToAPIError(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error":"gateway indisponível"}`))
	}))
	defer srv.Close()

	err := client.UpdateSubscriptionStatus(context.Background(), "connect.sid=tok", "sub_1", "INACTIVE")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "gateway indisponível", apiErr.Message)
}

func TestCredentialForwardedAsCookieHeader(t *testing.T) {
	var gotCookie string
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := client.Me(context.Background(), "connect.sid=tok; csrf=x")
	require.NoError(t, err)
	assert.Equal(t, "connect.sid=tok; csrf=x", gotCookie)
}

func TestGetOrganizationDecodesAggregate(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/organizations/12345678000199", r.URL.Path)
		w.Write([]byte(`{
			"cnpj": "12345678000199",
			"name": "Padaria Central",
			"subscription": [{"id": "sub_1", "status": "ACTIVE", "value": 99}],
			"payments": [{"id": "pay_1", "status": "PENDING"}]
		}`))
	}))
	defer srv.Close()

	agg, err := client.GetOrganization(context.Background(), "connect.sid=tok", "12345678000199")
	require.NoError(t, err)
	assert.Equal(t, "Padaria Central", agg.Name)
	require.Len(t, agg.Subscriptions, 1)
	assert.Equal(t, "ACTIVE", agg.Subscriptions[0].Status)
	require.Len(t, agg.Payments, 1)
}

func TestGetOrganizationRejectsEmptyCNPJ(t *testing.T) {
	client := &Client{BaseURL: "http://unused", HTTPClient: http.DefaultClient}

	_, err := client.GetOrganization(context.Background(), "connect.sid=tok", "  ")
	assert.Error(t, err)
}

func TestErrorMessageExtractsTaxonomy(t *testing.T) {
	assert.Equal(t, "CNPJ inválido", ErrorMessage(&ValidationError{Message: "CNPJ inválido"}))
	assert.Equal(t, "boom", ErrorMessage(&APIError{StatusCode: 500, Message: "boom"}))
}
