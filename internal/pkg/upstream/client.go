package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/filaleve/filaleve-web/app/models"
	"github.com/filaleve/filaleve-web/internal/pkg/env"
)

const defaultBaseURL = "https://backend.filaleve.com.br"

// Client talks to the single backend origin that owns authentication and
// billing state. The backend session credential captured at login is
// forwarded explicitly on every call; there is no other ambient state.
type Client struct {
	BaseURL string

	HTTPClient *http.Client

	// onUnauthorized is the single collaboration point for expired
	// sessions: invoked with the offending credential on any 401.
	onUnauthorized func(credential string)
}

func NewClientFromEnv() *Client {
	return &Client{
		BaseURL: strings.TrimRight(env.GetEnv("UPSTREAM_BASE_URL", defaultBaseURL), "/"),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// SetOnUnauthorized registers the callback fired on any 401 response.
// The session service registers exactly one.
func (c *Client) SetOnUnauthorized(fn func(credential string)) {
	c.onUnauthorized = fn
}

// request issues one backend call and maps the response status onto the
// error taxonomy. The returned body is fully read and the response closed.
func (c *Client) request(ctx context.Context, method, path, credential string, payload any) (*http.Response, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if credential != "" {
		req.Header.Set("Cookie", credential)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		if c.onUnauthorized != nil {
			c.onUnauthorized(credential)
		}
		return resp, body, ErrAuthentication
	case resp.StatusCode == http.StatusBadRequest:
		return resp, body, &ValidationError{Message: extractMessage(body)}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return resp, body, &APIError{StatusCode: resp.StatusCode, Message: extractMessage(body)}
	}
	return resp, body, nil
}

// do is request plus JSON decoding of the success body into out.
func (c *Client) do(ctx context.Context, method, path, credential string, payload, out any) error {
	_, body, err := c.request(ctx, method, path, credential, payload)
	if err != nil {
		return err
	}
	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decoding %s %s response: %w", method, path, err)
		}
	}
	return nil
}

// credentialFromResponse flattens the Set-Cookie headers of a login
// response into one opaque Cookie header value.
func credentialFromResponse(resp *http.Response) string {
	cookies := resp.Cookies()
	parts := make([]string, 0, len(cookies))
	for _, ck := range cookies {
		if ck.Name == "" {
			continue
		}
		parts = append(parts, ck.Name+"="+ck.Value)
	}
	return strings.Join(parts, "; ")
}

// Login exchanges credentials for an identity and the opaque backend
// session credential. Some backend versions nest the identity under a
// "user" envelope; both shapes are accepted.
func (c *Client) Login(ctx context.Context, cpf, password string) (*models.User, string, error) {
	payload := map[string]string{
		"cpf":      cpf,
		"password": password,
	}

	resp, body, err := c.request(ctx, http.MethodPost, "/auth/login", "", payload)
	if err != nil {
		return nil, "", err
	}

	credential := credentialFromResponse(resp)

	var nested struct {
		User *models.User `json:"user"`
	}
	if err := json.Unmarshal(body, &nested); err == nil && nested.User != nil {
		return nested.User, credential, nil
	}

	var user models.User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, "", fmt.Errorf("decoding login response: %w", err)
	}
	return &user, credential, nil
}

// Register creates a new account. The backend signs nobody in here; the
// caller is sent back to the login form afterwards.
func (c *Client) Register(ctx context.Context, name, cpf, password string) error {
	payload := map[string]string{
		"name":     name,
		"cpf":      cpf,
		"password": password,
	}
	return c.do(ctx, http.MethodPost, "/auth/register", "", payload, nil)
}

// Me re-fetches the identity bound to the given credential.
func (c *Client) Me(ctx context.Context, credential string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", credential, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout invalidates the backend session. Best-effort: callers clear
// their local session regardless of this outcome.
func (c *Client) Logout(ctx context.Context, credential string) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", credential, nil, nil)
}

// ChangePassword forwards a password change for the signed-in principal.
func (c *Client) ChangePassword(ctx context.Context, credential, currentPassword, newPassword string) error {
	payload := map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	}
	return c.do(ctx, http.MethodPut, "/auth/change-password", credential, payload, nil)
}

// GetOrganization fetches the aggregate organization record: profile,
// subscriptions and the full payment history in one response.
func (c *Client) GetOrganization(ctx context.Context, credential, cnpj string) (*models.OrganizationAggregate, error) {
	if strings.TrimSpace(cnpj) == "" {
		return nil, errors.New("organization cnpj is required")
	}
	var agg models.OrganizationAggregate
	if err := c.do(ctx, http.MethodGet, "/organizations/"+cnpj, credential, nil, &agg); err != nil {
		return nil, err
	}
	return &agg, nil
}

// CreateSubscription opens a subscription at the billing gateway for the
// given customer reference.
func (c *Client) CreateSubscription(ctx context.Context, credential, customer string) (*models.Subscription, error) {
	payload := map[string]string{
		"customer": customer,
	}
	var sub models.Subscription
	if err := c.do(ctx, http.MethodPost, "/subscriptions/gateway", credential, payload, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// UpdateSubscriptionStatus flips a subscription between ACTIVE and
// INACTIVE.
func (c *Client) UpdateSubscriptionStatus(ctx context.Context, credential, subscriptionID, status string) error {
	payload := map[string]string{
		"status":         status,
		"subscriptionId": subscriptionID,
	}
	return c.do(ctx, http.MethodPut, "/subscriptions/"+subscriptionID, credential, payload, nil)
}
