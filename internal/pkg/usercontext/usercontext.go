package usercontext

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/filaleve/filaleve-web/app/models"
	"github.com/filaleve/filaleve-web/internal/pkg/session"
)

// UserContext represents the complete user context for a request
type UserContext struct {
	User       *models.User `json:"user"`
	Credential string       `json:"-"`
	IsLoggedIn bool         `json:"is_logged_in"`
}

// Username returns the display name of the signed-in principal, or ""
func (u UserContext) Username() string {
	if u.User == nil {
		return ""
	}
	return u.User.Name
}

// GetUserContext retrieves the user context from fiber context
// Returns a default anonymous context if none is set
func GetUserContext(c *fiber.Ctx) UserContext {
	if ctx := c.Locals("USER_CONTEXT"); ctx != nil {
		return ctx.(UserContext)
	}
	return UserContext{IsLoggedIn: false}
}

// IsLoggedIn checks if the current user is logged in
func IsLoggedIn(c *fiber.Ctx) bool {
	return GetUserContext(c).IsLoggedIn
}

// StoreIdentity writes the adopted identity and its backend credential
// into the user's session. The session is the only place identity is
// written; guards and controllers read it back via the middleware.
func StoreIdentity(c *fiber.Ctx, user *models.User, credential string) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := session.SetSessionValue(c, KeyCredential, credential); err != nil {
		return err
	}
	if err := session.SetSessionValue(c, KeyUserJSON, string(raw)); err != nil {
		return err
	}
	return session.SetSessionValue(c, KeyUsername, user.Name)
}

// LoadIdentity reads the identity previously stored in the session.
// Returns nil when none is adopted or the record cannot be decoded.
func LoadIdentity(c *fiber.Ctx) *models.User {
	raw := session.GetSessionValue(c, KeyUserJSON)
	if raw == "" {
		return nil
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil
	}
	return &user
}

// Credential returns the backend session credential held in the local
// session, or "" for anonymous visitors.
func Credential(c *fiber.Ctx) string {
	return session.GetSessionValue(c, KeyCredential)
}
