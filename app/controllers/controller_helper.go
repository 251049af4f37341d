package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/filaleve/filaleve-web/internal/pkg/auth"
	"github.com/filaleve/filaleve-web/internal/pkg/usercontext"
)

var authService *auth.Service

// InitializeControllers injects the session service shared by all
// controllers. Must run before the router installs any handler.
func InitializeControllers(svc *auth.Service) {
	authService = svc
}

// getCSRFToken gets the token from Locals (set by the csrf middleware)
func getCSRFToken(c *fiber.Ctx) string {
	if v := c.Locals("csrf"); v != nil {
		if token, ok := v.(string); ok {
			return token
		}
	}
	return ""
}

// renderData assembles the fiber.Map every page template expects and
// merges in the page-specific extras.
func renderData(c *fiber.Ctx, page string, extra fiber.Map) fiber.Map {
	uc := usercontext.GetUserContext(c)
	data := fiber.Map{
		"Page":          page,
		"FromProtected": uc.IsLoggedIn,
		"Username":      uc.Username(),
		"Msg":           flash.Get(c),
		"CSRFToken":     getCSRFToken(c),
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// cleanCPF strips everything but digits, the backend expects the bare
// 11-digit form.
func cleanCPF(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// safeRedirectTarget keeps post-login redirects on this site.
func safeRedirectTarget(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return ""
	}
	return raw
}
