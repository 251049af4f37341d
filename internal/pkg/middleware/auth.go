package middleware

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/filaleve/filaleve-web/internal/pkg/auth"
	"github.com/filaleve/filaleve-web/internal/pkg/session"
	"github.com/filaleve/filaleve-web/internal/pkg/usercontext"
)

// RequireAuth gates authenticated-only pages. A session that already
// carries an adopted identity passes with zero backend calls. A session
// holding only a backend credential gets exactly one re-validation probe
// for this request; on success the identity is adopted, otherwise the
// session is cleared and the visitor is sent to the login screen with
// the originally requested path preserved.
func RequireAuth(svc *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uc := usercontext.GetUserContext(c)
		if uc.IsLoggedIn {
			return c.Next()
		}

		if credential := usercontext.Credential(c); credential != "" {
			if user, ok := svc.CheckAuthStatus(c.Context(), credential); ok {
				if err := usercontext.StoreIdentity(c, user, credential); err == nil {
					c.Locals("USER_CONTEXT", usercontext.UserContext{
						User:       user,
						Credential: credential,
						IsLoggedIn: true,
					})
					c.Locals(usercontext.KeyFromProtected, true)
					c.Locals(usercontext.KeyUsername, user.Name)
					return c.Next()
				}
			}
			_ = session.Destroy(c)
		}

		target := "/login"
		if path := c.OriginalURL(); path != "" && path != "/" {
			target += "?redirect=" + url.QueryEscape(path)
		}
		return c.Redirect(target, fiber.StatusSeeOther)
	}
}

// RequireAnonymous gates login/registration pages: signed-in visitors
// are redirected to redirectTo (the dashboard by default). Symmetric to
// RequireAuth, including the single re-validation probe for sessions
// with a credential but no adopted identity.
func RequireAnonymous(svc *auth.Service, redirectTo string) fiber.Handler {
	if redirectTo == "" {
		redirectTo = "/dashboard"
	}
	return func(c *fiber.Ctx) error {
		uc := usercontext.GetUserContext(c)
		if uc.IsLoggedIn {
			return c.Redirect(redirectTo, fiber.StatusSeeOther)
		}

		if credential := usercontext.Credential(c); credential != "" {
			if user, ok := svc.CheckAuthStatus(c.Context(), credential); ok {
				if err := usercontext.StoreIdentity(c, user, credential); err == nil {
					return c.Redirect(redirectTo, fiber.StatusSeeOther)
				}
			}
			_ = session.Destroy(c)
		}

		return c.Next()
	}
}
