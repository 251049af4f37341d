package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/filaleve/filaleve-web/internal/pkg/auth"
	"github.com/filaleve/filaleve-web/internal/pkg/session"
	"github.com/filaleve/filaleve-web/internal/pkg/usercontext"
)

// UserContext hydrates the request's user context from the local session
// on every request. It never talks to the backend itself; it only reads
// what the session service already adopted, and drops sessions whose
// backend credential was revoked since the last visit.
func UserContext(svc *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		setAnonymous := func() {
			c.Locals("USER_CONTEXT", usercontext.UserContext{IsLoggedIn: false})
			c.Locals(usercontext.KeyFromProtected, false)
		}

		credential := usercontext.Credential(c)
		if credential == "" {
			setAnonymous()
			return c.Next()
		}

		// A 401 seen by any backend call revokes the credential; the
		// next request through here observes the cleared session.
		if svc.IsRevoked(credential) {
			_ = session.Destroy(c)
			setAnonymous()
			return c.Next()
		}

		user := usercontext.LoadIdentity(c)
		if user == nil {
			// Credential present but identity not adopted yet; the
			// guards decide whether to probe the backend.
			setAnonymous()
			return c.Next()
		}

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
