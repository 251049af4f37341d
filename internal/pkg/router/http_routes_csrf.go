package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"

	"github.com/filaleve/filaleve-web/app/controllers"
	"github.com/filaleve/filaleve-web/internal/pkg/env"
	"github.com/filaleve/filaleve-web/internal/pkg/middleware"
)

func (h *HttpRouter) registerCSRFProtectedRoutes(app *fiber.App) {
	csrfConf := csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
	}

	requireAuth := middleware.RequireAuth(h.svc)
	requireAnonymous := middleware.RequireAnonymous(h.svc, "/dashboard")

	group := app.Group("", cors.New(), csrf.New(csrfConf))

	// Marketing site
	group.Get("/", controllers.HandleStart)

	// Auth screens (anonymous-only)
	group.Get("/login", requireAnonymous, controllers.HandleAuthLogin)
	group.Post("/login", requireAnonymous, controllers.HandleAuthLogin)
	group.Get("/register", requireAnonymous, controllers.HandleAuthRegister)
	group.Post("/register", requireAnonymous, controllers.HandleAuthRegister)

	// Billing dashboard (authenticated-only)
	group.Get("/dashboard", requireAuth, controllers.HandleDashboard)
	group.Post("/dashboard/subscribe", requireAuth, controllers.HandleSubscribe)
	group.Post("/dashboard/subscription/toggle", requireAuth, controllers.HandleSubscriptionToggle)
	group.Get("/change-password", requireAuth, controllers.HandleChangePassword)
	group.Post("/change-password", requireAuth, controllers.HandleChangePassword)
}
