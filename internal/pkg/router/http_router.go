package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/filaleve/filaleve-web/app/controllers"
	"github.com/filaleve/filaleve-web/internal/pkg/auth"
	"github.com/filaleve/filaleve-web/internal/pkg/middleware"
	"github.com/filaleve/filaleve-web/internal/pkg/session"
)

type HttpRouter struct {
	svc *auth.Service
}

func NewHttpRouter(svc *auth.Service) *HttpRouter {
	return &HttpRouter{svc: svc}
}

func (h *HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContext(h.svc))

	// Inject the session service shared by all controllers
	controllers.InitializeControllers(h.svc)

	h.registerPublicRoutes(app)
	h.registerCSRFProtectedRoutes(app)
}
