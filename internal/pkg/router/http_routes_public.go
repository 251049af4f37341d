package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/filaleve/filaleve-web/app/controllers"
	"github.com/filaleve/filaleve-web/internal/pkg/middleware"
)

func (h *HttpRouter) registerPublicRoutes(app *fiber.App) {
	// Auth
	app.Post("/logout", middleware.RequireAuth(h.svc), controllers.HandleAuthLogout)
}
