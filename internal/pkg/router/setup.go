package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/filaleve/filaleve-web/internal/pkg/auth"
)

type Router interface {
	InstallRouter(app *fiber.App)
}

// InstallRouter wires the session store, the user-context middleware
// and all HTTP routes onto the app.
func InstallRouter(app *fiber.App, svc *auth.Service) {
	setup(app, NewHttpRouter(svc))
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
