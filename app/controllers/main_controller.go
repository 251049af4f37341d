package controllers

import (
	"github.com/gofiber/fiber/v2"
)

// HandleStart renders the marketing landing page. Pricing, about and
// contact live as sections of the same page, anchor-linked from the
// header.
func HandleStart(c *fiber.Ctx) error {
	return c.Render("index", renderData(c, "home", nil), "layouts/main")
}
