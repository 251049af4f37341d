package viewmodel

import "github.com/gofiber/fiber/v2"

// Layout carries the fields every page template needs.
type Layout struct {
	Page          string
	FromProtected bool
	Username      string
	Msg           fiber.Map
	CSRFToken     string
}
