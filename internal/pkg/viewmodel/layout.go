package viewmodel

import "github.com/gofiber/fiber/v2"

// Layout carries what every page template needs besides its own content.
type Layout struct {
	Page            string
	Title           string
	Msg             fiber.Map
	CSRFToken       string
	IsDev           bool
	HCaptchaSiteKey string
	Year            int
}
