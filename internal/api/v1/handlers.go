package apiv1

import (
	"github.com/gofiber/fiber/v2"

	// Delegate to the controllers so HTML and JSON share one code path
	"github.com/ManuelReschke/StudioSite/app/controllers"
)

// APIServer implements the ServerInterface
type APIServer struct{}

func NewAPIServer() *APIServer {
	return &APIServer{}
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(Pong{Ping: "pong"})
}

func (s *APIServer) GetCatalog(c *fiber.Ctx) error {
	return controllers.HandleCatalogAPI(c)
}

// GetBusinessTypeState returns the defaults of a business type; the
// controller reads key from the route params.
func (s *APIServer) GetBusinessTypeState(c *fiber.Ctx, key string) error {
	return controllers.HandleBusinessTypeStateAPI(c)
}

func (s *APIServer) PostCalculateQuote(c *fiber.Ctx) error {
	return controllers.HandleCalculateQuoteAPI(c)
}

func (s *APIServer) PostQuote(c *fiber.Ctx) error {
	return controllers.HandleCreateQuoteAPI(c)
}

func (s *APIServer) GetQuote(c *fiber.Ctx, uuid string) error {
	return controllers.HandleGetQuoteAPI(c)
}

func (s *APIServer) PostContact(c *fiber.Ctx) error {
	return controllers.HandleContactAPI(c)
}
