package apiv1

import (
	"github.com/gofiber/fiber/v2"
)

// Pong is the body of GET /ping.
type Pong struct {
	Ping string `json:"ping"`
}

// ServerInterface lists the operations of public/docs/v1/openapi.yml.
type ServerInterface interface {
	GetPing(c *fiber.Ctx) error
	GetCatalog(c *fiber.Ctx) error
	GetBusinessTypeState(c *fiber.Ctx, key string) error
	PostCalculateQuote(c *fiber.Ctx) error
	PostQuote(c *fiber.Ctx) error
	GetQuote(c *fiber.Ctx, uuid string) error
	PostContact(c *fiber.Ctx) error
}

// ServerInterfaceWrapper extracts path parameters before calling the server.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetBusinessTypeState(c *fiber.Ctx) error {
	key := c.Params("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "key missing"})
	}
	return w.Handler.GetBusinessTypeState(c, key)
}

func (w *ServerInterfaceWrapper) GetQuote(c *fiber.Ctx) error {
	uuid := c.Params("uuid")
	if uuid == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "uuid missing"})
	}
	return w.Handler.GetQuote(c, uuid)
}

// RegisterHandlers mounts every operation on router.
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.Get("/ping", si.GetPing)
	router.Get("/catalog", si.GetCatalog)
	router.Get("/business-types/:key/state", w.GetBusinessTypeState)
	router.Post("/quotes/calculate", si.PostCalculateQuote)
	router.Post("/quotes", si.PostQuote)
	router.Get("/quotes/:uuid", w.GetQuote)
	router.Post("/contact", si.PostContact)
}
