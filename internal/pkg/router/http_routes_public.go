package router

import (
	"github.com/ManuelReschke/StudioSite/app/controllers"
	"github.com/gofiber/fiber/v2"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// API routes live in ApiRouter (internal/pkg/router/api_router.go)
	app.Get("/features", controllers.HandleFeatures)
	app.Get("/quote/:uuid", controllers.HandleQuoteView)
}
