package router

import (
	"github.com/ManuelReschke/StudioSite/app/controllers"
	"github.com/ManuelReschke/StudioSite/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
)

type HttpRouter struct {
	// memorySessions keeps sessions in process instead of redis.
	memorySessions bool
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	if h.memorySessions {
		session.NewMemorySessionStore()
	} else {
		session.NewSessionStore()
	}

	controllers.InitializeControllers()

	h.registerPublicRoutes(app)
	h.registerCSRFProtectedRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
