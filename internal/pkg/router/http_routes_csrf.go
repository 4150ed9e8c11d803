package router

import (
	"strings"
	"time"

	"github.com/ManuelReschke/StudioSite/app/controllers"
	"github.com/ManuelReschke/StudioSite/internal/pkg/constants"
	"github.com/ManuelReschke/StudioSite/internal/pkg/env"
	"github.com/ManuelReschke/StudioSite/internal/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
)

func (h HttpRouter) registerCSRFProtectedRoutes(app *fiber.App) {
	csrfConf := csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), constants.APIPrefix)
		},
	}

	group := app.Group("", csrf.New(csrfConf))
	group.Get("/", controllers.HandleStart)
	group.Get("/contact", controllers.HandleContact)
	group.Post("/contact", controllers.HandleContactPost)

	// Calculator
	group.Get("/pricing", controllers.HandlePricing)
	group.Post("/pricing/business-type", controllers.HandlePricingBusinessType)
	group.Post("/pricing/select", controllers.HandlePricingSelect)
	group.Post("/pricing/clear", controllers.HandlePricingClear)
	group.Post("/pricing/pages/add", controllers.HandlePricingPageAdd)
	group.Post("/pricing/pages/remove", controllers.HandlePricingPageRemove)
	group.Post("/pricing/pages/rename", controllers.HandlePricingPageRename)
	group.Post("/pricing/reset", controllers.HandlePricingReset)
	group.Post("/pricing/save", controllers.HandlePricingSave)

	// Lead inbox
	requireAdmin := middleware.RequireAdminFromEnv()
	group.Get("/admin/leads", requireAdmin, controllers.HandleAdminLeads)
	group.Post("/admin/leads/:id/status", requireAdmin, controllers.HandleAdminLeadStatus)
	group.Post("/admin/leads/:id/delete", requireAdmin, controllers.HandleAdminLeadDelete)
}
