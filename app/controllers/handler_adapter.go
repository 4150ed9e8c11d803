package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/StudioSite/app/repository"
	"github.com/ManuelReschke/StudioSite/internal/pkg/cache"
	"github.com/ManuelReschke/StudioSite/internal/pkg/catalog"
	"github.com/ManuelReschke/StudioSite/internal/pkg/env"
	"github.com/ManuelReschke/StudioSite/internal/pkg/hcaptcha"
	"github.com/ManuelReschke/StudioSite/internal/pkg/mail"
	"github.com/ManuelReschke/StudioSite/internal/pkg/metrics/counter"
	"github.com/ManuelReschke/StudioSite/internal/pkg/statistics"
)

// Global controller instances
var (
	pageController      *PageController
	pricingController   *PricingController
	contactController   *ContactController
	quoteAPIController  *QuoteAPIController
	adminLeadController *AdminLeadController
)

// InitializeControllers builds the controllers from the global repository factory
func InitializeControllers() {
	factory := repository.GetGlobalFactory()
	repos := factory.GetRepositories()
	stats := statistics.NewService(factory.GetStatisticsCounter())
	picks := counter.New(cache.GetClient())
	notifier := mail.NewNotifier(mail.NewSMTPSender(mail.SMTPConfigFromEnv()), env.GetEnv("CONTACT_NOTIFY_TO", ""))

	pageController = NewPageController(catalog.Get)
	pricingController = NewPricingController(repos.Quote, catalog.Get)
	pricingController.picks = picks
	contactController = NewContactController(repos.ContactRequest, notifier, hcaptcha.NewVerifierFromEnv())
	contactController.onCreated = stats.Invalidate
	quoteAPIController = NewQuoteAPIController(repos.Quote, catalog.Get)
	adminLeadController = NewAdminLeadController(repos, stats)
	adminLeadController.picks = picks
}

func getPageController() *PageController {
	if pageController == nil {
		InitializeControllers()
	}
	return pageController
}

func getPricingController() *PricingController {
	if pricingController == nil {
		InitializeControllers()
	}
	return pricingController
}

func getContactController() *ContactController {
	if contactController == nil {
		InitializeControllers()
	}
	return contactController
}

func getQuoteAPIController() *QuoteAPIController {
	if quoteAPIController == nil {
		InitializeControllers()
	}
	return quoteAPIController
}

func getAdminLeadController() *AdminLeadController {
	if adminLeadController == nil {
		InitializeControllers()
	}
	return adminLeadController
}

// Adapter functions for the router

func HandleStart(c *fiber.Ctx) error    { return getPageController().HandleStart(c) }
func HandleFeatures(c *fiber.Ctx) error { return getPageController().HandleFeatures(c) }

func HandlePricing(c *fiber.Ctx) error { return getPricingController().HandlePricing(c) }
func HandlePricingBusinessType(c *fiber.Ctx) error {
	return getPricingController().HandleBusinessType(c)
}
func HandlePricingSelect(c *fiber.Ctx) error     { return getPricingController().HandleSelect(c) }
func HandlePricingClear(c *fiber.Ctx) error      { return getPricingController().HandleClear(c) }
func HandlePricingPageAdd(c *fiber.Ctx) error    { return getPricingController().HandlePageAdd(c) }
func HandlePricingPageRemove(c *fiber.Ctx) error { return getPricingController().HandlePageRemove(c) }
func HandlePricingPageRename(c *fiber.Ctx) error { return getPricingController().HandlePageRename(c) }
func HandlePricingReset(c *fiber.Ctx) error      { return getPricingController().HandleReset(c) }
func HandlePricingSave(c *fiber.Ctx) error       { return getPricingController().HandleSave(c) }
func HandleQuoteView(c *fiber.Ctx) error         { return getPricingController().HandleQuoteView(c) }

func HandleContact(c *fiber.Ctx) error     { return getContactController().HandleContact(c) }
func HandleContactPost(c *fiber.Ctx) error { return getContactController().HandleContactPost(c) }
func HandleContactAPI(c *fiber.Ctx) error  { return getContactController().HandleContactAPI(c) }

func HandleCatalogAPI(c *fiber.Ctx) error { return getQuoteAPIController().HandleCatalog(c) }
func HandleBusinessTypeStateAPI(c *fiber.Ctx) error {
	return getQuoteAPIController().HandleBusinessTypeState(c)
}
func HandleCalculateQuoteAPI(c *fiber.Ctx) error { return getQuoteAPIController().HandleCalculate(c) }
func HandleCreateQuoteAPI(c *fiber.Ctx) error    { return getQuoteAPIController().HandleCreate(c) }
func HandleGetQuoteAPI(c *fiber.Ctx) error       { return getQuoteAPIController().HandleGet(c) }

func HandleAdminLeads(c *fiber.Ctx) error      { return getAdminLeadController().HandleLeads(c) }
func HandleAdminLeadStatus(c *fiber.Ctx) error { return getAdminLeadController().HandleLeadStatus(c) }
func HandleAdminLeadDelete(c *fiber.Ctx) error { return getAdminLeadController().HandleLeadDelete(c) }
