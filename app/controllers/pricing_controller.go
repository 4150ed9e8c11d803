package controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ManuelReschke/StudioSite/app/models"
	"github.com/ManuelReschke/StudioSite/app/repository"
	"github.com/ManuelReschke/StudioSite/internal/pkg/catalog"
	"github.com/ManuelReschke/StudioSite/internal/pkg/constants"
	"github.com/ManuelReschke/StudioSite/internal/pkg/logger"
	"github.com/ManuelReschke/StudioSite/internal/pkg/metrics/counter"
	"github.com/ManuelReschke/StudioSite/internal/pkg/pricing"
	"github.com/ManuelReschke/StudioSite/internal/pkg/session"
	"github.com/ManuelReschke/StudioSite/internal/pkg/viewmodel"
)

// PricingController runs the quote calculator on the visitor's session state
type PricingController struct {
	quoteRepo repository.QuoteRepository
	catalog   func() *catalog.Catalog
	picks     *counter.Counter
}

func NewPricingController(quoteRepo repository.QuoteRepository, cat func() *catalog.Catalog) *PricingController {
	return &PricingController{
		quoteRepo: quoteRepo,
		catalog:   cat,
	}
}

func defaultBusinessType(cat *catalog.Catalog) string {
	if len(cat.BusinessTypes) == 0 {
		return ""
	}
	return cat.BusinessTypes[0].Key
}

// HandlePricing renders the calculator. ?type=<key> switches the business type.
func (pc *PricingController) HandlePricing(c *fiber.Ctx) error {
	cat := pc.catalog()
	state, err := session.LoadCalculator(c, cat, defaultBusinessType(cat))
	if err != nil {
		return err
	}

	if key := c.Query("type"); key != "" && key != state.BusinessType {
		next, err := pricing.Reduce(cat, state, pricing.SelectBusinessType{Key: key})
		if err == nil {
			state = next
			if err := session.SaveCalculator(c, state); err != nil {
				logger.L().Warn("saving calculator state failed", zap.Error(err))
			}
			pc.recordPick(c, key)
		}
	}

	quote, err := pricing.CalculateState(cat, state)
	if err != nil {
		return err
	}

	return render(c, "pricing", "Pricing", fiber.Map{
		"Pricing": viewmodel.NewPricing(cat, state, quote),
	})
}

// apply runs one reducer action on the session state and sends the
// visitor back to the calculator.
func (pc *PricingController) apply(c *fiber.Ctx, action pricing.Action) error {
	cat := pc.catalog()
	state, err := session.LoadCalculator(c, cat, defaultBusinessType(cat))
	if err != nil {
		return err
	}

	next, err := pricing.Reduce(cat, state, action)
	if err != nil {
		return flashError(c, "Could not update your selection: "+err.Error(), constants.PricingRoute)
	}
	if err := session.SaveCalculator(c, next); err != nil {
		return err
	}
	return c.Redirect(constants.PricingRoute, fiber.StatusSeeOther)
}

func (pc *PricingController) HandleBusinessType(c *fiber.Ctx) error {
	key := c.FormValue("key")
	if _, ok := pc.catalog().BusinessType(key); ok {
		pc.recordPick(c, key)
	}
	return pc.apply(c, pricing.SelectBusinessType{Key: key})
}

func (pc *PricingController) recordPick(c *fiber.Ctx, key string) {
	if err := pc.picks.AddBusinessTypePick(c.UserContext(), key); err != nil {
		logger.L().Debug("counting business type pick failed", zap.String("business_type", key), zap.Error(err))
	}
}

// HandleSelect sets a tier. An empty tier removes the feature.
func (pc *PricingController) HandleSelect(c *fiber.Ctx) error {
	feature := c.FormValue("feature")
	tier := c.FormValue("tier")
	if tier == "" {
		return pc.apply(c, pricing.ClearTier{Feature: feature})
	}
	return pc.apply(c, pricing.SelectTier{Feature: feature, Tier: catalog.TierName(tier)})
}

func (pc *PricingController) HandleClear(c *fiber.Ctx) error {
	return pc.apply(c, pricing.ClearTier{Feature: c.FormValue("feature")})
}

func (pc *PricingController) HandlePageAdd(c *fiber.Ctx) error {
	return pc.apply(c, pricing.AddPage{Feature: c.FormValue("feature"), Name: c.FormValue("name")})
}

func (pc *PricingController) HandlePageRemove(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.FormValue("index"))
	if err != nil {
		return flashError(c, "Invalid page", constants.PricingRoute)
	}
	return pc.apply(c, pricing.RemovePage{Feature: c.FormValue("feature"), Index: index})
}

func (pc *PricingController) HandlePageRename(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.FormValue("index"))
	if err != nil {
		return flashError(c, "Invalid page", constants.PricingRoute)
	}
	return pc.apply(c, pricing.RenamePage{Feature: c.FormValue("feature"), Index: index, Name: c.FormValue("name")})
}

// HandleReset drops the stored state. With a key it starts over on that type.
func (pc *PricingController) HandleReset(c *fiber.Ctx) error {
	if key := c.FormValue("key"); key != "" {
		return pc.apply(c, pricing.SelectBusinessType{Key: key})
	}
	if err := session.ResetCalculator(c); err != nil {
		return err
	}
	return c.Redirect(constants.PricingRoute, fiber.StatusSeeOther)
}

// HandleSave stores the current calculation and redirects to its page.
func (pc *PricingController) HandleSave(c *fiber.Ctx) error {
	cat := pc.catalog()
	state, err := session.LoadCalculator(c, cat, defaultBusinessType(cat))
	if err != nil {
		return err
	}

	quote, err := saveQuote(pc.quoteRepo, cat, state, c.FormValue("email"))
	if err != nil {
		logger.L().Error("saving quote failed", zap.Error(err))
		return flashError(c, "Your quote could not be saved, please try again", constants.PricingRoute)
	}
	return flashSuccess(c, "Your quote has been saved", constants.QuoteRoute(quote.UUID))
}

// HandleQuoteView shows a saved quote.
func (pc *PricingController) HandleQuoteView(c *fiber.Ctx) error {
	quote, err := pc.quoteRepo.GetByUUID(c.Params("uuid"))
	if err != nil {
		if isNotFound(err) {
			c.Status(fiber.StatusNotFound)
			return render(c, "not_found", "Not found", fiber.Map{"What": "quote"})
		}
		return err
	}

	result, err := quote.Result()
	if err != nil {
		return err
	}

	cat := pc.catalog()
	summary := viewmodel.QuoteSummary{
		BusinessType: quote.BusinessType,
		BasePrice:    catalog.FormatMoney(quote.Currency, catalog.Money(quote.BasePrice)),
		Total:        quote.FormattedTotal(),
		BelowBase:    result.BelowBase,
	}
	if bt, ok := cat.BusinessType(quote.BusinessType); ok {
		summary = viewmodel.NewQuoteSummary(&catalog.Catalog{Currency: quote.Currency}, bt, result)
	}

	return render(c, "quote", "Your quote", fiber.Map{
		"Quote":   quote,
		"Summary": summary,
	})
}

// saveQuote prices state and stores the snapshot.
func saveQuote(repo repository.QuoteRepository, cat *catalog.Catalog, state pricing.State, email string) (*models.Quote, error) {
	result, err := pricing.CalculateState(cat, state)
	if err != nil {
		return nil, err
	}
	quote, err := models.NewQuote(cat.Currency, state, result)
	if err != nil {
		return nil, err
	}
	quote.Email = strings.TrimSpace(email)
	if err := repo.Create(quote); err != nil {
		return nil, err
	}
	return quote, nil
}
