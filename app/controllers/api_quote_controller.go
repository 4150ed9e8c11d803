package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ManuelReschke/StudioSite/app/models"
	"github.com/ManuelReschke/StudioSite/app/repository"
	"github.com/ManuelReschke/StudioSite/internal/pkg/catalog"
	"github.com/ManuelReschke/StudioSite/internal/pkg/constants"
	"github.com/ManuelReschke/StudioSite/internal/pkg/logger"
	"github.com/ManuelReschke/StudioSite/internal/pkg/pricing"
)

// QuoteAPIController serves the catalog and the calculator as JSON
type QuoteAPIController struct {
	quoteRepo repository.QuoteRepository
	catalog   func() *catalog.Catalog
}

func NewQuoteAPIController(quoteRepo repository.QuoteRepository, cat func() *catalog.Catalog) *QuoteAPIController {
	return &QuoteAPIController{
		quoteRepo: quoteRepo,
		catalog:   cat,
	}
}

// CalculateRequest is the body of POST /quotes/calculate and POST /quotes.
// Actions are applied to State in order before pricing.
type CalculateRequest struct {
	State   pricing.State           `json:"state"`
	Actions []pricing.ActionRequest `json:"actions,omitempty"`
	Email   string                  `json:"email,omitempty"`
}

type CalculateResponse struct {
	State          pricing.State `json:"state"`
	Quote          pricing.Quote `json:"quote"`
	Currency       string        `json:"currency"`
	TotalFormatted string        `json:"total_formatted"`
}

type SavedQuoteResponse struct {
	UUID           string        `json:"uuid"`
	URL            string        `json:"url"`
	BusinessType   string        `json:"business_type"`
	State          pricing.State `json:"state"`
	Quote          pricing.Quote `json:"quote"`
	Currency       string        `json:"currency"`
	TotalFormatted string        `json:"total_formatted"`
	CreatedAt      string        `json:"created_at"`
}

func (qc *QuoteAPIController) HandleCatalog(c *fiber.Ctx) error {
	return c.JSON(qc.catalog())
}

// HandleBusinessTypeState returns the default state of a business type and its price.
func (qc *QuoteAPIController) HandleBusinessTypeState(c *fiber.Ctx) error {
	cat := qc.catalog()
	state, err := pricing.NewState(cat, c.Params("key"))
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "not_found", err.Error())
	}
	quote, err := pricing.CalculateState(cat, state)
	if err != nil {
		return err
	}
	return c.JSON(qc.response(cat, state, quote))
}

var errResponseHandled = errors.New("response already written")

func handledJSONError(c *fiber.Ctx, status int, code, message string) error {
	if err := jsonError(c, status, code, message); err != nil {
		return err
	}
	return errResponseHandled
}

// resolve decodes the request, applies its actions and prices the result.
// errResponseHandled means the error response has been written.
func (qc *QuoteAPIController) resolve(c *fiber.Ctx) (CalculateRequest, pricing.State, pricing.Quote, error) {
	var req CalculateRequest
	if err := c.BodyParser(&req); err != nil {
		return req, pricing.State{}, pricing.Quote{}, handledJSONError(c, fiber.StatusBadRequest, "bad_request", "invalid JSON body")
	}

	cat := qc.catalog()
	state := req.State.Normalize()
	if _, ok := cat.BusinessType(state.BusinessType); !ok {
		return req, state, pricing.Quote{}, handledJSONError(c, fiber.StatusUnprocessableEntity, "unknown_business_type",
			"unknown business type "+state.BusinessType)
	}

	state, err := pricing.ReduceAll(cat, state, req.Actions)
	if err != nil {
		return req, state, pricing.Quote{}, handledJSONError(c, fiber.StatusUnprocessableEntity, actionErrorCode(err), err.Error())
	}

	quote, err := pricing.CalculateState(cat, state)
	if err != nil {
		return req, state, pricing.Quote{}, handledJSONError(c, fiber.StatusUnprocessableEntity, actionErrorCode(err), err.Error())
	}
	return req, state, quote, nil
}

func (qc *QuoteAPIController) HandleCalculate(c *fiber.Ctx) error {
	_, state, quote, err := qc.resolve(c)
	if err != nil {
		if errors.Is(err, errResponseHandled) {
			return nil
		}
		return err
	}
	return c.JSON(qc.response(qc.catalog(), state, quote))
}

func (qc *QuoteAPIController) HandleCreate(c *fiber.Ctx) error {
	req, state, _, err := qc.resolve(c)
	if err != nil {
		if errors.Is(err, errResponseHandled) {
			return nil
		}
		return err
	}

	saved, err := saveQuote(qc.quoteRepo, qc.catalog(), state, req.Email)
	if err != nil {
		logger.L().Error("saving quote failed", zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "quote could not be saved")
	}

	resp, err := savedQuoteResponse(saved)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (qc *QuoteAPIController) HandleGet(c *fiber.Ctx) error {
	saved, err := qc.quoteRepo.GetByUUID(c.Params("uuid"))
	if err != nil {
		if isNotFound(err) {
			return jsonError(c, fiber.StatusNotFound, "not_found", "quote not found")
		}
		return err
	}

	resp, err := savedQuoteResponse(saved)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (qc *QuoteAPIController) response(cat *catalog.Catalog, state pricing.State, quote pricing.Quote) CalculateResponse {
	return CalculateResponse{
		State:          state,
		Quote:          quote,
		Currency:       cat.Currency,
		TotalFormatted: cat.Format(quote.Total),
	}
}

func savedQuoteResponse(q *models.Quote) (SavedQuoteResponse, error) {
	state, err := q.Selection()
	if err != nil {
		return SavedQuoteResponse{}, err
	}
	result, err := q.Result()
	if err != nil {
		return SavedQuoteResponse{}, err
	}
	return SavedQuoteResponse{
		UUID:           q.UUID,
		URL:            constants.QuoteRoute(q.UUID),
		BusinessType:   q.BusinessType,
		State:          state,
		Quote:          result,
		Currency:       q.Currency,
		TotalFormatted: q.FormattedTotal(),
		CreatedAt:      q.CreatedAt.UTC().Format(time.RFC3339),
	}, nil
}

func actionErrorCode(err error) string {
	switch {
	case errors.Is(err, pricing.ErrUnknownAction):
		return "unknown_action"
	case errors.Is(err, pricing.ErrUnknownBusinessType):
		return "unknown_business_type"
	case errors.Is(err, pricing.ErrUnknownFeature):
		return "unknown_feature"
	case errors.Is(err, pricing.ErrUnknownTier):
		return "unknown_tier"
	case errors.Is(err, pricing.ErrNotCountable):
		return "not_countable"
	case errors.Is(err, pricing.ErrPageIndex):
		return "page_index"
	case errors.Is(err, pricing.ErrBelowMinCount):
		return "below_min_count"
	default:
		return "invalid_action"
	}
}
