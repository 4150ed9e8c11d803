package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ManuelReschke/StudioSite/app/models"
	"github.com/ManuelReschke/StudioSite/app/repository"
	"github.com/ManuelReschke/StudioSite/internal/pkg/constants"
	"github.com/ManuelReschke/StudioSite/internal/pkg/contact"
	"github.com/ManuelReschke/StudioSite/internal/pkg/hcaptcha"
	"github.com/ManuelReschke/StudioSite/internal/pkg/logger"
	"github.com/ManuelReschke/StudioSite/internal/pkg/mail"
)

// ContactController takes contact requests from the form and the API
type ContactController struct {
	leadRepo repository.ContactRequestRepository
	notifier *mail.Notifier
	captcha  *hcaptcha.Verifier
	// onCreated runs after a lead was stored, e.g. to refresh statistics.
	onCreated func()
}

func NewContactController(leadRepo repository.ContactRequestRepository, notifier *mail.Notifier, captcha *hcaptcha.Verifier) *ContactController {
	return &ContactController{
		leadRepo: leadRepo,
		notifier: notifier,
		captcha:  captcha,
	}
}

// ContactAPIRequest is the JSON body of POST /api/v1/contact.
type ContactAPIRequest struct {
	contact.Form
	QuoteUUID    string `json:"quote_uuid"`
	CaptchaToken string `json:"captcha_token"`
}

func (cc *ContactController) renderForm(c *fiber.Ctx, form contact.Form, quoteUUID string, errs []string) error {
	return render(c, "contact", "Contact", fiber.Map{
		"Form":      form,
		"QuoteUUID": quoteUUID,
		"Services":  contact.Services,
		"Errors":    errs,
	})
}

// HandleContact renders the form. ?quote=<uuid> links a saved quote.
func (cc *ContactController) HandleContact(c *fiber.Ctx) error {
	form := contact.Form{Service: c.Query("service")}
	return cc.renderForm(c, form, c.Query("quote"), nil)
}

func (cc *ContactController) HandleContactPost(c *fiber.Ctx) error {
	var form contact.Form
	if err := c.BodyParser(&form); err != nil {
		return flashError(c, "Your message could not be read, please try again", constants.ContactRoute)
	}
	quoteUUID := c.FormValue("quote_uuid")

	if err := cc.captcha.Verify(c.UserContext(), c.FormValue("h-captcha-response")); err != nil {
		c.Status(fiber.StatusUnprocessableEntity)
		return cc.renderForm(c, form, quoteUUID, []string{"Please confirm that you are not a robot"})
	}

	result := contact.Validate(form)
	if !result.Valid {
		c.Status(fiber.StatusUnprocessableEntity)
		return cc.renderForm(c, form, quoteUUID, result.Errors)
	}

	if _, err := cc.store(c, form, quoteUUID); err != nil {
		logger.L().Error("storing contact request failed", zap.Error(err))
		return flashError(c, "Your message could not be sent, please try again later", constants.ContactRoute)
	}
	return flashSuccess(c, "Thank you! We will get back to you within one business day.", constants.ContactRoute)
}

// HandleContactAPI answers 400 with every validation error or 201 with the new lead id.
func (cc *ContactController) HandleContactAPI(c *fiber.Ctx) error {
	var req ContactAPIRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "invalid JSON body")
	}

	if err := cc.captcha.Verify(c.UserContext(), req.CaptchaToken); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "captcha_failed", err.Error())
	}

	result := contact.Validate(req.Form)
	if !result.Valid {
		return c.Status(fiber.StatusBadRequest).JSON(result)
	}

	lead, err := cc.store(c, req.Form, req.QuoteUUID)
	if err != nil {
		logger.L().Error("storing contact request failed", zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "internal_error", "contact request could not be stored")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"valid":  true,
		"errors": []string{},
		"id":     lead.ID,
	})
}

func (cc *ContactController) store(c *fiber.Ctx, form contact.Form, quoteUUID string) (*models.ContactRequest, error) {
	ipv4, ipv6 := GetClientIP(c)
	lead := models.NewContactRequest(form, ipv4, ipv6)
	if _, err := uuid.Parse(quoteUUID); err == nil {
		lead.QuoteUUID = quoteUUID
	}
	if err := cc.leadRepo.Create(lead); err != nil {
		return nil, err
	}

	logger.L().Info("contact request stored", zap.Uint("lead_id", lead.ID), zap.String("service", lead.Service))
	cc.notifier.NotifyContactRequestAsync(lead)
	if cc.onCreated != nil {
		cc.onCreated()
	}
	return lead, nil
}
