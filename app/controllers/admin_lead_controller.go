package controllers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ManuelReschke/StudioSite/app/models"
	"github.com/ManuelReschke/StudioSite/app/repository"
	"github.com/ManuelReschke/StudioSite/internal/pkg/constants"
	"github.com/ManuelReschke/StudioSite/internal/pkg/logger"
	"github.com/ManuelReschke/StudioSite/internal/pkg/metrics/counter"
	"github.com/ManuelReschke/StudioSite/internal/pkg/statistics"
)

const leadsPerPage = 25

// AdminLeadController is the lead inbox
type AdminLeadController struct {
	leadRepo  repository.ContactRequestRepository
	quoteRepo repository.QuoteRepository
	stats     *statistics.Service
	picks     *counter.Counter
}

func NewAdminLeadController(repos *repository.Repositories, stats *statistics.Service) *AdminLeadController {
	return &AdminLeadController{
		leadRepo:  repos.ContactRequest,
		quoteRepo: repos.Quote,
		stats:     stats,
	}
}

// HandleLeads lists leads, newest first. ?status= filters, ?page= paginates.
func (alc *AdminLeadController) HandleLeads(c *fiber.Ctx) error {
	status := c.Query("status")
	if status != "" && !models.ValidContactStatus(status) {
		status = ""
	}
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	leads, err := alc.leadRepo.List(status, (page-1)*leadsPerPage, leadsPerPage)
	if err != nil {
		return alc.handleError(c, "Error loading leads", err)
	}
	total, err := alc.leadRepo.Count(status)
	if err != nil {
		return alc.handleError(c, "Error counting leads", err)
	}
	recent, err := alc.quoteRepo.GetRecent(10)
	if err != nil {
		return alc.handleError(c, "Error loading quotes", err)
	}
	picks, err := alc.picks.BusinessTypePicks(c.UserContext())
	if err != nil {
		logger.L().Warn("loading business type picks failed", zap.Error(err))
	}

	return render(c, "admin/leads", "Leads", fiber.Map{
		"Leads":    leads,
		"Quotes":   recent,
		"Picks":    picks,
		"Stats":    alc.stats.Get(c.UserContext()),
		"Status":   status,
		"Statuses": models.ContactStatuses,
		"Page":     page,
		"HasPrev":  page > 1,
		"HasNext":  int64(page*leadsPerPage) < total,
		"PrevPage": page - 1,
		"NextPage": page + 1,
	})
}

func (alc *AdminLeadController) HandleLeadStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Redirect(constants.AdminLeads)
	}
	status := c.FormValue("status")
	if !models.ValidContactStatus(status) {
		return flashError(c, fmt.Sprintf("Unknown status %q", status), constants.AdminLeads)
	}

	if err := alc.leadRepo.UpdateStatus(uint(id), status); err != nil {
		if isNotFound(err) {
			return flashError(c, "Lead not found", constants.AdminLeads)
		}
		return alc.handleError(c, "Error updating lead", err)
	}
	return flashSuccess(c, "Lead updated", constants.AdminLeads)
}

func (alc *AdminLeadController) HandleLeadDelete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Redirect(constants.AdminLeads)
	}
	if err := alc.leadRepo.Delete(uint(id)); err != nil {
		return alc.handleError(c, "Error deleting lead", err)
	}
	alc.stats.Invalidate()
	return flashSuccess(c, "Lead deleted", constants.AdminLeads)
}

func (alc *AdminLeadController) handleError(c *fiber.Ctx, message string, err error) error {
	return flashError(c, message+": "+err.Error(), constants.PublicRoute)
}
