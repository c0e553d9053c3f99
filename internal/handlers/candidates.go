package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"talentdesk_echo/internal/models"
	"talentdesk_echo/internal/services"
	"talentdesk_echo/web/templates/pages"
)

// CandidateHandler handles the candidates section
type CandidateHandler struct {
	chrome *Chrome
	db     *gorm.DB
}

// NewCandidateHandler creates a new CandidateHandler
func NewCandidateHandler(chrome *Chrome, db *gorm.DB) *CandidateHandler {
	return &CandidateHandler{chrome: chrome, db: db}
}

// ListCandidates renders the candidates page
func (h *CandidateHandler) ListCandidates(c echo.Context) error {
	props, done, err := h.chrome.Activate(c)
	if done || err != nil {
		return err
	}

	var candidates []models.Candidate
	if err := h.db.Preload("JobPosting").
		Order("created_at DESC").
		Find(&candidates).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch candidates")
	}

	return pages.CandidatesList(pages.CandidatesListProps{
		PageProps:  props,
		Candidates: candidates,
		Stages:     models.AllCandidateStages,
	}).Render(c.Request().Context(), c.Response())
}

// UpdateStage moves a candidate to another pipeline stage
func (h *CandidateHandler) UpdateStage(c echo.Context) error {
	id := c.Param("id")
	stage := models.CandidateStage(c.FormValue("stage"))
	if !models.ValidStage(stage) {
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown pipeline stage")
	}

	var candidate models.Candidate
	if err := h.db.First(&candidate, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Candidate not found")
	}

	candidate.Stage = stage
	if err := h.db.Save(&candidate).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update stage")
	}

	h.chrome.Notify(c, services.FlashSuccess, candidate.Name+" moved to "+string(stage))
	return c.Redirect(http.StatusSeeOther, "/candidates")
}

// DeleteCandidate removes a candidate from the pipeline
func (h *CandidateHandler) DeleteCandidate(c echo.Context) error {
	id := c.Param("id")
	if err := h.db.Delete(&models.Candidate{}, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete candidate")
	}

	h.chrome.Notify(c, services.FlashInfo, "Candidate removed")
	return c.Redirect(http.StatusSeeOther, "/candidates")
}
