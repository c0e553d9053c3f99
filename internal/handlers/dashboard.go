package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"talentdesk_echo/internal/models"
	"talentdesk_echo/internal/services"
	"talentdesk_echo/web/templates/pages"
)

// DashboardHandler handles the dashboard section
type DashboardHandler struct {
	chrome *Chrome
	db     *gorm.DB
	cache  *services.RedisCache
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(chrome *Chrome, db *gorm.DB, cache *services.RedisCache) *DashboardHandler {
	return &DashboardHandler{chrome: chrome, db: db, cache: cache}
}

// Dashboard renders the dashboard page
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	props, done, err := h.chrome.Activate(c)
	if done || err != nil {
		return err
	}

	stats, err := h.stats(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load dashboard stats")
	}

	return pages.Dashboard(pages.DashboardProps{
		PageProps: props,
		Stats:     stats,
	}).Render(c.Request().Context(), c.Response())
}

func (h *DashboardHandler) stats(c echo.Context) (pages.DashboardStats, error) {
	if h.cache == nil {
		return collectDashboardStats(h.db)
	}
	return services.GetOrSet(h.cache, c.Request().Context(), cacheKeyDashboardStats, cacheTTL,
		func() (pages.DashboardStats, error) {
			return collectDashboardStats(h.db)
		})
}

func collectDashboardStats(db *gorm.DB) (pages.DashboardStats, error) {
	var stats pages.DashboardStats

	if err := db.Model(&models.Candidate{}).Count(&stats.TotalCandidates).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&models.Candidate{}).
		Where("stage NOT IN ?", []models.CandidateStage{models.CandidateStageHired, models.CandidateStageRejected}).
		Count(&stats.ActiveCandidates).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&models.JobPosting{}).
		Where("status = ?", models.JobPostingStatusOpen).
		Count(&stats.OpenPostings).Error; err != nil {
		return stats, err
	}

	monthStart := time.Now().AddDate(0, 0, -30)
	if err := db.Model(&models.Candidate{}).
		Where("stage = ? AND updated_at >= ?", models.CandidateStageHired, monthStart).
		Count(&stats.HiredThisMonth).Error; err != nil {
		return stats, err
	}

	return stats, nil
}
