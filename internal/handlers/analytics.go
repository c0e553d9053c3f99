package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"talentdesk_echo/internal/models"
	"talentdesk_echo/internal/services"
	"talentdesk_echo/web/templates/pages"
)

// AnalyticsHandler handles the analytics section
type AnalyticsHandler struct {
	chrome *Chrome
	db     *gorm.DB
	cache  *services.RedisCache
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(chrome *Chrome, db *gorm.DB, cache *services.RedisCache) *AnalyticsHandler {
	return &AnalyticsHandler{chrome: chrome, db: db, cache: cache}
}

// Analytics renders the analytics page
func (h *AnalyticsHandler) Analytics(c echo.Context) error {
	props, done, err := h.chrome.Activate(c)
	if done || err != nil {
		return err
	}

	funnel, err := h.funnel(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load analytics")
	}

	avgDays, err := avgDaysToHire(h.db)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load analytics")
	}

	return pages.Analytics(pages.AnalyticsProps{
		PageProps:     props,
		Funnel:        funnel,
		AvgDaysToHire: avgDays,
	}).Render(c.Request().Context(), c.Response())
}

func (h *AnalyticsHandler) funnel(c echo.Context) ([]pages.StageCount, error) {
	if h.cache == nil {
		return collectFunnel(h.db)
	}
	return services.GetOrSet(h.cache, c.Request().Context(), cacheKeyFunnel, cacheTTL,
		func() ([]pages.StageCount, error) {
			return collectFunnel(h.db)
		})
}

// collectFunnel counts candidates per stage, keeping funnel order and
// including empty stages.
func collectFunnel(db *gorm.DB) ([]pages.StageCount, error) {
	type row struct {
		Stage string
		Count int64
	}
	var rows []row
	if err := db.Model(&models.Candidate{}).
		Select("stage, count(*) as count").
		Group("stage").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Stage] = r.Count
	}

	funnel := make([]pages.StageCount, 0, len(models.AllCandidateStages))
	for _, stage := range models.AllCandidateStages {
		funnel = append(funnel, pages.StageCount{Stage: string(stage), Count: counts[string(stage)]})
	}
	return funnel, nil
}

func avgDaysToHire(db *gorm.DB) (float64, error) {
	var avg *float64
	err := db.Model(&models.Candidate{}).
		Where("stage = ?", models.CandidateStageHired).
		Select("AVG(EXTRACT(EPOCH FROM (updated_at - created_at)) / 86400)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}
