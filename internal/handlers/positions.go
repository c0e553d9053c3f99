package handlers

import (
	"github.com/labstack/echo/v4"

	"talentdesk_echo/internal/alias"
)

// PositionsHandler serves the /positions routes for university-branded
// deployments. Every operation is a straight delegation to the job-postings
// handler; only vocabulary and URLs differ.
type PositionsHandler struct {
	jobs *JobPostingHandler
}

// NewPositionsHandler wraps a job-postings handler under the positions alias
func NewPositionsHandler(jobs *JobPostingHandler) *PositionsHandler {
	aliased := *jobs
	aliased.basePath = alias.PositionsPath
	return &PositionsHandler{jobs: &aliased}
}

func (h *PositionsHandler) ListPositions(c echo.Context) error {
	return h.jobs.ListPostings(c)
}

func (h *PositionsHandler) CreatePositionPage(c echo.Context) error {
	return h.jobs.CreatePostingPage(c)
}

func (h *PositionsHandler) StorePosition(c echo.Context) error {
	return h.jobs.StorePosting(c)
}

func (h *PositionsHandler) EditPositionPage(c echo.Context) error {
	return h.jobs.EditPostingPage(c)
}

func (h *PositionsHandler) UpdatePosition(c echo.Context) error {
	return h.jobs.UpdatePosting(c)
}

func (h *PositionsHandler) ClosePosition(c echo.Context) error {
	return h.jobs.ClosePosting(c)
}
