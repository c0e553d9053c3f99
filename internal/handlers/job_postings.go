package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"talentdesk_echo/internal/models"
	"talentdesk_echo/internal/nav"
	"talentdesk_echo/internal/services"
	"talentdesk_echo/web/templates/pages"
)

// JobPostingHandler handles the job postings section
type JobPostingHandler struct {
	chrome *Chrome
	db     *gorm.DB

	// basePath is the URL prefix form actions and links use; the positions
	// alias overrides it so university deployments stay on /positions.
	basePath string
}

// NewJobPostingHandler creates a new JobPostingHandler
func NewJobPostingHandler(chrome *Chrome, db *gorm.DB) *JobPostingHandler {
	return &JobPostingHandler{chrome: chrome, db: db, basePath: nav.SectionJobPostings.Path()}
}

// ListPostings renders the job postings page
func (h *JobPostingHandler) ListPostings(c echo.Context) error {
	props, done, err := h.chrome.Activate(c)
	if done || err != nil {
		return err
	}

	var postings []models.JobPosting
	if err := h.db.Order("posted_at DESC").Find(&postings).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch postings")
	}

	return pages.JobPostingsList(pages.JobPostingsListProps{
		PageProps: props,
		Postings:  postings,
		Heading:   h.chrome.Vocabulary().SectionLabel(nav.SectionJobPostings),
		BasePath:  h.basePath,
	}).Render(c.Request().Context(), c.Response())
}

// CreatePostingPage renders the create posting form
func (h *JobPostingHandler) CreatePostingPage(c echo.Context) error {
	props, done, err := h.chrome.ActivateSection(c, nav.SectionJobPostings)
	if done || err != nil {
		return err
	}

	return pages.JobPostingForm(pages.JobPostingFormProps{
		PageProps: props,
		IsEdit:    false,
		BasePath:  h.basePath,
	}).Render(c.Request().Context(), c.Response())
}

// StorePosting handles the creation of a new posting
func (h *JobPostingHandler) StorePosting(c echo.Context) error {
	posting := models.JobPosting{Status: models.JobPostingStatusOpen}
	if err := h.bindPostingForm(c, &posting); err != nil {
		return err
	}

	if err := h.db.Create(&posting).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create posting")
	}

	h.chrome.Notify(c, services.FlashSuccess, posting.Title+" created")
	return c.Redirect(http.StatusSeeOther, h.basePath)
}

// EditPostingPage renders the edit posting form
func (h *JobPostingHandler) EditPostingPage(c echo.Context) error {
	props, done, err := h.chrome.ActivateSection(c, nav.SectionJobPostings)
	if done || err != nil {
		return err
	}

	var posting models.JobPosting
	if err := h.db.First(&posting, c.Param("id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Posting not found")
	}

	return pages.JobPostingForm(pages.JobPostingFormProps{
		PageProps: props,
		IsEdit:    true,
		Posting:   posting,
		BasePath:  h.basePath,
	}).Render(c.Request().Context(), c.Response())
}

// UpdatePosting handles updating an existing posting
func (h *JobPostingHandler) UpdatePosting(c echo.Context) error {
	var posting models.JobPosting
	if err := h.db.First(&posting, c.Param("id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Posting not found")
	}

	if err := h.bindPostingForm(c, &posting); err != nil {
		return err
	}
	if err := h.db.Save(&posting).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update posting")
	}

	h.chrome.Notify(c, services.FlashSuccess, posting.Title+" updated")
	return c.Redirect(http.StatusSeeOther, h.basePath)
}

// ClosePosting marks a posting as closed
func (h *JobPostingHandler) ClosePosting(c echo.Context) error {
	var posting models.JobPosting
	if err := h.db.First(&posting, c.Param("id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Posting not found")
	}

	posting.Status = models.JobPostingStatusClosed
	if err := h.db.Save(&posting).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to close posting")
	}

	h.chrome.Notify(c, services.FlashInfo, posting.Title+" closed")
	return c.Redirect(http.StatusSeeOther, h.basePath)
}

func (h *JobPostingHandler) bindPostingForm(c echo.Context, posting *models.JobPosting) error {
	posting.Title = c.FormValue("title")
	posting.Department = c.FormValue("department")
	posting.Location = c.FormValue("location")
	posting.EmploymentType = c.FormValue("employment_type")
	posting.Description = c.FormValue("description")
	posting.SalaryMin, _ = strconv.ParseFloat(c.FormValue("salary_min"), 64)
	posting.SalaryMax, _ = strconv.ParseFloat(c.FormValue("salary_max"), 64)

	if v := c.FormValue("posted_at"); v != "" {
		postedAt, err := time.Parse("2006-01-02", v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid posted date")
		}
		posting.PostedAt = postedAt
	} else if posting.PostedAt.IsZero() {
		posting.PostedAt = time.Now()
	}

	if v := c.FormValue("expires_at"); v != "" {
		expiresAt, err := time.Parse("2006-01-02", v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid expiry date")
		}
		posting.ExpiresAt = &expiresAt
	} else {
		posting.ExpiresAt = nil
	}

	if v := c.FormValue("repost_rule"); v != "" {
		posting.RepostRule = &v
	} else {
		posting.RepostRule = nil
	}

	return nil
}
