package handlers

import (
	"encoding/csv"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"talentdesk_echo/internal/models"
	"talentdesk_echo/internal/services"
	"talentdesk_echo/web/templates/pages"
)

// UploadHandler handles the candidate CSV import section
type UploadHandler struct {
	chrome *Chrome
	db     *gorm.DB
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(chrome *Chrome, db *gorm.DB) *UploadHandler {
	return &UploadHandler{chrome: chrome, db: db}
}

// UploadPage renders the upload page with recent import batches
func (h *UploadHandler) UploadPage(c echo.Context) error {
	props, done, err := h.chrome.Activate(c)
	if done || err != nil {
		return err
	}

	var uploads []models.CandidateUpload
	if err := h.db.Order("created_at DESC").Limit(20).Find(&uploads).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch uploads")
	}

	return pages.Upload(pages.UploadProps{
		PageProps: props,
		Uploads:   uploads,
	}).Render(c.Request().Context(), c.Response())
}

// HandleUpload imports a candidate CSV. Expected header:
// name,email,phone,stage,resume_url. Only name and email are required.
func (h *UploadHandler) HandleUpload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing CSV file")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to open uploaded file")
	}
	defer src.Close()

	upload := models.CandidateUpload{
		Filename: fileHeader.Filename,
		Status:   models.UploadStatusProcessing,
	}
	if uid := getStringFromContext(c, "userUID"); uid != "" {
		var user models.User
		if err := h.db.Where("firebase_uid = ?", uid).First(&user).Error; err == nil {
			upload.UploadedByID = &user.ID
		}
	}
	if err := h.db.Create(&upload).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to record upload")
	}

	imported, skipped, importErr := importCandidates(h.db, src, upload.ID)

	upload.RowCount = imported + skipped
	upload.ImportedRows = imported
	upload.SkippedRows = skipped
	upload.Status = models.UploadStatusCompleted
	if importErr != nil {
		upload.Status = models.UploadStatusFailed
		upload.Error = importErr.Error()
	}
	if err := h.db.Save(&upload).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to finalize upload")
	}

	if importErr != nil {
		h.chrome.Notify(c, services.FlashError, "Import failed: "+importErr.Error())
	} else {
		h.chrome.Notify(c, services.FlashSuccess, upload.Filename+" imported")
	}
	return c.Redirect(http.StatusSeeOther, "/upload")
}

// importCandidates reads CSV rows and inserts candidates. Rows missing a
// name or email, or carrying an unknown stage, are skipped rather than
// failing the batch.
func importCandidates(db *gorm.DB, r io.Reader, uploadID uint) (imported, skipped int, err error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return 0, 0, err
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}

	field := func(record []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	for {
		record, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return imported, skipped, readErr
		}

		candidate := models.Candidate{
			Name:      field(record, "name"),
			Email:     field(record, "email"),
			Phone:     field(record, "phone"),
			ResumeURL: field(record, "resume_url"),
			Stage:     models.CandidateStageApplied,
			UploadID:  &uploadID,
		}
		if stage := models.CandidateStage(field(record, "stage")); stage != "" {
			if !models.ValidStage(stage) {
				skipped++
				continue
			}
			candidate.Stage = stage
		}
		if candidate.Name == "" || candidate.Email == "" {
			skipped++
			continue
		}

		if err := db.Create(&candidate).Error; err != nil {
			return imported, skipped, err
		}
		imported++
	}

	return imported, skipped, nil
}
