package handlers

import (
	"encoding/csv"
	"net/http"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"talentdesk_echo/internal/models"
	"talentdesk_echo/internal/services"
	"talentdesk_echo/web/templates/pages"
)

// settingsFields is the fixed set of form fields backed by the settings store
var settingsFields = []pages.SettingsField{
	{Name: "display_name", Label: "Display Name"},
	{Name: "timezone", Label: "Timezone"},
	{Name: "items_per_page", Label: "Items Per Page"},
	{Name: "digest_email", Label: "Digest Email Address"},
}

// SettingsHandler handles the settings section: the preferences form, data
// export and account deletion.
type SettingsHandler struct {
	chrome     *Chrome
	db         *gorm.DB
	store      *services.SettingsStore
	authClient *auth.Client
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(chrome *Chrome, db *gorm.DB, store *services.SettingsStore, authClient *auth.Client) *SettingsHandler {
	return &SettingsHandler{chrome: chrome, db: db, store: store, authClient: authClient}
}

// SettingsPage renders the settings form populated from the store
func (h *SettingsHandler) SettingsPage(c echo.Context) error {
	props, done, err := h.chrome.Activate(c)
	if done || err != nil {
		return err
	}

	uid := getStringFromContext(c, "userUID")
	values := make(map[string]string, len(settingsFields))
	for _, field := range settingsFields {
		value, ok, err := h.store.Get(c.Request().Context(), uid, field.Name)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load settings")
		}
		if ok {
			values[field.Name] = value
		}
	}

	return pages.Settings(pages.SettingsProps{
		PageProps: props,
		Fields:    settingsFields,
		Values:    values,
	}).Render(c.Request().Context(), c.Response())
}

// SaveSettings writes the submitted fields back to the store. Blank fields
// are removed rather than stored empty.
func (h *SettingsHandler) SaveSettings(c echo.Context) error {
	uid := getStringFromContext(c, "userUID")

	for _, field := range settingsFields {
		value := c.FormValue(field.Name)
		var err error
		if value == "" {
			err = h.store.Remove(c.Request().Context(), uid, field.Name)
		} else {
			err = h.store.Set(c.Request().Context(), uid, field.Name, value)
		}
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save settings")
		}
	}

	h.chrome.Notify(c, services.FlashSuccess, "Settings saved")
	return c.Redirect(http.StatusSeeOther, "/settings")
}

// ExportData serves the user's settings and upload history as CSV. All the
// fallible reads happen before the response is committed, so failures still
// reach the error page instead of corrupting a half-written download.
func (h *SettingsHandler) ExportData(c echo.Context) error {
	uid := getStringFromContext(c, "userUID")
	ctx := c.Request().Context()

	records := [][]string{{"kind", "key", "value"}}

	for _, field := range settingsFields {
		value, ok, err := h.store.Get(ctx, uid, field.Name)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to read settings")
		}
		if !ok {
			continue
		}
		records = append(records, []string{"setting", field.Name, value})
	}

	if h.db != nil {
		var user models.User
		if err := h.db.Where("firebase_uid = ?", uid).First(&user).Error; err == nil {
			var uploads []models.CandidateUpload
			if err := h.db.Where("uploaded_by_id = ?", user.ID).Find(&uploads).Error; err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "Failed to read upload history")
			}
			for _, upload := range uploads {
				records = append(records, []string{"upload", upload.Filename, string(upload.Status)})
			}
		}
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="talentdesk-export.csv"`)
	c.Response().WriteHeader(http.StatusOK)

	writer := csv.NewWriter(c.Response())
	return writer.WriteAll(records)
}

// DeleteAccount removes the user's settings, database row and auth identity.
// The form must carry confirm=yes; anything else is rejected.
func (h *SettingsHandler) DeleteAccount(c echo.Context) error {
	if c.FormValue("confirm") != "yes" {
		return echo.NewHTTPError(http.StatusBadRequest, "Account deletion requires confirmation")
	}

	uid := getStringFromContext(c, "userUID")
	ctx := c.Request().Context()

	fields := make([]string, 0, len(settingsFields))
	for _, field := range settingsFields {
		fields = append(fields, field.Name)
	}
	if err := h.store.RemoveAll(ctx, uid, fields); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to clear settings")
	}

	if err := h.db.Where("firebase_uid = ?", uid).Delete(&models.User{}).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete account")
	}

	if err := services.DeleteFirebaseUser(ctx, h.authClient, uid); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete auth identity")
	}

	// Session is gone with the account
	c.SetCookie(&http.Cookie{
		Name:     "session",
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Path:     "/",
	})
	return c.Redirect(http.StatusSeeOther, "/login")
}
