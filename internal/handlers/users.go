package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"talentdesk_echo/internal/models"
	"talentdesk_echo/internal/nav"
	"talentdesk_echo/internal/services"
	"talentdesk_echo/web/templates/pages"
)

// UserHandler handles the user management section
type UserHandler struct {
	chrome *Chrome
	db     *gorm.DB
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(chrome *Chrome, db *gorm.DB) *UserHandler {
	return &UserHandler{chrome: chrome, db: db}
}

// ListUsers renders the user management page
func (h *UserHandler) ListUsers(c echo.Context) error {
	props, done, err := h.chrome.Activate(c)
	if done || err != nil {
		return err
	}

	var users []models.User
	if err := h.db.Find(&users).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch users")
	}

	return pages.UsersList(pages.UsersListProps{
		PageProps: props,
		Users:     users,
	}).Render(c.Request().Context(), c.Response())
}

// CreateUserPage renders the create user form
func (h *UserHandler) CreateUserPage(c echo.Context) error {
	props, done, err := h.chrome.ActivateSection(c, nav.SectionUserManagement)
	if done || err != nil {
		return err
	}

	return pages.UserForm(pages.UserFormProps{
		PageProps: props,
		IsEdit:    false,
	}).Render(c.Request().Context(), c.Response())
}

// StoreUser handles the creation of a new user
func (h *UserHandler) StoreUser(c echo.Context) error {
	user := models.User{
		Name:     c.FormValue("name"),
		Email:    c.FormValue("email"),
		Phone:    c.FormValue("phone"),
		UserType: models.UserType(c.FormValue("user_type")),
	}
	if user.UserType == "" {
		user.UserType = models.UserTypeMember
	}

	if err := h.db.Create(&user).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create user")
	}

	h.chrome.Notify(c, services.FlashSuccess, user.Name+" created")
	return c.Redirect(http.StatusSeeOther, nav.SectionUserManagement.Path())
}

// EditUserPage renders the edit user form
func (h *UserHandler) EditUserPage(c echo.Context) error {
	props, done, err := h.chrome.ActivateSection(c, nav.SectionUserManagement)
	if done || err != nil {
		return err
	}

	var user models.User
	if err := h.db.First(&user, c.Param("id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}

	return pages.UserForm(pages.UserFormProps{
		PageProps: props,
		IsEdit:    true,
		User:      user,
	}).Render(c.Request().Context(), c.Response())
}

// UpdateUser handles updating an existing user
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var user models.User
	if err := h.db.First(&user, c.Param("id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}

	user.Name = c.FormValue("name")
	user.Email = c.FormValue("email")
	user.Phone = c.FormValue("phone")
	user.UserType = models.UserType(c.FormValue("user_type"))

	if err := h.db.Save(&user).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update user")
	}

	h.chrome.Notify(c, services.FlashSuccess, user.Name+" updated")
	return c.Redirect(http.StatusSeeOther, nav.SectionUserManagement.Path())
}

// DeleteUser handles deleting a user
func (h *UserHandler) DeleteUser(c echo.Context) error {
	if err := h.db.Delete(&models.User{}, c.Param("id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete user")
	}

	h.chrome.Notify(c, services.FlashInfo, "User deleted")
	return c.Redirect(http.StatusSeeOther, nav.SectionUserManagement.Path())
}
