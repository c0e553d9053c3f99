package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"talentdesk_echo/web/templates/pages"
	"talentdesk_echo/web/templates/shared"
)

// CustomErrorHandler creates a custom error handler for Echo
func CustomErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	errorTitle := "Internal Server Error"
	errorMessage := ""

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code

		if msg, ok := he.Message.(string); ok && msg != "" {
			errorMessage = msg
		}

		switch code {
		case http.StatusNotFound:
			errorTitle = "Page Not Found"
			if errorMessage == "" {
				errorMessage = "The page you're looking for doesn't exist."
			}
		case http.StatusForbidden:
			errorTitle = "Access Denied"
			if errorMessage == "" {
				errorMessage = "You don't have permission to access this resource."
			}
		case http.StatusUnauthorized:
			errorTitle = "Unauthorized"
			if errorMessage == "" {
				errorMessage = "Please log in to continue."
			}
		case http.StatusBadRequest:
			errorTitle = "Bad Request"
			if errorMessage == "" {
				errorMessage = "The request could not be processed."
			}
		default:
			if errorMessage == "" {
				errorMessage = "Something went wrong. Please try again later."
			}
		}
	} else {
		errorMessage = "Something went wrong. Please try again later."
	}

	c.Logger().Error(err)

	userEmail := ""
	userUID := ""
	if val := c.Get("userEmail"); val != nil {
		if email, ok := val.(string); ok {
			userEmail = email
		}
	}
	if val := c.Get("userUID"); val != nil {
		if uid, ok := val.(string); ok {
			userUID = uid
		}
	}

	props := pages.ErrorPageProps{
		PageProps: shared.PageProps{
			Title:       errorTitle,
			ActiveNav:   "", // no active section on error pages
			Breadcrumbs: []shared.Breadcrumb{{Title: "Home", URL: "/"}, {Title: "Error"}},
			UserEmail:   userEmail,
			UserUID:     userUID,
		},
		ErrorTitle:   errorTitle,
		ErrorMessage: errorMessage,
	}

	c.Response().Status = code

	// Routes reachable without a session get the bare error page
	path := c.Request().URL.Path
	isPublic := strings.HasPrefix(path, "/login") ||
		strings.HasPrefix(path, "/auth") ||
		strings.HasPrefix(path, "/static") ||
		strings.HasPrefix(path, "/navdebug")

	var renderErr error
	if isPublic {
		renderErr = pages.PublicErrorPage(props).Render(c.Request().Context(), c.Response())
	} else {
		renderErr = pages.ErrorPage(props).Render(c.Request().Context(), c.Response())
	}

	if renderErr != nil {
		// Fall back to plain text if the template fails
		c.Logger().Error(fmt.Errorf("failed to render error page: %w", renderErr))
		c.String(code, errorMessage)
	}
}
