package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// LocalOnly hides a route group from non-development hosts. Requests whose
// Host is not localhost or a loopback address get a plain 404, so the group
// is absent rather than forbidden.
func LocalOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !isLocalHost(c.Request().Host) {
				return echo.NewHTTPError(http.StatusNotFound)
			}
			return next(c)
		}
	}
}

func isLocalHost(host string) bool {
	// Host may carry a port
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.Trim(host, "[]")

	if strings.EqualFold(host, "localhost") {
		return true
	}
	if ip := net.ParseIP(host); ip != nil {
		return ip.IsLoopback()
	}
	return false
}
