package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalOnly(t *testing.T) {
	tests := []struct {
		host    string
		allowed bool
	}{
		{host: "localhost:8080", allowed: true},
		{host: "localhost", allowed: true},
		{host: "127.0.0.1:8080", allowed: true},
		{host: "127.0.0.1", allowed: true},
		{host: "[::1]:8080", allowed: true},
		{host: "talentdesk.example.com", allowed: false},
		{host: "talentdesk.example.com:443", allowed: false},
		{host: "10.0.0.5:8080", allowed: false},
		{host: "localhost.evil.com", allowed: false},
	}

	e := echo.New()
	e.GET("/navdebug/sections", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, LocalOnly())

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "http://"+tt.host+"/navdebug/sections", nil)
			req.Host = tt.host
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if tt.allowed {
				require.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "ok", rec.Body.String())
			} else {
				assert.Equal(t, http.StatusNotFound, rec.Code)
			}
		})
	}
}

func TestIsLocalHost(t *testing.T) {
	assert.True(t, isLocalHost("LOCALHOST"))
	assert.True(t, isLocalHost("::1"))
	assert.False(t, isLocalHost(""))
	assert.False(t, isLocalHost("192.168.1.10"))
}
