package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentdesk_echo/internal/alias"
	"talentdesk_echo/internal/middleware"
)

func newNavDebugServer(hint string) *echo.Echo {
	e := echo.New()
	handler := NewNavDebugHandler(alias.NewVocabulary(""), hint)
	debug := e.Group("/navdebug", middleware.LocalOnly())
	debug.GET("/sections", handler.ListSections)
	debug.GET("/current", handler.CurrentSection)
	debug.POST("/activate/:id", handler.Activate)
	debug.POST("/fallback", handler.Fallback)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, url, host string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, url, nil)
	req.Host = host
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	body := map[string]interface{}{}
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec.Code, body
}

func TestNavDebugListSections(t *testing.T) {
	e := newNavDebugServer("")
	code, body := doJSON(t, e, http.MethodGet, "/navdebug/sections", "localhost:8080")

	require.Equal(t, http.StatusOK, code)
	sections, ok := body["sections"].([]interface{})
	require.True(t, ok)
	assert.Len(t, sections, 7)
	assert.Contains(t, sections, "job-postings")
	assert.Equal(t, "dashboard", body["default"])
	assert.Equal(t, "/dashboard", body["fallback"])
}

func TestNavDebugCurrentSection(t *testing.T) {
	e := newNavDebugServer("")

	code, body := doJSON(t, e, http.MethodGet, "/navdebug/current?path=/job-postings", "127.0.0.1:8080")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "job-postings", body["resolved"])
	assert.Equal(t, true, body["valid"])

	code, body = doJSON(t, e, http.MethodGet, "/navdebug/current", "127.0.0.1:8080")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "dashboard", body["resolved"])
	assert.Equal(t, true, body["valid"])

	code, body = doJSON(t, e, http.MethodGet, "/navdebug/current?path=/nope", "127.0.0.1:8080")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["valid"])
}

func TestNavDebugActivate(t *testing.T) {
	e := newNavDebugServer("")

	code, body := doJSON(t, e, http.MethodPost, "/navdebug/activate/candidates", "localhost:8080")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "candidates", body["active"])
	assert.Equal(t, "Candidates", body["title"])
	assert.NotContains(t, body, "redirect")

	code, body = doJSON(t, e, http.MethodPost, "/navdebug/activate/nonsense", "localhost:8080")
	require.Equal(t, http.StatusOK, code)
	assert.NotContains(t, body, "active")
	assert.Equal(t, "/dashboard", body["redirect"])
}

func TestNavDebugFallback(t *testing.T) {
	e := newNavDebugServer("")

	code, body := doJSON(t, e, http.MethodPost, "/navdebug/fallback", "localhost:8080")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "/dashboard", body["redirect"])
}

func TestNavDebugAbsentOnRealHosts(t *testing.T) {
	e := newNavDebugServer("")

	for _, url := range []string{"/navdebug/sections", "/navdebug/current"} {
		code, _ := doJSON(t, e, http.MethodGet, url, "talentdesk.example.com")
		assert.Equal(t, http.StatusNotFound, code, url)
	}
}
