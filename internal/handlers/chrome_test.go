package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentdesk_echo/internal/alias"
	"talentdesk_echo/internal/nav"
	"talentdesk_echo/internal/services"
)

func newTestContext(t *testing.T, path string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestChromeActivateFromPath(t *testing.T) {
	tests := []struct {
		path      string
		wantNav   string
		wantTitle string
	}{
		{path: "/", wantNav: "dashboard", wantTitle: "Dashboard"},
		{path: "/dashboard", wantNav: "dashboard", wantTitle: "Dashboard"},
		{path: "/candidates", wantNav: "candidates", wantTitle: "Candidates"},
		{path: "/job-postings", wantNav: "job-postings", wantTitle: "Job Postings"},
	}

	chrome := NewChrome(alias.NewVocabulary(""), nil, nil, "")

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			c, _ := newTestContext(t, tt.path)

			props, done, err := chrome.Activate(c)
			require.NoError(t, err)
			require.False(t, done)

			assert.Equal(t, tt.wantNav, props.ActiveNav)
			assert.Equal(t, tt.wantTitle, props.Title)

			activeCount := 0
			for _, item := range props.Nav {
				if item.Active {
					activeCount++
					assert.Equal(t, tt.wantNav, item.ID)
				}
			}
			assert.Equal(t, 1, activeCount, "exactly one nav item active")
		})
	}
}

func TestChromeActivateInvalidPathRedirects(t *testing.T) {
	chrome := NewChrome(alias.NewVocabulary(""), nil, nil, "")

	for _, path := range []string{"/bogus", "/DASHBOARD", "/candidates%2F..", "/pay"} {
		t.Run(path, func(t *testing.T) {
			c, rec := newTestContext(t, path)

			_, done, err := chrome.Activate(c)
			require.NoError(t, err)
			require.True(t, done)

			assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
			assert.Equal(t, nav.FallbackPath, rec.Header().Get("Location"))
		})
	}
}

func TestChromeActivateHintWinsOverPath(t *testing.T) {
	chrome := NewChrome(alias.NewVocabulary(""), nil, nil, "settings")
	c, _ := newTestContext(t, "/candidates")

	props, done, err := chrome.Activate(c)
	require.NoError(t, err)
	require.False(t, done)
	assert.Equal(t, "settings", props.ActiveNav)
}

func TestChromeActivateSectionForSubPages(t *testing.T) {
	chrome := NewChrome(alias.NewVocabulary(""), nil, nil, "")
	c, _ := newTestContext(t, "/user-management/5/edit")

	props, done, err := chrome.ActivateSection(c, nav.SectionUserManagement)
	require.NoError(t, err)
	require.False(t, done)
	assert.Equal(t, "user-management", props.ActiveNav)
}

func TestChromeUniversityBranding(t *testing.T) {
	chrome := NewChrome(alias.NewVocabulary("university"), nil, nil, "")
	c, _ := newTestContext(t, "/positions")

	props, done, err := chrome.Activate(c)
	require.NoError(t, err)
	require.False(t, done)

	// The alias canonicalizes to the job-postings section but keeps the
	// positions vocabulary in the chrome.
	assert.Equal(t, "job-postings", props.ActiveNav)
	assert.Equal(t, "Positions", props.Title)

	var postingsItem *struct {
		url   string
		label string
	}
	for _, item := range props.Nav {
		if item.ID == "job-postings" {
			postingsItem = &struct {
				url   string
				label string
			}{url: item.URL, label: item.Label}
		}
	}
	require.NotNil(t, postingsItem)
	assert.Equal(t, alias.PositionsPath, postingsItem.url)
	assert.Equal(t, "Positions", postingsItem.label)
}

func TestChromeActivateWithoutRedisBackend(t *testing.T) {
	// A deployment without REDIS_URL still serves authenticated pages; the
	// notifier simply has no backing cache.
	chrome := NewChrome(alias.NewVocabulary(""), nil, services.NewNotifier(nil), "")
	c, _ := newTestContext(t, "/candidates")
	c.Set("userUID", "u-1")
	c.Set("userEmail", "recruiter@example.com")

	props, done, err := chrome.Activate(c)
	require.NoError(t, err)
	require.False(t, done)

	assert.Equal(t, "candidates", props.ActiveNav)
	assert.Empty(t, props.Flashes)
	assert.Equal(t, "u-1", props.UserUID)
}

func TestPageSurfaceLoaderFiresOncePerActivation(t *testing.T) {
	loaders := nav.NewLoaderRegistry()
	calls := 0
	loaders.Register(nav.SectionJobPostings, func(_ context.Context, id nav.SectionID) {
		calls++
	})
	chrome := NewChrome(alias.NewVocabulary(""), loaders, nil, "")

	c, _ := newTestContext(t, "/job-postings")
	_, done, err := chrome.Activate(c)
	require.NoError(t, err)
	require.False(t, done)
	assert.Equal(t, 1, calls)

	c2, _ := newTestContext(t, "/job-postings")
	_, _, err = chrome.Activate(c2)
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "each activation fires the loader again")
}
