package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"talentdesk_echo/internal/alias"
	"talentdesk_echo/internal/nav"
)

// NavDebugHandler exposes the section router for manual poking on
// development hosts. The routes are mounted behind the local-only gate and
// never exist on real deployments.
type NavDebugHandler struct {
	vocab *alias.Vocabulary
	hint  string
}

// NewNavDebugHandler creates a new NavDebugHandler
func NewNavDebugHandler(vocab *alias.Vocabulary, hint string) *NavDebugHandler {
	return &NavDebugHandler{vocab: vocab, hint: hint}
}

// ListSections returns the fixed set of valid section ids
func (h *NavDebugHandler) ListSections(c echo.Context) error {
	ids := make([]string, 0, len(nav.AllSections))
	for _, id := range nav.AllSections {
		ids = append(ids, string(id))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"sections": ids,
		"default":  string(nav.DefaultSection),
		"fallback": nav.FallbackPath,
	})
}

// CurrentSection resolves the section for a given path (or the deployment
// hint) without mutating anything.
func (h *NavDebugHandler) CurrentSection(c echo.Context) error {
	path := c.QueryParam("path")
	if path == "" {
		path = "/"
	}
	resolved := nav.Resolve(h.hint, h.vocab.CanonicalPath(path))

	return c.JSON(http.StatusOK, map[string]interface{}{
		"path":     path,
		"resolved": string(resolved),
		"valid":    nav.NewRegistry().IsValid(resolved),
	})
}

// Activate runs a full router transition against a throwaway surface and
// reports the outcome.
func (h *NavDebugHandler) Activate(c echo.Context) error {
	id := nav.SectionID(c.Param("id"))
	return c.JSON(http.StatusOK, h.run(c, id))
}

// Fallback forces the invalid-section path through the router
func (h *NavDebugHandler) Fallback(c echo.Context) error {
	return c.JSON(http.StatusOK, h.run(c, "__invalid__"))
}

func (h *NavDebugHandler) run(c echo.Context, id nav.SectionID) map[string]interface{} {
	surface := NewPageSurface(h.vocab)
	registry := nav.NewRegistry()
	registry.Bind(surface)
	router := nav.NewRouter(registry, nil, surface)

	router.Activate(c.Request().Context(), id)

	result := map[string]interface{}{
		"requested": string(id),
		"title":     surface.Title(),
	}
	if current, ok := router.State().Current(); ok {
		result["active"] = string(current)
	}
	if target := surface.RedirectedTo(); target != "" {
		result["redirect"] = target
	}
	return result
}
