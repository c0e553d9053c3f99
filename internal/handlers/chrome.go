package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"talentdesk_echo/internal/alias"
	"talentdesk_echo/internal/nav"
	"talentdesk_echo/internal/services"
	"talentdesk_echo/web/templates/shared"
)

// Chrome drives the section router for every page request and produces the
// common page props. One Chrome is shared by all section handlers.
type Chrome struct {
	vocab    *alias.Vocabulary
	loaders  *nav.LoaderRegistry
	notifier *services.Notifier

	// hint is the deployment-provided current-section override, normally
	// empty so the request path decides.
	hint string
}

// NewChrome creates the shared page chrome driver
func NewChrome(vocab *alias.Vocabulary, loaders *nav.LoaderRegistry, notifier *services.Notifier, hint string) *Chrome {
	return &Chrome{vocab: vocab, loaders: loaders, notifier: notifier, hint: hint}
}

// Activate runs a full router transition for the request, resolving the
// section id from the deployment hint and the (alias-canonicalized) request
// path. On fallback it issues the hard redirect and reports done=true; the
// caller must not render anything after that.
func (ch *Chrome) Activate(c echo.Context) (shared.PageProps, bool, error) {
	return ch.activate(c, "")
}

// ActivateSection runs a router transition into an explicit section, used by
// sub-pages (forms, detail views) whose path is not the section path itself.
func (ch *Chrome) ActivateSection(c echo.Context, id nav.SectionID) (shared.PageProps, bool, error) {
	return ch.activate(c, id)
}

func (ch *Chrome) activate(c echo.Context, id nav.SectionID) (shared.PageProps, bool, error) {
	surface := NewPageSurface(ch.vocab)
	registry := nav.NewRegistry()
	registry.Bind(surface)

	path := ch.vocab.CanonicalPath(c.Request().URL.Path)
	router := nav.NewRouter(registry, ch.loaders, surface, nav.WithCurrentSignal(ch.hint, path))
	router.Activate(c.Request().Context(), id)

	if target := surface.RedirectedTo(); target != "" {
		return shared.PageProps{}, true, c.Redirect(http.StatusTemporaryRedirect, target)
	}

	current, _ := router.State().Current()

	uid := getStringFromContext(c, "userUID")
	var flashes []shared.FlashView
	if ch.notifier != nil && uid != "" {
		for _, flash := range ch.notifier.Pop(c.Request().Context(), uid) {
			flashes = append(flashes, shared.FlashView{Level: string(flash.Level), Message: flash.Message})
		}
	}

	return shared.PageProps{
		Title:     surface.Title(),
		ActiveNav: string(current),
		Breadcrumbs: []shared.Breadcrumb{
			{Title: "Home", URL: "/"},
			{Title: surface.Title()},
		},
		UserEmail: getStringFromContext(c, "userEmail"),
		UserUID:   uid,
		Nav:       surface.NavItems(),
		Flashes:   flashes,
	}, false, nil
}

// Vocabulary exposes the deployment vocabulary to handlers that label
// domain entities.
func (ch *Chrome) Vocabulary() *alias.Vocabulary { return ch.vocab }

// Notify queues a flash message for the current user's next page render
func (ch *Chrome) Notify(c echo.Context, level services.FlashLevel, message string) {
	if ch.notifier == nil {
		return
	}
	uid := getStringFromContext(c, "userUID")
	if uid == "" {
		return
	}
	ch.notifier.Push(c.Request().Context(), uid, level, message)
}

// Helper to safely get string from context
func getStringFromContext(c echo.Context, key string) string {
	val := c.Get(key)
	if val == nil {
		return ""
	}
	strVal, ok := val.(string)
	if !ok {
		return ""
	}
	return strVal
}
