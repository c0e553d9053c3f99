package nav

import (
	"context"
	"log"
)

// NavigationState is the single currently-active section. It is owned by the
// router and mutated only through Activate; at most one section is active.
type NavigationState struct {
	current SectionID
	active  bool
}

// Current returns the active section, or false when nothing is active yet
// (before the first successful Activate, or after a fallback redirect).
func (s *NavigationState) Current() (SectionID, bool) {
	return s.current, s.active
}

// ClickAction tells a navigation trigger how to react to user activation
type ClickAction int

const (
	// ClickNavigate lets normal link navigation proceed; the destination
	// page activates its own section on load.
	ClickNavigate ClickAction = iota
	// ClickReactivate intercepts the click and re-runs Activate locally,
	// refreshing the current section without a page load.
	ClickReactivate
)

// Router switches the surface between sections. One router serves one page
// build: construct, Bind the registry, then Activate.
type Router struct {
	registry *Registry
	loaders  *LoaderRegistry
	surface  Surface
	state    NavigationState

	// hint is the deployment-provided current-section signal; it takes
	// precedence over the request path when Activate has to resolve.
	hint string
	path string
}

// Option configures a Router
type Option func(*Router)

// WithCurrentSignal supplies the externally-provided hint and the request
// path used to resolve an empty section id.
func WithCurrentSignal(hint, path string) Option {
	return func(r *Router) {
		r.hint = hint
		r.path = path
	}
}

// NewRouter creates a router over a bound registry and a surface. loaders
// may be nil when no section has a data loader.
func NewRouter(registry *Registry, loaders *LoaderRegistry, surface Surface, opts ...Option) *Router {
	r := &Router{registry: registry, loaders: loaders, surface: surface}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State exposes the navigation state for read-only queries
func (r *Router) State() *NavigationState {
	return &r.state
}

// Activate transitions the surface to the given section. An empty id is
// resolved from the current-section signal. Invalid or mis-wired sections
// collapse to a hard redirect to the fallback path; no partial surface
// mutation happens before validation.
func (r *Router) Activate(ctx context.Context, id SectionID) {
	if id == "" {
		id = Resolve(r.hint, r.path)
	}

	if !r.registry.IsValid(id) {
		r.fallback()
		return
	}

	// Hide everything first so at most one section is ever active.
	r.deactivateAll()

	desc, ok := r.registry.Descriptor(id)
	if !ok || desc.Container == nil || desc.Trigger == nil {
		// Declared valid but not wired to the surface.
		log.Printf("nav: section %q is valid but not bound to the surface, falling back", id)
		r.fallback()
		return
	}

	desc.Container.Show()
	desc.Trigger.SetActive(true)

	title := desc.Trigger.Label()
	if title == "" {
		title = string(id)
	}
	r.surface.SetTitle(title)

	r.state.current = id
	r.state.active = true

	// Fire-and-forget: looked up and invoked exactly once per transition,
	// never awaited, loader errors never reach the router.
	if r.loaders != nil {
		if loader, ok := r.loaders.Get(id); ok {
			loader(ctx, id)
		}
	}
}

// ClickAction decides how a trigger click for target should be handled.
// Clicking the already-active section re-activates locally; clicking any
// other section falls through to normal link navigation so per-section URLs,
// deep links and history keep working.
func (r *Router) ClickAction(target SectionID) ClickAction {
	if current, ok := r.state.Current(); ok && current == target {
		return ClickReactivate
	}
	return ClickNavigate
}

func (r *Router) deactivateAll() {
	for _, id := range AllSections {
		desc, ok := r.registry.Descriptor(id)
		if !ok {
			continue
		}
		if desc.Container != nil {
			desc.Container.Hide()
		}
		if desc.Trigger != nil {
			desc.Trigger.SetActive(false)
		}
	}
}

func (r *Router) fallback() {
	r.state.active = false
	r.state.current = ""
	r.surface.Redirect(FallbackPath)
}
