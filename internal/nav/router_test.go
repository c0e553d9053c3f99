package nav

import (
	"context"
	"testing"
)

type fakeContainer struct {
	visible bool
}

func (c *fakeContainer) Show() { c.visible = true }
func (c *fakeContainer) Hide() { c.visible = false }

type fakeTrigger struct {
	label  string
	active bool
}

func (t *fakeTrigger) SetActive(active bool) { t.active = active }
func (t *fakeTrigger) Label() string         { return t.label }

type fakeSurface struct {
	containers map[string]Container
	triggers   map[string]Trigger
	title      string
	redirected string
}

func newFakeSurface() *fakeSurface {
	s := &fakeSurface{
		containers: make(map[string]Container),
		triggers:   make(map[string]Trigger),
	}
	labels := map[SectionID]string{
		SectionDashboard:      "Dashboard",
		SectionUpload:         "Upload",
		SectionCandidates:     "Candidates",
		SectionAnalytics:      "Analytics",
		SectionJobPostings:    "Job Postings",
		SectionSettings:       "Settings",
		SectionUserManagement: "User Management",
	}
	for _, id := range AllSections {
		s.containers[id.ContainerName()] = &fakeContainer{}
		s.triggers[string(id)] = &fakeTrigger{label: labels[id]}
	}
	return s
}

func (s *fakeSurface) Containers() map[string]Container { return s.containers }
func (s *fakeSurface) Triggers() map[string]Trigger     { return s.triggers }
func (s *fakeSurface) SetTitle(title string)            { s.title = title }
func (s *fakeSurface) Redirect(path string)             { s.redirected = path }

func (s *fakeSurface) visibleContainers() []string {
	var visible []string
	for name, c := range s.containers {
		if c.(*fakeContainer).visible {
			visible = append(visible, name)
		}
	}
	return visible
}

func (s *fakeSurface) activeTriggers() []string {
	var active []string
	for name, t := range s.triggers {
		if t.(*fakeTrigger).active {
			active = append(active, name)
		}
	}
	return active
}

func newTestRouter(surface *fakeSurface, loaders *LoaderRegistry, opts ...Option) *Router {
	registry := NewRegistry()
	registry.Bind(surface)
	return NewRouter(registry, loaders, surface, opts...)
}

func TestActivateShowsExactlyOneSection(t *testing.T) {
	for _, id := range AllSections {
		t.Run(string(id), func(t *testing.T) {
			surface := newFakeSurface()
			router := newTestRouter(surface, nil)

			router.Activate(context.Background(), id)

			if surface.redirected != "" {
				t.Fatalf("unexpected redirect to %q", surface.redirected)
			}
			visible := surface.visibleContainers()
			if len(visible) != 1 || visible[0] != id.ContainerName() {
				t.Errorf("visible containers = %v; want [%s]", visible, id.ContainerName())
			}
			active := surface.activeTriggers()
			if len(active) != 1 || active[0] != string(id) {
				t.Errorf("active triggers = %v; want [%s]", active, id)
			}
			current, ok := router.State().Current()
			if !ok || current != id {
				t.Errorf("state = (%q, %v); want (%q, true)", current, ok, id)
			}
		})
	}
}

func TestActivateInvalidSectionRedirectsToFallback(t *testing.T) {
	invalid := []SectionID{"../../etc", "DASHBOARD", "", "jobs", "dashboard "}

	for _, id := range invalid {
		t.Run(string(id), func(t *testing.T) {
			surface := newFakeSurface()
			router := newTestRouter(surface, nil)

			router.Activate(context.Background(), id)

			if surface.redirected != FallbackPath {
				t.Errorf("redirect = %q; want %q", surface.redirected, FallbackPath)
			}
			if visible := surface.visibleContainers(); len(visible) != 0 {
				t.Errorf("containers left visible on fallback: %v", visible)
			}
			if _, ok := router.State().Current(); ok {
				t.Error("state reports an active section after fallback")
			}
		})
	}
}

func TestActivateEmptyIDResolvesFromSignal(t *testing.T) {
	tests := []struct {
		name string
		hint string
		path string
		want SectionID
	}{
		{name: "root path", path: "/", want: SectionDashboard},
		{name: "dashboard path", path: "/dashboard", want: SectionDashboard},
		{name: "job postings path", path: "/job-postings", want: SectionJobPostings},
		{name: "hint wins over path", hint: "candidates", path: "/analytics", want: SectionCandidates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface := newFakeSurface()
			router := newTestRouter(surface, nil, WithCurrentSignal(tt.hint, tt.path))

			router.Activate(context.Background(), "")

			current, ok := router.State().Current()
			if !ok || current != tt.want {
				t.Errorf("resolved section = (%q, %v); want %q", current, ok, tt.want)
			}
		})
	}
}

func TestActivateIsIdempotent(t *testing.T) {
	surface := newFakeSurface()
	router := newTestRouter(surface, nil)

	router.Activate(context.Background(), SectionCandidates)
	router.Activate(context.Background(), SectionCandidates)

	visible := surface.visibleContainers()
	if len(visible) != 1 || visible[0] != SectionCandidates.ContainerName() {
		t.Errorf("visible containers after double activate = %v; want [%s]",
			visible, SectionCandidates.ContainerName())
	}
}

func TestActivateSwitchingSectionsLeavesOneActive(t *testing.T) {
	surface := newFakeSurface()
	router := newTestRouter(surface, nil)

	router.Activate(context.Background(), SectionDashboard)
	router.Activate(context.Background(), SectionAnalytics)

	visible := surface.visibleContainers()
	if len(visible) != 1 || visible[0] != SectionAnalytics.ContainerName() {
		t.Errorf("visible containers = %v; want [%s]", visible, SectionAnalytics.ContainerName())
	}
	active := surface.activeTriggers()
	if len(active) != 1 || active[0] != string(SectionAnalytics) {
		t.Errorf("active triggers = %v; want [%s]", active, SectionAnalytics)
	}
}

func TestActivateSetsTitleFromTriggerLabel(t *testing.T) {
	surface := newFakeSurface()
	router := newTestRouter(surface, nil)

	router.Activate(context.Background(), SectionJobPostings)

	if surface.title != "Job Postings" {
		t.Errorf("title = %q; want %q", surface.title, "Job Postings")
	}
}

func TestActivateFallsBackToRawIDWhenLabelEmpty(t *testing.T) {
	surface := newFakeSurface()
	surface.triggers[string(SectionUpload)] = &fakeTrigger{}
	router := newTestRouter(surface, nil)

	router.Activate(context.Background(), SectionUpload)

	if surface.title != string(SectionUpload) {
		t.Errorf("title = %q; want %q", surface.title, SectionUpload)
	}
}

func TestActivateInvokesLoaderExactlyOnce(t *testing.T) {
	surface := newFakeSurface()
	loaders := NewLoaderRegistry()
	calls := 0
	loaders.Register(SectionJobPostings, func(ctx context.Context, id SectionID) {
		calls++
		if id != SectionJobPostings {
			t.Errorf("loader invoked with id %q; want %q", id, SectionJobPostings)
		}
	})
	router := newTestRouter(surface, loaders)

	router.Activate(context.Background(), SectionJobPostings)
	if calls != 1 {
		t.Fatalf("loader calls after first activate = %d; want 1", calls)
	}

	// A second transition into the section fires the loader again; there is
	// no de-duplication across transitions.
	router.Activate(context.Background(), SectionJobPostings)
	if calls != 2 {
		t.Fatalf("loader calls after second activate = %d; want 2", calls)
	}
}

func TestActivateWithoutLoaderIsNotAnError(t *testing.T) {
	surface := newFakeSurface()
	router := newTestRouter(surface, NewLoaderRegistry())

	router.Activate(context.Background(), SectionSettings)

	if current, ok := router.State().Current(); !ok || current != SectionSettings {
		t.Errorf("state = (%q, %v); want (%q, true)", current, ok, SectionSettings)
	}
}

func TestActivateUnwiredSectionFallsBack(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *fakeSurface)
	}{
		{
			name:   "missing container",
			mutate: func(s *fakeSurface) { delete(s.containers, SectionUpload.ContainerName()) },
		},
		{
			name:   "missing trigger",
			mutate: func(s *fakeSurface) { delete(s.triggers, string(SectionUpload)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface := newFakeSurface()
			tt.mutate(surface)
			router := newTestRouter(surface, nil)

			router.Activate(context.Background(), SectionUpload)

			if surface.redirected != FallbackPath {
				t.Errorf("redirect = %q; want %q", surface.redirected, FallbackPath)
			}
			if visible := surface.visibleContainers(); len(visible) != 0 {
				t.Errorf("containers left visible: %v", visible)
			}
		})
	}
}

func TestClickActionInterceptsOnlySameSection(t *testing.T) {
	surface := newFakeSurface()
	router := newTestRouter(surface, nil)
	router.Activate(context.Background(), SectionCandidates)

	if got := router.ClickAction(SectionCandidates); got != ClickReactivate {
		t.Errorf("same-section click = %v; want ClickReactivate", got)
	}
	if got := router.ClickAction(SectionAnalytics); got != ClickNavigate {
		t.Errorf("cross-section click = %v; want ClickNavigate", got)
	}
}

func TestClickActionNavigatesWhenNothingActive(t *testing.T) {
	surface := newFakeSurface()
	router := newTestRouter(surface, nil)

	if got := router.ClickAction(SectionDashboard); got != ClickNavigate {
		t.Errorf("click before any activation = %v; want ClickNavigate", got)
	}
}
