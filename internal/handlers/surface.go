package handlers

import (
	"talentdesk_echo/internal/alias"
	"talentdesk_echo/internal/nav"
	"talentdesk_echo/web/templates/shared"
)

// pageContainer is one section panel on a server-built page
type pageContainer struct {
	visible bool
}

func (c *pageContainer) Show() { c.visible = true }
func (c *pageContainer) Hide() { c.visible = false }

// pageTrigger is one sidebar navigation link
type pageTrigger struct {
	label  string
	active bool
}

func (t *pageTrigger) SetActive(active bool) { t.active = active }
func (t *pageTrigger) Label() string         { return t.label }

// PageSurface is the server-side rendering surface handed to the section
// router. One surface is built per request; after the router activates a
// section the surface describes the page chrome to render.
type PageSurface struct {
	vocab      *alias.Vocabulary
	containers map[string]nav.Container
	triggers   map[string]nav.Trigger
	title      string
	redirect   string
}

// NewPageSurface builds a surface with a container and a labeled trigger for
// every section, labels following the deployment vocabulary.
func NewPageSurface(vocab *alias.Vocabulary) *PageSurface {
	s := &PageSurface{
		vocab:      vocab,
		containers: make(map[string]nav.Container, len(nav.AllSections)),
		triggers:   make(map[string]nav.Trigger, len(nav.AllSections)),
	}
	for _, id := range nav.AllSections {
		s.containers[id.ContainerName()] = &pageContainer{}
		s.triggers[string(id)] = &pageTrigger{label: vocab.SectionLabel(id)}
	}
	return s
}

func (s *PageSurface) Containers() map[string]nav.Container { return s.containers }
func (s *PageSurface) Triggers() map[string]nav.Trigger     { return s.triggers }
func (s *PageSurface) SetTitle(title string)                { s.title = title }
func (s *PageSurface) Redirect(path string)                 { s.redirect = path }

// Title returns the page title set by the router
func (s *PageSurface) Title() string { return s.title }

// RedirectedTo returns the fallback target, or empty when the transition
// succeeded in place.
func (s *PageSurface) RedirectedTo() string { return s.redirect }

// NavItems flattens the surface's triggers into sidebar items, in section
// order. URLs follow the deployment vocabulary so university deployments
// link to /positions.
func (s *PageSurface) NavItems() []shared.NavItem {
	items := make([]shared.NavItem, 0, len(nav.AllSections))
	for _, id := range nav.AllSections {
		trigger, ok := s.triggers[string(id)].(*pageTrigger)
		if !ok {
			continue
		}
		url := id.Path()
		if id == nav.SectionJobPostings && s.vocab.Mode() == alias.BrandModeUniversity {
			url = alias.PositionsPath
		}
		items = append(items, shared.NavItem{
			ID:     string(id),
			Label:  trigger.label,
			URL:    url,
			Active: trigger.active,
		})
	}
	return items
}
