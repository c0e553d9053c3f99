package nav

import "strings"

// SectionID identifies one of the dashboard's UI sections
type SectionID string

const (
	SectionDashboard      SectionID = "dashboard"
	SectionUpload         SectionID = "upload"
	SectionCandidates     SectionID = "candidates"
	SectionAnalytics      SectionID = "analytics"
	SectionJobPostings    SectionID = "job-postings"
	SectionSettings       SectionID = "settings"
	SectionUserManagement SectionID = "user-management"
)

// DefaultSection is where unresolvable navigation lands
const DefaultSection = SectionDashboard

// FallbackPath is the hard-redirect target for invalid sections
const FallbackPath = "/dashboard"

// AllSections is the fixed, closed set of valid sections, in sidebar order
var AllSections = []SectionID{
	SectionDashboard,
	SectionUpload,
	SectionCandidates,
	SectionAnalytics,
	SectionJobPostings,
	SectionSettings,
	SectionUserManagement,
}

// Path returns the URL path serving this section
func (id SectionID) Path() string {
	return "/" + string(id)
}

// ContainerName returns the surface name of the section's content container
func (id SectionID) ContainerName() string {
	return string(id) + "Section"
}

// Container is a content panel on the rendering surface
type Container interface {
	Show()
	Hide()
}

// Trigger is a navigation element that targets a section
type Trigger interface {
	SetActive(active bool)
	Label() string
}

// Surface is the rendering capability handed to the router. It exposes
// discovery of containers (keyed by "<id>Section") and triggers (keyed by
// their data-section marker), title updates, and full navigation.
type Surface interface {
	Containers() map[string]Container
	Triggers() map[string]Trigger
	SetTitle(title string)
	Redirect(path string)
}

// Descriptor binds a section to its surface elements and optional loader
type Descriptor struct {
	ID        SectionID
	Container Container
	Trigger   Trigger
}

// Registry holds the fixed section set and, once bound, the descriptor for
// each section. Bind is meant to run once per page build; it is not designed
// for re-binding.
type Registry struct {
	descriptors map[SectionID]*Descriptor
}

// NewRegistry creates an unbound registry over the fixed section set
func NewRegistry() *Registry {
	return &Registry{descriptors: make(map[SectionID]*Descriptor, len(AllSections))}
}

// IsValid reports whether id is a member of the fixed section set.
// Membership is case-sensitive: "DASHBOARD" is not a section.
func (r *Registry) IsValid(id SectionID) bool {
	for _, s := range AllSections {
		if s == id {
			return true
		}
	}
	return false
}

// Bind scans the surface for section containers and triggers and builds the
// descriptor map. Elements on the surface that do not correspond to a valid
// section are ignored; valid sections missing their wiring get a descriptor
// with nil handles, which Activate treats as a configuration inconsistency.
func (r *Registry) Bind(surface Surface) {
	containers := surface.Containers()
	triggers := surface.Triggers()

	for _, id := range AllSections {
		r.descriptors[id] = &Descriptor{
			ID:        id,
			Container: containers[id.ContainerName()],
			Trigger:   triggers[string(id)],
		}
	}
}

// Descriptor returns the bound descriptor for id
func (r *Registry) Descriptor(id SectionID) (*Descriptor, bool) {
	d, ok := r.descriptors[id]
	return d, ok
}

// Resolve derives a section id from the deployment hint and the request
// path. The hint wins when present; otherwise the path with its leading
// separator stripped is used, and the root path maps to the default section.
// Resolve does not validate membership; Activate does.
func Resolve(hint, path string) SectionID {
	if hint != "" {
		return SectionID(hint)
	}
	if path == "/" {
		return DefaultSection
	}
	return SectionID(strings.TrimPrefix(path, "/"))
}
