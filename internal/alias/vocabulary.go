// Package alias maps the dashboard's "job" vocabulary onto the "position"
// vocabulary used by university-branded deployments. Sections keep their
// canonical ids; only labels and URL aliases change.
package alias

import (
	"strings"

	"talentdesk_echo/internal/nav"
)

// BrandMode selects the deployment vocabulary
type BrandMode string

const (
	BrandModeDefault    BrandMode = "default"
	BrandModeUniversity BrandMode = "university"
)

// PositionsPath is the aliased URL for the job-postings section under
// university branding.
const PositionsPath = "/positions"

var defaultLabels = map[nav.SectionID]string{
	nav.SectionDashboard:      "Dashboard",
	nav.SectionUpload:         "Upload",
	nav.SectionCandidates:     "Candidates",
	nav.SectionAnalytics:      "Analytics",
	nav.SectionJobPostings:    "Job Postings",
	nav.SectionSettings:       "Settings",
	nav.SectionUserManagement: "User Management",
}

// Vocabulary resolves section display labels for a brand mode
type Vocabulary struct {
	mode BrandMode
}

// NewVocabulary creates a vocabulary for mode; unknown modes get the default
func NewVocabulary(mode string) *Vocabulary {
	if BrandMode(mode) == BrandModeUniversity {
		return &Vocabulary{mode: BrandModeUniversity}
	}
	return &Vocabulary{mode: BrandModeDefault}
}

// Mode returns the active brand mode
func (v *Vocabulary) Mode() BrandMode {
	return v.mode
}

// SectionLabel returns the display label for a section. University-branded
// deployments call job postings "Positions"; everything else is unchanged.
func (v *Vocabulary) SectionLabel(id nav.SectionID) string {
	if v.mode == BrandModeUniversity && id == nav.SectionJobPostings {
		return "Positions"
	}
	return defaultLabels[id]
}

// CanonicalPath rewrites an aliased request path to its canonical section
// path. Paths that carry no alias pass through untouched.
func (v *Vocabulary) CanonicalPath(path string) string {
	if path == PositionsPath {
		return nav.SectionJobPostings.Path()
	}
	if strings.HasPrefix(path, PositionsPath+"/") {
		return nav.SectionJobPostings.Path() + strings.TrimPrefix(path, PositionsPath)
	}
	return path
}
