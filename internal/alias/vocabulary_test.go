package alias

import (
	"testing"

	"talentdesk_echo/internal/nav"
)

func TestSectionLabel(t *testing.T) {
	tests := []struct {
		name string
		mode string
		id   nav.SectionID
		want string
	}{
		{name: "default job postings", mode: "default", id: nav.SectionJobPostings, want: "Job Postings"},
		{name: "university renames job postings", mode: "university", id: nav.SectionJobPostings, want: "Positions"},
		{name: "university leaves candidates alone", mode: "university", id: nav.SectionCandidates, want: "Candidates"},
		{name: "unknown mode falls back to default", mode: "enterprise", id: nav.SectionJobPostings, want: "Job Postings"},
		{name: "empty mode is default", mode: "", id: nav.SectionDashboard, want: "Dashboard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vocab := NewVocabulary(tt.mode)
			if got := vocab.SectionLabel(tt.id); got != tt.want {
				t.Errorf("SectionLabel(%q) = %q; want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestCanonicalPath(t *testing.T) {
	vocab := NewVocabulary("university")

	tests := []struct {
		path string
		want string
	}{
		{path: "/positions", want: "/job-postings"},
		{path: "/positions/7/edit", want: "/job-postings/7/edit"},
		{path: "/job-postings", want: "/job-postings"},
		{path: "/candidates", want: "/candidates"},
		{path: "/positionsarchive", want: "/positionsarchive"},
	}

	for _, tt := range tests {
		if got := vocab.CanonicalPath(tt.path); got != tt.want {
			t.Errorf("CanonicalPath(%q) = %q; want %q", tt.path, got, tt.want)
		}
	}
}
