package models

import (
	"testing"
	"time"
)

func TestNextRepost(t *testing.T) {
	daily := "FREQ=DAILY;INTERVAL=1"
	badRule := "FREQ=SOMETIMES"
	posted := time.Now().Add(-47 * time.Hour)

	tests := []struct {
		name       string
		posting    JobPosting
		wantFuture bool
	}{
		{
			name:       "one-off posting keeps posted date",
			posting:    JobPosting{PostedAt: posted},
			wantFuture: false,
		},
		{
			name:       "recurring posting advances past now",
			posting:    JobPosting{PostedAt: posted, RepostRule: &daily},
			wantFuture: true,
		},
		{
			name:       "unparseable rule falls back to posted date",
			posting:    JobPosting{PostedAt: posted, RepostRule: &badRule},
			wantFuture: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := tt.posting.NextRepost()
			if tt.wantFuture && !next.After(time.Now()) {
				t.Errorf("NextRepost() = %v; want a future date", next)
			}
			if !tt.wantFuture && !next.Equal(tt.posting.PostedAt) {
				t.Errorf("NextRepost() = %v; want PostedAt %v", next, tt.posting.PostedAt)
			}
		})
	}
}

func TestExpired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name    string
		posting JobPosting
		want    bool
	}{
		{name: "no deadline", posting: JobPosting{}, want: false},
		{name: "deadline passed", posting: JobPosting{ExpiresAt: &past}, want: true},
		{name: "deadline ahead", posting: JobPosting{ExpiresAt: &future}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.posting.Expired(now); got != tt.want {
				t.Errorf("Expired() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestValidStage(t *testing.T) {
	for _, stage := range AllCandidateStages {
		if !ValidStage(stage) {
			t.Errorf("ValidStage(%q) = false; want true", stage)
		}
	}
	for _, stage := range []CandidateStage{"", "APPLIED", "shortlisted"} {
		if ValidStage(stage) {
			t.Errorf("ValidStage(%q) = true; want false", stage)
		}
	}
}
