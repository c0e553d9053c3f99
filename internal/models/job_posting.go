package models

import (
	"time"

	"github.com/teambition/rrule-go"
	"gorm.io/gorm"
)

// JobPostingStatus represents the publication state of a posting
type JobPostingStatus string

const (
	JobPostingStatusOpen   JobPostingStatus = "open"
	JobPostingStatusClosed JobPostingStatus = "closed"
	JobPostingStatusDraft  JobPostingStatus = "draft"
)

// JobPosting represents an open role the team is hiring for
type JobPosting struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Title          string           `gorm:"type:varchar(255)" json:"title"`
	Department     string           `gorm:"type:varchar(255)" json:"department"`
	Location       string           `gorm:"type:varchar(255)" json:"location"`
	EmploymentType string           `gorm:"type:varchar(50);default:'full-time'" json:"employment_type"`
	Description    string           `gorm:"type:text" json:"description"`
	SalaryMin      float64          `gorm:"type:decimal(15,2)" json:"salary_min"`
	SalaryMax      float64          `gorm:"type:decimal(15,2)" json:"salary_max"`
	Status         JobPostingStatus `gorm:"type:varchar(20);default:'open';index" json:"status"`

	PostedAt  time.Time  `json:"posted_at"`
	ExpiresAt *time.Time `gorm:"index" json:"expires_at,omitempty"`

	// RepostRule is an RFC 5545 RRULE string for postings that reopen on a
	// schedule, such as recurring internship intakes. Empty for one-off roles.
	RepostRule *string `gorm:"type:text" json:"repost_rule,omitempty"`

	// Relationships
	Candidates []Candidate `gorm:"foreignKey:JobPostingID" json:"candidates,omitempty"`
}

// NextRepost calculates when a recurring posting should reopen next. For
// one-off postings, or when the rule does not fire again, it returns PostedAt.
func (p JobPosting) NextRepost() time.Time {
	if p.RepostRule == nil || *p.RepostRule == "" {
		return p.PostedAt
	}

	rule, err := rrule.StrToRRule(*p.RepostRule)
	if err != nil {
		return p.PostedAt
	}
	rule.DTStart(p.PostedAt)

	next := rule.After(time.Now(), true)
	if next.IsZero() {
		return p.PostedAt
	}
	return next
}

// Expired reports whether the posting's deadline has passed
func (p JobPosting) Expired(now time.Time) bool {
	return p.ExpiresAt != nil && p.ExpiresAt.Before(now)
}
