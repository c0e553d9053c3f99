package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CandidateStage represents where a candidate sits in the hiring pipeline
type CandidateStage string

const (
	CandidateStageApplied   CandidateStage = "applied"
	CandidateStageScreening CandidateStage = "screening"
	CandidateStageInterview CandidateStage = "interview"
	CandidateStageOffer     CandidateStage = "offer"
	CandidateStageHired     CandidateStage = "hired"
	CandidateStageRejected  CandidateStage = "rejected"
)

// AllCandidateStages lists the pipeline stages in funnel order
var AllCandidateStages = []CandidateStage{
	CandidateStageApplied,
	CandidateStageScreening,
	CandidateStageInterview,
	CandidateStageOffer,
	CandidateStageHired,
	CandidateStageRejected,
}

// Candidate represents an applicant in the pipeline
type Candidate struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// UUID is the public token used in shareable candidate links
	UUID string `gorm:"type:varchar(36);uniqueIndex" json:"uuid"`

	Name      string         `gorm:"type:varchar(255)" json:"name"`
	Email     string         `gorm:"type:varchar(255);index" json:"email"`
	Phone     string         `gorm:"type:varchar(50)" json:"phone"`
	Stage     CandidateStage `gorm:"type:varchar(20);default:'applied';index" json:"stage"`
	ResumeURL string         `gorm:"type:text" json:"resume_url"`
	Notes     string         `gorm:"type:text" json:"notes"`

	JobPostingID *uint `gorm:"index" json:"job_posting_id,omitempty"`
	UploadID     *uint `gorm:"index" json:"upload_id,omitempty"`

	// Relationships
	JobPosting *JobPosting      `gorm:"foreignKey:JobPostingID" json:"job_posting,omitempty"`
	Upload     *CandidateUpload `gorm:"foreignKey:UploadID" json:"upload,omitempty"`
}

// BeforeCreate assigns the public token
func (c *Candidate) BeforeCreate(tx *gorm.DB) error {
	if c.UUID == "" {
		c.UUID = uuid.NewString()
	}
	return nil
}

// IsActive reports whether the candidate is still in play
func (c Candidate) IsActive() bool {
	return c.Stage != CandidateStageHired && c.Stage != CandidateStageRejected
}

// ValidStage reports whether s is a known pipeline stage
func ValidStage(s CandidateStage) bool {
	for _, stage := range AllCandidateStages {
		if stage == s {
			return true
		}
	}
	return false
}
