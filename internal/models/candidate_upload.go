package models

import (
	"time"

	"gorm.io/gorm"
)

// UploadStatus represents the outcome of a CSV import batch
type UploadStatus string

const (
	UploadStatusProcessing UploadStatus = "processing"
	UploadStatusCompleted  UploadStatus = "completed"
	UploadStatusFailed     UploadStatus = "failed"
)

// CandidateUpload represents one CSV import of candidates
type CandidateUpload struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Filename     string       `gorm:"type:varchar(255)" json:"filename"`
	Status       UploadStatus `gorm:"type:varchar(20);default:'processing'" json:"status"`
	RowCount     int          `json:"row_count"`
	ImportedRows int          `json:"imported_rows"`
	SkippedRows  int          `json:"skipped_rows"`
	Error        string       `gorm:"type:text" json:"error,omitempty"`

	UploadedByID *uint `gorm:"index" json:"uploaded_by_id,omitempty"`

	// Relationships
	UploadedBy *User       `gorm:"foreignKey:UploadedByID" json:"uploaded_by,omitempty"`
	Candidates []Candidate `gorm:"foreignKey:UploadID" json:"candidates,omitempty"`
}
