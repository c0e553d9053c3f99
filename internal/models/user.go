package models

import (
	"time"

	"gorm.io/gorm"
)

// UserType represents the role of a dashboard user
type UserType string

const (
	UserTypeAdmin     UserType = "Admin"
	UserTypeRecruiter UserType = "Recruiter"
	UserTypeMember    UserType = "Member"
)

// User represents a dashboard user
type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Name     string   `gorm:"type:varchar(255)" json:"name"`
	Phone    string   `gorm:"type:varchar(50)" json:"phone"`
	Email    string   `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	UserType UserType `gorm:"type:varchar(20);default:'Member'" json:"user_type"`

	// FirebaseUID links the row to its auth identity; empty for users who
	// have never signed in.
	FirebaseUID string `gorm:"type:varchar(128);index" json:"firebase_uid,omitempty"`

	// Relationships
	Uploads []CandidateUpload `gorm:"foreignKey:UploadedByID" json:"uploads,omitempty"`
}
