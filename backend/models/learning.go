package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Progress statuses for UserProgress.ProgressStatus
const (
	StatusNotStarted = "Not_started"
	StatusInProgress = "In_progress"
	StatusCompleted  = "Completed"
	StatusFailed     = "Failed"
)

// ProgressStatuses lists every known status, in presentation order.
var ProgressStatuses = []string{StatusNotStarted, StatusInProgress, StatusCompleted, StatusFailed}

type CourseCategory struct {
	gorm.Model
	Name string `gorm:"not null"`
}

type Course struct {
	gorm.Model
	Title            string `gorm:"not null"`
	CourseCategoryID *uint
	CourseCategory   *CourseCategory
}

type UserProgress struct {
	gorm.Model
	UserID             *uint
	User               *User
	CourseID           *uint
	Course             *Course
	ProgressStatus     string `gorm:"not null"` // Not_started, In_progress, Completed, Failed
	ProgressPercentage int    `gorm:"default:0"`
	TimeSpentMinutes   int    `gorm:"default:0"`
	CompletedModules   datatypes.JSONSlice[string]
	CompletedAt        *time.Time
	LastAccessedAt     *time.Time
	CertificateIssued  bool `gorm:"default:false"`
}

type Quiz struct {
	gorm.Model
	Title string `gorm:"not null"`
}

type QuizSubmission struct {
	gorm.Model
	QuizID        *uint
	Quiz          *Quiz
	SubmittedByID *uint
	SubmittedBy   *User
	Score         int `gorm:"default:0"`
	Passed        bool
	AttemptNumber int `gorm:"default:1"`
	SubmittedAt   *time.Time
}
