package models

import (
	"time"

	"gorm.io/gorm"
)

type Holiday struct {
	gorm.Model
	Title       string `gorm:"not null"`
	Date        *time.Time
	PublishedAt *time.Time
}

type NewsCategory struct {
	gorm.Model
	Name string `gorm:"not null"`
}

type News struct {
	gorm.Model
	Title          string `gorm:"not null"`
	NewsCategoryID *uint
	NewsCategory   *NewsCategory
	PublishedAt    *time.Time
}

type Event struct {
	gorm.Model
	Title       string `gorm:"not null"`
	EventType   string // Meeting, Celebration, Training, ...
	PublishedAt *time.Time
}

type Townhall struct {
	gorm.Model
	Title              string `gorm:"not null"`
	MeetingContentType string // Video or Pdf
	PublishedAt        *time.Time
}
