package utils

import (
	"fmt"

	"portal/backend/config"
	"portal/backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the postgres connection and migrates the portal schema
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the tables the aggregation service reads. The records
// themselves are owned by the portal CMS; this service never writes them.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Department{},
		&models.User{},
		&models.CourseCategory{},
		&models.Course{},
		&models.UserProgress{},
		&models.Quiz{},
		&models.QuizSubmission{},
		&models.Holiday{},
		&models.NewsCategory{},
		&models.News{},
		&models.Event{},
		&models.Townhall{},
	)
}
