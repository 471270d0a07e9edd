package routes

import (
	"log"

	"portal/backend/config"
	"portal/backend/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, logger *log.Logger) {
	// Analytics routes (consumed by the admin dashboard)
	analyticsController := controllers.NewAnalyticsController(db, cfg, logger)
	analytics := app.Group("/api/analytics")
	analytics.Get("/learning/global", analyticsController.LearningGlobal)
	analytics.Get("/learning/personal", analyticsController.LearningPersonal)
	analytics.Get("/learning/employee-table", analyticsController.LearningEmployeeTable)
	analytics.Get("/overall/global", analyticsController.OverallGlobal)
	analytics.Get("/overall/personal", analyticsController.OverallPersonal)
	analytics.Get("/employees", analyticsController.EmployeesList)
	analytics.Get("/departments", analyticsController.DepartmentsList)
}
