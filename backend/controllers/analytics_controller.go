package controllers

import (
	"log"
	"strconv"

	"portal/backend/config"
	"portal/backend/services"
	"portal/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AnalyticsController struct {
	DB      *gorm.DB
	Cfg     *config.Config
	Service *services.AnalyticsService
	Logger  *log.Logger
}

func NewAnalyticsController(db *gorm.DB, cfg *config.Config, logger *log.Logger) *AnalyticsController {
	return &AnalyticsController{
		DB:      db,
		Cfg:     cfg,
		Service: services.NewAnalyticsService(db),
		Logger:  logger,
	}
}

// query reads the first non-empty value among the given parameter names, so
// both camelCase and snake_case spellings are accepted.
func query(c *fiber.Ctx, names ...string) string {
	for _, name := range names {
		if v := c.Query(name); v != "" {
			return v
		}
	}
	return ""
}

func parseFilters(c *fiber.Ctx) services.Filters {
	return services.Filters{
		UserID:         query(c, "userId", "user_id"),
		DateFrom:       query(c, "dateFrom", "date_from"),
		DateTo:         query(c, "dateTo", "date_to"),
		Department:     c.Query("department"),
		Company:        c.Query("company"),
		CourseCategory: query(c, "courseCategory", "course_category"),
	}
}

// LearningGlobal returns the all-employees learning aggregate with the quiz
// block attached.
func (ac *AnalyticsController) LearningGlobal(c *fiber.Ctx) error {
	filters := parseFilters(c)

	report, err := ac.Service.LearningGlobal(filters)
	if err != nil {
		ac.Logger.Printf("analytics learningGlobal error: %v", err)
		return utils.InternalServerError(c, err.Error())
	}

	quiz, err := ac.Service.QuizGlobal(filters)
	if err != nil {
		ac.Logger.Printf("analytics learningGlobal quiz error: %v", err)
		return utils.InternalServerError(c, err.Error())
	}
	report.Quiz = &quiz

	return c.JSON(report)
}

// requireUserID validates the personal-view user id: present and numeric.
// Rejecting non-numeric ids here keeps malformed input from reaching the
// store as a type error.
func requireUserID(filters services.Filters) error {
	if filters.UserID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "userId is required for personal analytics")
	}
	if _, err := strconv.Atoi(filters.UserID); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "userId must be a numeric id")
	}
	return nil
}

// LearningPersonal returns one employee's learning aggregate. 400 without a
// valid userId, 404 when the user has no matching records.
func (ac *AnalyticsController) LearningPersonal(c *fiber.Ctx) error {
	filters := parseFilters(c)
	if err := requireUserID(filters); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	report, err := ac.Service.LearningPersonal(filters.UserID, filters)
	if err != nil {
		ac.Logger.Printf("analytics learningPersonal error: %v", err)
		return utils.InternalServerError(c, err.Error())
	}
	if report == nil {
		return utils.NotFound(c, "No learning data found for this user")
	}

	quiz, err := ac.Service.QuizPersonal(filters.UserID, filters)
	if err != nil {
		ac.Logger.Printf("analytics learningPersonal quiz error: %v", err)
		return utils.InternalServerError(c, err.Error())
	}
	report.Quiz = &quiz

	return c.JSON(report)
}

// LearningEmployeeTable returns the paginated per-employee rollup.
func (ac *AnalyticsController) LearningEmployeeTable(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(query(c, "pageSize", "page_size"))

	params := services.TableParams{
		Company:   c.Query("company"),
		Search:    c.Query("search"),
		DateFrom:  query(c, "dateFrom", "date_from"),
		DateTo:    query(c, "dateTo", "date_to"),
		SortBy:    query(c, "sortBy", "sort_by"),
		SortOrder: query(c, "sortOrder", "sort_order"),
		Page:      page,
		PageSize:  pageSize,
	}

	result, err := ac.Service.EmployeeTable(params)
	if err != nil {
		ac.Logger.Printf("analytics employeeTable error: %v", err)
		return utils.InternalServerError(c, err.Error())
	}
	return c.JSON(result)
}

// OverallGlobal returns the holidays/employees/news/events/townhall aggregate.
func (ac *AnalyticsController) OverallGlobal(c *fiber.Ctx) error {
	report, err := ac.Service.OverallGlobal(parseFilters(c))
	if err != nil {
		ac.Logger.Printf("analytics overallGlobal error: %v", err)
		return utils.InternalServerError(c, err.Error())
	}
	return c.JSON(report)
}

// OverallPersonal returns the per-user subset of the overall view.
func (ac *AnalyticsController) OverallPersonal(c *fiber.Ctx) error {
	filters := parseFilters(c)
	if err := requireUserID(filters); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	report, err := ac.Service.OverallPersonal(filters.UserID, filters)
	if err != nil {
		ac.Logger.Printf("analytics overallPersonal error: %v", err)
		return utils.InternalServerError(c, err.Error())
	}
	if report == nil {
		return utils.NotFound(c, "No overall data found for this user")
	}
	return c.JSON(report)
}

// EmployeesList returns the employee options for the dashboard dropdown.
func (ac *AnalyticsController) EmployeesList(c *fiber.Ctx) error {
	params := services.EmployeeListParams{
		Company:    c.Query("company"),
		Department: c.Query("department"),
		Search:     c.Query("search"),
	}
	options, err := ac.Service.EmployeesList(params)
	if err != nil {
		ac.Logger.Printf("analytics employeesList error: %v", err)
		return utils.InternalServerError(c, err.Error())
	}
	return c.JSON(options)
}

// DepartmentsList returns all departments sorted by name.
func (ac *AnalyticsController) DepartmentsList(c *fiber.Ctx) error {
	options, err := ac.Service.DepartmentsList()
	if err != nil {
		ac.Logger.Printf("analytics departmentsList error: %v", err)
		return utils.InternalServerError(c, err.Error())
	}
	return c.JSON(options)
}
