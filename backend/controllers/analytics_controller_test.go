package controllers_test

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"portal/backend/config"
	"portal/backend/models"
	"portal/backend/routes"
	"portal/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, utils.Migrate(db))

	cfg := &config.Config{ServerPort: "8080"}
	app := fiber.New()
	routes.SetupRoutes(app, db, cfg, log.New(io.Discard, "", 0))
	return app, db
}

func decodeBody(t *testing.T, resp io.Reader) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp).Decode(&result))
	return result
}

func TestLearningGlobalEndpoint(t *testing.T) {
	app, db := newTestApp(t)

	user := models.User{Username: "alice", Email: "alice@example.com", EmployeeName: "alice", Company: "AIA", IsActive: true}
	require.NoError(t, db.Create(&user).Error)

	accessed, _ := time.Parse("2006-01-02", "2024-03-10")
	progress := models.UserProgress{
		UserID:         &user.ID,
		ProgressStatus: models.StatusCompleted,
		CompletedAt:    &accessed,
		LastAccessedAt: &accessed,
	}
	require.NoError(t, db.Create(&progress).Error)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/analytics/learning/global", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Contains(t, body, "kpis")
	assert.Contains(t, body, "statusDistribution")
	assert.Contains(t, body, "monthlyCompletions")
	assert.Contains(t, body, "quiz")
	assert.Len(t, body["statusDistribution"], 4)

	kpis := body["kpis"].(map[string]interface{})
	assert.Equal(t, float64(1), kpis["totalAssignments"])
	assert.Equal(t, float64(100), kpis["completionRate"])
}

func TestLearningPersonalRequiresUserID(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/analytics/learning/personal", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, false, body["success"])
}

func TestLearningPersonalRejectsNonNumericUserID(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/analytics/learning/personal?userId=abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLearningPersonalNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/analytics/learning/personal?userId=9999", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestLearningPersonalEndpoint(t *testing.T) {
	app, db := newTestApp(t)

	user := models.User{Username: "bob", Email: "bob@example.com", EmployeeName: "bob", Company: "Vega", IsActive: true}
	require.NoError(t, db.Create(&user).Error)

	accessed, _ := time.Parse("2006-01-02", "2024-04-01")
	progress := models.UserProgress{
		UserID:             &user.ID,
		ProgressStatus:     models.StatusInProgress,
		ProgressPercentage: 40,
		TimeSpentMinutes:   25,
		LastAccessedAt:     &accessed,
	}
	require.NoError(t, db.Create(&progress).Error)

	// snake_case parameter alias is accepted too
	path := "/api/analytics/learning/personal?user_id=" + strconv.Itoa(int(user.ID))
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	kpis := body["kpis"].(map[string]interface{})
	assert.Equal(t, float64(1), kpis["totalCourses"])
	assert.Contains(t, body, "courseProgress")
	assert.Contains(t, body, "quiz")
}

func TestEmployeeTableEndpoint(t *testing.T) {
	app, db := newTestApp(t)

	for i := 0; i < 12; i++ {
		user := models.User{
			Username:     fmt.Sprintf("emp%02d", i),
			Email:        fmt.Sprintf("emp%02d@example.com", i),
			EmployeeName: fmt.Sprintf("emp%02d", i),
			Company:      "AIA",
			IsActive:     true,
		}
		require.NoError(t, db.Create(&user).Error)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api/analytics/learning/employee-table?page=2&pageSize=5", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, float64(12), body["total"])
	assert.Equal(t, float64(2), body["page"])
	assert.Equal(t, float64(5), body["pageSize"])
	assert.Len(t, body["rows"], 5)
}

func TestEmployeeTablePageSizeClampEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/analytics/learning/employee-table?pageSize=2", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Equal(t, float64(5), body["pageSize"])
	assert.Equal(t, float64(1), body["page"])
}

func TestOverallGlobalEndpoint(t *testing.T) {
	app, db := newTestApp(t)

	day, _ := time.Parse("2006-01-02", "2024-08-15")
	holiday := models.Holiday{Title: "Founders Day", Date: &day, PublishedAt: &day}
	require.NoError(t, db.Create(&holiday).Error)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/analytics/overall/global", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	assert.Contains(t, body, "kpis")
	assert.Contains(t, body, "holidayByMonth")
	assert.Contains(t, body, "employeesByCompany")
	assert.Contains(t, body, "newsByCategory")
	assert.Contains(t, body, "eventsByType")
	assert.Contains(t, body, "townhallByContentType")

	kpis := body["kpis"].(map[string]interface{})
	assert.Equal(t, float64(1), kpis["totalHolidays"])
}

func TestOverallPersonalValidation(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/analytics/overall/personal", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/analytics/overall/personal?userId=not-a-number", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/analytics/overall/personal?userId=424242", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestEmployeesEndpoint(t *testing.T) {
	app, db := newTestApp(t)

	user := models.User{Username: "carol", Email: "carol@example.com", EmployeeName: "Carol", Company: "AIA", IsActive: true}
	require.NoError(t, db.Create(&user).Error)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/analytics/employees?company=AIA", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var options []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&options))
	require.Len(t, options, 1)
	assert.Equal(t, "Carol", options[0]["employee_name"])
}

func TestEmployeesEndpointKeepsEmptyFields(t *testing.T) {
	app, db := newTestApp(t)

	// No department and no company: the keys still appear in the payload
	user := models.User{Username: "dana", Email: "dana@example.com", EmployeeName: "Dana", IsActive: true}
	require.NoError(t, db.Create(&user).Error)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/analytics/employees", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var options []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&options))
	require.Len(t, options, 1)
	assert.Contains(t, options[0], "department")
	assert.Contains(t, options[0], "company")
	assert.Equal(t, "", options[0]["department"])
	assert.Equal(t, "", options[0]["company"])
}

func TestDepartmentsEndpoint(t *testing.T) {
	app, db := newTestApp(t)

	for _, name := range []string{"Sales", "Engineering"} {
		require.NoError(t, db.Create(&models.Department{Name: name}).Error)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api/analytics/departments", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var options []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&options))
	require.Len(t, options, 2)
	assert.Equal(t, "Engineering", options[0]["name"])
	assert.Equal(t, "Sales", options[1]["name"])
}
