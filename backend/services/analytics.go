package services

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"portal/backend/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// Fetch caps for the in-memory reductions. The aggregators load every matching
// row up to the cap and reduce in a single pass, so tables larger than the cap
// produce truncated aggregates. Known scalability limit.
const (
	maxProgressRows      = 5000
	maxPersonalRows      = 500
	maxSubmissionRows    = 5000
	maxHolidayRows       = 1000
	maxPersonalHolidays  = 500
	maxNewsRows          = 1000
	maxEventRows         = 500
	maxTownhallRows      = 500
	maxTableProgressRows = 10000
	maxEmployeeOptions   = 500
	maxDepartmentRows    = 200
)

// Filters is the canonical parameter set shared by the aggregators. Values
// arrive as raw query strings; an empty string imposes no constraint.
type Filters struct {
	DateFrom       string
	DateTo         string
	Department     string
	Company        string
	CourseCategory string
	UserID         string
}

// TableParams drives the employee-table aggregation.
type TableParams struct {
	Company   string
	Search    string
	DateFrom  string
	DateTo    string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// EmployeeListParams filters the employee dropdown list.
type EmployeeListParams struct {
	Company    string
	Department string
	Search     string
}

// AnalyticsService reduces portal records into chart-ready aggregates. It only
// reads the store; every call is a self-contained query-and-reduce cycle with
// no caching between calls.
type AnalyticsService struct {
	DB *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{DB: db}
}

// LearningGlobal aggregates course progress across all employees matching the
// filters: status/category/department distributions, monthly completions and
// the learning KPI block.
func (s *AnalyticsService) LearningGlobal(f Filters) (*models.LearningGlobalReport, error) {
	var progresses []models.UserProgress
	err := s.progressQuery(f).
		Preload("Course").
		Preload("Course.CourseCategory").
		Limit(maxProgressRows).
		Find(&progresses).Error
	if err != nil {
		return nil, err
	}

	// Department names resolve through one batch user lookup, not per row.
	departmentByUser, err := s.departmentsByUser(progresses)
	if err != nil {
		return nil, err
	}

	statusCounts := newStatusCounts()
	categoryCounts := make(map[string]int)
	departmentCounts := make(map[string]int)
	monthly := make(map[string]int)
	totalTime := 0
	certificates := 0

	for _, p := range progresses {
		statusCounts[p.ProgressStatus]++
		totalTime += p.TimeSpentMinutes
		if p.CertificateIssued {
			certificates++
		}
		if p.Course != nil && p.Course.CourseCategory != nil {
			categoryCounts[p.Course.CourseCategory.Name]++
		}
		if p.UserID != nil {
			if dept, ok := departmentByUser[*p.UserID]; ok {
				departmentCounts[dept]++
			}
		}
		if p.ProgressStatus == models.StatusCompleted && p.CompletedAt != nil {
			monthly[p.CompletedAt.Format("2006-01")]++
		}
	}

	total := len(progresses)
	return &models.LearningGlobalReport{
		KPIs: models.LearningGlobalKPIs{
			TotalAssignments:    total,
			CompletionRate:      rate(statusCounts[models.StatusCompleted], total),
			AvgTimeSpentMinutes: mean(totalTime, total),
			CertificatesIssued:  certificates,
		},
		StatusDistribution:     statusBuckets(statusCounts),
		CategoryDistribution:   sortedBuckets(categoryCounts),
		DepartmentDistribution: sortedBuckets(departmentCounts),
		MonthlyCompletions:     monthBuckets(monthly),
	}, nil
}

// LearningPersonal aggregates one employee's progress. Returns nil (not an
// error) when the user has no matching records, so the caller can answer 404.
func (s *AnalyticsService) LearningPersonal(userID string, f Filters) (*models.LearningPersonalReport, error) {
	if userID == "" {
		return nil, nil
	}
	f.UserID = userID

	var progresses []models.UserProgress
	err := s.progressQuery(f).
		Preload("Course").
		Limit(maxPersonalRows).
		Find(&progresses).Error
	if err != nil {
		return nil, err
	}
	if len(progresses) == 0 {
		return nil, nil
	}

	statusCounts := newStatusCounts()
	monthly := make(map[string]int)
	courseProgress := make([]models.CourseProgressRow, 0, len(progresses))
	totalTime := 0
	certificates := 0

	for _, p := range progresses {
		statusCounts[p.ProgressStatus]++
		totalTime += p.TimeSpentMinutes
		if p.CertificateIssued {
			certificates++
		}

		title := "Unknown"
		if p.Course != nil && p.Course.Title != "" {
			title = p.Course.Title
		}
		courseProgress = append(courseProgress, models.CourseProgressRow{
			CourseTitle:       title,
			Status:            p.ProgressStatus,
			Percentage:        p.ProgressPercentage,
			TimeSpentMinutes:  p.TimeSpentMinutes,
			CompletedAt:       p.CompletedAt,
			CertificateIssued: p.CertificateIssued,
		})

		if p.ProgressStatus == models.StatusCompleted && p.CompletedAt != nil {
			monthly[p.CompletedAt.Format("2006-01")]++
		}
	}

	total := len(progresses)
	return &models.LearningPersonalReport{
		KPIs: models.LearningPersonalKPIs{
			TotalCourses:        total,
			CompletionRate:      rate(statusCounts[models.StatusCompleted], total),
			AvgTimeSpentMinutes: mean(totalTime, total),
			CertificatesEarned:  certificates,
		},
		StatusDistribution: statusBuckets(statusCounts),
		CourseProgress:     courseProgress,
		MonthlyCompletions: monthBuckets(monthly),
	}, nil
}

// QuizGlobal aggregates quiz submissions. Only the date range and the user id
// apply here; department and company filters do not reach submissions.
func (s *AnalyticsService) QuizGlobal(f Filters) (models.QuizStats, error) {
	q := s.DB.Model(&models.QuizSubmission{})
	q = applyDateRange(q, "submitted_at", f.DateFrom, f.DateTo)
	if f.UserID != "" {
		q = q.Where("submitted_by_id = ?", f.UserID)
	}

	var submissions []models.QuizSubmission
	if err := q.Limit(maxSubmissionRows).Find(&submissions).Error; err != nil {
		return models.QuizStats{}, err
	}

	passed := 0
	scoreSum := 0
	for _, sub := range submissions {
		if sub.Passed {
			passed++
		}
		scoreSum += sub.Score
	}

	total := len(submissions)
	return models.QuizStats{
		PassRate:      rate(passed, total),
		AvgScore:      mean(scoreSum, total),
		TotalAttempts: total,
		Passed:        passed,
		Failed:        total - passed,
	}, nil
}

// QuizPersonal is QuizGlobal pinned to one user.
func (s *AnalyticsService) QuizPersonal(userID string, f Filters) (models.QuizStats, error) {
	f.UserID = userID
	return s.QuizGlobal(f)
}

// OverallGlobal aggregates the non-learning portal records: holidays, employee
// headcounts, news, events and townhalls. User-derived counts cover non-blocked
// users only; the company filter narrows that subset.
func (s *AnalyticsService) OverallGlobal(f Filters) (*models.OverallGlobalReport, error) {
	var totalUsers int64
	if err := s.userQuery(f.Company).Count(&totalUsers).Error; err != nil {
		return nil, err
	}
	var totalActiveUsers int64
	if err := s.userQuery(f.Company).Where("is_active = ?", true).Count(&totalActiveUsers).Error; err != nil {
		return nil, err
	}

	var users []models.User
	if err := s.userQuery(f.Company).Select("company").Find(&users).Error; err != nil {
		return nil, err
	}
	var activeUsers []models.User
	if err := s.userQuery(f.Company).Where("is_active = ?", true).Select("company").Find(&activeUsers).Error; err != nil {
		return nil, err
	}

	employeesByCompany := countByCompany(users)
	activeByCompany := countByCompany(activeUsers)

	var holidays []models.Holiday
	err := applyDateRange(s.DB.Model(&models.Holiday{}), "published_at", f.DateFrom, f.DateTo).
		Limit(maxHolidayRows).
		Find(&holidays).Error
	if err != nil {
		return nil, err
	}
	holidayByMonth := make(map[string]int)
	for _, h := range holidays {
		if h.Date != nil {
			holidayByMonth[h.Date.Format("Jan 2006")]++
		}
	}

	var news []models.News
	err = applyDateRange(s.DB.Model(&models.News{}), "published_at", f.DateFrom, f.DateTo).
		Preload("NewsCategory").
		Limit(maxNewsRows).
		Find(&news).Error
	if err != nil {
		return nil, err
	}
	newsByCategory := make(map[string]int)
	for _, n := range news {
		name := "Uncategorized"
		if n.NewsCategory != nil && n.NewsCategory.Name != "" {
			name = n.NewsCategory.Name
		}
		newsByCategory[name]++
	}

	var events []models.Event
	err = applyDateRange(s.DB.Model(&models.Event{}), "published_at", f.DateFrom, f.DateTo).
		Limit(maxEventRows).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	eventsByType := make(map[string]int)
	for _, e := range events {
		t := e.EventType
		if t == "" {
			t = "Other"
		}
		eventsByType[t]++
	}

	// Townhalls carry no company relation, so only the date range applies.
	var townhalls []models.Townhall
	err = applyDateRange(s.DB.Model(&models.Townhall{}), "published_at", f.DateFrom, f.DateTo).
		Limit(maxTownhallRows).
		Find(&townhalls).Error
	if err != nil {
		return nil, err
	}
	townhallByContentType := make(map[string]int)
	for _, t := range townhalls {
		ct := t.MeetingContentType
		if ct == "" {
			ct = "Other"
		}
		townhallByContentType[ct]++
	}

	return &models.OverallGlobalReport{
		KPIs: models.OverallGlobalKPIs{
			TotalUsers:       totalUsers,
			TotalActiveUsers: totalActiveUsers,
			TotalHolidays:    len(holidays),
			TotalNews:        len(news),
			TotalEvents:      len(events),
			TotalTownhalls:   len(townhalls),
		},
		HolidayByMonth:        monthYearBuckets(holidayByMonth),
		EmployeesByCompany:    companyBuckets(employeesByCompany, activeByCompany),
		ActiveUsersByCompany:  sortedBuckets(activeByCompany),
		NewsByCategory:        sortedBuckets(newsByCategory),
		EventsByType:          sortedBuckets(eventsByType),
		TownhallByContentType: sortedBuckets(townhallByContentType),
	}, nil
}

// OverallPersonal is the scoped subset of the overall view. Returns nil when
// the user id does not resolve to a known user.
func (s *AnalyticsService) OverallPersonal(userID string, f Filters) (*models.OverallPersonalReport, error) {
	if userID == "" {
		return nil, nil
	}
	var count int64
	if err := s.DB.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	var holidays []models.Holiday
	err := applyDateRange(s.DB.Model(&models.Holiday{}), "published_at", f.DateFrom, f.DateTo).
		Limit(maxPersonalHolidays).
		Find(&holidays).Error
	if err != nil {
		return nil, err
	}
	holidayByMonth := make(map[string]int)
	for _, h := range holidays {
		if h.Date != nil {
			holidayByMonth[h.Date.Format("Jan 2006")]++
		}
	}

	var users []models.User
	if err := s.userQuery("").Select("company").Find(&users).Error; err != nil {
		return nil, err
	}

	return &models.OverallPersonalReport{
		KPIs:               models.OverallPersonalKPIs{TotalHolidays: len(holidays)},
		HolidayByMonth:     monthYearBuckets(holidayByMonth),
		EmployeesByCompany: sortedBuckets(countByCompany(users)),
	}, nil
}

// EmployeeTable builds one aggregated row per employee with search, sort and
// pagination. Progress and submission rows are batch-fetched for exactly the
// requested page of users, never for the whole table.
func (s *AnalyticsService) EmployeeTable(p TableParams) (*models.EmployeeTablePage, error) {
	page := p.Page
	if page < 1 {
		page = 1
	}
	pageSize := p.PageSize
	if pageSize == 0 {
		pageSize = 10
	}
	if pageSize < 5 {
		pageSize = 5
	}
	if pageSize > 100 {
		pageSize = 100
	}
	offset := (page - 1) * pageSize

	// total reflects the user count matching the filters, independent of the
	// page being requested.
	var total int64
	if err := s.tableUserQuery(p).Count(&total).Error; err != nil {
		return nil, err
	}

	var users []models.User
	err := s.tableUserQuery(p).
		Order("id").
		Limit(pageSize).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return &models.EmployeeTablePage{Rows: []models.EmployeeRow{}, Total: total, Page: page, PageSize: pageSize}, nil
	}

	userIDs := make([]uint, 0, len(users))
	for _, u := range users {
		userIDs = append(userIDs, u.ID)
	}

	progQ := s.DB.Model(&models.UserProgress{}).Where("user_id IN ?", userIDs)
	progQ = applyDateRange(progQ, "last_accessed_at", p.DateFrom, p.DateTo)
	var progresses []models.UserProgress
	if err := progQ.Limit(maxTableProgressRows).Find(&progresses).Error; err != nil {
		return nil, err
	}

	var submissions []models.QuizSubmission
	err = s.DB.Where("submitted_by_id IN ?", userIDs).
		Limit(maxSubmissionRows).
		Find(&submissions).Error
	if err != nil {
		return nil, err
	}

	progressByUser := make(map[uint][]models.UserProgress)
	for _, pr := range progresses {
		if pr.UserID != nil {
			progressByUser[*pr.UserID] = append(progressByUser[*pr.UserID], pr)
		}
	}
	submissionsByUser := make(map[uint][]models.QuizSubmission)
	for _, sub := range submissions {
		if sub.SubmittedByID != nil {
			submissionsByUser[*sub.SubmittedByID] = append(submissionsByUser[*sub.SubmittedByID], sub)
		}
	}

	rows := make([]models.EmployeeRow, 0, len(users))
	for _, u := range users {
		progs := progressByUser[u.ID]
		subs := submissionsByUser[u.ID]

		timeSpent := 0
		modulesDone := 0
		percentSum := 0
		for _, pr := range progs {
			timeSpent += pr.TimeSpentMinutes
			modulesDone += len(pr.CompletedModules)
			percentSum += pr.ProgressPercentage
		}
		quizPassed := 0
		scoreSum := 0
		for _, sub := range subs {
			if sub.Passed {
				quizPassed++
			}
			scoreSum += sub.Score
		}

		rows = append(rows, models.EmployeeRow{
			EmployeeID:                  u.ID,
			EmployeeName:                displayName(u),
			Company:                     companyLabel(u.Company),
			CoursesEnrolled:             len(progs),
			CourseCompletionTimeMinutes: timeSpent,
			TotalModulesDone:            modulesDone,
			ProgressPercent:             mean(percentSum, len(progs)),
			QuizPassRate:                rate(quizPassed, len(subs)),
			AvgScore:                    mean(scoreSum, len(subs)),
		})
	}

	sortRows(rows, p.SortBy, p.SortOrder)

	return &models.EmployeeTablePage{Rows: rows, Total: total, Page: page, PageSize: pageSize}, nil
}

// EmployeesList returns the employee options for the dashboard dropdown.
// A search term narrows to a single match (exact id or email substring).
func (s *AnalyticsService) EmployeesList(p EmployeeListParams) ([]models.EmployeeOption, error) {
	q := s.DB.Where("blocked = ?", false).Preload("Department")
	if p.Company != "" {
		q = q.Where("company = ?", p.Company)
	}
	if p.Department != "" {
		q = q.Where("department_id = ?", p.Department)
	}

	limit := maxEmployeeOptions
	if search := strings.TrimSpace(p.Search); search != "" {
		if id, ok := exactID(search); ok {
			q = q.Where("id = ?", id)
		} else {
			q = q.Where("LOWER(email) LIKE ?", "%"+strings.ToLower(search)+"%")
		}
		limit = 1
	}

	var users []models.User
	if err := q.Order("employee_name asc").Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}

	options := make([]models.EmployeeOption, 0, len(users))
	for _, u := range users {
		dept := ""
		if u.Department != nil {
			dept = u.Department.Name
		}
		options = append(options, models.EmployeeOption{
			ID:           u.ID,
			EmployeeName: displayName(u),
			Email:        u.Email,
			Department:   dept,
			Company:      u.Company,
		})
	}
	return options, nil
}

// DepartmentsList returns all departments sorted by name.
func (s *AnalyticsService) DepartmentsList() ([]models.DepartmentOption, error) {
	var departments []models.Department
	err := s.DB.Order("name asc").Limit(maxDepartmentRows).Find(&departments).Error
	if err != nil {
		return nil, err
	}
	options := make([]models.DepartmentOption, 0, len(departments))
	for _, d := range departments {
		options = append(options, models.DepartmentOption{ID: d.ID, Name: d.Name})
	}
	return options, nil
}

// progressQuery translates the filter set into a UserProgress query. Date
// bounds apply to last_accessed_at so the range captures all activity, not
// just completions.
func (s *AnalyticsService) progressQuery(f Filters) *gorm.DB {
	q := s.DB.Model(&models.UserProgress{})
	q = applyDateRange(q, "user_progresses.last_accessed_at", f.DateFrom, f.DateTo)
	if f.Department != "" || f.Company != "" {
		q = q.Joins("JOIN users ON users.id = user_progresses.user_id")
		if f.Department != "" {
			q = q.Where("users.department_id = ?", f.Department)
		}
		if f.Company != "" {
			q = q.Where("users.company = ?", f.Company)
		}
	}
	if f.CourseCategory != "" {
		q = q.Joins("JOIN courses ON courses.id = user_progresses.course_id").
			Where("courses.course_category_id = ?", f.CourseCategory)
	}
	if f.UserID != "" {
		q = q.Where("user_progresses.user_id = ?", f.UserID)
	}
	return q
}

// userQuery is the non-blocked user base query shared by the overall view.
func (s *AnalyticsService) userQuery(company string) *gorm.DB {
	q := s.DB.Model(&models.User{}).Where("blocked = ?", false)
	if company != "" {
		q = q.Where("company = ?", company)
	}
	return q
}

// tableUserQuery builds a fresh employee-table user query. Called once for the
// count and once for the page fetch, so the chains never share state.
func (s *AnalyticsService) tableUserQuery(p TableParams) *gorm.DB {
	q := s.DB.Model(&models.User{}).Where("blocked = ?", false)
	if p.Company != "" {
		q = q.Where("company = ?", p.Company)
	}
	search := strings.TrimSpace(p.Search)
	if search == "" {
		return q
	}
	if id, ok := exactID(search); ok {
		return q.Where("id = ?", id)
	}
	like := "%" + strings.ToLower(search) + "%"
	return q.Where("LOWER(employee_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(username) LIKE ?",
		like, like, like)
}

// departmentsByUser resolves department names for every distinct user id in
// the progress set with a single batch query.
func (s *AnalyticsService) departmentsByUser(progresses []models.UserProgress) (map[uint]string, error) {
	seen := make(map[uint]bool)
	ids := make([]uint, 0)
	for _, p := range progresses {
		if p.UserID != nil && !seen[*p.UserID] {
			seen[*p.UserID] = true
			ids = append(ids, *p.UserID)
		}
	}
	result := make(map[uint]string)
	if len(ids) == 0 {
		return result, nil
	}

	var users []models.User
	if err := s.DB.Preload("Department").Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Department != nil && u.Department.Name != "" {
			result[u.ID] = u.Department.Name
		}
	}
	return result, nil
}

// applyDateRange constrains column to the [dateFrom, dateTo] window, both ends
// inclusive; dateTo covers its entire day. Unparsable dates impose no
// constraint.
func applyDateRange(q *gorm.DB, column, dateFrom, dateTo string) *gorm.DB {
	if t, err := time.Parse("2006-01-02", dateFrom); err == nil {
		q = q.Where(column+" >= ?", t)
	}
	if t, err := time.Parse("2006-01-02", dateTo); err == nil {
		q = q.Where(column+" < ?", t.AddDate(0, 0, 1))
	}
	return q
}

// exactID reports whether the trimmed search term is an integer equal to its
// own string form, i.e. an exact employee id.
func exactID(search string) (int, bool) {
	id, err := strconv.Atoi(search)
	if err != nil || strconv.Itoa(id) != search {
		return 0, false
	}
	return id, true
}

// rate returns round(part/total*100) clamped by construction to [0,100];
// 0 when total is 0.
func rate(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// mean returns round(sum/n), 0 when n is 0.
func mean(sum, n int) int {
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}

func newStatusCounts() map[string]int {
	counts := make(map[string]int, len(models.ProgressStatuses))
	for _, status := range models.ProgressStatuses {
		counts[status] = 0
	}
	return counts
}

// statusBuckets emits all four statuses even when a count is zero; the donut
// layer may drop zeroes for display but the aggregate never does.
func statusBuckets(counts map[string]int) []models.Bucket {
	buckets := make([]models.Bucket, 0, len(models.ProgressStatuses))
	for _, status := range models.ProgressStatuses {
		buckets = append(buckets, models.Bucket{Name: status, Value: counts[status]})
	}
	return buckets
}

// sortedBuckets emits name/value pairs in name order so identical inputs
// always serialize identically.
func sortedBuckets(counts map[string]int) []models.Bucket {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	buckets := make([]models.Bucket, 0, len(names))
	for _, name := range names {
		buckets = append(buckets, models.Bucket{Name: name, Value: counts[name]})
	}
	return buckets
}

func companyBuckets(totals, active map[string]int) []models.CompanyBucket {
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)
	buckets := make([]models.CompanyBucket, 0, len(names))
	for _, name := range names {
		buckets = append(buckets, models.CompanyBucket{
			Name:        name,
			Value:       totals[name],
			ActiveValue: active[name],
		})
	}
	return buckets
}

// monthBuckets sorts "YYYY-MM" keys ascending; the zero-padded ISO form makes
// lexicographic order chronological.
func monthBuckets(counts map[string]int) []models.MonthBucket {
	months := make([]string, 0, len(counts))
	for month := range counts {
		months = append(months, month)
	}
	sort.Strings(months)
	buckets := make([]models.MonthBucket, 0, len(months))
	for _, month := range months {
		buckets = append(buckets, models.MonthBucket{Month: month, Value: counts[month]})
	}
	return buckets
}

// monthYearBuckets sorts "Jan 2006" labels chronologically via a month-index
// comparator; string order would put "Feb 2024" after "Jan 2025".
func monthYearBuckets(counts map[string]int) []models.Bucket {
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return monthIndex(labels[i]) < monthIndex(labels[j])
	})
	buckets := make([]models.Bucket, 0, len(labels))
	for _, label := range labels {
		buckets = append(buckets, models.Bucket{Name: label, Value: counts[label]})
	}
	return buckets
}

func monthIndex(label string) int {
	t, err := time.Parse("Jan 2006", label)
	if err != nil {
		return 0
	}
	return t.Year()*12 + int(t.Month())
}

// sortRows orders the employee rows by the requested column. Names compare
// with an English collator; every other column is numeric. The sort is stable
// so ties keep their fetch order.
func sortRows(rows []models.EmployeeRow, sortBy, sortOrder string) {
	key := sortBy
	if key == "" || key == "courseCompletionTime" {
		key = "courseCompletionTimeMinutes"
	}
	desc := strings.ToLower(sortOrder) != "asc"

	if key == "employeeName" {
		collator := collate.New(language.English)
		sort.SliceStable(rows, func(i, j int) bool {
			cmp := collator.CompareString(rows[i].EmployeeName, rows[j].EmployeeName)
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
		return
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := numericField(rows[i], key), numericField(rows[j], key)
		if desc {
			return a > b
		}
		return a < b
	})
}

func numericField(row models.EmployeeRow, key string) int {
	switch key {
	case "coursesEnrolled":
		return row.CoursesEnrolled
	case "courseCompletionTimeMinutes":
		return row.CourseCompletionTimeMinutes
	case "totalModulesDone":
		return row.TotalModulesDone
	case "progressPercent":
		return row.ProgressPercent
	case "quizPassRate":
		return row.QuizPassRate
	case "avgScore":
		return row.AvgScore
	default:
		return 0
	}
}

func displayName(u models.User) string {
	if u.EmployeeName != "" {
		return u.EmployeeName
	}
	if u.Username != "" {
		return u.Username
	}
	if u.Email != "" {
		return u.Email
	}
	return fmt.Sprintf("User %d", u.ID)
}

func companyLabel(company string) string {
	if company == "" {
		return "—"
	}
	return company
}

func countByCompany(users []models.User) map[string]int {
	counts := make(map[string]int)
	for _, u := range users {
		company := u.Company
		if company == "" {
			company = "Unassigned"
		}
		counts[company]++
	}
	return counts
}
