package models

import "time"

// Bucket is a single categorical count used by bar/donut charts.
type Bucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// CompanyBucket carries the active-only companion count next to the total.
type CompanyBucket struct {
	Name        string `json:"name"`
	Value       int    `json:"value"`
	ActiveValue int    `json:"activeValue"`
}

// MonthBucket is one point of a monthly time series, keyed "YYYY-MM".
type MonthBucket struct {
	Month string `json:"month"`
	Value int    `json:"value"`
}

type QuizStats struct {
	PassRate      int `json:"passRate"`
	AvgScore      int `json:"avgScore"`
	TotalAttempts int `json:"totalAttempts"`
	Passed        int `json:"passed"`
	Failed        int `json:"failed"`
}

type LearningGlobalKPIs struct {
	TotalAssignments    int `json:"totalAssignments"`
	CompletionRate      int `json:"completionRate"`
	AvgTimeSpentMinutes int `json:"avgTimeSpentMinutes"`
	CertificatesIssued  int `json:"certificatesIssued"`
}

type LearningGlobalReport struct {
	KPIs                   LearningGlobalKPIs `json:"kpis"`
	StatusDistribution     []Bucket           `json:"statusDistribution"`
	CategoryDistribution   []Bucket           `json:"categoryDistribution"`
	DepartmentDistribution []Bucket           `json:"departmentDistribution"`
	MonthlyCompletions     []MonthBucket      `json:"monthlyCompletions"`
	Quiz                   *QuizStats         `json:"quiz,omitempty"`
}

type LearningPersonalKPIs struct {
	TotalCourses        int `json:"totalCourses"`
	CompletionRate      int `json:"completionRate"`
	AvgTimeSpentMinutes int `json:"avgTimeSpentMinutes"`
	CertificatesEarned  int `json:"certificatesEarned"`
}

type CourseProgressRow struct {
	CourseTitle       string     `json:"courseTitle"`
	Status            string     `json:"status"`
	Percentage        int        `json:"percentage"`
	TimeSpentMinutes  int        `json:"timeSpentMinutes"`
	CompletedAt       *time.Time `json:"completedAt"`
	CertificateIssued bool       `json:"certificateIssued"`
}

type LearningPersonalReport struct {
	KPIs               LearningPersonalKPIs `json:"kpis"`
	StatusDistribution []Bucket             `json:"statusDistribution"`
	CourseProgress     []CourseProgressRow  `json:"courseProgress"`
	MonthlyCompletions []MonthBucket        `json:"monthlyCompletions"`
	Quiz               *QuizStats           `json:"quiz,omitempty"`
}

type OverallGlobalKPIs struct {
	TotalUsers       int64 `json:"totalUsers"`
	TotalActiveUsers int64 `json:"totalActiveUsers"`
	TotalHolidays    int   `json:"totalHolidays"`
	TotalNews        int   `json:"totalNews"`
	TotalEvents      int   `json:"totalEvents"`
	TotalTownhalls   int   `json:"totalTownhalls"`
}

type OverallGlobalReport struct {
	KPIs                  OverallGlobalKPIs `json:"kpis"`
	HolidayByMonth        []Bucket          `json:"holidayByMonth"`
	EmployeesByCompany    []CompanyBucket   `json:"employeesByCompany"`
	ActiveUsersByCompany  []Bucket          `json:"activeUsersByCompany"`
	NewsByCategory        []Bucket          `json:"newsByCategory"`
	EventsByType          []Bucket          `json:"eventsByType"`
	TownhallByContentType []Bucket          `json:"townhallByContentType"`
}

type OverallPersonalKPIs struct {
	TotalHolidays int `json:"totalHolidays"`
}

type OverallPersonalReport struct {
	KPIs               OverallPersonalKPIs `json:"kpis"`
	HolidayByMonth     []Bucket            `json:"holidayByMonth"`
	EmployeesByCompany []Bucket            `json:"employeesByCompany"`
}

type EmployeeRow struct {
	EmployeeID                  uint   `json:"employeeId"`
	EmployeeName                string `json:"employeeName"`
	Company                     string `json:"company"`
	CoursesEnrolled             int    `json:"coursesEnrolled"`
	CourseCompletionTimeMinutes int    `json:"courseCompletionTimeMinutes"`
	TotalModulesDone            int    `json:"totalModulesDone"`
	ProgressPercent             int    `json:"progressPercent"`
	QuizPassRate                int    `json:"quizPassRate"`
	AvgScore                    int    `json:"avgScore"`
}

type EmployeeTablePage struct {
	Rows     []EmployeeRow `json:"rows"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
}

type EmployeeOption struct {
	ID           uint   `json:"id"`
	EmployeeName string `json:"employee_name"`
	Email        string `json:"email"`
	Department   string `json:"department"`
	Company      string `json:"company"`
}

type DepartmentOption struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
