package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	EmployeeName string
	Username     string `gorm:"unique;not null"`
	Email        string `gorm:"unique;not null"`
	Company      string // "AIA" or "Vega"
	DepartmentID *uint
	Department   *Department
	Blocked      bool `gorm:"default:false"`
	IsActive     bool `gorm:"default:true"`
}

type Department struct {
	gorm.Model
	Name string `gorm:"not null"`
}
