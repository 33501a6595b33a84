package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- MODEL staff_salaries ------------------------------------------------------
// Salary profile per staff user; payroll reads basic and allowances from here.
type StaffSalaryModel struct {
	StaffSalaryID uuid.UUID `json:"staff_salary_id" gorm:"column:staff_salary_id;type:uuid;default:gen_random_uuid();primaryKey"`

	StaffSalaryUserID     uuid.UUID `json:"staff_salary_user_id" gorm:"column:staff_salary_user_id;type:uuid;not null;uniqueIndex:ux_staff_salaries_user"`
	StaffSalaryBasic      float64   `json:"staff_salary_basic" gorm:"column:staff_salary_basic;type:numeric(12,2);not null"`
	StaffSalaryAllowances float64   `json:"staff_salary_allowances" gorm:"column:staff_salary_allowances;type:numeric(12,2);not null;default:0"`

	StaffSalaryCreatedAt time.Time      `json:"staff_salary_created_at" gorm:"column:staff_salary_created_at;type:timestamptz;not null;autoCreateTime"`
	StaffSalaryUpdatedAt time.Time      `json:"staff_salary_updated_at" gorm:"column:staff_salary_updated_at;type:timestamptz;not null;autoUpdateTime"`
	StaffSalaryDeletedAt gorm.DeletedAt `json:"staff_salary_deleted_at,omitempty" gorm:"column:staff_salary_deleted_at;type:timestamptz;index"`
}

func (StaffSalaryModel) TableName() string { return "staff_salaries" }
