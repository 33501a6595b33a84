package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- ENUM payroll_run_status ---------------------------------------------------
type PayrollRunStatus string

const (
	PayrollRunStatusCompleted PayrollRunStatus = "completed"
	PayrollRunStatusPartial   PayrollRunStatus = "partial"
)

// --- MODEL payroll_runs --------------------------------------------------------
// One run per month; slips hang off the run. A run that hit per-staff errors
// but still produced slips is kept as partial.
type PayrollRunModel struct {
	PayrollRunID uuid.UUID `json:"payroll_run_id" gorm:"column:payroll_run_id;type:uuid;default:gen_random_uuid();primaryKey"`

	PayrollRunMonth       string           `json:"payroll_run_month" gorm:"column:payroll_run_month;type:varchar(7);not null;uniqueIndex:ux_payroll_runs_month"`
	PayrollRunWorkingDays int              `json:"payroll_run_working_days" gorm:"column:payroll_run_working_days;type:smallint;not null"`
	PayrollRunStatus      PayrollRunStatus `json:"payroll_run_status" gorm:"column:payroll_run_status;type:varchar(10);not null"`

	PayrollRunSlipCount   int `json:"payroll_run_slip_count" gorm:"column:payroll_run_slip_count;type:int;not null;default:0"`
	PayrollRunFailedCount int `json:"payroll_run_failed_count" gorm:"column:payroll_run_failed_count;type:int;not null;default:0"`

	PayrollRunCreatedAt time.Time      `json:"payroll_run_created_at" gorm:"column:payroll_run_created_at;type:timestamptz;not null;autoCreateTime"`
	PayrollRunUpdatedAt time.Time      `json:"payroll_run_updated_at" gorm:"column:payroll_run_updated_at;type:timestamptz;not null;autoUpdateTime"`
	PayrollRunDeletedAt gorm.DeletedAt `json:"payroll_run_deleted_at,omitempty" gorm:"column:payroll_run_deleted_at;type:timestamptz;index"`
}

func (PayrollRunModel) TableName() string { return "payroll_runs" }

// --- MODEL payslips ------------------------------------------------------------
type PayslipModel struct {
	PayslipID uuid.UUID `json:"payslip_id" gorm:"column:payslip_id;type:uuid;default:gen_random_uuid();primaryKey"`

	PayslipRunID  uuid.UUID `json:"payslip_run_id" gorm:"column:payslip_run_id;type:uuid;not null;uniqueIndex:ux_payslips_run_user,priority:1;index:idx_payslips_run"`
	PayslipUserID uuid.UUID `json:"payslip_user_id" gorm:"column:payslip_user_id;type:uuid;not null;uniqueIndex:ux_payslips_run_user,priority:2;index:idx_payslips_user"`

	PayslipBasic      float64 `json:"payslip_basic" gorm:"column:payslip_basic;type:numeric(12,2);not null"`
	PayslipAllowances float64 `json:"payslip_allowances" gorm:"column:payslip_allowances;type:numeric(12,2);not null;default:0"`
	PayslipGross      float64 `json:"payslip_gross" gorm:"column:payslip_gross;type:numeric(12,2);not null"`

	PayslipAbsentDays float64 `json:"payslip_absent_days" gorm:"column:payslip_absent_days;type:numeric(4,1);not null;default:0"`
	PayslipDeduction  float64 `json:"payslip_deduction" gorm:"column:payslip_deduction;type:numeric(12,2);not null;default:0"`
	PayslipNet        float64 `json:"payslip_net" gorm:"column:payslip_net;type:numeric(12,2);not null"`

	PayslipCreatedAt time.Time      `json:"payslip_created_at" gorm:"column:payslip_created_at;type:timestamptz;not null;autoCreateTime"`
	PayslipUpdatedAt time.Time      `json:"payslip_updated_at" gorm:"column:payslip_updated_at;type:timestamptz;not null;autoUpdateTime"`
	PayslipDeletedAt gorm.DeletedAt `json:"payslip_deleted_at,omitempty" gorm:"column:payslip_deleted_at;type:timestamptz;index"`
}

func (PayslipModel) TableName() string { return "payslips" }
