package model

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- ENUM concession_status --------------------------------------------------
type ConcessionStatus string

const (
	ConcessionStatusActive   ConcessionStatus = "active"
	ConcessionStatusInactive ConcessionStatus = "inactive"
	ConcessionStatusExpired  ConcessionStatus = "expired"
)

// --- ENUM concession_discount_type -------------------------------------------
type DiscountType string

const (
	DiscountTypeFixed      DiscountType = "fixed"
	DiscountTypePercentage DiscountType = "percentage"
)

// --- MODEL concessions -------------------------------------------------------
// A student may hold at most one active concession per
// (student, department, academic_year, semester, discount_type); the partial
// unique index lives in the SQL migration, the tag here is documentation.
type ConcessionModel struct {
	ConcessionID uuid.UUID `json:"concession_id" gorm:"column:concession_id;type:uuid;default:gen_random_uuid();primaryKey"`

	ConcessionStudentID    uuid.UUID `json:"concession_student_id" gorm:"column:concession_student_id;type:uuid;not null;index:idx_concessions_student_scope,priority:1"`
	ConcessionDepartment   string    `json:"concession_department" gorm:"column:concession_department;type:varchar(10);not null;index:idx_concessions_student_scope,priority:2"`
	ConcessionAcademicYear string    `json:"concession_academic_year" gorm:"column:concession_academic_year;type:varchar(20);not null;index:idx_concessions_student_scope,priority:3"`
	ConcessionSemester     int       `json:"concession_semester" gorm:"column:concession_semester;type:smallint;not null;index:idx_concessions_student_scope,priority:4"`

	ConcessionDiscountType DiscountType `json:"concession_discount_type" gorm:"column:concession_discount_type;type:varchar(15);not null"`
	ConcessionAmount       float64      `json:"concession_amount" gorm:"column:concession_amount;type:numeric(12,2);not null;default:0"`
	ConcessionPercentage   float64      `json:"concession_percentage" gorm:"column:concession_percentage;type:numeric(5,2);not null;default:0"`

	ConcessionReason *string          `json:"concession_reason,omitempty" gorm:"column:concession_reason;type:text"`
	ConcessionStatus ConcessionStatus `json:"concession_status" gorm:"column:concession_status;type:varchar(15);not null;default:'active';index:idx_concessions_status"`

	ConcessionCreatedAt time.Time      `json:"concession_created_at" gorm:"column:concession_created_at;type:timestamptz;not null;autoCreateTime"`
	ConcessionUpdatedAt time.Time      `json:"concession_updated_at" gorm:"column:concession_updated_at;type:timestamptz;not null;autoUpdateTime"`
	ConcessionDeletedAt gorm.DeletedAt `json:"concession_deleted_at,omitempty" gorm:"column:concession_deleted_at;type:timestamptz;index"`
}

func (ConcessionModel) TableName() string { return "concessions" }

// Resolve converts the concession into a discount amount against the given
// fee total. NaN and negative inputs coerce to 0 so a corrupt row can never
// inflate or invert a balance.
func (m ConcessionModel) Resolve(feeTotal float64) float64 {
	sanitize := func(v float64) float64 {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return 0
		}
		return v
	}

	switch m.ConcessionDiscountType {
	case DiscountTypePercentage:
		return sanitize(feeTotal) * sanitize(m.ConcessionPercentage) / 100
	default:
		return sanitize(m.ConcessionAmount)
	}
}
