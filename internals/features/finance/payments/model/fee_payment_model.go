package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- ENUM fee_payment_status -------------------------------------------------
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// --- ENUM fee_payment_mode ---------------------------------------------------
type PaymentMode string

const (
	PaymentModeCash   PaymentMode = "cash"
	PaymentModeOnline PaymentMode = "online"
	PaymentModeCheque PaymentMode = "cheque"
	PaymentModeDD     PaymentMode = "dd"
)

// --- MODEL fee_payments ------------------------------------------------------
// Rows are append-only: once created only the status and payment date may
// change, and only along pending→paid or pending→failed.
type FeePaymentModel struct {
	FeePaymentID uuid.UUID `json:"fee_payment_id" gorm:"column:fee_payment_id;type:uuid;default:gen_random_uuid();primaryKey"`

	FeePaymentStudentID    uuid.UUID `json:"fee_payment_student_id" gorm:"column:fee_payment_student_id;type:uuid;not null;index:idx_fee_payments_student_scope,priority:1"`
	FeePaymentDepartment   string    `json:"fee_payment_department" gorm:"column:fee_payment_department;type:varchar(10);not null;index:idx_fee_payments_student_scope,priority:2"`
	FeePaymentAcademicYear string    `json:"fee_payment_academic_year" gorm:"column:fee_payment_academic_year;type:varchar(20);not null;index:idx_fee_payments_student_scope,priority:3"`
	FeePaymentSemester     int       `json:"fee_payment_semester" gorm:"column:fee_payment_semester;type:smallint;not null"`

	FeePaymentAmount float64     `json:"fee_payment_amount" gorm:"column:fee_payment_amount;type:numeric(12,2);not null"`
	FeePaymentMode   PaymentMode `json:"fee_payment_mode" gorm:"column:fee_payment_mode;type:varchar(10);not null;default:'cash'"`

	FeePaymentOrderID *string       `json:"fee_payment_order_id,omitempty" gorm:"column:fee_payment_order_id;type:varchar(60);uniqueIndex:ux_fee_payments_order_id"`
	FeePaymentStatus  PaymentStatus `json:"fee_payment_status" gorm:"column:fee_payment_status;type:varchar(10);not null;default:'pending';index:idx_fee_payments_status"`
	FeePaymentDate    *time.Time    `json:"fee_payment_date,omitempty" gorm:"column:fee_payment_date;type:timestamptz"`

	FeePaymentNote *string `json:"fee_payment_note,omitempty" gorm:"column:fee_payment_note;type:text"`

	FeePaymentCreatedAt time.Time      `json:"fee_payment_created_at" gorm:"column:fee_payment_created_at;type:timestamptz;not null;autoCreateTime"`
	FeePaymentUpdatedAt time.Time      `json:"fee_payment_updated_at" gorm:"column:fee_payment_updated_at;type:timestamptz;not null;autoUpdateTime"`
	FeePaymentDeletedAt gorm.DeletedAt `json:"fee_payment_deleted_at,omitempty" gorm:"column:fee_payment_deleted_at;type:timestamptz;index"`
}

func (FeePaymentModel) TableName() string { return "fee_payments" }

// Transition enforces the payment state machine.
func (m *FeePaymentModel) Transition(to PaymentStatus) error {
	if m.FeePaymentStatus != PaymentStatusPending {
		return fmt.Errorf("cannot move payment from %s to %s", m.FeePaymentStatus, to)
	}
	switch to {
	case PaymentStatusPaid, PaymentStatusFailed:
		m.FeePaymentStatus = to
		if to == PaymentStatusPaid && m.FeePaymentDate == nil {
			now := time.Now()
			m.FeePaymentDate = &now
		}
		return nil
	default:
		return fmt.Errorf("invalid target status %s", to)
	}
}
