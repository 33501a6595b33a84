package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// --- ENUM receipt_status -----------------------------------------------------
type ReceiptStatus string

const (
	ReceiptStatusActive    ReceiptStatus = "active"
	ReceiptStatusCancelled ReceiptStatus = "cancelled"
)

// --- MODEL receipts ----------------------------------------------------------
// A receipt is an immutable snapshot of a settled payment: amounts and the
// fee-component breakdown are frozen at generation time. Duplicates carry a
// back-reference to the original.
type ReceiptModel struct {
	ReceiptID uuid.UUID `json:"receipt_id" gorm:"column:receipt_id;type:uuid;default:gen_random_uuid();primaryKey"`

	ReceiptNo        string    `json:"receipt_no" gorm:"column:receipt_no;type:varchar(30);not null;uniqueIndex:ux_receipts_no"`
	ReceiptPaymentID uuid.UUID `json:"receipt_payment_id" gorm:"column:receipt_payment_id;type:uuid;not null;index:idx_receipts_payment"`
	ReceiptStudentID uuid.UUID `json:"receipt_student_id" gorm:"column:receipt_student_id;type:uuid;not null;index:idx_receipts_student"`

	ReceiptAmount          float64        `json:"receipt_amount" gorm:"column:receipt_amount;type:numeric(12,2);not null"`
	ReceiptConcessionTotal float64        `json:"receipt_concession_total" gorm:"column:receipt_concession_total;type:numeric(12,2);not null;default:0"`
	ReceiptComponents      datatypes.JSON `json:"receipt_components" gorm:"column:receipt_components;type:jsonb"`

	ReceiptIsDuplicate bool       `json:"receipt_is_duplicate" gorm:"column:receipt_is_duplicate;type:boolean;not null;default:false"`
	ReceiptOriginalID  *uuid.UUID `json:"receipt_original_id,omitempty" gorm:"column:receipt_original_id;type:uuid"`

	ReceiptStatus  ReceiptStatus `json:"receipt_status" gorm:"column:receipt_status;type:varchar(10);not null;default:'active'"`
	ReceiptPDFPath *string       `json:"receipt_pdf_path,omitempty" gorm:"column:receipt_pdf_path;type:text"`

	ReceiptCreatedAt time.Time      `json:"receipt_created_at" gorm:"column:receipt_created_at;type:timestamptz;not null;autoCreateTime"`
	ReceiptUpdatedAt time.Time      `json:"receipt_updated_at" gorm:"column:receipt_updated_at;type:timestamptz;not null;autoUpdateTime"`
	ReceiptDeletedAt gorm.DeletedAt `json:"receipt_deleted_at,omitempty" gorm:"column:receipt_deleted_at;type:timestamptz;index"`
}

func (ReceiptModel) TableName() string { return "receipts" }

var ErrNonPositiveAmount = errors.New("receipt amount must be positive")

// BeforeCreate guards the amount invariant at the last possible moment.
func (m *ReceiptModel) BeforeCreate(tx *gorm.DB) error {
	if m.ReceiptAmount <= 0 {
		return ErrNonPositiveAmount
	}
	return nil
}

// ReceiptComponent is one line of the frozen breakdown: how much of the paid
// amount was allocated to each fee head.
type ReceiptComponent struct {
	Name       string  `json:"name"`
	HeadAmount float64 `json:"head_amount"`
	Allocated  float64 `json:"allocated"`
}
