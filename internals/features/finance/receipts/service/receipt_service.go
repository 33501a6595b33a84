package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "campushub_backend/internals/features/academics/students/model"
	auditSvc "campushub_backend/internals/features/finance/audit/service"
	concessionModel "campushub_backend/internals/features/finance/concessions/model"
	feeModel "campushub_backend/internals/features/finance/fees/model"
	paymentModel "campushub_backend/internals/features/finance/payments/model"
	"campushub_backend/internals/features/finance/receipts/model"
	reportSvc "campushub_backend/internals/features/finance/reports/service"
)

var (
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrPaymentNotPaid       = errors.New("receipt requires a paid payment")
	ErrFeeStructureNotFound = errors.New("fee structure not found for department")
	ErrAlreadyGenerated     = errors.New("receipts already generated for this payment")
)

// NewReceiptNo builds a receipt number like RCP-2026-a1b2c3. The random
// suffix keeps numbers unique without a counter table.
func NewReceiptNo(t time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("RCP-%d-%s", t.Year(), suffix)
}

// AllocateBreakdown splits a paid amount over the fee heads in proportion to
// each head's share of the structure total.
func AllocateBreakdown(fs feeModel.FeeStructureModel, amount float64) []model.ReceiptComponent {
	total := fs.ComputeTotal()
	components := fs.Components()
	out := make([]model.ReceiptComponent, 0, len(components))
	for _, comp := range components {
		allocated := 0.0
		if total > 0 {
			allocated = amount * (comp.Amount / total)
		}
		out = append(out, model.ReceiptComponent{
			Name:       comp.Name,
			HeadAmount: comp.Amount,
			Allocated:  round2(allocated),
		})
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// validateForGeneration rejects ineligible payments before any receipt row is
// written; only settled payments with a positive amount get receipts.
func validateForGeneration(p paymentModel.FeePaymentModel) error {
	if p.FeePaymentStatus != paymentModel.PaymentStatusPaid {
		return ErrPaymentNotPaid
	}
	if p.FeePaymentAmount <= 0 {
		return model.ErrNonPositiveAmount
	}
	return nil
}

// GenerateResult carries both copies produced by a single generation call.
type GenerateResult struct {
	Original  model.ReceiptModel `json:"original"`
	Duplicate model.ReceiptModel `json:"duplicate"`
}

// Generate produces the original receipt for a paid payment plus a duplicate
// copy referencing it. Both get their own PDF attempt and audit entry; a PDF
// failure is logged and leaves receipt_pdf_path empty, it never fails the call.
func Generate(db *gorm.DB, uploadDir string, paymentID, actorID uuid.UUID, actorRole string) (GenerateResult, error) {
	var res GenerateResult

	var payment paymentModel.FeePaymentModel
	if err := db.First(&payment, "fee_payment_id = ?", paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, ErrPaymentNotFound
		}
		return res, err
	}
	if err := validateForGeneration(payment); err != nil {
		return res, err
	}

	var existing int64
	if err := db.Model(&model.ReceiptModel{}).
		Where("receipt_payment_id = ?", payment.FeePaymentID).
		Count(&existing).Error; err != nil {
		return res, err
	}
	if existing > 0 {
		return res, ErrAlreadyGenerated
	}

	var student studentModel.StudentModel
	if err := db.First(&student, "student_id = ?", payment.FeePaymentStudentID).Error; err != nil {
		return res, err
	}

	var fs feeModel.FeeStructureModel
	if err := db.First(&fs, "fee_structure_department = ?", payment.FeePaymentDepartment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, ErrFeeStructureNotFound
		}
		return res, err
	}

	var concessions []concessionModel.ConcessionModel
	if err := db.
		Where("concession_student_id = ? AND concession_department = ? AND concession_academic_year = ? AND concession_semester = ?",
			payment.FeePaymentStudentID, payment.FeePaymentDepartment,
			payment.FeePaymentAcademicYear, payment.FeePaymentSemester).
		Find(&concessions).Error; err != nil {
		return res, err
	}
	concessionTotal := reportSvc.ConcessionTotal(concessions, fs.ComputeTotal())

	breakdown := AllocateBreakdown(fs, payment.FeePaymentAmount)
	breakdownJSON, err := json.Marshal(breakdown)
	if err != nil {
		return res, err
	}

	now := time.Now()
	original := model.ReceiptModel{
		ReceiptNo:              NewReceiptNo(now),
		ReceiptPaymentID:       payment.FeePaymentID,
		ReceiptStudentID:       payment.FeePaymentStudentID,
		ReceiptAmount:          payment.FeePaymentAmount,
		ReceiptConcessionTotal: concessionTotal,
		ReceiptComponents:      breakdownJSON,
		ReceiptStatus:          model.ReceiptStatusActive,
	}
	if err := db.Create(&original).Error; err != nil {
		return res, err
	}
	attachPDF(db, uploadDir, &original, student, breakdown)
	auditSvc.Record(db, auditSvc.Entry{
		Action:     "receipt.generated",
		EntityType: "receipt",
		EntityID:   original.ReceiptID.String(),
		After:      original,
		ActorID:    actorID,
		ActorRole:  actorRole,
	})

	// a duplicate copy is always issued alongside the original
	duplicate := model.ReceiptModel{
		ReceiptNo:              NewReceiptNo(now),
		ReceiptPaymentID:       payment.FeePaymentID,
		ReceiptStudentID:       payment.FeePaymentStudentID,
		ReceiptAmount:          payment.FeePaymentAmount,
		ReceiptConcessionTotal: concessionTotal,
		ReceiptComponents:      breakdownJSON,
		ReceiptIsDuplicate:     true,
		ReceiptOriginalID:      &original.ReceiptID,
		ReceiptStatus:          model.ReceiptStatusActive,
	}
	if err := db.Create(&duplicate).Error; err != nil {
		return res, err
	}
	attachPDF(db, uploadDir, &duplicate, student, breakdown)
	auditSvc.Record(db, auditSvc.Entry{
		Action:     "receipt.duplicate_generated",
		EntityType: "receipt",
		EntityID:   duplicate.ReceiptID.String(),
		After:      duplicate,
		ActorID:    actorID,
		ActorRole:  actorRole,
	})

	res.Original = original
	res.Duplicate = duplicate
	return res, nil
}

func attachPDF(db *gorm.DB, uploadDir string, r *model.ReceiptModel, student studentModel.StudentModel, breakdown []model.ReceiptComponent) {
	path, err := RenderPDF(uploadDir, *r, student, breakdown)
	if err != nil {
		log.Printf("[WARN] receipt %s pdf render failed: %v", r.ReceiptNo, err)
		return
	}
	r.ReceiptPDFPath = &path
	if err := db.Model(r).Update("receipt_pdf_path", path).Error; err != nil {
		log.Printf("[WARN] receipt %s pdf path update failed: %v", r.ReceiptNo, err)
	}
}
