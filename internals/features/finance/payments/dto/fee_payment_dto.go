package dto

import (
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/finance/payments/model"
)

type PaymentCreateDTO struct {
	StudentID    uuid.UUID `json:"student_id" validate:"required"`
	Department   string    `json:"department" validate:"required,oneof=B.A. B.Sc. B.Ed."`
	AcademicYear string    `json:"academic_year" validate:"required,max=20"`
	Semester     int       `json:"semester" validate:"required,min=1,max=2"`
	Amount       float64   `json:"amount" validate:"required,gt=0"`
	Mode         string    `json:"mode" validate:"required,oneof=cash online cheque dd"`
	Note         *string   `json:"note,omitempty"`
	// MarkPaid records the payment as already settled (counter payments).
	MarkPaid bool `json:"mark_paid"`
}

type OnlinePaymentCreateDTO struct {
	StudentID    uuid.UUID `json:"student_id" validate:"required"`
	Department   string    `json:"department" validate:"required,oneof=B.A. B.Sc. B.Ed."`
	AcademicYear string    `json:"academic_year" validate:"required,max=20"`
	Semester     int       `json:"semester" validate:"required,min=1,max=2"`
	Amount       float64   `json:"amount" validate:"required,gt=0"`
}

type PaymentResponse struct {
	PaymentID    uuid.UUID  `json:"payment_id"`
	StudentID    uuid.UUID  `json:"student_id"`
	Department   string     `json:"department"`
	AcademicYear string     `json:"academic_year"`
	Semester     int        `json:"semester"`
	Amount       float64    `json:"amount"`
	Mode         string     `json:"mode"`
	OrderID      *string    `json:"order_id,omitempty"`
	Status       string     `json:"status"`
	PaymentDate  *time.Time `json:"payment_date,omitempty"`
	Note         *string    `json:"note,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (in PaymentCreateDTO) ToModel() model.FeePaymentModel {
	return model.FeePaymentModel{
		FeePaymentStudentID:    in.StudentID,
		FeePaymentDepartment:   in.Department,
		FeePaymentAcademicYear: in.AcademicYear,
		FeePaymentSemester:     in.Semester,
		FeePaymentAmount:       in.Amount,
		FeePaymentMode:         model.PaymentMode(in.Mode),
		FeePaymentStatus:       model.PaymentStatusPending,
		FeePaymentNote:         in.Note,
	}
}

func ToPaymentResponse(m model.FeePaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:    m.FeePaymentID,
		StudentID:    m.FeePaymentStudentID,
		Department:   m.FeePaymentDepartment,
		AcademicYear: m.FeePaymentAcademicYear,
		Semester:     m.FeePaymentSemester,
		Amount:       m.FeePaymentAmount,
		Mode:         string(m.FeePaymentMode),
		OrderID:      m.FeePaymentOrderID,
		Status:       string(m.FeePaymentStatus),
		PaymentDate:  m.FeePaymentDate,
		Note:         m.FeePaymentNote,
		CreatedAt:    m.FeePaymentCreatedAt,
	}
}

func ToPaymentResponses(list []model.FeePaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToPaymentResponse(m))
	}
	return out
}
