package dto

import (
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/finance/concessions/model"
)

type ConcessionCreateDTO struct {
	StudentID    uuid.UUID `json:"student_id" validate:"required"`
	Department   string    `json:"department" validate:"required,oneof=B.A. B.Sc. B.Ed."`
	AcademicYear string    `json:"academic_year" validate:"required,max=20"`
	Semester     int       `json:"semester" validate:"required,min=1,max=2"`
	DiscountType string    `json:"discount_type" validate:"required,oneof=fixed percentage"`
	Amount       float64   `json:"amount" validate:"min=0"`
	Percentage   float64   `json:"percentage" validate:"min=0,max=100"`
	Reason       *string   `json:"reason,omitempty"`
}

type ConcessionStatusDTO struct {
	Status string `json:"status" validate:"required,oneof=active inactive expired"`
}

type ConcessionResponse struct {
	ConcessionID uuid.UUID `json:"concession_id"`
	StudentID    uuid.UUID `json:"student_id"`
	Department   string    `json:"department"`
	AcademicYear string    `json:"academic_year"`
	Semester     int       `json:"semester"`
	DiscountType string    `json:"discount_type"`
	Amount       float64   `json:"amount"`
	Percentage   float64   `json:"percentage"`
	Reason       *string   `json:"reason,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func (in ConcessionCreateDTO) ToModel() model.ConcessionModel {
	return model.ConcessionModel{
		ConcessionStudentID:    in.StudentID,
		ConcessionDepartment:   in.Department,
		ConcessionAcademicYear: in.AcademicYear,
		ConcessionSemester:     in.Semester,
		ConcessionDiscountType: model.DiscountType(in.DiscountType),
		ConcessionAmount:       in.Amount,
		ConcessionPercentage:   in.Percentage,
		ConcessionReason:       in.Reason,
		ConcessionStatus:       model.ConcessionStatusActive,
	}
}

func ToConcessionResponse(m model.ConcessionModel) ConcessionResponse {
	return ConcessionResponse{
		ConcessionID: m.ConcessionID,
		StudentID:    m.ConcessionStudentID,
		Department:   m.ConcessionDepartment,
		AcademicYear: m.ConcessionAcademicYear,
		Semester:     m.ConcessionSemester,
		DiscountType: string(m.ConcessionDiscountType),
		Amount:       m.ConcessionAmount,
		Percentage:   m.ConcessionPercentage,
		Reason:       m.ConcessionReason,
		Status:       string(m.ConcessionStatus),
		CreatedAt:    m.ConcessionCreatedAt,
	}
}

func ToConcessionResponses(list []model.ConcessionModel) []ConcessionResponse {
	out := make([]ConcessionResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToConcessionResponse(m))
	}
	return out
}
