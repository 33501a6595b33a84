package dto

import (
	"github.com/google/uuid"

	"campushub_backend/internals/features/finance/fees/model"
)

type FeeStructureCreateDTO struct {
	Department       string  `json:"department" validate:"required,oneof=B.A. B.Sc. B.Ed."`
	TuitionFee       float64 `json:"tuition_fee" validate:"min=0"`
	LibraryFee       float64 `json:"library_fee" validate:"min=0"`
	LaboratoryFee    float64 `json:"laboratory_fee" validate:"min=0"`
	ExaminationFee   float64 `json:"examination_fee" validate:"min=0"`
	SportsFee        float64 `json:"sports_fee" validate:"min=0"`
	DevelopmentFee   float64 `json:"development_fee" validate:"min=0"`
	MiscellaneousFee float64 `json:"miscellaneous_fee" validate:"min=0"`
}

type FeeStructureUpdateDTO struct {
	TuitionFee       *float64 `json:"tuition_fee,omitempty" validate:"omitempty,min=0"`
	LibraryFee       *float64 `json:"library_fee,omitempty" validate:"omitempty,min=0"`
	LaboratoryFee    *float64 `json:"laboratory_fee,omitempty" validate:"omitempty,min=0"`
	ExaminationFee   *float64 `json:"examination_fee,omitempty" validate:"omitempty,min=0"`
	SportsFee        *float64 `json:"sports_fee,omitempty" validate:"omitempty,min=0"`
	DevelopmentFee   *float64 `json:"development_fee,omitempty" validate:"omitempty,min=0"`
	MiscellaneousFee *float64 `json:"miscellaneous_fee,omitempty" validate:"omitempty,min=0"`
}

type FeeStructureResponse struct {
	FeeStructureID uuid.UUID            `json:"fee_structure_id"`
	Department     string               `json:"department"`
	Components     []model.FeeComponent `json:"components"`
	Total          float64              `json:"total"`
}

func (in FeeStructureCreateDTO) ToModel() model.FeeStructureModel {
	return model.FeeStructureModel{
		FeeStructureDepartment:       in.Department,
		FeeStructureTuitionFee:       in.TuitionFee,
		FeeStructureLibraryFee:       in.LibraryFee,
		FeeStructureLaboratoryFee:    in.LaboratoryFee,
		FeeStructureExaminationFee:   in.ExaminationFee,
		FeeStructureSportsFee:        in.SportsFee,
		FeeStructureDevelopmentFee:   in.DevelopmentFee,
		FeeStructureMiscellaneousFee: in.MiscellaneousFee,
	}
}

func ApplyFeeStructureUpdate(m *model.FeeStructureModel, in FeeStructureUpdateDTO) {
	if in.TuitionFee != nil {
		m.FeeStructureTuitionFee = *in.TuitionFee
	}
	if in.LibraryFee != nil {
		m.FeeStructureLibraryFee = *in.LibraryFee
	}
	if in.LaboratoryFee != nil {
		m.FeeStructureLaboratoryFee = *in.LaboratoryFee
	}
	if in.ExaminationFee != nil {
		m.FeeStructureExaminationFee = *in.ExaminationFee
	}
	if in.SportsFee != nil {
		m.FeeStructureSportsFee = *in.SportsFee
	}
	if in.DevelopmentFee != nil {
		m.FeeStructureDevelopmentFee = *in.DevelopmentFee
	}
	if in.MiscellaneousFee != nil {
		m.FeeStructureMiscellaneousFee = *in.MiscellaneousFee
	}
}

func ToFeeStructureResponse(m model.FeeStructureModel) FeeStructureResponse {
	return FeeStructureResponse{
		FeeStructureID: m.FeeStructureID,
		Department:     m.FeeStructureDepartment,
		Components:     m.Components(),
		Total:          m.FeeStructureTotal,
	}
}

func ToFeeStructureResponses(list []model.FeeStructureModel) []FeeStructureResponse {
	out := make([]FeeStructureResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToFeeStructureResponse(m))
	}
	return out
}
