package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- MODEL fee_structures ----------------------------------------------------
// One row per department. The total column is derived: a BeforeSave hook keeps
// it equal to the sum of the seven component heads on every create/update.
type FeeStructureModel struct {
	FeeStructureID uuid.UUID `json:"fee_structure_id" gorm:"column:fee_structure_id;type:uuid;default:gen_random_uuid();primaryKey"`

	FeeStructureDepartment string `json:"fee_structure_department" gorm:"column:fee_structure_department;type:varchar(10);not null;uniqueIndex:ux_fee_structures_department"`

	FeeStructureTuitionFee       float64 `json:"fee_structure_tuition_fee" gorm:"column:fee_structure_tuition_fee;type:numeric(12,2);not null;default:0"`
	FeeStructureLibraryFee       float64 `json:"fee_structure_library_fee" gorm:"column:fee_structure_library_fee;type:numeric(12,2);not null;default:0"`
	FeeStructureLaboratoryFee    float64 `json:"fee_structure_laboratory_fee" gorm:"column:fee_structure_laboratory_fee;type:numeric(12,2);not null;default:0"`
	FeeStructureExaminationFee   float64 `json:"fee_structure_examination_fee" gorm:"column:fee_structure_examination_fee;type:numeric(12,2);not null;default:0"`
	FeeStructureSportsFee        float64 `json:"fee_structure_sports_fee" gorm:"column:fee_structure_sports_fee;type:numeric(12,2);not null;default:0"`
	FeeStructureDevelopmentFee   float64 `json:"fee_structure_development_fee" gorm:"column:fee_structure_development_fee;type:numeric(12,2);not null;default:0"`
	FeeStructureMiscellaneousFee float64 `json:"fee_structure_miscellaneous_fee" gorm:"column:fee_structure_miscellaneous_fee;type:numeric(12,2);not null;default:0"`

	FeeStructureTotal float64 `json:"fee_structure_total" gorm:"column:fee_structure_total;type:numeric(12,2);not null;default:0"`

	FeeStructureCreatedAt time.Time      `json:"fee_structure_created_at" gorm:"column:fee_structure_created_at;type:timestamptz;not null;autoCreateTime"`
	FeeStructureUpdatedAt time.Time      `json:"fee_structure_updated_at" gorm:"column:fee_structure_updated_at;type:timestamptz;not null;autoUpdateTime"`
	FeeStructureDeletedAt gorm.DeletedAt `json:"fee_structure_deleted_at,omitempty" gorm:"column:fee_structure_deleted_at;type:timestamptz;index"`
}

func (FeeStructureModel) TableName() string { return "fee_structures" }

// Components returns the named fee heads in a stable order for breakdowns.
func (m FeeStructureModel) Components() []FeeComponent {
	return []FeeComponent{
		{Name: "tuitionFee", Amount: m.FeeStructureTuitionFee},
		{Name: "libraryFee", Amount: m.FeeStructureLibraryFee},
		{Name: "laboratoryFee", Amount: m.FeeStructureLaboratoryFee},
		{Name: "examinationFee", Amount: m.FeeStructureExaminationFee},
		{Name: "sportsFee", Amount: m.FeeStructureSportsFee},
		{Name: "developmentFee", Amount: m.FeeStructureDevelopmentFee},
		{Name: "miscellaneousFee", Amount: m.FeeStructureMiscellaneousFee},
	}
}

type FeeComponent struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

func (m FeeStructureModel) ComputeTotal() float64 {
	total := 0.0
	for _, comp := range m.Components() {
		total += comp.Amount
	}
	return total
}

// BeforeSave recomputes the derived total; the invariant
// total == sum(components) holds after every create and update.
func (m *FeeStructureModel) BeforeSave(tx *gorm.DB) error {
	m.FeeStructureTotal = m.ComputeTotal()
	return nil
}
