package dto

import (
	"github.com/google/uuid"
)

type SetSalaryRequest struct {
	UserID     uuid.UUID `json:"user_id" validate:"required"`
	Basic      float64   `json:"basic" validate:"required,gt=0"`
	Allowances float64   `json:"allowances" validate:"gte=0"`
}

type RunPayrollRequest struct {
	Month       string `json:"month" validate:"required,datetime=2006-01"`
	WorkingDays int    `json:"working_days" validate:"required,gt=0,lte=31"`
}
