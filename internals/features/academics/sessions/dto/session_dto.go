package dto

import (
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/academics/sessions/model"
)

type SessionCreateDTO struct {
	Name      string    `json:"name" validate:"required,max=20"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required,gtfield=StartDate"`
}

type SessionUpdateDTO struct {
	Name      *string    `json:"name,omitempty" validate:"omitempty,max=20"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

type SessionResponse struct {
	SessionID uuid.UUID `json:"session_id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (in SessionCreateDTO) ToModel() model.AcademicSessionModel {
	return model.AcademicSessionModel{
		AcademicSessionName:      in.Name,
		AcademicSessionStartDate: in.StartDate,
		AcademicSessionEndDate:   in.EndDate,
	}
}

func ApplySessionUpdate(m *model.AcademicSessionModel, in SessionUpdateDTO) {
	if in.Name != nil {
		m.AcademicSessionName = *in.Name
	}
	if in.StartDate != nil {
		m.AcademicSessionStartDate = *in.StartDate
	}
	if in.EndDate != nil {
		m.AcademicSessionEndDate = *in.EndDate
	}
}

func ToSessionResponse(m model.AcademicSessionModel) SessionResponse {
	return SessionResponse{
		SessionID: m.AcademicSessionID,
		Name:      m.AcademicSessionName,
		StartDate: m.AcademicSessionStartDate,
		EndDate:   m.AcademicSessionEndDate,
		IsActive:  m.AcademicSessionIsActive,
		CreatedAt: m.AcademicSessionCreatedAt,
	}
}

func ToSessionResponses(list []model.AcademicSessionModel) []SessionResponse {
	out := make([]SessionResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToSessionResponse(m))
	}
	return out
}
