package dto

import (
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/academics/students/model"
)

type StudentCreateDTO struct {
	AdmissionNo  string     `json:"admission_no" validate:"required,max=30"`
	FullName     string     `json:"full_name" validate:"required,min=3,max=100"`
	Email        string     `json:"email" validate:"required,email"`
	Department   string     `json:"department" validate:"required,oneof=B.A. B.Sc. B.Ed."`
	Year         int        `json:"year" validate:"omitempty,min=1,max=3"`
	Semester     int        `json:"semester" validate:"omitempty,min=1,max=2"`
	SessionID    *uuid.UUID `json:"session_id,omitempty"`
	GuardianName *string    `json:"guardian_name,omitempty" validate:"omitempty,max=100"`
	Phone        *string    `json:"phone,omitempty" validate:"omitempty,max=20"`
	Address      *string    `json:"address,omitempty"`
}

type StudentUpdateDTO struct {
	FullName     *string    `json:"full_name,omitempty" validate:"omitempty,min=3,max=100"`
	Email        *string    `json:"email,omitempty" validate:"omitempty,email"`
	Year         *int       `json:"year,omitempty" validate:"omitempty,min=1,max=3"`
	Semester     *int       `json:"semester,omitempty" validate:"omitempty,min=1,max=2"`
	SessionID    *uuid.UUID `json:"session_id,omitempty"`
	GuardianName *string    `json:"guardian_name,omitempty" validate:"omitempty,max=100"`
	Phone        *string    `json:"phone,omitempty" validate:"omitempty,max=20"`
	Address      *string    `json:"address,omitempty"`
}

type StudentResponse struct {
	StudentID    uuid.UUID  `json:"student_id"`
	AdmissionNo  string     `json:"admission_no"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
	Department   string     `json:"department"`
	Year         int        `json:"year"`
	Semester     int        `json:"semester"`
	SessionID    *uuid.UUID `json:"session_id,omitempty"`
	Status       string     `json:"status"`
	GuardianName *string    `json:"guardian_name,omitempty"`
	Phone        *string    `json:"phone,omitempty"`
	Address      *string    `json:"address,omitempty"`
	PhotoURL     *string    `json:"photo_url,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (in StudentCreateDTO) ToModel() model.StudentModel {
	year := in.Year
	if year < 1 {
		year = 1
	}
	semester := in.Semester
	if semester < 1 {
		semester = 1
	}
	return model.StudentModel{
		StudentAdmissionNo:  in.AdmissionNo,
		StudentFullName:     in.FullName,
		StudentEmail:        in.Email,
		StudentDepartment:   in.Department,
		StudentYear:         year,
		StudentSemester:     semester,
		StudentSessionID:    in.SessionID,
		StudentStatus:       model.StudentStatusActive,
		StudentGuardianName: in.GuardianName,
		StudentPhone:        in.Phone,
		StudentAddress:      in.Address,
	}
}

func ApplyStudentUpdate(m *model.StudentModel, in StudentUpdateDTO) {
	if in.FullName != nil {
		m.StudentFullName = *in.FullName
	}
	if in.Email != nil {
		m.StudentEmail = *in.Email
	}
	if in.Year != nil {
		m.StudentYear = *in.Year
	}
	if in.Semester != nil {
		m.StudentSemester = *in.Semester
	}
	if in.SessionID != nil {
		m.StudentSessionID = in.SessionID
	}
	if in.GuardianName != nil {
		m.StudentGuardianName = in.GuardianName
	}
	if in.Phone != nil {
		m.StudentPhone = in.Phone
	}
	if in.Address != nil {
		m.StudentAddress = in.Address
	}
}

func ToStudentResponse(m model.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:    m.StudentID,
		AdmissionNo:  m.StudentAdmissionNo,
		FullName:     m.StudentFullName,
		Email:        m.StudentEmail,
		Department:   m.StudentDepartment,
		Year:         m.StudentYear,
		Semester:     m.StudentSemester,
		SessionID:    m.StudentSessionID,
		Status:       string(m.StudentStatus),
		GuardianName: m.StudentGuardianName,
		Phone:        m.StudentPhone,
		Address:      m.StudentAddress,
		PhotoURL:     m.StudentPhotoURL,
		CreatedAt:    m.StudentCreatedAt,
	}
}

func ToStudentResponses(list []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToStudentResponse(m))
	}
	return out
}
