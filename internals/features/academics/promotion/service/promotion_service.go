package service

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/constants"
	studentModel "campushub_backend/internals/features/academics/students/model"
)

type Decision int

const (
	DecisionPromote Decision = iota
	DecisionGraduate
)

// Decide picks the outcome for a single student: students in the final year of
// their course graduate, everyone else moves up a year with semester reset.
func Decide(department string, year int) (Decision, error) {
	duration, ok := constants.CourseDurations[department]
	if !ok {
		return 0, fmt.Errorf("unknown department %q", department)
	}
	if year >= duration {
		return DecisionGraduate, nil
	}
	return DecisionPromote, nil
}

type StudentOutcome struct {
	StudentID   uuid.UUID `json:"student_id"`
	AdmissionNo string    `json:"admission_no"`
	FullName    string    `json:"full_name"`
	Department  string    `json:"department"`
	Year        int       `json:"year"`
	Semester    int       `json:"semester"`
	Reason      string    `json:"reason,omitempty"`
}

type Result struct {
	Promoted  []StudentOutcome `json:"promoted"`
	Graduated []StudentOutcome `json:"graduated"`
	Failed    []StudentOutcome `json:"failed"`
}

// Run advances every active student of a session. Failures on individual
// students are collected and the run continues; there is no cross-student
// transaction by design.
func Run(db *gorm.DB, sessionID uuid.UUID) (Result, error) {
	var students []studentModel.StudentModel
	if err := db.
		Where("student_session_id = ? AND student_status = ?", sessionID, studentModel.StudentStatusActive).
		Find(&students).Error; err != nil {
		return Result{}, err
	}

	res := Result{
		Promoted:  []StudentOutcome{},
		Graduated: []StudentOutcome{},
		Failed:    []StudentOutcome{},
	}

	for _, s := range students {
		outcome := StudentOutcome{
			StudentID:   s.StudentID,
			AdmissionNo: s.StudentAdmissionNo,
			FullName:    s.StudentFullName,
			Department:  s.StudentDepartment,
			Year:        s.StudentYear,
			Semester:    s.StudentSemester,
		}

		decision, err := Decide(s.StudentDepartment, s.StudentYear)
		if err != nil {
			outcome.Reason = err.Error()
			res.Failed = append(res.Failed, outcome)
			continue
		}

		switch decision {
		case DecisionGraduate:
			// year/semester stay as they are; only the status flips.
			err = db.Model(&studentModel.StudentModel{}).
				Where("student_id = ?", s.StudentID).
				Update("student_status", studentModel.StudentStatusGraduated).Error
			if err != nil {
				outcome.Reason = err.Error()
				res.Failed = append(res.Failed, outcome)
				continue
			}
			res.Graduated = append(res.Graduated, outcome)

		case DecisionPromote:
			err = db.Model(&studentModel.StudentModel{}).
				Where("student_id = ?", s.StudentID).
				Updates(map[string]any{
					"student_year":     s.StudentYear + 1,
					"student_semester": 1,
				}).Error
			if err != nil {
				outcome.Reason = err.Error()
				res.Failed = append(res.Failed, outcome)
				continue
			}
			outcome.Year = s.StudentYear + 1
			outcome.Semester = 1
			res.Promoted = append(res.Promoted, outcome)
		}
	}

	return res, nil
}
