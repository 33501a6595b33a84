package dto

import (
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/staff/attendance/model"
)

type MarkAttendanceRequest struct {
	UserID   uuid.UUID `json:"user_id" validate:"required"`
	Date     string    `json:"date" validate:"required,datetime=2006-01-02"`
	Status   string    `json:"status" validate:"required,oneof=present absent leave half_day"`
	CheckIn  *string   `json:"check_in,omitempty" validate:"omitempty,datetime=15:04"`
	CheckOut *string   `json:"check_out,omitempty" validate:"omitempty,datetime=15:04"`
	Note     *string   `json:"note,omitempty" validate:"omitempty,max=500"`
}

type AttendanceResponse struct {
	ID       uuid.UUID              `json:"id"`
	UserID   uuid.UUID              `json:"user_id"`
	Date     string                 `json:"date"`
	Status   model.AttendanceStatus `json:"status"`
	CheckIn  *string                `json:"check_in,omitempty"`
	CheckOut *string                `json:"check_out,omitempty"`
	Note     *string                `json:"note,omitempty"`
}

func ToAttendanceResponse(m model.StaffAttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		ID:       m.StaffAttendanceID,
		UserID:   m.StaffAttendanceUserID,
		Date:     m.StaffAttendanceDate.Format("2006-01-02"),
		Status:   m.StaffAttendanceStatus,
		CheckIn:  m.StaffAttendanceCheckIn,
		CheckOut: m.StaffAttendanceCheckOut,
		Note:     m.StaffAttendanceNote,
	}
}

func ToAttendanceResponses(list []model.StaffAttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToAttendanceResponse(m))
	}
	return out
}

// MonthlySummary aggregates one staff member's month.
type MonthlySummary struct {
	UserID   uuid.UUID `json:"user_id"`
	Month    string    `json:"month"`
	Present  int       `json:"present"`
	Absent   int       `json:"absent"`
	Leave    int       `json:"leave"`
	HalfDays int       `json:"half_days"`
}

// Summarize folds attendance rows into the monthly counters.
func Summarize(userID uuid.UUID, month string, rows []model.StaffAttendanceModel) MonthlySummary {
	s := MonthlySummary{UserID: userID, Month: month}
	for _, r := range rows {
		switch r.StaffAttendanceStatus {
		case model.AttendanceStatusPresent:
			s.Present++
		case model.AttendanceStatusAbsent:
			s.Absent++
		case model.AttendanceStatusLeave:
			s.Leave++
		case model.AttendanceStatusHalfDay:
			s.HalfDays++
		}
	}
	return s
}

// MonthRange returns [first day, first day of next month) for a YYYY-MM key.
func MonthRange(month string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 1, 0), nil
}
