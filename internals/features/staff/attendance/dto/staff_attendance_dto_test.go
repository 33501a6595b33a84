package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campushub_backend/internals/features/staff/attendance/model"
)

func TestSummarize(t *testing.T) {
	id := uuid.New()
	rows := []model.StaffAttendanceModel{
		{StaffAttendanceStatus: model.AttendanceStatusPresent},
		{StaffAttendanceStatus: model.AttendanceStatusPresent},
		{StaffAttendanceStatus: model.AttendanceStatusAbsent},
		{StaffAttendanceStatus: model.AttendanceStatusLeave},
		{StaffAttendanceStatus: model.AttendanceStatusHalfDay},
	}

	s := Summarize(id, "2026-03", rows)
	assert.Equal(t, 2, s.Present)
	assert.Equal(t, 1, s.Absent)
	assert.Equal(t, 1, s.Leave)
	assert.Equal(t, 1, s.HalfDays)
	assert.Equal(t, "2026-03", s.Month)
}

func TestMonthRange(t *testing.T) {
	from, to, err := MonthRange("2026-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), to)

	// december rolls into the next year
	from, to, err = MonthRange("2025-12")
	require.NoError(t, err)
	assert.Equal(t, 2026, to.Year())
	assert.Equal(t, time.December, from.Month())

	_, _, err = MonthRange("march-2026")
	assert.Error(t, err)
}
