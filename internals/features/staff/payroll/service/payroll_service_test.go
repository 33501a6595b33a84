package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	attendanceModel "campushub_backend/internals/features/staff/attendance/model"
)

func TestAbsentDays(t *testing.T) {
	rows := []attendanceModel.StaffAttendanceModel{
		{StaffAttendanceStatus: attendanceModel.AttendanceStatusPresent},
		{StaffAttendanceStatus: attendanceModel.AttendanceStatusAbsent},
		{StaffAttendanceStatus: attendanceModel.AttendanceStatusAbsent},
		{StaffAttendanceStatus: attendanceModel.AttendanceStatusHalfDay},
		{StaffAttendanceStatus: attendanceModel.AttendanceStatusLeave},
	}
	assert.Equal(t, 2.5, AbsentDays(rows))
	assert.Equal(t, 0.0, AbsentDays(nil))
}

func TestComputeSlip(t *testing.T) {
	gross, deduction, net := ComputeSlip(30000, 5000, 0, 26)
	assert.Equal(t, 35000.0, gross)
	assert.Equal(t, 0.0, deduction)
	assert.Equal(t, 35000.0, net)

	gross, deduction, net = ComputeSlip(26000, 4000, 2, 26)
	assert.Equal(t, 30000.0, gross)
	assert.Equal(t, 2000.0, deduction)
	assert.Equal(t, 28000.0, net)

	// half day prorates by 0.5
	_, deduction, _ = ComputeSlip(26000, 0, 0.5, 26)
	assert.Equal(t, 500.0, deduction)
}

func TestComputeSlipNetNeverNegative(t *testing.T) {
	// absent more days than the month has working days
	gross, deduction, net := ComputeSlip(26000, 1000, 40, 26)
	assert.Equal(t, 27000.0, gross)
	assert.Equal(t, gross, deduction, "deduction caps at gross")
	assert.Equal(t, 0.0, net)
}

func TestComputeSlipZeroWorkingDays(t *testing.T) {
	_, deduction, net := ComputeSlip(26000, 0, 5, 0)
	assert.Equal(t, 0.0, deduction)
	assert.Equal(t, 26000.0, net)
}
