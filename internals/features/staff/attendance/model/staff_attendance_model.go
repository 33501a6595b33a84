package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- ENUM staff_attendance_status ---------------------------------------------
type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusLeave   AttendanceStatus = "leave"
	AttendanceStatusHalfDay AttendanceStatus = "half_day"
)

func IsValidAttendanceStatus(s AttendanceStatus) bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusLeave, AttendanceStatusHalfDay:
		return true
	}
	return false
}

// --- MODEL staff_attendances ---------------------------------------------------
// One row per staff member per calendar day.
type StaffAttendanceModel struct {
	StaffAttendanceID uuid.UUID `json:"staff_attendance_id" gorm:"column:staff_attendance_id;type:uuid;default:gen_random_uuid();primaryKey"`

	StaffAttendanceUserID uuid.UUID        `json:"staff_attendance_user_id" gorm:"column:staff_attendance_user_id;type:uuid;not null;uniqueIndex:ux_staff_attendances_user_date,priority:1"`
	StaffAttendanceDate   time.Time        `json:"staff_attendance_date" gorm:"column:staff_attendance_date;type:date;not null;uniqueIndex:ux_staff_attendances_user_date,priority:2"`
	StaffAttendanceStatus AttendanceStatus `json:"staff_attendance_status" gorm:"column:staff_attendance_status;type:varchar(10);not null"`

	StaffAttendanceCheckIn  *string `json:"staff_attendance_check_in,omitempty" gorm:"column:staff_attendance_check_in;type:time"`
	StaffAttendanceCheckOut *string `json:"staff_attendance_check_out,omitempty" gorm:"column:staff_attendance_check_out;type:time"`

	StaffAttendanceNote *string `json:"staff_attendance_note,omitempty" gorm:"column:staff_attendance_note;type:text"`

	StaffAttendanceCreatedAt time.Time      `json:"staff_attendance_created_at" gorm:"column:staff_attendance_created_at;type:timestamptz;not null;autoCreateTime"`
	StaffAttendanceUpdatedAt time.Time      `json:"staff_attendance_updated_at" gorm:"column:staff_attendance_updated_at;type:timestamptz;not null;autoUpdateTime"`
	StaffAttendanceDeletedAt gorm.DeletedAt `json:"staff_attendance_deleted_at,omitempty" gorm:"column:staff_attendance_deleted_at;type:timestamptz;index"`
}

func (StaffAttendanceModel) TableName() string { return "staff_attendances" }
