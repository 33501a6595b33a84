package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- ENUM student_status -----------------------------------------------------
type StudentStatus string

const (
	StudentStatusActive    StudentStatus = "active"
	StudentStatusGraduated StudentStatus = "graduated"
	StudentStatusDropped   StudentStatus = "dropped"
)

// --- MODEL students ----------------------------------------------------------
// One table for all departments; student_department discriminates B.A. / B.Sc. /
// B.Ed. instead of sharding students into per-department collections.
type StudentModel struct {
	StudentID uuid.UUID `json:"student_id" gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey"`

	StudentAdmissionNo string `json:"student_admission_no" gorm:"column:student_admission_no;type:varchar(30);not null;uniqueIndex:ux_students_admission_no"`
	StudentFullName    string `json:"student_full_name" gorm:"column:student_full_name;type:varchar(100);not null"`
	StudentEmail       string `json:"student_email" gorm:"column:student_email;type:varchar(120);not null"`

	StudentDepartment string `json:"student_department" gorm:"column:student_department;type:varchar(10);not null;index:idx_students_dept_year,priority:1"`
	StudentYear       int    `json:"student_year" gorm:"column:student_year;type:smallint;not null;default:1;index:idx_students_dept_year,priority:2"`
	StudentSemester   int    `json:"student_semester" gorm:"column:student_semester;type:smallint;not null;default:1"`

	StudentSessionID *uuid.UUID    `json:"student_session_id,omitempty" gorm:"column:student_session_id;type:uuid;index:idx_students_session"`
	StudentStatus    StudentStatus `json:"student_status" gorm:"column:student_status;type:varchar(15);not null;default:'active';index:idx_students_status"`

	StudentGuardianName *string `json:"student_guardian_name,omitempty" gorm:"column:student_guardian_name;type:varchar(100)"`
	StudentPhone        *string `json:"student_phone,omitempty" gorm:"column:student_phone;type:varchar(20)"`
	StudentAddress      *string `json:"student_address,omitempty" gorm:"column:student_address;type:text"`
	StudentPhotoURL     *string `json:"student_photo_url,omitempty" gorm:"column:student_photo_url;type:text"`

	StudentCreatedAt time.Time      `json:"student_created_at" gorm:"column:student_created_at;type:timestamptz;not null;autoCreateTime"`
	StudentUpdatedAt time.Time      `json:"student_updated_at" gorm:"column:student_updated_at;type:timestamptz;not null;autoUpdateTime"`
	StudentDeletedAt gorm.DeletedAt `json:"student_deleted_at,omitempty" gorm:"column:student_deleted_at;type:timestamptz;index"`
}

func (StudentModel) TableName() string { return "students" }
