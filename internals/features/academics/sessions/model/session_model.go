package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- MODEL academic_sessions -------------------------------------------------
type AcademicSessionModel struct {
	AcademicSessionID uuid.UUID `json:"academic_session_id" gorm:"column:academic_session_id;type:uuid;default:gen_random_uuid();primaryKey"`

	AcademicSessionName      string    `json:"academic_session_name" gorm:"column:academic_session_name;type:varchar(20);not null;uniqueIndex:ux_academic_sessions_name"`
	AcademicSessionStartDate time.Time `json:"academic_session_start_date" gorm:"column:academic_session_start_date;type:date;not null"`
	AcademicSessionEndDate   time.Time `json:"academic_session_end_date" gorm:"column:academic_session_end_date;type:date;not null"`
	AcademicSessionIsActive  bool      `json:"academic_session_is_active" gorm:"column:academic_session_is_active;type:boolean;not null;default:false;index:idx_academic_sessions_active"`

	AcademicSessionCreatedAt time.Time      `json:"academic_session_created_at" gorm:"column:academic_session_created_at;type:timestamptz;not null;autoCreateTime"`
	AcademicSessionUpdatedAt time.Time      `json:"academic_session_updated_at" gorm:"column:academic_session_updated_at;type:timestamptz;not null;autoUpdateTime"`
	AcademicSessionDeletedAt gorm.DeletedAt `json:"academic_session_deleted_at,omitempty" gorm:"column:academic_session_deleted_at;type:timestamptz;index"`
}

func (AcademicSessionModel) TableName() string { return "academic_sessions" }
