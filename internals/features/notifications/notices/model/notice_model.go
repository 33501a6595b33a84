package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- ENUM notice_audience ------------------------------------------------------
type NoticeAudience string

const (
	NoticeAudienceAll     NoticeAudience = "all"
	NoticeAudienceFaculty NoticeAudience = "faculty"
	NoticeAudienceStudent NoticeAudience = "student"
)

// --- MODEL notices -------------------------------------------------------------
type NoticeModel struct {
	NoticeID uuid.UUID `json:"notice_id" gorm:"column:notice_id;type:uuid;default:gen_random_uuid();primaryKey"`

	NoticeTitle    string         `json:"notice_title" gorm:"column:notice_title;type:varchar(200);not null"`
	NoticeBody     string         `json:"notice_body" gorm:"column:notice_body;type:text;not null"`
	NoticeAudience NoticeAudience `json:"notice_audience" gorm:"column:notice_audience;type:varchar(10);not null;default:'all';index:idx_notices_audience"`

	NoticeIsPublished bool       `json:"notice_is_published" gorm:"column:notice_is_published;type:boolean;not null;default:false;index:idx_notices_published"`
	NoticePublishedAt *time.Time `json:"notice_published_at,omitempty" gorm:"column:notice_published_at;type:timestamptz"`

	NoticeCreatedBy uuid.UUID `json:"notice_created_by" gorm:"column:notice_created_by;type:uuid;not null"`

	NoticeCreatedAt time.Time      `json:"notice_created_at" gorm:"column:notice_created_at;type:timestamptz;not null;autoCreateTime"`
	NoticeUpdatedAt time.Time      `json:"notice_updated_at" gorm:"column:notice_updated_at;type:timestamptz;not null;autoUpdateTime"`
	NoticeDeletedAt gorm.DeletedAt `json:"notice_deleted_at,omitempty" gorm:"column:notice_deleted_at;type:timestamptz;index"`
}

func (NoticeModel) TableName() string { return "notices" }

// VisibleTo reports whether a notice reaches the given role.
func (m NoticeModel) VisibleTo(role string) bool {
	switch m.NoticeAudience {
	case NoticeAudienceAll:
		return true
	case NoticeAudienceFaculty:
		return role == "faculty" || role == "admin"
	case NoticeAudienceStudent:
		return role == "student" || role == "admin"
	}
	return false
}
