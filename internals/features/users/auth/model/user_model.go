package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel is the single login table for every actor in the system.
// The role column discriminates admin / faculty / student instead of
// keeping three parallel user collections.
type UserModel struct {
	UserID uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey"`

	UserFullName string `json:"user_full_name" gorm:"column:user_full_name;type:varchar(100);not null"`
	UserEmail    string `json:"user_email" gorm:"column:user_email;type:varchar(120);not null;uniqueIndex:ux_users_email"`
	UserPassword string `json:"-" gorm:"column:user_password;type:varchar(255);not null"`

	UserRole        string  `json:"user_role" gorm:"column:user_role;type:varchar(20);not null;index:idx_users_role"`
	UserDesignation *string `json:"user_designation,omitempty" gorm:"column:user_designation;type:varchar(60)"`
	UserPhone       *string `json:"user_phone,omitempty" gorm:"column:user_phone;type:varchar(20)"`

	UserIsActive bool `json:"user_is_active" gorm:"column:user_is_active;type:boolean;not null;default:true"`

	UserCreatedAt time.Time      `json:"user_created_at" gorm:"column:user_created_at;type:timestamptz;not null;autoCreateTime"`
	UserUpdatedAt time.Time      `json:"user_updated_at" gorm:"column:user_updated_at;type:timestamptz;not null;autoUpdateTime"`
	UserDeletedAt gorm.DeletedAt `json:"user_deleted_at,omitempty" gorm:"column:user_deleted_at;type:timestamptz;index"`
}

func (UserModel) TableName() string { return "users" }
