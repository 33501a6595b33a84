package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenBlacklist holds tokens invalidated by logout until they would have
// expired anyway. A scheduler purges stale rows.
type TokenBlacklist struct {
	TokenBlacklistID uuid.UUID `json:"token_blacklist_id" gorm:"column:token_blacklist_id;type:uuid;default:gen_random_uuid();primaryKey"`

	Token     string    `json:"token" gorm:"column:token;type:text;not null;index:idx_token_blacklists_token"`
	ExpiredAt time.Time `json:"expired_at" gorm:"column:expired_at;type:timestamptz;not null"`

	CreatedAt time.Time      `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;autoCreateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"column:deleted_at;type:timestamptz;index"`
}

func (TokenBlacklist) TableName() string { return "token_blacklists" }
