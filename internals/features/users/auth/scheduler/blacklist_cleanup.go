package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "campushub_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler purges blacklist rows whose tokens have
// expired anyway. Runs hourly for the life of the process.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			res := db.Unscoped().
				Where("expired_at < ?", time.Now()).
				Delete(&authModel.TokenBlacklist{})
			if res.Error != nil {
				log.Printf("[ERROR] blacklist cleanup: %v", res.Error)
				continue
			}
			if res.RowsAffected > 0 {
				log.Printf("[INFO] blacklist cleanup removed %d rows", res.RowsAffected)
			}
		}
	}()
}
