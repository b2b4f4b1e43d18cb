package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"officer_duty_backend/internals/configs"
	authRepo "officer_duty_backend/internals/features/users/auth/repository"
)

const defaultCleanupSpec = "@every 1h"

// StartBlacklistCleanupScheduler menjadwalkan penghapusan token_blacklist yang
// sudah kedaluwarsa. Jadwal dari TOKEN_BLACKLIST_CLEANUP_CRON (format cron / @every).
// Pemanggil wajib Stop() cron yang dikembalikan saat shutdown.
func StartBlacklistCleanupScheduler(db *gorm.DB) (*cron.Cron, error) {
	spec := configs.GetEnv("TOKEN_BLACKLIST_CLEANUP_CRON", defaultCleanupSpec)

	c := cron.New(cron.WithLocation(configs.Location()))
	if _, err := c.AddFunc(spec, func() { RunBlacklistCleanup(db, time.Now()) }); err != nil {
		return nil, err
	}
	c.Start()
	log.Printf("[CLEANUP] token_blacklist cleanup dijadwalkan: %s", spec)
	return c, nil
}

// RunBlacklistCleanup: satu putaran pembersihan.
func RunBlacklistCleanup(db *gorm.DB, now time.Time) int64 {
	n, err := authRepo.CleanupExpiredBlacklist(db, now)
	if err != nil {
		log.Printf("[CLEANUP ERROR] Gagal hapus token: %v", err)
		return 0
	}
	if n > 0 {
		log.Printf("[CLEANUP] %d token kadaluarsa dihapus", n)
	}
	return n
}
