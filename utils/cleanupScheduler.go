package utils

import (
	"enemcalc/config"
	"enemcalc/database"
	"enemcalc/models"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[PURGE-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// purgeSoftDeleted hard-deletes rows that were soft-deleted longer ago than
// the configured retention window.
func purgeSoftDeleted() {
	db := database.Database.Db
	cutoff := time.Now().AddDate(0, 0, -config.AppConfig.PurgeRetentionDays)

	result := db.Unscoped().Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).Delete(&models.Simulation{})
	if result.Error != nil {
		logScheduler("Error purging simulations: " + result.Error.Error())
		return
	}
	purged := result.RowsAffected

	result = db.Unscoped().Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).Delete(&models.Ambition{})
	if result.Error != nil {
		logScheduler("Error purging ambitions: " + result.Error.Error())
		return
	}
	purged += result.RowsAffected

	if purged > 0 {
		logScheduler(fmt.Sprintf("Purged %d rows past the %d-day retention window", purged, config.AppConfig.PurgeRetentionDays))
	}
}

// StartPurgeScheduler runs the soft-delete purge once a day.
func StartPurgeScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("@daily", purgeSoftDeleted); err != nil {
		log.Fatalf("Failed to schedule purge job: %v", err)
	}

	c.Start()
	logScheduler("Purge scheduler started")
}
