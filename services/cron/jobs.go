package cron

import (
	"fmt"
	"time"

	"github.com/shloksagar/backend/model"
)

// CleanupExpiredOTPs removes sign-in codes that have passed their expiry
// Runs every 15 minutes
func (m *CronManager) CleanupExpiredOTPs() {
	jobName := "cleanup_expired_otps"

	result := m.db.Where("expires_at < ?", time.Now()).Delete(&model.EmailOTP{})
	if result.Error != nil {
		m.logJobError(jobName, fmt.Errorf("failed to delete expired codes: %w", result.Error))
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("Deleted %d expired sign-in codes", result.RowsAffected))
}

// CleanupOldData removes stale rows that no longer serve the dashboard
// Runs daily at 2 AM
func (m *CronManager) CleanupOldData() {
	jobName := "cleanup_old_data"

	// Cron job logs older than 30 days
	logCutoff := time.Now().AddDate(0, 0, -30)
	logResult := m.db.Where("started_at < ?", logCutoff).Delete(&model.CronJobLog{})
	if logResult.Error != nil {
		m.logJobError(jobName, fmt.Errorf("failed to delete old job logs: %w", logResult.Error))
		return
	}

	// Read contact submissions older than 90 days
	contactCutoff := time.Now().AddDate(0, 0, -90)
	contactResult := m.db.Where("is_read = ? AND created_at < ?", true, contactCutoff).
		Delete(&model.ContactSubmission{})
	if contactResult.Error != nil {
		m.logJobError(jobName, fmt.Errorf("failed to delete old contact submissions: %w", contactResult.Error))
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf(
		"Deleted %d old job logs, %d read contact submissions",
		logResult.RowsAffected, contactResult.RowsAffected,
	))
}
