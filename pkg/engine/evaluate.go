package engine

import (
	"time"

	"github.com/borgmon/riseandpi/pkg/models"
	"github.com/borgmon/riseandpi/pkg/store"
)

// Evaluate returns the single alarm, if any, that should fire at now.
//
// Records are scanned in insertion order and the first match wins: if two
// alarms share a minute, the second fires on a later tick once the first has
// been resolved. The scan never mutates anything; applying the outcome is the
// scheduler's job.
func Evaluate(now time.Time, records []models.AlarmRecord, dismissed *store.DismissalTracker) (models.AlarmRecord, bool) {
	for _, record := range records {
		if !record.Time.Matches(now) {
			continue
		}
		if record.Repeat.Weekly && record.Repeat.Day != now.Weekday() {
			continue
		}
		// A snooze instance is a fresh user-requested reminder and fires
		// even if the base alarm was dismissed today.
		if !record.IsSnoozeInstance && dismissed.IsDismissed(record.Label, now) {
			continue
		}
		return record, true
	}
	return models.AlarmRecord{}, false
}
