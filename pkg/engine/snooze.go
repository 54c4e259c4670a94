package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/borgmon/riseandpi/pkg/models"
	"github.com/borgmon/riseandpi/pkg/store"
)

// ResolveSnooze applies a snooze decision for a firing alarm: it supersedes
// any earlier snooze instance of the same base alarm, retires a one-shot
// base, and inserts the new time-shifted instance. It returns the inserted
// record.
func ResolveSnooze(alarms *store.AlarmStore, dismissed *store.DismissalTracker, candidate models.AlarmRecord, now time.Time, delayMinutes int) models.AlarmRecord {
	baseID := candidate.ID
	if candidate.IsSnoozeInstance {
		baseID = candidate.BaseID
	}
	baseLabel := models.BaseLabel(candidate.Label)

	// At most one snooze instance may be live per base alarm, so the new one
	// replaces whatever is there. A defensive sweep rather than a single
	// delete, in case the invariant was ever violated from outside.
	alarms.RemoveMatching(func(r models.AlarmRecord) bool {
		return r.IsSnoozeInstance && r.BaseID == baseID
	})

	// The snooze instance carries everything forward from the base alarm. If
	// the base was already retired by an earlier snooze, the firing instance
	// itself is the source of truth.
	source := candidate
	if base, ok := alarms.Find(baseID); ok {
		source = base
		if !base.Repeat.Weekly {
			// One-shot base is superseded by its snooze instance.
			alarms.Remove(baseID)
		}
	}

	// The instance is always one-shot, even when derived from a weekly alarm.
	// A snooze that wraps past midnight lands on the next weekday, and an
	// inherited weekly rule would keep it from ever firing there.
	instance := models.AlarmRecord{
		ID:               uuid.New().String(),
		Time:             models.TimeOfDayOf(now).AddMinutes(delayMinutes),
		Label:            models.SnoozedLabel(baseLabel),
		Sound:            source.Sound,
		Repeat:           models.RepeatNever(),
		IsSnoozeInstance: true,
		BaseID:           baseID,
		OriginalTime:     source.OriginalTime,
	}
	alarms.Add(instance)

	// Keep the original weekly slot quiet for the rest of today; the user
	// asked to be reminded later, not twice.
	if source.Repeat.Weekly {
		dismissed.Record(baseLabel, now)
	}

	return instance
}
