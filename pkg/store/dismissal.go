package store

import (
	"sync"
	"time"
)

// retainDays bounds tracker memory during long runs. Entries for past dates
// are never consulted again, so pruning them is safe.
const retainDays = 2

type dismissalKey struct {
	label string
	day   string // civil date, "2006-01-02"
}

// DismissalTracker records which repeating alarms were dismissed on which
// day, so a weekly alarm does not re-fire for the rest of its scheduled
// minute (or day) after the user dismisses it.
type DismissalTracker struct {
	mu      sync.Mutex
	entries map[dismissalKey]time.Time
}

// NewDismissalTracker creates an empty tracker.
func NewDismissalTracker() *DismissalTracker {
	return &DismissalTracker{
		entries: make(map[dismissalKey]time.Time),
	}
}

func dayKey(date time.Time) string {
	return date.Format("2006-01-02")
}

// Record marks the alarm with the given label as dismissed for the given
// date. Old entries are pruned opportunistically.
func (d *DismissalTracker) Record(label string, date time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.entries[dismissalKey{label: label, day: dayKey(date)}] = date

	cutoff := date.AddDate(0, 0, -retainDays)
	for key, when := range d.entries {
		if when.Before(cutoff) {
			delete(d.entries, key)
		}
	}
}

// IsDismissed reports whether the label was dismissed on the given date.
func (d *DismissalTracker) IsDismissed(label string, date time.Time) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, ok := d.entries[dismissalKey{label: label, day: dayKey(date)}]
	return ok
}
