package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borgmon/riseandpi/pkg/engine"
	"github.com/borgmon/riseandpi/pkg/models"
	"github.com/borgmon/riseandpi/pkg/store"
)

// monday7am is a Monday in local time.
var monday7am = time.Date(2026, 3, 2, 7, 0, 30, 0, time.Local)

func alarm(id, label string, hour, minute int, repeat models.Repeat) models.AlarmRecord {
	return models.AlarmRecord{
		ID:           id,
		Time:         models.TimeOfDay{Hour: hour, Minute: minute},
		Label:        label,
		Sound:        models.SoundClassic,
		Repeat:       repeat,
		OriginalTime: models.TimeOfDay{Hour: hour, Minute: minute},
	}
}

func TestEvaluateMatchesMinute(t *testing.T) {
	records := []models.AlarmRecord{
		alarm("a", "Work", 7, 0, models.RepeatNever()),
	}
	tracker := store.NewDismissalTracker()

	candidate, ok := engine.Evaluate(monday7am, records, tracker)
	require.True(t, ok)
	assert.Equal(t, "a", candidate.ID)

	_, ok = engine.Evaluate(monday7am.Add(time.Minute), records, tracker)
	assert.False(t, ok)
}

func TestEvaluateWeekdayFilter(t *testing.T) {
	records := []models.AlarmRecord{
		alarm("a", "Work", 7, 0, models.RepeatOn(time.Monday)),
	}
	tracker := store.NewDismissalTracker()

	require.Equal(t, time.Monday, monday7am.Weekday())
	_, ok := engine.Evaluate(monday7am, records, tracker)
	assert.True(t, ok)

	// Same wall-clock time on Tuesday does not fire, regardless of date.
	tuesday := monday7am.AddDate(0, 0, 1)
	_, ok = engine.Evaluate(tuesday, records, tracker)
	assert.False(t, ok)

	// The following Monday fires again.
	nextMonday := monday7am.AddDate(0, 0, 7)
	_, ok = engine.Evaluate(nextMonday, records, tracker)
	assert.True(t, ok)
}

func TestEvaluateDismissalSuppression(t *testing.T) {
	records := []models.AlarmRecord{
		alarm("a", "Work", 7, 0, models.RepeatOn(time.Monday)),
	}
	tracker := store.NewDismissalTracker()
	tracker.Record("Work", monday7am)

	_, ok := engine.Evaluate(monday7am, records, tracker)
	assert.False(t, ok)

	// Suppression is per-day, not permanent.
	nextMonday := monday7am.AddDate(0, 0, 7)
	_, ok = engine.Evaluate(nextMonday, records, tracker)
	assert.True(t, ok)
}

func TestEvaluateSnoozeInstanceBypassesDismissal(t *testing.T) {
	instance := alarm("s", "Work (Snoozed)", 7, 0, models.RepeatOn(time.Monday))
	instance.IsSnoozeInstance = true
	instance.BaseID = "a"
	tracker := store.NewDismissalTracker()
	tracker.Record("Work (Snoozed)", monday7am)
	tracker.Record("Work", monday7am)

	candidate, ok := engine.Evaluate(monday7am, []models.AlarmRecord{instance}, tracker)
	require.True(t, ok)
	assert.Equal(t, "s", candidate.ID)
}

func TestEvaluateFirstMatchWins(t *testing.T) {
	records := []models.AlarmRecord{
		alarm("a", "first", 7, 0, models.RepeatNever()),
		alarm("b", "second", 7, 0, models.RepeatNever()),
	}
	tracker := store.NewDismissalTracker()

	candidate, ok := engine.Evaluate(monday7am, records, tracker)
	require.True(t, ok)
	assert.Equal(t, "a", candidate.ID)
}

func TestEvaluateSkipsNonMatchingAndContinues(t *testing.T) {
	records := []models.AlarmRecord{
		alarm("a", "Tuesday alarm", 7, 0, models.RepeatOn(time.Tuesday)),
		alarm("b", "Monday alarm", 7, 0, models.RepeatOn(time.Monday)),
	}
	tracker := store.NewDismissalTracker()

	candidate, ok := engine.Evaluate(monday7am, records, tracker)
	require.True(t, ok)
	assert.Equal(t, "b", candidate.ID)
}
