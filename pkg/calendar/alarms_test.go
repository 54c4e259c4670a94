package calendar_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borgmon/riseandpi/pkg/calendar"
	"github.com/borgmon/riseandpi/pkg/models"
)

var monday = time.Date(2026, 3, 2, 6, 0, 0, 0, time.Local)

func TestExportImportRoundTrip(t *testing.T) {
	records := []models.AlarmRecord{
		{
			ID:     "id-1",
			Time:   models.TimeOfDay{Hour: 7, Minute: 0},
			Label:  "Work",
			Sound:  models.SoundRooster,
			Repeat: models.RepeatOn(time.Monday),
		},
		{
			ID:    "id-2",
			Time:  models.TimeOfDay{Hour: 21, Minute: 30},
			Label: "Medication",
			Sound: models.SoundChime,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, calendar.Export(&buf, records, monday))

	drafts, err := calendar.Import(&buf)
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	assert.Equal(t, "Work", drafts[0].Label)
	assert.Equal(t, models.TimeOfDay{Hour: 7, Minute: 0}, drafts[0].Time)
	assert.Equal(t, models.SoundRooster, drafts[0].Sound)
	assert.Equal(t, models.RepeatOn(time.Monday), drafts[0].Repeat)

	assert.Equal(t, "Medication", drafts[1].Label)
	assert.False(t, drafts[1].Repeat.Weekly)
	assert.Equal(t, models.SoundChime, drafts[1].Sound)
}

func TestExportSkipsSnoozeInstances(t *testing.T) {
	records := []models.AlarmRecord{
		{ID: "id-1", Time: models.TimeOfDay{Hour: 7}, Label: "Work"},
		{
			ID:               "id-2",
			Time:             models.TimeOfDay{Hour: 7, Minute: 5},
			Label:            "Work (Snoozed)",
			IsSnoozeInstance: true,
			BaseID:           "id-1",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, calendar.Export(&buf, records, monday))

	assert.Equal(t, 1, strings.Count(buf.String(), "BEGIN:VEVENT"))
	assert.NotContains(t, buf.String(), "Snoozed")
}

func TestExportWritesWeeklyRRule(t *testing.T) {
	records := []models.AlarmRecord{
		{ID: "id-1", Time: models.TimeOfDay{Hour: 7}, Label: "Work", Repeat: models.RepeatOn(time.Friday)},
	}

	var buf bytes.Buffer
	require.NoError(t, calendar.Export(&buf, records, monday))
	assert.Contains(t, buf.String(), "RRULE:FREQ=WEEKLY;BYDAY=FR")
}

func TestImportSkipsUnusableEvents(t *testing.T) {
	ics := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//other//app//EN",
		"BEGIN:VEVENT",
		"UID:no-summary",
		"DTSTART:20260302T070000",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:good",
		"SUMMARY:Work",
		"DTSTART:20260302T070000",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")

	drafts, err := calendar.Import(strings.NewReader(ics))
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Work", drafts[0].Label)
	assert.Equal(t, models.SoundClassic, drafts[0].Sound)
}

func TestNextOccurrence(t *testing.T) {
	require.Equal(t, time.Monday, monday.Weekday())

	// One-shot later today
	at := models.TimeOfDay{Hour: 7, Minute: 0}
	next := calendar.NextOccurrence(monday, at, models.RepeatNever())
	assert.Equal(t, time.Monday, next.Weekday())
	assert.Equal(t, 7, next.Hour())
	assert.Equal(t, monday.Day(), next.Day())

	// One-shot already past rolls to tomorrow
	past := models.TimeOfDay{Hour: 5, Minute: 0}
	next = calendar.NextOccurrence(monday, past, models.RepeatNever())
	assert.Equal(t, monday.Day()+1, next.Day())

	// Weekly on today's weekday, still ahead
	next = calendar.NextOccurrence(monday, at, models.RepeatOn(time.Monday))
	assert.Equal(t, monday.Day(), next.Day())

	// Weekly on today's weekday, already past: next week
	next = calendar.NextOccurrence(monday, past, models.RepeatOn(time.Monday))
	assert.Equal(t, time.Monday, next.Weekday())
	assert.Equal(t, monday.AddDate(0, 0, 7).Day(), next.Day())

	// Weekly on another day
	next = calendar.NextOccurrence(monday, at, models.RepeatOn(time.Thursday))
	assert.Equal(t, time.Thursday, next.Weekday())
}
