// Package calendar converts the alarm set to and from iCalendar, the
// optional on-disk form of the otherwise in-memory alarm list.
package calendar

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"github.com/borgmon/riseandpi/pkg/models"
)

// propSound carries the alarm tone through an export/import round trip.
const propSound = "X-RISEANDPI-SOUND"

var byDayCodes = [...]string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"}

// Export writes every configured alarm as a VEVENT. Snooze instances are
// transient and excluded; weekly repeats become an RRULE.
func Export(w io.Writer, records []models.AlarmRecord, now time.Time) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//borgmon//Rise and Pi//EN")

	for _, record := range records {
		if record.IsSnoozeInstance {
			continue
		}

		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, record.ID)
		event.Props.SetText(ical.PropSummary, record.Label)
		event.Props.SetText(propSound, string(record.Sound))
		event.Props.SetDateTime(ical.PropDateTimeStamp, now)
		event.Props.SetDateTime(ical.PropDateTimeStart, NextOccurrence(now, record.Time, record.Repeat))
		if record.Repeat.Weekly {
			event.Props.Set(&ical.Prop{
				Name:  ical.PropRecurrenceRule,
				Value: "FREQ=WEEKLY;BYDAY=" + byDayCodes[record.Repeat.Day],
			})
		}

		cal.Children = append(cal.Children, event.Component)
	}

	return ical.NewEncoder(w).Encode(cal)
}

// Import parses drafts back out of an iCalendar stream. Events that cannot
// be mapped to an alarm are logged and skipped rather than failing the whole
// import.
func Import(r io.Reader) ([]models.AlarmDraft, error) {
	decoder := ical.NewDecoder(r)
	drafts := []models.AlarmDraft{}

	for {
		cal, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode calendar: %w", err)
		}

		for _, comp := range cal.Children {
			if comp.Name != ical.CompEvent {
				continue
			}
			draft, err := parseEvent(comp)
			if err != nil {
				log.Printf("Skipping event on import: %v", err)
				continue
			}
			drafts = append(drafts, draft)
		}
	}

	return drafts, nil
}

func parseEvent(comp *ical.Component) (models.AlarmDraft, error) {
	draft := models.AlarmDraft{Sound: models.SoundClassic}

	if prop := comp.Props.Get(ical.PropSummary); prop != nil {
		draft.Label = prop.Value
	}
	if draft.Label == "" {
		return draft, fmt.Errorf("event has no summary")
	}

	prop := comp.Props.Get(ical.PropDateTimeStart)
	if prop == nil {
		return draft, fmt.Errorf("event %q has no start time", draft.Label)
	}
	start, err := prop.DateTime(time.Local)
	if err != nil {
		return draft, fmt.Errorf("event %q start time: %w", draft.Label, err)
	}
	draft.Time = models.TimeOfDayOf(start.In(time.Local))

	if prop := comp.Props.Get(propSound); prop != nil {
		draft.Sound = models.Sound(prop.Value)
	}

	if prop := comp.Props.Get(ical.PropRecurrenceRule); prop != nil {
		repeat, err := parseRRule(prop.Value, start.Weekday())
		if err != nil {
			return draft, fmt.Errorf("event %q: %w", draft.Label, err)
		}
		draft.Repeat = repeat
	}

	return draft, nil
}

// parseRRule handles the weekly rules this app writes. Anything fancier is
// rejected rather than silently misread.
func parseRRule(rule string, fallbackDay time.Weekday) (models.Repeat, error) {
	if !strings.Contains(rule, "FREQ=WEEKLY") {
		return models.Repeat{}, fmt.Errorf("unsupported RRULE: %s", rule)
	}

	for _, part := range strings.Split(rule, ";") {
		code, ok := strings.CutPrefix(part, "BYDAY=")
		if !ok {
			continue
		}
		for day, dayCode := range byDayCodes {
			if code == dayCode {
				return models.RepeatOn(time.Weekday(day)), nil
			}
		}
		return models.Repeat{}, fmt.Errorf("unsupported BYDAY value: %s", code)
	}

	// Weekly with no BYDAY recurs on the start date's weekday.
	return models.RepeatOn(fallbackDay), nil
}

// NextOccurrence returns the next instant at or after now when an alarm with
// the given time and repeat rule fires.
func NextOccurrence(now time.Time, at models.TimeOfDay, repeat models.Repeat) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), at.Hour, at.Minute, 0, 0, now.Location())

	if !repeat.Weekly {
		if next.Before(now) {
			next = next.AddDate(0, 0, 1)
		}
		return next
	}

	days := (int(repeat.Day) - int(now.Weekday()) + 7) % 7
	next = next.AddDate(0, 0, days)
	if next.Before(now) {
		next = next.AddDate(0, 0, 7)
	}
	return next
}
