package models

import (
	"fmt"
	"strings"
	"time"
)

// TimeOfDay is a local wall-clock hour and minute. Alarms have minute
// granularity; seconds are never stored.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// TimeOfDayOf extracts the hour and minute from a full timestamp.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

// Valid reports whether the time is within 00:00-23:59.
func (t TimeOfDay) Valid() bool {
	return t.Hour >= 0 && t.Hour <= 23 && t.Minute >= 0 && t.Minute <= 59
}

// AddMinutes shifts the time forward, wrapping past midnight.
func (t TimeOfDay) AddMinutes(minutes int) TimeOfDay {
	total := (t.Hour*60 + t.Minute + minutes) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return TimeOfDay{Hour: total / 60, Minute: total % 60}
}

// Matches reports whether the given timestamp falls in this time's minute.
func (t TimeOfDay) Matches(now time.Time) bool {
	return now.Hour() == t.Hour && now.Minute() == t.Minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Repeat is an alarm's recurrence rule: one-shot, or every week on one day.
type Repeat struct {
	Weekly bool
	Day    time.Weekday
}

// RepeatNever returns the one-shot rule.
func RepeatNever() Repeat {
	return Repeat{}
}

// RepeatOn returns a weekly rule for the given day.
func RepeatOn(day time.Weekday) Repeat {
	return Repeat{Weekly: true, Day: day}
}

func (r Repeat) String() string {
	if !r.Weekly {
		return "Never"
	}
	return "Every " + r.Day.String()
}

// ParseRepeat parses the dropdown strings ("Never", "Every Monday", ...).
func ParseRepeat(s string) (Repeat, error) {
	if s == "Never" || s == "" {
		return RepeatNever(), nil
	}
	name := strings.TrimPrefix(s, "Every ")
	for day := time.Sunday; day <= time.Saturday; day++ {
		if name == day.String() {
			return RepeatOn(day), nil
		}
	}
	return Repeat{}, fmt.Errorf("unknown repeat option: %q", s)
}

// RepeatOptions returns the dropdown entries in display order.
func RepeatOptions() []string {
	options := []string{"Never"}
	for day := time.Sunday; day <= time.Saturday; day++ {
		options = append(options, "Every "+day.String())
	}
	return options
}

// Sound identifies an alarm tone. All but SoundCustom are synthesized; custom
// plays a user-supplied WAV file.
type Sound string

const (
	SoundClassic  Sound = "Classic"
	SoundBeep     Sound = "Beep"
	SoundRooster  Sound = "Rooster"
	SoundChime    Sound = "Chime"
	SoundBirdsong Sound = "Birdsong"
	SoundCustom   Sound = "Custom"
)

// SoundOptions returns the dropdown entries in display order.
func SoundOptions() []string {
	return []string{
		string(SoundClassic),
		string(SoundBeep),
		string(SoundRooster),
		string(SoundChime),
		string(SoundBirdsong),
		string(SoundCustom),
	}
}

// AlarmRecord is one configured alarm. ID is a surrogate key; Label is
// display text only and two alarms may share it.
type AlarmRecord struct {
	ID     string
	Time   TimeOfDay
	Label  string
	Sound  Sound
	Repeat Repeat

	// Snooze linkage. A snooze instance is a derived one-shot record that
	// fires delayMinutes after the base alarm was snoozed. BaseID points at
	// the alarm it derives from; OriginalTime keeps the base alarm's
	// scheduled time across any number of snoozes.
	IsSnoozeInstance bool
	BaseID           string
	OriginalTime     TimeOfDay
}

// AlarmDraft carries the fields of the set/modify alarm form.
type AlarmDraft struct {
	Time   TimeOfDay
	Label  string
	Sound  Sound
	Repeat Repeat
}

const snoozeSuffix = " (Snoozed)"

// SnoozedLabel returns the display label for a snooze instance of base.
func SnoozedLabel(base string) string {
	return base + snoozeSuffix
}

// BaseLabel strips a trailing snooze marker, if any.
func BaseLabel(label string) string {
	return strings.TrimSuffix(label, snoozeSuffix)
}
