// Package engine implements the alarm scheduling and triggering logic: a
// once-per-second tick that matches alarms against the clock, prompts the
// user through a blocking notification, and applies the snooze or dismissal
// outcome back onto the alarm set.
package engine

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/borgmon/riseandpi/pkg/clock"
	"github.com/borgmon/riseandpi/pkg/models"
	"github.com/borgmon/riseandpi/pkg/store"
)

// ErrInvalidInput is returned when a draft has an empty label or an
// out-of-range time. Invalid drafts never enter the store.
var ErrInvalidInput = errors.New("invalid alarm input")

// ErrNotFound mirrors the store sentinel for callers that only import engine.
var ErrNotFound = store.ErrNotFound

// AudioService plays a looping alarm sound until stopped. Playback is
// best-effort; a Play error never blocks the notification flow.
type AudioService interface {
	Play(sound models.Sound) error
	Stop()
}

// NotificationSink asks the user what to do about a firing alarm. Ask blocks
// until the user decides; while it is pending no further ticks are evaluated,
// so at most one alarm is ever in the firing state.
type NotificationSink interface {
	Ask(label string) models.Decision
}

const defaultSnoozeMinutes = 5

// Engine owns the alarm store, the dismissal tracker, and the tick loop.
type Engine struct {
	alarms    *store.AlarmStore
	dismissed *store.DismissalTracker
	clock     clock.Clock
	audio     AudioService
	sink      NotificationSink

	snoozeMinutes int
	tickInterval  time.Duration
	onChange      func()

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// Option configures an Engine.
type Option func(*Engine)

// WithSnoozeMinutes sets the default snooze delay used when a decision does
// not carry its own.
func WithSnoozeMinutes(minutes int) Option {
	return func(e *Engine) {
		if minutes > 0 {
			e.snoozeMinutes = minutes
		}
	}
}

// WithTickInterval overrides the 1-second tick, mainly for tests.
func WithTickInterval(interval time.Duration) Option {
	return func(e *Engine) {
		if interval > 0 {
			e.tickInterval = interval
		}
	}
}

// New creates an Engine with an empty alarm set.
func New(clk clock.Clock, audio AudioService, sink NotificationSink, opts ...Option) *Engine {
	e := &Engine{
		alarms:        store.NewAlarmStore(),
		dismissed:     store.NewDismissalTracker(),
		clock:         clk,
		audio:         audio,
		sink:          sink,
		snoozeMinutes: defaultSnoozeMinutes,
		tickInterval:  time.Second,
		stop:          make(chan struct{}),
		done:          make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// OnChange registers a callback invoked after every mutation of the alarm
// set, whether from a caller or from a tick outcome. It runs on whichever
// goroutine performed the mutation, so UI subscribers must hop threads
// themselves. Set it before Start.
func (e *Engine) OnChange(fn func()) {
	e.onChange = fn
}

func (e *Engine) notifyChanged() {
	if e.onChange != nil {
		e.onChange()
	}
}

func validateDraft(draft models.AlarmDraft) error {
	if draft.Label == "" {
		return fmt.Errorf("%w: empty label", ErrInvalidInput)
	}
	if !draft.Time.Valid() {
		return fmt.Errorf("%w: time %02d:%02d out of range", ErrInvalidInput, draft.Time.Hour, draft.Time.Minute)
	}
	return nil
}

// SetAlarm adds a new alarm from the form draft and returns its id.
func (e *Engine) SetAlarm(draft models.AlarmDraft) (string, error) {
	if err := validateDraft(draft); err != nil {
		return "", err
	}

	record := models.AlarmRecord{
		ID:           uuid.New().String(),
		Time:         draft.Time,
		Label:        draft.Label,
		Sound:        draft.Sound,
		Repeat:       draft.Repeat,
		OriginalTime: draft.Time,
	}
	e.alarms.Add(record)
	log.Printf("Alarm set for %s | Repeat: %s | Label: %s | Sound: %s",
		record.Time, record.Repeat, record.Label, record.Sound)
	e.notifyChanged()
	return record.ID, nil
}

// ModifyAlarm replaces the fields of an existing alarm with the draft.
func (e *Engine) ModifyAlarm(id string, draft models.AlarmDraft) error {
	if err := validateDraft(draft); err != nil {
		return err
	}

	existing, ok := e.alarms.Find(id)
	if !ok {
		return ErrNotFound
	}
	existing.Time = draft.Time
	existing.Label = draft.Label
	existing.Sound = draft.Sound
	existing.Repeat = draft.Repeat
	if !existing.IsSnoozeInstance {
		existing.OriginalTime = draft.Time
	}
	if err := e.alarms.Update(id, existing); err != nil {
		return err
	}
	log.Printf("Modified alarm %s: %s %s", id, existing.Time, existing.Label)
	e.notifyChanged()
	return nil
}

// DeleteAlarm removes an alarm by id.
func (e *Engine) DeleteAlarm(id string) error {
	if err := e.alarms.Remove(id); err != nil {
		return err
	}
	log.Printf("Deleted alarm %s", id)
	e.notifyChanged()
	return nil
}

// GetAlarms returns a read-only snapshot of all alarms in insertion order.
func (e *Engine) GetAlarms() []models.AlarmRecord {
	return e.alarms.All()
}

// Start launches the tick loop in its own goroutine.
func (e *Engine) Start() {
	ticker := time.NewTicker(e.tickInterval)
	go func() {
		defer ticker.Stop()
		defer close(e.done)
		for {
			select {
			case <-e.stop:
				return
			case <-ticker.C:
				e.Tick()
			}
		}
	}()
}

// Stop terminates the tick loop. A tick blocked in a pending notification
// finishes resolving before the loop exits.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() {
		close(e.stop)
	})
	<-e.done
}

// Tick runs one evaluation pass. No failure in a single pass may kill the
// loop, so anything that escapes is caught and logged here.
func (e *Engine) Tick() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from tick failure: %v", r)
		}
	}()

	now := e.clock.Now()
	candidate, ok := Evaluate(now, e.alarms.All(), e.dismissed)
	if !ok {
		return
	}

	log.Printf("Alarm triggered: %s at %s", candidate.Label, candidate.Time)
	if err := e.audio.Play(candidate.Sound); err != nil {
		log.Printf("Alarm sound unavailable: %v", err)
	}

	decision := e.sink.Ask(candidate.Label)
	e.audio.Stop()

	// The user may have deleted the alarm from the list while it was
	// firing; resolving against a vanished record is a no-op.
	if _, ok := e.alarms.Find(candidate.ID); !ok {
		log.Printf("Alarm %s removed while firing, ignoring decision", candidate.ID)
		return
	}

	switch decision.Kind {
	case models.DecisionSnooze:
		minutes := decision.Minutes
		if minutes <= 0 {
			minutes = e.snoozeMinutes
		}
		instance := ResolveSnooze(e.alarms, e.dismissed, candidate, e.clock.Now(), minutes)
		log.Printf("Alarm snoozed until %s: %s", instance.Time, instance.Label)
		e.notifyChanged()
	case models.DecisionDismiss:
		if !candidate.Repeat.Weekly || candidate.IsSnoozeInstance {
			if err := e.alarms.Remove(candidate.ID); err != nil {
				log.Printf("Dismiss of %s: %v", candidate.ID, err)
			}
		} else {
			e.dismissed.Record(candidate.Label, now)
		}
		log.Printf("Alarm dismissed: %s", candidate.Label)
		e.notifyChanged()
	default:
		log.Printf("Unknown decision %q for alarm %s", decision.Kind, candidate.Label)
	}
}
