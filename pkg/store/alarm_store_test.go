package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borgmon/riseandpi/pkg/models"
	"github.com/borgmon/riseandpi/pkg/store"
)

func record(id, label string, hour, minute int) models.AlarmRecord {
	return models.AlarmRecord{
		ID:    id,
		Time:  models.TimeOfDay{Hour: hour, Minute: minute},
		Label: label,
		Sound: models.SoundClassic,
	}
}

func TestAlarmStoreInsertionOrder(t *testing.T) {
	s := store.NewAlarmStore()
	s.Add(record("a", "first", 7, 0))
	s.Add(record("b", "second", 6, 0))
	s.Add(record("c", "third", 8, 0))

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, "first", all[0].Label)
	assert.Equal(t, "second", all[1].Label)
	assert.Equal(t, "third", all[2].Label)
}

func TestAlarmStoreSnapshotIsolation(t *testing.T) {
	s := store.NewAlarmStore()
	s.Add(record("a", "Work", 7, 0))

	snapshot := s.All()
	snapshot[0].Label = "mutated"

	fresh, ok := s.Find("a")
	require.True(t, ok)
	assert.Equal(t, "Work", fresh.Label)
}

func TestAlarmStoreUpdate(t *testing.T) {
	s := store.NewAlarmStore()
	s.Add(record("a", "Work", 7, 0))

	updated := record("a", "Gym", 18, 30)
	require.NoError(t, s.Update("a", updated))

	found, ok := s.Find("a")
	require.True(t, ok)
	assert.Equal(t, "Gym", found.Label)
	assert.Equal(t, models.TimeOfDay{Hour: 18, Minute: 30}, found.Time)

	assert.ErrorIs(t, s.Update("missing", updated), store.ErrNotFound)
}

func TestAlarmStoreRemove(t *testing.T) {
	s := store.NewAlarmStore()
	s.Add(record("a", "first", 7, 0))
	s.Add(record("b", "second", 8, 0))
	s.Add(record("c", "third", 9, 0))

	require.NoError(t, s.Remove("b"))
	assert.ErrorIs(t, s.Remove("b"), store.ErrNotFound)

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "first", all[0].Label)
	assert.Equal(t, "third", all[1].Label)

	// Lookup still works after index reshuffle
	found, ok := s.Find("c")
	require.True(t, ok)
	assert.Equal(t, "third", found.Label)
}

func TestAlarmStoreRemoveMatching(t *testing.T) {
	s := store.NewAlarmStore()
	base := record("base", "Work", 7, 0)
	s.Add(base)

	snooze1 := record("s1", "Work (Snoozed)", 7, 5)
	snooze1.IsSnoozeInstance = true
	snooze1.BaseID = "base"
	s.Add(snooze1)

	snooze2 := record("s2", "Work (Snoozed)", 7, 10)
	snooze2.IsSnoozeInstance = true
	snooze2.BaseID = "base"
	s.Add(snooze2)

	removed := s.RemoveMatching(func(r models.AlarmRecord) bool {
		return r.IsSnoozeInstance && r.BaseID == "base"
	})
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, s.Len())

	_, ok := s.Find("base")
	assert.True(t, ok)
}
