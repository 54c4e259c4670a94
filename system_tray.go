package main

import (
	"fmt"
	"sort"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/borgmon/riseandpi/pkg/calendar"
	"github.com/borgmon/riseandpi/pkg/models"
)

func (rp *RiseAndPi) setupSystemTray() {
	rp.updateSystemTrayMenu()
}

func (rp *RiseAndPi) updateSystemTrayMenu() {
	desk, ok := rp.app.(desktop.App)
	if !ok {
		return
	}

	menuItems := []*fyne.MenuItem{}

	// Upcoming alarms for today at the top
	upcoming := rp.getUpcomingTodayAlarms(5)
	if len(upcoming) > 0 {
		headerItem := fyne.NewMenuItem("Upcoming Today:", nil)
		headerItem.Disabled = true
		menuItems = append(menuItems, headerItem)

		for _, entry := range upcoming {
			alarmItem := fyne.NewMenuItem(fmt.Sprintf("  %s - %s",
				entry.when.Format("3:04 PM"),
				truncateString(entry.record.Label, 35)), nil)
			alarmItem.Disabled = true
			menuItems = append(menuItems, alarmItem)
		}

		menuItems = append(menuItems, fyne.NewMenuItemSeparator())
	}

	menuItems = append(menuItems,
		fyne.NewMenuItem("Set Alarm", func() {
			rp.showSetAlarmWindow()
		}),
		fyne.NewMenuItem("View Alarms", func() {
			rp.showViewAlarmsWindow()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Alarms...", func() {
			rp.showExportDialog()
		}),
		fyne.NewMenuItem("Import Alarms...", func() {
			rp.showImportDialog()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings", func() {
			rp.showSettingsWindow()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			rp.quit()
		}),
	)

	desk.SetSystemTrayMenu(fyne.NewMenu("Rise and Pi", menuItems...))
}

type upcomingAlarm struct {
	record models.AlarmRecord
	when   time.Time
}

// getUpcomingTodayAlarms returns the next alarms due before midnight,
// soonest first.
func (rp *RiseAndPi) getUpcomingTodayAlarms(limit int) []upcomingAlarm {
	now := time.Now()
	todayEnd := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).Add(24 * time.Hour)

	upcoming := []upcomingAlarm{}
	for _, record := range rp.engine.GetAlarms() {
		when := calendar.NextOccurrence(now, record.Time, record.Repeat)
		if when.Before(todayEnd) {
			upcoming = append(upcoming, upcomingAlarm{record: record, when: when})
		}
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].when.Before(upcoming[j].when)
	})
	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// truncateString truncates a string to maxLen characters, adding "..." if
// needed. Counts runes, not bytes, so multi-byte labels are never split.
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
