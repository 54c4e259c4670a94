package main

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/borgmon/riseandpi/pkg/models"
)

// alertSink renders a firing alarm as a modal window with Snooze and Dismiss
// buttons. Ask blocks the engine's tick goroutine until one is pressed, which
// keeps at most one alarm firing at a time.
type alertSink struct {
	app    fyne.App
	config *Config
}

func newAlertSink(app fyne.App, config *Config) *alertSink {
	return &alertSink{app: app, config: config}
}

func (s *alertSink) Ask(label string) models.Decision {
	decided := make(chan models.Decision, 1)

	fyne.Do(func() {
		showAlertWindow(s.app, label, s.config.SnoozeMinutes, decided)
	})

	return <-decided
}

func showAlertWindow(app fyne.App, label string, snoozeMinutes int, decided chan<- models.Decision) {
	window := app.NewWindow("Alarm Triggered")

	var once sync.Once
	decide := func(decision models.Decision) {
		once.Do(func() {
			decided <- decision
		})
		window.Close()
	}

	title := canvas.NewText(label+" has gone off!", nil)
	title.TextSize = 28
	title.Alignment = fyne.TextAlignCenter

	snoozeButton := widget.NewButton(fmt.Sprintf("Snooze %dm", snoozeMinutes), func() {
		decide(models.Snooze(snoozeMinutes))
	})
	dismissButton := widget.NewButton("Dismiss", func() {
		decide(models.Dismiss())
	})
	dismissButton.Importance = widget.HighImportance

	window.SetContent(container.NewPadded(container.NewVBox(
		container.NewPadded(title),
		widget.NewSeparator(),
		container.NewCenter(container.NewHBox(snoozeButton, dismissButton)),
	)))

	// Closing the window via the chrome counts as a dismissal; the engine
	// must never be left waiting on a decision.
	window.SetOnClosed(func() {
		once.Do(func() {
			decided <- models.Dismiss()
		})
	})

	window.CenterOnScreen()
	window.RequestFocus()
	window.Show()
}
