package main

import (
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/borgmon/riseandpi/pkg/audio"
	"github.com/borgmon/riseandpi/pkg/clock"
	"github.com/borgmon/riseandpi/pkg/engine"
)

type RiseAndPi struct {
	app        fyne.App
	config     *Config
	engine     *engine.Engine
	player     *audio.Player
	mainWindow fyne.Window
	clockView  *ClockDisplay
	viewWindow *ViewAlarmsWindow
	quitOnce   sync.Once
}

func main() {
	rp := &RiseAndPi{
		app: app.NewWithID("com.borgmon.riseandpi"),
	}

	rp.initialize()
	rp.run()
}

func (rp *RiseAndPi) initialize() {
	rp.config = loadConfig(rp.app)

	rp.player = audio.NewPlayer()
	rp.player.SetCustomSound(rp.config.CustomSoundPath)

	sink := newAlertSink(rp.app, rp.config)
	rp.engine = engine.New(clock.System(), rp.player, sink,
		engine.WithSnoozeMinutes(rp.config.SnoozeMinutes))

	// Tick outcomes mutate the alarm set off the UI thread, so every open
	// view refreshes through the change callback rather than per call site.
	rp.engine.OnChange(func() {
		fyne.Do(rp.refreshAlarmViews)
	})

	// Sync autostart state with config on startup
	if err := setupAutostart(rp.config.AutoStart); err != nil {
		log.Printf("Warning: failed to setup autostart: %v", err)
	}

	saveConfig(rp.app, rp.config)

	rp.setupMainWindow()
	rp.setupSystemTray()
	rp.engine.Start()
}

func (rp *RiseAndPi) run() {
	rp.mainWindow.ShowAndRun()
}

func (rp *RiseAndPi) setupMainWindow() {
	rp.mainWindow = rp.app.NewWindow("Rise and Pi")

	rp.clockView = NewClockDisplay(rp.config)
	rp.clockView.Start()

	setAlarmButton := widget.NewButton("Set Alarm", func() {
		rp.showSetAlarmWindow()
	})
	viewAlarmsButton := widget.NewButton("View Alarms", func() {
		rp.showViewAlarmsWindow()
	})

	rp.mainWindow.SetContent(container.NewVBox(
		rp.clockView.Content(),
		setAlarmButton,
		viewAlarmsButton,
	))
	rp.mainWindow.Resize(fyne.NewSize(320, 240))
	rp.mainWindow.SetOnClosed(func() {
		rp.quit()
	})
}

// refreshAlarmViews updates every open view after the alarm set changed.
func (rp *RiseAndPi) refreshAlarmViews() {
	if rp.viewWindow != nil {
		rp.viewWindow.Refresh()
	}
	rp.updateSystemTrayMenu()
}

func (rp *RiseAndPi) quit() {
	// Closing the main window and the tray Quit item both land here.
	rp.quitOnce.Do(func() {
		rp.clockView.Stop()
		go func() {
			// Stop waits out a pending alarm decision; don't hold the UI thread.
			rp.engine.Stop()
			fyne.Do(func() {
				rp.app.Quit()
			})
		}()
	})
}
