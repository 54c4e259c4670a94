package main

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// ClockDisplay is the live clock on the main window, refreshed once per
// second.
type ClockDisplay struct {
	config *Config
	text   *canvas.Text
	ticker *time.Ticker
	stop   chan struct{}
}

func NewClockDisplay(config *Config) *ClockDisplay {
	text := canvas.NewText(time.Now().Format(config.ClockFormat()), nil)
	text.TextSize = 48
	text.Alignment = fyne.TextAlignCenter

	return &ClockDisplay{
		config: config,
		text:   text,
		stop:   make(chan struct{}),
	}
}

func (cd *ClockDisplay) Content() fyne.CanvasObject {
	return container.NewPadded(cd.text)
}

func (cd *ClockDisplay) Start() {
	cd.ticker = time.NewTicker(time.Second)
	go func() {
		for {
			select {
			case <-cd.stop:
				return
			case now := <-cd.ticker.C:
				formatted := now.Format(cd.config.ClockFormat())
				fyne.Do(func() {
					cd.text.Text = formatted
					cd.text.Refresh()
				})
			}
		}
	}()
}

func (cd *ClockDisplay) Stop() {
	if cd.ticker != nil {
		cd.ticker.Stop()
	}
	close(cd.stop)
}
