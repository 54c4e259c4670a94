package main

import (
	"fmt"
	"log"
	"strconv"

	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

func (rp *RiseAndPi) showSettingsWindow() {
	snoozeEntry := widget.NewEntry()
	snoozeEntry.SetText(strconv.Itoa(rp.config.SnoozeMinutes))

	autostartCheck := widget.NewCheck("Launch at login", nil)
	autostartCheck.SetChecked(rp.config.AutoStart)

	use24Check := widget.NewCheck("24-hour clock", nil)
	use24Check.SetChecked(rp.config.Use24Hour)

	soundEntry := widget.NewEntry()
	soundEntry.SetPlaceHolder("/path/to/sound.wav")
	soundEntry.SetText(rp.config.CustomSoundPath)

	items := []*widget.FormItem{
		widget.NewFormItem("Snooze minutes", snoozeEntry),
		widget.NewFormItem("", autostartCheck),
		widget.NewFormItem("", use24Check),
		widget.NewFormItem("Custom sound (WAV)", soundEntry),
	}

	dialog.ShowForm("Settings", "Save", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}

		minutes, err := strconv.Atoi(snoozeEntry.Text)
		if err != nil || minutes <= 0 {
			dialog.ShowError(fmt.Errorf("snooze minutes must be a positive number"), rp.mainWindow)
			return
		}

		rp.config.SnoozeMinutes = minutes
		rp.config.AutoStart = autostartCheck.Checked
		rp.config.Use24Hour = use24Check.Checked
		rp.config.CustomSoundPath = soundEntry.Text
		saveConfig(rp.app, rp.config)

		rp.player.SetCustomSound(rp.config.CustomSoundPath)
		if err := setupAutostart(rp.config.AutoStart); err != nil {
			log.Printf("Warning: failed to update autostart: %v", err)
		}
	}, rp.mainWindow)
}
