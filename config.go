package main

import (
	"fyne.io/fyne/v2"
)

type Config struct {
	SnoozeMinutes   int
	AutoStart       bool
	CustomSoundPath string
	Use24Hour       bool
}

func loadConfig(app fyne.App) *Config {
	prefs := app.Preferences()

	return &Config{
		SnoozeMinutes:   prefs.IntWithFallback("snooze_minutes", 5),
		AutoStart:       prefs.BoolWithFallback("auto_start", false),
		CustomSoundPath: prefs.String("custom_sound_path"),
		Use24Hour:       prefs.BoolWithFallback("use_24_hour", true),
	}
}

func saveConfig(app fyne.App, config *Config) {
	prefs := app.Preferences()

	prefs.SetInt("snooze_minutes", config.SnoozeMinutes)
	prefs.SetBool("auto_start", config.AutoStart)
	prefs.SetString("custom_sound_path", config.CustomSoundPath)
	prefs.SetBool("use_24_hour", config.Use24Hour)
}

// ClockFormat returns the time.Format layout for the clock display.
func (c *Config) ClockFormat() string {
	if c.Use24Hour {
		return "15:04:05"
	}
	return "3:04:05 PM"
}
