package main

import (
	"fmt"
	"log"
	"strconv"

	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/borgmon/riseandpi/pkg/models"
)

// alarmForm is the shared set of inputs between the set-alarm and
// modify-alarm dialogs.
type alarmForm struct {
	hourEntry    *widget.Entry
	minuteEntry  *widget.Entry
	labelEntry   *widget.Entry
	repeatSelect *widget.Select
	soundSelect  *widget.Select
}

func newAlarmForm() *alarmForm {
	form := &alarmForm{
		hourEntry:    widget.NewEntry(),
		minuteEntry:  widget.NewEntry(),
		labelEntry:   widget.NewEntry(),
		repeatSelect: widget.NewSelect(models.RepeatOptions(), nil),
		soundSelect:  widget.NewSelect(models.SoundOptions(), nil),
	}
	form.hourEntry.SetPlaceHolder("7")
	form.minuteEntry.SetPlaceHolder("00")
	form.labelEntry.SetPlaceHolder("Enter alarm name...")
	form.repeatSelect.SetSelected("Never")
	form.soundSelect.SetSelected(string(models.SoundClassic))
	return form
}

func (f *alarmForm) setRecord(record models.AlarmRecord) {
	f.hourEntry.SetText(strconv.Itoa(record.Time.Hour))
	f.minuteEntry.SetText(strconv.Itoa(record.Time.Minute))
	f.labelEntry.SetText(record.Label)
	f.repeatSelect.SetSelected(record.Repeat.String())
	f.soundSelect.SetSelected(string(record.Sound))
}

func (f *alarmForm) items() []*widget.FormItem {
	return []*widget.FormItem{
		widget.NewFormItem("Hour", f.hourEntry),
		widget.NewFormItem("Minute", f.minuteEntry),
		widget.NewFormItem("Label", f.labelEntry),
		widget.NewFormItem("Repeat", f.repeatSelect),
		widget.NewFormItem("Sound", f.soundSelect),
	}
}

func (f *alarmForm) draft() (models.AlarmDraft, error) {
	hour, err := strconv.Atoi(f.hourEntry.Text)
	if err != nil {
		return models.AlarmDraft{}, fmt.Errorf("invalid hour: %q", f.hourEntry.Text)
	}
	minute, err := strconv.Atoi(f.minuteEntry.Text)
	if err != nil {
		return models.AlarmDraft{}, fmt.Errorf("invalid minute: %q", f.minuteEntry.Text)
	}

	repeat, err := models.ParseRepeat(f.repeatSelect.Selected)
	if err != nil {
		return models.AlarmDraft{}, err
	}

	return models.AlarmDraft{
		Time:   models.TimeOfDay{Hour: hour, Minute: minute},
		Label:  f.labelEntry.Text,
		Sound:  models.Sound(f.soundSelect.Selected),
		Repeat: repeat,
	}, nil
}

func (rp *RiseAndPi) showSetAlarmWindow() {
	form := newAlarmForm()

	dialog.ShowForm("Set Alarm", "Save Alarm", "Cancel", form.items(), func(confirmed bool) {
		if !confirmed {
			return
		}

		draft, err := form.draft()
		if err != nil {
			dialog.ShowError(err, rp.mainWindow)
			return
		}

		if _, err := rp.engine.SetAlarm(draft); err != nil {
			dialog.ShowError(err, rp.mainWindow)
			return
		}

		log.Printf("Alarm saved: %s at %s", draft.Label, draft.Time)
	}, rp.mainWindow)
}
