package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/borgmon/riseandpi/pkg/models"
)

// showAlarmDetails opens the modify/delete dialog for one alarm. The alarm
// is addressed by id, so renaming it cannot detach it from the record.
func (rp *RiseAndPi) showAlarmDetails(record models.AlarmRecord) {
	window := rp.app.NewWindow("Modify Alarm")

	form := newAlarmForm()
	form.setRecord(record)

	formWidget := widget.NewForm(form.items()...)

	modifyButton := widget.NewButton("Modify Alarm", func() {
		draft, err := form.draft()
		if err != nil {
			dialog.ShowError(err, window)
			return
		}
		if err := rp.engine.ModifyAlarm(record.ID, draft); err != nil {
			dialog.ShowError(err, window)
			return
		}
		window.Close()
	})

	deleteButton := widget.NewButton("Delete Alarm", func() {
		if err := rp.engine.DeleteAlarm(record.ID); err != nil {
			dialog.ShowError(err, window)
			return
		}
		window.Close()
	})
	deleteButton.Importance = widget.DangerImportance

	closeButton := widget.NewButton("Close", func() {
		window.Close()
	})

	window.SetContent(container.NewVBox(
		formWidget,
		container.NewHBox(modifyButton, deleteButton, closeButton),
	))
	window.Resize(fyne.NewSize(320, 300))
	window.Show()
}
