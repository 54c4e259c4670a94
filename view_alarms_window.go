package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/borgmon/riseandpi/pkg/models"
)

// ViewAlarmsWindow lists the active alarms; clicking one opens the details
// dialog for modification or deletion.
type ViewAlarmsWindow struct {
	rp     *RiseAndPi
	window fyne.Window
	list   *widget.List
	alarms []models.AlarmRecord
}

func (rp *RiseAndPi) showViewAlarmsWindow() {
	if rp.viewWindow != nil {
		rp.viewWindow.Refresh()
		rp.viewWindow.window.RequestFocus()
		rp.viewWindow.window.Show()
		return
	}

	vw := &ViewAlarmsWindow{
		rp:     rp,
		alarms: rp.engine.GetAlarms(),
	}
	vw.window = rp.app.NewWindow("View Alarms")

	vw.list = widget.NewList(
		func() int {
			return len(vw.alarms)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("template")
		},
		func(i widget.ListItemID, o fyne.CanvasObject) {
			if i >= len(vw.alarms) {
				return
			}
			o.(*widget.Label).SetText(alarmListText(vw.alarms[i]))
		})

	vw.list.OnSelected = func(id widget.ListItemID) {
		vw.list.UnselectAll()
		if id < len(vw.alarms) {
			rp.showAlarmDetails(vw.alarms[id])
		}
	}

	closeButton := widget.NewButton("Close", func() {
		vw.window.Close()
	})

	vw.window.SetContent(container.NewBorder(
		widget.NewLabel("Active Alarms:"), closeButton, nil, nil,
		vw.list,
	))
	vw.window.Resize(fyne.NewSize(360, 400))
	vw.window.SetOnClosed(func() {
		rp.viewWindow = nil
	})

	rp.viewWindow = vw
	vw.window.Show()
}

// Refresh re-reads the alarm snapshot and redraws the list. Callers are on
// the UI thread already (dialog callbacks and tray actions).
func (vw *ViewAlarmsWindow) Refresh() {
	vw.alarms = vw.rp.engine.GetAlarms()
	vw.list.Refresh()
}

func alarmListText(record models.AlarmRecord) string {
	text := fmt.Sprintf("%s - %s", record.Label, record.Time)
	if record.Repeat.Weekly {
		text += " (" + record.Repeat.String() + ")"
	}
	return text
}
