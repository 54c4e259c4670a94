package main

import (
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/borgmon/riseandpi/pkg/calendar"
)

func (rp *RiseAndPi) showExportDialog() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, rp.mainWindow)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		records := rp.engine.GetAlarms()
		if err := calendar.Export(writer, records, time.Now()); err != nil {
			dialog.ShowError(fmt.Errorf("export failed: %w", err), rp.mainWindow)
			return
		}
		log.Printf("Exported %d alarms to %s", len(records), writer.URI())
	}, rp.mainWindow)
}

func (rp *RiseAndPi) showImportDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, rp.mainWindow)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		drafts, err := calendar.Import(reader)
		if err != nil {
			dialog.ShowError(fmt.Errorf("import failed: %w", err), rp.mainWindow)
			return
		}

		imported := 0
		for _, draft := range drafts {
			if _, err := rp.engine.SetAlarm(draft); err != nil {
				log.Printf("Skipping imported alarm %q: %v", draft.Label, err)
				continue
			}
			imported++
		}

		log.Printf("Imported %d of %d alarms from %s", imported, len(drafts), reader.URI())
		dialog.ShowInformation("Import Alarms",
			fmt.Sprintf("Imported %d alarms.", imported), rp.mainWindow)
	}, rp.mainWindow)
}
