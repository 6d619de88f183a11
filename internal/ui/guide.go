package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ydlstudio/ydl-studio/internal/platform"
)

// showGuideWindow loads the bundled guide file and displays it in a separate
// read-only window. When the file cannot be found the error dialog names the
// path that was tried, so users know where to place the file.
func (ui *RootUI) showGuideWindow() {
	content, path, err := platform.ReadGuide()
	if err != nil {
		log.Printf("guide not available: %v", err)
		dialog.ShowError(err, ui.window)
		return
	}

	log.Printf("showing guide from %s", path)

	viewer := widget.NewMultiLineEntry()
	viewer.SetText(content)
	viewer.Wrapping = fyne.TextWrapWord
	viewer.Disable()

	win := ui.app.NewWindow(ui.localization.GetText(KeyGuideTitle))
	win.SetContent(viewer)
	win.Resize(fyne.NewSize(GuideWindowWidth, GuideWindowHeight))
	win.Show()
}
