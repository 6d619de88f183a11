package ui

import (
	"context"
	"errors"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ydlstudio/ydl-studio/internal/config"
	"github.com/ydlstudio/ydl-studio/internal/download"
	"github.com/ydlstudio/ydl-studio/internal/model"
	"github.com/ydlstudio/ydl-studio/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	app    fyne.App
	window fyne.Window

	urlEntry      *widget.Entry
	dirEntry      *widget.Entry
	presetSelect  *widget.Select
	subsEntry     *widget.Entry
	thumbCheck    *widget.Check
	metaCheck     *widget.Check
	autoSubsCheck *widget.Check
	startBtn      *widget.Button
	progressBar   *widget.ProgressBar
	statusLabel   *widget.Label
	logEntry      *widget.Entry

	downloadSvc  download.Downloader
	settings     *config.Settings
	localization *Localization
	relay        *ProgressRelay
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, downloadSvc download.Downloader) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	// Ensure the configured downloads directory exists
	downloadsDir := settings.GetDownloadDirectory()
	platform.CreateDirectoryIfNotExists(downloadsDir)

	ui := &RootUI{
		app:          app,
		window:       window,
		downloadSvc:  downloadSvc,
		settings:     settings,
		localization: localization,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	// The relay sinks touch widgets, so each one defers onto the UI thread.
	// Worker events arrive on the service goroutine.
	ui.relay = NewProgressRelay(localization,
		func(line string) { fyne.Do(func() { ui.appendLog(line) }) },
		func(text string) { fyne.Do(func() { ui.statusLabel.SetText(text) }) },
		func(percent float64) { fyne.Do(func() { ui.progressBar.SetValue(percent / ProgressScale) }) },
	)
	ui.downloadSvc.SetEventCallback(ui.relay.Handle)

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	loc := ui.localization

	// URL list entry
	ui.urlEntry = widget.NewMultiLineEntry()
	ui.urlEntry.SetPlaceHolder(loc.GetText(KeyURLPlaceholder))
	ui.urlEntry.Wrapping = fyne.TextWrapOff
	ui.urlEntry.SetMinRowsVisible(5)

	// Download directory row
	ui.dirEntry = widget.NewEntry()
	ui.dirEntry.SetText(ui.settings.GetDownloadDirectory())
	browseBtn := widget.NewButton(loc.GetText(KeyBrowse), ui.onBrowseClick)
	openFolderBtn := widget.NewButton(loc.GetText(KeyOpenFolder), ui.onOpenFolderClick)

	// Preset selector restores the saved choice when it is still offered
	ui.presetSelect = widget.NewSelect(model.PresetLabels(), nil)
	ui.presetSelect.SetSelected(ui.settings.GetPresetLabel())
	if ui.presetSelect.Selected == "" {
		ui.presetSelect.SetSelectedIndex(0)
	}

	// Subtitle and post-processing options
	ui.subsEntry = widget.NewEntry()
	ui.subsEntry.SetPlaceHolder(loc.GetText(KeySubtitleLangs))
	ui.subsEntry.SetText(ui.settings.GetSubtitleLanguages())

	ui.thumbCheck = widget.NewCheck(loc.GetText(KeyEmbedThumbnail), nil)
	ui.thumbCheck.SetChecked(ui.settings.GetEmbedThumbnail())
	ui.metaCheck = widget.NewCheck(loc.GetText(KeyEmbedMetadata), nil)
	ui.metaCheck.SetChecked(ui.settings.GetEmbedMetadata())
	ui.autoSubsCheck = widget.NewCheck(loc.GetText(KeyAutoSubtitles), nil)
	ui.autoSubsCheck.SetChecked(ui.settings.GetAutoSubtitles())

	// Action buttons
	ui.startBtn = widget.NewButton(loc.GetText(KeyStartDownload), ui.onStartClick)
	ui.startBtn.Importance = widget.HighImportance
	howToBtn := widget.NewButton(loc.GetText(KeyHowToUse), ui.onShowGuide)

	// Progress and log panel
	ui.progressBar = widget.NewProgressBar()
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	ui.logEntry = widget.NewMultiLineEntry()
	ui.logEntry.Wrapping = fyne.TextWrapWord
	ui.logEntry.Disable()

	options := container.NewVBox(
		widget.NewLabel(loc.GetText(KeyURLLabel)),
		ui.urlEntry,
		container.NewBorder(nil, nil, widget.NewLabel(loc.GetText(KeyDownloadDirectory)), container.NewHBox(browseBtn, openFolderBtn), ui.dirEntry),
		container.NewBorder(nil, nil, widget.NewLabel(loc.GetText(KeyPreset)), nil, ui.presetSelect),
		ui.subsEntry,
		container.NewHBox(ui.thumbCheck, ui.metaCheck, ui.autoSubsCheck),
		container.NewHBox(ui.startBtn, howToBtn),
		widget.NewSeparator(),
		ui.progressBar,
		ui.statusLabel,
	)

	content := container.NewBorder(
		options,     // top
		nil,         // bottom
		nil,         // left
		nil,         // right
		ui.logEntry, // center - the log takes the remaining space
	)

	ui.window.SetContent(content)
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
}

// collectSnapshot copies the current widget state into an immutable snapshot.
// Changing widgets after Start must not affect an in-flight batch.
func (ui *RootUI) collectSnapshot() model.Snapshot {
	return model.Snapshot{
		DownloadDir:    strings.TrimSpace(ui.dirEntry.Text),
		PresetLabel:    ui.presetSelect.Selected,
		SubtitleLangs:  strings.TrimSpace(ui.subsEntry.Text),
		EmbedThumbnail: ui.thumbCheck.Checked,
		EmbedMetadata:  ui.metaCheck.Checked,
		AutoSubtitles:  ui.autoSubsCheck.Checked,
		URLs:           SplitURLLines(ui.urlEntry.Text),
	}
}

// SplitURLLines turns the raw URL entry text into one URL per non-blank line.
func SplitURLLines(raw string) []string {
	var urls []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			urls = append(urls, line)
		}
	}
	return urls
}

// onStartClick validates the form, persists the selections, and hands a new
// batch to the download service.
func (ui *RootUI) onStartClick() {
	snap := ui.collectSnapshot()

	if len(snap.URLs) == 0 {
		dialog.ShowError(errors.New(ui.localization.GetText(KeyPleaseEnterURL)), ui.window)
		return
	}

	if !platform.IsDirectory(snap.DownloadDir) {
		dialog.ShowError(errors.New(ui.localization.GetText(KeyInvalidDir)), ui.window)
		return
	}

	// Persist so the next launch restores the same choices
	ui.settings.SaveSelections(snap)

	batch := model.NewBatch(snap.URLs, snap)
	log.Printf("starting batch %s with %d URLs", batch.ID, len(batch.URLs))

	ui.logEntry.SetText("")
	ui.downloadSvc.Start(batch)
}

// onBrowseClick opens the native folder picker for the download directory.
func (ui *RootUI) onBrowseClick() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			log.Printf("folder picker failed: %v", err)
			return
		}
		if uri == nil {
			return // cancelled
		}
		ui.dirEntry.SetText(uri.Path())
	}, ui.window)
}

// onOpenFolderClick reveals the chosen download directory in the system file
// manager.
func (ui *RootUI) onOpenFolderClick() {
	dir := strings.TrimSpace(ui.dirEntry.Text)
	if err := platform.OpenFolderInManager(dir); err != nil {
		log.Printf("failed to open folder %s: %v", dir, err)
		dialog.ShowError(err, ui.window)
	}
}

// onShowGuide opens the bundled user guide in its own window.
func (ui *RootUI) onShowGuide() {
	ui.showGuideWindow()
}

// appendLog appends one line to the log panel. Must run on the UI thread.
func (ui *RootUI) appendLog(line string) {
	text := ui.logEntry.Text
	if text != "" {
		text += "\n"
	}
	ui.logEntry.SetText(text + line)
	ui.logEntry.CursorRow = strings.Count(ui.logEntry.Text, "\n")
}

// CheckFFmpeg verifies that FFmpeg is next to the executable and offers to
// fetch it when missing. Only meaningful on Windows; a no-op elsewhere.
func (ui *RootUI) CheckFFmpeg() {
	if !platform.NeedsFFmpegCheck() {
		return
	}

	baseDir, err := platform.AppBaseDir()
	if err != nil {
		log.Printf("cannot resolve executable directory: %v", err)
		return
	}

	if platform.FFmpegPresent(baseDir) {
		return
	}

	loc := ui.localization
	dialog.ShowConfirm(loc.GetText(KeyFFmpegPromptTitle), loc.GetText(KeyFFmpegPromptBody), func(ok bool) {
		if !ok {
			return
		}

		ui.statusLabel.SetText(loc.GetText(KeyFFmpegFetching))
		go func() {
			err := platform.FetchFFmpeg(context.Background(), baseDir)
			fyne.Do(func() {
				if err != nil {
					log.Printf("ffmpeg fetch failed: %v", err)
					ui.statusLabel.SetText(loc.GetText(KeyFFmpegFailed))
					dialog.ShowError(err, ui.window)
					return
				}
				ui.statusLabel.SetText(loc.GetText(KeyFFmpegReady))
			})
		}()
	}, ui.window)
}
