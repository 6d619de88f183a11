package ui

import (
	"fmt"

	"github.com/ydlstudio/ydl-studio/internal/download"
	"github.com/ydlstudio/ydl-studio/internal/model"
)

const bytesPerMB = 1024 * 1024

// ProgressRelay turns worker events into localized status text, log lines,
// and a percent value. It knows nothing about widgets: the sinks it is given
// are expected to marshal onto the UI thread themselves (the root window
// wraps them in fyne.Do), which keeps the relay testable with plain closures.
type ProgressRelay struct {
	loc        *Localization
	appendLog  func(line string)
	setStatus  func(text string)
	setPercent func(percent float64)
}

// NewProgressRelay creates a relay that writes into the given sinks. Any
// sink may be nil, in which case that output is dropped.
func NewProgressRelay(loc *Localization, appendLog, setStatus func(string), setPercent func(float64)) *ProgressRelay {
	return &ProgressRelay{
		loc:        loc,
		appendLog:  appendLog,
		setStatus:  setStatus,
		setPercent: setPercent,
	}
}

// Handle consumes a single worker event.
func (r *ProgressRelay) Handle(ev download.Event) {
	switch ev.Kind {
	case download.EventBatchStarted:
		r.percent(0)
		r.log(r.loc.GetText(KeyBatchStarted))

	case download.EventEngineMissing:
		r.status(r.loc.GetText(KeyEngineMissing))
		r.log(r.loc.GetText(KeyEngineMissing))

	case download.EventPlaylistInfo:
		if ev.Playlist != nil {
			r.log(fmt.Sprintf("%s: %s (%d)", r.loc.GetText(KeyPlaylistFound), ev.Playlist.Title, ev.Playlist.TotalVideos))
		}

	case download.EventItemStarted:
		r.percent(0)
		r.log(fmt.Sprintf("[%d/%d] %s: %s", ev.Index, ev.Total, r.loc.GetText(KeyItemStarted), ev.URL))

	case download.EventProgress:
		r.handleProgress(ev.Progress)

	case download.EventItemFinished:
		r.log(fmt.Sprintf("%s: %s", r.loc.GetText(KeyItemFinished), ev.URL))

	case download.EventItemFailed:
		r.log(fmt.Sprintf("%s: %s: %v", r.loc.GetText(KeyItemFailed), ev.URL, ev.Err))

	case download.EventBatchFinished:
		r.percent(0)
		r.status(r.loc.GetText(KeyAllCompleted))
		r.log(r.loc.GetText(KeyAllCompleted))
	}
}

// handleProgress renders a single engine progress update. Every update
// becomes a log line; the status line mirrors the latest one.
func (r *ProgressRelay) handleProgress(p model.ProgressEvent) {
	switch p.Kind {
	case model.ProgressDownloading:
		r.percent(p.Percent())
		line := r.formatDownloading(p)
		r.log(line)
		r.status(line)

	case model.ProgressFinished:
		r.percent(100)
		r.log(r.loc.GetText(KeyPostProcessing))
		r.status(r.loc.GetText(KeyPostProcessing))

	case model.ProgressError:
		name := p.Filename
		if name == "" {
			name = r.loc.GetText(KeyUnknownFile)
		}
		r.log(fmt.Sprintf("%s: %s", r.loc.GetText(KeyItemFailed), name))
	}
}

// formatDownloading builds the transfer line. Rate and ETA are appended only
// when the engine reported them.
func (r *ProgressRelay) formatDownloading(p model.ProgressEvent) string {
	line := fmt.Sprintf("%s: "+ProgressLabelFormat, r.loc.GetText(KeyDownloading), p.Percent())
	if p.BytesPerSec > 0 {
		line += fmt.Sprintf(" "+SpeedLabelFormat, p.BytesPerSec/bytesPerMB)
	}
	if p.ETASec >= 0 {
		line += fmt.Sprintf(" "+ETALabelFormat, p.ETASec)
	}
	return line
}

func (r *ProgressRelay) log(line string) {
	if r.appendLog != nil {
		r.appendLog(line)
	}
}

func (r *ProgressRelay) status(text string) {
	if r.setStatus != nil {
		r.setStatus(text)
	}
}

func (r *ProgressRelay) percent(v float64) {
	if r.setPercent != nil {
		r.setPercent(v)
	}
}
