package download

import (
	"context"

	"github.com/ydlstudio/ydl-studio/internal/model"
)

// Engine is the external download/extraction engine. Download blocks until
// the job completes and invokes progress zero or more times from its own
// goroutine while running.
type Engine interface {
	// Available reports whether the engine can be invoked at all.
	Available() bool

	// Download runs one job to completion. A nil return means every file of
	// the job was produced; any failure surfaces as a descriptive error.
	Download(ctx context.Context, cfg model.JobConfig, url string, progress func(model.ProgressEvent)) error
}

// Downloader is the orchestrator surface consumed by the UI.
type Downloader interface {
	// SetEventCallback registers the consumer for worker events.
	SetEventCallback(callback func(Event))

	// Start runs a batch on a background worker and returns immediately.
	Start(batch model.Batch)
}

// PlaylistProber resolves playlist URLs to a short informational summary
// before the engine takes over. Probing is best-effort.
type PlaylistProber interface {
	IsPlaylistURL(url string) bool
	Probe(ctx context.Context, url string) (*model.PlaylistInfo, error)
}
