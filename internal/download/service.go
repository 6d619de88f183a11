package download

import (
	"context"
	"log"

	"github.com/ydlstudio/ydl-studio/internal/model"
)

// Service orchestrates download batches. One Start call spawns one worker
// goroutine; URLs are processed strictly sequentially in input order with no
// cancellation. A previous worker, if still running, is neither awaited nor
// stopped.
type Service struct {
	engine  Engine
	prober  PlaylistProber
	onEvent func(Event)
}

// NewService creates a new download service. prober may be nil to disable
// playlist probing.
func NewService(engine Engine, prober PlaylistProber) *Service {
	return &Service{
		engine: engine,
		prober: prober,
	}
}

// SetEventCallback sets the callback invoked for every orchestrator event.
// The callback runs on the worker goroutine; the consumer is responsible for
// marshaling onto the UI thread.
func (s *Service) SetEventCallback(callback func(Event)) {
	s.onEvent = callback
}

// Start runs the batch on a fresh background worker and returns immediately.
// The caller validates the batch (non-empty URLs, existing directory) before
// invoking Start.
func (s *Service) Start(batch model.Batch) {
	go s.run(batch)
}

// run processes the batch to completion. Nothing raised by the engine is
// allowed to propagate past this boundary; per-item failures become results
// and the loop continues.
func (s *Service) run(batch model.Batch) []model.ItemResult {
	total := len(batch.URLs)
	s.notify(Event{Kind: EventBatchStarted, Total: total})

	if s.engine == nil || !s.engine.Available() {
		log.Printf("download engine unavailable, skipping batch %s", batch.ID)
		s.notify(Event{Kind: EventEngineMissing})
		return nil
	}

	ctx := context.Background()
	results := make([]model.ItemResult, 0, total)

	for i, url := range batch.URLs {
		s.probePlaylist(ctx, url)

		cfg := BuildJobConfig(batch.Snapshot)
		s.notify(Event{Kind: EventItemStarted, URL: url, Index: i + 1, Total: total})

		err := s.engine.Download(ctx, cfg, url, func(ev model.ProgressEvent) {
			s.notify(Event{Kind: EventProgress, URL: url, Progress: ev})
		})
		if err != nil {
			log.Printf("download failed for %s: %v", url, err)
			results = append(results, model.ItemResult{URL: url, Err: err.Error()})
			s.notify(Event{Kind: EventItemFailed, URL: url, Err: err})
			continue
		}

		results = append(results, model.ItemResult{URL: url})
		s.notify(Event{Kind: EventItemFinished, URL: url})
	}

	// No aggregate success/failure counts are surfaced beyond the per-item
	// events; the results slice is informational.
	s.notify(Event{Kind: EventBatchFinished, Results: results})
	return results
}

// probePlaylist emits an informational event for playlist URLs. Probe
// failures never affect the download flow.
func (s *Service) probePlaylist(ctx context.Context, url string) {
	if s.prober == nil || !s.prober.IsPlaylistURL(url) {
		return
	}

	info, err := s.prober.Probe(ctx, url)
	if err != nil {
		log.Printf("playlist probe failed for %s: %v", url, err)
		return
	}

	s.notify(Event{Kind: EventPlaylistInfo, URL: url, Playlist: info})
}

// notify calls the event callback if set.
func (s *Service) notify(ev Event) {
	if s.onEvent != nil {
		s.onEvent(ev)
	}
}
