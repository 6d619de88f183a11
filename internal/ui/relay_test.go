package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/ydlstudio/ydl-studio/internal/download"
	"github.com/ydlstudio/ydl-studio/internal/model"
)

// sinkRecorder captures relay output for assertions.
type sinkRecorder struct {
	logs     []string
	statuses []string
	percents []float64
}

func newRecordedRelay(loc *Localization) (*ProgressRelay, *sinkRecorder) {
	rec := &sinkRecorder{}
	relay := NewProgressRelay(loc,
		func(line string) { rec.logs = append(rec.logs, line) },
		func(text string) { rec.statuses = append(rec.statuses, text) },
		func(p float64) { rec.percents = append(rec.percents, p) },
	)
	return relay, rec
}

func TestRelayBatchLifecycle(t *testing.T) {
	loc := NewLocalization()
	relay, rec := newRecordedRelay(loc)

	relay.Handle(download.Event{Kind: download.EventBatchStarted})
	relay.Handle(download.Event{Kind: download.EventItemStarted, URL: "https://example.com/a", Index: 1, Total: 2})
	relay.Handle(download.Event{Kind: download.EventItemFinished, URL: "https://example.com/a"})
	relay.Handle(download.Event{Kind: download.EventBatchFinished})

	if len(rec.logs) != 4 {
		t.Fatalf("expected 4 log lines, got %d: %v", len(rec.logs), rec.logs)
	}
	if rec.logs[0] != loc.GetText(KeyBatchStarted) {
		t.Errorf("unexpected first log line: %q", rec.logs[0])
	}
	if !strings.Contains(rec.logs[1], "[1/2]") || !strings.Contains(rec.logs[1], "https://example.com/a") {
		t.Errorf("item-started line missing index or URL: %q", rec.logs[1])
	}
	if rec.logs[3] != loc.GetText(KeyAllCompleted) {
		t.Errorf("unexpected final log line: %q", rec.logs[3])
	}

	// Percent resets at batch start, item start, and batch end.
	if len(rec.percents) != 3 {
		t.Fatalf("expected 3 percent updates, got %v", rec.percents)
	}
	for _, p := range rec.percents {
		if p != 0 {
			t.Errorf("expected percent reset to 0, got %v", p)
		}
	}
}

func TestRelayDownloadingProgress(t *testing.T) {
	loc := NewLocalization()
	relay, rec := newRecordedRelay(loc)

	relay.Handle(download.Event{Kind: download.EventProgress, Progress: model.ProgressEvent{
		Kind:            model.ProgressDownloading,
		DownloadedBytes: 512,
		TotalBytes:      2048,
		BytesPerSec:     2 * bytesPerMB,
		ETASec:          5,
	}})

	if len(rec.percents) != 1 || rec.percents[0] != 25 {
		t.Fatalf("expected percent [25], got %v", rec.percents)
	}

	// Each transfer update produces one log line; the status mirrors it.
	if len(rec.logs) != 1 {
		t.Fatalf("expected one log line, got %v", rec.logs)
	}
	for _, want := range []string{loc.GetText(KeyDownloading), "25.0%", "2.00 MB/s", "ETA 5s"} {
		if !strings.Contains(rec.logs[0], want) {
			t.Errorf("log line %q missing %q", rec.logs[0], want)
		}
	}
	if len(rec.statuses) != 1 || rec.statuses[0] != rec.logs[0] {
		t.Errorf("status should mirror the log line, got %v", rec.statuses)
	}
}

func TestRelayDownloadingOmitsUnknownRateAndETA(t *testing.T) {
	relay, rec := newRecordedRelay(NewLocalization())

	relay.Handle(download.Event{Kind: download.EventProgress, Progress: model.ProgressEvent{
		Kind:   model.ProgressDownloading,
		ETASec: -1,
	}})

	if len(rec.logs) != 1 {
		t.Fatalf("expected one log line, got %v", rec.logs)
	}
	for _, absent := range []string{"MB/s", "ETA"} {
		if strings.Contains(rec.logs[0], absent) {
			t.Errorf("log line %q should omit %q when unknown", rec.logs[0], absent)
		}
	}
	if !strings.Contains(rec.logs[0], "0.0%") {
		t.Errorf("log line %q missing percent", rec.logs[0])
	}
}

func TestRelayFinishedProgress(t *testing.T) {
	loc := NewLocalization()
	relay, rec := newRecordedRelay(loc)

	relay.Handle(download.Event{Kind: download.EventProgress, Progress: model.ProgressEvent{
		Kind: model.ProgressFinished,
	}})

	if len(rec.percents) != 1 || rec.percents[0] != 100 {
		t.Fatalf("expected percent [100], got %v", rec.percents)
	}
	if len(rec.logs) != 1 || rec.logs[0] != loc.GetText(KeyPostProcessing) {
		t.Errorf("expected post-processing log line, got %v", rec.logs)
	}
	if len(rec.statuses) != 1 || rec.statuses[0] != loc.GetText(KeyPostProcessing) {
		t.Errorf("expected post-processing status, got %v", rec.statuses)
	}
}

func TestRelayErrorProgressUsesPlaceholder(t *testing.T) {
	loc := NewLocalization()
	relay, rec := newRecordedRelay(loc)

	relay.Handle(download.Event{Kind: download.EventProgress, Progress: model.ProgressEvent{
		Kind: model.ProgressError,
	}})

	if len(rec.logs) != 1 || !strings.Contains(rec.logs[0], loc.GetText(KeyUnknownFile)) {
		t.Errorf("expected unknown-file placeholder in log, got %v", rec.logs)
	}
}

func TestRelayItemFailed(t *testing.T) {
	loc := NewLocalization()
	relay, rec := newRecordedRelay(loc)

	relay.Handle(download.Event{
		Kind: download.EventItemFailed,
		URL:  "https://example.com/bad",
		Err:  errors.New("boom"),
	})

	if len(rec.logs) != 1 {
		t.Fatalf("expected one log line, got %v", rec.logs)
	}
	for _, want := range []string{loc.GetText(KeyItemFailed), "https://example.com/bad", "boom"} {
		if !strings.Contains(rec.logs[0], want) {
			t.Errorf("failure line %q missing %q", rec.logs[0], want)
		}
	}
}

func TestRelayEngineMissing(t *testing.T) {
	loc := NewLocalization()
	relay, rec := newRecordedRelay(loc)

	relay.Handle(download.Event{Kind: download.EventEngineMissing})

	if len(rec.logs) != 1 || rec.logs[0] != loc.GetText(KeyEngineMissing) {
		t.Errorf("expected engine-missing log, got %v", rec.logs)
	}
	if len(rec.statuses) != 1 || rec.statuses[0] != loc.GetText(KeyEngineMissing) {
		t.Errorf("expected engine-missing status, got %v", rec.statuses)
	}
}

func TestRelayPlaylistInfo(t *testing.T) {
	relay, rec := newRecordedRelay(NewLocalization())

	relay.Handle(download.Event{Kind: download.EventPlaylistInfo, Playlist: &model.PlaylistInfo{
		ID:          "PL123",
		Title:       "Mix Playlist",
		TotalVideos: 7,
	}})

	if len(rec.logs) != 1 {
		t.Fatalf("expected one log line, got %v", rec.logs)
	}
	if !strings.Contains(rec.logs[0], "Mix Playlist") || !strings.Contains(rec.logs[0], "(7)") {
		t.Errorf("playlist line missing title or count: %q", rec.logs[0])
	}

	// A nil payload must be ignored, not crash.
	relay.Handle(download.Event{Kind: download.EventPlaylistInfo})
	if len(rec.logs) != 1 {
		t.Errorf("nil playlist payload should not log, got %v", rec.logs)
	}
}

func TestRelayNilSinks(t *testing.T) {
	relay := NewProgressRelay(NewLocalization(), nil, nil, nil)

	// Must not panic with no sinks attached.
	relay.Handle(download.Event{Kind: download.EventBatchStarted})
	relay.Handle(download.Event{Kind: download.EventProgress, Progress: model.ProgressEvent{Kind: model.ProgressDownloading}})
	relay.Handle(download.Event{Kind: download.EventBatchFinished})
}
