package platform

import (
	"testing"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ydlstudio/ydl-studio/internal/model"
)

func TestTranslateUpdateDownloading(t *testing.T) {
	update := ytdlp.ProgressUpdate{
		Status:          ytdlp.ProgressStatusDownloading,
		DownloadedBytes: 512,
		TotalBytes:      2048,
		Started:         time.Now().Add(-time.Second),
	}

	ev := translateUpdate(update)

	if ev.Kind != model.ProgressDownloading {
		t.Errorf("Expected downloading event, got kind %d", ev.Kind)
	}
	if ev.DownloadedBytes != 512 || ev.TotalBytes != 2048 {
		t.Errorf("Unexpected byte counts: %d/%d", ev.DownloadedBytes, ev.TotalBytes)
	}
	if ev.BytesPerSec <= 0 {
		t.Errorf("Expected a derived rate, got %v", ev.BytesPerSec)
	}
	if got := ev.Percent(); got != 25 {
		t.Errorf("Expected 25%%, got %v", got)
	}
}

func TestTranslateUpdateFinished(t *testing.T) {
	ev := translateUpdate(ytdlp.ProgressUpdate{Status: ytdlp.ProgressStatusFinished})

	if ev.Kind != model.ProgressFinished {
		t.Errorf("Expected finished event, got kind %d", ev.Kind)
	}
	if got := ev.Percent(); got != 100 {
		t.Errorf("Expected 100%%, got %v", got)
	}
}

func TestTranslateUpdateError(t *testing.T) {
	ev := translateUpdate(ytdlp.ProgressUpdate{
		Status:   ytdlp.ProgressStatusError,
		Filename: "clip.mp4",
	})

	if ev.Kind != model.ProgressError {
		t.Errorf("Expected error event, got kind %d", ev.Kind)
	}
	if ev.Filename != "clip.mp4" {
		t.Errorf("Expected filename to carry through, got %q", ev.Filename)
	}
}

func TestTranslateUpdateUnknownTotal(t *testing.T) {
	ev := translateUpdate(ytdlp.ProgressUpdate{
		Status:          ytdlp.ProgressStatusDownloading,
		DownloadedBytes: 1024,
	})

	if got := ev.Percent(); got != 0 {
		t.Errorf("Unknown total should yield 0%%, got %v", got)
	}
	if ev.ETASec != -1 {
		t.Errorf("Unknown ETA should be -1, got %d", ev.ETASec)
	}
}
