package model

import "testing"

func TestProgressEventPercentClamped(t *testing.T) {
	cases := []struct {
		name       string
		downloaded int64
		total      int64
		want       float64
	}{
		{"half done", 50, 100, 50},
		{"unknown total", 1024, 0, 0},
		{"negative total", 1024, -1, 0},
		{"overshoot from stale estimate", 300, 100, 100},
		{"negative downloaded", -10, 100, 0},
		{"complete", 100, 100, 100},
		{"nothing yet", 0, 100, 0},
	}

	for _, tc := range cases {
		ev := ProgressEvent{
			Kind:            ProgressDownloading,
			DownloadedBytes: tc.downloaded,
			TotalBytes:      tc.total,
		}
		got := ev.Percent()
		if got != tc.want {
			t.Errorf("%s: Percent() = %v, want %v", tc.name, got, tc.want)
		}
		if got < 0 || got > 100 {
			t.Errorf("%s: Percent() = %v outside [0,100]", tc.name, got)
		}
	}
}

func TestProgressEventPercentFinished(t *testing.T) {
	// Finished events push the bar to 100 even when byte counts are absent.
	ev := ProgressEvent{Kind: ProgressFinished}
	if got := ev.Percent(); got != 100 {
		t.Errorf("Percent() for finished event = %v, want 100", got)
	}
}

func TestNewBatch(t *testing.T) {
	urls := []string{"https://example.com/a", "https://example.com/b"}
	batch := NewBatch(urls, Snapshot{DownloadDir: "/tmp"})

	if batch.ID == "" {
		t.Error("Expected non-empty batch ID")
	}
	if len(batch.URLs) != 2 {
		t.Errorf("Expected 2 URLs, got %d", len(batch.URLs))
	}

	other := NewBatch(urls, Snapshot{})
	if other.ID == batch.ID {
		t.Error("Expected distinct batch IDs")
	}
}
