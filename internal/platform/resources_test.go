package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocateGuideIn(t *testing.T) {
	primary := t.TempDir()
	fallback := t.TempDir()
	guidePath := filepath.Join(fallback, GuideFileName)
	if err := os.WriteFile(guidePath, []byte("guide"), DefaultFilePermissions); err != nil {
		t.Fatalf("Failed to write guide: %v", err)
	}

	// Falls through to the second candidate when the first is missing.
	found, err := locateGuideIn([]string{
		filepath.Join(primary, GuideFileName),
		guidePath,
	})
	if err != nil {
		t.Fatalf("locateGuideIn failed: %v", err)
	}
	if found != guidePath {
		t.Errorf("Expected %s, got %s", guidePath, found)
	}
}

func TestLocateGuideInPrefersFirstCandidate(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	for _, dir := range []string{first, second} {
		if err := os.WriteFile(filepath.Join(dir, GuideFileName), []byte(dir), DefaultFilePermissions); err != nil {
			t.Fatalf("Failed to write guide: %v", err)
		}
	}

	found, err := locateGuideIn([]string{
		filepath.Join(first, GuideFileName),
		filepath.Join(second, GuideFileName),
	})
	if err != nil {
		t.Fatalf("locateGuideIn failed: %v", err)
	}
	if found != filepath.Join(first, GuideFileName) {
		t.Errorf("Expected first candidate to win, got %s", found)
	}
}

func TestLocateGuideInMissing(t *testing.T) {
	attempted := filepath.Join(t.TempDir(), GuideFileName)

	_, err := locateGuideIn([]string{attempted})
	if err == nil {
		t.Fatal("Expected error when guide is missing")
	}
	// The error names the attempted path so the dialog can show it.
	if !strings.Contains(err.Error(), attempted) {
		t.Errorf("Error should name the attempted path, got: %v", err)
	}
}
