package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestIsDirectory(t *testing.T) {
	tempDir := t.TempDir()

	if !IsDirectory(tempDir) {
		t.Errorf("Expected %s to be a directory", tempDir)
	}

	if IsDirectory(filepath.Join(tempDir, "missing")) {
		t.Error("Missing path should not be a directory")
	}

	file := filepath.Join(tempDir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), DefaultFilePermissions); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	if IsDirectory(file) {
		t.Error("Regular file should not be a directory")
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if downloadsDir == "" {
		t.Fatal("Downloads directory is empty")
	}

	if filepath.Base(downloadsDir) != "Downloads" {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}
