package platform

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// FFmpeg bootstrap constants. The essentials build archive bundles the two
// executables the engine needs for merging and transcoding.
const (
	FFmpegArchiveURL = "https://www.gyan.dev/ffmpeg/builds/ffmpeg-release-essentials.zip"
)

// FFmpegExecutables are the archive entries extracted beside the app; all
// other archive contents are ignored.
var FFmpegExecutables = []string{"ffmpeg.exe", "ffprobe.exe"}

// NeedsFFmpegCheck reports whether the startup FFmpeg check applies on this
// platform. Everywhere but Windows the system package manager owns FFmpeg
// and the check is a no-op.
func NeedsFFmpegCheck() bool {
	return runtime.GOOS == OSWindows
}

// FFmpegPresent reports whether both required executables exist in baseDir.
func FFmpegPresent(baseDir string) bool {
	for _, name := range FFmpegExecutables {
		info, err := os.Stat(filepath.Join(baseDir, name))
		if err != nil || info.IsDir() {
			return false
		}
	}
	return true
}

// FetchFFmpeg downloads the essentials archive and writes the two required
// executables into baseDir. It blocks until done; callers run it off the UI
// thread and surface any error to the user.
func FetchFFmpeg(ctx context.Context, baseDir string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, FFmpegArchiveURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad status: %s", resp.Status)
	}

	archive, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read archive: %w", err)
	}

	extracted, err := extractExecutables(archive, baseDir, FFmpegExecutables)
	if err != nil {
		return err
	}
	if extracted != len(FFmpegExecutables) {
		return fmt.Errorf("archive is missing required executables (found %d of %d)", extracted, len(FFmpegExecutables))
	}
	return nil
}

// extractExecutables writes every archive entry whose filename ends in one
// of names (case-insensitive) into destDir, flattening paths. It returns the
// number of distinct names written.
func extractExecutables(archive []byte, destDir string, names []string) (int, error) {
	reader, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return 0, fmt.Errorf("failed to open archive: %w", err)
	}

	written := make(map[string]bool)
	for _, entry := range reader.File {
		lower := strings.ToLower(entry.Name)
		for _, name := range names {
			if !strings.HasSuffix(lower, strings.ToLower(name)) {
				continue
			}
			if err := writeArchiveEntry(entry, filepath.Join(destDir, filepath.Base(entry.Name))); err != nil {
				return len(written), err
			}
			written[name] = true
		}
	}
	return len(written), nil
}

func writeArchiveEntry(entry *zip.File, target string) error {
	src, err := entry.Open()
	if err != nil {
		return fmt.Errorf("failed to open archive entry %s: %w", entry.Name, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, ExecutablePermissions)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", target, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return nil
}
