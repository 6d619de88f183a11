package platform

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"

	"github.com/ydlstudio/ydl-studio/internal/model"
)

// Playlist probe constants
const (
	DefaultProbeTimeout = 60 * time.Second

	PlaylistParam  = "list="
	ParamSeparator = "&"

	DefaultPlaylistTitle = "Unknown Playlist"
	PlaylistSuffix       = " Playlist"
)

// PlaylistProbe resolves playlist URLs to a title and item count so the log
// can announce what the engine is about to expand. It satisfies the
// download.PlaylistProber interface.
type PlaylistProbe struct {
	timeout time.Duration
}

// NewPlaylistProbe creates a new probe.
func NewPlaylistProbe() *PlaylistProbe {
	return &PlaylistProbe{
		timeout: DefaultProbeTimeout,
	}
}

// SetTimeout sets the timeout for probe operations.
func (p *PlaylistProbe) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// IsPlaylistURL reports whether the URL carries a playlist parameter.
func (p *PlaylistProbe) IsPlaylistURL(url string) bool {
	return strings.Contains(url, PlaylistParam)
}

// Probe fetches the playlist item list and summarizes it. Probing is
// best-effort; callers ignore errors and proceed with the download.
func (p *PlaylistProbe) Probe(ctx context.Context, url string) (*model.PlaylistInfo, error) {
	playlistID := extractPlaylistID(url)
	if playlistID == "" {
		return nil, fmt.Errorf("could not extract playlist ID from URL: %s", url)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	d := ytdlp.New()
	items, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %v", err)
	}

	title := DefaultPlaylistTitle
	if len(items) > 0 {
		title = items[0].Title + PlaylistSuffix
	}

	return &model.PlaylistInfo{
		ID:          playlistID,
		Title:       title,
		TotalVideos: len(items),
	}, nil
}

// extractPlaylistID extracts the playlist ID from various URL formats.
func extractPlaylistID(url string) string {
	if !strings.Contains(url, PlaylistParam) {
		return ""
	}
	parts := strings.Split(url, PlaylistParam)
	if len(parts) < 2 {
		return ""
	}
	id := parts[1]
	if strings.Contains(id, ParamSeparator) {
		id = strings.Split(id, ParamSeparator)[0]
	}
	return id
}
