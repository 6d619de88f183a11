package model

import "github.com/google/uuid"

// Batch is the full set of URLs submitted via one Start action, together
// with the selection snapshot they were submitted under.
type Batch struct {
	ID       string
	URLs     []string
	Snapshot Snapshot
}

// NewBatch builds a batch with a fresh identifier.
func NewBatch(urls []string, snap Snapshot) Batch {
	return Batch{
		ID:       "batch-" + uuid.NewString(),
		URLs:     urls,
		Snapshot: snap,
	}
}

// ItemResult records the outcome of one URL in a batch. A failed item never
// aborts the batch; the loop records the reason and moves on.
type ItemResult struct {
	URL string
	Err string // empty on success
}

// OK reports whether the item downloaded without error.
func (r ItemResult) OK() bool {
	return r.Err == ""
}

// PlaylistInfo summarizes a playlist URL before its download starts. It is
// informational only; the engine expands playlists itself.
type PlaylistInfo struct {
	ID          string
	Title       string
	TotalVideos int
}
