package download

import "github.com/ydlstudio/ydl-studio/internal/model"

// EventKind tags one orchestrator event variant.
type EventKind int

const (
	// EventBatchStarted fires once when the worker picks up a batch.
	EventBatchStarted EventKind = iota

	// EventEngineMissing fires instead of any downloads when the engine is
	// not installed.
	EventEngineMissing

	// EventPlaylistInfo carries the probe summary for a playlist URL.
	EventPlaylistInfo

	// EventItemStarted fires before the engine is invoked for a URL.
	EventItemStarted

	// EventItemFinished fires when a URL downloaded successfully.
	EventItemFinished

	// EventItemFailed fires when the engine reported an error for a URL. The
	// batch continues with the next item.
	EventItemFailed

	// EventProgress wraps an engine progress event for the current item.
	EventProgress

	// EventBatchFinished fires once after every URL was processed.
	EventBatchFinished
)

// Event is one worker-to-UI notification. Only the fields of the matching
// kind are populated. Events are emitted in order and must be applied in
// order.
type Event struct {
	Kind     EventKind
	URL      string
	Index    int // 1-based position of the current item
	Total    int
	Err      error
	Progress model.ProgressEvent
	Playlist *model.PlaylistInfo
	Results  []model.ItemResult
}
