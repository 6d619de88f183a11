package model

// ProgressKind tags one progress event variant emitted during a download.
type ProgressKind int

const (
	// ProgressDownloading reports bytes transferred so far.
	ProgressDownloading ProgressKind = iota

	// ProgressFinished means the transfer ended and post-processing started.
	ProgressFinished

	// ProgressError means the engine reported a failed item.
	ProgressError
)

// ProgressEvent is an ephemeral status notification from the engine. Fields
// other than Kind are meaningful only for the variants that set them.
type ProgressEvent struct {
	Kind            ProgressKind
	DownloadedBytes int64
	TotalBytes      int64   // exact total or estimate; 0 when unknown
	BytesPerSec     float64 // 0 when unknown
	ETASec          int     // -1 when unknown
	Filename        string  // failed item for ProgressError, may be empty
}

// Percent returns the completion percentage clamped to [0,100]. Engines may
// report missing, zero, or inconsistent totals across resumed or multi-part
// downloads; the clamp holds regardless.
func (e ProgressEvent) Percent() float64 {
	if e.Kind == ProgressFinished {
		return 100
	}
	if e.TotalBytes <= 0 {
		return 0
	}
	percent := float64(e.DownloadedBytes) / float64(e.TotalBytes) * 100
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
