package model

import "strings"

// Snapshot captures the state of every input widget at the moment a batch
// starts. The worker reads the snapshot only; editing fields mid-run cannot
// affect downloads already queued.
type Snapshot struct {
	DownloadDir    string
	PresetLabel    string
	SubtitleLangs  string // raw comma-separated text as typed
	EmbedThumbnail bool
	EmbedMetadata  bool
	AutoSubtitles  bool
	URLs           []string
}

// SplitSubtitleLangs splits the raw comma-separated language text into a
// clean list: entries are trimmed, empty entries dropped, order preserved.
func SplitSubtitleLangs(raw string) []string {
	var langs []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		langs = append(langs, part)
	}
	return langs
}
