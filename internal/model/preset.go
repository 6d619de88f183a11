package model

import "strings"

// Preset identifies one of the fixed quality/post-processing bundles offered
// in the preset selector.
type Preset int

const (
	// PresetUnknown means the label did not match any known preset; format
	// selection is left to the engine default.
	PresetUnknown Preset = iota

	// PresetBestVideo selects the best available video+audio combination.
	PresetBestVideo

	// Preset1080pMP4 selects the best MP4 video capped at 1080p.
	Preset1080pMP4

	// PresetAudioOnly selects the best audio stream and transcodes to MP3.
	PresetAudioOnly

	// PresetSubtitlesOnly skips the media download and fetches subtitles.
	PresetSubtitlesOnly
)

// Display labels shown in the preset selector. Korean first, English in
// parentheses, matching the rest of the bilingual UI surface.
const (
	PresetLabelBestVideo     = "최고 화질 (Best Video)"
	PresetLabel1080pMP4      = "1080p MP4 (1080p MP4)"
	PresetLabelAudioOnly     = "오디오만 (MP3) (Audio Only)"
	PresetLabelSubtitlesOnly = "자막만 (Subtitles Only)"
)

// String returns the canonical English name of the preset.
func (p Preset) String() string {
	switch p {
	case PresetBestVideo:
		return "Best Video"
	case Preset1080pMP4:
		return "1080p MP4"
	case PresetAudioOnly:
		return "Audio Only (MP3)"
	case PresetSubtitlesOnly:
		return "Subtitles Only"
	default:
		return "Unknown"
	}
}

// PresetLabels returns the four selector labels in display order.
func PresetLabels() []string {
	return []string{
		PresetLabelBestVideo,
		PresetLabel1080pMP4,
		PresetLabelAudioOnly,
		PresetLabelSubtitlesOnly,
	}
}

// ParsePresetLabel maps a display label to its Preset. Labels carry a
// localized secondary name in parentheses, so only the substring before the
// first parenthesis is compared, trimmed of surrounding whitespace. Both the
// Korean and English primary names are accepted. Labels that match nothing
// yield PresetUnknown.
func ParsePresetLabel(label string) Preset {
	name := label
	if idx := strings.Index(name, "("); idx >= 0 {
		name = name[:idx]
	}
	name = strings.TrimSpace(name)

	switch name {
	case "최고 화질", "Best Video":
		return PresetBestVideo
	case "1080p MP4":
		return Preset1080pMP4
	case "오디오만", "Audio Only":
		return PresetAudioOnly
	case "자막만", "Subtitles Only":
		return PresetSubtitlesOnly
	default:
		return PresetUnknown
	}
}
