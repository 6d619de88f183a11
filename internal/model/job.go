package model

// yt-dlp format selectors used by the presets.
const (
	FormatBestVideo = "bv*+ba/best"
	Format1080pMP4  = "bestvideo[height<=1080][ext=mp4]+bestaudio[ext=m4a]/best[height<=1080][ext=mp4]"
	FormatBestAudio = "bestaudio"
)

// Audio extraction targets for the Audio Only preset.
const (
	AudioCodecMP3   = "mp3"
	AudioQuality192 = "192"
)

// OutputFilenameTemplate names downloaded files by media title and native
// extension. The template is passed verbatim to the engine.
const OutputFilenameTemplate = "%(title)s.%(ext)s"

// PostprocessorKind tags one post-processing step variant.
type PostprocessorKind int

const (
	// PPExtractAudio transcodes the downloaded stream to an audio file.
	PPExtractAudio PostprocessorKind = iota

	// PPEmbedThumbnail embeds the media thumbnail into the output file.
	PPEmbedThumbnail

	// PPEmbedMetadata embeds title/artist/etc. metadata into the output file.
	PPEmbedMetadata
)

// Postprocessor describes one ordered post-processing step. AudioCodec and
// AudioQuality are set only for PPExtractAudio.
type Postprocessor struct {
	Kind         PostprocessorKind
	AudioCodec   string
	AudioQuality string
}

// NewExtractAudioMP3 returns the fixed MP3 extraction step appended by the
// Audio Only preset.
func NewExtractAudioMP3() Postprocessor {
	return Postprocessor{
		Kind:         PPExtractAudio,
		AudioCodec:   AudioCodecMP3,
		AudioQuality: AudioQuality192,
	}
}

// JobConfig is the immutable description of one download request handed to
// the engine. Built fresh per URL, never mutated after construction.
type JobConfig struct {
	OutputTemplate string
	Format         string // empty means engine default
	SubtitleLangs  []string
	WriteSubs      bool
	WriteAutoSubs  bool
	SkipDownload   bool
	Postprocessors []Postprocessor
}
