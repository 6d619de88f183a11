package download

import (
	"path/filepath"

	"github.com/ydlstudio/ydl-studio/internal/model"
)

// BuildJobConfig translates a selection snapshot into the job configuration
// for one URL. It is pure: no side effects, no network access, and it never
// fails. Unmatched preset labels leave the format unset so the engine falls
// back to its own default.
func BuildJobConfig(snap model.Snapshot) model.JobConfig {
	cfg := model.JobConfig{
		OutputTemplate: filepath.Join(snap.DownloadDir, model.OutputFilenameTemplate),
	}

	switch model.ParsePresetLabel(snap.PresetLabel) {
	case model.PresetBestVideo:
		cfg.Format = model.FormatBestVideo
	case model.Preset1080pMP4:
		cfg.Format = model.Format1080pMP4
	case model.PresetAudioOnly:
		cfg.Format = model.FormatBestAudio
		cfg.Postprocessors = append(cfg.Postprocessors, model.NewExtractAudioMP3())
	case model.PresetSubtitlesOnly:
		cfg.SkipDownload = true
		cfg.WriteSubs = true
		cfg.WriteAutoSubs = snap.AutoSubtitles
	}

	// A non-empty language list enables subtitle fetching regardless of the
	// chosen preset.
	if langs := model.SplitSubtitleLangs(snap.SubtitleLangs); len(langs) > 0 {
		cfg.SubtitleLangs = langs
		cfg.WriteSubs = true
		cfg.WriteAutoSubs = snap.AutoSubtitles
	}

	// Step order: audio extraction first, then thumbnail, then metadata.
	if snap.EmbedThumbnail {
		cfg.Postprocessors = append(cfg.Postprocessors, model.Postprocessor{Kind: model.PPEmbedThumbnail})
	}
	if snap.EmbedMetadata {
		cfg.Postprocessors = append(cfg.Postprocessors, model.Postprocessor{Kind: model.PPEmbedMetadata})
	}

	return cfg
}
