package config

import (
	"fyne.io/fyne/v2"

	"github.com/ydlstudio/ydl-studio/internal/model"
	"github.com/ydlstudio/ydl-studio/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir    = "download_directory"
	KeyPresetLabel    = "preset_label"
	KeySubtitleLangs  = "subtitle_languages"
	KeyEmbedThumbnail = "embed_thumbnail"
	KeyEmbedMetadata  = "embed_metadata"
	KeyAutoSubtitles  = "auto_subtitles"
	KeyLanguage       = "app_language"
)

// Default values
const (
	DefaultPresetLabel = model.PresetLabelBestVideo
	DefaultLanguage    = "ko"
	FallbackDir        = "/tmp/downloads"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = FallbackDir
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetPresetLabel returns the last used preset label
func (s *Settings) GetPresetLabel() string {
	label := s.app.Preferences().String(KeyPresetLabel)
	if label == "" {
		s.SetPresetLabel(DefaultPresetLabel)
		return DefaultPresetLabel
	}
	return label
}

// SetPresetLabel sets the preset label
func (s *Settings) SetPresetLabel(label string) {
	if label == "" {
		label = DefaultPresetLabel
	}
	s.app.Preferences().SetString(KeyPresetLabel, label)
}

// GetSubtitleLanguages returns the raw subtitle language text
func (s *Settings) GetSubtitleLanguages() string {
	return s.app.Preferences().String(KeySubtitleLangs)
}

// SetSubtitleLanguages sets the raw subtitle language text
func (s *Settings) SetSubtitleLanguages(langs string) {
	s.app.Preferences().SetString(KeySubtitleLangs, langs)
}

// GetEmbedThumbnail returns whether thumbnails are embedded after download
func (s *Settings) GetEmbedThumbnail() bool {
	return s.app.Preferences().Bool(KeyEmbedThumbnail)
}

// SetEmbedThumbnail sets the thumbnail embedding flag
func (s *Settings) SetEmbedThumbnail(embed bool) {
	s.app.Preferences().SetBool(KeyEmbedThumbnail, embed)
}

// GetEmbedMetadata returns whether metadata is embedded after download
func (s *Settings) GetEmbedMetadata() bool {
	return s.app.Preferences().Bool(KeyEmbedMetadata)
}

// SetEmbedMetadata sets the metadata embedding flag
func (s *Settings) SetEmbedMetadata(embed bool) {
	s.app.Preferences().SetBool(KeyEmbedMetadata, embed)
}

// GetAutoSubtitles returns whether auto-generated subtitles are fetched
func (s *Settings) GetAutoSubtitles() bool {
	return s.app.Preferences().Bool(KeyAutoSubtitles)
}

// SetAutoSubtitles sets the auto-generated subtitle flag
func (s *Settings) SetAutoSubtitles(auto bool) {
	s.app.Preferences().SetBool(KeyAutoSubtitles, auto)
}

// GetLanguage returns the configured UI language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// SaveSelections persists every snapshot field that survives restarts.
func (s *Settings) SaveSelections(snap model.Snapshot) {
	s.SetDownloadDirectory(snap.DownloadDir)
	s.SetPresetLabel(snap.PresetLabel)
	s.SetSubtitleLanguages(snap.SubtitleLangs)
	s.SetEmbedThumbnail(snap.EmbedThumbnail)
	s.SetEmbedMetadata(snap.EmbedMetadata)
	s.SetAutoSubtitles(snap.AutoSubtitles)
}
