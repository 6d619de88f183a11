package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyURLLabel          = "url_label"
	KeyURLPlaceholder    = "url_placeholder"
	KeyDownloadDirectory = "download_directory"
	KeyBrowse            = "browse"
	KeyOpenFolder        = "open_folder"
	KeyPreset            = "preset"
	KeySubtitleLangs     = "subtitle_langs"
	KeyEmbedThumbnail    = "embed_thumbnail"
	KeyEmbedMetadata     = "embed_metadata"
	KeyAutoSubtitles     = "auto_subtitles"
	KeyStartDownload     = "start_download"
	KeyHowToUse          = "how_to_use"
	KeyProgressLabel     = "progress_label"
	KeyLogLabel          = "log_label"

	KeyPleaseEnterURL  = "please_enter_url"
	KeyInvalidDir      = "invalid_dir"
	KeyEngineMissing   = "engine_missing"
	KeyBatchStarted    = "batch_started"
	KeyItemStarted     = "item_started"
	KeyDownloading     = "downloading"
	KeyPostProcessing  = "post_processing"
	KeyItemFinished    = "item_finished"
	KeyItemFailed      = "item_failed"
	KeyAllCompleted    = "all_completed"
	KeyPlaylistFound   = "playlist_found"
	KeyUnknownFile     = "unknown_file"

	KeyFFmpegPromptTitle = "ffmpeg_prompt_title"
	KeyFFmpegPromptBody  = "ffmpeg_prompt_body"
	KeyFFmpegFetching    = "ffmpeg_fetching"
	KeyFFmpegReady       = "ffmpeg_ready"
	KeyFFmpegFailed      = "ffmpeg_failed"

	KeyGuideTitle    = "guide_title"
	KeyGuideNotFound = "guide_not_found"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "ko",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"ko": "한국어",
		"en": "English",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// Korean texts
	l.texts["ko"] = map[string]string{
		KeyAppTitle:          "YDL Studio",
		KeyURLLabel:          "URL 목록 (한 줄에 하나씩)",
		KeyURLPlaceholder:    "https://youtube.com/watch?v=...",
		KeyDownloadDirectory: "저장 폴더",
		KeyBrowse:            "찾아보기",
		KeyOpenFolder:        "폴더 열기",
		KeyPreset:            "품질 프리셋",
		KeySubtitleLangs:     "자막 언어 (예: en,ko)",
		KeyEmbedThumbnail:    "썸네일 포함",
		KeyEmbedMetadata:     "메타데이터 포함",
		KeyAutoSubtitles:     "자동 생성 자막 포함",
		KeyStartDownload:     "다운로드 시작",
		KeyHowToUse:          "사용 방법",
		KeyProgressLabel:     "진행률",
		KeyLogLabel:          "로그",

		KeyPleaseEnterURL:  "URL을 입력해 주세요",
		KeyInvalidDir:      "저장 폴더가 올바르지 않습니다",
		KeyEngineMissing:   "yt-dlp를 찾을 수 없습니다. 설치 후 다시 시도해 주세요",
		KeyBatchStarted:    "다운로드 작업을 시작합니다",
		KeyItemStarted:     "다운로드 시작",
		KeyDownloading:     "다운로드 중",
		KeyPostProcessing:  "후처리 중",
		KeyItemFinished:    "완료",
		KeyItemFailed:      "실패",
		KeyAllCompleted:    "모든 작업이 완료되었습니다",
		KeyPlaylistFound:   "재생목록 감지",
		KeyUnknownFile:     "알 수 없는 파일",

		KeyFFmpegPromptTitle: "FFmpeg 확인",
		KeyFFmpegPromptBody:  "FFmpeg가 없습니다. 지금 내려받을까요?",
		KeyFFmpegFetching:    "FFmpeg 내려받는 중...",
		KeyFFmpegReady:       "FFmpeg 준비 완료",
		KeyFFmpegFailed:      "FFmpeg 내려받기 실패",

		KeyGuideTitle:    "사용 안내",
		KeyGuideNotFound: "안내 파일을 찾을 수 없습니다",
	}

	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "YDL Studio",
		KeyURLLabel:          "URLs (one per line)",
		KeyURLPlaceholder:    "https://youtube.com/watch?v=...",
		KeyDownloadDirectory: "Download Directory",
		KeyBrowse:            "Browse",
		KeyOpenFolder:        "Open Folder",
		KeyPreset:            "Quality Preset",
		KeySubtitleLangs:     "Subtitle Languages (e.g. en,ko)",
		KeyEmbedThumbnail:    "Embed Thumbnail",
		KeyEmbedMetadata:     "Embed Metadata",
		KeyAutoSubtitles:     "Include Auto-Generated Subtitles",
		KeyStartDownload:     "Start Download",
		KeyHowToUse:          "How to Use",
		KeyProgressLabel:     "Progress",
		KeyLogLabel:          "Log",

		KeyPleaseEnterURL:  "Please enter a URL",
		KeyInvalidDir:      "Download directory is not valid",
		KeyEngineMissing:   "yt-dlp was not found. Install it and try again",
		KeyBatchStarted:    "Starting download batch",
		KeyItemStarted:     "Download started",
		KeyDownloading:     "Downloading",
		KeyPostProcessing:  "Post-processing",
		KeyItemFinished:    "Finished",
		KeyItemFailed:      "Failed",
		KeyAllCompleted:    "All tasks completed",
		KeyPlaylistFound:   "Playlist detected",
		KeyUnknownFile:     "Unknown file",

		KeyFFmpegPromptTitle: "FFmpeg Check",
		KeyFFmpegPromptBody:  "FFmpeg is missing. Download it now?",
		KeyFFmpegFetching:    "Downloading FFmpeg...",
		KeyFFmpegReady:       "FFmpeg is ready",
		KeyFFmpegFailed:      "FFmpeg download failed",

		KeyGuideTitle:    "User Guide",
		KeyGuideNotFound: "Guide file was not found",
	}
}
