package platform

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ydlstudio/ydl-studio/internal/model"
)

// Engine adapter constants
const (
	YTDLPCommand            = "yt-dlp"
	DefaultProgressInterval = 500 * time.Millisecond
)

// YTDLPEngine runs download jobs through the yt-dlp CLI via go-ytdlp. It
// satisfies the download.Engine interface.
type YTDLPEngine struct {
	progressInterval time.Duration
}

// NewYTDLPEngine creates a new engine adapter.
func NewYTDLPEngine() *YTDLPEngine {
	return &YTDLPEngine{
		progressInterval: DefaultProgressInterval,
	}
}

// Available reports whether the yt-dlp binary can be found on PATH. When it
// cannot, the orchestrator logs a single explanatory line and performs no
// downloads.
func (e *YTDLPEngine) Available() bool {
	_, err := exec.LookPath(YTDLPCommand)
	return err == nil
}

// Download runs one job to completion, blocking the calling goroutine. The
// progress callback receives translated engine updates while the job runs.
func (e *YTDLPEngine) Download(ctx context.Context, cfg model.JobConfig, url string, progress func(model.ProgressEvent)) error {
	dl := ytdlp.New().
		NoProgress().
		Output(cfg.OutputTemplate)

	if cfg.Format != "" {
		dl.Format(cfg.Format)
	}
	if cfg.SkipDownload {
		dl.SkipDownload()
	}
	if cfg.WriteSubs {
		dl.WriteSubs()
	}
	if cfg.WriteAutoSubs {
		dl.WriteAutoSubs()
	}
	if len(cfg.SubtitleLangs) > 0 {
		dl.SubLangs(strings.Join(cfg.SubtitleLangs, ","))
	}

	for _, pp := range cfg.Postprocessors {
		switch pp.Kind {
		case model.PPExtractAudio:
			dl.ExtractAudio()
			dl.AudioFormat(pp.AudioCodec)
			dl.AudioQuality(pp.AudioQuality)
		case model.PPEmbedThumbnail:
			dl.EmbedThumbnail()
		case model.PPEmbedMetadata:
			dl.EmbedMetadata()
		}
	}

	if progress != nil {
		dl.ProgressFunc(e.progressInterval, func(update ytdlp.ProgressUpdate) {
			progress(translateUpdate(update))
		})
	}

	_, err := dl.Run(ctx, url)
	return err
}

// translateUpdate converts a go-ytdlp progress update into the domain event
// consumed by the relay.
func translateUpdate(update ytdlp.ProgressUpdate) model.ProgressEvent {
	switch update.Status {
	case ytdlp.ProgressStatusError:
		return model.ProgressEvent{
			Kind:     model.ProgressError,
			Filename: update.Filename,
		}
	case ytdlp.ProgressStatusFinished, ytdlp.ProgressStatusPostProcessing:
		return model.ProgressEvent{Kind: model.ProgressFinished}
	default:
		ev := model.ProgressEvent{
			Kind:            model.ProgressDownloading,
			DownloadedBytes: int64(update.DownloadedBytes),
			TotalBytes:      int64(update.TotalBytes),
			ETASec:          -1,
		}

		// yt-dlp reports no rate through this interface; derive one from the
		// elapsed transfer time.
		if !update.Started.IsZero() {
			elapsed := time.Since(update.Started)
			if elapsed.Seconds() > 0 {
				ev.BytesPerSec = float64(ev.DownloadedBytes) / elapsed.Seconds()
			}
		}

		if eta := update.ETA(); eta > 0 {
			ev.ETASec = int(eta.Seconds())
		}

		return ev
	}
}
