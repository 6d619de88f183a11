package download

// Package download implements the core download pipeline built on top of
// yt-dlp (via github.com/lrstanley/go-ytdlp behind the Engine interface). It
// translates UI selection snapshots into per-URL job configurations and runs
// each batch sequentially on a single worker goroutine, reporting progress
// and per-item failures through an event callback.
