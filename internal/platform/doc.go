package platform

// Package platform contains OS and external tooling glue: filesystem helpers,
// the yt-dlp engine adapter, playlist probing, the FFmpeg bootstrap, and
// bundled resource lookup.
