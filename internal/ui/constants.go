package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window sizing
const (
	WindowWidth  float32 = 800
	WindowHeight float32 = 600

	GuideWindowWidth  float32 = 600
	GuideWindowHeight float32 = 400
)

// Text fragments
const (
	ProgressLabelFormat = "%.1f%%"
	SpeedLabelFormat    = "%.2f MB/s"
	ETALabelFormat      = "ETA %ds"
)

// Progress scale used by the relay. Fyne progress bars take 0..1, so the
// root window divides by this before rendering.
const ProgressScale = 100.0
