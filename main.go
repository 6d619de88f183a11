package main

import (
	"fmt"

	"fyne.io/fyne/v2/app"

	"github.com/ydlstudio/ydl-studio/internal/download"
	"github.com/ydlstudio/ydl-studio/internal/platform"
	"github.com/ydlstudio/ydl-studio/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ydlstudio.ydl-studio"
	AppName = "YDL Studio"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(AppName)

	// Initialize services
	engine := platform.NewYTDLPEngine()
	prober := platform.NewPlaylistProbe()
	downloadSvc := download.NewService(engine, prober)

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, downloadSvc)

	// Offer the FFmpeg bootstrap on Windows before the first download
	rootUI.CheckFFmpeg()

	// Show and run
	myWindow.ShowAndRun()
}
