package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires user input to the download service and renders
// worker events pushed through the progress relay. All UI strings are
// localized via Localization, and every widget mutation triggered from the
// worker is deferred onto the UI thread with fyne.Do.
