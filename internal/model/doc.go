package model

// Package model defines domain data structures used across the app: quality
// presets, UI selection snapshots, download job configurations, and progress
// events. Values are built once per batch and never mutated afterwards.
