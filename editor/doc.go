// Package editor provides a Bubble Tea text editor component backed by the
// buffer package.
//
// The package is responsible for input handling, clipboard integration,
// viewport behavior, word wrapping and cell-accurate rendering. Hosts drive it
// through Update and observe edits through Config.OnChange.
package editor
