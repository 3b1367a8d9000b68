// Package app is the notepad's terminal shell.
//
// Model hosts one document.Document and one editor.Model behind a title
// bar, a menu bar and a status bar. Menu items, shortcuts and tests all go
// through the same named-command table (see Command). Modal dialogs carry
// the continuation to run once the user answers, so multi-step flows such as
// "save before closing" stay on the Bubble Tea update loop.
package app
