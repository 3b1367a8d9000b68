// Package document implements the notepad's document model: the text buffer
// snapshot, the bound file path, the word-wrap preference and the
// unsaved-changes check, plus the file operations that replace or flush them.
//
// The package has no UI dependencies. A host shell owns dialogs, menus and the
// text widget, and calls into Document on discrete user actions.
//
// Offsets are counted in runes. Lines and columns reported to users are
// 1-based.
package document
