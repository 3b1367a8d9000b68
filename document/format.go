package document

import (
	"fmt"
	"path/filepath"
)

const (
	untitled    = "Untitled"
	statusReady = "Ready"
)

// Title returns the window title for a document bound to path.
func Title(appName, path string) string {
	if path == "" {
		return appName + " - " + untitled
	}
	return appName + " - " + filepath.Base(path)
}

// StatusText returns the status bar text for a caret at offset in text. It
// falls back to "Ready" when the offset cannot be mapped.
func StatusText(text string, offset int) string {
	pos, err := OffsetToLineColumn(text, offset)
	if err != nil {
		return statusReady
	}
	return fmt.Sprintf("%s | %s", statusReady, pos)
}
