package editor

import "strings"

// Clipboard provides editor-level clipboard integration.
//
// Errors must not crash the UI. Key-driven clipboard actions ignore them;
// the Copy, Cut and Paste methods return them to the host.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// normalizeNewlines converts CRLF and lone CR line endings to LF.
func normalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
