package document

import (
	"fmt"
	"strconv"
	"strings"
)

// Font is a (family, size) pair from the closed font set. The zero value is
// FontUnchanged: choosing it keeps whatever font is currently applied.
type Font struct {
	Family string
	Size   int
}

// FontUnchanged is the "Cancel" choice of the font chooser.
var FontUnchanged = Font{}

var (
	Monospaced12 = Font{Family: "Monospaced", Size: 12}
	Monospaced14 = Font{Family: "Monospaced", Size: 14}
	Arial12      = Font{Family: "Arial", Size: 12}
	Arial14      = Font{Family: "Arial", Size: 14}

	// DefaultFont is applied to new editors.
	DefaultFont = Monospaced14
)

var fonts = []Font{Monospaced12, Monospaced14, Arial12, Arial14}

const cancelLabel = "Cancel"

// FontChoices returns the font chooser options in display order, ending with
// FontUnchanged.
func FontChoices() []Font {
	out := make([]Font, 0, len(fonts)+1)
	out = append(out, fonts...)
	return append(out, FontUnchanged)
}

// Label returns the chooser label, e.g. "Arial 12" or "Cancel".
func (f Font) Label() string {
	if f == FontUnchanged {
		return cancelLabel
	}
	return f.Family + " " + strconv.Itoa(f.Size)
}

func (f Font) String() string { return f.Label() }

// IsUnchanged reports whether f is the "no change" choice.
func (f Font) IsUnchanged() bool { return f == FontUnchanged }

// Validate reports whether f belongs to the font set.
func (f Font) Validate() error {
	if f == FontUnchanged {
		return nil
	}
	for _, known := range fonts {
		if f == known {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %d", ErrUnknownFont, f.Family, f.Size)
}

// Apply returns the font in effect after choosing f while current is applied.
func (f Font) Apply(current Font) Font {
	if f.IsUnchanged() {
		return current
	}
	return f
}

// ParseFont parses a chooser label. Matching is case-insensitive on the
// family; "Cancel" yields FontUnchanged.
func ParseFont(label string) (Font, error) {
	fields := strings.Fields(label)
	if len(fields) == 1 && strings.EqualFold(fields[0], cancelLabel) {
		return FontUnchanged, nil
	}
	if len(fields) != 2 {
		return Font{}, fmt.Errorf("%w: %q", ErrUnknownFont, label)
	}
	size, err := strconv.Atoi(fields[1])
	if err != nil {
		return Font{}, fmt.Errorf("%w: %q", ErrUnknownFont, label)
	}
	for _, known := range fonts {
		if strings.EqualFold(known.Family, fields[0]) && known.Size == size {
			return known, nil
		}
	}
	return Font{}, fmt.Errorf("%w: %q", ErrUnknownFont, label)
}
