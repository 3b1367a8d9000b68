package document

import (
	"errors"
	"testing"
)

func TestFontChoices_ClosedSetEndingWithCancel(t *testing.T) {
	choices := FontChoices()
	want := []string{"Monospaced 12", "Monospaced 14", "Arial 12", "Arial 14", "Cancel"}
	if len(choices) != len(want) {
		t.Fatalf("choice count: got %d, want %d", len(choices), len(want))
	}
	for i, f := range choices {
		if f.Label() != want[i] {
			t.Fatalf("choice %d: got %q, want %q", i, f.Label(), want[i])
		}
		if err := f.Validate(); err != nil {
			t.Fatalf("choice %q should validate: %v", f.Label(), err)
		}
	}
	if !choices[len(choices)-1].IsUnchanged() {
		t.Fatalf("last choice should be FontUnchanged")
	}

	// Mutating the returned slice must not affect later calls.
	choices[0] = Font{Family: "Comic", Size: 99}
	if FontChoices()[0] != Monospaced12 {
		t.Fatalf("FontChoices returned shared storage")
	}
}

func TestParseFont(t *testing.T) {
	cases := []struct {
		label string
		want  Font
	}{
		{label: "Monospaced 12", want: Monospaced12},
		{label: "arial 14", want: Arial14},
		{label: "  Arial   12 ", want: Arial12},
		{label: "Cancel", want: FontUnchanged},
	}
	for _, tc := range cases {
		got, err := ParseFont(tc.label)
		if err != nil {
			t.Fatalf("ParseFont(%q): %v", tc.label, err)
		}
		if got != tc.want {
			t.Fatalf("ParseFont(%q): got %+v, want %+v", tc.label, got, tc.want)
		}
	}

	for _, bad := range []string{"", "Arial", "Arial 13", "Helvetica 12", "Arial twelve", "Arial 12 bold"} {
		if _, err := ParseFont(bad); !errors.Is(err, ErrUnknownFont) {
			t.Fatalf("ParseFont(%q): got %v, want ErrUnknownFont", bad, err)
		}
	}
}

func TestFont_ValidateAndApply(t *testing.T) {
	if err := (Font{Family: "Arial", Size: 13}).Validate(); !errors.Is(err, ErrUnknownFont) {
		t.Fatalf("validate unknown: got %v", err)
	}
	if got := FontUnchanged.Apply(Arial12); got != Arial12 {
		t.Fatalf("cancel should keep current font: got %+v", got)
	}
	if got := Monospaced12.Apply(Arial12); got != Monospaced12 {
		t.Fatalf("apply: got %+v, want %+v", got, Monospaced12)
	}
}
