package display

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// NarrativeWidth is the wrap width for narrative prose. Clients rendering
// in a terminal can print events verbatim.
const NarrativeWidth = 78

// Narrative word-wraps prose for transmission, collapsing runs of spaces
// first so template expansion artifacts never show.
func Narrative(text string) string {
	return wordwrap.String(strings.Join(strings.Fields(text), " "), NarrativeWidth)
}

// ItemName renders an item identifier as display text, e.g. "razor-blade"
// becomes "a razor blade".
func ItemName(id string) string {
	name := strings.ReplaceAll(id, "-", " ")
	if name == "" {
		return name
	}
	switch name[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an " + name
	}
	return "a " + name
}

// Capitalize returns s with its first character uppercased.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
