package display

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestNarrative(t *testing.T) {
	long := strings.Repeat("the telescreen watches ", 10)

	wrapped := Narrative(long)

	for _, line := range strings.Split(wrapped, "\n") {
		if len(line) > NarrativeWidth {
			t.Errorf("line %q exceeds %d characters", line, NarrativeWidth)
		}
	}
}

func TestNarrative_CollapsesWhitespace(t *testing.T) {
	got := Narrative("a   memory \n stirs")
	testutil.AssertEqual(t, "collapsed", got, "a memory stirs")
}

func TestItemName(t *testing.T) {
	tests := map[string]struct {
		id  string
		exp string
	}{
		"hyphenated":   {id: "razor-blade", exp: "a razor blade"},
		"vowel start":  {id: "ink-pen", exp: "an ink pen"},
		"single word":  {id: "coupon", exp: "a coupon"},
		"empty":        {id: "", exp: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "name", ItemName(tt.id), tt.exp)
		})
	}
}

func TestCapitalize(t *testing.T) {
	testutil.AssertEqual(t, "word", Capitalize("oceania"), "Oceania")
	testutil.AssertEqual(t, "empty", Capitalize(""), "")
}
