package resolver

import (
	"github.com/pixil98/go-oceania/internal/display"
	"github.com/pixil98/go-oceania/internal/protocol"
)

// Result is the outcome of resolving one intent. Stat deltas are already
// applied to the character when a Result comes back; the events describe
// what happened.
type Result struct {
	// ToSender is delivered only to the originating session, in order.
	ToSender []protocol.Event

	// ToOthers is broadcast to every other session (e.g. PlayerJoined).
	ToOthers []protocol.Event

	// RemoveCharacter is set when the action drove the character to an end
	// state (death or arrest). The engine drops the identity from the store
	// at the end of the tick, never mid-tick.
	RemoveCharacter bool
}

// narrate appends a narrative event for the sender. Prose is capitalized
// and wrapped here so content templates can be sloppy about both.
func (r *Result) narrate(text string) {
	r.ToSender = append(r.ToSender, &protocol.NarrativeUpdate{Text: display.Narrative(display.Capitalize(text))})
}
