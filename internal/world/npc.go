package world

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-oceania/internal/storage"
)

// Npc is a non-player character pinned to one location. Interactions are
// data-driven: the client's interaction_type indexes the Responses list.
type Npc struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Trust       int                `json:"trust"` // -100..100, willingness to engage off the record
	Location    storage.Identifier `json:"location"`
	Responses   []Response         `json:"responses"`
}

// Response is one dialogue branch. Text is a template expanded with the
// acting character (sprig functions available). Stat deltas are applied
// through the usual clamping, so content cannot push a stat out of range.
type Response struct {
	Text         string `json:"text"`
	Loyalty      int    `json:"loyalty,omitempty"`
	Suspicion    int    `json:"suspicion,omitempty"`
	Thoughtcrime int    `json:"thoughtcrime,omitempty"`
	Rebellion    int    `json:"rebellion,omitempty"`
	Health       int    `json:"health,omitempty"`
	Trust        int    `json:"trust,omitempty"` // relationship change with this NPC
	GrantItem    string `json:"grant_item,omitempty"`

	// MinTrust gates the branch on the player's standing with this NPC.
	// A gated branch picked too early falls back to RefusalText.
	MinTrust    int    `json:"min_trust,omitempty"`
	RefusalText string `json:"refusal_text,omitempty"`
}

func (n *Npc) Validate() error {
	el := errors.NewErrorList()

	if n.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}

	if n.Location == "" {
		el.Add(fmt.Errorf("location is required"))
	}

	if n.Trust < -100 || n.Trust > 100 {
		el.Add(fmt.Errorf("trust must be between -100 and 100"))
	}

	if len(n.Responses) == 0 {
		el.Add(fmt.Errorf("at least one response is required"))
	}

	for i, r := range n.Responses {
		if r.Text == "" {
			el.Add(fmt.Errorf("response %d: text is required", i))
		}
		if r.MinTrust != 0 && r.RefusalText == "" {
			el.Add(fmt.Errorf("response %d: refusal_text is required when min_trust is set", i))
		}
	}

	return el.Err()
}
