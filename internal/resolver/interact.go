package resolver

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pixil98/go-oceania/internal/display"
	"github.com/pixil98/go-oceania/internal/game"
	"github.com/pixil98/go-oceania/internal/protocol"
	"github.com/pixil98/go-oceania/internal/storage"
	"github.com/pixil98/go-oceania/internal/world"
)

func (r *Resolver) interact(state *game.State, id uuid.UUID, in *protocol.Interact) (*Result, error) {
	c, err := r.character(state, id)
	if err != nil {
		return nil, err
	}

	npcID, npc, err := r.npcHere(c, in.NpcName)
	if err != nil {
		return nil, err
	}

	if in.InteractionType < 0 || in.InteractionType >= len(npc.Responses) {
		return nil, NewUserError(fmt.Sprintf("%s has nothing to say to that.", npc.Name))
	}
	response := npc.Responses[in.InteractionType]

	res := &Result{}

	// Gated branches refuse politely, and the rebuff itself draws notice.
	if response.MinTrust != 0 && c.Trust(npcID) < response.MinTrust {
		refusal, err := expandDialogue(response.RefusalText, c, npc)
		if err != nil {
			return nil, fmt.Errorf("expanding refusal for npc %q: %w", npcID, err)
		}
		c.Suspicion = c.Suspicion.Add(5)
		res.narrate(refusal)
		return r.finish(c, res), nil
	}

	text, err := expandDialogue(response.Text, c, npc)
	if err != nil {
		return nil, fmt.Errorf("expanding response for npc %q: %w", npcID, err)
	}

	c.Loyalty = c.Loyalty.Add(response.Loyalty)
	c.Suspicion = c.Suspicion.Add(response.Suspicion)
	c.Thoughtcrime = c.Thoughtcrime.Add(response.Thoughtcrime)
	c.Rebellion = c.Rebellion.Add(response.Rebellion)
	c.Health = c.Health.Add(response.Health)
	if response.Trust != 0 {
		c.AddTrust(npcID, response.Trust)
	}
	if response.GrantItem != "" {
		c.GrantItem(response.GrantItem)
		res.narrate(fmt.Sprintf("%s slips you %s.", npc.Name, display.ItemName(response.GrantItem)))
	}

	res.narrate(text)
	return r.finish(c, res), nil
}

// npcHere finds an NPC at the character's location by display name or
// identifier, case-insensitively.
func (r *Resolver) npcHere(c *game.Character, name string) (storage.Identifier, *world.Npc, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for id, npc := range r.world.NpcsAt(c.Location) {
		if strings.ToLower(npc.Name) == want || strings.ToLower(string(id)) == want {
			return id, npc, nil
		}
	}
	return "", nil, NewUserError(fmt.Sprintf("There is nobody called %q here.", name))
}
