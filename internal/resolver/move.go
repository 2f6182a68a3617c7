package resolver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/pixil98/go-oceania/internal/game"
	"github.com/pixil98/go-oceania/internal/protocol"
	"github.com/pixil98/go-oceania/internal/storage"
	"github.com/pixil98/go-oceania/internal/world"
)

func (r *Resolver) move(state *game.State, id uuid.UUID, in *protocol.Move) (*Result, error) {
	c, err := r.character(state, id)
	if err != nil {
		return nil, err
	}

	from, err := r.location(c)
	if err != nil {
		return nil, err
	}

	target := storage.Identifier(in.TargetLocation)
	dest := r.world.Location(target)
	if dest == nil {
		return nil, NewUserError(fmt.Sprintf("There is no such place as %q. Perhaps there never was.", in.TargetLocation))
	}
	if !from.ConnectsTo(target) {
		return nil, NewUserError(fmt.Sprintf("You cannot get to %s from here.", dest.Name))
	}

	c.Location = target

	res := &Result{}
	res.narrate(fmt.Sprintf("You make your way to %s. %s", dest.Name, dest.Description))

	// A character already under watch risks being tailed between districts.
	if c.Suspicion > 70 && r.rng.Intn(10) < 3 {
		c.Suspicion = c.Suspicion.Add(5)
		res.narrate("A man in a plain overall falls into step some distance behind you. He turns off only at the last corner.")
	}

	if names := npcNamesAt(r.world.NpcsAt(target)); len(names) > 0 {
		res.narrate("Here you see: " + joinNames(names) + ".")
	}

	return r.finish(c, res), nil
}

// npcNamesAt lists NPC display names in a stable order.
func npcNamesAt(npcs map[storage.Identifier]*world.Npc) []string {
	names := make([]string, 0, len(npcs))
	for _, npc := range npcs {
		names = append(names, npc.Name)
	}
	sort.Strings(names)
	return names
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
