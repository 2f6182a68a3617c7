package world

import (
	"fmt"

	"github.com/pixil98/go-oceania/internal/storage"
)

// World is the read-only content aggregate shared by every tick. It is built
// once at startup from the asset stores and never mutated afterwards, so it
// is safe to reference from any goroutine.
type World struct {
	locations storage.Storer[*Location]
	npcs      storage.Storer[*Npc]
	texts     storage.Storer[*ForbiddenText]
}

// New cross-checks all content references and returns the aggregate.
// Dangling references are startup failures; the engine relies on every
// connection, NPC location, and text placement resolving.
func New(locations storage.Storer[*Location], npcs storage.Storer[*Npc], texts storage.Storer[*ForbiddenText]) (*World, error) {
	w := &World{
		locations: locations,
		npcs:      npcs,
		texts:     texts,
	}

	for id, loc := range locations.GetAll() {
		for _, conn := range loc.Connections {
			if locations.Get(conn) == nil {
				return nil, fmt.Errorf("location %q: connection %q not found", id, conn)
			}
		}
	}

	for id, npc := range npcs.GetAll() {
		if locations.Get(npc.Location) == nil {
			return nil, fmt.Errorf("npc %q: location %q not found", id, npc.Location)
		}
	}

	for id, text := range texts.GetAll() {
		for _, loc := range text.Locations {
			if locations.Get(loc) == nil {
				return nil, fmt.Errorf("text %q: location %q not found", id, loc)
			}
		}
	}

	return w, nil
}

// Location returns the location spec, or nil if the id is unknown.
func (w *World) Location(id storage.Identifier) *Location {
	return w.locations.Get(id)
}

// Locations returns all locations keyed by identifier.
func (w *World) Locations() map[storage.Identifier]*Location {
	return w.locations.GetAll()
}

// Npcs returns all NPCs keyed by identifier.
func (w *World) Npcs() map[storage.Identifier]*Npc {
	return w.npcs.GetAll()
}

// Npc returns the NPC spec, or nil if the id is unknown.
func (w *World) Npc(id storage.Identifier) *Npc {
	return w.npcs.Get(id)
}

// NpcsAt returns the NPCs present at a location.
func (w *World) NpcsAt(loc storage.Identifier) map[storage.Identifier]*Npc {
	found := map[storage.Identifier]*Npc{}
	for id, npc := range w.npcs.GetAll() {
		if npc.Location == loc {
			found[id] = npc
		}
	}
	return found
}

// Text returns the forbidden text spec, or nil if the id is unknown.
func (w *World) Text(id storage.Identifier) *ForbiddenText {
	return w.texts.Get(id)
}

// TextsAt returns the forbidden texts hidden at a location.
func (w *World) TextsAt(loc storage.Identifier) map[storage.Identifier]*ForbiddenText {
	found := map[storage.Identifier]*ForbiddenText{}
	for id, text := range w.texts.GetAll() {
		if text.HiddenAt(loc) {
			found[id] = text
		}
	}
	return found
}
