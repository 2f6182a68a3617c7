package game

import (
	"github.com/google/uuid"

	"github.com/pixil98/go-oceania/internal/physics"
	"github.com/pixil98/go-oceania/internal/storage"
	"github.com/pixil98/go-oceania/internal/world"
)

// State is the single shared mutable aggregate: every player's character,
// every flight entity, and the ambient world mood. It is owned exclusively
// by the engine goroutine; no methods take locks because nothing else is
// allowed to touch it. All cross-goroutine access goes through serialized
// snapshots.
type State struct {
	world      *world.World
	characters map[uuid.UUID]*Character
	crafts     map[uuid.UUID]*physics.Craft

	// Ambient world mood, nudged by the engine's random events.
	Day             int    `json:"day"`
	ChocolateRation int    `json:"chocolate_ration"`
	CurrentEnemy    string `json:"current_enemy"`
}

func NewState(w *world.World) *State {
	return &State{
		world:           w,
		characters:      map[uuid.UUID]*Character{},
		crafts:          map[uuid.UUID]*physics.Craft{},
		Day:             1,
		ChocolateRation: 30,
		CurrentEnemy:    "Eurasia",
	}
}

// World returns the read-only content aggregate.
func (s *State) World() *world.World {
	return s.world
}

// Character returns the character for an identity, or nil.
func (s *State) Character(id uuid.UUID) *Character {
	return s.characters[id]
}

// AddCharacter registers a character and its flight entity for an identity.
// At most one character per identity may exist.
func (s *State) AddCharacter(id uuid.UUID, c *Character) error {
	if _, exists := s.characters[id]; exists {
		return ErrCharacterExists
	}
	s.characters[id] = c
	craft := physics.NewCraft()
	s.crafts[id] = &craft
	return nil
}

// Remove drops an identity's character and flight entity. It reports
// whether a character was present.
func (s *State) Remove(id uuid.UUID) bool {
	_, ok := s.characters[id]
	delete(s.characters, id)
	delete(s.crafts, id)
	return ok
}

// Craft returns the flight entity for an identity, or nil.
func (s *State) Craft(id uuid.UUID) *physics.Craft {
	return s.crafts[id]
}

// StepCrafts advances every flight entity by dt seconds.
func (s *State) StepCrafts(dt float64) {
	for id, craft := range s.crafts {
		next := physics.Step(*craft, dt)
		*s.crafts[id] = next
	}
}

// ForEachCharacter calls fn for every registered character.
func (s *State) ForEachCharacter(fn func(uuid.UUID, *Character)) {
	for id, c := range s.characters {
		fn(id, c)
	}
}

// Snapshot assembles the complete broadcastable view. The result shares
// pointers with live state: the engine must serialize it before yielding
// the tick, then hand only the immutable bytes to connection writers.
func (s *State) Snapshot() *Snapshot {
	snap := &Snapshot{
		Players: make(map[string]*Character, len(s.characters)),
		Crafts:  make(map[string]physics.Craft, len(s.crafts)),
		World: WorldView{
			Day:             s.Day,
			ChocolateRation: s.ChocolateRation,
			CurrentEnemy:    s.CurrentEnemy,
			Locations:       s.world.Locations(),
			Npcs:            map[storage.Identifier]NpcView{},
		},
	}
	for id, npc := range s.world.Npcs() {
		snap.World.Npcs[id] = NpcView{
			Name:        npc.Name,
			Description: npc.Description,
			Location:    npc.Location,
		}
	}
	for id, c := range s.characters {
		snap.Players[id.String()] = c
	}
	for id, craft := range s.crafts {
		snap.Crafts[id.String()] = *craft
	}
	return snap
}
