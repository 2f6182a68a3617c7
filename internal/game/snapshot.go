package game

import (
	"github.com/pixil98/go-oceania/internal/physics"
	"github.com/pixil98/go-oceania/internal/storage"
	"github.com/pixil98/go-oceania/internal/world"
)

// Snapshot is the full broadcastable view of one tick. There are no partial
// or delta snapshots; every tick publishes a complete self-consistent view
// and clients diff locally if they care.
type Snapshot struct {
	Players map[string]*Character    `json:"players"`
	Crafts  map[string]physics.Craft `json:"crafts"`
	World   WorldView                `json:"world"`
}

// WorldView is the world as clients see it: the location map, who is where,
// and the ambient state the engine drifts over time.
type WorldView struct {
	Day             int                                    `json:"day"`
	ChocolateRation int                                    `json:"chocolate_ration"`
	CurrentEnemy    string                                 `json:"current_enemy"`
	Locations       map[storage.Identifier]*world.Location `json:"locations"`
	Npcs            map[storage.Identifier]NpcView         `json:"npcs"`
}

// NpcView is the client-visible slice of an NPC: who they are and where
// they stand. Response tables and trust thresholds stay server-side.
type NpcView struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Location    storage.Identifier `json:"location"`
}
