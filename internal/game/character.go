package game

import (
	"github.com/pixil98/go-oceania/internal/storage"
)

// Occupation is a character's assigned Party role. The set is closed; an
// unknown occupation is a domain fault at creation time.
type Occupation string

const (
	OccupationRecordsWorker  Occupation = "Records Department Worker"
	OccupationMaintenance    Occupation = "Maintenance Technician"
	OccupationSpyInstructor  Occupation = "Junior Spy Instructor"
	OccupationFictionWriter  Occupation = "Fiction Department Writer"
)

// ParseOccupation validates a client-supplied occupation string.
func ParseOccupation(s string) (Occupation, bool) {
	switch Occupation(s) {
	case OccupationRecordsWorker, OccupationMaintenance, OccupationSpyInstructor, OccupationFictionWriter:
		return Occupation(s), true
	default:
		return "", false
	}
}

// KnowledgeTopics are the forbidden concepts a character can come to
// understand. Every character starts with all of them at zero.
var KnowledgeTopics = []string{
	"non-aggression",
	"voluntary-exchange",
	"free-market",
	"private-property",
	"decentralization",
}

// Character is one player's RPG state. It is owned by the engine goroutine;
// nothing outside the engine mutates it.
type Character struct {
	Name       string             `json:"name"`
	Occupation Occupation         `json:"occupation"`
	Location   storage.Identifier `json:"location"`

	Health          Stat `json:"health"`
	Loyalty         Stat `json:"loyalty"`
	Suspicion       Stat `json:"suspicion"`
	Thoughtcrime    Stat `json:"thoughtcrime"`
	Rebellion       Stat `json:"rebellion"`
	EconomicFreedom Stat `json:"economic_freedom"`

	Journal   []string `json:"journal"`
	Inventory []string `json:"inventory"`
	Rations   int      `json:"rations"`

	Relationships  map[storage.Identifier]int `json:"relationships"` // npc -> trust, -100..100
	Knowledge      map[string]Stat            `json:"knowledge"`     // topic -> understanding
	TasksCompleted int                        `json:"tasks_completed"`
}

// NewCharacter creates a character at the starting location with default
// stats, adjusted for occupation: working with rewritten history erodes
// loyalty, instructing spies builds cover, writing fiction breeds
// dangerous thoughts.
func NewCharacter(name string, occupation Occupation, start storage.Identifier) *Character {
	c := &Character{
		Name:          name,
		Occupation:    occupation,
		Location:      start,
		Health:        100,
		Loyalty:       50,
		Suspicion:     0,
		Thoughtcrime:  0,
		Relationships: map[storage.Identifier]int{},
		Knowledge:     map[string]Stat{},
	}

	for _, topic := range KnowledgeTopics {
		c.Knowledge[topic] = 0
	}

	switch occupation {
	case OccupationRecordsWorker:
		c.Loyalty = c.Loyalty.Add(-5)
		c.Thoughtcrime = c.Thoughtcrime.Add(10)
	case OccupationSpyInstructor:
		c.Loyalty = c.Loyalty.Add(15)
		c.Suspicion = c.Suspicion.Add(-10)
	case OccupationFictionWriter:
		c.Thoughtcrime = c.Thoughtcrime.Add(15)
	}

	return c
}

// Trust returns the character's standing with an NPC (0 if never met).
func (c *Character) Trust(npc storage.Identifier) int {
	return c.Relationships[npc]
}

// AddTrust moves the character's standing with an NPC, clamped to [-100,100].
func (c *Character) AddTrust(npc storage.Identifier, delta int) {
	v := c.Relationships[npc] + delta
	if v < -100 {
		v = -100
	}
	if v > 100 {
		v = 100
	}
	c.Relationships[npc] = v
}

// Understanding returns how well the character grasps a knowledge topic.
func (c *Character) Understanding(topic string) Stat {
	return c.Knowledge[topic]
}

// Learn raises understanding of a topic and tracks the overall economic
// freedom score alongside it.
func (c *Character) Learn(topic string, amount int) {
	c.Knowledge[topic] = c.Knowledge[topic].Add(amount)
	c.EconomicFreedom = c.EconomicFreedom.Add(amount / 2)
}

// GrantItem adds an item id to the inventory. Duplicates are allowed; the
// inventory is an unordered bag.
func (c *Character) GrantItem(item string) {
	c.Inventory = append(c.Inventory, item)
}

// Dead reports whether the character's health has run out.
func (c *Character) Dead() bool {
	return c.Health <= 0
}

// Arrested reports whether suspicion has peaked and the Thought Police
// have come for the character.
func (c *Character) Arrested() bool {
	return c.Suspicion >= StatMax
}
