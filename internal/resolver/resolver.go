package resolver

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/pixil98/go-oceania/internal/game"
	"github.com/pixil98/go-oceania/internal/protocol"
	"github.com/pixil98/go-oceania/internal/storage"
	"github.com/pixil98/go-oceania/internal/world"
)

// Resolver turns client intents into state mutations and narrative. All
// randomness flows through the injected source so outcomes are reproducible
// under a fixed seed. A Resolver is only ever called from the engine
// goroutine.
type Resolver struct {
	world *world.World
	rng   *rand.Rand
	start storage.Identifier
}

func New(w *world.World, rng *rand.Rand, start storage.Identifier) *Resolver {
	return &Resolver{
		world: w,
		rng:   rng,
		start: start,
	}
}

// Resolve applies one intent for one identity. Domain faults come back as
// *UserError; anything else is a system error.
func (r *Resolver) Resolve(state *game.State, id uuid.UUID, intent protocol.Intent) (*Result, error) {
	switch in := intent.(type) {
	case *protocol.CreateCharacter:
		return r.createCharacter(state, id, in)
	case *protocol.Move:
		return r.move(state, id, in)
	case *protocol.Interact:
		return r.interact(state, id, in)
	case *protocol.JournalWrite:
		return r.journalWrite(state, id, in)
	case *protocol.Search:
		return r.search(state, id)
	case *protocol.Work:
		return r.work(state, id)
	case *protocol.Rest:
		return r.rest(state, id)
	case *protocol.Fly:
		return r.fly(state, id, in)
	case *protocol.SearchTexts:
		return r.searchTexts(state, id)
	case *protocol.ReadText:
		return r.readText(state, id, in)
	case *protocol.ShareKnowledge:
		return r.shareKnowledge(state, id, in)
	default:
		return nil, fmt.Errorf("no resolver for intent %q", intent.IntentKind())
	}
}

// character fetches the acting character or fails with a domain fault.
func (r *Resolver) character(state *game.State, id uuid.UUID) (*game.Character, error) {
	c := state.Character(id)
	if c == nil {
		return nil, NewUserError("You have no character yet. Create one first.")
	}
	return c, nil
}

// location resolves the character's current location. A character's
// location always resolves by construction; failure here is a bug, not a
// domain fault.
func (r *Resolver) location(c *game.Character) (*world.Location, error) {
	loc := r.world.Location(c.Location)
	if loc == nil {
		return nil, fmt.Errorf("character %q at unknown location %q", c.Name, c.Location)
	}
	return loc, nil
}

// surveillanceRisk rolls the location-safety-weighted suspicion check that
// backs search, work, and rest outcomes. Lower safety means both a higher
// chance of attracting attention and a larger suspicion increase. Returns
// the suspicion applied (0 when unnoticed).
func (r *Resolver) surveillanceRisk(c *game.Character, loc *world.Location) int {
	if r.rng.Intn(10) < loc.Safety*2 {
		return 0
	}
	delta := 2 + r.rng.Intn(world.SafetyMax+1-loc.Safety)
	c.Suspicion = c.Suspicion.Add(delta)
	return delta
}

// finish checks end states after an action's mutations. Death and arrest
// both mark the character for removal at the tick boundary.
func (r *Resolver) finish(c *game.Character, res *Result) *Result {
	if c.Dead() {
		res.narrate("Your health has run out. You succumb to the harsh realities of Oceania.")
		res.RemoveCharacter = true
	} else if c.Arrested() {
		res.narrate("The Thought Police arrive without warning. You are taken to the Ministry of Love. Your journey ends here.")
		res.RemoveCharacter = true
	}
	return res
}
