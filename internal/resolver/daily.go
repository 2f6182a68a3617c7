package resolver

import (
	"github.com/google/uuid"

	"github.com/pixil98/go-oceania/internal/game"
)

// search rummages through the current location. There is a modest chance of
// turning something up, and a safety-weighted chance of being noticed doing
// it.
func (r *Resolver) search(state *game.State, id uuid.UUID) (*Result, error) {
	c, err := r.character(state, id)
	if err != nil {
		return nil, err
	}
	loc, err := r.location(c)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	switch r.rng.Intn(6) {
	case 0:
		c.Rations++
		res.narrate("Tucked behind a loose panel you find an unredeemed ration coupon. You pocket it quickly.")
	case 1:
		c.GrantItem("razor-blade")
		res.narrate("You find a razor blade, still wrapped. Genuinely scarce. You take it.")
	default:
		res.narrate("You search the place and find nothing but dust and the smell of boiled cabbage.")
	}

	if delta := r.surveillanceRisk(c, loc); delta > 0 {
		res.narrate("Somewhere behind you, a telescreen swivels. You straighten up too quickly.")
	}

	return r.finish(c, res), nil
}

// work puts in a shift for the Party. It earns rations and a sliver of
// standing, and it wears the body down.
func (r *Resolver) work(state *game.State, id uuid.UUID) (*Result, error) {
	c, err := r.character(state, id)
	if err != nil {
		return nil, err
	}
	loc, err := r.location(c)
	if err != nil {
		return nil, err
	}

	c.TasksCompleted++
	c.Rations += 1 + r.rng.Intn(2)
	c.Loyalty = c.Loyalty.Add(2)
	c.Health = c.Health.Add(-3)

	res := &Result{}
	res.narrate("You put in a long shift. The work is grey and endless, but your ration book grows a little thicker.")

	if delta := r.surveillanceRisk(c, loc); delta > 0 {
		res.narrate("Your supervisor lingers by your desk a moment too long before moving on.")
	}

	return r.finish(c, res), nil
}

// rest recovers health. Spending a ration makes the rest count for more.
func (r *Resolver) rest(state *game.State, id uuid.UUID) (*Result, error) {
	c, err := r.character(state, id)
	if err != nil {
		return nil, err
	}
	loc, err := r.location(c)
	if err != nil {
		return nil, err
	}

	gain := 5 + r.rng.Intn(5)
	res := &Result{}
	if c.Rations > 0 {
		c.Rations--
		gain += 5
		res.narrate("You eat a sparse meal of bread and Victory Gin, then sleep. You wake feeling almost restored.")
	} else {
		res.narrate("You sleep on an empty stomach. The rest helps, a little.")
	}
	c.Health = c.Health.Add(gain)

	if delta := r.surveillanceRisk(c, loc); delta > 0 {
		res.narrate("You wake with the uneasy certainty that someone looked in on you while you slept.")
	}

	return r.finish(c, res), nil
}
