package resolver

import (
	"strings"

	"github.com/google/uuid"

	"github.com/pixil98/go-oceania/internal/game"
	"github.com/pixil98/go-oceania/internal/protocol"
)

// journalWrite records a diary entry. Keeping a diary is not illegal, since
// nothing is illegal, but it is thoughtcrime all the same.
func (r *Resolver) journalWrite(state *game.State, id uuid.UUID, in *protocol.JournalWrite) (*Result, error) {
	c, err := r.character(state, id)
	if err != nil {
		return nil, err
	}

	entry := strings.TrimSpace(in.Entry)
	if entry == "" {
		return nil, NewUserError("The page stays blank. Write something, or put the pen down.")
	}

	c.Journal = append(c.Journal, entry)
	c.Thoughtcrime = c.Thoughtcrime.Add(5)

	res := &Result{}
	res.narrate("You write in the cream-laid pages, your hand unsteady. The act itself is the crime.")

	if r.rng.Intn(10) == 0 {
		c.Suspicion = c.Suspicion.Add(10)
		res.narrate("Too late, you realize the angle of the alcove was not quite what you thought. The telescreen may have seen the book.")
	}

	return r.finish(c, res), nil
}
