package resolver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pixil98/go-oceania/internal/game"
	"github.com/pixil98/go-oceania/internal/protocol"
)

func (r *Resolver) createCharacter(state *game.State, id uuid.UUID, in *protocol.CreateCharacter) (*Result, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, NewUserError("A name is required. Even in Oceania, you are somebody.")
	}

	occupation, ok := game.ParseOccupation(in.Occupation)
	if !ok {
		return nil, NewUserError(fmt.Sprintf("The Party has no record of the occupation %q.", in.Occupation))
	}

	c := game.NewCharacter(name, occupation, r.start)
	err := state.AddCharacter(id, c)
	if err != nil {
		if errors.Is(err, game.ErrCharacterExists) {
			return nil, NewUserError("You already have a character. There is no starting over.")
		}
		return nil, fmt.Errorf("adding character: %w", err)
	}

	loc, err := r.location(c)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	res.narrate(fmt.Sprintf(
		"You are %s, %s. You wake in %s. %s The telescreen in the corner is already watching.",
		c.Name, c.Occupation, loc.Name, loc.Description))
	res.ToOthers = append(res.ToOthers, &protocol.PlayerJoined{
		PlayerID:  id.String(),
		Character: c,
	})
	return res, nil
}
