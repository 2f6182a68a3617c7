package resolver

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/pixil98/go-oceania/internal/game"
	"github.com/pixil98/go-oceania/internal/physics"
	"github.com/pixil98/go-oceania/internal/protocol"
)

// fly records the latest control deflections on the player's flight entity.
// The integrator consumes them on the next tick; fly itself never steps the
// simulation and produces no narrative.
func (r *Resolver) fly(state *game.State, id uuid.UUID, in *protocol.Fly) (*Result, error) {
	if _, err := r.character(state, id); err != nil {
		return nil, err
	}

	craft := state.Craft(id)
	if craft == nil {
		return nil, fmt.Errorf("identity %s has a character but no craft", id)
	}

	craft.Input = physics.ControlInput{
		Pitch:          in.Pitch,
		Roll:           in.Roll,
		Yaw:            in.Yaw,
		ThrottleChange: in.ThrottleChange,
	}

	return &Result{}, nil
}
