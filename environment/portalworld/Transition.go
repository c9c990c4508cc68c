package portalworld

import (
	"fmt"

	"github.com/samuelfneumann/portalworld/utils/intutils"
)

// TransitionOptions adjusts the order in which Transition resolves a
// step
type TransitionOptions struct {
	// TeleportBeforeMove makes an agent already standing on a portal
	// at the start of a step go through the portal instead of moving.
	// Portals are then not checked again after the move.
	TeleportBeforeMove bool
}

// Transition computes the result of taking action a in state s on an
// n x n grid, returning the next state, the reward, and whether the
// episode ended. Food and portals are placed with p whenever the food
// is eaten or the state must be reset.
//
// A step is resolved in this order:
//
//  1. A terminated state is first reset: the agent returns to the
//     centre, food and portals are placed anew, and the score is zeroed.
//  2. The agent moves one cell in the direction of a.
//  3. If the agent left the grid, it is clamped back onto the nearest
//     edge cell and the episode terminates.
//  4. If the agent is on the food, the score increases and food and
//     both portals are placed anew.
//  5. If the agent is on a portal, it is moved to the other portal.
//
// The reward is the score if the episode terminated and 0 otherwise.
//
// Transition does not modify s. If an error is returned, the returned
// State is s.
func Transition(s State, a Action, n int, p *Placer,
	opts TransitionOptions) (State, float64, bool, error) {
	if !a.Valid() {
		return s, 0, false, fmt.Errorf("transition: %w: %v ∉ (0, 1, 2, 3)",
			ErrInvalidAction, int(a))
	}

	next := s
	if next.Terminated {
		placement, err := p.Place()
		if err != nil {
			return s, 0, false, fmt.Errorf("transition: could not reset: %w",
				err)
		}
		next = newState(n, placement)
	}

	teleported := false
	if opts.TeleportBeforeMove {
		next.Agent, teleported = teleport(next)
	}
	if !teleported {
		next.Agent = next.Agent.Add(a.Delta())
	}

	// Walls
	if !next.Agent.In(n) {
		next.Agent = Point{
			intutils.Clamp(next.Agent.X, 0, n-1),
			intutils.Clamp(next.Agent.Y, 0, n-1),
		}
		next.Terminated = true
	}

	// Food
	if next.Agent == next.Food {
		placement, err := p.Place()
		if err != nil {
			return s, 0, false, fmt.Errorf("transition: could not place "+
				"food: %w", err)
		}
		next.Score++
		next.place(placement)
	}

	// Portals
	if !opts.TeleportBeforeMove {
		next.Agent, _ = teleport(next)
	}

	if next.Terminated {
		return next, float64(next.Score), true, nil
	}
	return next, 0, false, nil
}

// teleport returns the position of the agent after going through the
// portal it stands on, if any
func teleport(s State) (Point, bool) {
	switch s.Agent {
	case s.PortalA:
		return s.PortalB, true
	case s.PortalB:
		return s.PortalA, true
	}
	return s.Agent, false
}
