package portalworld

import "fmt"

// State is a snapshot of one episode of PortalWorld. A State is a
// plain value: copying it copies the whole episode.
type State struct {
	Agent   Point
	Food    Point
	PortalA Point
	PortalB Point

	// Score counts how many times the agent reached the food since the
	// last reset
	Score int

	// Terminated is set when the agent walks into a wall. A terminated
	// State is frozen until it is reset.
	Terminated bool
}

// newState returns the starting state of an episode on an n x n grid
func newState(n int, placement Placement) State {
	return State{
		Agent:   center(n),
		Food:    placement.Food,
		PortalA: placement.PortalA,
		PortalB: placement.PortalB,
	}
}

// Placement returns the food and portal cells of the state
func (s State) Placement() Placement {
	return Placement{s.Food, s.PortalA, s.PortalB}
}

// place moves the food and both portals to new cells
func (s *State) place(p Placement) {
	s.Food = p.Food
	s.PortalA = p.PortalA
	s.PortalB = p.PortalB
}

// Validate checks that the state is a legal state of an n x n grid
func (s State) Validate(n int) error {
	named := []struct {
		name string
		p    Point
	}{
		{"agent", s.Agent},
		{"food", s.Food},
		{"portal A", s.PortalA},
		{"portal B", s.PortalB},
	}
	for _, c := range named {
		if !c.p.In(n) {
			return fmt.Errorf("validate: %s %v outside %dx%d grid", c.name,
				c.p, n, n)
		}
	}

	if s.Score < 0 {
		return fmt.Errorf("validate: negative score %d", s.Score)
	}

	if !s.Terminated && !s.Placement().Distinct() {
		return fmt.Errorf("validate: food %v, portal A %v, and portal B %v "+
			"must be distinct", s.Food, s.PortalA, s.PortalB)
	}
	return nil
}

func (s State) String() string {
	return fmt.Sprintf("Agent: %v  |  Food: %v  |  Portals: %v <-> %v  |  "+
		"Score: %d  |  Terminated: %v", s.Agent, s.Food, s.PortalA, s.PortalB,
		s.Score, s.Terminated)
}
