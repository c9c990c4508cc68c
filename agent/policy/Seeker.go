package policy

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/portalworld/environment/portalworld"
	ts "github.com/samuelfneumann/portalworld/timestep"
	"github.com/samuelfneumann/portalworld/utils/intutils"
	"github.com/samuelfneumann/portalworld/utils/matutils"
)

// Seeker greedily walks toward the food in a PortalWorld. It prefers
// the move which most reduces the Manhattan distance to the food and
// never walks into a wall, but it knows nothing about portals.
//
// Seeker reads stacked occupancy grid observations, so it cannot be
// used with wrapped environments which change the observation.
type Seeker struct {
	n int
}

// NewSeeker returns a new Seeker for an n x n PortalWorld
func NewSeeker(n int) *Seeker {
	return &Seeker{n}
}

// SelectAction selects the greedy action toward the food. If the
// observation cannot be decoded, North is selected.
func (s *Seeker) SelectAction(t ts.TimeStep) *mat.VecDense {
	agent, food, _, err := portalworld.Decode(t.Observation, s.n)
	if err != nil {
		return portalworld.North.Vec()
	}

	preferences := mat.NewVecDense(portalworld.NumActions, nil)
	for a := portalworld.North; a <= portalworld.West; a++ {
		next := agent.Add(a.Delta())
		if !next.In(s.n) {
			preferences.SetVec(int(a), math.Inf(-1))
			continue
		}
		dist := intutils.Abs(food.X-next.X) + intutils.Abs(food.Y-next.Y)
		preferences.SetVec(int(a), -float64(dist))
	}

	return portalworld.Action(matutils.MaxVec(preferences)).Vec()
}
