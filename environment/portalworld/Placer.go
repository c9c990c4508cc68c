package portalworld

import (
	"encoding"
	"fmt"

	"golang.org/x/exp/rand"

	env "github.com/samuelfneumann/portalworld/environment"
)

// MinDimension is the smallest grid which can hold three distinct
// placements with room left for the agent to move
const MinDimension int = 3

// Placement holds the cells of the food and of both portals
type Placement struct {
	Food    Point
	PortalA Point
	PortalB Point
}

// Distinct returns whether the food and both portals are on pairwise
// distinct cells
func (p Placement) Distinct() bool {
	return p.Food != p.PortalA && p.Food != p.PortalB &&
		p.PortalA != p.PortalB
}

// Placer randomly places the food and portals on an n x n grid. Cells
// are drawn uniformly along each axis from a random source owned by the
// Placer, so two Placers with the same seed produce the same sequence
// of placements.
type Placer struct {
	n           int
	maxAttempts int
	cells       env.Starter
	source      rand.Source
}

// NewPlacer returns a new Placer for an n x n grid. If maxAttempts is
// positive, Place gives up after drawing that many resamples in a
// single call. Otherwise Place resamples until it succeeds.
func NewPlacer(n, maxAttempts int, seed uint64) (*Placer, error) {
	return NewPlacerFrom(n, maxAttempts, rand.NewSource(seed))
}

// NewPlacerFrom returns a new Placer which draws cells from source
func NewPlacerFrom(n, maxAttempts int, source rand.Source) (*Placer, error) {
	if n < MinDimension {
		return nil, fmt.Errorf("newPlacer: %w: dimension %d < %d",
			ErrInvalidConfiguration, n, MinDimension)
	}

	cells := env.NewCategoricalStarterFrom([]int{n, n}, source, 0)
	return &Placer{
		n:           n,
		maxAttempts: maxAttempts,
		cells:       cells,
		source:      source,
	}, nil
}

// Dimension returns the side length of the grid the Placer places on
func (p *Placer) Dimension() int {
	return p.n
}

// Place returns a new placement. The food is drawn first, then portal
// A is redrawn until it differs from the food, then portal B is redrawn
// until it differs from both.
func (p *Placer) Place() (Placement, error) {
	var placement Placement
	resamples := 0

	placement.Food = p.cell()

	placement.PortalA = p.cell()
	for placement.PortalA == placement.Food {
		if err := p.spend(&resamples); err != nil {
			return Placement{}, err
		}
		placement.PortalA = p.cell()
	}

	placement.PortalB = p.cell()
	for placement.PortalB == placement.Food ||
		placement.PortalB == placement.PortalA {
		if err := p.spend(&resamples); err != nil {
			return Placement{}, err
		}
		placement.PortalB = p.cell()
	}

	return placement, nil
}

// spend uses up one resampling attempt
func (p *Placer) spend(resamples *int) error {
	*resamples++
	if p.maxAttempts > 0 && *resamples > p.maxAttempts {
		return fmt.Errorf("place: %w: no distinct cells after %d resamples",
			ErrPlacementExhausted, p.maxAttempts)
	}
	return nil
}

// cell draws a single uniformly random cell
func (p *Placer) cell() Point {
	v := p.cells.Start()
	return Point{int(v.AtVec(0)), int(v.AtVec(1))}
}

// randState returns the position of the Placer's random stream, or
// false if its source cannot be serialized
func (p *Placer) randState() ([]byte, bool) {
	m, ok := p.source.(encoding.BinaryMarshaler)
	if !ok {
		return nil, false
	}
	data, err := m.MarshalBinary()
	return data, err == nil
}

// setRandState moves the Placer's random stream to a position returned
// by randState
func (p *Placer) setRandState(data []byte) error {
	u, ok := p.source.(encoding.BinaryUnmarshaler)
	if !ok {
		return fmt.Errorf("setRandState: %w: random source %T cannot be "+
			"restored", ErrInvalidConfiguration, p.source)
	}
	if err := u.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("setRandState: %w", err)
	}
	return nil
}
