package portalworld

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Action is one of the four directional moves
//
//	Action		Meaning
//	  0			North (+y)
//	  1			East  (+x)
//	  2			South (-y)
//	  3			West  (-x)
type Action int

const (
	North Action = iota
	East
	South
	West
)

// NumActions is the number of legal actions
const NumActions int = 4

var deltas = [NumActions]Point{
	North: {0, 1},
	East:  {1, 0},
	South: {0, -1},
	West:  {-1, 0},
}

// Valid returns whether a is one of the four directional moves
func (a Action) Valid() bool {
	return a >= North && a <= West
}

// Delta returns the one-cell displacement of the action
func (a Action) Delta() Point {
	return deltas[a]
}

func (a Action) String() string {
	switch a {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ActionFromVec converts a 1-dimensional action vector into an Action
func ActionFromVec(v *mat.VecDense) (Action, error) {
	if v == nil || v.Len() != 1 {
		return 0, fmt.Errorf("actionFromVec: %w: actions must be "+
			"1-dimensional", ErrInvalidAction)
	}

	value := v.AtVec(0)
	a := Action(int(value))
	if float64(a) != value || !a.Valid() {
		return 0, fmt.Errorf("actionFromVec: %w: %v ∉ (0, 1, 2, 3)",
			ErrInvalidAction, value)
	}
	return a, nil
}

// Vec returns the action as a 1-dimensional vector
func (a Action) Vec() *mat.VecDense {
	return mat.NewVecDense(1, []float64{float64(a)})
}
