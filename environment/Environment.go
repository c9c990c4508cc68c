// Package environment outlines the interfaces and structs needed to
// implement concrete environments
package environment

import (
	"gonum.org/v1/gonum/mat"

	ts "github.com/samuelfneumann/portalworld/timestep"
)

// Starter implements a distribution of starting states and samples
// starting states for environments
type Starter interface {
	Start() *mat.VecDense
}

// Ender determines when an episode ends. If the episode should end,
// End adjusts the TimeStep so that its StepType is timestep.Last and
// records the reason the episode ended.
type Ender interface {
	End(*ts.TimeStep) bool
}

// Environment implements a simulated environment. Environments start
// ready to use once constructed.
type Environment interface {
	Reset() (ts.TimeStep, error) // Resets between episodes
	Step(action *mat.VecDense) (ts.TimeStep, bool, error)
	CurrentTimeStep() ts.TimeStep

	RewardSpec() Spec
	DiscountSpec() Spec
	ObservationSpec() Spec
	ActionSpec() Spec
}

// Grid is an Environment laid out on a 2D grid of cells
type Grid interface {
	Environment
	Dims() (r, c int)
}
