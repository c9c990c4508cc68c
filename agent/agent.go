// Package agent defines the interface between an environment and the
// process choosing its actions
package agent

import (
	"gonum.org/v1/gonum/mat"

	ts "github.com/samuelfneumann/portalworld/timestep"
)

// Agent determines the implementation details of an agent or algorithm
//
// An Agent is composed of a Learner, which learns from the transitions
// it observes, and a Policy which chooses actions in each state.
type Agent interface {
	Learner
	Policy
}

// Learner observes environment transitions and learns from them
type Learner interface {
	ObserveFirst(ts.TimeStep)
	Observe(action *mat.VecDense, nextObs ts.TimeStep)
	Step() // Performs an update
}

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions.
type Policy interface {
	SelectAction(t ts.TimeStep) *mat.VecDense
}

// nonLearning turns a Policy into an Agent which never learns
type nonLearning struct {
	Policy
}

// NonLearning returns an Agent which acts with p and ignores everything
// it observes
func NonLearning(p Policy) Agent {
	return nonLearning{p}
}

// ObserveFirst does nothing
func (nonLearning) ObserveFirst(ts.TimeStep) {}

// Observe does nothing
func (nonLearning) Observe(*mat.VecDense, ts.TimeStep) {}

// Step does nothing
func (nonLearning) Step() {}
