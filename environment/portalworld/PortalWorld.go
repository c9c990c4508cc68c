// Package portalworld implements an episodic grid world in which an
// agent collects food and travels through a pair of linked portals.
//
// The agent starts each episode in the centre of an N x N grid. Every
// step it moves one cell north, east, south, or west. Walking onto the
// food increases the score by one and places the food and both portals
// on new random cells. Walking onto a portal moves the agent to the
// other portal. Walking into a wall ends the episode, and the reward
// on that final step is the score of the whole episode. All other
// steps have a reward of 0.
package portalworld

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	env "github.com/samuelfneumann/portalworld/environment"
	ts "github.com/samuelfneumann/portalworld/timestep"
	"github.com/samuelfneumann/portalworld/utils/matutils"
)

const (
	// DefaultDimension is the grid size used when none is configured
	DefaultDimension int = 10

	// DefaultDiscount is the discount used when none is configured
	DefaultDiscount float64 = 1.0
)

// Phase is the externally visible state of an episode
type Phase int

const (
	Active Phase = iota
	Terminated
)

func (p Phase) String() string {
	if p == Terminated {
		return "Terminated"
	}
	return "Active"
}

// Config configures a PortalWorld
type Config struct {
	// Dimension is the side length N of the N x N grid
	Dimension int

	// Discount is the discount reported on every TimeStep
	Discount float64

	// EpisodeCutoff ends episodes after this many steps. Zero disables
	// the cutoff.
	EpisodeCutoff int

	// MaxPlacementAttempts bounds how often the food and portals may be
	// resampled in a single placement. Zero or less means unbounded.
	MaxPlacementAttempts int

	TransitionOptions
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Dimension: DefaultDimension,
		Discount:  DefaultDiscount,
	}
}

// Validate checks that the configuration describes a legal environment
func (c Config) Validate() error {
	if c.Dimension < MinDimension {
		return fmt.Errorf("validate: %w: dimension %d < %d",
			ErrInvalidConfiguration, c.Dimension, MinDimension)
	}
	if c.Discount < 0 || c.Discount > 1 {
		return fmt.Errorf("validate: %w: discount %v ∉ [0, 1]",
			ErrInvalidConfiguration, c.Discount)
	}
	if c.EpisodeCutoff < 0 {
		return fmt.Errorf("validate: %w: negative episode cutoff %d",
			ErrInvalidConfiguration, c.EpisodeCutoff)
	}
	return nil
}

// PortalWorld implements the PortalWorld environment. It owns the state
// of a single episode, which it advances with Transition and observes
// with Encode.
//
// An episode is either Active or Terminated. Reset always starts a new
// Active episode. Stepping a Terminated episode first resets it, then
// applies the action to the fresh episode, so an agent never has to
// call Reset between episodes.
//
// PortalWorld is not safe for concurrent use. Run independent episodes
// on independent PortalWorlds.
//
// PortalWorld implements the environment.Grid interface.
type PortalWorld struct {
	n        int
	discount float64
	opts     TransitionOptions
	cutoff   env.Ender

	placer      *Placer
	state       State
	currentStep ts.TimeStep
}

// New creates a new PortalWorld whose random placements are drawn from
// a source seeded with seed. The first TimeStep of the first episode is
// returned along with the environment.
func New(c Config, seed uint64) (*PortalWorld, ts.TimeStep, error) {
	if err := c.Validate(); err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: %w", err)
	}

	placer, err := NewPlacer(c.Dimension, c.MaxPlacementAttempts, seed)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: %w", err)
	}

	return newPortalWorld(c, placer)
}

// NewWithPlacer creates a new PortalWorld which places food and portals
// with p. The dimension of p overrides that of c.
func NewWithPlacer(c Config, p *Placer) (*PortalWorld, ts.TimeStep, error) {
	c.Dimension = p.Dimension()
	if err := c.Validate(); err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newWithPlacer: %w", err)
	}
	return newPortalWorld(c, p)
}

func newPortalWorld(c Config, p *Placer) (*PortalWorld, ts.TimeStep, error) {
	var cutoff env.Ender
	if c.EpisodeCutoff > 0 {
		cutoff = env.NewStepLimit(c.EpisodeCutoff)
	}

	w := &PortalWorld{
		n:        c.Dimension,
		discount: c.Discount,
		opts:     c.TransitionOptions,
		cutoff:   cutoff,
		placer:   p,
	}

	step, err := w.Reset()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: %w", err)
	}
	return w, step, nil
}

// Reset starts a new episode and returns its first TimeStep
func (w *PortalWorld) Reset() (ts.TimeStep, error) {
	placement, err := w.placer.Place()
	if err != nil {
		return ts.TimeStep{}, fmt.Errorf("reset: %w", err)
	}

	w.state = newState(w.n, placement)
	w.currentStep = ts.New(ts.First, 0, w.discount, Encode(w.state, w.n), 0)
	return w.currentStep, nil
}

// Step takes one environmental step given a 1-dimensional action
// vector holding one of the actions in {0, 1, 2, 3}. It returns the
// next TimeStep and whether the episode has ended. Illegal actions
// return an error wrapping ErrInvalidAction and leave the environment
// untouched.
func (w *PortalWorld) Step(action *mat.VecDense) (ts.TimeStep, bool, error) {
	a, err := ActionFromVec(action)
	if err != nil {
		return ts.TimeStep{}, false, fmt.Errorf("step: %w", err)
	}
	return w.Act(a)
}

// Act takes one environmental step with action a. See Step.
func (w *PortalWorld) Act(a Action) (ts.TimeStep, bool, error) {
	ended := w.Phase() == Terminated
	next, reward, done, err := Transition(w.state, a, w.n, w.placer, w.opts)
	if err != nil {
		return ts.TimeStep{}, false, fmt.Errorf("act: %w", err)
	}

	number := w.currentStep.Number + 1
	if ended {
		number = 1
	}

	step := ts.New(ts.Mid, reward, w.discount, Encode(next, w.n), number)
	if done {
		step.StepType = ts.Last
		step.SetEnd(ts.TerminalStateReached)
	} else if w.cutoff != nil && w.cutoff.End(&step) {
		next.Terminated = true
		step.Reward = float64(next.Score)
		done = true
	}

	w.state = next
	w.currentStep = step
	return step, done, nil
}

// Phase returns whether the current episode is Active or Terminated
func (w *PortalWorld) Phase() Phase {
	if w.state.Terminated {
		return Terminated
	}
	return Active
}

// State returns a copy of the current state of the environment
func (w *PortalWorld) State() State {
	return w.state
}

// SetState replaces the state of the current episode. The state must
// be a legal state of the grid. The current TimeStep observes s and is
// Last, with the score as reward, if s is terminated.
func (w *PortalWorld) SetState(s State) error {
	if err := s.Validate(w.n); err != nil {
		return fmt.Errorf("setState: %w", err)
	}
	w.state = s

	step := w.currentStep
	step.Observation = Encode(s, w.n)
	switch {
	case s.Terminated:
		step.StepType = ts.Last
		step.Reward = float64(s.Score)
		if step.EndType() == ts.Unknown {
			step.SetEnd(ts.TerminalStateReached)
		}
	case step.Last():
		step.StepType = ts.Mid
		step.Reward = 0
		step.SetEnd(ts.Unknown)
	}
	w.currentStep = step
	return nil
}

// CurrentTimeStep returns the most recent TimeStep of the environment
func (w *PortalWorld) CurrentTimeStep() ts.TimeStep {
	return w.currentStep
}

// Dims returns the number of rows and columns of the grid
func (w *PortalWorld) Dims() (r, c int) {
	return w.n, w.n
}

// ObservationShape returns the shape of observations before they are
// flattened: (channels, N, N)
func (w *PortalWorld) ObservationShape() []int {
	return []int{Channels, w.n, w.n}
}

// ActionSpec returns the action specification of the environment
func (w *PortalWorld) ActionSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{float64(North)})
	upperBound := mat.NewVecDense(1, []float64{float64(West)})

	return env.NewSpec(shape, env.Action, lowerBound, upperBound,
		env.Discrete)
}

// ObservationSpec returns the observation specification of the
// environment. Observations are flattened (3, N, N) occupancy grids
// with values in {0, 1}.
func (w *PortalWorld) ObservationSpec() env.Spec {
	features := Channels * w.n * w.n
	shape := mat.NewVecDense(features, nil)
	lowerBound := mat.NewVecDense(features, nil)
	upperBound := matutils.VecOnes(features)

	return env.NewSpec(shape, env.Observation, lowerBound, upperBound,
		env.Discrete)
}

// DiscountSpec returns the discounting specification of the environment
func (w *PortalWorld) DiscountSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{w.discount})
	upperBound := mat.NewVecDense(1, []float64{w.discount})

	return env.NewSpec(shape, env.Discount, lowerBound, upperBound,
		env.Continuous)
}

// RewardSpec returns the reward specification of the environment.
// Rewards are non-negative integers with no upper bound.
func (w *PortalWorld) RewardSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{0})
	upperBound := mat.NewVecDense(1, []float64{math.Inf(1)})

	return env.NewSpec(shape, env.Reward, lowerBound, upperBound,
		env.Discrete)
}

// String returns the environment as a string
func (w *PortalWorld) String() string {
	str := "PortalWorld | %v  |  Phase: %v  |  Bounds: (%d, %d)"
	return fmt.Sprintf(str, w.state, w.Phase(), w.n, w.n)
}
