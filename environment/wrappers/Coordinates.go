// Package wrappers provides wrappers for environments
package wrappers

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	env "github.com/samuelfneumann/portalworld/environment"
	ts "github.com/samuelfneumann/portalworld/timestep"
	"github.com/samuelfneumann/portalworld/utils/floatutils"
	"github.com/samuelfneumann/portalworld/utils/matutils"
)

// CoordinateFeatures is the number of features in an observation of a
// Coordinates environment
const CoordinateFeatures int = 8

// occupancyChannels is the number of stacked occupancy grids in the
// observations of the wrapped environment
const occupancyChannels int = 3

// Coordinates converts the stacked occupancy grid observations of a
// grid environment into the (x, y) coordinates of the occupied cells:
//
//	[agent x, agent y, food x, food y, portal x, portal y, portal x, portal y]
//
// The occupancy grids do not tell the portals apart, so the portal
// cells are listed in the order they appear in the occupancy grid.
type Coordinates struct {
	env.Grid

	currentTimeStep ts.TimeStep
}

// NewCoordinates returns a new Coordinates environment wrapper and the
// current timestep of the wrapped environment, converted
func NewCoordinates(e env.Grid) (*Coordinates, ts.TimeStep, error) {
	c := &Coordinates{Grid: e}

	step := e.CurrentTimeStep()
	newObs, err := c.getObs(step.Observation)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newCoordinates: %v", err)
	}

	step.Observation = newObs
	c.currentTimeStep = step

	return c, step, nil
}

// Reset resets the environment to some starting state
func (c *Coordinates) Reset() (ts.TimeStep, error) {
	step, err := c.Grid.Reset()
	if err != nil {
		return ts.TimeStep{}, err
	}

	newObs, err := c.getObs(step.Observation)
	if err != nil {
		return ts.TimeStep{}, fmt.Errorf("reset: could not calculate "+
			"observation: %v", err)
	}

	step.Observation = newObs
	c.currentTimeStep = step

	return step, nil
}

// Step takes one environmental step given some action
func (c *Coordinates) Step(action *mat.VecDense) (ts.TimeStep, bool, error) {
	step, _, err := c.Grid.Step(action)
	if err != nil {
		return ts.TimeStep{}, false, err
	}

	newObs, err := c.getObs(step.Observation)
	if err != nil {
		return ts.TimeStep{}, true, fmt.Errorf("step: could not calculate "+
			"observation: %v", err)
	}

	step.Observation = newObs
	c.currentTimeStep = step

	return step, step.Last(), nil
}

// CurrentTimeStep returns the current time step in the environment
func (c *Coordinates) CurrentTimeStep() ts.TimeStep {
	return c.currentTimeStep
}

// getObs returns the coordinate version of a stacked occupancy grid
func (c *Coordinates) getObs(obs *mat.VecDense) (*mat.VecDense, error) {
	rows, cols := c.Dims()
	cells := rows * cols
	if obs.Len() != occupancyChannels*cells {
		return nil, fmt.Errorf("getObs: observation length %d is not %d "+
			"grids of %dx%d", obs.Len(), occupancyChannels, rows, cols)
	}

	// Each channel must have exactly as many occupied cells as it has
	// entries in the coordinate observation
	want := []int{1, 1, 2}

	newObs := mat.NewVecDense(CoordinateFeatures, nil)
	feature := 0
	data := obs.RawVector().Data
	for channel := 0; channel < occupancyChannels; channel++ {
		grid := data[channel*cells : (channel+1)*cells]
		index := floatutils.Where(grid, func(v float64) bool {
			return v == 1.0
		})
		if len(index) != want[channel] {
			return nil, fmt.Errorf("getObs: channel %d has %d occupied "+
				"cells, want %d", channel, len(index), want[channel])
		}

		for _, i := range index {
			newObs.SetVec(feature, float64(i/cols))
			newObs.SetVec(feature+1, float64(i%cols))
			feature += 2
		}
	}

	return newObs, nil
}

// ObservationSpec returns the observation specification of the
// environment
func (c *Coordinates) ObservationSpec() env.Spec {
	rows, cols := c.Dims()

	shape := mat.NewVecDense(CoordinateFeatures, nil)
	low := mat.NewVecDense(CoordinateFeatures, nil)
	high := mat.NewVecDense(CoordinateFeatures, nil)
	for i := 0; i < CoordinateFeatures; i += 2 {
		high.SetVec(i, float64(rows-1))
		high.SetVec(i+1, float64(cols-1))
	}

	return env.NewSpec(shape, env.Observation, low, high, env.Discrete)
}

// String returns the string representation of the environment
func (c *Coordinates) String() string {
	return fmt.Sprintf("Coordinates: %v  |  Observation: %v", c.Grid,
		matutils.Format(c.currentTimeStep.Observation.T()))
}
