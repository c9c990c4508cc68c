package portalworld

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"
)

// Observation channels. Both portals share a single channel, so an
// observation does not tell which portal is which.
const (
	AgentChannel int = iota
	FoodChannel
	PortalChannel

	Channels
)

// Encode returns the observation of state s on an n x n grid: three
// stacked binary occupancy grids flattened into a vector, with cell
// (x, y) of channel c at index c*n*n + x*n + y. The score and
// termination of s are not observed.
func Encode(s State, n int) *mat.VecDense {
	obs := mat.NewVecDense(Channels*n*n, nil)
	obs.SetVec(index(AgentChannel, s.Agent, n), 1.0)
	obs.SetVec(index(FoodChannel, s.Food, n), 1.0)
	obs.SetVec(index(PortalChannel, s.PortalA, n), 1.0)
	obs.SetVec(index(PortalChannel, s.PortalB, n), 1.0)
	return obs
}

// Tensor returns a view of an observation as a tensor of shape
// (3, n, n). The tensor shares its backing data with obs unless obs is
// strided, in which case the data is copied.
func Tensor(obs *mat.VecDense, n int) (*tensor.Dense, error) {
	if obs.Len() != Channels*n*n {
		return nil, fmt.Errorf("tensor: observation of length %d cannot "+
			"be reshaped to (%d, %d, %d)", obs.Len(), Channels, n, n)
	}

	var data []float64
	if raw := obs.RawVector(); raw.Inc == 1 {
		data = raw.Data[:obs.Len()]
	} else {
		data = make([]float64, obs.Len())
		for i := range data {
			data[i] = obs.AtVec(i)
		}
	}

	return tensor.New(
		tensor.WithShape(Channels, n, n),
		tensor.WithBacking(data),
	), nil
}

// Decode recovers the agent cell, the food cell, and the portal cells
// from an observation. Portal cells are returned in the order they
// appear in the observation.
func Decode(obs *mat.VecDense, n int) (agent, food Point, portals []Point,
	err error) {
	grid, err := Tensor(obs, n)
	if err != nil {
		return Point{}, Point{}, nil, fmt.Errorf("decode: %w", err)
	}

	cells := make([][]Point, Channels)
	for c := 0; c < Channels; c++ {
		for x := 0; x < n; x++ {
			for y := 0; y < n; y++ {
				v, err := grid.At(c, x, y)
				if err != nil {
					return Point{}, Point{}, nil, fmt.Errorf("decode: %w", err)
				}
				if v.(float64) != 0 {
					cells[c] = append(cells[c], Point{x, y})
				}
			}
		}
	}

	if len(cells[AgentChannel]) != 1 || len(cells[FoodChannel]) != 1 {
		return Point{}, Point{}, nil, fmt.Errorf("decode: agent and food "+
			"channels must each be one-hot, found %d and %d cells",
			len(cells[AgentChannel]), len(cells[FoodChannel]))
	}

	return cells[AgentChannel][0], cells[FoodChannel][0],
		cells[PortalChannel], nil
}

// index returns the position of cell p of channel c in an observation
func index(c int, p Point, n int) int {
	return c*n*n + p.X*n + p.Y
}
