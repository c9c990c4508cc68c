package environment

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// CategoricalStarter returns starting states as vectors sampled from
// a multi-dimensional uniform categorical distribution. Dimension i is
// sampled from (0, 1, 2, ... bounds[i]-1). All dimensions draw from
// the same random source, so a fixed seed fixes the whole sequence of
// samples.
type CategoricalStarter struct {
	features int
	seed     uint64
	rand     []distuv.Categorical
}

// NewCategoricalStarter returns a new CategoricalStarter, sampling
// dimension i from (0, 1, 2, ... bounds[i]-1)
func NewCategoricalStarter(bounds []int, seed uint64) *CategoricalStarter {
	return NewCategoricalStarterFrom(bounds, rand.NewSource(seed), seed)
}

// NewCategoricalStarterFrom returns a new CategoricalStarter which
// draws from an existing random source
func NewCategoricalStarterFrom(bounds []int, source rand.Source,
	seed uint64) *CategoricalStarter {
	rand := make([]distuv.Categorical, len(bounds))
	for i := range rand {
		// Create the weights for the uniform categorical distribution
		weights := make([]float64, bounds[i])
		for j := range weights {
			weights[j] = 1.0 / float64(len(weights))
		}

		rand[i] = distuv.NewCategorical(weights, source)
	}

	return &CategoricalStarter{len(bounds), seed, rand}
}

// Start returns a starting state vector
func (c *CategoricalStarter) Start() *mat.VecDense {
	start := make([]float64, c.features)
	for i := range start {
		start[i] = c.rand[i].Rand()
	}

	return mat.NewVecDense(c.features, start)
}

// Seed returns the seed the starter was created with
func (c *CategoricalStarter) Seed() uint64 {
	return c.seed
}
