// Package policy implements simple policies which choose actions
// without learning
package policy

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	ts "github.com/samuelfneumann/portalworld/timestep"
)

// Uniform selects actions uniformly at random from a set of discrete
// actions
type Uniform struct {
	dist distuv.Categorical
}

// NewUniform returns a new Uniform policy over actions
// (0, 1, 2, ... actions-1)
func NewUniform(actions int, seed uint64) *Uniform {
	source := rand.NewSource(seed)
	return &Uniform{distuv.NewCategorical(uniform(actions), source)}
}

// SelectAction selects an action uniformly at random
func (u *Uniform) SelectAction(ts.TimeStep) *mat.VecDense {
	return mat.NewVecDense(1, []float64{u.dist.Rand()})
}

// uniform returns the probabilities of a uniform categorical
// distribution
func uniform(n int) []float64 {
	probs := make([]float64, n)
	for i := range probs {
		probs[i] = 1.0 / float64(n)
	}
	return probs
}
