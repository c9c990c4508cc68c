package policy

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/portalworld/agent"
	ts "github.com/samuelfneumann/portalworld/timestep"
)

// EGreedy implements an ε-greedy policy over a set of discrete actions.
// With probability ε an action is chosen uniformly at random, otherwise
// the action of the greedy policy is chosen.
type EGreedy struct {
	greedy  agent.Policy
	actions int
	epsilon float64
	seed    rand.Source // Seed for random number generation
}

// NewEGreedy constructs a new EGreedy policy, where e=epsilon is the
// probability with which a random action is selected
func NewEGreedy(greedy agent.Policy, e float64, actions int,
	seed uint64) *EGreedy {
	source := rand.NewSource(seed)

	return &EGreedy{greedy, actions, e, source}
}

// SelectAction selects an action from an ε-greedy policy
func (e *EGreedy) SelectAction(t ts.TimeStep) *mat.VecDense {
	// Get the greedy action
	greedyAction := int(e.greedy.SelectAction(t).AtVec(0))

	// Calculate the ε probability of choosing any action at random
	prob := e.epsilon / float64(e.actions)
	actionProbabilites := make([]float64, e.actions)
	for i := 0; i < e.actions; i++ {
		actionProbabilites[i] = prob
	}

	// Adjust the probability of choosing the greedy action
	actionProbabilites[greedyAction] += (1.0 - e.epsilon)

	// Construct a categorical distribution over actions using action
	// probabilities
	dist := distuv.NewCategorical(actionProbabilites, e.seed)

	// Sample an action given the action probabilites and return
	return mat.NewVecDense(1, []float64{dist.Rand()})
}
