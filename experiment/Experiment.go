// Package experiment implements functionality for running an experiment
package experiment

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/samuelfneumann/portalworld/agent"
	"github.com/samuelfneumann/portalworld/agent/policy"
	"github.com/samuelfneumann/portalworld/environment"
	"github.com/samuelfneumann/portalworld/environment/envconfig"
	"github.com/samuelfneumann/portalworld/experiment/tracker"
)

// Experiment outlines structs that can run experiments. Experiments
// send each TimeStep to Trackers, which cache the data they track in
// RAM. The Save() function then saves all cached data to disk, usually
// after the experiment has been run. The Run() method will run all
// episodes until the maximum timestep limit is reached, and
// RunEpisode() will run a single episode.
type Experiment interface {
	Run(context.Context) error

	// RunEpisode returns whether the experiment has finished
	RunEpisode(context.Context) (bool, error)

	// Save all tracked data to disk
	Save() error

	// Adds a new tracker.Tracker to the (possibly already running)
	// experiment. Useful if you want to track data only after a
	// specified event.
	Register(t tracker.Tracker)
}

// Type is the kind of experiment to run
type Type string

const (
	OnlineExp Type = "OnlineExperiment"
)

// PolicyName names the policies an experiment can act with
type PolicyName string

const (
	Random PolicyName = "random"
	Seeker PolicyName = "seeker"
)

// Config represents a configuration of an experiment. Configs are JSON
// serializable.
type Config struct {
	Type

	// Seed seeds the environment and the policy
	Seed     uint64
	MaxSteps uint
	EnvConf  envconfig.Config

	Policy PolicyName

	// Epsilon is the probability of a random action when acting with
	// the Seeker policy
	Epsilon float64
}

// DefaultConfig returns the default experiment configuration
func DefaultConfig() Config {
	return Config{
		Type:     OnlineExp,
		Seed:     1,
		MaxSteps: 10_000,
		EnvConf:  envconfig.Default(),
		Policy:   Seeker,
		Epsilon:  0.1,
	}
}

// Save writes the Config to a file as JSON
func (c Config) Save(filename string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("save: could not encode config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("save: could not write config: %w", err)
	}
	return nil
}

// CreateExp creates the experiment described by the Config
func (c Config) CreateExp(t ...tracker.Tracker) (*Online, error) {
	e, _, err := c.EnvConf.Create(c.Seed)
	if err != nil {
		return nil, fmt.Errorf("createExp: could not create environment: %w",
			err)
	}

	p, err := c.CreatePolicy(e, c.Seed)
	if err != nil {
		return nil, fmt.Errorf("createExp: %w", err)
	}

	switch c.Type {
	case OnlineExp:
		return NewOnline(e, agent.NonLearning(p), c.MaxSteps, t...), nil
	}

	return nil, fmt.Errorf("createExp: no such experiment type %v", c.Type)
}

// CreatePolicy creates the policy described by the Config for acting in
// environment e
func (c Config) CreatePolicy(e environment.Environment,
	seed uint64) (agent.Policy, error) {
	actions := int(e.ActionSpec().UpperBound.AtVec(0)) + 1

	switch c.Policy {
	case Random:
		return policy.NewUniform(actions, seed), nil

	case Seeker:
		if c.EnvConf.Coordinates {
			return nil, fmt.Errorf("createPolicy: policy %v needs occupancy "+
				"grid observations", c.Policy)
		}
		if c.Epsilon < 0 || c.Epsilon > 1 {
			return nil, fmt.Errorf("createPolicy: epsilon %v ∉ [0, 1]",
				c.Epsilon)
		}
		greedy := policy.NewSeeker(c.EnvConf.Dimension)
		return policy.NewEGreedy(greedy, c.Epsilon, actions, seed), nil
	}

	return nil, fmt.Errorf("createPolicy: no such policy %q", c.Policy)
}
