// Package envconfig provides configuration structs for configuring
// environments with default parameters. Environment configurations in
// this package are JSON serializable.
package envconfig

import (
	"encoding/json"
	"fmt"
	"os"

	env "github.com/samuelfneumann/portalworld/environment"
	"github.com/samuelfneumann/portalworld/environment/portalworld"
	"github.com/samuelfneumann/portalworld/environment/wrappers"
	ts "github.com/samuelfneumann/portalworld/timestep"
)

// EnvName stores the name of environments that can be configured with
// this package
type EnvName string

// Environments available for configuration
const (
	PortalWorld EnvName = "PortalWorld"
)

// Config implements a specific configuration of a specific environment
type Config struct {
	Environment EnvName

	// Dimension is the side length of the square grid
	Dimension int

	Discount float64

	// EpisodeCutoff is the maximum number of steps in an episode, 0 for
	// no limit
	EpisodeCutoff uint

	// MaxPlacementAttempts caps resampling of food and portal cells,
	// 0 for no cap
	MaxPlacementAttempts int

	// TeleportBeforeMove lets an agent standing on a portal go through
	// it before moving
	TeleportBeforeMove bool

	// Coordinates wraps the environment so that observations are
	// cell coordinates instead of occupancy grids
	Coordinates bool
}

// Default returns the default configuration of PortalWorld
func Default() Config {
	return Config{
		Environment: PortalWorld,
		Dimension:   portalworld.DefaultDimension,
		Discount:    portalworld.DefaultDiscount,
	}
}

// Validate checks that the Config describes a legal environment
func (c Config) Validate() error {
	switch c.Environment {
	case PortalWorld:
		return c.WorldConfig().Validate()
	}
	return fmt.Errorf("validate: no such environment %q", c.Environment)
}

// Create returns the environment described by the Config as well as
// the first timestep of the environment.
func (c Config) Create(seed uint64) (env.Environment, ts.TimeStep, error) {
	switch c.Environment {
	case PortalWorld:
		return CreatePortalWorld(c.WorldConfig(), c.Coordinates, seed)
	}

	return nil, ts.TimeStep{}, fmt.Errorf("create: cannot create "+
		"environment %q, no such environment", c.Environment)
}

// WorldConfig converts the Config to a portalworld.Config
func (c Config) WorldConfig() portalworld.Config {
	return portalworld.Config{
		Dimension:            c.Dimension,
		Discount:             c.Discount,
		EpisodeCutoff:        int(c.EpisodeCutoff),
		MaxPlacementAttempts: c.MaxPlacementAttempts,
		TransitionOptions: portalworld.TransitionOptions{
			TeleportBeforeMove: c.TeleportBeforeMove,
		},
	}
}

// CreatePortalWorld is a factory for creating the PortalWorld
// environment, optionally wrapped so that it observes coordinates
func CreatePortalWorld(c portalworld.Config, coordinates bool,
	seed uint64) (env.Environment, ts.TimeStep, error) {
	w, step, err := portalworld.New(c, seed)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("createPortalWorld: %w", err)
	}

	if !coordinates {
		return w, step, nil
	}

	xy, step, err := wrappers.NewCoordinates(w)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("createPortalWorld: %w", err)
	}
	return xy, step, nil
}

// Load reads a JSON Config from a file
func Load(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("load: could not read config: %w", err)
	}

	c := Default()
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("load: could not decode config: %w", err)
	}
	return c, nil
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
