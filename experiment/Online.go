package experiment

import (
	"context"
	"fmt"

	"github.com/samuelfneumann/portalworld/agent"
	env "github.com/samuelfneumann/portalworld/environment"
	"github.com/samuelfneumann/portalworld/experiment/checkpointer"
	"github.com/samuelfneumann/portalworld/experiment/tracker"
	ts "github.com/samuelfneumann/portalworld/timestep"
	"github.com/samuelfneumann/portalworld/utils/progressbar"
)

// Online is an Experiment that runs an agent online only. No offline
// evaluation is performed.
type Online struct {
	env.Environment
	agent.Agent
	maxSteps     uint
	currentSteps uint
	episodes     int
	trackers     []tracker.Tracker
	checkpoints  []checkpointer.Checkpointer
	progress     *progressbar.ProgressBar
}

var _ Experiment = (*Online)(nil)

// NewOnline creates and returns a new online experiment on a given
// environment with a given agent. The steps parameter determines how
// many timesteps the experiment is run for, and the t parameter
// is a slice of tracker.Tracker which determine what data is saved.
func NewOnline(e env.Environment, a agent.Agent, steps uint,
	t ...tracker.Tracker) *Online {
	return &Online{
		Environment: e,
		Agent:       a,
		maxSteps:    steps,
		trackers:    t,
	}
}

// Register registers a tracker.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// RegisterCheckpointer registers a checkpointer.Checkpointer which is
// given every TimeStep after the first of each episode
func (o *Online) RegisterCheckpointer(c checkpointer.Checkpointer) {
	o.checkpoints = append(o.checkpoints, c)
}

// SetProgressBar sets a progress bar which is incremented on every
// step of the experiment
func (o *Online) SetProgressBar(p *progressbar.ProgressBar) {
	o.progress = p
}

// RunEpisode runs a single episode of the experiment and returns
// whether the maximum number of steps has been reached
func (o *Online) RunEpisode(ctx context.Context) (bool, error) {
	step, err := o.Environment.Reset()
	if err != nil {
		return true, fmt.Errorf("runEpisode: could not reset: %w", err)
	}
	o.Agent.ObserveFirst(step)
	o.track(step)

	// Run the next timestep
	for !step.Last() && o.currentSteps < o.maxSteps {
		if err := ctx.Err(); err != nil {
			return true, fmt.Errorf("runEpisode: %w", err)
		}
		o.currentSteps++

		// Select action, step in environment
		action := o.Agent.SelectAction(step)
		step, _, err = o.Environment.Step(action)
		if err != nil {
			return true, fmt.Errorf("runEpisode: step %d: %w",
				o.currentSteps, err)
		}

		// Cache the environment step in each Tracker
		o.track(step)
		if err := o.checkpoint(step); err != nil {
			return true, fmt.Errorf("runEpisode: %w", err)
		}

		// Observe the timestep and step the agent
		o.Agent.Observe(action, step)
		o.Agent.Step()

		if err := o.increment(); err != nil {
			return true, err
		}
	}

	if step.Last() {
		o.episodes++
	}

	// Return whether or not the max timestep limit has been reached
	return o.currentSteps >= o.maxSteps, nil
}

// Run runs the entire experiment for all timesteps
func (o *Online) Run(ctx context.Context) error {
	for ended := false; !ended; {
		var err error
		if ended, err = o.RunEpisode(ctx); err != nil {
			return fmt.Errorf("run: %w", err)
		}
	}

	if o.progress != nil {
		o.progress.SetStatus(o.status())
		return o.progress.Close()
	}
	return nil
}

// Episodes returns the number of episodes completed so far
func (o *Online) Episodes() int {
	return o.episodes
}

// Steps returns the number of steps taken so far
func (o *Online) Steps() uint {
	return o.currentSteps
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() error {
	for _, t := range o.trackers {
		if err := t.Save(); err != nil {
			return fmt.Errorf("save: %w", err)
		}
	}
	return nil
}

// track tracks the current timestep by caching its data in each tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}
}

// checkpoint passes the current timestep to each checkpointer
func (o *Online) checkpoint(t ts.TimeStep) error {
	for _, c := range o.checkpoints {
		if err := c.Checkpoint(t); err != nil {
			return err
		}
	}
	return nil
}

// increment advances the progress bar, if any
func (o *Online) increment() error {
	if o.progress == nil {
		return nil
	}
	o.progress.SetStatus(o.status())
	return o.progress.Increment()
}

func (o *Online) status() string {
	return fmt.Sprintf("episodes: %d", o.episodes)
}
