package checkpointer

import (
	"encoding/gob"
	"fmt"
	"os"

	ts "github.com/samuelfneumann/portalworld/timestep"
)

// nStep implements checkpointing every N steps of an experiment
type nStep struct {
	interval int
	steps    int
	object   gob.GobEncoder

	// filename returns the name of the file to save the next checkpoint
	// in. To save each checkpoint in its own file use
	// FilenameEnumerator, otherwise return a constant name to keep
	// only the latest checkpoint.
	filename func() string
}

// NewNStep returns a checkpointer that checkpoints object every n
// calls to Checkpoint, counted across episodes
func NewNStep(n int, object gob.GobEncoder,
	filename func() string) (Checkpointer, error) {
	if n <= 0 {
		return nil, fmt.Errorf("newNStep: interval %d must be positive", n)
	}

	return &nStep{
		interval: n,
		object:   object,
		filename: filename,
	}, nil
}

// Checkpoint saves the Checkpointer's tracked object if n steps have
// passed since the last checkpoint
func (n *nStep) Checkpoint(ts.TimeStep) error {
	n.steps++
	if n.steps%n.interval != 0 {
		return nil
	}

	data, err := n.object.GobEncode()
	if err != nil {
		return fmt.Errorf("checkpoint: %w", err)
	}

	if err := os.WriteFile(n.filename(), data, 0o644); err != nil {
		return fmt.Errorf("checkpoint: %w", err)
	}
	return nil
}
