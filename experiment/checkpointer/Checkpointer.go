// Package checkpointer implements saving snapshots of running objects,
// such as environments, during an experiment
package checkpointer

import (
	"encoding/gob"
	"fmt"
	"os"

	ts "github.com/samuelfneumann/portalworld/timestep"
)

// Checkpointer checkpoints/saves serializable objects based on
// timestep.TimeSteps
type Checkpointer interface {
	Checkpoint(ts.TimeStep) error
}

// Restore decodes the checkpoint saved in filename into object
func Restore(filename string, object gob.GobDecoder) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("restore: %w", err)
	}

	if err := object.GobDecode(data); err != nil {
		return fmt.Errorf("restore: %v: %w", filename, err)
	}
	return nil
}
