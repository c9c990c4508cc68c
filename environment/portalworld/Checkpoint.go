package portalworld

import (
	"bytes"
	"encoding/gob"
	"fmt"

	ts "github.com/samuelfneumann/portalworld/timestep"
)

// snapshot is the serialized form of a PortalWorld
type snapshot struct {
	Dimension int
	State     State

	StepType ts.StepType
	EndType  ts.EndType
	Reward   float64
	Discount float64
	Step     int

	// Rand is the position of the placement random stream, empty if the
	// stream cannot be serialized
	Rand []byte
}

// GobEncode encodes the current episode: its state, its current
// TimeStep, and the position of the random stream used to place food
// and portals. A world restored from the encoding continues exactly as
// the encoded one would.
func (w *PortalWorld) GobEncode() ([]byte, error) {
	step := w.currentStep
	s := snapshot{
		Dimension: w.n,
		State:     w.state,
		StepType:  step.StepType,
		EndType:   step.EndType(),
		Reward:    step.Reward,
		Discount:  step.Discount,
		Step:      step.Number,
	}
	s.Rand, _ = w.placer.randState()

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return nil, fmt.Errorf("gobEncode: %w", err)
	}
	return buf.Bytes(), nil
}

// GobDecode restores an episode encoded by GobEncode. The PortalWorld
// must already exist with the same dimension as the encoded one, and
// is left untouched on error. If the encoding holds no random stream,
// the world keeps drawing placements from its own.
func (w *PortalWorld) GobDecode(data []byte) error {
	var s snapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return fmt.Errorf("gobDecode: %w", err)
	}

	if s.Dimension != w.n {
		return fmt.Errorf("gobDecode: %w: dimension %d != %d",
			ErrInvalidConfiguration, s.Dimension, w.n)
	}
	if err := s.State.Validate(w.n); err != nil {
		return fmt.Errorf("gobDecode: %w", err)
	}
	if s.State.Terminated != (s.StepType == ts.Last) {
		return fmt.Errorf("gobDecode: %w: %v step of a state with "+
			"terminated = %v", ErrInvalidConfiguration, s.StepType,
			s.State.Terminated)
	}
	if len(s.Rand) > 0 {
		if err := w.placer.setRandState(s.Rand); err != nil {
			return fmt.Errorf("gobDecode: %w", err)
		}
	}

	step := ts.New(s.StepType, s.Reward, s.Discount, Encode(s.State, w.n),
		s.Step)
	step.SetEnd(s.EndType)

	w.state = s.State
	w.currentStep = step
	return nil
}
