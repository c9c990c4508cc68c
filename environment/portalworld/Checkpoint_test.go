package portalworld

import (
	"bytes"
	"encoding/gob"
	"errors"
	"testing"

	ts "github.com/samuelfneumann/portalworld/timestep"
)

func TestGobRoundTrip(t *testing.T) {
	w := newTestWorld(t, Config{Dimension: 10, Discount: 1})
	setState(t, w, State{
		Agent:   Point{5, 5},
		Food:    Point{1, 1},
		PortalA: Point{8, 8},
		PortalB: Point{2, 7},
		Score:   2,
	})
	if _, _, err := w.Act(East); err != nil {
		t.Fatalf("act: %v", err)
	}

	data, err := w.GobEncode()
	if err != nil {
		t.Fatalf("gobEncode: %v", err)
	}

	other := newTestWorld(t, Config{Dimension: 10, Discount: 1})
	if err := other.GobDecode(data); err != nil {
		t.Fatalf("gobDecode: %v", err)
	}
	if other.State() != w.State() {
		t.Errorf("want state %v, have %v", w.State(), other.State())
	}
	if other.State().Agent != (Point{6, 5}) {
		t.Errorf("want agent at (6, 5), have %v", other.State().Agent)
	}
	if other.CurrentTimeStep().Number != 1 {
		t.Errorf("want step 1, have %d", other.CurrentTimeStep().Number)
	}
}

func TestGobDecodeInvalid(t *testing.T) {
	data, err := newTestWorld(t, Config{Dimension: 10, Discount: 1}).
		GobEncode()
	if err != nil {
		t.Fatalf("gobEncode: %v", err)
	}

	w := newTestWorld(t, Config{Dimension: 5, Discount: 1})
	before := w.State()
	if err := w.GobDecode(data); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("want ErrInvalidConfiguration, have %v", err)
	}
	if err := w.GobDecode([]byte("not a snapshot")); err == nil {
		t.Error("want error decoding garbage")
	}
	if w.State() != before {
		t.Errorf("state changed on failed decode: %v", w.State())
	}
}

func TestGobRestoreTerminal(t *testing.T) {
	w := newTestWorld(t, Config{Dimension: 10, Discount: 1})
	setState(t, w, State{
		Agent:   Point{0, 5},
		Food:    Point{5, 5},
		PortalA: Point{8, 8},
		PortalB: Point{2, 7},
		Score:   3,
	})
	if _, done, err := w.Act(West); err != nil || !done {
		t.Fatalf("act: want episode ended, have done = %v, err = %v", done,
			err)
	}

	data, err := w.GobEncode()
	if err != nil {
		t.Fatalf("gobEncode: %v", err)
	}
	restored := newTestWorld(t, Config{Dimension: 10, Discount: 1})
	if err := restored.GobDecode(data); err != nil {
		t.Fatalf("gobDecode: %v", err)
	}

	if restored.Phase() != Terminated {
		t.Errorf("want phase %v, have %v", Terminated, restored.Phase())
	}
	step := restored.CurrentTimeStep()
	if !step.Last() || step.Reward != 3 || step.Number != 1 ||
		step.EndType() != ts.TerminalStateReached {
		t.Errorf("want last step 1 with reward 3 ended by %v, have %v (%v)",
			ts.TerminalStateReached, step, step.EndType())
	}
}

func TestGobReplay(t *testing.T) {
	c := Config{Dimension: 5, Discount: 1}
	actions := func(i int) Action { return Action((i / 3) % NumActions) }

	w := newTestWorld(t, c)
	for i := 0; i < 40; i++ {
		if _, _, err := w.Act(actions(i)); err != nil {
			t.Fatalf("act %d: %v", i, err)
		}
	}
	data, err := w.GobEncode()
	if err != nil {
		t.Fatalf("gobEncode: %v", err)
	}

	restored, _, err := New(c, seed+1)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := restored.GobDecode(data); err != nil {
		t.Fatalf("gobDecode: %v", err)
	}

	for i := 40; i < 400; i++ {
		want, wantDone, err := w.Act(actions(i))
		if err != nil {
			t.Fatalf("act %d: %v", i, err)
		}
		have, haveDone, err := restored.Act(actions(i))
		if err != nil {
			t.Fatalf("restored act %d: %v", i, err)
		}

		if w.State() != restored.State() || wantDone != haveDone ||
			want.Reward != have.Reward || want.Number != have.Number {
			t.Fatalf("step %d: restored world diverged: want %v %v, have "+
				"%v %v", i, w.State(), want, restored.State(), have)
		}
	}
}

func TestGobDecodeInconsistentStep(t *testing.T) {
	w := newTestWorld(t, Config{Dimension: 10, Discount: 1})
	before, beforeStep := w.State(), w.CurrentTimeStep()

	terminated := before
	terminated.Terminated = true
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(snapshot{
		Dimension: 10,
		State:     terminated,
		StepType:  ts.First,
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	if err := w.GobDecode(buf.Bytes()); !errors.Is(err,
		ErrInvalidConfiguration) {
		t.Errorf("want ErrInvalidConfiguration, have %v", err)
	}
	if w.State() != before || w.CurrentTimeStep().StepType !=
		beforeStep.StepType {
		t.Errorf("failed decode changed the environment: %v",
			w.CurrentTimeStep())
	}
}

func TestGobDecodeUnserializableSource(t *testing.T) {
	data, err := newTestWorld(t, Config{Dimension: 10, Discount: 1}).
		GobEncode()
	if err != nil {
		t.Fatalf("gobEncode: %v", err)
	}

	p, err := NewPlacerFrom(10, 0, constSource(1<<62))
	if err != nil {
		t.Fatalf("newPlacer: %v", err)
	}
	w := &PortalWorld{n: 10, discount: 1, placer: p}
	if err := w.GobDecode(data); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("want ErrInvalidConfiguration, have %v", err)
	}
}
