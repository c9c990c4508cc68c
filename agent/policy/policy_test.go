package policy

import (
	"testing"

	"github.com/samuelfneumann/portalworld/environment/portalworld"
	ts "github.com/samuelfneumann/portalworld/timestep"
)

func TestUniform(t *testing.T) {
	u := NewUniform(portalworld.NumActions, 11)

	counts := make([]int, portalworld.NumActions)
	for i := 0; i < 4000; i++ {
		a := int(u.SelectAction(ts.TimeStep{}).AtVec(0))
		if a < 0 || a >= portalworld.NumActions {
			t.Fatalf("action %d out of range", a)
		}
		counts[a]++
	}
	for a, c := range counts {
		if c < 800 || c > 1200 {
			t.Errorf("action %d selected %d of 4000 times", a, c)
		}
	}
}

func TestSeeker(t *testing.T) {
	n := 10
	tests := []struct {
		name  string
		agent portalworld.Point
		food  portalworld.Point
		want  portalworld.Action
	}{
		{"North", portalworld.Point{X: 5, Y: 5}, portalworld.Point{X: 5, Y: 8},
			portalworld.North},
		{"East", portalworld.Point{X: 1, Y: 5}, portalworld.Point{X: 7, Y: 5},
			portalworld.East},
		{"South", portalworld.Point{X: 0, Y: 5}, portalworld.Point{X: 0, Y: 0},
			portalworld.South},
		{"West", portalworld.Point{X: 9, Y: 9}, portalworld.Point{X: 3, Y: 9},
			portalworld.West},
	}

	s := NewSeeker(n)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			state := portalworld.State{
				Agent:   test.agent,
				Food:    test.food,
				PortalA: portalworld.Point{X: 2, Y: 2},
				PortalB: portalworld.Point{X: 8, Y: 1},
			}
			step := ts.New(ts.Mid, 0, 1, portalworld.Encode(state, n), 1)

			a := portalworld.Action(s.SelectAction(step).AtVec(0))
			if a != test.want {
				t.Errorf("want %v, have %v", test.want, a)
			}
		})
	}
}

func TestSeekerAvoidsWalls(t *testing.T) {
	n := 5
	s := NewSeeker(n)

	// With the agent on the food every move is equally far, and the
	// first legal move must be chosen
	state := portalworld.State{
		Agent:   portalworld.Point{X: 0, Y: 4},
		Food:    portalworld.Point{X: 0, Y: 4},
		PortalA: portalworld.Point{X: 2, Y: 2},
		PortalB: portalworld.Point{X: 3, Y: 1},
	}
	step := ts.New(ts.Mid, 0, 1, portalworld.Encode(state, n), 1)

	a := portalworld.Action(s.SelectAction(step).AtVec(0))
	if a != portalworld.East {
		t.Errorf("want East, have %v", a)
	}
}

func TestEGreedy(t *testing.T) {
	greedy := NewSeeker(10)
	state := portalworld.State{
		Agent:   portalworld.Point{X: 5, Y: 5},
		Food:    portalworld.Point{X: 5, Y: 8},
		PortalA: portalworld.Point{X: 2, Y: 2},
		PortalB: portalworld.Point{X: 8, Y: 1},
	}
	step := ts.New(ts.Mid, 0, 1, portalworld.Encode(state, 10), 1)

	e := NewEGreedy(greedy, 0, portalworld.NumActions, 3)
	for i := 0; i < 100; i++ {
		if a := portalworld.Action(e.SelectAction(step).AtVec(0)); a !=
			portalworld.North {
			t.Fatalf("ε = 0: want North, have %v", a)
		}
	}

	e = NewEGreedy(greedy, 1, portalworld.NumActions, 3)
	seen := make(map[portalworld.Action]bool)
	for i := 0; i < 200; i++ {
		seen[portalworld.Action(e.SelectAction(step).AtVec(0))] = true
	}
	if len(seen) != portalworld.NumActions {
		t.Errorf("ε = 1: want all actions selected, have %v", seen)
	}
}
