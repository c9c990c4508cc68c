package envconfig

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/portalworld/environment/portalworld"
	"github.com/samuelfneumann/portalworld/environment/wrappers"
)

func TestCreate(t *testing.T) {
	c := Default()
	e, step, err := c.Create(7)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, ok := e.(*portalworld.PortalWorld); !ok {
		t.Errorf("want *portalworld.PortalWorld, have %T", e)
	}
	if !step.First() {
		t.Errorf("want first timestep, have %v", step)
	}

	c.Coordinates = true
	e, step, err = c.Create(7)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, ok := e.(*wrappers.Coordinates); !ok {
		t.Errorf("want *wrappers.Coordinates, have %T", e)
	}
	if step.Observation.Len() != wrappers.CoordinateFeatures {
		t.Errorf("want %d features, have %d", wrappers.CoordinateFeatures,
			step.Observation.Len())
	}
}

func TestCreateInvalid(t *testing.T) {
	c := Default()
	c.Dimension = 2
	if _, _, err := c.Create(7); !errors.Is(err,
		portalworld.ErrInvalidConfiguration) {
		t.Errorf("want ErrInvalidConfiguration, have %v", err)
	}
	if err := c.Validate(); err == nil {
		t.Error("validate: want error for dimension 2")
	}

	c = Default()
	c.Environment = "Snake"
	if _, _, err := c.Create(7); err == nil {
		t.Error("create: want error for unknown environment")
	}
}

func TestSaveLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "env.json")

	c := Default()
	c.Dimension = 25
	c.EpisodeCutoff = 500
	c.TeleportBeforeMove = true
	if err := c.Save(filename); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(filename)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded != c {
		t.Errorf("want %+v, have %+v", c, loaded)
	}
}
