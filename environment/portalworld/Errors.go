package portalworld

import "errors"

var (
	// ErrInvalidAction is returned when an action is not one of the
	// four directional moves
	ErrInvalidAction = errors.New("invalid action")

	// ErrInvalidConfiguration is returned when an environment cannot be
	// constructed from its parameters, e.g. a grid too small to hold
	// three distinct placements
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrPlacementExhausted is returned when a Placer runs out of
	// resampling attempts before finding three distinct cells
	ErrPlacementExhausted = errors.New("placement attempts exhausted")
)
