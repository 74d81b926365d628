package face

import "errors"

var (
	// ErrEngineStopped is returned when an event is dispatched to an engine
	// whose Run loop has exited.
	ErrEngineStopped = errors.New("face: engine stopped")

	// ErrNotCreated is returned by Render before the Create event.
	ErrNotCreated = errors.New("face: engine not created")
)
