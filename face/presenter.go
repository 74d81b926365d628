package face

import (
	"fmt"
	"time"

	"github.com/gogpu/watchface/recording"
)

// Frame is one composed frame handed to the Presenter.
type Frame struct {
	Seq           uint64
	At            time.Time
	Width, Height int
	Mode          Mode
	BatteryLevel  int
	// Degraded is set when a collaborator failed and a last known value
	// was drawn instead.
	Degraded  bool
	Recording *recording.Recording
}

// Presenter shows frames. It is called from the engine goroutine and must
// not call back into the engine.
type Presenter interface {
	Present(f Frame) error
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(f Frame) error

// Present implements Presenter.
func (fn PresenterFunc) Present(f Frame) error {
	return fn(f)
}

// BackendPresenter replays each frame to a recording backend.
type BackendPresenter struct {
	Backend recording.Backend
}

// NewBackendPresenter returns a presenter for b.
func NewBackendPresenter(b recording.Backend) *BackendPresenter {
	return &BackendPresenter{Backend: b}
}

// Present implements Presenter.
func (p *BackendPresenter) Present(f Frame) error {
	if f.Recording == nil {
		return nil
	}
	if err := f.Recording.Playback(p.Backend); err != nil {
		return fmt.Errorf("face: present frame %d: %w", f.Seq, err)
	}
	return nil
}

var discard = PresenterFunc(func(Frame) error { return nil })
