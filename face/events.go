package face

import (
	"github.com/gogpu/watchface/complication"
)

// Event is an inbound notification from the host. Events are handled one
// at a time on the engine goroutine, in delivery order.
type Event interface {
	eventName() string
}

// Create starts the engine on a surface of the given size.
type Create struct{ Width, Height int }

// SurfaceChanged reports a new surface size.
type SurfaceChanged struct{ Width, Height int }

// PropertiesDiscovered reports panel capabilities. Only the first one
// counts.
type PropertiesDiscovered struct{ LowBitAmbient, BurnInProtection bool }

// ComplicationDataUpdate replaces the payload of a slot.
type ComplicationDataUpdate struct {
	Slot complication.SlotID
	Data *complication.Data
}

// Tap is a single tap at surface coordinates.
type Tap struct{ X, Y float64 }

// AmbientModeChanged switches between active and ambient.
type AmbientModeChanged struct{ Ambient bool }

// VisibilityChanged reports whether the face is on screen.
type VisibilityChanged struct{ Visible bool }

// InterruptionFilterChanged reports do-not-disturb.
type InterruptionFilterChanged struct{ Muted bool }

// UnreadCountChanged reports the number of unread notifications.
type UnreadCountChanged struct{ Count int }

// TimezoneChanged reports that the device time zone changed.
type TimezoneChanged struct{}

// TimeTick is the once-a-minute tick delivered in ambient mode.
type TimeTick struct{}

// Destroy stops the engine. Run returns after handling it.
type Destroy struct{}

// wake is a scheduler timer firing.
type wake struct{ gen uint64 }

// render asks for a frame on demand.
type render struct{ reply chan<- renderResult }

type renderResult struct {
	frame Frame
	err   error
}

func (Create) eventName() string                    { return "create" }
func (SurfaceChanged) eventName() string            { return "surface_changed" }
func (PropertiesDiscovered) eventName() string      { return "properties_discovered" }
func (ComplicationDataUpdate) eventName() string    { return "complication_data" }
func (Tap) eventName() string                       { return "tap" }
func (AmbientModeChanged) eventName() string        { return "ambient_mode_changed" }
func (VisibilityChanged) eventName() string         { return "visibility_changed" }
func (InterruptionFilterChanged) eventName() string { return "interruption_filter_changed" }
func (UnreadCountChanged) eventName() string        { return "unread_count_changed" }
func (TimezoneChanged) eventName() string           { return "timezone_changed" }
func (TimeTick) eventName() string                  { return "time_tick" }
func (Destroy) eventName() string                   { return "destroy" }
func (wake) eventName() string                      { return "wake" }
func (render) eventName() string                    { return "render" }
