// Package host declares the collaborators a watch face engine depends on
// and a few plain adapters for them.
//
// Preferences, battery level and time zone come from the device. The
// engine treats every source as best effort: a failing source degrades the
// frame, it never aborts one.
package host

import (
	"time"

	wf "github.com/gogpu/watchface"
)

//go:generate mockgen -destination=../mocks/host_mocks.go -package=mocks github.com/gogpu/watchface/host PreferenceSource,BatterySource,ZoneSource

// Preferences are the user settings the face reads.
type Preferences struct {
	PrimaryColor    wf.RGBA
	UnreadIndicator bool
}

// DefaultPreferences returns blue as primary color with the unread
// indicator enabled.
func DefaultPreferences() Preferences {
	return Preferences{PrimaryColor: wf.Blue, UnreadIndicator: true}
}

// PreferenceSource loads the current preferences.
type PreferenceSource interface {
	Load() (Preferences, error)
}

// BatterySource reports the battery level in percent, 0 to 100.
type BatterySource interface {
	Level() (int, error)
}

// ZoneSource provides the device time zone and notifies on change.
// Subscribe returns a function that removes the subscription.
type ZoneSource interface {
	Location() *time.Location
	Subscribe(fn func()) (unsubscribe func())
}
