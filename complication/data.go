package complication

import (
	"image"
	"time"
)

// Kind is the shape of a complication payload.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindRangedValue
	KindIcon
	KindShortText
	KindSmallImage
	KindLargeImage
)

var kindNames = [...]string{
	KindEmpty:       "empty",
	KindRangedValue: "ranged_value",
	KindIcon:        "icon",
	KindShortText:   "short_text",
	KindSmallImage:  "small_image",
	KindLargeImage:  "large_image",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Data is one complication payload as delivered by a provider. A payload
// is replaced wholesale on every update and never mutated afterwards.
type Data struct {
	Kind Kind

	// Ranged value
	Value, Min, Max float64

	ShortText  string
	ShortTitle string

	Icon image.Image
	// BurnInIcon replaces Icon in ambient mode on burn-in sensitive screens.
	BurnInIcon image.Image

	SmallImage image.Image
	LargeImage image.Image

	// The payload is shown only inside [ActiveFrom, ActiveUntil). A zero
	// bound is open.
	ActiveFrom  time.Time
	ActiveUntil time.Time

	// TapAction is handed to the tap handler when the slot is tapped.
	TapAction string
}

// IsActive reports whether the payload should be shown at t.
func (d *Data) IsActive(t time.Time) bool {
	if d == nil || d.Kind == KindEmpty {
		return false
	}
	if !d.ActiveFrom.IsZero() && t.Before(d.ActiveFrom) {
		return false
	}
	if !d.ActiveUntil.IsZero() && !t.Before(d.ActiveUntil) {
		return false
	}
	return true
}

// Fraction returns the ranged value position in [0, 1].
func (d *Data) Fraction() float64 {
	if d.Max <= d.Min {
		return 0
	}
	f := (d.Value - d.Min) / (d.Max - d.Min)
	return min(max(f, 0), 1)
}
