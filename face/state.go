package face

import (
	wf "github.com/gogpu/watchface"
)

// Mode is the display power regime.
type Mode uint8

const (
	// ModeActive is the interactive regime: per-second redraws, full styling.
	ModeActive Mode = iota
	// ModeAmbient is the low-power regime: redraws on demand only.
	ModeAmbient
)

func (m Mode) String() string {
	if m == ModeAmbient {
		return "ambient"
	}
	return "active"
}

// DisplayState is everything about the display that changes through
// discrete events. It is owned by the engine goroutine.
type DisplayState struct {
	Ambient bool

	// Panel capabilities. Set once at discovery and never changed after.
	LowBitAmbient    bool
	BurnInProtection bool
	capsKnown        bool

	Mute        bool
	Visible     bool
	UnreadCount int

	// UnreadIndicator mirrors the user preference.
	UnreadIndicator bool

	PrimaryColor    wf.RGBA
	BackgroundColor wf.RGBA
	ShadowColor     wf.RGBA
}

// Mode returns the current power regime.
func (s *DisplayState) Mode() Mode {
	if s.Ambient {
		return ModeAmbient
	}
	return ModeActive
}

// SetAmbient switches the mode and reports whether it changed.
func (s *DisplayState) SetAmbient(ambient bool) bool {
	if s.Ambient == ambient {
		return false
	}
	s.Ambient = ambient
	return true
}

// DiscoverCapabilities records the panel capabilities. Only the first
// call has an effect; it reports whether the values were applied.
func (s *DisplayState) DiscoverCapabilities(lowBit, burnIn bool) bool {
	if s.capsKnown {
		return false
	}
	s.LowBitAmbient, s.BurnInProtection = lowBit, burnIn
	s.capsKnown = true
	return true
}

// SetMute reports whether mute changed.
func (s *DisplayState) SetMute(mute bool) bool {
	if s.Mute == mute {
		return false
	}
	s.Mute = mute
	return true
}

// SetUnreadCount stores count while the indicator preference is on. It
// reports whether the visible count changed. Negative counts read as zero.
func (s *DisplayState) SetUnreadCount(count int) bool {
	if !s.UnreadIndicator {
		return false
	}
	count = max(count, 0)
	if s.UnreadCount == count {
		return false
	}
	s.UnreadCount = count
	return true
}

// ShouldRunTimer reports whether the periodic redraw must be armed.
func (s *DisplayState) ShouldRunTimer() bool {
	return s.Visible && !s.Ambient
}

// darkBackground reports whether the panel must draw on pure black.
func (s *DisplayState) darkBackground() bool {
	return s.Ambient && (s.LowBitAmbient || s.BurnInProtection)
}
