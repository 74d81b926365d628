package face

import (
	wf "github.com/gogpu/watchface"
	"github.com/gogpu/watchface/recording"
)

const (
	hourStrokeWidth        = 5
	batteryArcStrokeWidth  = 5
	batteryUsedStrokeWidth = 2
	datesStrokeWidth       = 2

	shadowRadius = 6

	hourTextSize  = 80
	dateTextSize  = 15
	mutedAlpha    = 100
	enlargedScale = 1.4
)

// Styles holds the paints of one frame. It is computed from the display
// state on every frame, never mutated across frames.
type Styles struct {
	Hour        recording.Paint
	Dates       recording.Paint
	BatteryArc  recording.Paint
	BatteryUsed recording.Paint
}

// StylesFor derives the paints for st. Ambient drops anti-aliasing and
// shadows; mute dims hour and date text. The two compose.
func StylesFor(st DisplayState) Styles {
	base := recording.Paint{
		Color:     st.PrimaryColor,
		Cap:       recording.LineCapRound,
		AntiAlias: !st.Ambient,
	}
	if !st.Ambient {
		base.Shadow = recording.Shadow{Radius: shadowRadius, Color: st.ShadowColor}
	}

	s := Styles{Hour: base, Dates: base, BatteryArc: base, BatteryUsed: base}

	s.Hour.Style = recording.StyleFill
	s.Hour.StrokeWidth = hourStrokeWidth
	s.Hour.TextSize = hourTextSize

	s.Dates.Style = recording.StyleStroke
	s.Dates.StrokeWidth = datesStrokeWidth
	s.Dates.Cap = recording.LineCapButt
	s.Dates.TextSize = dateTextSize

	s.BatteryArc.Style = recording.StyleStroke
	s.BatteryArc.StrokeWidth = batteryArcStrokeWidth

	s.BatteryUsed.Style = recording.StyleStroke
	s.BatteryUsed.StrokeWidth = batteryUsedStrokeWidth

	if st.Mute {
		s.Hour.Color = s.Hour.Color.WithAlpha8(mutedAlpha)
		s.Dates.Color = s.Dates.Color.WithAlpha8(mutedAlpha)
	}
	return s
}

// backgroundColor applies the dark-panel rule.
func backgroundColor(st DisplayState) wf.RGBA {
	if st.darkBackground() {
		return wf.Black
	}
	return st.BackgroundColor
}
