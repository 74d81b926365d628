package face

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gogpu/watchface/complication"
	"github.com/gogpu/watchface/recording"
	"github.com/gogpu/watchface/text"
)

const (
	colonPeriodMillis = 2000
	colonOnMillis     = 1000

	unreadBottomOffset = 40
	unreadOuterRadius  = 10
	unreadInnerRadius  = 4
)

// Scene is everything one frame is composed from.
type Scene struct {
	Width, Height int
	// Now is the frame instant, already in the display time zone.
	Now          time.Time
	State        DisplayState
	BatteryLevel int
	Registry     *complication.Registry
	Locale       Locale
}

// Compose records one frame. The order is fixed: background,
// complications back to front, unread indicator, date strip, time,
// battery.
func Compose(s Scene, m text.Measurer) *recording.Recording {
	rec := recording.NewRecorder(s.Width, s.Height, m)
	st := s.State
	styles := StylesFor(st)

	rec.DrawColor(backgroundColor(st))

	if s.Registry != nil {
		s.Registry.ForEachBackToFront(func(slot *complication.Slot) {
			slot.Renderer.Draw(rec, s.Now)
		})
	}

	if st.UnreadIndicator && st.UnreadCount > 0 {
		x := float64(s.Width / 2)
		y := float64(s.Height - unreadBottomOffset)
		rec.DrawCircle(x, y, unreadOuterRadius, styles.Dates)
		// A solid dot would burn in.
		if !st.Ambient {
			rec.DrawCircle(x, y, unreadInnerRadius, styles.BatteryArc)
		}
	}

	cx, cy := float64(s.Width)/2, float64(s.Height)/2
	drawDateStrip(rec, s.Now, cx, cy, styles.Dates, s.Locale)
	drawTime(rec, s.Now, cx, cy, styles.Hour, st.Ambient)
	drawBattery(rec, cx, cy, s.BatteryLevel, styles)

	return rec.FinishRecording()
}

// ColonVisible reports whether the blinking colon is lit at t while
// active: on for the first second of every two.
func ColonVisible(t time.Time) bool {
	ms := t.UnixMilli() % colonPeriodMillis
	if ms < 0 {
		ms += colonPeriodMillis
	}
	return ms < colonOnMillis
}

// DisplayHour returns the 12-hour clock hour of t, with 0 shown as 12.
func DisplayHour(t time.Time) int {
	h := t.Hour() % 12
	if h == 0 {
		return 12
	}
	return h
}

func drawTime(rec *recording.Recorder, now time.Time, cx, cy float64, p recording.Paint, ambient bool) {
	size := p.TextSize
	hour := strconv.Itoa(DisplayHour(now))

	// Centered on a fixed-width sample so the hour does not shift as the
	// minutes change.
	x := cx - rec.MeasureText(hour+":01", size)/2
	rec.DrawText(hour, x, cy, p)
	x += rec.MeasureText(hour, size)

	if ambient || ColonVisible(now) {
		rec.DrawText(":", x, cy, p)
	}
	x += rec.MeasureText(":", size)

	rec.DrawText(fmt.Sprintf("%02d", now.Minute()), x, cy, p)
}
