package face

import (
	"strconv"
	"time"

	"github.com/gogpu/watchface/recording"
)

const (
	// One third of the dial split into seven days, in whole degrees.
	dateStep = 360 / 3 / 7

	dateDays       = 7
	dateEdgeOffset = 25
	day            = 24 * time.Hour
)

// DateLabel is one day of the date strip as it lands on the dial.
type DateLabel struct {
	At       time.Time
	Weekday  string
	Date     string
	Angle    float64 // clockwise from twelve o'clock, degrees
	Enlarged bool
}

// drawDateStrip records the seven labels along the top edge. Placement is
// purely by cumulative rotation about the center: start four steps back,
// draw, step; the label for now takes an extra step on each side.
func drawDateStrip(rec *recording.Recorder, now time.Time, cx, cy float64, p recording.Paint, loc Locale) []DateLabel {
	labels := make([]DateLabel, 0, dateDays)

	rec.Save()
	rec.RotateAbout(dateStep*-4, cx, cy)

	at := now.Add(-3 * day)
	for range dateDays {
		if at.Equal(now) {
			rec.RotateAbout(dateStep, cx, cy)
			big := p.WithTextSize(p.TextSize * enlargedScale)
			l := DateLabel{At: at, Weekday: loc.Weekday(at, 3), Date: loc.MonthDay(at), Enlarged: true}
			l.Angle = drawLabel(rec, l, cx, big)
			labels = append(labels, l)
			rec.RotateAbout(dateStep, cx, cy)
		} else {
			l := DateLabel{At: at, Weekday: loc.Weekday(at, 2), Date: strconv.Itoa(at.Day())}
			l.Angle = drawLabel(rec, l, cx, p)
			labels = append(labels, l)
		}
		at = at.Add(day)
		rec.RotateAbout(dateStep, cx, cy)
	}

	rec.Restore()
	return labels
}

func drawLabel(rec *recording.Recorder, l DateLabel, cx float64, p recording.Paint) float64 {
	size := p.TextSize
	rec.DrawText(l.Weekday, cx-rec.MeasureText(l.Weekday, size)/2, dateEdgeOffset, p)
	rec.DrawText(l.Date, cx-rec.MeasureText(l.Date, size)/2, dateEdgeOffset+size, p)
	return rec.Transform().Angle()
}

// DateStrip returns the labels a frame at now would draw, in draw order.
func DateStrip(now time.Time, loc Locale) []DateLabel {
	rec := recording.NewRecorder(2, 2, nil)
	return drawDateStrip(rec, now, 1, 1, StylesFor(DisplayState{}).Dates, loc)
}
