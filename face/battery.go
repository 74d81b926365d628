package face

import (
	wf "github.com/gogpu/watchface"
	"github.com/gogpu/watchface/recording"
)

const (
	batteryBudget    = 120
	batteryArcEnd    = 150
	batteryUsedStart = 30
)

// BatteryArcs is the geometry of the battery indicator: a 120 degree band
// under the center, split between charge remaining and charge used.
type BatteryArcs struct {
	Oval           wf.Rect
	RemainingStart float64
	RemainingSweep float64
	UsedStart      float64
	UsedSweep      float64
}

// BatteryGeometry computes the arcs for level percent around (cx, cy).
// Levels outside 0..100 are clamped.
func BatteryGeometry(cx, cy float64, level int) BatteryArcs {
	level = min(max(level, 0), 100)
	remaining := batteryBudget * float64(level) / 100
	return BatteryArcs{
		Oval:           wf.LTRB(cx/3, cy*0.8, cx*10/6, cy*1.2),
		RemainingStart: batteryArcEnd - remaining,
		RemainingSweep: remaining,
		UsedStart:      batteryUsedStart,
		UsedSweep:      batteryBudget - remaining,
	}
}

func drawBattery(rec *recording.Recorder, cx, cy float64, level int, s Styles) {
	g := BatteryGeometry(cx, cy, level)
	rec.DrawArc(g.Oval, g.RemainingStart, g.RemainingSweep, s.BatteryArc)
	rec.DrawArc(g.Oval, g.UsedStart, g.UsedSweep, s.BatteryUsed)
}
