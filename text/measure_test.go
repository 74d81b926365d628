package text

import (
	"math"
	"testing"
)

func TestFixedMeasureText(t *testing.T) {
	tests := []struct {
		name string
		m    Fixed
		s    string
		size float64
		want float64
	}{
		{"default ratio", Fixed{}, "10:01", 80, 200},
		{"custom ratio", Fixed{Ratio: 0.6}, "Mo", 15, 18},
		{"counts runes not bytes", Fixed{}, "Mär", 10, 15},
		{"empty", Fixed{}, "", 80, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.MeasureText(tt.s, tt.size); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("MeasureText(%q, %v) = %v, want %v", tt.s, tt.size, got, tt.want)
			}
		})
	}
}

func TestMeasurerFunc(t *testing.T) {
	var m Measurer = MeasurerFunc(func(s string, size float64) float64 { return float64(len(s)) + size })
	if got := m.MeasureText("abc", 1); got != 4 {
		t.Errorf("MeasureText = %v, want 4", got)
	}
}
