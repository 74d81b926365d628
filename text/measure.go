package text

import "unicode/utf8"

// Measurer reports the advance width of a string rendered at a pixel size.
// Layout code centers labels with it, so it must be cheap and must not
// block on I/O.
type Measurer interface {
	MeasureText(s string, size float64) float64
}

// MeasurerFunc adapts a plain function to Measurer.
type MeasurerFunc func(s string, size float64) float64

// MeasureText implements Measurer.
func (f MeasurerFunc) MeasureText(s string, size float64) float64 {
	return f(s, size)
}

// Fixed is a monospace Measurer: every rune advances Ratio*size pixels.
// It needs no font data, which keeps layout tests independent of font
// metrics.
type Fixed struct {
	Ratio float64
}

// MeasureText implements Measurer.
func (f Fixed) MeasureText(s string, size float64) float64 {
	ratio := f.Ratio
	if ratio == 0 {
		ratio = 0.5
	}
	return float64(utf8.RuneCountInString(s)) * ratio * size
}
