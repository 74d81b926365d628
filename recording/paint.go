package recording

import wf "github.com/gogpu/watchface"

// PaintStyle selects whether shapes are filled or outlined.
type PaintStyle uint8

const (
	// StyleFill fills the shape interior.
	StyleFill PaintStyle = iota
	// StyleStroke outlines the shape with StrokeWidth.
	StyleStroke
)

// String returns the style name.
func (s PaintStyle) String() string {
	if s == StyleStroke {
		return "Stroke"
	}
	return "Fill"
}

// LineCap specifies the shape of stroke endpoints.
type LineCap uint8

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// Shadow is a blurred copy drawn behind a shape. A zero Radius means no
// shadow.
type Shadow struct {
	Radius float64
	DX, DY float64
	Color  wf.RGBA
}

// Paint is the complete style of one draw command. Paints are values: a
// command carries its own copy, so changing a paint after recording does
// not alter the recording.
type Paint struct {
	Color       wf.RGBA
	Style       PaintStyle
	StrokeWidth float64
	Cap         LineCap
	AntiAlias   bool
	Shadow      Shadow
	TextSize    float64
}

// DefaultPaint returns an opaque black, anti-aliased fill paint.
func DefaultPaint() Paint {
	return Paint{
		Color:       wf.Black,
		Style:       StyleFill,
		StrokeWidth: 1,
		AntiAlias:   true,
		TextSize:    12,
	}
}

// WithColor returns a copy of p with the color replaced.
func (p Paint) WithColor(c wf.RGBA) Paint {
	p.Color = c
	return p
}

// WithAlpha returns a copy of p with the color alpha replaced.
func (p Paint) WithAlpha(a float64) Paint {
	p.Color = p.Color.WithAlpha(a)
	return p
}

// WithTextSize returns a copy of p with the text size replaced.
func (p Paint) WithTextSize(size float64) Paint {
	p.TextSize = size
	return p
}

// WithStyle returns a copy of p with the paint style replaced.
func (p Paint) WithStyle(s PaintStyle) Paint {
	p.Style = s
	return p
}

// HasShadow reports whether the paint casts a shadow.
func (p Paint) HasShadow() bool {
	return p.Shadow.Radius > 0
}
