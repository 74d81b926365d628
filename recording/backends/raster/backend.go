// Package raster renders recordings to pixel images with fogleman/gg.
//
// The raster backend is what the demo and the simulator present: every
// frame recording is replayed into an RGBA image that can be written as
// PNG, shown in a terminal, or dithered onto an e-paper panel.
//
// # Supported Features
//
//   - Full-canvas color fills
//   - Filled and stroked circles, rounded rectangles and oval arcs
//   - Accumulated rotations about a pivot (Save/Restore)
//   - Text through any opentype face set (Go Regular by default)
//   - Images scaled into a destination rectangle
//   - PNG output
//
// # Limitations
//
// fogleman/gg always anti-aliases and has no blur, so Paint.AntiAlias and
// Paint.Shadow are carried in the recording but not rendered here. Panels
// that need hard edges (the e-paper backend) threshold the image instead.
//
// gg cannot outline glyphs either. Text is always filled, so the date
// strip's StyleStroke paint renders as solid text.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/watchface/recording/backends/raster"
//
//	backend, _ := recording.NewBackend("raster")
//	rec.Playback(backend)
//	backend.(*raster.Backend).SaveToFile("frame.png")
package raster

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"

	wf "github.com/gogpu/watchface"
	"github.com/gogpu/watchface/recording"
	"github.com/gogpu/watchface/text"
)

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	})
}

// Backend renders recordings to a pixel image using gg.Context.
// It implements recording.Backend, recording.WriterBackend,
// recording.FileBackend, and recording.ImageBackend.
type Backend struct {
	ctx    *gg.Context
	faces  *text.Faces
	width  int
	height int
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
	_ recording.ImageBackend  = (*Backend)(nil)
)

// NewBackend creates a new raster backend using the Go Regular font.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return NewBackendWithFaces(text.GoRegular())
}

// NewBackendWithFaces creates a raster backend drawing text with faces.
func NewBackendWithFaces(faces *text.Faces) *Backend {
	if faces == nil {
		faces = text.GoRegular()
	}
	return &Backend{faces: faces}
}

// Begin initializes the backend for rendering at the given dimensions.
// Each Begin starts a fresh, transparent canvas.
func (b *Backend) Begin(width, height int) error {
	b.width = width
	b.height = height
	b.ctx = gg.NewContext(width, height)
	return nil
}

// End finalizes the rendering.
// After End is called, output methods (WriteTo, SaveToFile) can be used.
func (b *Backend) End() error {
	return nil
}

// Save saves the current graphics state onto a stack.
func (b *Backend) Save() {
	b.ctx.Push()
}

// Restore restores the graphics state from the stack.
func (b *Backend) Restore() {
	b.ctx.Pop()
}

// Rotate rotates the canvas clockwise about pivot.
func (b *Backend) Rotate(degrees float64, pivot wf.Point) {
	b.ctx.RotateAbout(gg.Radians(degrees), pivot.X, pivot.Y)
}

// DrawColor fills the whole canvas, ignoring the transform.
func (b *Backend) DrawColor(c wf.RGBA) {
	b.ctx.SetColor(c.Color())
	b.ctx.Clear()
}

// DrawCircle fills or strokes a circle.
func (b *Backend) DrawCircle(center wf.Point, radius float64, p recording.Paint) {
	b.ctx.NewSubPath()
	b.ctx.DrawCircle(center.X, center.Y, radius)
	b.finish(p)
}

// DrawArc strokes an arc of the oval inscribed in oval. Angles are degrees,
// 0 at three o'clock, growing clockwise.
func (b *Backend) DrawArc(oval wf.Rect, startAngle, sweep float64, p recording.Paint) {
	c := oval.Center()
	b.ctx.NewSubPath()
	b.ctx.DrawEllipticalArc(c.X, c.Y, oval.Width()/2, oval.Height()/2,
		gg.Radians(startAngle), gg.Radians(startAngle+sweep))
	p.Style = recording.StyleStroke
	b.finish(p)
}

// DrawRect fills or strokes a rectangle.
func (b *Backend) DrawRect(rect wf.Rect, radius float64, p recording.Paint) {
	b.ctx.NewSubPath()
	if radius > 0 {
		b.ctx.DrawRoundedRectangle(rect.MinX, rect.MinY, rect.Width(), rect.Height(), radius)
	} else {
		b.ctx.DrawRectangle(rect.MinX, rect.MinY, rect.Width(), rect.Height())
	}
	b.finish(p)
}

// DrawText draws s with its baseline origin at (x, y). Text is filled
// regardless of p.Style.
func (b *Backend) DrawText(s string, x, y float64, p recording.Paint) {
	face, err := b.faces.Face(p.TextSize)
	if err != nil {
		wf.Logger().Warn("raster: no face for text", "size", p.TextSize, "err", err)
		return
	}
	b.ctx.SetFontFace(face)
	b.ctx.SetColor(p.Color.Color())
	b.ctx.DrawString(s, x, y)
}

// DrawImage draws img scaled into dst.
func (b *Backend) DrawImage(img image.Image, dst wf.Rect, p recording.Paint) {
	r := dst.Image()
	if r.Empty() {
		return
	}
	scaled := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	var mask image.Image
	if p.Color.A < 1 {
		mask = image.NewUniform(color.Alpha{A: uint8(p.Color.A * 255)})
	}
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Over,
		&xdraw.Options{SrcMask: mask})
	b.ctx.DrawImage(scaled, r.Min.X, r.Min.Y)
}

func (b *Backend) finish(p recording.Paint) {
	b.ctx.SetColor(p.Color.Color())
	if p.Style == recording.StyleStroke {
		b.ctx.SetLineWidth(p.StrokeWidth)
		b.ctx.SetLineCap(convertLineCap(p.Cap))
		b.ctx.Stroke()
		return
	}
	b.ctx.Fill()
}

func convertLineCap(c recording.LineCap) gg.LineCap {
	switch c {
	case recording.LineCapRound:
		return gg.LineCapRound
	case recording.LineCapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

// --------------------------------------------------------------------------
// Output
// --------------------------------------------------------------------------

// Width returns the canvas width.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the canvas height.
func (b *Backend) Height() int {
	return b.height
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() image.Image {
	if b.ctx == nil {
		return nil
	}
	return b.ctx.Image()
}

// WriteTo writes the frame as PNG to w.
// Implements io.WriterTo and recording.WriterBackend.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.ctx == nil {
		return 0, errNotBegun
	}
	cw := &countingWriter{w: w}
	err := b.ctx.EncodePNG(cw)
	return cw.n, err
}

// SaveToFile saves the frame as PNG to path.
func (b *Backend) SaveToFile(path string) error {
	if b.ctx == nil {
		return errNotBegun
	}
	return b.ctx.SavePNG(path)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
