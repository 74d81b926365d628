package recording

import (
	"fmt"
	"image"
	"strings"

	wf "github.com/gogpu/watchface"
	"github.com/gogpu/watchface/text"
)

// Recorder captures canvas operations as commands. It mirrors the small
// canvas API a watch face needs (rotate, circles, arcs, text, images) but
// produces commands instead of pixels. Use FinishRecording to obtain an
// immutable Recording that can be replayed to any Backend.
//
// Example:
//
//	rec := recording.NewRecorder(320, 320, text.GoRegular())
//	rec.DrawColor(watchface.Black)
//	rec.Save()
//	rec.RotateAbout(17, 160, 160)
//	rec.DrawText("Mo", 150, 25, paint)
//	rec.Restore()
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
	measurer      text.Measurer

	transform  wf.Matrix
	stateStack []wf.Matrix
}

// NewRecorder creates a new Recorder for the given dimensions. A nil
// measurer falls back to text.Fixed.
func NewRecorder(width, height int, measurer text.Measurer) *Recorder {
	if measurer == nil {
		measurer = text.Fixed{}
	}
	return &Recorder{
		width:      width,
		height:     height,
		commands:   make([]Command, 0, 64),
		resources:  NewResourcePool(),
		measurer:   measurer,
		transform:  wf.Identity(),
		stateStack: make([]wf.Matrix, 0, 4),
	}
}

// FinishRecording returns an immutable Recording containing all recorded
// commands. After calling FinishRecording, the Recorder should not be used
// again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		resources: r.resources,
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// MeasureText returns the advance width of s at size pixels.
func (r *Recorder) MeasureText(s string, size float64) float64 {
	return r.measurer.MeasureText(s, size)
}

// --------------------------------------------------------------------------
// State Management
// --------------------------------------------------------------------------

// Save pushes the current transform onto the state stack.
func (r *Recorder) Save() {
	r.stateStack = append(r.stateStack, r.transform)
	r.commands = append(r.commands, SaveCommand{})
}

// Restore pops the transform saved by the matching Save.
// If the state stack is empty, this is a no-op.
func (r *Recorder) Restore() {
	if len(r.stateStack) == 0 {
		return
	}
	r.transform = r.stateStack[len(r.stateStack)-1]
	r.stateStack = r.stateStack[:len(r.stateStack)-1]
	r.commands = append(r.commands, RestoreCommand{})
}

// RotateAbout rotates the canvas by degrees (clockwise) around (x, y).
// Successive rotations accumulate.
func (r *Recorder) RotateAbout(degrees, x, y float64) {
	r.transform = r.transform.Multiply(wf.RotateAbout(degrees, x, y))
	r.commands = append(r.commands, RotateCommand{
		Degrees: degrees,
		Pivot:   wf.Pt(x, y),
		Matrix:  r.transform,
	})
}

// Transform returns the current transformation matrix.
func (r *Recorder) Transform() wf.Matrix {
	return r.transform
}

// --------------------------------------------------------------------------
// Drawing
// --------------------------------------------------------------------------

// DrawColor fills the entire canvas with c.
func (r *Recorder) DrawColor(c wf.RGBA) {
	r.commands = append(r.commands, DrawColorCommand{Color: c})
}

// DrawCircle draws a circle centered at (cx, cy).
func (r *Recorder) DrawCircle(cx, cy, radius float64, p Paint) {
	if radius <= 0 {
		return
	}
	r.commands = append(r.commands, DrawCircleCommand{Center: wf.Pt(cx, cy), Radius: radius, Paint: p})
}

// DrawArc strokes part of the oval inscribed in oval. A zero sweep records
// nothing.
func (r *Recorder) DrawArc(oval wf.Rect, startAngle, sweep float64, p Paint) {
	if sweep == 0 {
		return
	}
	r.commands = append(r.commands, DrawArcCommand{Oval: oval, StartAngle: startAngle, Sweep: sweep, Paint: p})
}

// DrawRect draws a rectangle.
func (r *Recorder) DrawRect(rect wf.Rect, p Paint) {
	r.DrawRoundRect(rect, 0, p)
}

// DrawRoundRect draws a rectangle with corners of the given radius.
func (r *Recorder) DrawRoundRect(rect wf.Rect, radius float64, p Paint) {
	if rect.Empty() {
		return
	}
	r.commands = append(r.commands, DrawRectCommand{Rect: rect, Radius: radius, Paint: p})
}

// DrawText draws s with its baseline origin at (x, y).
func (r *Recorder) DrawText(s string, x, y float64, p Paint) {
	if s == "" {
		return
	}
	r.commands = append(r.commands, DrawTextCommand{Text: s, X: x, Y: y, Paint: p, Transform: r.transform})
}

// DrawImage draws img scaled into dst.
func (r *Recorder) DrawImage(img image.Image, dst wf.Rect, p Paint) {
	if img == nil || dst.Empty() {
		return
	}
	ref := r.resources.AddImage(img)
	r.commands = append(r.commands, DrawImageCommand{Image: ref, Dst: dst, Paint: p})
}

// --------------------------------------------------------------------------
// Recording
// --------------------------------------------------------------------------

// Recording is an immutable container for recorded draw commands.
// It can be replayed to any Backend implementation, and safely shared
// between goroutines.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Texts returns every DrawText command in recording order.
func (r *Recording) Texts() []DrawTextCommand {
	var out []DrawTextCommand
	for _, cmd := range r.commands {
		if t, ok := cmd.(DrawTextCommand); ok {
			out = append(out, t)
		}
	}
	return out
}

// String returns a one-line summary of the command types, e.g.
// "DrawColor DrawCircle Save Rotate DrawText Restore".
func (r *Recording) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%dx%d:", r.width, r.height)
	for _, cmd := range r.commands {
		sb.WriteByte(' ')
		sb.WriteString(cmd.Type().String())
	}
	return sb.String()
}

// Playback replays the recording to the given backend.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return err
	}

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case SaveCommand:
			backend.Save()
		case RestoreCommand:
			backend.Restore()
		case RotateCommand:
			backend.Rotate(c.Degrees, c.Pivot)
		case DrawColorCommand:
			backend.DrawColor(c.Color)
		case DrawCircleCommand:
			backend.DrawCircle(c.Center, c.Radius, c.Paint)
		case DrawArcCommand:
			backend.DrawArc(c.Oval, c.StartAngle, c.Sweep, c.Paint)
		case DrawRectCommand:
			backend.DrawRect(c.Rect, c.Radius, c.Paint)
		case DrawTextCommand:
			backend.DrawText(c.Text, c.X, c.Y, c.Paint)
		case DrawImageCommand:
			if img := r.resources.GetImage(c.Image); img != nil {
				backend.DrawImage(img, c.Dst, c.Paint)
			}
		}
	}

	return backend.End()
}
