package recording

import (
	"image"
	"io"

	wf "github.com/gogpu/watchface"
)

// Backend receives recorded canvas operations and renders them to its
// output (pixels, a display panel, a terminal).
//
// A Backend manages its own state stack for Save/Restore. Rotate composes
// with the current transform the way a canvas rotation does: rotations
// accumulate until the matching Restore.
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
type Backend interface {
	// Begin prepares the backend for a frame of the given dimensions.
	Begin(width, height int) error

	// End finalizes the frame. Output methods are valid after End.
	End() error

	// Save saves the current transform onto a stack.
	Save()

	// Restore restores the transform from the stack.
	// If the stack is empty, this is a no-op.
	Restore()

	// Rotate rotates the canvas by degrees clockwise around pivot.
	Rotate(degrees float64, pivot wf.Point)

	// DrawColor fills the whole canvas with c, ignoring the transform.
	DrawColor(c wf.RGBA)

	// DrawCircle fills or strokes a circle according to p.Style.
	DrawCircle(center wf.Point, radius float64, p Paint)

	// DrawArc strokes an arc of the oval inscribed in oval.
	DrawArc(oval wf.Rect, startAngle, sweep float64, p Paint)

	// DrawRect fills or strokes a rectangle with corner radius.
	DrawRect(rect wf.Rect, radius float64, p Paint)

	// DrawText draws s with its baseline origin at (x, y) using p.TextSize.
	DrawText(s string, x, y float64, p Paint)

	// DrawImage draws img scaled into dst.
	DrawImage(img image.Image, dst wf.Rect, p Paint)
}

// WriterBackend extends Backend with the ability to write output to an
// io.Writer. This should only be called after End().
type WriterBackend interface {
	Backend
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output to a file.
type FileBackend interface {
	Backend
	SaveToFile(path string) error
}

// ImageBackend extends Backend with access to the rasterized frame.
type ImageBackend interface {
	Backend
	// Image returns the rendered frame, or nil before the first End.
	Image() image.Image
}
