package recording

import wf "github.com/gogpu/watchface"

// CommandType identifies the type of a command.
// Each command type corresponds to one canvas operation.
type CommandType uint8

const (
	// State commands
	CmdSave   CommandType = iota // Save current state
	CmdRestore                   // Restore previous state
	CmdRotate                    // Rotate the canvas about a pivot

	// Drawing commands
	CmdDrawColor  // Fill the whole canvas
	CmdDrawCircle // Fill or stroke a circle
	CmdDrawArc    // Stroke an arc of an oval
	CmdDrawRect   // Fill or stroke a (rounded) rectangle
	CmdDrawText   // Draw text on a baseline
	CmdDrawImage  // Draw an image scaled into a rectangle
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSave:       "Save",
	CmdRestore:    "Restore",
	CmdRotate:     "Rotate",
	CmdDrawColor:  "DrawColor",
	CmdDrawCircle: "DrawCircle",
	CmdDrawArc:    "DrawArc",
	CmdDrawRect:   "DrawRect",
	CmdDrawText:   "DrawText",
	CmdDrawImage:  "DrawImage",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// ImageRef is a reference to an image in the resource pool.
type ImageRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a valid image.
func (r ImageRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// SaveCommand saves the current canvas transform.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand restores the previously saved canvas transform.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// RotateCommand rotates the canvas by Degrees (clockwise) around the pivot.
// Rotations accumulate until the enclosing Restore.
type RotateCommand struct {
	Degrees float64
	Pivot   wf.Point
	// Matrix is the accumulated transform after this rotation.
	Matrix wf.Matrix
}

// Type implements Command.
func (RotateCommand) Type() CommandType { return CmdRotate }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// DrawColorCommand fills the entire canvas with a color, ignoring the
// transform.
type DrawColorCommand struct {
	Color wf.RGBA
}

// Type implements Command.
func (DrawColorCommand) Type() CommandType { return CmdDrawColor }

// DrawCircleCommand fills or strokes a circle, depending on Paint.Style.
type DrawCircleCommand struct {
	Center wf.Point
	Radius float64
	Paint  Paint
}

// Type implements Command.
func (DrawCircleCommand) Type() CommandType { return CmdDrawCircle }

// DrawArcCommand strokes the arc of the oval inscribed in Oval, starting at
// StartAngle degrees (0 = 3 o'clock) and sweeping Sweep degrees clockwise.
type DrawArcCommand struct {
	Oval       wf.Rect
	StartAngle float64
	Sweep      float64
	Paint      Paint
}

// Type implements Command.
func (DrawArcCommand) Type() CommandType { return CmdDrawArc }

// DrawRectCommand fills or strokes a rectangle with optional rounded corners.
type DrawRectCommand struct {
	Rect   wf.Rect
	Radius float64
	Paint  Paint
}

// Type implements Command.
func (DrawRectCommand) Type() CommandType { return CmdDrawRect }

// DrawTextCommand draws text with its baseline origin at (X, Y).
type DrawTextCommand struct {
	Text string
	X, Y float64
	// Paint.TextSize is the font size in pixels.
	Paint Paint
	// Transform is the canvas transform in effect when the text was
	// recorded. Backends apply the rotate commands themselves; the field is
	// kept for inspection.
	Transform wf.Matrix
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }

// Origin returns the baseline origin in display coordinates.
func (c DrawTextCommand) Origin() wf.Point {
	return c.Transform.TransformPoint(wf.Pt(c.X, c.Y))
}

// DrawImageCommand draws an image scaled into Dst.
type DrawImageCommand struct {
	Image ImageRef
	Dst   wf.Rect
	Paint Paint
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }
