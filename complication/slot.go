package complication

import (
	"fmt"

	wf "github.com/gogpu/watchface"
)

// SlotID identifies a complication position. The set is closed.
type SlotID int

const (
	Background SlotID = 0
	Left       SlotID = 100
	Right      SlotID = 101
)

// Slots lists every slot in draw order, back to front.
var Slots = [...]SlotID{Background, Left, Right}

func (id SlotID) String() string {
	switch id {
	case Background:
		return "background"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("slot(%d)", int(id))
}

// Valid reports whether id is one of the known slots.
func (id SlotID) Valid() bool {
	return id == Background || id == Left || id == Right
}

// SupportedKinds returns the data kinds a slot accepts, in preference
// order. Unknown slots accept nothing.
func SupportedKinds(id SlotID) []Kind {
	switch id {
	case Background:
		return []Kind{KindLargeImage}
	case Left, Right:
		return []Kind{KindRangedValue, KindIcon, KindShortText, KindSmallImage}
	}
	return nil
}

// Layout computes slot bounds for a surface. The two positional slots are
// squares a quarter of the width wide, centered vertically in the left and
// right halves; the background covers the surface.
func Layout(width, height int) map[SlotID]wf.Rect {
	size := width / 4
	mid := width / 2
	hOff := (mid - size) / 2
	vOff := mid - size/2

	return map[SlotID]wf.Rect{
		Background: wf.IntRect(0, 0, width, height),
		Left:       wf.IntRect(hOff, vOff, hOff+size, vOff+size),
		Right:      wf.IntRect(mid+hOff, vOff, mid+hOff+size, vOff+size),
	}
}
