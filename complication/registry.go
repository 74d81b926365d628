package complication

import (
	"time"

	wf "github.com/gogpu/watchface"
)

// Slot is one complication position with its renderer and last payload.
type Slot struct {
	ID       SlotID
	Kinds    []Kind
	Bounds   wf.Rect
	Data     *Data
	Renderer Renderer
}

// Registry holds every slot for the lifetime of an engine. It is not safe
// for concurrent use; the engine goroutine owns it.
type Registry struct {
	slots [len(Slots)]*Slot
}

// New creates a registry with one renderer per slot. A nil factory uses
// NewDrawable.
func New(factory func(SlotID) Renderer) *Registry {
	if factory == nil {
		factory = func(SlotID) Renderer { return NewDrawable() }
	}
	r := &Registry{}
	for i, id := range Slots {
		r.slots[i] = &Slot{ID: id, Kinds: SupportedKinds(id), Renderer: factory(id)}
	}
	return r
}

// Slot returns the slot for id.
func (r *Registry) Slot(id SlotID) (*Slot, bool) {
	for _, s := range r.slots {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// Configure sets the bounds of a slot. Unknown ids are ignored.
func (r *Registry) Configure(id SlotID, bounds wf.Rect) {
	s, ok := r.Slot(id)
	if !ok {
		return
	}
	s.Bounds = bounds
	s.Renderer.SetBounds(bounds)
}

// ConfigureLayout applies Layout(width, height) to every slot.
func (r *Registry) ConfigureLayout(width, height int) {
	for id, bounds := range Layout(width, height) {
		r.Configure(id, bounds)
	}
}

// UpdateData replaces a slot's payload. Unknown ids are ignored. It
// reports whether the payload was stored.
func (r *Registry) UpdateData(id SlotID, d *Data) bool {
	s, ok := r.Slot(id)
	if !ok {
		return false
	}
	s.Data = d
	s.Renderer.SetData(d)
	return true
}

// ForEachBackToFront calls fn for every slot in draw order.
func (r *Registry) ForEachBackToFront(fn func(*Slot)) {
	for _, s := range r.slots {
		fn(s)
	}
}

// HitTest returns the front-most slot whose renderer claims (x, y) at now.
func (r *Registry) HitTest(x, y float64, now time.Time) (SlotID, bool) {
	for i := len(r.slots) - 1; i >= 0; i-- {
		if r.slots[i].Renderer.Contains(x, y, now) {
			return r.slots[i].ID, true
		}
	}
	return 0, false
}

// SetAmbientCapabilities forwards the panel capabilities to every renderer.
func (r *Registry) SetAmbientCapabilities(lowBit, burnIn bool) {
	for _, s := range r.slots {
		s.Renderer.SetAmbientCapabilities(lowBit, burnIn)
	}
}

// SetAmbient switches every renderer between active and ambient drawing.
func (r *Registry) SetAmbient(ambient bool) {
	for _, s := range r.slots {
		s.Renderer.SetInAmbientMode(ambient)
	}
}

// SetPalettes derives slot palettes from the primary color: the background
// slot draws on black, the positional slots use primary for border and
// ranged value while active and white while ambient.
func (r *Registry) SetPalettes(primary wf.RGBA) {
	for _, s := range r.slots {
		active := DefaultActivePalette()
		ambient := DefaultAmbientPalette()
		if s.ID == Background {
			active.Background = wf.Black
		} else {
			active.Border = primary
			active.RangedValue = primary
		}
		s.Renderer.SetPalettes(active, ambient)
	}
}
