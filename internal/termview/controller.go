package termview

import (
	"image"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/watchface/complication"
	"github.com/gogpu/watchface/face"
	"github.com/gogpu/watchface/host"
)

// batteryStep is how much b and B move the simulated battery.
const batteryStep = 5

// Controller maps terminal input to engine events. It tracks the toggles
// the host would normally own: ambient, visibility, mute and unread count.
type Controller struct {
	view    *View
	battery *host.ManualBattery
	zone    *host.ManualZone
	zones   []*time.Location

	ambient  bool
	visible  bool
	muted    bool
	unread   int
	zoneIdx  int
	demo     int
	lastDown bool
}

// NewController returns a controller for a face that starts visible and
// active. z cycles through zones.
func NewController(view *View, battery *host.ManualBattery, zone *host.ManualZone, zones []*time.Location) *Controller {
	return &Controller{view: view, battery: battery, zone: zone, zones: zones, visible: true}
}

// Handle translates one terminal event. quit is true when the user asked
// to leave.
func (c *Controller) Handle(ev tcell.Event) (events []face.Event, quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return c.key(ev)
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		pressed := down && !c.lastDown
		c.lastDown = down
		if !pressed || c.view == nil {
			return nil, false
		}
		col, row := ev.Position()
		if x, y, ok := c.view.CellToSurface(col, row); ok {
			return []face.Event{face.Tap{X: x, Y: y}}, false
		}
	case *tcell.EventResize:
		return []face.Event{face.TimeTick{}}, false
	}
	return nil, false
}

func (c *Controller) key(ev *tcell.EventKey) ([]face.Event, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return nil, true
	case tcell.KeyRune:
	default:
		return nil, false
	}

	switch ev.Rune() {
	case 'q':
		return nil, true
	case 'a':
		c.ambient = !c.ambient
		return []face.Event{face.AmbientModeChanged{Ambient: c.ambient}}, false
	case 'v':
		c.visible = !c.visible
		return []face.Event{face.VisibilityChanged{Visible: c.visible}}, false
	case 'm':
		c.muted = !c.muted
		return []face.Event{face.InterruptionFilterChanged{Muted: c.muted}}, false
	case 'u':
		c.unread++
		return []face.Event{face.UnreadCountChanged{Count: c.unread}}, false
	case 'U':
		c.unread = max(c.unread-1, 0)
		return []face.Event{face.UnreadCountChanged{Count: c.unread}}, false
	case 'b', 'B':
		if c.battery == nil {
			return nil, false
		}
		if ev.Rune() == 'b' {
			c.battery.Add(-batteryStep)
		} else {
			c.battery.Add(batteryStep)
		}
		return []face.Event{face.TimeTick{}}, false
	case 'p':
		return []face.Event{face.PropertiesDiscovered{LowBitAmbient: true, BurnInProtection: true}}, false
	case 'c':
		c.demo++
		return DemoComplications(c.demo), false
	case 'z':
		if len(c.zones) > 0 && c.zone != nil {
			c.zoneIdx = (c.zoneIdx + 1) % len(c.zones)
			c.zone.SetLocation(c.zones[c.zoneIdx])
		}
	}
	return nil, false
}

// DemoComplications returns updates for every slot. Successive steps move
// the ranged value and the text so changes are visible.
func DemoComplications(step int) []face.Event {
	steps := float64(step%10) * 1000
	return []face.Event{
		face.ComplicationDataUpdate{Slot: complication.Background, Data: &complication.Data{
			Kind:       complication.KindLargeImage,
			LargeImage: gradient(step),
			TapAction:  "photos",
		}},
		face.ComplicationDataUpdate{Slot: complication.Left, Data: &complication.Data{
			Kind:      complication.KindRangedValue,
			Value:     steps,
			Min:       0,
			Max:       10000,
			TapAction: "steps",
		}},
		face.ComplicationDataUpdate{Slot: complication.Right, Data: &complication.Data{
			Kind:       complication.KindShortText,
			ShortText:  []string{"21°", "18°", "24°"}[step%3],
			ShortTitle: "Zürich",
			TapAction:  "weather",
		}},
	}
}

// gradient is a dim placeholder photo for the background slot.
func gradient(step int) image.Image {
	const size = 64
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8((x + step*16) % 64),
				G: uint8(y / 2),
				B: uint8(48 + (x+y)/4),
				A: 255,
			})
		}
	}
	return img
}
