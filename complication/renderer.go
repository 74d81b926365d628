package complication

import (
	"time"

	wf "github.com/gogpu/watchface"
	"github.com/gogpu/watchface/recording"
)

// Renderer draws one slot's payload. The registry owns one renderer per
// slot and keeps it in sync with bounds, payload and display mode.
type Renderer interface {
	SetBounds(bounds wf.Rect)
	SetData(d *Data)
	SetInAmbientMode(ambient bool)
	SetAmbientCapabilities(lowBit, burnIn bool)
	SetPalettes(active, ambient Palette)
	// Draw records the payload as of now. Nothing is drawn for a missing
	// or inactive payload.
	Draw(rec *recording.Recorder, now time.Time)
	// Contains reports whether the renderer claims a tap at (x, y) as of
	// now. A missing or inactive payload claims nothing.
	Contains(x, y float64, now time.Time) bool
}

// Palette colors one display mode. Transparent fields are not drawn.
type Palette struct {
	Background  wf.RGBA
	Border      wf.RGBA
	RangedValue wf.RGBA
	RangedTrack wf.RGBA
	Text        wf.RGBA
	Title       wf.RGBA
}

// DefaultActivePalette is the palette before any preferences apply.
func DefaultActivePalette() Palette {
	return Palette{
		Border:      wf.White,
		RangedValue: wf.White,
		RangedTrack: wf.RGB(0.3, 0.3, 0.3),
		Text:        wf.White,
		Title:       wf.RGB(0.7, 0.7, 0.7),
	}
}

// DefaultAmbientPalette is white on transparent.
func DefaultAmbientPalette() Palette {
	return Palette{
		Border:      wf.White,
		RangedValue: wf.White,
		Text:        wf.White,
		Title:       wf.White,
	}
}

const (
	borderWidth = 2
	rangedWidth = 3
	cornerRatio = 0.5
)

// Drawable is the default renderer. It draws a rounded background and
// border, then the payload by kind.
type Drawable struct {
	bounds  wf.Rect
	data    *Data
	ambient bool
	lowBit  bool
	burnIn  bool

	activePalette  Palette
	ambientPalette Palette
}

var _ Renderer = (*Drawable)(nil)

// NewDrawable returns a renderer with the default palettes.
func NewDrawable() *Drawable {
	return &Drawable{
		activePalette:  DefaultActivePalette(),
		ambientPalette: DefaultAmbientPalette(),
	}
}

// SetBounds implements Renderer.
func (d *Drawable) SetBounds(bounds wf.Rect) { d.bounds = bounds }

// SetData implements Renderer.
func (d *Drawable) SetData(data *Data) { d.data = data }

// SetInAmbientMode implements Renderer.
func (d *Drawable) SetInAmbientMode(ambient bool) { d.ambient = ambient }

// Bounds returns the current bounds.
func (d *Drawable) Bounds() wf.Rect { return d.bounds }

// Data returns the current payload.
func (d *Drawable) Data() *Data { return d.data }

// InAmbientMode reports the current mode.
func (d *Drawable) InAmbientMode() bool { return d.ambient }

// Palettes returns the active and ambient palettes.
func (d *Drawable) Palettes() (active, ambient Palette) {
	return d.activePalette, d.ambientPalette
}

// SetAmbientCapabilities implements Renderer.
func (d *Drawable) SetAmbientCapabilities(lowBit, burnIn bool) {
	d.lowBit, d.burnIn = lowBit, burnIn
}

// SetPalettes implements Renderer.
func (d *Drawable) SetPalettes(active, ambient Palette) {
	d.activePalette, d.ambientPalette = active, ambient
}

// Contains claims a point inside the bounds while the payload is active.
func (d *Drawable) Contains(x, y float64, now time.Time) bool {
	return d.data.IsActive(now) && d.bounds.Contains(x, y)
}

func (d *Drawable) palette() Palette {
	if d.ambient {
		return d.ambientPalette
	}
	return d.activePalette
}

func (d *Drawable) paint(c wf.RGBA) recording.Paint {
	p := recording.DefaultPaint().WithColor(c)
	p.AntiAlias = !(d.ambient && d.lowBit)
	return p
}

// Draw implements Renderer.
func (d *Drawable) Draw(rec *recording.Recorder, now time.Time) {
	if d.bounds.Empty() || !d.data.IsActive(now) {
		return
	}
	pal := d.palette()
	data := d.data

	if data.Kind == KindLargeImage {
		// Photos are hidden where pixels must stay dark or sparse.
		if d.ambient && (d.lowBit || d.burnIn) {
			return
		}
		if !pal.Background.IsTransparent() {
			rec.DrawRect(d.bounds, d.paint(pal.Background))
		}
		rec.DrawImage(data.LargeImage, d.bounds, d.paint(wf.White))
		return
	}

	radius := d.bounds.Width() * cornerRatio
	if !pal.Background.IsTransparent() && !d.ambient {
		rec.DrawRoundRect(d.bounds, radius, d.paint(pal.Background))
	}
	if !pal.Border.IsTransparent() {
		p := d.paint(pal.Border).WithStyle(recording.StyleStroke)
		p.StrokeWidth = borderWidth
		rec.DrawRoundRect(d.bounds.Inset(borderWidth/2), radius, p)
	}

	inner := d.bounds.Inset(d.bounds.Width() / 5)
	switch data.Kind {
	case KindRangedValue:
		d.drawRanged(rec, pal, inner)
	case KindIcon:
		icon := data.Icon
		if d.ambient && d.burnIn && data.BurnInIcon != nil {
			icon = data.BurnInIcon
		}
		rec.DrawImage(icon, inner, d.paint(wf.White))
	case KindShortText:
		d.drawText(rec, pal, data.ShortText, data.ShortTitle)
	case KindSmallImage:
		if d.ambient && d.burnIn {
			return
		}
		rec.DrawImage(data.SmallImage, inner, d.paint(wf.White))
	}
}

func (d *Drawable) drawRanged(rec *recording.Recorder, pal Palette, inner wf.Rect) {
	oval := d.bounds.Inset(borderWidth + rangedWidth)
	if !pal.RangedTrack.IsTransparent() && !d.ambient {
		p := d.paint(pal.RangedTrack).WithStyle(recording.StyleStroke)
		p.StrokeWidth = rangedWidth
		rec.DrawArc(oval, -90, 360, p)
	}
	p := d.paint(pal.RangedValue).WithStyle(recording.StyleStroke)
	p.StrokeWidth = rangedWidth
	p.Cap = recording.LineCapRound
	rec.DrawArc(oval, -90, 360*d.data.Fraction(), p)

	if d.data.ShortText != "" {
		d.drawText(rec, pal, d.data.ShortText, "")
	} else if d.data.Icon != nil {
		rec.DrawImage(d.data.Icon, inner, d.paint(wf.White))
	}
}

func (d *Drawable) drawText(rec *recording.Recorder, pal Palette, text, title string) {
	c := d.bounds.Center()
	size := d.bounds.Height() / 4
	y := c.Y + size/3
	if title != "" {
		y = c.Y
	}
	p := d.paint(pal.Text).WithTextSize(size)
	rec.DrawText(text, c.X-rec.MeasureText(text, size)/2, y, p)

	if title != "" {
		tsize := size * 0.7
		tp := d.paint(pal.Title).WithTextSize(tsize)
		rec.DrawText(title, c.X-rec.MeasureText(title, tsize)/2, y+tsize+2, tp)
	}
}
