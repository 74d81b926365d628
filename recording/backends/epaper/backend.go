// Package epaper presents recordings on a Waveshare 2.13" e-paper HAT.
//
// Frames are rasterized by the raster backend, centered on the panel,
// reduced to one bit per pixel and sent over SPI. A frame whose bits match
// the previous one is not sent, so an ambient face refreshes the panel at
// most once per minute. Between frames the panel sleeps.
//
// The backend registers as "epaper" and opens the panel on first Begin.
// Tests and other panels supply their own Display via NewBackend.
package epaper

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/devices/v3/waveshare2in13v4"
	"periph.io/x/host/v3"

	wf "github.com/gogpu/watchface"
	"github.com/gogpu/watchface/recording"
	"github.com/gogpu/watchface/recording/backends/raster"
)

func init() {
	recording.Register("epaper", func() recording.Backend {
		return NewBackend(nil)
	})
}

// Display is the subset of a periph e-paper device the backend drives.
// *waveshare2in13v4.Dev satisfies it.
type Display interface {
	Bounds() image.Rectangle
	Init() error
	Clear(c color.Color) error
	Draw(r image.Rectangle, src image.Image, sp image.Point) error
	Sleep() error
	Halt() error
}

// Backend rasterizes recordings and pushes them to a Display.
type Backend struct {
	*raster.Backend

	display  Display
	last     *image1bit.VerticalLSB
	sleeping bool
	sent     int
}

var (
	_ recording.Backend      = (*Backend)(nil)
	_ recording.ImageBackend = (*Backend)(nil)
)

// NewBackend creates a backend for display. A nil display is opened from
// the default SPI port on the first Begin.
func NewBackend(display Display) *Backend {
	return &Backend{Backend: raster.NewBackend(), display: display}
}

// Begin opens the panel if needed and starts a raster frame.
func (b *Backend) Begin(width, height int) error {
	if b.display == nil {
		d, err := Open()
		if err != nil {
			return err
		}
		b.display = d
	}
	return b.Backend.Begin(width, height)
}

// End sends the frame to the panel unless it is unchanged.
func (b *Backend) End() error {
	if err := b.Backend.End(); err != nil {
		return err
	}

	bounds := b.display.Bounds()
	frame := b.Backend.Image()
	img := image1bit.NewVerticalLSB(bounds)
	draw.Draw(img, bounds, image.White, image.Point{}, draw.Src)
	dst := centered(frame.Bounds(), bounds)
	draw.Draw(img, dst, frame, frame.Bounds().Min, draw.Src)

	if b.last != nil && bytes.Equal(b.last.Pix, img.Pix) {
		return nil
	}

	if b.sleeping {
		if err := b.display.Init(); err != nil {
			return fmt.Errorf("epaper: wake: %w", err)
		}
		b.sleeping = false
	}
	if err := b.display.Draw(bounds, img, image.Point{}); err != nil {
		return fmt.Errorf("epaper: draw: %w", err)
	}
	b.last = img
	b.sent++
	if err := b.display.Sleep(); err != nil {
		wf.Logger().Warn("epaper: sleep failed", "err", err)
		return nil
	}
	b.sleeping = true
	return nil
}

// Sent returns how many frames were sent to the panel.
func (b *Backend) Sent() int {
	return b.sent
}

// Close blanks the panel and halts it.
func (b *Backend) Close() error {
	if b.display == nil {
		return nil
	}
	if b.sleeping {
		if err := b.display.Init(); err != nil {
			return fmt.Errorf("epaper: wake: %w", err)
		}
	}
	if err := b.display.Clear(color.White); err != nil {
		wf.Logger().Warn("epaper: clear on close failed", "err", err)
	}
	return b.display.Halt()
}

// centered returns a rectangle of src's size centered in dst.
func centered(src, dst image.Rectangle) image.Rectangle {
	off := image.Pt(
		dst.Min.X+(dst.Dx()-src.Dx())/2,
		dst.Min.Y+(dst.Dy()-src.Dy())/2,
	)
	return image.Rectangle{Min: off, Max: off.Add(src.Size())}.Intersect(dst)
}

// hat couples the device with the SPI port it owns.
type hat struct {
	*waveshare2in13v4.Dev
	port spi.PortCloser
}

func (h *hat) Halt() error {
	err := h.Dev.Halt()
	if cerr := h.port.Close(); err == nil {
		err = cerr
	}
	return err
}

// Open initializes periph, opens the default SPI port and brings up a
// 2.13" v4 HAT with a blank screen.
func Open() (Display, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("epaper: host init: %w", err)
	}
	port, err := spireg.Open("")
	if err != nil {
		return nil, fmt.Errorf("epaper: open spi: %w", err)
	}
	opts := waveshare2in13v4.EPD2in13v4
	dev, err := waveshare2in13v4.NewHat(port, &opts)
	if err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("epaper: new hat: %w", err)
	}
	if err := dev.Init(); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("epaper: init: %w", err)
	}
	if err := dev.Clear(color.White); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("epaper: clear: %w", err)
	}
	return &hat{Dev: dev, port: port}, nil
}
