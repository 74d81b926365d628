package termview

import (
	"fmt"
	"image"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/watchface/face"
	"github.com/gogpu/watchface/recording/backends/raster"
)

// upperHalf paints the top pixel as foreground and the bottom as background.
const upperHalf = '▀'

// View is a face.Presenter that draws into a tcell screen. The last row is
// a status line.
type View struct {
	screen tcell.Screen
	raster *raster.Backend

	mu     sync.Mutex
	surfW  int
	surfH  int
	status string
}

// New returns a view drawing into screen. The screen must already be
// initialized.
func New(screen tcell.Screen) *View {
	return &View{screen: screen, raster: raster.NewBackend()}
}

// Present implements face.Presenter.
func (v *View) Present(f face.Frame) error {
	if f.Recording == nil {
		return nil
	}
	if err := f.Recording.Playback(v.raster); err != nil {
		return fmt.Errorf("termview: rasterize frame %d: %w", f.Seq, err)
	}
	img := v.raster.Image()

	v.mu.Lock()
	defer v.mu.Unlock()
	v.surfW, v.surfH = f.Width, f.Height
	v.status = statusLine(f)

	v.screen.Clear()
	v.paint(img)
	v.drawStatus()
	v.screen.Show()
	return nil
}

// SetStatus replaces the status line until the next frame.
func (v *View) SetStatus(s string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.status = s
	v.drawStatus()
	v.screen.Show()
}

// CellToSurface maps a terminal cell to the surface point at its center.
// ok is false outside the painted face.
func (v *View) CellToSurface(col, row int) (x, y float64, ok bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	s := v.scale()
	if s == 0 {
		return 0, 0, false
	}
	x = (float64(col) + 0.5) * s
	y = (float64(row) + 0.5) * 2 * s
	if col < 0 || row < 0 || x >= float64(v.surfW) || y >= float64(v.surfH) {
		return 0, 0, false
	}
	return x, y, true
}

// scale returns surface pixels per cell column. A cell is two pixel rows
// tall. Callers hold mu.
func (v *View) scale() float64 {
	cols, rows := v.screen.Size()
	rows-- // status line
	if cols <= 0 || rows <= 0 || v.surfW <= 0 || v.surfH <= 0 {
		return 0
	}
	sx := float64(v.surfW) / float64(cols)
	sy := float64(v.surfH) / float64(rows*2)
	return max(sx, sy, 1)
}

func (v *View) paint(img image.Image) {
	s := v.scale()
	if s == 0 {
		return
	}
	b := img.Bounds()
	cols := int(float64(v.surfW) / s)
	rows := int(float64(v.surfH) / (2 * s))
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			px := b.Min.X + int((float64(col)+0.5)*s)
			top := b.Min.Y + int((float64(row*2)+0.5)*s)
			bottom := b.Min.Y + int((float64(row*2+1)+0.5)*s)
			style := tcell.StyleDefault.
				Foreground(cellColor(img, px, top)).
				Background(cellColor(img, px, bottom))
			v.screen.SetContent(col, row, upperHalf, nil, style)
		}
	}
}

func (v *View) drawStatus() {
	cols, rows := v.screen.Size()
	if rows == 0 {
		return
	}
	style := tcell.StyleDefault.Reverse(true)
	col := 0
	for _, r := range v.status {
		if col >= cols {
			break
		}
		v.screen.SetContent(col, rows-1, r, nil, style)
		col++
	}
	for ; col < cols; col++ {
		v.screen.SetContent(col, rows-1, ' ', nil, style)
	}
}

func cellColor(img image.Image, x, y int) tcell.Color {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return tcell.ColorBlack
	}
	r, g, b, _ := img.At(x, y).RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func statusLine(f face.Frame) string {
	s := fmt.Sprintf(" #%d %s %s battery %d%%", f.Seq, f.At.Format("15:04:05 MST"), f.Mode, f.BatteryLevel)
	if f.Degraded {
		s += " (stale)"
	}
	return s + "  [a]mbient [v]isible [m]ute [u/U]nread [b/B]attery [p]anel [c]omplication [z]one [q]uit"
}
