package recording

import (
	"errors"
	"image"
	"math"
	"testing"

	wf "github.com/gogpu/watchface"
	"github.com/gogpu/watchface/text"
)

func TestNewRecorder(t *testing.T) {
	rec := NewRecorder(320, 280, nil)

	if rec.Width() != 320 {
		t.Errorf("Width() = %d, want 320", rec.Width())
	}
	if rec.Height() != 280 {
		t.Errorf("Height() = %d, want 280", rec.Height())
	}
	if !rec.Transform().IsIdentity() {
		t.Error("new recorder should start with identity transform")
	}
	if got := rec.MeasureText("ab", 10); got != 10 {
		t.Errorf("MeasureText with default measurer = %v, want 10", got)
	}
}

func TestRecorderFinishRecording(t *testing.T) {
	rec := NewRecorder(100, 100, nil)
	rec.DrawColor(wf.Black)
	rec.DrawCircle(50, 50, 25, DefaultPaint())

	r := rec.FinishRecording()
	if r.Width() != 100 || r.Height() != 100 {
		t.Errorf("recording size = %dx%d, want 100x100", r.Width(), r.Height())
	}
	if len(r.Commands()) != 2 {
		t.Fatalf("len(Commands()) = %d, want 2", len(r.Commands()))
	}
	if r.Resources() == nil {
		t.Error("Resources() should not be nil")
	}
	if got, want := r.String(), "100x100: DrawColor DrawCircle"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRecorderSkipsEmptyDraws(t *testing.T) {
	rec := NewRecorder(100, 100, nil)
	p := DefaultPaint()

	rec.DrawCircle(10, 10, 0, p)
	rec.DrawArc(wf.LTRB(0, 0, 10, 10), 30, 0, p)
	rec.DrawText("", 0, 0, p)
	rec.DrawRect(wf.Rect{}, p)
	rec.DrawImage(nil, wf.LTRB(0, 0, 10, 10), p)

	if n := len(rec.FinishRecording().Commands()); n != 0 {
		t.Errorf("empty draws recorded %d commands, want 0", n)
	}
}

func TestRecorderRotationAccumulates(t *testing.T) {
	rec := NewRecorder(200, 200, nil)

	rec.Save()
	rec.RotateAbout(-68, 100, 100)
	rec.RotateAbout(17, 100, 100)
	rec.DrawText("We", 90, 25, DefaultPaint())
	rec.Restore()
	rec.DrawText("after", 90, 25, DefaultPaint())

	texts := rec.FinishRecording().Texts()
	if len(texts) != 2 {
		t.Fatalf("len(Texts()) = %d, want 2", len(texts))
	}
	if got := texts[0].Transform.Angle(); math.Abs(got-(-51)) > 1e-9 {
		t.Errorf("accumulated angle = %v, want -51", got)
	}
	if !texts[1].Transform.IsIdentity() {
		t.Errorf("transform after Restore = %v, want identity", texts[1].Transform)
	}
}

func TestRecorderRestoreWithoutSave(t *testing.T) {
	rec := NewRecorder(10, 10, nil)
	rec.Restore()

	if n := len(rec.FinishRecording().Commands()); n != 0 {
		t.Errorf("unbalanced Restore recorded %d commands, want 0", n)
	}
}

func TestRecorderPaintIsCopied(t *testing.T) {
	rec := NewRecorder(10, 10, nil)
	p := DefaultPaint().WithColor(wf.Red)
	rec.DrawCircle(5, 5, 2, p)
	p.Color = wf.Green

	cmd := rec.FinishRecording().Commands()[0].(DrawCircleCommand)
	if cmd.Paint.Color != wf.Red {
		t.Errorf("recorded color = %v, want red", cmd.Paint.Color)
	}
}

func TestRecorderMeasurer(t *testing.T) {
	m := text.MeasurerFunc(func(s string, size float64) float64 {
		return float64(len(s)) * size
	})
	rec := NewRecorder(10, 10, m)

	if got := rec.MeasureText("abc", 2); got != 6 {
		t.Errorf("MeasureText = %v, want 6", got)
	}
}

func TestDrawTextOrigin(t *testing.T) {
	rec := NewRecorder(200, 200, nil)
	rec.Save()
	rec.RotateAbout(90, 100, 100)
	rec.DrawText("x", 100, 0, DefaultPaint())
	rec.Restore()

	origin := rec.FinishRecording().Texts()[0].Origin()
	if math.Abs(origin.X-200) > 1e-9 || math.Abs(origin.Y-100) > 1e-9 {
		t.Errorf("Origin() = %v, want (200,100)", origin)
	}
}

// callLog records backend calls by command type.
type callLog struct {
	began, ended bool
	calls        []CommandType
	images       int
	beginErr     error
}

func (b *callLog) Begin(w, h int) error {
	b.began = true
	return b.beginErr
}
func (b *callLog) End() error                                 { b.ended = true; return nil }
func (b *callLog) Save()                                      { b.calls = append(b.calls, CmdSave) }
func (b *callLog) Restore()                                   { b.calls = append(b.calls, CmdRestore) }
func (b *callLog) Rotate(float64, wf.Point)                   { b.calls = append(b.calls, CmdRotate) }
func (b *callLog) DrawColor(wf.RGBA)                          { b.calls = append(b.calls, CmdDrawColor) }
func (b *callLog) DrawCircle(wf.Point, float64, Paint)        { b.calls = append(b.calls, CmdDrawCircle) }
func (b *callLog) DrawArc(wf.Rect, float64, float64, Paint)   { b.calls = append(b.calls, CmdDrawArc) }
func (b *callLog) DrawRect(wf.Rect, float64, Paint)           { b.calls = append(b.calls, CmdDrawRect) }
func (b *callLog) DrawText(string, float64, float64, Paint)   { b.calls = append(b.calls, CmdDrawText) }
func (b *callLog) DrawImage(image.Image, wf.Rect, Paint) {
	b.images++
	b.calls = append(b.calls, CmdDrawImage)
}

func TestPlayback(t *testing.T) {
	rec := NewRecorder(64, 64, nil)
	p := DefaultPaint()
	rec.DrawColor(wf.Black)
	rec.Save()
	rec.RotateAbout(17, 32, 32)
	rec.DrawText("Mo", 20, 20, p)
	rec.Restore()
	rec.DrawArc(wf.LTRB(0, 0, 64, 64), 30, 90, p)
	rec.DrawRect(wf.LTRB(1, 1, 5, 5), p)
	rec.DrawImage(image.NewRGBA(image.Rect(0, 0, 4, 4)), wf.LTRB(0, 0, 8, 8), p)
	rec.DrawCircle(32, 32, 4, p)

	b := &callLog{}
	if err := rec.FinishRecording().Playback(b); err != nil {
		t.Fatalf("Playback() error = %v", err)
	}
	if !b.began || !b.ended {
		t.Error("Playback should call Begin and End")
	}
	want := []CommandType{CmdDrawColor, CmdSave, CmdRotate, CmdDrawText, CmdRestore, CmdDrawArc, CmdDrawRect, CmdDrawImage, CmdDrawCircle}
	if len(b.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", b.calls, want)
	}
	for i := range want {
		if b.calls[i] != want[i] {
			t.Errorf("calls[%d] = %v, want %v", i, b.calls[i], want[i])
		}
	}
	if b.images != 1 {
		t.Errorf("images drawn = %d, want 1", b.images)
	}
}

func TestPlaybackBeginError(t *testing.T) {
	rec := NewRecorder(4, 4, nil)
	rec.DrawColor(wf.White)
	boom := errors.New("boom")
	b := &callLog{beginErr: boom}

	if err := rec.FinishRecording().Playback(b); !errors.Is(err, boom) {
		t.Errorf("Playback() error = %v, want %v", err, boom)
	}
	if len(b.calls) != 0 || b.ended {
		t.Error("no commands should be replayed after Begin fails")
	}
}
