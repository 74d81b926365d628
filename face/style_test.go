package face

import (
	"testing"

	"github.com/stretchr/testify/assert"

	wf "github.com/gogpu/watchface"
	"github.com/gogpu/watchface/recording"
)

func TestStylesActive(t *testing.T) {
	s := StylesFor(activeState())
	for name, p := range map[string]recording.Paint{
		"hour": s.Hour, "dates": s.Dates, "battery": s.BatteryArc, "used": s.BatteryUsed,
	} {
		assert.True(t, p.AntiAlias, name)
		assert.Equal(t, 6.0, p.Shadow.Radius, name)
		assert.Equal(t, wf.Blue, p.Color, name)
	}
	assert.Equal(t, 5.0, s.Hour.StrokeWidth)
	assert.Equal(t, 5.0, s.BatteryArc.StrokeWidth)
	assert.Equal(t, 2.0, s.BatteryUsed.StrokeWidth)
	assert.Equal(t, 2.0, s.Dates.StrokeWidth)
	assert.Equal(t, 80.0, s.Hour.TextSize)
	assert.Equal(t, 15.0, s.Dates.TextSize)
}

func TestStylesAmbient(t *testing.T) {
	st := activeState()
	st.Ambient = true
	s := StylesFor(st)
	for _, p := range []recording.Paint{s.Hour, s.Dates, s.BatteryArc, s.BatteryUsed} {
		assert.False(t, p.AntiAlias)
		assert.False(t, p.HasShadow())
	}
}

func TestStylesMuteComposesWithAmbient(t *testing.T) {
	for _, ambient := range []bool{false, true} {
		st := activeState()
		st.Mute = true
		st.Ambient = ambient
		s := StylesFor(st)

		assert.InDelta(t, 100.0/255, s.Hour.Color.A, 1e-9)
		assert.InDelta(t, 100.0/255, s.Dates.Color.A, 1e-9)
		assert.Equal(t, 1.0, s.BatteryArc.Color.A, "battery is not dimmed")
		assert.Equal(t, !ambient, s.Hour.AntiAlias)
	}
}

func TestDisplayStateTransitions(t *testing.T) {
	var st DisplayState
	assert.Equal(t, ModeActive, st.Mode())
	assert.True(t, st.SetAmbient(true))
	assert.False(t, st.SetAmbient(true))
	assert.Equal(t, ModeAmbient, st.Mode())
	assert.Equal(t, "ambient", st.Mode().String())

	assert.True(t, st.DiscoverCapabilities(true, false))
	assert.False(t, st.DiscoverCapabilities(false, true), "capabilities are sticky")
	assert.True(t, st.LowBitAmbient)
	assert.False(t, st.BurnInProtection)

	assert.False(t, st.SetUnreadCount(3), "indicator preference off")
	st.UnreadIndicator = true
	assert.True(t, st.SetUnreadCount(3))
	assert.False(t, st.SetUnreadCount(3))
	assert.True(t, st.SetUnreadCount(-2))
	assert.Equal(t, 0, st.UnreadCount)
}

func TestShouldRunTimerMatrix(t *testing.T) {
	tests := []struct {
		visible, ambient, want bool
	}{
		{true, false, true},
		{true, true, false},
		{false, false, false},
		{false, true, false},
	}
	for _, tt := range tests {
		st := DisplayState{Visible: tt.visible, Ambient: tt.ambient}
		if got := st.ShouldRunTimer(); got != tt.want {
			t.Errorf("ShouldRunTimer(visible=%v, ambient=%v) = %v, want %v", tt.visible, tt.ambient, got, tt.want)
		}
	}
}
