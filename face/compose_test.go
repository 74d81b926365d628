package face

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"

	wf "github.com/gogpu/watchface"
	"github.com/gogpu/watchface/complication"
	"github.com/gogpu/watchface/recording"
	"github.com/gogpu/watchface/text"
)

// Monday 2026-10-19 10:09:00.250 UTC.
var epoch = time.Date(2026, 10, 19, 10, 9, 0, 250_000_000, time.UTC)

func activeState() DisplayState {
	return DisplayState{
		Visible:         true,
		PrimaryColor:    wf.Blue,
		BackgroundColor: wf.Hex("#202020"),
		ShadowColor:     wf.Black,
		UnreadIndicator: true,
	}
}

func compose(t *testing.T, st DisplayState, now time.Time) *recording.Recording {
	t.Helper()
	return Compose(Scene{
		Width:        400,
		Height:       400,
		Now:          now,
		State:        st,
		BatteryLevel: 50,
		Registry:     complication.New(nil),
	}, text.Fixed{})
}

func textsOf(r *recording.Recording) []string {
	var out []string
	for _, c := range r.Texts() {
		out = append(out, c.Text)
	}
	return out
}

func hasColon(r *recording.Recording) bool {
	for _, s := range textsOf(r) {
		if s == ":" {
			return true
		}
	}
	return false
}

func TestColonVisible(t *testing.T) {
	base := time.UnixMilli(1_700_000_000_000) // divisible by 2000
	tests := []struct {
		offset time.Duration
		want   bool
	}{
		{0, true},
		{500 * time.Millisecond, true},
		{999 * time.Millisecond, true},
		{1000 * time.Millisecond, false},
		{1500 * time.Millisecond, false},
		{2000 * time.Millisecond, true},
	}
	for _, tt := range tests {
		if got := ColonVisible(base.Add(tt.offset)); got != tt.want {
			t.Errorf("ColonVisible(+%v) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestComposeColonBlinksWhenActive(t *testing.T) {
	base := time.UnixMilli(1_700_000_000_000).UTC()
	assert.True(t, hasColon(compose(t, activeState(), base.Add(500*time.Millisecond))))
	assert.False(t, hasColon(compose(t, activeState(), base.Add(1500*time.Millisecond))))
}

func TestComposeAmbientAlwaysShowsColon(t *testing.T) {
	st := activeState()
	st.Ambient = true
	base := time.UnixMilli(1_700_000_000_000).UTC()
	for ms := 0; ms < 2000; ms += 250 {
		r := compose(t, st, base.Add(time.Duration(ms)*time.Millisecond))
		assert.True(t, hasColon(r), "colon hidden at %dms", ms)
		for _, c := range r.Texts() {
			assert.False(t, c.Paint.AntiAlias, "ambient text %q is anti-aliased", c.Text)
			assert.False(t, c.Paint.HasShadow())
		}
	}
}

func TestDisplayHour(t *testing.T) {
	tests := []struct {
		hour, want int
	}{
		{0, 12}, {1, 1}, {11, 11}, {12, 12}, {13, 1}, {23, 11},
	}
	for _, tt := range tests {
		at := time.Date(2026, 1, 1, tt.hour, 5, 0, 0, time.UTC)
		if got := DisplayHour(at); got != tt.want {
			t.Errorf("DisplayHour(%02d:05) = %d, want %d", tt.hour, got, tt.want)
		}
	}
}

func TestComposeMidnightShowsTwelve(t *testing.T) {
	r := compose(t, activeState(), time.Date(2026, 1, 1, 0, 7, 0, 0, time.UTC))
	texts := textsOf(r)
	require.GreaterOrEqual(t, len(texts), 3)
	assert.Equal(t, []string{"12", ":", "07"}, texts[len(texts)-3:])
}

func TestComposeTimeLayout(t *testing.T) {
	r := compose(t, activeState(), epoch) // 10:09, colon lit
	texts := r.Texts()
	hour, colon, minute := texts[len(texts)-3], texts[len(texts)-2], texts[len(texts)-1]

	// Fixed measurer: 40px per rune at size 80. "10:01" is 200 wide.
	assert.Equal(t, "10", hour.Text)
	assert.Equal(t, 100.0, hour.X)
	assert.Equal(t, 200.0, hour.Y)
	assert.Equal(t, 180.0, colon.X)
	assert.Equal(t, "09", minute.Text)
	assert.Equal(t, 220.0, minute.X)
	assert.Equal(t, 80.0, hour.Paint.TextSize)
	assert.True(t, hour.Transform.IsIdentity())
}

func TestComposeTimeLayoutShaped(t *testing.T) {
	shaper, err := text.NewShaper(goregular.TTF, "en")
	require.NoError(t, err)
	r := Compose(Scene{
		Width:        400,
		Height:       400,
		Now:          epoch,
		State:        activeState(),
		BatteryLevel: 50,
		Registry:     complication.New(nil),
	}, shaper)
	texts := r.Texts()
	hour, colon, minute := texts[len(texts)-3], texts[len(texts)-2], texts[len(texts)-1]

	left := 200 - shaper.MeasureText("10:01", 80)/2
	assert.InDelta(t, left, hour.X, 1e-9)
	assert.InDelta(t, left+shaper.MeasureText("10", 80), colon.X, 1e-9)
	assert.InDelta(t, colon.X+shaper.MeasureText(":", 80), minute.X, 1e-9)
	// Proportional glyphs: the colon is narrower than a digit.
	assert.Less(t, minute.X-colon.X, shaper.MeasureText("0", 80))
}

func TestComposeOrder(t *testing.T) {
	st := activeState()
	st.UnreadCount = 2
	r := compose(t, st, epoch)
	cmds := r.Commands()

	require.NotEmpty(t, cmds)
	assert.Equal(t, recording.CmdDrawColor, cmds[0].Type(), "background first")

	// Unread dots come before the date strip rotation.
	firstRotate, firstCircle := -1, -1
	for i, c := range cmds {
		if c.Type() == recording.CmdRotate && firstRotate < 0 {
			firstRotate = i
		}
		if c.Type() == recording.CmdDrawCircle && firstCircle < 0 {
			firstCircle = i
		}
	}
	assert.Less(t, firstCircle, firstRotate)

	last := cmds[len(cmds)-1]
	assert.Equal(t, recording.CmdDrawArc, last.Type(), "battery last")
}

func TestComposeBackgroundRule(t *testing.T) {
	bg := wf.Hex("#202020")
	tests := []struct {
		name                    string
		ambient, lowBit, burnIn bool
		want                    wf.RGBA
	}{
		{"active", false, false, false, bg},
		{"active ignores caps", false, true, true, bg},
		{"ambient plain panel", true, false, false, bg},
		{"ambient low bit", true, true, false, wf.Black},
		{"ambient burn in", true, false, true, wf.Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := activeState()
			st.Ambient = tt.ambient
			st.DiscoverCapabilities(tt.lowBit, tt.burnIn)
			cmd := compose(t, st, epoch).Commands()[0].(recording.DrawColorCommand)
			assert.Equal(t, tt.want, cmd.Color)
		})
	}
}

func circles(r *recording.Recording) []recording.DrawCircleCommand {
	var out []recording.DrawCircleCommand
	for _, c := range r.Commands() {
		if dc, ok := c.(recording.DrawCircleCommand); ok {
			out = append(out, dc)
		}
	}
	return out
}

func TestComposeUnreadIndicator(t *testing.T) {
	st := activeState()
	assert.Empty(t, circles(compose(t, st, epoch)), "no unread, no dot")

	st.UnreadCount = 1
	got := circles(compose(t, st, epoch))
	require.Len(t, got, 2)
	assert.Equal(t, wf.Pt(200, 360), got[0].Center)
	assert.Equal(t, 10.0, got[0].Radius)
	assert.Equal(t, recording.StyleStroke, got[0].Paint.Style)
	assert.Equal(t, 4.0, got[1].Radius)

	st.Ambient = true
	got = circles(compose(t, st, epoch))
	require.Len(t, got, 1, "inner dot is active only")

	st.UnreadIndicator = false
	assert.Empty(t, circles(compose(t, st, epoch)))
}

func TestComposeBatteryArcs(t *testing.T) {
	r := compose(t, activeState(), epoch)
	var arcs []recording.DrawArcCommand
	for _, c := range r.Commands() {
		if a, ok := c.(recording.DrawArcCommand); ok {
			arcs = append(arcs, a)
		}
	}
	require.Len(t, arcs, 2)
	assert.Equal(t, 90.0, arcs[0].StartAngle)
	assert.Equal(t, 60.0, arcs[0].Sweep)
	assert.Equal(t, 5.0, arcs[0].Paint.StrokeWidth)
	assert.Equal(t, 30.0, arcs[1].StartAngle)
	assert.Equal(t, 60.0, arcs[1].Sweep)
	assert.Equal(t, 2.0, arcs[1].Paint.StrokeWidth)
}

func TestComposeDrawsComplicationPayload(t *testing.T) {
	reg := complication.New(nil)
	reg.ConfigureLayout(400, 400)
	reg.UpdateData(complication.Left, &complication.Data{Kind: complication.KindShortText, ShortText: "42"})

	r := Compose(Scene{Width: 400, Height: 400, Now: epoch, State: activeState(), BatteryLevel: 80, Registry: reg}, text.Fixed{})
	assert.Contains(t, textsOf(r), "42")
}

func TestComposeLocalizedDateStrip(t *testing.T) {
	r := Compose(Scene{
		Width: 400, Height: 400, Now: epoch, State: activeState(),
		Locale: NewLocale(language.German),
	}, text.Fixed{})
	texts := textsOf(r)
	assert.Contains(t, texts, "Mo.")
	assert.Contains(t, texts, "Okt. 19")
}
