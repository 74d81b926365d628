package face

import (
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/text/language"

	wf "github.com/gogpu/watchface"
	"github.com/gogpu/watchface/complication"
	"github.com/gogpu/watchface/host"
	"github.com/gogpu/watchface/metrics"
	"github.com/gogpu/watchface/text"
)

// TapHandler is called when a tap lands on a complication with a payload.
type TapHandler func(slot complication.SlotID, data *complication.Data)

// Option configures an Engine.
type Option func(*options)

type options struct {
	cadence    time.Duration
	clock      clockwork.Clock
	prefs      host.PreferenceSource
	battery    host.BatterySource
	zone       host.ZoneSource
	presenter  Presenter
	measurer   text.Measurer
	metrics    *metrics.Metrics
	onTap      TapHandler
	locale     Locale
	background wf.RGBA
	shadow     wf.RGBA
	renderers  func(complication.SlotID) complication.Renderer
}

func defaultOptions() options {
	return options{
		cadence:    DefaultCadence,
		clock:      clockwork.NewRealClock(),
		prefs:      host.StaticPreferences(host.DefaultPreferences()),
		battery:    host.NewManualBattery(100),
		zone:       host.NewManualZone(time.Local),
		presenter:  discard,
		measurer:   text.GoRegular(),
		locale:     NewLocale(language.English),
		background: wf.Black,
		shadow:     wf.Black,
	}
}

// WithCadence sets the interactive redraw period. Default: 1s.
func WithCadence(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.cadence = d
		}
	}
}

// WithClock sets the time source.
func WithClock(c clockwork.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithPreferences sets the preference source.
func WithPreferences(p host.PreferenceSource) Option {
	return func(o *options) {
		if p != nil {
			o.prefs = p
		}
	}
}

// WithBattery sets the battery level source.
func WithBattery(b host.BatterySource) Option {
	return func(o *options) {
		if b != nil {
			o.battery = b
		}
	}
}

// WithZone sets the time zone source.
func WithZone(z host.ZoneSource) Option {
	return func(o *options) {
		if z != nil {
			o.zone = z
		}
	}
}

// WithPresenter sets where frames go. Default: frames are dropped.
func WithPresenter(p Presenter) Option {
	return func(o *options) {
		if p != nil {
			o.presenter = p
		}
	}
}

// WithMeasurer sets the text measurer used for layout. Default: Go Regular.
func WithMeasurer(m text.Measurer) Option {
	return func(o *options) {
		if m != nil {
			o.measurer = m
		}
	}
}

// WithMetrics enables prometheus instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithTapHandler sets the complication tap callback.
func WithTapHandler(h TapHandler) Option {
	return func(o *options) {
		o.onTap = h
	}
}

// WithLocale sets the language of the date strip.
func WithLocale(tag language.Tag) Option {
	return func(o *options) {
		o.locale = NewLocale(tag)
	}
}

// WithBackgroundColor sets the active background color. Default: black.
func WithBackgroundColor(c wf.RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithShadowColor sets the active shadow color. Default: black.
func WithShadowColor(c wf.RGBA) Option {
	return func(o *options) {
		o.shadow = c
	}
}

// WithRenderers sets the complication renderer factory.
func WithRenderers(factory func(complication.SlotID) complication.Renderer) Option {
	return func(o *options) {
		o.renderers = factory
	}
}
