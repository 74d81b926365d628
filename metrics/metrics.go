// Package metrics exposes prometheus instrumentation for the watch face
// engine. All methods are safe on a nil *Metrics, so an engine without
// metrics needs no special casing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for frame composition and scheduling.
type Metrics struct {
	// Frames composed by mode ("active", "ambient")
	Frames *prometheus.CounterVec

	// Frames drawn with a stale battery reading
	DegradedFrames prometheus.Counter

	// Time spent composing and presenting one frame
	ComposeLatency prometheus.Histogram

	// Scheduler wakes that redrew, and wakes dropped as stale
	WakesFired   prometheus.Counter
	WakesDropped prometheus.Counter

	// Taps by claiming slot ("background", "left", "right", "none")
	Taps *prometheus.CounterVec

	// Presenter failures
	PresentErrors prometheus.Counter
}

// New registers the engine metrics with reg. A nil reg uses the default
// registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		Frames: f.NewCounterVec(prometheus.CounterOpts{
			Name: "watchface_frames_total",
			Help: "Total frames composed by display mode",
		}, []string{"mode"}),

		DegradedFrames: f.NewCounter(prometheus.CounterOpts{
			Name: "watchface_degraded_frames_total",
			Help: "Frames drawn with the last known battery level after a read failure",
		}),

		ComposeLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "watchface_compose_duration_seconds",
			Help:    "Duration of composing and presenting one frame",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),

		WakesFired: f.NewCounter(prometheus.CounterOpts{
			Name: "watchface_scheduler_wakes_total",
			Help: "Scheduler wakes that produced a frame",
		}),

		WakesDropped: f.NewCounter(prometheus.CounterOpts{
			Name: "watchface_scheduler_stale_wakes_total",
			Help: "Scheduler wakes discarded after cancellation",
		}),

		Taps: f.NewCounterVec(prometheus.CounterOpts{
			Name: "watchface_taps_total",
			Help: "Taps by the slot that claimed them",
		}, []string{"slot"}),

		PresentErrors: f.NewCounter(prometheus.CounterOpts{
			Name: "watchface_present_errors_total",
			Help: "Frames the presenter failed to show",
		}),
	}
}

// ObserveFrame records one composed frame.
func (m *Metrics) ObserveFrame(mode string, degraded bool, d time.Duration) {
	if m == nil {
		return
	}
	m.Frames.WithLabelValues(mode).Inc()
	if degraded {
		m.DegradedFrames.Inc()
	}
	m.ComposeLatency.Observe(d.Seconds())
}

// IncrementWake records a scheduler wake; stale wakes count as dropped.
func (m *Metrics) IncrementWake(stale bool) {
	if m == nil {
		return
	}
	if stale {
		m.WakesDropped.Inc()
		return
	}
	m.WakesFired.Inc()
}

// IncrementTap records a tap claimed by slot.
func (m *Metrics) IncrementTap(slot string) {
	if m != nil {
		m.Taps.WithLabelValues(slot).Inc()
	}
}

// IncrementPresentError records a presenter failure.
func (m *Metrics) IncrementPresentError() {
	if m != nil {
		m.PresentErrors.Inc()
	}
}
