// Package face is the watch face render and state engine.
//
// An Engine receives host events (surface size, ambient mode, visibility,
// complication data, taps), keeps the display state and complication
// registry, decides when to redraw, and composes each frame as a
// recording.Recording handed to a Presenter.
//
// # Modes
//
// In active mode the face redraws once per cadence (one second by
// default), aligned to the wall-clock second, and the hour colon blinks.
// In ambient mode the scheduler is idle and the face redraws only on
// events such as the minute TimeTick; anti-aliasing and shadows are off,
// and panels with low-bit or burn-in constraints draw on black.
//
// # Frame layout
//
// A frame is drawn in a fixed order: background, complications (back to
// front), unread indicator, date strip, hour and minute, battery arcs. The
// date strip is placed by cumulative canvas rotation about the center;
// DateStrip exposes the resulting labels and angles.
//
// # Concurrency
//
// Run owns all state. Dispatch blocks until its event and any frame it
// caused have been handled, so callers observe frames in event order.
package face
