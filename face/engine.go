package face

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	wf "github.com/gogpu/watchface"
	"github.com/gogpu/watchface/complication"
	"github.com/gogpu/watchface/host"
)

// request carries one event into the engine goroutine. done is closed once
// the event, and any frame it caused, has been handled.
type request struct {
	ev   Event
	done chan struct{}
}

// Engine is a watch face instance. All state lives on the goroutine that
// runs Run; other goroutines talk to it through Dispatch.
//
// Example:
//
//	e := face.New(face.WithPresenter(p), face.WithBattery(b))
//	go e.Run(ctx)
//	e.Dispatch(ctx, face.Create{Width: 320, Height: 320})
//	e.Dispatch(ctx, face.VisibilityChanged{Visible: true})
type Engine struct {
	id   string
	opts options

	requests chan request
	stopped  chan struct{}
	// enqueue delivers events raised by timers and subscriptions.
	enqueue func(Event)

	// Owned by the engine goroutine.
	created     bool
	width       int
	height      int
	state       DisplayState
	prefs       host.Preferences
	registry    *complication.Registry
	sched       *scheduler
	loc         *time.Location
	unsubscribe func()
	lastLevel   int
	seq         uint64
	dirty       bool
}

// New creates an engine. It does nothing until Run is started and a
// Create event arrives.
func New(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{
		id:        uuid.NewString(),
		opts:      o,
		requests:  make(chan request, 16),
		stopped:   make(chan struct{}),
		prefs:     host.DefaultPreferences(),
		registry:  complication.New(o.renderers),
		lastLevel: 100,
	}
	e.enqueue = e.post
	e.loc = e.zoneLocation()
	e.sched = newScheduler(o.clock, o.cadence, func(gen uint64) { e.enqueue(wake{gen: gen}) })
	e.state.BackgroundColor = o.background
	e.state.ShadowColor = o.shadow
	e.applyPreferences(e.prefs)
	return e
}

// ID returns the engine session id used in logs.
func (e *Engine) ID() string {
	return e.id
}

func (e *Engine) logger() *slog.Logger {
	return wf.Logger().With("engine", e.id)
}

// Run processes events until ctx is done or a Destroy event is handled.
// It returns nil after Destroy and ctx.Err() on cancellation.
func (e *Engine) Run(ctx context.Context) error {
	defer close(e.stopped)
	defer e.shutdown()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case req := <-e.requests:
			e.handle(req.ev)
			if req.done != nil {
				close(req.done)
			}
			if _, ok := req.ev.(Destroy); ok {
				return nil
			}
		}
	}
}

// Dispatch delivers ev and waits until it has been handled, including any
// frame it caused.
func (e *Engine) Dispatch(ctx context.Context, ev Event) error {
	req := request{ev: ev, done: make(chan struct{})}
	select {
	case e.requests <- req:
	case <-e.stopped:
		return ErrEngineStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-req.done:
		return nil
	case <-e.stopped:
		return ErrEngineStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Render composes and presents a frame now, regardless of visibility.
func (e *Engine) Render(ctx context.Context) (Frame, error) {
	reply := make(chan renderResult, 1)
	if err := e.Dispatch(ctx, render{reply: reply}); err != nil {
		return Frame{}, err
	}
	r := <-reply
	return r.frame, r.err
}

// post is the asynchronous delivery path for timers and zone callbacks.
func (e *Engine) post(ev Event) {
	select {
	case e.requests <- request{ev: ev}:
	case <-e.stopped:
	}
}

// handle applies one event and draws if it invalidated the face.
func (e *Engine) handle(ev Event) {
	log := e.logger()
	log.Debug("event", "type", ev.eventName())

	switch ev := ev.(type) {
	case Create:
		e.created = true
		e.resize(ev.Width, ev.Height)
		e.reloadPreferences()
		log.Info("engine created", "width", ev.Width, "height", ev.Height)

	case SurfaceChanged:
		e.resize(ev.Width, ev.Height)

	case PropertiesDiscovered:
		if e.state.DiscoverCapabilities(ev.LowBitAmbient, ev.BurnInProtection) {
			e.registry.SetAmbientCapabilities(ev.LowBitAmbient, ev.BurnInProtection)
			log.Info("panel capabilities", "low_bit", ev.LowBitAmbient, "burn_in", ev.BurnInProtection)
		} else {
			log.Debug("capabilities already known, ignoring")
		}

	case ComplicationDataUpdate:
		if e.registry.UpdateData(ev.Slot, ev.Data) {
			e.dirty = true
		}

	case Tap:
		e.tap(ev.X, ev.Y)

	case AmbientModeChanged:
		if e.state.SetAmbient(ev.Ambient) {
			e.registry.SetAmbient(ev.Ambient)
		}
		e.sched.Reconcile(e.state.ShouldRunTimer())
		e.dirty = true

	case VisibilityChanged:
		e.setVisible(ev.Visible)

	case InterruptionFilterChanged:
		if e.state.SetMute(ev.Muted) {
			e.dirty = true
		}

	case UnreadCountChanged:
		if e.state.SetUnreadCount(ev.Count) {
			e.dirty = true
		}

	case TimezoneChanged:
		e.loc = e.zoneLocation()
		e.dirty = true

	case TimeTick:
		e.dirty = true

	case Destroy:
		e.shutdown()
		log.Info("engine destroyed")

	case wake:
		stale := e.sched.Stale(ev.gen)
		e.opts.metrics.IncrementWake(stale)
		if stale {
			log.Debug("dropping stale wake", "gen", ev.gen)
			return
		}
		e.sched.Fired()
		e.dirty = true
		e.drawIfDirty()
		e.sched.Reconcile(e.state.ShouldRunTimer())
		return

	case render:
		if !e.created {
			ev.reply <- renderResult{err: ErrNotCreated}
			return
		}
		f, err := e.draw()
		ev.reply <- renderResult{frame: f, err: err}
		return
	}

	e.drawIfDirty()
}

func (e *Engine) resize(w, h int) {
	e.width, e.height = w, h
	e.registry.ConfigureLayout(w, h)
	e.dirty = true
}

func (e *Engine) setVisible(visible bool) {
	e.state.Visible = visible
	if visible {
		// Preferences and zone may have changed while hidden.
		e.reloadPreferences()
		e.subscribeZone()
		e.loc = e.zoneLocation()
		e.dirty = true
	} else {
		e.unsubscribeZone()
	}
	e.sched.Reconcile(e.state.ShouldRunTimer())
	e.logger().Info("visibility changed", "visible", visible)
}

func (e *Engine) zoneLocation() *time.Location {
	if loc := e.opts.zone.Location(); loc != nil {
		return loc
	}
	return time.Local
}

func (e *Engine) subscribeZone() {
	if e.unsubscribe != nil {
		return
	}
	e.unsubscribe = e.opts.zone.Subscribe(func() { e.enqueue(TimezoneChanged{}) })
}

func (e *Engine) unsubscribeZone() {
	if e.unsubscribe == nil {
		return
	}
	e.unsubscribe()
	e.unsubscribe = nil
}

func (e *Engine) reloadPreferences() {
	p, err := e.opts.prefs.Load()
	if err != nil {
		e.logger().Warn("loading preferences failed, keeping previous", "err", err)
		return
	}
	e.applyPreferences(p)
}

func (e *Engine) applyPreferences(p host.Preferences) {
	e.prefs = p
	e.state.PrimaryColor = p.PrimaryColor
	e.state.UnreadIndicator = p.UnreadIndicator
	e.registry.SetPalettes(p.PrimaryColor)
}

func (e *Engine) tap(x, y float64) {
	slot, ok := e.registry.HitTest(x, y, e.opts.clock.Now())
	if !ok {
		e.opts.metrics.IncrementTap("none")
		return
	}
	e.opts.metrics.IncrementTap(slot.String())
	s, _ := e.registry.Slot(slot)
	e.logger().Debug("tap", "slot", slot, "x", x, "y", y)
	if e.opts.onTap != nil {
		e.opts.onTap(slot, s.Data)
	}
}

func (e *Engine) shutdown() {
	e.sched.cancel()
	e.unsubscribeZone()
	e.created = false
}

func (e *Engine) drawIfDirty() {
	if !e.dirty || !e.created || !e.state.Visible {
		return
	}
	_, _ = e.draw()
}

// draw composes and presents one frame. Presenter errors are logged and
// counted; the next frame starts fresh.
func (e *Engine) draw() (Frame, error) {
	e.dirty = false
	if e.width <= 0 || e.height <= 0 {
		return Frame{}, nil
	}
	start := time.Now()

	now := e.opts.clock.Now().In(e.loc)
	level, degraded := e.batteryLevel()

	rec := Compose(Scene{
		Width:        e.width,
		Height:       e.height,
		Now:          now,
		State:        e.state,
		BatteryLevel: level,
		Registry:     e.registry,
		Locale:       e.opts.locale,
	}, e.opts.measurer)

	e.seq++
	f := Frame{
		Seq:          e.seq,
		At:           now,
		Width:        e.width,
		Height:       e.height,
		Mode:         e.state.Mode(),
		BatteryLevel: level,
		Degraded:     degraded,
		Recording:    rec,
	}

	err := e.opts.presenter.Present(f)
	if err != nil {
		e.opts.metrics.IncrementPresentError()
		e.logger().Warn("presenting frame failed", "seq", f.Seq, "err", err)
	}
	e.opts.metrics.ObserveFrame(f.Mode.String(), degraded, time.Since(start))
	return f, err
}

// batteryLevel samples the battery, falling back to the last good level.
func (e *Engine) batteryLevel() (int, bool) {
	level, err := e.opts.battery.Level()
	if err == nil {
		err = host.CheckLevel(level)
	}
	if err != nil {
		e.logger().Warn("battery read failed, using last level", "last", e.lastLevel, "err", err)
		return e.lastLevel, true
	}
	e.lastLevel = level
	return level, false
}
