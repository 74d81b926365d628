// Command facedemo renders a single watch face frame for a given instant
// and display state, writes it as PNG and optionally pushes it to an
// e-paper panel.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	wf "github.com/gogpu/watchface"
	"github.com/gogpu/watchface/face"
	"github.com/gogpu/watchface/host"
	"github.com/gogpu/watchface/internal/termview"
	"github.com/gogpu/watchface/prefs"
	"github.com/gogpu/watchface/recording"
	_ "github.com/gogpu/watchface/recording/backends/epaper"
	_ "github.com/gogpu/watchface/recording/backends/raster"
	"github.com/gogpu/watchface/text"
	"github.com/jonboulle/clockwork"
	"golang.org/x/image/font/gofont/goregular"
)

func main() {
	var (
		width    = flag.Int("width", 320, "surface width")
		height   = flag.Int("height", 320, "surface height")
		output   = flag.String("output", "watchface.png", "output PNG file")
		backend  = flag.String("backend", "raster", "recording backend (raster, epaper)")
		at       = flag.String("time", "", "instant to render, RFC 3339 (default now)")
		zone     = flag.String("zone", "", "IANA time zone (default local)")
		locale   = flag.String("locale", "en", "date strip language")
		ambient  = flag.Bool("ambient", false, "render in ambient mode")
		lowBit   = flag.Bool("lowbit", false, "panel is low-bit in ambient")
		burnIn   = flag.Bool("burnin", false, "panel needs burn-in protection")
		mute     = flag.Bool("mute", false, "do-not-disturb active")
		unread   = flag.Int("unread", 0, "unread notification count")
		battery  = flag.Int("battery", -1, "battery level 0-100 (default: read system battery)")
		demo     = flag.Bool("complications", false, "fill slots with demo data")
		dbPath   = flag.String("prefs", "", "SQLite preferences database")
		color    = flag.String("color", "", "primary color as hex; saved when -prefs is set")
		noUnread = flag.Bool("no-unread-indicator", false, "turn the unread indicator preference off")
		shaper   = flag.Bool("shaper", false, "measure text with the HarfBuzz shaper")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	wf.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	now := time.Now()
	if *at != "" {
		t, err := time.Parse(time.RFC3339, *at)
		if err != nil {
			log.Fatalf("invalid -time: %v", err)
		}
		now = t
	}
	loc := time.Local
	if *zone != "" {
		l, err := time.LoadLocation(*zone)
		if err != nil {
			log.Fatalf("invalid -zone: %v", err)
		}
		loc = l
	}
	lang, err := face.ParseLocale(*locale)
	if err != nil {
		log.Fatalf("invalid -locale: %v", err)
	}

	p, err := preferences(*dbPath, *color, *noUnread)
	if err != nil {
		log.Fatalf("preferences: %v", err)
	}

	var bat host.BatterySource = host.SystemBattery{}
	if *battery >= 0 {
		bat = host.NewManualBattery(*battery)
	}

	b, err := recording.NewBackend(*backend)
	if err != nil {
		log.Fatalf("backend: %v", err)
	}

	opts := []face.Option{
		face.WithClock(clockwork.NewFakeClockAt(now)),
		face.WithZone(host.NewManualZone(loc)),
		face.WithBattery(bat),
		face.WithPreferences(p),
		face.WithLocale(lang.Tag()),
		face.WithPresenter(face.NewBackendPresenter(b)),
	}
	if *shaper {
		s, err := text.NewShaper(goregular.TTF, lang.Tag().String())
		if err != nil {
			log.Fatalf("shaper: %v", err)
		}
		opts = append(opts, face.WithMeasurer(s))
	}
	e := face.New(opts...)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	events := []face.Event{
		face.Create{Width: *width, Height: *height},
		face.PropertiesDiscovered{LowBitAmbient: *lowBit, BurnInProtection: *burnIn},
		face.AmbientModeChanged{Ambient: *ambient},
		face.InterruptionFilterChanged{Muted: *mute},
		face.UnreadCountChanged{Count: *unread},
	}
	if *demo {
		events = append(events, termview.DemoComplications(1)...)
	}
	events = append(events, face.VisibilityChanged{Visible: true})
	for _, ev := range events {
		if err := e.Dispatch(ctx, ev); err != nil {
			log.Fatalf("dispatch: %v", err)
		}
	}
	f, err := e.Render(ctx)
	if err != nil {
		log.Fatalf("render: %v", err)
	}
	if err := e.Dispatch(ctx, face.Destroy{}); err != nil {
		log.Fatalf("destroy: %v", err)
	}
	if err := <-done; err != nil {
		log.Fatalf("engine: %v", err)
	}

	if fb, ok := b.(recording.FileBackend); ok {
		if err := fb.SaveToFile(*output); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
	}
	if c, ok := b.(interface{ Close() error }); ok {
		if err := c.Close(); err != nil {
			log.Printf("closing backend: %v", err)
		}
	}

	log.Printf("Frame %d (%s, %s) saved to %s (%dx%d)", f.Seq, f.At.Format(time.DateTime), f.Mode, *output, f.Width, f.Height)
}

// preferences returns the preference source for this run. With a database
// path, overrides are persisted before loading.
func preferences(path, color string, noUnread bool) (host.PreferenceSource, error) {
	if path == "" {
		p := host.DefaultPreferences()
		if color != "" {
			c, err := wf.ParseHex(color)
			if err != nil {
				return nil, err
			}
			p.PrimaryColor = c
		}
		p.UnreadIndicator = !noUnread
		return host.StaticPreferences(p), nil
	}

	store, err := prefs.Open(path)
	if err != nil {
		return nil, err
	}
	if color == "" && !noUnread {
		return store, nil
	}
	p, err := store.Load()
	if err != nil {
		return nil, err
	}
	if color != "" {
		if p.PrimaryColor, err = wf.ParseHex(color); err != nil {
			return nil, err
		}
	}
	if noUnread {
		p.UnreadIndicator = false
	}
	if err := store.Save(context.Background(), p); err != nil {
		return nil, err
	}
	return store, nil
}
