// Command facesim runs the watch face engine in a terminal. The host side
// (ambient, visibility, battery, zone, complications) is driven from the
// keyboard and a click on the face is delivered as a tap.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	wf "github.com/gogpu/watchface"
	"github.com/gogpu/watchface/complication"
	"github.com/gogpu/watchface/face"
	"github.com/gogpu/watchface/host"
	"github.com/gogpu/watchface/internal/termview"
	"github.com/gogpu/watchface/metrics"
	"github.com/gogpu/watchface/prefs"
	"github.com/gogpu/watchface/text"
	"golang.org/x/image/font/gofont/goregular"
)

func main() {
	var (
		size        = flag.Int("size", 160, "surface size in pixels")
		locale      = flag.String("locale", "en", "date strip language")
		dbPath      = flag.String("prefs", "", "SQLite preferences database")
		metricsAddr = flag.String("metrics", "", "serve Prometheus metrics on this address")
		logFile     = flag.String("log", "", "write debug logs to this file")
		shaper      = flag.Bool("shaper", false, "measure text with the HarfBuzz shaper")
	)
	flag.Parse()

	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
		wf.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	lang, err := face.ParseLocale(*locale)
	if err != nil {
		log.Fatalf("invalid -locale: %v", err)
	}

	var measurer text.Measurer
	if *shaper {
		s, err := text.NewShaper(goregular.TTF, lang.Tag().String())
		if err != nil {
			log.Fatalf("shaper: %v", err)
		}
		measurer = s
	}

	var source host.PreferenceSource = host.StaticPreferences(host.DefaultPreferences())
	if *dbPath != "" {
		store, err := prefs.Open(*dbPath)
		if err != nil {
			log.Fatalf("preferences: %v", err)
		}
		defer store.Close()
		source = store
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen: %v", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	var finiOnce sync.Once
	fini := func() { finiOnce.Do(screen.Fini) }
	defer fini()

	if err := run(screen, fini, *size, lang, source, measurer, *metricsAddr); err != nil {
		fini()
		log.Fatal(err)
	}
}

func run(screen tcell.Screen, fini func(), size int, lang face.Locale, source host.PreferenceSource, measurer text.Measurer, metricsAddr string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reg := prometheus.NewRegistry()
	view := termview.New(screen)
	battery := host.NewManualBattery(100)
	zone := host.NewManualZone(time.Local)
	zones := []*time.Location{time.Local, time.UTC}
	for _, name := range []string{"America/New_York", "Europe/Berlin", "Asia/Tokyo"} {
		if loc, err := time.LoadLocation(name); err == nil {
			zones = append(zones, loc)
		}
	}
	ctrl := termview.NewController(view, battery, zone, zones)

	e := face.New(
		face.WithPresenter(view),
		face.WithBattery(battery),
		face.WithZone(zone),
		face.WithPreferences(source),
		face.WithLocale(lang.Tag()),
		face.WithMeasurer(measurer),
		face.WithMetrics(metrics.New(reg)),
		face.WithTapHandler(func(slot complication.SlotID, d *complication.Data) {
			if d != nil && d.TapAction != "" {
				view.SetStatus(" tapped " + slot.String() + ": " + d.TapAction)
			}
		}),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	// Everything else winds down once the engine stops.
	g.Go(func() error {
		defer cancel()
		err := e.Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	// PollEvent only returns nil once the screen is finalized.
	g.Go(func() error {
		<-ctx.Done()
		fini()
		return nil
	})

	dispatch := func(ev face.Event) error {
		err := e.Dispatch(ctx, ev)
		if err != nil && (errors.Is(err, face.ErrEngineStopped) || ctx.Err() != nil) {
			return nil
		}
		return err
	}

	g.Go(func() error {
		for _, ev := range []face.Event{
			face.Create{Width: size, Height: size},
			face.VisibilityChanged{Visible: true},
		} {
			if err := dispatch(ev); err != nil {
				return err
			}
		}
		for {
			tev := screen.PollEvent()
			if tev == nil {
				return nil
			}
			if _, ok := tev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			evs, quit := ctrl.Handle(tev)
			if quit {
				return dispatch(face.Destroy{})
			}
			for _, ev := range evs {
				if err := dispatch(ev); err != nil {
					return err
				}
			}
		}
	})

	// The host delivers a tick once a minute; the engine only draws on it
	// in ambient mode.
	g.Go(func() error {
		t := time.NewTicker(time.Minute)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-t.C:
				if err := dispatch(face.TimeTick{}); err != nil {
					return err
				}
			}
		}
	})

	if metricsAddr != "" {
		srv := &http.Server{
			Addr:              metricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	return g.Wait()
}
