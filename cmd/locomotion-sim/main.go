// Command locomotion-sim drives locomotion controllers through a scripted course in a virtual
// world and logs what they do.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/oomph-ac/locomotion"
	"github.com/oomph-ac/locomotion/config"
	"github.com/oomph-ac/locomotion/event"
	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/virtual"
	"github.com/oomph-ac/locomotion/worker"
)

var (
	configPath = flag.String("config", "locomotion.toml", "path of the TOML or YAML configuration, created with defaults if missing")
	frames     = flag.Int("frames", 600, "number of frames to simulate per agent")
	frameTime  = flag.Float64("dt", 1.0/60, "frame time in seconds")
	agents     = flag.Int("agents", 1, "number of agents simulated concurrently")
	watch      = flag.Bool("watch", false, "reload the configuration when the file changes and pace frames in real time")
	report     = flag.Int("report", 60, "log the state of each agent every this many frames")
)

func main() {
	flag.Parse()

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			slog.Error("unable to initialise sentry", "err", err)
		}
		defer sentry.Flush(time.Second * 5)
		defer sentry.Recover()
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("unable to load configuration", "path", *configPath, "err", err)
		os.Exit(1)
	}
	lvl := slog.LevelInfo
	if cfg.Debug {
		lvl = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	cfg = adapt(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sims := make([]*simulation, *agents)
	for i := range sims {
		if sims[i], err = newSimulation(i, cfg, log); err != nil {
			log.Error("unable to create agent", "agent", i, "err", err)
			os.Exit(1)
		}
	}

	if *watch {
		go func() {
			err := config.Watch(ctx, *configPath, log, func(c config.Config) {
				c = adapt(c)
				for _, s := range sims {
					if err := s.ctrl.Reconfigure(c); err != nil {
						log.Warn("agent rejected configuration", "agent", s.id, "err", err)
					}
				}
			})
			if err != nil {
				log.Error("configuration watcher stopped", "err", err)
			}
		}()
	}

	pool := worker.New(*agents, log)
	var wg sync.WaitGroup
	for _, s := range sims {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			s.run(ctx, *frames, float32(*frameTime), *watch)
		}); err != nil {
			wg.Done()
			log.Error("unable to start agent", "agent", s.id, "err", err)
		}
	}
	wg.Wait()
	pool.Close()

	for _, s := range sims {
		log.Info("agent finished",
			"agent", s.id,
			"position", s.capsule.Position(),
			"landings", s.counts[event.Landed],
			"jumps", s.counts[event.Jumped],
			"reparents", s.counts[event.Reparented],
		)
	}
}

// simulation is one agent running through its own copy of the level.
type simulation struct {
	id      int
	log     *slog.Logger
	level   *level
	capsule *virtual.Capsule
	ctrl    *locomotion.Controller
	in      *input.Scripted
	cues    []cue

	counts map[event.Type]int
}

func newSimulation(id int, cfg config.Config, log *slog.Logger) (*simulation, error) {
	l := newLevel()
	log = log.With("agent", id)
	s := &simulation{
		id:      id,
		log:     log,
		level:   l,
		capsule: l.w.NewCapsule(l.spawn, cfg.Height.Standing, 0.5, 45),
		in:      input.NewScripted(cfg.Input),
		cues:    scenario(id),
		counts:  make(map[event.Type]int),
	}

	ctrl, err := locomotion.New(s.capsule, l.w, cfg, locomotion.WithLogger(log), locomotion.WithInput(s.in))
	if err != nil {
		return nil, err
	}
	ctrl.Events().Subscribe(func(ev event.Event) {
		s.counts[ev.Type]++
		log.Info("locomotion event", "event", ev.Type, "frame", ev.Frame, "position", s.capsule.Position())
	})
	s.ctrl = ctrl
	return s, nil
}

func (s *simulation) run(ctx context.Context, frames int, dt float32, realtime bool) {
	var ticker *time.Ticker
	if realtime {
		ticker = time.NewTicker(time.Duration(float64(dt) * float64(time.Second)))
		defer ticker.Stop()
	}

	bindings := s.ctrl.Config().Input
	var elapsed float32
	for frame := 1; frame <= frames; frame++ {
		if ticker != nil {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		} else if ctx.Err() != nil {
			return
		}

		for len(s.cues) > 0 && s.cues[0].at <= elapsed {
			s.cues[0].do(s.in, bindings, s.capsule)
			s.cues = s.cues[1:]
		}

		s.level.w.Advance(dt)
		motion := s.ctrl.Tick(dt)
		s.in.Advance()
		elapsed += dt

		if *report > 0 && frame%*report == 0 {
			s.log.Info("agent state",
				"frame", frame,
				"position", s.capsule.Position(),
				"motion", motion,
				"mode", s.ctrl.Mode(),
				"grounded", s.ctrl.IsGrounded(),
				"sliding", s.ctrl.IsSliding(),
				"crouched", s.ctrl.IsCrouched(),
				"running", s.ctrl.IsRunning(),
				"energy", s.ctrl.RunEnergy(),
				"ground", s.ctrl.GroundTag(),
			)
		}
	}
}
