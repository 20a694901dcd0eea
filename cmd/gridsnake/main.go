package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridsnake/audio"
	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/debug"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/input"
	"github.com/lixenwraith/gridsnake/parameter"
	"github.com/lixenwraith/gridsnake/render"
	"github.com/lixenwraith/gridsnake/system"
)

func main() {
	// Panic recovery: terminal is restored by the crash hook before the report
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "gridsnake: %v\n", err)
		os.Exit(1)
	}
}

func run(opts *options) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	keyMap, err := cfg.KeyMap()
	if err != nil {
		return err
	}
	dir, err := cfg.Direction()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	core.SetCrashHook(screen.Fini)
	defer core.SetCrashHook(nil)

	var chimer system.Chimer
	if cfg.Sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			chimer = sm
			defer sm.Cleanup()
		}
	}

	ctx, err := engine.NewGameContext(engine.Options{
		TickInterval: cfg.TickInterval(),
		LerpRate:     cfg.LerpRate,
		GridHalfSize: cfg.GridHalfSize,
		TreatCount:   cfg.TreatCount,
		TimeProvider: engine.NewTimeProvider(),
	})
	if err != nil {
		return err
	}
	if _, err := system.Install(ctx, system.Options{
		SeedLength:       cfg.SeedLength,
		InitialDirection: dir,
		RNGSeed:          cfg.RNGSeed,
		PresetTreats:     cfg.PresetTreats(),
		Chimer:           chimer,
	}); err != nil {
		return err
	}

	var srv *debug.Server
	if cfg.DebugAddr != "" {
		srv = debug.NewServer(debug.Config{
			Addr:   cfg.DebugAddr,
			Logger: log.Default(),
			Tuning: ctx.World.Resource.Tuning,
			Status: ctx.World.Resource.Status,
		})
		if err := srv.Start(); err != nil {
			return err
		}
		defer srv.Close()
	}

	log.Printf("started: tick %v, lerp %.1f, seed length %d, treats %d",
		cfg.TickInterval(), cfg.LerpRate, cfg.SeedLength, cfg.TreatCount)

	loop(screen, ctx, input.NewCollector(keyMap), render.NewTerminalRenderer(screen), srv)

	log.Printf("quit after %d frames, length %d", ctx.FrameNumber.Load(), ctx.World.Component.Segment.Count())
	return nil
}

// loop runs the frame ticker until quit; input is polled on its own goroutine
func loop(screen tcell.Screen, ctx *engine.GameContext, collector *input.Collector, renderer *render.TerminalRenderer, srv *debug.Server) {
	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			collector.HandleEvent(ev)

		case <-ticker.C:
			if !ctx.Frame(collector.Snapshot()) {
				return
			}
			snap := ctx.Snapshot()
			renderer.Draw(snap)
			screen.Show()
			if srv != nil {
				srv.Publish(snap)
			}
		}
	}
}
