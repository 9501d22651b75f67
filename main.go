package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"ember/demo"
	"ember/engine/app"
	"ember/engine/settings"
	"ember/hal"
)

func main() {
	var hcfg hal.HeadlessConfig
	var newGame bool
	var loadSlot string
	var profiling bool
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&newGame, "new-game", false, "Skip menus and start a new game immediately.")
	flag.StringVar(&loadSlot, "load", "", "Start from the named save slot.")
	flag.BoolVar(&profiling, "profile", false, "Enable the frame profiler.")
	flag.Parse()

	cfg, err := settings.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if profiling {
		cfg.Profiling = true
	}
	hcfg.Width = cfg.Width
	hcfg.Height = cfg.Height

	newApp := func(h hal.HAL) func(now int64) error {
		g := demo.New()
		a := app.New(cfg, h, g, g)
		if err := a.Bootstrap(); err != nil {
			return failedStep(err)
		}
		switch {
		case loadSlot != "":
			if a.Saves() == nil {
				return failedStep(fmt.Errorf("no save path configured, cannot load %q", loadSlot))
			}
			df, err := a.Saves().Load(loadSlot)
			if err != nil {
				return failedStep(err)
			}
			if err := a.StartLoadedGame(df); err != nil {
				return failedStep(err)
			}
		case newGame:
			if err := a.StartNewGame(); err != nil {
				return failedStep(err)
			}
		}
		return a.Step
	}

	if hcfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, hcfg); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(cfg.Title, cfg.Width, cfg.Height, newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func failedStep(err error) func(int64) error {
	return func(int64) error { return err }
}
