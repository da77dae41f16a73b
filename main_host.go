package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"spiro/app"
	"spiro/hal"
	"spiro/internal/buildinfo"
)

type options struct {
	host     hal.HostConfig
	headless hal.HeadlessConfig
	window   hal.WindowConfig
	app      app.Config
	version  bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("spiro", flag.ContinueOnError)
	fs.BoolVar(&o.headless.Enabled, "headless", false, "Run without a window.")
	fs.IntVar(&o.headless.Hz, "hz", 60, "Tick rate in headless mode.")
	fs.Uint64Var(&o.headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")

	fs.IntVar(&o.host.Width, "width", 1920, "Screen width in pixels.")
	fs.IntVar(&o.host.Height, "height", 1080, "Screen height in pixels.")
	fs.IntVar(&o.app.MapWidth, "map-width", 0, "Texture width in pixels (0 = screen width).")
	fs.IntVar(&o.app.MapHeight, "map-height", 0, "Texture height in pixels (0 = screen height).")

	fs.IntVar(&o.app.Lines, "lines", 200, "Segments per fan.")
	fs.Float64Var(&o.app.Decay, "decay", app.DefaultDecay, "Starting decay ratio in [0.1,1].")
	fs.Float64Var(&o.app.PhaseStep, "phase-step", app.DefaultPhaseStep, "Hue phase advance per frame.")

	fs.StringVar(&o.app.SavePath, "save", "test.ppm", "File written by the s key.")
	fs.StringVar(&o.app.AutoSavePath, "autosave", "buffer.ppm", "File written every frame once autosave is on.")
	fs.StringVar(&o.app.LoadPath, "load", "", "Seed the texture from a saved dump and start with trace on.")

	fs.BoolVar(&o.app.DualColor, "dual", false, "Also draw each segment's spine in the mirrored hue.")
	fs.BoolVar(&o.app.HUD, "hud", false, "Show a status line.")
	fs.BoolVar(&o.window.Floating, "floating", false, "Keep the window above other windows.")
	fs.Float64Var(&o.window.Scale, "scale", 1, "Initial window size as a multiple of the screen size.")
	fs.BoolVar(&o.version, "version", false, "Print the version and exit.")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	return o, nil
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}
	hostCfg, headCfg, winCfg, appCfg := o.host, o.headless, o.window, o.app

	if o.version {
		fmt.Println(buildinfo.Full())
		return
	}

	h := hal.New(hostCfg)

	if headCfg.Enabled {
		step, err := app.NewWithConfig(h, appCfg)
		if err != nil {
			fail(err)
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, h, step, headCfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			stop()
			fail(err)
		}
		return
	}

	appCfg.HoldOnPanic = true
	step, err := app.NewWithConfig(h, appCfg)
	if err != nil {
		fail(err)
	}
	winCfg.Title = fmt.Sprintf("spiro (%s)", buildinfo.Short())
	if err := hal.RunWindow(h, step, winCfg); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
