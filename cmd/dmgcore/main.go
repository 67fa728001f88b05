package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/hollowpixel/dmgcore"
	"github.com/hollowpixel/dmgcore/backend"
	"github.com/hollowpixel/dmgcore/backend/terminal"
	"github.com/hollowpixel/dmgcore/timing"
)

func main() {
	app := cli.NewApp()
	app.Name = "dmgcore"
	app.Description = "A Game Boy (DMG) emulation core"
	app.Usage = "dmgcore [options] <ROM file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the ROM file",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run without a display, for a fixed number of frames",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
			Value: 0,
		},
		cli.BoolFlag{
			Name:  "sdl2",
			Usage: "Use the SDL2 display backend instead of the terminal",
		},
		cli.IntFlag{
			Name:  "scale",
			Usage: "Display scale factor (SDL2 backend only)",
			Value: 4,
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("error running emulator", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() > 0 {
			romPath = c.Args().Get(0)
		} else {
			cli.ShowAppHelp(c)
			return errors.New("no ROM path provided")
		}
	}

	romData, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("read rom: %w", err)
	}

	system, err := dmgcore.New(romData)
	if err != nil {
		return fmt.Errorf("create system: %w", err)
	}

	if c.Bool("headless") {
		frames := c.Int("frames")
		if frames <= 0 {
			return errors.New("headless mode requires --frames option with a positive value")
		}
		return runHeadless(system, frames)
	}

	var b backend.Backend
	if c.Bool("sdl2") {
		b = backend.NewSDL2Backend()
	} else {
		b = terminal.New()
	}

	return runInteractive(system, b, c.Int("scale"), romPath)
}

func runHeadless(system *dmgcore.System, frames int) error {
	b := backend.NewHeadlessBackend()
	if err := b.Init(backend.Config{}); err != nil {
		return fmt.Errorf("init headless backend: %w", err)
	}
	defer b.Cleanup()

	for i := 0; i < frames; i++ {
		system.RunFrame()
		if _, err := b.Update(system.FrameBuffer()); err != nil {
			return err
		}
		if i%60 == 0 {
			slog.Info("frame progress", "completed", i+1, "total", frames)
		}
	}

	slog.Info("headless run completed", "frames", frames)
	return nil
}

func runInteractive(system *dmgcore.System, b backend.Backend, scale int, romPath string) error {
	if err := b.Init(backend.Config{Title: "dmgcore - " + romPath, Scale: scale}); err != nil {
		return fmt.Errorf("init backend: %w", err)
	}
	defer b.Cleanup()

	limiter := timing.NewTickerLimiter()
	defer limiter.Stop()

	for {
		system.RunFrame()

		events, err := b.Update(system.FrameBuffer())
		if err != nil {
			return err
		}

		for _, ev := range events {
			applyButtonEvent(system, ev)
		}

		limiter.WaitForNextFrame()
	}
}

func applyButtonEvent(system *dmgcore.System, ev backend.ButtonEvent) {
	if ev.Type == backend.Press {
		system.Input.Press(ev.Button)
	} else {
		system.Input.Release(ev.Button)
	}
}
