package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/oklog/ulid/v2"

	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/parameter"
	"github.com/lixenwraith/pong/status"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file overriding the defaults")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/pong.log")
	colorFlag  = flag.String("color", "", "Entity color: white or #rrggbb (overrides config)")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	runID := ulid.Make().String()
	logFile, err := setupLogging(logDir, *debugFlag, runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		log.Printf("exit with error: %v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

func run() error {
	cfg := parameter.Default()
	if *configFlag != "" {
		loaded, err := parameter.Load(*configFlag)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *colorFlag != "" {
		cfg.Color = *colorFlag
	}
	log.Printf("starting with config %+v", cfg)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	core.RegisterScreen(screen)
	defer func() {
		core.RegisterScreen(nil)
		screen.Fini()
	}()

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.HideCursor()
	screen.Clear()

	reg := status.NewRegistry()
	g, err := newGame(screen, cfg, reg)
	if err != nil {
		return err
	}

	events := make(chan tcell.Event, parameter.EventQueueSize)
	// Input polling runs on its own goroutine as PollEvent blocks
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})

	g.run(events)

	log.Printf("shutdown: %s", reg.Summary())
	return nil
}
