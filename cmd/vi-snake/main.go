package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/engine/status"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/spawn"
)

var (
	configFlag = flag.String("config", "", "Path to TOML config file")
	keymapFlag = flag.String("keymap", "", "Path to YAML keymap, overrides terminal.keymap")
	seedFlag   = flag.Uint64("seed", 0, "Ball placement seed, 0 uses the config value or the clock")
	debugFlag  = flag.Bool("debug", false, "Write logs to the configured log file")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *keymapFlag != "" {
		cfg.Terminal.Keymap = *keymapFlag
	}
	if *seedFlag != 0 {
		cfg.Game.Seed = *seedFlag
	}
	if *debugFlag {
		cfg.Logging.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, logFile, err := setupLogging(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	defer log.Sync()

	keys, err := input.LoadKeyFile(cfg.Terminal.Keymap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load keymap: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, keys, log); err != nil {
		log.Error("exit with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, keys *input.KeyTable, log *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseDragEvents)
	screen.EnableFocus()
	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground))

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	crash := func(r any) {
		screen.Fini()
		// Use \r\n for raw mode compatibility to avoid zig-zag output
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mVI-SNAKE CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		log.Error("crash", zap.Any("panic", r))
		log.Sync()
		os.Exit(1)
	}
	core.SetCrashHandler(crash)
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	reg := status.NewRegistry()
	renderer := render.NewTerminalRenderer(screen, cfg.Terminal.PixelsPerColumn, cfg.Terminal.PixelsPerRow, reg)
	width, height := renderer.Viewport()

	spawner := spawn.NewSeeded(seed,
		spawn.WithBallSize(cfg.Game.BallSize),
		spawn.WithMaxAttempts(cfg.Game.SpawnAttempts),
		spawn.WithLogger(log),
	)

	clock := engine.NewTickerClock()
	session := engine.NewSession(clock, spawner,
		engine.WithSettings(cfg.Game.Settings()),
		engine.WithLogger(log),
		engine.WithRegistry(reg),
		engine.WithViewport(width, height),
		// Observers run under the session lock: hand the redraw to the event loop
		engine.WithObserver(func(engine.Snapshot) {
			_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		}),
	)
	defer func() {
		session.Stop()
		clock.Disarm()
	}()

	machine := input.NewMachine(keys, input.NewSwipeTracker(
		cfg.Terminal.SwipeThreshold,
		cfg.Terminal.PixelsPerColumn,
		cfg.Terminal.PixelsPerRow,
	))

	log.Info("vi-snake starting",
		zap.Uint64("seed", seed),
		zap.Float64("width", width),
		zap.Float64("height", height),
	)

	renderer.RenderFrame(session.Snapshot())

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}

		if in := machine.Process(ev); in != nil {
			switch in.Type {
			case input.IntentQuit:
				log.Info("quit requested", zap.Int64("games", reg.Ints.Get("engine.games").Load()))
				return nil
			case input.IntentResize:
				screen.Sync()
				session.Resize(renderer.Viewport())
			default:
				input.Apply(session, *in)
			}
		}

		renderer.RenderFrame(session.Snapshot())
	}
}
