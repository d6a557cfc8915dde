package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/metaballs/config"
	"github.com/pthm-cable/metaballs/game"
	"github.com/pthm-cable/metaballs/sim"
	"github.com/pthm-cable/metaballs/telemetry"
)

func init() {
	// raylib and the GL context it owns must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without a window, driven by -script")
	scriptPath := flag.String("script", "", "CSV input script (frame,kind,x,y,command)")
	maxFrames := flag.Int("max-frames", 0, "Stop after N frames (0 = unlimited, or end of script when headless)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	snapshot := flag.String("snapshot", "", "Write a CPU-rendered PNG of the final frame to this path")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	logFormat := flag.String("log-format", "json", "Log format: json or text")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level: %v\n", err)
		os.Exit(2)
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, handlerOpts)
	if *logFormat == "text" {
		handler = slog.NewTextHandler(os.Stdout, handlerOpts)
	}
	slog.SetDefault(slog.New(handler))

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	var replay *sim.Replay
	if *scriptPath != "" {
		script, err := telemetry.LoadScriptFile(*scriptPath)
		if err != nil {
			slog.Error("failed to load script", "error", err)
			os.Exit(1)
		}
		replay, err = sim.NewReplay(script)
		if err != nil {
			slog.Error("invalid script", "path", *scriptPath, "error", err)
			os.Exit(1)
		}
	}

	opts := game.Options{
		Headless:  *headless,
		LogStats:  *logStats,
		OutputDir: *outputDir,
		Replay:    replay,
	}

	var g *game.Game
	if *headless {
		if *maxFrames <= 0 && replay == nil {
			slog.Error("headless run needs -max-frames or -script")
			os.Exit(2)
		}

		var err error
		g, err = game.NewGame(cfg, opts)
		if err != nil {
			slog.Error("failed to start", "error", err)
			os.Exit(1)
		}

		slog.Info("starting headless simulation", "max_frames", *maxFrames, "script", *scriptPath)
		for {
			g.UpdateHeadless()

			if *maxFrames > 0 && int(g.Frame()) >= *maxFrames {
				slog.Info("max frames reached", "frame", g.Frame())
				break
			}
			if *maxFrames <= 0 && g.ScriptDone() {
				slog.Info("script finished", "frame", g.Frame())
				break
			}
		}
	} else {
		// Graphical mode
		rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
		defer rl.CloseWindow()

		rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
		// Escape would otherwise close the window mid-gesture.
		rl.SetExitKey(rl.KeyNull)

		var err error
		g, err = game.NewGame(cfg, opts)
		if err != nil {
			slog.Error("failed to start", "error", err)
			os.Exit(1)
		}

		for !rl.WindowShouldClose() {
			g.Update()
			g.Draw()

			if *maxFrames > 0 && int(g.Frame()) >= *maxFrames {
				break
			}
		}
	}
	defer g.Unload()

	if *snapshot != "" {
		// Shaded on the CPU so headless runs can produce an image too.
		img := g.Uniforms().Render(cfg.Screen.Width, cfg.Screen.Height)
		if err := telemetry.WritePNG(*snapshot, img); err != nil {
			slog.Error("failed to write snapshot", "error", err)
			return
		}
		slog.Info("snapshot saved", "path", *snapshot, "frame", g.Frame())
	}
}

