// Package game runs the simulator inside a raylib window, or headless from
// a script.
package game

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/metaballs/bridge"
	"github.com/pthm-cable/metaballs/config"
	"github.com/pthm-cable/metaballs/interaction"
	"github.com/pthm-cable/metaballs/renderer"
	"github.com/pthm-cable/metaballs/sim"
	"github.com/pthm-cable/metaballs/telemetry"
	"github.com/pthm-cable/metaballs/ui"
)

// Options configures a Game.
type Options struct {
	Headless  bool
	LogStats  bool
	OutputDir string
	Replay    *sim.Replay // scripted input, may be nil
}

// Game holds the simulator state and everything around it.
type Game struct {
	cfg    *config.Config
	state  *sim.State
	replay *sim.Replay

	// Rendering (nil when headless)
	renderer *renderer.MetaballRenderer
	hud      *ui.HUD
	clear    rl.Color

	// Input
	bindings  []binding
	lastMouse rl.Vector2
	queued    []interaction.Command // HUD clicks, applied next frame

	// Telemetry
	collector      *telemetry.Collector
	perfCollector  *telemetry.PerfCollector
	outputManager  *telemetry.OutputManager
	logStats       bool
	sampleInterval int32

	headless bool
	dt       float64 // seconds per headless frame
}

// NewGame creates a game. In graphical mode the raylib window must already
// exist.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	g := &Game{
		cfg:            cfg,
		state:          sim.New(sim.OptionsFromConfig(cfg)),
		replay:         opts.Replay,
		headless:       opts.Headless,
		logStats:       opts.LogStats,
		sampleInterval: int32(cfg.Telemetry.SampleInterval),
		dt:             1.0 / float64(max(cfg.Screen.TargetFPS, 1)),
	}

	g.collector = telemetry.NewCollector(cfg.Telemetry.StatsWindow, g.dt)
	g.perfCollector = telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	if !g.headless {
		if err := g.initGraphics(); err != nil {
			om.Close()
			return nil, err
		}
	}

	slog.Info("game created",
		"headless", g.headless,
		"screen", fmt.Sprintf("%dx%d", cfg.Screen.Width, cfg.Screen.Height),
		"scripted_frames", g.replay.LastFrame()+1,
		"output_dir", om.Dir(),
	)
	return g, nil
}

func (g *Game) initGraphics() error {
	bindings, err := resolveBindings(g.cfg.Controls.Bindings())
	if err != nil {
		return err
	}
	g.bindings = bindings

	g.renderer = renderer.NewMetaballRenderer(int32(g.cfg.Screen.Width), int32(g.cfg.Screen.Height))
	if err := g.renderer.Init(); err != nil {
		return err
	}

	panel := g.cfg.UI
	g.hud = ui.NewHUD(int32(panel.PanelX), int32(panel.PanelY), int32(panel.PanelWidth), g.cfg.Controls.Bindings(), g.cfg.Derived.SpeedPresets)

	c := g.cfg.Render.ClearColor
	g.clear = rl.Color{R: c[0], G: c[1], B: c[2], A: 255}
	g.lastMouse = rl.GetMousePosition()
	return nil
}

// Update polls input and advances one frame (graphical mode).
func (g *Game) Update() {
	g.perfCollector.StartStep()

	in := g.pollInput()
	_, rep := g.state.FrameTimed(in, float32(rl.GetTime()), g.perfCollector)

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.afterFrame(rep)
}

// Draw renders the current frame. It closes the perf step opened by Update.
func (g *Game) Draw() {
	g.perfCollector.StartPhase(telemetry.PhaseDraw)

	rl.BeginDrawing()
	rl.ClearBackground(g.clear)
	g.renderer.Draw(g.state.Uniforms())
	if g.state.ShowHUD {
		g.queued = append(g.queued, g.hud.Draw(g.hudData())...)
	}

	// Stop timing before EndDrawing waits for the next frame.
	g.perfCollector.EndStep()
	rl.EndDrawing()
	g.perfCollector.RecordFrame()
}

// UpdateHeadless advances one frame from the script with a fixed time step.
func (g *Game) UpdateHeadless() {
	g.perfCollector.StartStep()

	frame := g.state.FrameCount()
	elapsed := float32(float64(frame) * g.dt)
	_, rep := g.state.FrameTimed(g.replay.At(frame), elapsed, g.perfCollector)

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.afterFrame(rep)

	g.perfCollector.EndStep()
}

func (g *Game) hudData() ui.HUDData {
	return ui.HUDData{
		Phase:   g.state.Machine.Phase().String(),
		Filled:  g.state.Table.Filled(),
		FPS:     rl.GetFPS(),
		Gravity: g.state.Config.GravityEnabled,
		Paused:  g.state.Config.Paused,
		Speed:   g.state.Config.SpeedMultiplier,
		Mode:    g.state.Mode.String(),
	}
}

// Frame returns the number of frames run.
func (g *Game) Frame() int32 {
	return g.state.FrameCount()
}

// ScriptDone reports whether every scripted input has been fed.
func (g *Game) ScriptDone() bool {
	return g.replay == nil || g.state.FrameCount() > g.replay.LastFrame()
}

// Uniforms returns the uniforms of the last frame.
func (g *Game) Uniforms() *bridge.Uniforms {
	return g.state.Uniforms()
}

// Unload releases GPU resources and closes output files.
func (g *Game) Unload() {
	if g.renderer != nil {
		g.renderer.Unload()
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
	slog.Info("game stopped", "frames", g.state.FrameCount(), "filled", g.state.Table.Filled())
}
