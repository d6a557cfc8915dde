// Shader debug tool - replays an input script and renders the final frame
// through the metaball shader to a PNG file for inspection.
//
// Usage: go run ./cmd/shaderdebug -script input.csv -out debug.png
package main

import (
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/metaballs/bridge"
	"github.com/pthm-cable/metaballs/config"
	"github.com/pthm-cable/metaballs/renderer"
	"github.com/pthm-cable/metaballs/sim"
	"github.com/pthm-cable/metaballs/telemetry"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	scriptPath := flag.String("script", "", "CSV input script to replay before rendering")
	frames := flag.Int("frames", 0, "Frames to simulate (0 = end of script)")
	mode := flag.String("mode", "", "Force render mode: metaball or glow (empty = from script)")
	outPath := flag.String("out", "debug.png", "Output PNG path")
	cpuPath := flag.String("cpu-out", "", "Also write the CPU reference render to this path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fail("loading config: %v", err)
	}

	state := sim.New(sim.OptionsFromConfig(cfg))
	if *scriptPath != "" {
		script, err := telemetry.LoadScriptFile(*scriptPath)
		if err != nil {
			fail("%v", err)
		}
		replay, err := sim.NewReplay(script)
		if err != nil {
			fail("%s: %v", *scriptPath, err)
		}
		n := *frames
		if n <= 0 {
			n = int(replay.LastFrame()) + 1
		}
		replay.Run(state, n, 1.0/float32(max(cfg.Screen.TargetFPS, 1)))
	}

	switch *mode {
	case "":
	case "metaball":
		state.Mode = bridge.ModeMetaball
	case "glow":
		state.Mode = bridge.ModeGlow
	default:
		fail("unknown -mode %q", *mode)
	}
	u := state.Publish(state.Uniforms().Time)

	width, height := int32(cfg.Screen.Width), int32(cfg.Screen.Height)

	// Initialize raylib with hidden window
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(width, height, "Shader Debug")
	defer rl.CloseWindow()

	r := renderer.NewMetaballRenderer(width, height)
	if err := r.Init(); err != nil {
		fail("%v", err)
	}
	defer r.Unload()

	// Create render texture
	target := rl.LoadRenderTexture(width, height)
	defer rl.UnloadRenderTexture(target)

	// Render shader to texture
	rl.BeginTextureMode(target)
	rl.ClearBackground(rl.Black)
	r.Draw(u)
	rl.EndTextureMode()

	// Get image from texture and flip it (OpenGL convention)
	img := rl.LoadImageFromTexture(target.Texture)
	rl.ImageFlipVertical(img)

	// Export to PNG
	success := rl.ExportImage(*img, *outPath)
	rl.UnloadImage(img)
	if !success {
		fail("failed to export image")
	}
	fmt.Printf("Shader rendered to: %s (%dx%d, %d particles, %s)\n", *outPath, width, height, state.Table.Filled(), state.Mode)

	if *cpuPath != "" {
		if err := telemetry.WritePNG(*cpuPath, u.Render(int(width), int(height))); err != nil {
			fail("%v", err)
		}
		fmt.Printf("CPU reference written to: %s\n", *cpuPath)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
