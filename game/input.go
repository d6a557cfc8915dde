package game

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/metaballs/interaction"
	"github.com/pthm-cable/metaballs/sim"
)

// binding ties a command to a key.
type binding struct {
	cmd interaction.Command
	key int32
}

// keyNames maps config key names to raylib key codes.
var keyNames = map[string]int32{
	"SPACE":     rl.KeySpace,
	"ENTER":     rl.KeyEnter,
	"TAB":       rl.KeyTab,
	"BACKSPACE": rl.KeyBackspace,
	"UP":        rl.KeyUp,
	"DOWN":      rl.KeyDown,
	"LEFT":      rl.KeyLeft,
	"RIGHT":     rl.KeyRight,
	"MINUS":     rl.KeyMinus,
	"EQUAL":     rl.KeyEqual,
	"COMMA":     rl.KeyComma,
	"PERIOD":    rl.KeyPeriod,
}

func init() {
	for c := 'A'; c <= 'Z'; c++ {
		keyNames[string(c)] = rl.KeyA + int32(c-'A')
	}
	digits := []string{"ZERO", "ONE", "TWO", "THREE", "FOUR", "FIVE", "SIX", "SEVEN", "EIGHT", "NINE"}
	for i, name := range digits {
		keyNames[name] = rl.KeyZero + int32(i)
	}
	for i := 1; i <= 12; i++ {
		keyNames[fmt.Sprintf("F%d", i)] = rl.KeyF1 + int32(i-1)
	}
}

// resolveBindings turns command→key-name pairs into key codes, in command
// order.
func resolveBindings(names map[string]string) ([]binding, error) {
	var out []binding
	for _, cmd := range interaction.Commands() {
		name := names[cmd.String()]
		if name == "" {
			continue
		}
		key, ok := keyNames[strings.ToUpper(name)]
		if !ok {
			return nil, fmt.Errorf("controls.%s: unknown key %q", cmd, name)
		}
		out = append(out, binding{cmd: cmd, key: key})
	}
	return out, nil
}

// pollInput collects this frame's commands and pointer events. HUD clicks
// queued by the previous Draw come first, then keys, then scripted input.
func (g *Game) pollInput() sim.Input {
	var in sim.Input
	in.Commands = append(in.Commands, g.queued...)
	g.queued = g.queued[:0]

	for _, b := range g.bindings {
		if rl.IsKeyPressed(b.key) {
			in.Commands = append(in.Commands, b.cmd)
		}
	}

	pos := rl.GetMousePosition()
	sample := interaction.ButtonSample{
		X:        pos.X,
		Y:        pos.Y,
		Moved:    pos != g.lastMouse,
		Pressed:  rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		Released: rl.IsMouseButtonReleased(rl.MouseButtonLeft),
		Down:     rl.IsMouseButtonDown(rl.MouseButtonLeft),
	}
	g.lastMouse = pos

	// The panel owns presses over it.
	if g.state.ShowHUD && g.hud.Contains(pos.X, pos.Y) {
		sample.Pressed = false
	}
	in.Pointer = sample.Events()

	scripted := g.replay.At(g.state.FrameCount())
	in.Commands = append(in.Commands, scripted.Commands...)
	in.Pointer = append(in.Pointer, scripted.Pointer...)
	return in
}
