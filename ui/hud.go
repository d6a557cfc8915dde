package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/metaballs/interaction"
)

// HUDData holds everything the HUD shows for one frame.
type HUDData struct {
	Phase   string
	Filled  int
	FPS     int32
	Gravity bool
	Paused  bool
	Speed   float32
	Mode    string
}

// button is one command in the panel.
type button struct {
	cmd   interaction.Command
	label string
}

// HUD is the status and control panel. Clicks on its buttons become
// commands; pointer presses inside its bounds never reach the particle
// protocol.
type HUD struct {
	renderer *Renderer
	x, y     int32
	width    int32
	buttons  []button
}

// NewHUD creates a panel at (x, y). keys maps command names to the key
// names shown on each button; presets label the speed buttons.
func NewHUD(x, y, width int32, keys map[string]string, presets [4]float32) *HUD {
	h := &HUD{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
	for _, cmd := range interaction.Commands() {
		label := commandTitle(cmd, presets)
		if key := keys[cmd.String()]; key != "" {
			label = fmt.Sprintf("%s [%s]", label, key)
		}
		h.buttons = append(h.buttons, button{cmd: cmd, label: label})
	}
	return h
}

func commandTitle(cmd interaction.Command, presets [4]float32) string {
	if i, ok := cmd.SpeedPreset(); ok {
		return fmt.Sprintf("Speed x%.2f", presets[i])
	}
	switch cmd {
	case interaction.CommandReset:
		return "Reset"
	case interaction.CommandToggleGravity:
		return "Gravity"
	case interaction.CommandTogglePause:
		return "Pause"
	case interaction.CommandToggleRenderMode:
		return "Render mode"
	case interaction.CommandToggleHUD:
		return "Hide panel"
	}
	return cmd.String()
}

// statusLines is the number of text rows above the buttons.
const statusLines = 7

// height returns the panel height for the current button count.
func (h *HUD) height() int32 {
	t := h.renderer.Theme
	buttons := int32(len(h.buttons)) * (t.ButtonHeight + 4)
	return t.Padding*3 + t.LineHeight*(statusLines+1) + buttons
}

// Bounds returns the panel rectangle in window pixels.
func (h *HUD) Bounds() rl.Rectangle {
	return rl.Rectangle{
		X:      float32(h.x),
		Y:      float32(h.y),
		Width:  float32(h.width),
		Height: float32(h.height()),
	}
}

// Contains reports whether pixel (px, py) lies on the panel.
func (h *HUD) Contains(px, py float32) bool {
	return rl.CheckCollisionPointRec(rl.NewVector2(px, py), h.Bounds())
}

// Draw renders the panel and returns the commands whose buttons were
// clicked this frame.
func (h *HUD) Draw(data HUDData) []interaction.Command {
	r := h.renderer
	t := r.Theme
	inner := h.width - t.Padding*2

	r.DrawPanel(h.x, h.y, h.width, h.height())

	x := h.x + t.Padding
	y := h.y + t.Padding
	y = r.DrawSectionHeader(x, y, "Metaballs")
	y = r.DrawLabelValue(x, y, "Phase", data.Phase)
	y = r.DrawLabelValue(x, y, "Particles", fmt.Sprintf("%d", data.Filled))
	y = r.DrawLabelValue(x, y, "Speed", fmt.Sprintf("x%.2f", data.Speed))
	y = r.DrawLabelValue(x, y, "Mode", data.Mode)
	y = r.DrawLabelValue(x, y, "FPS", fmt.Sprintf("%d", data.FPS))
	y = r.DrawFlag(x, y, "Gravity", data.Gravity)
	y = r.DrawFlag(x, y, "Paused", data.Paused)
	y += t.Padding

	var clicked []interaction.Command
	for _, b := range h.buttons {
		bounds := rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(inner), Height: float32(t.ButtonHeight)}
		if gui.Button(bounds, b.label) {
			clicked = append(clicked, b.cmd)
		}
		y += t.ButtonHeight + 4
	}
	return clicked
}
