// Package interaction turns pointer events into fully specified particles.
//
// A particle is built in three steps: a press places its centre, dragging
// sizes its radius until the button is released, and a second drag aims
// its velocity, committed by the next press.
package interaction

import "github.com/go-gl/mathgl/mgl32"

// Phase is the state of the particle under construction. It is one of
// Idle, SizingRadius or SettingVelocity.
type Phase interface {
	phase()
	String() string
}

// Idle waits for a press to start a new particle.
type Idle struct{}

// SizingRadius tracks the cursor distance from the centre of Slot.
type SizingRadius struct {
	Slot int
}

// SettingVelocity previews the velocity of Slot until the next press.
type SettingVelocity struct {
	Slot    int
	Pending mgl32.Vec2
}

func (Idle) phase()            {}
func (SizingRadius) phase()    {}
func (SettingVelocity) phase() {}

func (Idle) String() string            { return "idle" }
func (SizingRadius) String() string    { return "sizing_radius" }
func (SettingVelocity) String() string { return "setting_velocity" }
