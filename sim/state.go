// Package sim owns the simulator state and advances it one frame at a time:
// input, then physics, then the uniforms for the shader.
package sim

import (
	"log/slog"

	"github.com/pthm-cable/metaballs/bridge"
	"github.com/pthm-cable/metaballs/config"
	"github.com/pthm-cable/metaballs/interaction"
	"github.com/pthm-cable/metaballs/slots"
	"github.com/pthm-cable/metaballs/systems"
	"github.com/pthm-cable/metaballs/telemetry"
)

// Options configures a State.
type Options struct {
	Width, Height   float32
	GravityDivisor  float32
	VelocityDivisor float32
	SpeedPresets    [4]float32
	ShowHUD         bool
}

// DefaultOptions returns the built-in constants for a 640x640 window.
func DefaultOptions() Options {
	return Options{
		Width:           bridge.Resolution.X(),
		Height:          bridge.Resolution.Y(),
		GravityDivisor:  systems.DefaultGravityDivisor,
		VelocityDivisor: interaction.DefaultVelocityDivisor,
		SpeedPresets:    systems.DefaultSpeedPresets,
	}
}

// OptionsFromConfig builds Options from a loaded config.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Width:           cfg.Derived.ScreenW32,
		Height:          cfg.Derived.ScreenH32,
		GravityDivisor:  cfg.Derived.GravityDivisor,
		VelocityDivisor: cfg.Derived.VelocityDivisor,
		SpeedPresets:    cfg.Derived.SpeedPresets,
		ShowHUD:         cfg.UI.ShowHUD,
	}
}

// Input is everything that happened since the previous frame.
type Input struct {
	Commands []interaction.Command
	Pointer  []interaction.Event
}

// Empty reports whether the input holds no events.
func (in Input) Empty() bool {
	return len(in.Commands) == 0 && len(in.Pointer) == 0
}

// Report counts what one frame did, for telemetry.
type Report struct {
	Placed    int
	Wrapped   int
	Committed int
	Commands  int
	Resets    int
	Paused    bool
}

// State is the complete simulator state. It is owned by a single frame
// loop; nothing in it is safe for concurrent use.
type State struct {
	Table   *slots.Table
	Machine *interaction.Machine
	Config  systems.SimulationConfig
	Mode    bridge.Mode
	ShowHUD bool

	physics  *systems.PhysicsSystem
	builder  *bridge.Builder
	viewport interaction.Viewport
	uniforms bridge.Uniforms
	frame    int32
}

// New returns an empty, idle, running state.
func New(opts Options) *State {
	s := &State{
		Table:    slots.NewTable(),
		Machine:  interaction.NewMachine(opts.VelocityDivisor),
		Config:   systems.NewSimulationConfig(opts.SpeedPresets),
		Mode:     bridge.ModeMetaball,
		ShowHUD:  opts.ShowHUD,
		physics:  systems.NewPhysicsSystem(opts.GravityDivisor),
		builder:  bridge.NewBuilder(opts.Width, opts.Height),
		viewport: interaction.Viewport{Width: opts.Width, Height: opts.Height},
	}
	s.builder.Build(&s.uniforms, s.Table, s.Mode, 0)
	return s
}

// Reset clears every slot and abandons the particle under construction.
// Simulation switches and render mode are kept.
func (s *State) Reset() {
	s.Table.Reset()
	s.Machine.Reset()
}

// Viewport returns the window size pointer events are normalised against.
func (s *State) Viewport() interaction.Viewport {
	return s.viewport
}

// HandlePointer feeds one pointer event to the creation protocol.
func (s *State) HandlePointer(ev interaction.Event, r *Report) interaction.Outcome {
	wraps := s.Table.Wrapped()
	out := s.Machine.Handle(s.Table, s.viewport, ev)

	switch out {
	case interaction.OutcomePlaced:
		slot := s.lastSlot()
		if r != nil {
			r.Placed++
			if wraps {
				r.Wrapped++
			}
		}
		slog.Debug("particle placed", "slot", slot, "center", s.Table.Slot(slot).Center, "wrapped", wraps)
	case interaction.OutcomeRadiusCommitted:
		slot := s.lastSlot()
		slog.Debug("radius set", "slot", slot, "radius", s.Table.Slot(slot).Radius)
	case interaction.OutcomeVelocityCommitted:
		slot := s.lastSlot()
		if r != nil {
			r.Committed++
		}
		slog.Debug("velocity set", "slot", slot, "velocity", s.Table.Slot(slot).Velocity)
	}
	return out
}

// lastSlot is the slot most recently written by AppendCenter.
func (s *State) lastSlot() int {
	switch p := s.Machine.Phase().(type) {
	case interaction.SizingRadius:
		return p.Slot
	case interaction.SettingVelocity:
		return p.Slot
	}
	return s.Table.Cursor() - 1
}

// Apply executes a key command.
func (s *State) Apply(cmd interaction.Command, r *Report) {
	switch cmd {
	case interaction.CommandReset:
		s.Reset()
		if r != nil {
			r.Resets++
		}
	case interaction.CommandToggleGravity:
		s.Config.ToggleGravity()
	case interaction.CommandTogglePause:
		s.Config.TogglePause()
	case interaction.CommandToggleRenderMode:
		s.Mode = s.Mode.Toggle()
	case interaction.CommandToggleHUD:
		s.ShowHUD = !s.ShowHUD
	default:
		i, ok := cmd.SpeedPreset()
		if !ok {
			return
		}
		s.Config.SelectSpeed(i)
	}

	if r != nil {
		r.Commands++
	}
	slog.Info("command",
		"command", cmd.String(),
		"gravity", s.Config.GravityEnabled,
		"paused", s.Config.Paused,
		"speed", s.Config.SpeedMultiplier,
		"mode", s.Mode.String(),
	)
}

// Step advances physics by one frame unless paused.
func (s *State) Step() {
	s.physics.Update(s.Table, s.Config)
}

// Publish rebuilds the uniforms from the current table.
func (s *State) Publish(elapsed float32) *bridge.Uniforms {
	s.builder.Build(&s.uniforms, s.Table, s.Mode, elapsed)
	return &s.uniforms
}

// Uniforms returns the most recently published uniforms.
func (s *State) Uniforms() *bridge.Uniforms {
	return &s.uniforms
}

// Frame runs one frame: commands, pointer events in order, physics, then
// uniform publication. elapsed is seconds since start.
func (s *State) Frame(in Input, elapsed float32) (*bridge.Uniforms, Report) {
	return s.FrameTimed(in, elapsed, nil)
}

// FrameTimed is Frame with each stage attributed to a perf phase. The
// caller owns StartStep/EndStep; perf may be nil.
func (s *State) FrameTimed(in Input, elapsed float32, perf *telemetry.PerfCollector) (*bridge.Uniforms, Report) {
	mark := func(phase string) {
		if perf != nil {
			perf.StartPhase(phase)
		}
	}

	var r Report
	mark(telemetry.PhaseInput)
	for _, cmd := range in.Commands {
		s.Apply(cmd, &r)
	}
	for _, ev := range in.Pointer {
		s.HandlePointer(ev, &r)
	}

	mark(telemetry.PhasePhysics)
	r.Paused = s.Config.Paused
	s.Step()

	mark(telemetry.PhaseUniforms)
	u := s.Publish(elapsed)
	s.frame++
	return u, r
}

// FrameCount returns the number of frames run.
func (s *State) FrameCount() int32 {
	return s.frame
}

// Kinematics returns speed and radius of every filled slot.
func (s *State) Kinematics() (speeds, radii []float64) {
	n := s.Table.Filled()
	speeds = make([]float64, 0, n)
	radii = make([]float64, 0, n)
	for i := 0; i < n; i++ {
		slot := s.Table.Slot(i)
		speeds = append(speeds, float64(slot.Velocity.Len()))
		radii = append(radii, float64(slot.Radius))
	}
	return speeds, radii
}

// Samples returns one telemetry row per filled slot.
func (s *State) Samples() []telemetry.SlotSample {
	n := s.Table.Filled()
	out := make([]telemetry.SlotSample, 0, n)
	for i := 0; i < n; i++ {
		slot := s.Table.Slot(i)
		out = append(out, telemetry.SlotSample{
			Frame:  s.frame,
			Slot:   i,
			X:      slot.Center.X(),
			Y:      slot.Center.Y(),
			VX:     slot.Velocity.X(),
			VY:     slot.Velocity.Y(),
			Radius: slot.Radius,
		})
	}
	return out
}

// Switches returns the simulation switches in telemetry form.
func (s *State) Switches() telemetry.Switches {
	return telemetry.Switches{
		Gravity: s.Config.GravityEnabled,
		Paused:  s.Config.Paused,
		Speed:   float64(s.Config.SpeedMultiplier),
		Mode:    s.Mode.String(),
	}
}
