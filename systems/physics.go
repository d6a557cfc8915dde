// Package systems contains the per-frame simulation systems.
package systems

import "github.com/pthm-cable/metaballs/slots"

// DefaultGravityDivisor scales the per-axis pull toward 1.
const DefaultGravityDivisor = 7500

// PhysicsSystem advances slot positions by their velocities.
type PhysicsSystem struct {
	gravityDivisor float32
}

// NewPhysicsSystem creates a physics system. A non-positive divisor falls
// back to DefaultGravityDivisor.
func NewPhysicsSystem(gravityDivisor float32) *PhysicsSystem {
	if gravityDivisor <= 0 {
		gravityDivisor = DefaultGravityDivisor
	}
	return &PhysicsSystem{gravityDivisor: gravityDivisor}
}

// Update integrates every slot once unless the simulation is paused.
// Unused slots are stepped too; with zero radius they draw nothing.
//
// Gravity pulls each axis independently toward 1. Positions then move by
// velocity divided by the speed multiplier, so a smaller multiplier moves
// particles further per frame.
func (s *PhysicsSystem) Update(t *slots.Table, cfg SimulationConfig) {
	if cfg.Paused {
		return
	}
	speed := cfg.SpeedMultiplier
	if speed <= 0 {
		speed = 1
	}

	t.Each(func(_ int, slot *slots.Slot) {
		if cfg.GravityEnabled {
			for axis := 0; axis < 2; axis++ {
				slot.Velocity[axis] += (1 - slot.Center[axis]) / s.gravityDivisor
			}
		}
		slot.Center[0] += slot.Velocity[0] / speed
		slot.Center[1] += slot.Velocity[1] / speed
	})
}
