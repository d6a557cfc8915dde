package interaction

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/metaballs/slots"
)

// DefaultVelocityDivisor turns a drag distance into a per-frame velocity.
const DefaultVelocityDivisor = 100

// Outcome reports what a handled event did to the table.
type Outcome uint8

const (
	OutcomeNone              Outcome = iota
	OutcomePlaced                    // new centre written
	OutcomeRadiusChanged             // live radius preview
	OutcomeRadiusCommitted           // release ended sizing
	OutcomeVelocityPreviewed         // pending velocity updated
	OutcomeVelocityCommitted         // particle complete
)

// Machine drives the particle creation protocol.
type Machine struct {
	phase           Phase
	velocityDivisor float32
}

// NewMachine returns an idle machine. A non-positive divisor falls back to
// DefaultVelocityDivisor.
func NewMachine(velocityDivisor float32) *Machine {
	if velocityDivisor <= 0 {
		velocityDivisor = DefaultVelocityDivisor
	}
	return &Machine{phase: Idle{}, velocityDivisor: velocityDivisor}
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Reset abandons any particle under construction.
func (m *Machine) Reset() {
	m.phase = Idle{}
}

// Handle applies one pointer event to the table. Events that do not apply
// to the current phase, and every non-left button, are ignored.
func (m *Machine) Handle(t *slots.Table, vp Viewport, ev Event) Outcome {
	if ev.Kind != EventMove && ev.Button != ButtonLeft {
		return OutcomeNone
	}
	cursor := vp.Normalize(ev.X, ev.Y)

	switch p := m.phase.(type) {
	case Idle:
		if ev.Kind != EventPress {
			return OutcomeNone
		}
		slot := t.AppendCenter(cursor)
		t.SetRadius(slot, 0)
		m.phase = SizingRadius{Slot: slot}
		return OutcomePlaced

	case SizingRadius:
		switch ev.Kind {
		case EventMove:
			center := t.Slot(p.Slot).Center
			t.SetRadius(p.Slot, cursor.Sub(center).Len())
			return OutcomeRadiusChanged
		case EventRelease:
			m.phase = SettingVelocity{Slot: p.Slot}
			return OutcomeRadiusCommitted
		}

	case SettingVelocity:
		switch ev.Kind {
		case EventMove:
			center := t.Slot(p.Slot).Center
			d := cursor.Sub(center)
			p.Pending = mgl32.Vec2{d.X() / m.velocityDivisor, d.Y() / m.velocityDivisor}
			m.phase = p
			return OutcomeVelocityPreviewed
		case EventPress:
			t.SetVelocity(p.Slot, p.Pending)
			m.phase = Idle{}
			return OutcomeVelocityCommitted
		}
	}
	return OutcomeNone
}

// Pending returns the velocity preview while aiming, and false otherwise.
func (m *Machine) Pending() (mgl32.Vec2, bool) {
	if p, ok := m.phase.(SettingVelocity); ok {
		return p.Pending, true
	}
	return mgl32.Vec2{}, false
}
