// Package slots holds the fixed-capacity particle table shared by the
// simulation and the shader.
package slots

import "github.com/go-gl/mathgl/mgl32"

// Capacity is the number of particle slots. The fragment shader declares
// arrays of exactly this size.
const Capacity = 10

// Empty is the centre of a slot that has never been filled.
var Empty = mgl32.Vec2{-1, -1}

// Slot is one particle record.
type Slot struct {
	Center   mgl32.Vec2
	Velocity mgl32.Vec2
	Radius   float32
}

// emptySlot returns a slot in the reset state.
func emptySlot() Slot {
	return Slot{Center: Empty}
}

// Table is the particle slot table. Slots are filled left to right and
// wrap back to slot 0 once all of them have been used; they are never freed
// individually.
type Table struct {
	slots  [Capacity]Slot
	cursor int // next slot AppendCenter writes
	filled int // slots written since the last reset, capped at Capacity
}

// NewTable returns a table with every slot empty.
func NewTable() *Table {
	t := &Table{}
	t.Reset()
	return t
}

// Reset empties every slot and rewinds the write cursor.
func (t *Table) Reset() {
	for i := range t.slots {
		t.slots[i] = emptySlot()
	}
	t.cursor = 0
	t.filled = 0
}

// AppendCenter writes a new particle centre into the next slot and returns
// its index. The slot's radius and velocity are zeroed. A full table
// overwrites its oldest slot.
func (t *Table) AppendCenter(c mgl32.Vec2) int {
	if t.cursor >= Capacity {
		t.cursor = 0
	}
	i := t.cursor
	t.slots[i] = Slot{Center: c}
	t.cursor++
	if t.filled < Capacity {
		t.filled++
	}
	return i
}

// Wrapped reports whether the next AppendCenter will overwrite slot 0.
func (t *Table) Wrapped() bool {
	return t.cursor >= Capacity
}

// SetRadius sets the radius of slot i. Out-of-range indices are ignored.
func (t *Table) SetRadius(i int, r float32) {
	if !inRange(i) {
		return
	}
	t.slots[i].Radius = r
}

// SetVelocity sets the velocity of slot i. Out-of-range indices are ignored.
func (t *Table) SetVelocity(i int, v mgl32.Vec2) {
	if !inRange(i) {
		return
	}
	t.slots[i].Velocity = v
}

// Slot returns a copy of slot i, or an empty slot for an out-of-range index.
func (t *Table) Slot(i int) Slot {
	if !inRange(i) {
		return emptySlot()
	}
	return t.slots[i]
}

// Active reports whether slot i holds a centre other than the empty sentinel.
func (t *Table) Active(i int) bool {
	return inRange(i) && t.slots[i].Center != Empty
}

// Filled returns how many slots have been written since the last reset.
func (t *Table) Filled() int {
	return t.filled
}

// Cursor returns the index the next AppendCenter writes, before wrapping.
func (t *Table) Cursor() int {
	return t.cursor
}

// Each calls fn with a pointer to every slot, in index order.
func (t *Table) Each(fn func(i int, s *Slot)) {
	for i := range t.slots {
		fn(i, &t.slots[i])
	}
}

// Flatten writes the centres as consecutive (x, y) pairs and the radii in
// slot order, the layout the shader's circles and radii uniforms expect.
func (t *Table) Flatten(positions *[2 * Capacity]float32, radii *[Capacity]float32) {
	for i, s := range t.slots {
		positions[2*i] = s.Center.X()
		positions[2*i+1] = s.Center.Y()
		radii[i] = s.Radius
	}
}

func inRange(i int) bool {
	return i >= 0 && i < Capacity
}
