package slots

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestResetRestoresSentinel(t *testing.T) {
	tbl := NewTable()
	for i := 0; i < Capacity; i++ {
		idx := tbl.AppendCenter(mgl32.Vec2{float32(i) * 0.1, 0.5})
		tbl.SetRadius(idx, 0.2)
		tbl.SetVelocity(idx, mgl32.Vec2{0.01, -0.01})
	}

	tbl.Reset()

	for i := 0; i < Capacity; i++ {
		s := tbl.Slot(i)
		if s.Center != Empty {
			t.Errorf("slot %d center = %v, want %v", i, s.Center, Empty)
		}
		if s.Velocity != (mgl32.Vec2{}) {
			t.Errorf("slot %d velocity = %v, want zero", i, s.Velocity)
		}
		if s.Radius != 0 {
			t.Errorf("slot %d radius = %v, want 0", i, s.Radius)
		}
		if tbl.Active(i) {
			t.Errorf("slot %d active after reset", i)
		}
	}
	if tbl.Filled() != 0 {
		t.Errorf("Filled() = %d after reset, want 0", tbl.Filled())
	}
}

func TestAppendCenterFillsLeftToRight(t *testing.T) {
	tbl := NewTable()
	for want := 0; want < Capacity; want++ {
		got := tbl.AppendCenter(mgl32.Vec2{0.5, 0.5})
		if got != want {
			t.Fatalf("AppendCenter() = %d, want %d", got, want)
		}
	}
	if !tbl.Wrapped() {
		t.Error("table with every slot written should report Wrapped")
	}
	if tbl.Filled() != Capacity {
		t.Errorf("Filled() = %d, want %d", tbl.Filled(), Capacity)
	}
}

func TestAppendCenterWrapsToOldest(t *testing.T) {
	tbl := NewTable()
	for i := 0; i <= Capacity; i++ {
		idx := tbl.AppendCenter(mgl32.Vec2{float32(i), float32(i)})
		tbl.SetRadius(idx, float32(i))
	}

	s := tbl.Slot(0)
	if s.Center != (mgl32.Vec2{Capacity, Capacity}) {
		t.Errorf("slot 0 center = %v, want the eleventh particle", s.Center)
	}
	if s.Radius != Capacity {
		t.Errorf("slot 0 radius = %v, want %v", s.Radius, float32(Capacity))
	}
	if got := tbl.Slot(1).Center; got != (mgl32.Vec2{1, 1}) {
		t.Errorf("slot 1 center = %v, want untouched second particle", got)
	}
}

func TestAppendCenterClearsRecycledSlot(t *testing.T) {
	tbl := NewTable()
	for i := 0; i < Capacity; i++ {
		idx := tbl.AppendCenter(mgl32.Vec2{0.5, 0.5})
		tbl.SetRadius(idx, 0.3)
		tbl.SetVelocity(idx, mgl32.Vec2{0.1, 0.1})
	}

	idx := tbl.AppendCenter(mgl32.Vec2{1, 1})
	s := tbl.Slot(idx)
	if s.Radius != 0 || s.Velocity != (mgl32.Vec2{}) {
		t.Errorf("recycled slot = %+v, want zero radius and velocity", s)
	}
}

func TestOutOfRangeWritesIgnored(t *testing.T) {
	tbl := NewTable()
	tbl.SetRadius(Capacity, 1)
	tbl.SetRadius(-1, 1)
	tbl.SetVelocity(Capacity, mgl32.Vec2{1, 1})

	for i := 0; i < Capacity; i++ {
		s := tbl.Slot(i)
		if s.Radius != 0 || s.Velocity != (mgl32.Vec2{}) {
			t.Fatalf("slot %d modified by out-of-range write: %+v", i, s)
		}
	}
	if got := tbl.Slot(Capacity); got.Center != Empty {
		t.Errorf("Slot(Capacity) = %+v, want empty slot", got)
	}
}

func TestFlattenLayout(t *testing.T) {
	tbl := NewTable()
	idx := tbl.AppendCenter(mgl32.Vec2{0.25, 0.75})
	tbl.SetRadius(idx, 0.5)

	var pos [2 * Capacity]float32
	var radii [Capacity]float32
	tbl.Flatten(&pos, &radii)

	if pos[0] != 0.25 || pos[1] != 0.75 {
		t.Errorf("pos[0:2] = %v, want [0.25 0.75]", pos[0:2])
	}
	if radii[0] != 0.5 {
		t.Errorf("radii[0] = %v, want 0.5", radii[0])
	}
	for i := 1; i < Capacity; i++ {
		if pos[2*i] != -1 || pos[2*i+1] != -1 {
			t.Errorf("slot %d flattened to (%v, %v), want sentinel", i, pos[2*i], pos[2*i+1])
		}
	}
}
