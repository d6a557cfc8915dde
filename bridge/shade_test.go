package bridge

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/metaballs/slots"
)

func TestIndicator(t *testing.T) {
	tests := []struct {
		name string
		r, d float32
		want float32
	}{
		{"centre", 0.2, 0, 1},
		{"inside inner edge", 0.2, 0.005, 1},
		{"beyond outer edge", 0.2, 0.3, 0},
		{"band midpoint", 0.2, 0.125, 0.5},
		{"zero radius", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Indicator(tt.r, tt.d)
			if math.Abs(float64(got-tt.want)) > 1e-5 {
				t.Errorf("Indicator(%v, %v) = %v, want %v", tt.r, tt.d, got, tt.want)
			}
		})
	}
}

func twoOverlapping(mode Mode) *Uniforms {
	tbl := slots.NewTable()
	a := tbl.AppendCenter(mgl32.Vec2{1, 1})
	tbl.SetRadius(a, 0.2)
	b := tbl.AppendCenter(mgl32.Vec2{1.1, 1})
	tbl.SetRadius(b, 0.2)

	u := &Uniforms{}
	NewBuilder(640, 640).Build(u, tbl, mode, 0)
	return u
}

func TestIntensityModes(t *testing.T) {
	p := mgl32.Vec2{1.05, 1}

	metaball := twoOverlapping(ModeMetaball).Intensity(p)
	glow := twoOverlapping(ModeGlow).Intensity(p)

	if metaball > 1 {
		t.Errorf("metaball intensity %v exceeds 1", metaball)
	}
	if glow <= metaball {
		t.Errorf("glow intensity %v should brighten overlap above metaball %v", glow, metaball)
	}
	single := Indicator(0.2, 0.05)
	if math.Abs(float64(metaball-single)) > 1e-5 {
		t.Errorf("metaball intensity = %v, want max of indicators %v", metaball, single)
	}
	if math.Abs(float64(glow-2*single)) > 1e-5 {
		t.Errorf("glow intensity = %v, want sum of indicators %v", glow, 2*single)
	}
}

func TestShadeTint(t *testing.T) {
	u := twoOverlapping(ModeMetaball)
	c := u.Shade(mgl32.Vec2{1, 1})
	if c.Z() != 1 || math.Abs(float64(c.X()-0.75)) > 1e-6 || c.X() != c.Y() {
		t.Errorf("Shade at centre = %v, want (0.75, 0.75, 1)", c)
	}
	if got := u.Shade(mgl32.Vec2{0, 0}); got != (mgl32.Vec3{}) {
		t.Errorf("Shade far away = %v, want black", got)
	}
}

func TestRenderOrientation(t *testing.T) {
	tbl := slots.NewTable()
	i := tbl.AppendCenter(mgl32.Vec2{0.5, 1.5}) // upper left quadrant
	tbl.SetRadius(i, 0.3)

	var u Uniforms
	NewBuilder(64, 64).Build(&u, tbl, ModeMetaball, 0)
	img := u.Render(64, 64)

	if got := img.RGBAAt(16, 16); got.B != 255 {
		t.Errorf("upper-left pixel = %v, want lit", got)
	}
	if got := img.RGBAAt(48, 48); got.B != 0 {
		t.Errorf("lower-right pixel = %v, want dark", got)
	}
}
