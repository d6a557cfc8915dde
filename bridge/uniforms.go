// Package bridge projects the slot table and frame clock into the uniform
// set consumed by the metaball shader.
package bridge

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/metaballs/slots"
)

// Mode selects how overlapping circles combine.
type Mode int32

const (
	ModeMetaball Mode = 0 // per-channel maximum
	ModeGlow     Mode = 1 // additive
)

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeMetaball {
		return ModeGlow
	}
	return ModeMetaball
}

func (m Mode) String() string {
	if m == ModeGlow {
		return "glow"
	}
	return "metaball"
}

// Resolution is the fixed u_resolution value.
var Resolution = mgl32.Vec2{640, 640}

// QuadVertices is the full-viewport quad as two triangles in clip space.
var QuadVertices = [12]float32{
	-1, 1,
	1, 1,
	-1, -1,
	1, 1,
	1, -1,
	-1, -1,
}

// Uniforms is everything the shader reads for one frame.
type Uniforms struct {
	Resolution mgl32.Vec2
	Time       float32
	View       mgl32.Mat4
	Mode       Mode
	Circles    [2 * slots.Capacity]float32
	Radii      [slots.Capacity]float32
}

// Builder assembles Uniforms. The view transform is fixed when the builder
// is created.
type Builder struct {
	view mgl32.Mat4
}

// NewBuilder returns a builder whose view scales x and y by height/width.
func NewBuilder(width, height float32) *Builder {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = height / width
	}
	return &Builder{view: mgl32.Diag4(mgl32.Vec4{aspect, aspect, 1, 1})}
}

// View returns the fixed view transform.
func (b *Builder) View() mgl32.Mat4 {
	return b.view
}

// Build fills u from the table, render mode and seconds since start.
func (b *Builder) Build(u *Uniforms, t *slots.Table, mode Mode, elapsed float32) {
	u.Resolution = Resolution
	u.Time = elapsed
	u.View = b.view
	u.Mode = mode
	t.Flatten(&u.Circles, &u.Radii)
}

// Circle returns centre and radius of slot i as the shader sees them.
func (u *Uniforms) Circle(i int) (mgl32.Vec2, float32) {
	return mgl32.Vec2{u.Circles[2*i], u.Circles[2*i+1]}, u.Radii[i]
}
