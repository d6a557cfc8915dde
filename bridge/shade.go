package bridge

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/metaballs/slots"
)

// Edge band of a circle, as fractions of its radius.
const (
	InnerEdge = 0.05
	OuterEdge = 1.2
)

// smoothstep matches the GLSL builtin for edge0 < edge1.
func smoothstep(edge0, edge1, x float32) float32 {
	t := mgl32.Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// Indicator is 1 inside a circle of radius r, 0 beyond 1.2r, with a smooth
// band in between. A circle with no radius contributes nothing.
func Indicator(r, dist float32) float32 {
	if r <= 0 {
		return 0
	}
	return 1 - smoothstep(InnerEdge*r, OuterEdge*r, dist)
}

// Intensity combines every circle's indicator at p (table coordinates):
// the maximum in metaball mode, the sum in glow mode.
func (u *Uniforms) Intensity(p mgl32.Vec2) float32 {
	var k float32
	for i := 0; i < slots.Capacity; i++ {
		c, r := u.Circle(i)
		v := Indicator(r, p.Sub(c).Len())
		if u.Mode == ModeGlow {
			k += v
		} else if v > k {
			k = v
		}
	}
	return k
}

// Shade returns the fragment colour at p. Red and green are scaled by 0.75
// to tint the blobs blue.
func (u *Uniforms) Shade(p mgl32.Vec2) mgl32.Vec3 {
	k := u.Intensity(p)
	return mgl32.Vec3{k * 0.75, k * 0.75, k}
}

// Render rasterises the uniforms on the CPU into a w×h image, row 0 at the
// top. Pixel centres map to table coordinates the same way the shader maps
// gl_FragCoord.
func (u *Uniforms) Render(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		fy := float32(h-1-y) + 0.5
		for x := 0; x < w; x++ {
			fx := float32(x) + 0.5
			p := mgl32.Vec2{2 * fx / float32(w), 2 * fy / float32(h)}
			c := u.Shade(p)
			img.SetRGBA(x, y, color.RGBA{
				R: toByte(c.X()),
				G: toByte(c.Y()),
				B: toByte(c.Z()),
				A: 255,
			})
		}
	}
	return img
}

func toByte(v float32) uint8 {
	return uint8(mgl32.Clamp(v, 0, 1)*255 + 0.5)
}
