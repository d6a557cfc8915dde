package bridge

import "github.com/go-gl/mathgl/mgl32"

// ScreenQuad maps QuadVertices from clip space to w×h window pixels (origin
// top-left, y down) and orders each triangle counter-clockwise as seen on
// screen, the order raylib's triangle drawing needs to survive back-face
// culling.
func ScreenQuad(w, h float32) [6]mgl32.Vec2 {
	var out [6]mgl32.Vec2
	for i := 0; i < 6; i++ {
		x, y := QuadVertices[2*i], QuadVertices[2*i+1]
		out[i] = mgl32.Vec2{(x + 1) / 2 * w, (1 - y) / 2 * h}
	}
	for t := 0; t < 6; t += 3 {
		if cross(out[t], out[t+1], out[t+2]) > 0 {
			out[t+1], out[t+2] = out[t+2], out[t+1]
		}
	}
	return out
}

// cross is the z component of (b-a)×(c-a). With y pointing down, a negative
// value is a counter-clockwise turn on screen.
func cross(a, b, c mgl32.Vec2) float32 {
	ab, ac := b.Sub(a), c.Sub(a)
	return ab.X()*ac.Y() - ab.Y()*ac.X()
}
