// Package renderer draws the metaball field with raylib.
package renderer

import (
	_ "embed"
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/metaballs/bridge"
	"github.com/pthm-cable/metaballs/slots"
)

//go:embed shaders/metaball.vs
var metaballVS string

//go:embed shaders/metaball.fs
var metaballFS string

// MetaballRenderer uploads bridge.Uniforms and shades a full-viewport quad.
type MetaballRenderer struct {
	shader rl.Shader

	resolutionLoc int32
	timeLoc       int32
	viewLoc       int32
	modeLoc       int32
	circlesLoc    int32
	radiiLoc      int32

	width, height float32
	quad          [6]rl.Vector2
	initialized   bool
}

// NewMetaballRenderer creates a renderer for a width×height target.
func NewMetaballRenderer(width, height int32) *MetaballRenderer {
	r := &MetaballRenderer{}
	r.Resize(float32(width), float32(height))
	return r
}

// Init compiles the shader (must be called after the raylib window is
// created).
func (r *MetaballRenderer) Init() error {
	if r.initialized {
		return nil
	}

	r.shader = rl.LoadShaderFromMemory(metaballVS, metaballFS)
	if r.shader.ID == 0 {
		return errors.New("metaball shader failed to compile")
	}

	r.resolutionLoc = rl.GetShaderLocation(r.shader, "u_resolution")
	r.timeLoc = rl.GetShaderLocation(r.shader, "u_time")
	r.viewLoc = rl.GetShaderLocation(r.shader, "u_view")
	r.modeLoc = rl.GetShaderLocation(r.shader, "u_mode")
	r.circlesLoc = rl.GetShaderLocation(r.shader, "u_circles")
	r.radiiLoc = rl.GetShaderLocation(r.shader, "u_radii")

	r.initialized = true
	return nil
}

// Resize updates the quad for a new target size.
func (r *MetaballRenderer) Resize(width, height float32) {
	r.width, r.height = width, height
	for i, v := range bridge.ScreenQuad(width, height) {
		r.quad[i] = rl.NewVector2(v.X(), v.Y())
	}
}

// Draw uploads u and draws the quad. Call between BeginDrawing (or
// BeginTextureMode) and the matching End.
func (r *MetaballRenderer) Draw(u *bridge.Uniforms) {
	if !r.initialized {
		return
	}
	r.upload(u)

	rl.BeginShaderMode(r.shader)
	for t := 0; t < len(r.quad); t += 3 {
		rl.DrawTriangle(r.quad[t], r.quad[t+1], r.quad[t+2], rl.White)
	}
	rl.EndShaderMode()
}

func (r *MetaballRenderer) upload(u *bridge.Uniforms) {
	set := func(loc int32, value []float32, typ rl.ShaderUniformDataType) {
		if loc >= 0 {
			rl.SetShaderValue(r.shader, loc, value, typ)
		}
	}
	set(r.resolutionLoc, []float32{u.Resolution.X(), u.Resolution.Y()}, rl.ShaderUniformVec2)
	set(r.timeLoc, []float32{u.Time}, rl.ShaderUniformFloat)
	// raylib-go only uploads float data, so the mode travels as 0.0 / 1.0.
	set(r.modeLoc, []float32{float32(u.Mode)}, rl.ShaderUniformFloat)

	if r.viewLoc >= 0 {
		rl.SetShaderValueMatrix(r.shader, r.viewLoc, toMatrix(u))
	}
	if r.circlesLoc >= 0 {
		rl.SetShaderValueV(r.shader, r.circlesLoc, u.Circles[:], rl.ShaderUniformVec2, slots.Capacity)
	}
	if r.radiiLoc >= 0 {
		rl.SetShaderValueV(r.shader, r.radiiLoc, u.Radii[:], rl.ShaderUniformFloat, slots.Capacity)
	}
}

// toMatrix converts the column-major view into raylib's matrix layout.
func toMatrix(u *bridge.Uniforms) rl.Matrix {
	m := u.View
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

// Unload frees resources.
func (r *MetaballRenderer) Unload() {
	if r.initialized {
		rl.UnloadShader(r.shader)
		r.initialized = false
	}
}
