package graphics

import (
	"errors"
	"fmt"
	"math"
	"os"

	"metaballs/internal/sim"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrMissingResource is wrapped by every MissingResourceError.
var ErrMissingResource = errors.New("missing render resource")

// MissingResourceError names the first shader file, attribute or uniform that could not be
// resolved. Startup cannot continue without it.
type MissingResourceError struct {
	Kind string
	Name string
}

func (e *MissingResourceError) Error() string {
	return fmt.Sprintf("graphics: %s: %s %q", ErrMissingResource, e.Kind, e.Name)
}

func (e *MissingResourceError) Unwrap() error { return ErrMissingResource }

// Attributes and uniforms the raymarching program must expose.
var (
	requiredAttribs  = []string{"vertexPosition", "vertexTexCoord"}
	requiredUniforms = []string{
		"u_pos", "u_camRotMat", "u_clientResolution", "u_elapsedTime",
		"u_balls", "u_activeBallCount", "u_blobFactor", "u_colors",
		"u_shadowOn", "u_diffuseOn", "u_normalsOnly",
	}
)

type uniformLocs struct {
	pos, camRotMat, resolution, elapsed  int32
	balls, activeBalls, blobFactor       int32
	colors, shadowOn, diffuseOn, normals int32
}

// Program is the metaball raymarching shader drawn over a full-screen rectangle. It
// implements sim.Renderer.
type Program struct {
	shader rl.Shader
	locs   uniformLocs
}

var _ sim.Renderer = (*Program)(nil)

// LoadProgram compiles the vertex and fragment shader files and resolves every required
// attribute and uniform. Call after the window exists.
func LoadProgram(vsPath, fsPath string) (*Program, error) {
	for _, path := range []string{vsPath, fsPath} {
		if _, err := os.Stat(path); err != nil {
			return nil, &MissingResourceError{Kind: "shader file", Name: path}
		}
	}
	shader := rl.LoadShader(vsPath, fsPath)
	if !rl.IsShaderValid(shader) {
		return nil, &MissingResourceError{Kind: "shader program", Name: fsPath}
	}

	for _, name := range requiredAttribs {
		if rl.GetShaderLocationAttrib(shader, name) < 0 {
			rl.UnloadShader(shader)
			return nil, &MissingResourceError{Kind: "attribute", Name: name}
		}
	}
	locs := make(map[string]int32, len(requiredUniforms))
	for _, name := range requiredUniforms {
		loc := rl.GetShaderLocation(shader, name)
		if loc < 0 {
			rl.UnloadShader(shader)
			return nil, &MissingResourceError{Kind: "uniform", Name: name}
		}
		locs[name] = loc
	}

	return &Program{
		shader: shader,
		locs: uniformLocs{
			pos:         locs["u_pos"],
			camRotMat:   locs["u_camRotMat"],
			resolution:  locs["u_clientResolution"],
			elapsed:     locs["u_elapsedTime"],
			balls:       locs["u_balls"],
			activeBalls: locs["u_activeBallCount"],
			blobFactor:  locs["u_blobFactor"],
			colors:      locs["u_colors"],
			shadowOn:    locs["u_shadowOn"],
			diffuseOn:   locs["u_diffuseOn"],
			normals:     locs["u_normalsOnly"],
		},
	}, nil
}

// Unload releases the shader.
func (p *Program) Unload() {
	rl.UnloadShader(p.shader)
}

// Resolution is the current drawable size in pixels.
func (p *Program) Resolution() (float32, float32) {
	return float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
}

// Draw uploads u and covers the screen with the raymarched scene. Call between
// BeginDrawing and EndDrawing.
func (p *Program) Draw(u *sim.Uniforms) {
	sh, l := p.shader, p.locs

	// Local copies so cgo never sees pointers into Go structs.
	pos := u.CameraPosition
	res := u.Resolution
	rl.SetShaderValue(sh, l.pos, pos[:], rl.ShaderUniformVec3)
	rl.SetShaderValueMatrix(sh, l.camRotMat, toMatrix(u.CameraRotation))
	rl.SetShaderValue(sh, l.resolution, res[:], rl.ShaderUniformVec2)
	rl.SetShaderValue(sh, l.elapsed, []float32{u.ElapsedTime}, rl.ShaderUniformFloat)

	if n := int32(len(u.Balls) / 4); n > 0 {
		rl.SetShaderValueV(sh, l.balls, u.Balls, rl.ShaderUniformVec4, n)
	}
	if n := int32(len(u.Colors) / 3); n > 0 {
		rl.SetShaderValueV(sh, l.colors, u.Colors, rl.ShaderUniformVec3, n)
	}
	// Int uniforms go through the float32 slice API bit for bit.
	rl.SetShaderValue(sh, l.activeBalls, []float32{math.Float32frombits(uint32(u.ActiveBlobs))}, rl.ShaderUniformInt)

	rl.SetShaderValue(sh, l.blobFactor, []float32{u.BlobFactor}, rl.ShaderUniformFloat)
	rl.SetShaderValue(sh, l.shadowOn, []float32{u.ShadowOn}, rl.ShaderUniformFloat)
	rl.SetShaderValue(sh, l.diffuseOn, []float32{u.DiffuseOn}, rl.ShaderUniformFloat)
	rl.SetShaderValue(sh, l.normals, []float32{u.NormalsOnly}, rl.ShaderUniformFloat)

	rl.BeginShaderMode(sh)
	rl.DrawRectangle(0, 0, int32(res[0]), int32(res[1]), rl.White)
	rl.EndShaderMode()
}

// toMatrix maps a column-major array onto raylib's named matrix fields (M0..M3 is the
// first column).
func toMatrix(m [16]float32) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}
