package sim

import "metaballs/internal/settings"

// Uniforms is the numeric state the raymarching shader consumes each frame.
type Uniforms struct {
	// CameraPosition is the camera position with Z negated (u_pos).
	CameraPosition [3]float32
	// CameraRotation is the column-major inverse camera rotation (u_camRotMat).
	CameraRotation [16]float32
	Resolution     [2]float32
	// ElapsedTime is the shader clock in seconds, frozen while paused (u_elapsedTime).
	ElapsedTime float32
	// Balls holds (x, y, z, radius) per blob and Colors (r, g, b) per blob. Both alias the
	// scene buffers and are read-only.
	Balls       []float32
	Colors      []float32
	ActiveBlobs int32

	BlobFactor  float32
	ShadowOn    float32
	DiffuseOn   float32
	NormalsOnly float32
}

func (l *Loop) fillUniforms(v settings.Values) {
	u := &l.uniforms
	cam := l.state.Camera
	sc := l.state.Scene

	u.CameraPosition = cam.ShaderPosition()
	u.CameraRotation = [16]float32(cam.RotationMatrix())
	w, h := l.renderer.Resolution()
	u.Resolution = [2]float32{w, h}
	u.ElapsedTime = l.elapsed

	u.Balls = sc.Balls()
	u.Colors = sc.Colors()
	u.ActiveBlobs = int32(sc.Len())

	u.BlobFactor = v.BlobFactor
	u.ShadowOn = settings.Flag(v.Shadow)
	u.DiffuseOn = settings.Flag(v.Diffuse)
	u.NormalsOnly = settings.Flag(v.NormalsOnly)
}
