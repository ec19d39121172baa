package engineconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"metaballs/internal/camera"
	"metaballs/internal/input"
	"metaballs/internal/logger"
	"metaballs/internal/physics"
	"metaballs/internal/scene"
	"metaballs/internal/settings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file path, relative to the process working directory.
const DefaultPath = "config/metaballs.yaml"

// Prefs holds everything tunable at startup. Runtime changes (console commands) are not
// written back.
type Prefs struct {
	Window  WindowPrefs `yaml:"window"`
	Shaders ShaderPrefs `yaml:"shaders"`
	Scene   ScenePrefs  `yaml:"scene"`
	Camera  CameraPrefs `yaml:"camera"`
	Render  RenderPrefs `yaml:"render"`
	Input   InputPrefs  `yaml:"input"`
	Debug   DebugPrefs  `yaml:"debug"`
	LogPath string      `yaml:"log_path"`
}

type WindowPrefs struct {
	Width      int32  `yaml:"width"`
	Height     int32  `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	Title      string `yaml:"title"`
	TargetFPS  int32  `yaml:"target_fps"`
	// Font for the console and overlay: a file path or a family name under assets/fonts.
	// Empty uses raylib's built-in font.
	Font string `yaml:"font"`
}

// ShaderPrefs points at the raymarching program. Both files are loaded from disk at startup.
type ShaderPrefs struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

type BoundsPrefs struct {
	XPos float32 `yaml:"x_pos"`
	XNeg float32 `yaml:"x_neg"`
	YPos float32 `yaml:"y_pos"`
	YNeg float32 `yaml:"y_neg"`
	ZPos float32 `yaml:"z_pos"`
	ZNeg float32 `yaml:"z_neg"`
}

type ScenePrefs struct {
	Bounds       BoundsPrefs `yaml:"bounds"`
	InitialBlobs int         `yaml:"initial_blobs"`
	// Seed for the blob generator; 0 picks a time-based seed.
	Seed int64 `yaml:"seed"`
}

type CameraPrefs struct {
	Position   [3]float32 `yaml:"position,flow"`
	MouseSpeed float32    `yaml:"mouse_speed"`
	MoveSpeed  float32    `yaml:"move_speed"`
	FastSpeed  float32    `yaml:"fast_speed"`
}

type RenderPrefs struct {
	AnimSpeed   float32 `yaml:"anim_speed"`
	BlobFactor  float32 `yaml:"blob_factor"`
	Shadow      bool    `yaml:"shadow"`
	Diffuse     bool    `yaml:"diffuse"`
	NormalsOnly bool    `yaml:"normals_only"`
}

type InputPrefs struct {
	// MouseStaleMs is how long a pointer delta is kept without a new move event.
	MouseStaleMs int `yaml:"mouse_stale_ms"`
}

type DebugPrefs struct {
	ShowFPS        bool `yaml:"show_fps"`
	ShowFrameStats bool `yaml:"show_frame_stats"`
	ShowMemAlloc   bool `yaml:"show_mem_alloc"`
}

// Default returns the default preferences: 1280x720 window, five blobs in the standard box,
// camera at (0, 4, 3), shadows and diffuse lighting on.
func Default() Prefs {
	b := physics.DefaultBounds()
	cam := camera.DefaultConfig()
	rs := settings.Defaults()
	return Prefs{
		Window: WindowPrefs{
			Width:     1280,
			Height:    720,
			Title:     "metaballs",
			TargetFPS: 60,
		},
		Shaders: ShaderPrefs{
			Vertex:   "assets/shaders/vertex.glsl",
			Fragment: "assets/shaders/fragment.glsl",
		},
		Scene: ScenePrefs{
			Bounds: BoundsPrefs{
				XPos: b.XPos, XNeg: b.XNeg,
				YPos: b.YPos, YNeg: b.YNeg,
				ZPos: b.ZPos, ZNeg: b.ZNeg,
			},
			InitialBlobs: 5,
		},
		Camera: CameraPrefs{
			Position:   cam.Position,
			MouseSpeed: cam.MouseSpeed,
			MoveSpeed:  cam.MoveSpeed,
			FastSpeed:  cam.FastSpeed,
		},
		Render: RenderPrefs{
			AnimSpeed:   rs.AnimSpeed,
			BlobFactor:  rs.BlobFactor,
			Shadow:      rs.Shadow,
			Diffuse:     rs.Diffuse,
			NormalsOnly: rs.NormalsOnly,
		},
		Input:   InputPrefs{MouseStaleMs: int(input.DefaultStaleAfter.Milliseconds())},
		Debug:   DebugPrefs{ShowFPS: true},
		LogPath: logger.DefaultPath,
	}
}

// Load reads preferences from path. Missing keys keep their default values. A missing file
// returns Default() and does not create one; a malformed or invalid file is an error.
func Load(path string) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("engineconfig: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("engineconfig: parse %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Default(), fmt.Errorf("engineconfig: %s: %w", path, err)
	}
	return p, nil
}

// Save writes preferences to path as YAML, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("engineconfig: %w", err)
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("engineconfig: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks values the rest of the program assumes are sane.
func (p Prefs) Validate() error {
	if err := p.Bounds().Validate(); err != nil {
		return err
	}
	if p.Scene.InitialBlobs < 0 || p.Scene.InitialBlobs > scene.HardLimit {
		return fmt.Errorf("initial_blobs must be in [0, %d], got %d", scene.HardLimit, p.Scene.InitialBlobs)
	}
	if p.Camera.MouseSpeed < 0 || p.Camera.MoveSpeed < 0 || p.Camera.FastSpeed < 0 {
		return errors.New("camera speeds must not be negative")
	}
	if p.Render.AnimSpeed < 0 || p.Render.BlobFactor < 0 {
		return errors.New("anim_speed and blob_factor must not be negative")
	}
	if p.Window.Width <= 0 || p.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", p.Window.Width, p.Window.Height)
	}
	return nil
}

// Bounds converts the scene bounds to physics.Bounds.
func (p Prefs) Bounds() physics.Bounds {
	b := p.Scene.Bounds
	return physics.Bounds{XPos: b.XPos, XNeg: b.XNeg, YPos: b.YPos, YNeg: b.YNeg, ZPos: b.ZPos, ZNeg: b.ZNeg}
}

// CameraConfig converts the camera prefs to camera.Config.
func (p Prefs) CameraConfig() camera.Config {
	return camera.Config{
		Position:   p.Camera.Position,
		MouseSpeed: p.Camera.MouseSpeed,
		MoveSpeed:  p.Camera.MoveSpeed,
		FastSpeed:  p.Camera.FastSpeed,
	}
}

// RenderValues converts the render prefs to the initial settings.Values.
func (p Prefs) RenderValues() settings.Values {
	r := p.Render
	return settings.Values{
		AnimSpeed:   r.AnimSpeed,
		BlobFactor:  r.BlobFactor,
		Shadow:      r.Shadow,
		Diffuse:     r.Diffuse,
		NormalsOnly: r.NormalsOnly,
	}
}
