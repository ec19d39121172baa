package sim

import (
	"time"

	"metaballs/internal/camera"
	"metaballs/internal/input"
	"metaballs/internal/logger"
	"metaballs/internal/scene"
	"metaballs/internal/settings"
)

// ElapsedWrap is how much unpaused time the shader clock accumulates before it restarts at 0.
// The shader feeds it to periodic functions, so large values only cost precision.
const ElapsedWrap = 30 * 60

// State is everything one frame reads and writes. The Loop owns it; camera and simulation
// updates receive the pieces they need explicitly.
type State struct {
	Scene    *scene.Scene
	Camera   *camera.Camera
	Input    *input.State
	Settings *settings.RenderSettings
}

// Renderer is the output sink. Draw is called once per frame with the uniforms for that
// frame; the slices in u are only valid until Draw returns.
type Renderer interface {
	Resolution() (width, height float32)
	Draw(u *Uniforms)
}

// Loop is the per-frame coordinator. Every Frame runs, in order: dt from the timestamp,
// pause/resume dt substitution, camera position and orientation (never paused), blob
// simulation (skipped while paused), uniforms, draw, FPS bookkeeping.
//
// Loop is single-threaded: Frame, Pause, Resume and AddBlob must be called from the host's
// frame callback or between frames, never concurrently.
type Loop struct {
	state    State
	renderer Renderer
	log      *logger.Logger

	started bool
	prev    time.Duration
	dt      float32
	lastDt  float32

	paused       bool
	justUnpaused bool
	elapsed      float32

	fps      FPSCounter
	stats    *FrameStats
	uniforms Uniforms
}

// NewLoop returns a loop driving state into r. log may be nil.
func NewLoop(state State, r Renderer, log *logger.Logger) *Loop {
	if log == nil {
		log = logger.New("")
	}
	return &Loop{
		state:    state,
		renderer: r,
		log:      log,
		stats:    NewFrameStats(0),
	}
}

// Frame runs one tick at the monotonic timestamp now. The first frame has dt == 0.
func (l *Loop) Frame(now time.Duration) {
	l.state.Input.Expire(now)

	var dt float32
	first := !l.started
	if first {
		l.started = true
		l.fps.Reset(now)
	} else {
		dt = float32((now - l.prev).Seconds())
	}
	l.prev = now

	if l.justUnpaused {
		// Resume with the last dt from before the pause instead of the (long) gap.
		dt = l.lastDt
		l.justUnpaused = false
	}
	l.dt = dt

	if !l.paused {
		if l.elapsed >= ElapsedWrap {
			l.elapsed = 0
			l.log.Log("elapsed time wrapped")
		}
		l.elapsed += dt
	}

	values := l.state.Settings.Snapshot()

	l.state.Camera.UpdatePosition(l.state.Input, dt)
	l.state.Camera.UpdateOrientation(l.state.Input, dt)

	if !l.paused {
		l.state.Scene.Advance(dt, values.AnimSpeed)
	}

	l.fillUniforms(values)
	l.renderer.Draw(&l.uniforms)

	if !first {
		l.fps.Observe(now)
		l.stats.Add(dt)
	}
}

// Pause freezes the blobs and the shader clock. The camera keeps moving.
func (l *Loop) Pause() {
	if l.paused {
		return
	}
	l.paused = true
	l.lastDt = l.dt
	l.log.Log("simulation paused")
}

// Resume unfreezes the blobs; the next frame reuses the last dt from before the pause.
func (l *Loop) Resume() {
	if !l.paused {
		return
	}
	l.paused = false
	l.justUnpaused = true
	l.log.Log("simulation resumed")
}

// Paused reports whether the simulation is frozen.
func (l *Loop) Paused() bool {
	return l.paused
}

// AddBlob creates one random blob. It reports false when the scene is already full.
func (l *Loop) AddBlob() bool {
	if err := l.state.Scene.TryCreate(); err != nil {
		l.log.Logf("add blob: %v", err)
		return false
	}
	l.log.Logf("blob added (%d/%d)", l.state.Scene.Len(), scene.HardLimit)
	return true
}

// Blobs is the number of live blobs.
func (l *Loop) Blobs() int {
	return l.state.Scene.Len()
}

// State returns the state the loop drives.
func (l *Loop) State() State {
	return l.state
}

// Elapsed is the shader clock in seconds.
func (l *Loop) Elapsed() float32 {
	return l.elapsed
}

// DT is the dt used by the last frame.
func (l *Loop) DT() float32 {
	return l.dt
}

// FPS is the frame rate averaged over the last full second.
func (l *Loop) FPS() int {
	return l.fps.FPS()
}

// Stats returns the recent frame-time statistics.
func (l *Loop) Stats() *FrameStats {
	return l.stats
}

// Uniforms returns the uniforms pushed by the last frame.
func (l *Loop) Uniforms() *Uniforms {
	return &l.uniforms
}
