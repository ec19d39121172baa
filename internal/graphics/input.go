package graphics

import (
	"time"

	"metaballs/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// keyBindings maps each action to the keys that trigger it.
var keyBindings = map[input.Action][]int32{
	input.StrafeLeft:  {rl.KeyA},
	input.StrafeRight: {rl.KeyD},
	input.Backward:    {rl.KeyS},
	input.Forward:     {rl.KeyW},
	input.Down:        {rl.KeyQ},
	input.Up:          {rl.KeyE},
	input.Fast:        {rl.KeyLeftShift, rl.KeyRightShift},
}

// PollInput copies this frame's keyboard and mouse state into in. raylib reports the pointer
// delta per frame, so a zero delta is recorded too. With keys false (console open) every
// action is released and rotation is disabled.
func PollInput(in *input.State, now time.Duration, keys bool) {
	for action, bound := range keyBindings {
		down := false
		if keys {
			for _, k := range bound {
				if rl.IsKeyDown(k) {
					down = true
					break
				}
			}
		}
		if down {
			in.KeyDown(action)
		} else {
			in.KeyUp(action)
		}
	}

	in.SetRotate(keys && rl.IsMouseButtonDown(rl.MouseButtonLeft))
	d := rl.GetMouseDelta()
	in.MouseMove(d.X, d.Y, now)
}

// Pausable is the part of the frame loop focus changes drive.
type Pausable interface {
	Pause()
	Resume()
	Paused() bool
}

// FocusWatcher pauses the simulation when the window loses focus and resumes it when focus
// returns. A pause set by someone else (the console) is left alone.
type FocusWatcher struct {
	focused bool
	ours    bool
}

// NewFocusWatcher starts out assuming the window has focus.
func NewFocusWatcher() *FocusWatcher {
	return &FocusWatcher{focused: true}
}

// Update checks window focus once per frame.
func (f *FocusWatcher) Update(p Pausable) {
	f.Apply(rl.IsWindowFocused(), p)
}

// Apply feeds one focus sample.
func (f *FocusWatcher) Apply(focused bool, p Pausable) {
	if focused == f.focused {
		return
	}
	f.focused = focused
	if !focused {
		if !p.Paused() {
			p.Pause()
			f.ours = true
		}
		return
	}
	if f.ours && p.Paused() {
		p.Resume()
	}
	f.ours = false
}
