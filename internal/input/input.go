package input

import (
	"sync"
	"time"
)

// Action is a logical key binding. The host maps its physical keys onto these.
type Action int

const (
	StrafeLeft Action = iota
	StrafeRight
	Backward
	Forward
	Down
	Up
	Fast
	actionCount
)

var actionNames = [actionCount]string{"strafe-left", "strafe-right", "backward", "forward", "down", "up", "fast"}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// DefaultStaleAfter is how long a pointer delta stays valid without a fresh move event.
const DefaultStaleAfter = 20 * time.Millisecond

// State is the current input snapshot: pressed actions, the latest pointer delta and the
// rotate-enabled flag (mouse button held).
//
// Event callbacks (KeyDown, MouseMove, ...) are the only producers and the frame loop is the
// only consumer. Producers may run on another goroutine.
type State struct {
	mu         sync.Mutex
	keys       [actionCount]bool
	deltaX     float32
	deltaY     float32
	rotate     bool
	lastMove   time.Duration
	moved      bool
	staleAfter time.Duration
}

// New returns an empty input state. staleAfter <= 0 uses DefaultStaleAfter.
func New(staleAfter time.Duration) *State {
	if staleAfter <= 0 {
		staleAfter = DefaultStaleAfter
	}
	return &State{staleAfter: staleAfter}
}

// KeyDown marks a as held. Unknown actions are ignored.
func (s *State) KeyDown(a Action) {
	s.setKey(a, true)
}

// KeyUp marks a as released.
func (s *State) KeyUp(a Action) {
	s.setKey(a, false)
}

func (s *State) setKey(a Action, down bool) {
	if a < 0 || a >= actionCount {
		return
	}
	s.mu.Lock()
	s.keys[a] = down
	s.mu.Unlock()
}

// Pressed reports whether a is currently held.
func (s *State) Pressed(a Action) bool {
	if a < 0 || a >= actionCount {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keys[a]
}

// MouseMove records a pointer move event. dx/dy replace (not add to) the stored delta;
// at is a monotonic timestamp on the same clock the frame loop passes to Expire.
func (s *State) MouseMove(dx, dy float32, at time.Duration) {
	s.mu.Lock()
	s.deltaX, s.deltaY = dx, dy
	s.lastMove = at
	s.moved = true
	s.mu.Unlock()
}

// SetRotate sets the rotate-enabled flag (mouse button down/up).
func (s *State) SetRotate(enabled bool) {
	s.mu.Lock()
	s.rotate = enabled
	s.mu.Unlock()
}

// RotateEnabled reports whether the rotate button is held.
func (s *State) RotateEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rotate
}

// MouseDelta returns the stored pointer delta.
func (s *State) MouseDelta() (dx, dy float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deltaX, s.deltaY
}

// ConsumeMouse zeroes the stored pointer delta.
func (s *State) ConsumeMouse() {
	s.mu.Lock()
	s.deltaX, s.deltaY = 0, 0
	s.mu.Unlock()
}

// Expire is called once at frame start. If no move event arrived within staleAfter of now,
// the pointer is treated as stopped and the delta resets to zero.
func (s *State) Expire(now time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.moved {
		return
	}
	if now-s.lastMove > s.staleAfter {
		s.deltaX, s.deltaY = 0, 0
		s.moved = false
	}
}

// Reset releases every key, clears the pointer delta and disables rotation.
// The host calls it when it stops delivering events (e.g. the console takes the keyboard).
func (s *State) Reset() {
	s.mu.Lock()
	s.keys = [actionCount]bool{}
	s.deltaX, s.deltaY = 0, 0
	s.rotate = false
	s.moved = false
	s.mu.Unlock()
}
