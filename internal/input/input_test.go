package input

import (
	"sync"
	"testing"
	"time"
)

func TestKeyDownUp(t *testing.T) {
	s := New(0)
	s.KeyDown(Forward)
	s.KeyDown(Fast)
	if !s.Pressed(Forward) || !s.Pressed(Fast) {
		t.Fatalf("expected forward and fast to be pressed")
	}
	if s.Pressed(Backward) {
		t.Errorf("backward should not be pressed")
	}
	s.KeyUp(Forward)
	if s.Pressed(Forward) {
		t.Errorf("forward should be released")
	}
	s.KeyDown(Action(99))
	if s.Pressed(Action(99)) {
		t.Errorf("unknown action should never report pressed")
	}
}

func TestMouseMoveReplacesDelta(t *testing.T) {
	s := New(0)
	s.MouseMove(3, 4, 0)
	s.MouseMove(-1, 2, time.Millisecond)
	dx, dy := s.MouseDelta()
	if dx != -1 || dy != 2 {
		t.Errorf("expected (-1, 2), got (%v, %v)", dx, dy)
	}
}

func TestExpireResetsStaleDelta(t *testing.T) {
	s := New(10 * time.Millisecond)
	s.MouseMove(5, 5, 100*time.Millisecond)

	s.Expire(105 * time.Millisecond)
	if dx, dy := s.MouseDelta(); dx != 5 || dy != 5 {
		t.Fatalf("fresh delta should survive, got (%v, %v)", dx, dy)
	}

	s.Expire(111 * time.Millisecond)
	if dx, dy := s.MouseDelta(); dx != 0 || dy != 0 {
		t.Errorf("stale delta should reset, got (%v, %v)", dx, dy)
	}
}

func TestFreshMoveRearmsStaleness(t *testing.T) {
	s := New(10 * time.Millisecond)
	s.MouseMove(1, 0, 0)
	s.MouseMove(2, 0, 8*time.Millisecond)
	s.Expire(15 * time.Millisecond)
	if dx, _ := s.MouseDelta(); dx != 2 {
		t.Errorf("expected delta kept after re-arm, got %v", dx)
	}
}

func TestConsumeAndReset(t *testing.T) {
	s := New(0)
	s.MouseMove(7, 8, 0)
	s.SetRotate(true)
	s.ConsumeMouse()
	if dx, dy := s.MouseDelta(); dx != 0 || dy != 0 {
		t.Errorf("expected consumed delta, got (%v, %v)", dx, dy)
	}
	if !s.RotateEnabled() {
		t.Errorf("ConsumeMouse must not touch the rotate flag")
	}

	s.KeyDown(Up)
	s.Reset()
	if s.Pressed(Up) || s.RotateEnabled() {
		t.Errorf("Reset should release keys and rotation")
	}
}

func TestConcurrentProducers(t *testing.T) {
	s := New(0)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				s.KeyDown(Action(i % int(actionCount)))
				s.MouseMove(float32(j), float32(i), time.Duration(j))
				s.KeyUp(Action(i % int(actionCount)))
			}
		}(i)
	}
	for j := 0; j < 200; j++ {
		s.Expire(time.Duration(j) * time.Second)
		s.MouseDelta()
	}
	wg.Wait()
}

func TestActionString(t *testing.T) {
	if Forward.String() != "forward" {
		t.Errorf("expected forward, got %q", Forward.String())
	}
	if Action(-1).String() != "unknown" {
		t.Errorf("expected unknown for invalid action")
	}
}
