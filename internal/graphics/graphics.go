package graphics

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window describes the host window. Fullscreen uses the monitor size and ignores Width/Height.
type Window struct {
	Width      int32
	Height     int32
	Fullscreen bool
	Title      string
	TargetFPS  int32
}

// Run opens the window, calls setup once (shader loading needs a live GL context), then
// runs the main loop until the window is closed. Each frame it calls update (input, console),
// then clears the screen and calls draw. The cleanup returned by setup runs before the window
// closes. A setup error closes the window and is returned.
// ESC belongs to the console; close via the window button.
func Run(win Window, setup func() (cleanup func(), err error), update, draw func()) error {
	width, height := win.Width, win.Height
	if win.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode)
		width, height = int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0))
	} else {
		rl.SetConfigFlags(rl.FlagWindowResizable)
	}
	rl.InitWindow(width, height, win.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(win.TargetFPS)

	if setup != nil {
		cleanup, err := setup()
		if cleanup != nil {
			defer cleanup()
		}
		if err != nil {
			return err
		}
	}

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
	return nil
}

// Now is the host's monotonic clock: time since the window was initialised.
func Now() time.Duration {
	return time.Duration(rl.GetTime() * float64(time.Second))
}
