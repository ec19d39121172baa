package debug

import (
	"fmt"
	"runtime"

	"metaballs/internal/graphics"
	"metaballs/internal/scene"
	"metaballs/internal/sim"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// Text is rebuilt every updateInterval frames to limit allocations.
	updateInterval = 30
)

// Source is what the overlay reports on. *sim.Loop satisfies it.
type Source interface {
	FPS() int
	Blobs() int
	Paused() bool
	Stats() *sim.FrameStats
}

// Debug draws runtime overlays in the top-right corner. All overlays are off by default.
type Debug struct {
	ShowFPS        bool
	ShowFrameStats bool
	ShowMemAlloc   bool

	font         rl.Font
	frameCount   uint32
	lines        []string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetFont sets the overlay font. A zero texture ID means raylib's default font.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// Lines builds the overlay text for src: FPS and blob count, frame-time mean and standard
// deviation, heap allocation.
func (d *Debug) Lines(src Source) []string {
	var out []string
	if d.ShowFPS {
		line := fmt.Sprintf("FPS: %d  blobs: %d/%d", src.FPS(), src.Blobs(), scene.HardLimit)
		if src.Paused() {
			line += "  (paused)"
		}
		out = append(out, line)
	}
	if d.ShowFrameStats {
		if stats := src.Stats(); stats != nil && stats.Len() > 0 {
			mean, std := stats.MeanStdDev()
			out = append(out, fmt.Sprintf("frame: %.2f ms (sd %.2f)", mean, std))
		}
	}
	if d.ShowMemAlloc {
		runtime.ReadMemStats(&d.lastMemStats)
		out = append(out, fmt.Sprintf("Mem: %.2f MiB", float64(d.lastMemStats.Alloc)/(1024*1024)))
	}
	return out
}

// Draw renders the enabled overlays. Call after the scene and the console.
func (d *Debug) Draw(src Source) {
	if d.frameCount%updateInterval == 0 || d.lines == nil {
		d.lines = d.Lines(src)
	}
	d.frameCount++

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range d.lines {
		w := graphics.MeasureText(d.font, text, fontSize)
		graphics.DrawText(d.font, text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}
