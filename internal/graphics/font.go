package graphics

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// fontBaseSize is the glyph atlas size; text is drawn at 20px so this keeps it sharp.
const fontBaseSize = 40

// LoadFont loads a TTF/OTF font for the console and overlay. Call after the window exists.
func LoadFont(path string) (rl.Font, error) {
	f := rl.LoadFontEx(path, fontBaseSize, nil)
	if f.Texture.ID == 0 {
		return f, fmt.Errorf("graphics: load font %s failed", path)
	}
	rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	return f, nil
}

// UnloadFont releases a font loaded with LoadFont. A zero font is ignored.
func UnloadFont(f rl.Font) {
	if f.Texture.ID != 0 {
		rl.UnloadFont(f)
	}
}

// DrawText draws with font, or with raylib's default font when font is not loaded.
func DrawText(font rl.Font, text string, x, y, size int32, color rl.Color) {
	if font.Texture.ID != 0 {
		rl.DrawTextEx(font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
		return
	}
	rl.DrawText(text, x, y, size, color)
}

// MeasureText is the width of text as DrawText would draw it.
func MeasureText(font rl.Font, text string, size int32) int32 {
	if font.Texture.ID != 0 {
		return int32(rl.MeasureTextEx(font, text, float32(size), 1).X)
	}
	return rl.MeasureText(text, size)
}
