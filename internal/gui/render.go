package gui

import (
	"fmt"
	"image/color"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/orrery/internal/solar"
	"github.com/san-kum/orrery/internal/view"
)

const fontPath = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"

var (
	ColBg      = rl.NewColor(0, 0, 0, 255)
	ColLabel   = rl.NewColor(255, 255, 255, 255)
	ColTextDim = rl.NewColor(120, 120, 120, 255)
)

// RenderContext owns the window and the font. Create it once at program
// start and Close it on exit.
type RenderContext struct {
	Width, Height int32
	Font          rl.Font
	FontSize      float32

	ownFont bool
}

// NewRenderContext opens a width×height window targeting fps frames per
// second.
func NewRenderContext(width, height, fps int, title string) *RenderContext {
	rl.InitWindow(int32(width), int32(height), title)
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)

	rc := &RenderContext{
		Width:    int32(width),
		Height:   int32(height),
		FontSize: 16,
	}
	if _, err := os.Stat(fontPath); err == nil {
		rc.Font = rl.LoadFontEx(fontPath, 32, nil, 0)
		rl.SetTextureFilter(rc.Font.Texture, rl.FilterBilinear)
		rc.ownFont = true
	} else {
		rc.Font = rl.GetFontDefault()
	}
	return rc
}

func (rc *RenderContext) Close() {
	if rc.ownFont {
		rl.UnloadFont(rc.Font)
	}
	rl.CloseWindow()
}

func (rc *RenderContext) text(s string, x, y float32, col rl.Color) {
	rl.DrawTextEx(rc.Font, s, rl.NewVector2(x, y), rc.FontSize, 1, col)
}

// centered draws s horizontally centered on x.
func (rc *RenderContext) centered(s string, x, y float32, col rl.Color) {
	size := rl.MeasureTextEx(rc.Font, s, rc.FontSize, 1)
	rc.text(s, x-size.X/2, y, col)
}

// Draw renders one frame of the snapshot as seen through cam. It must be
// called between rl.BeginDrawing and rl.EndDrawing.
func Draw(rc *RenderContext, snap solar.Snapshot, cam *view.Camera) {
	for _, b := range snap.Bodies {
		if len(b.Trail) < 3 {
			continue
		}
		points := make([]rl.Vector2, len(b.Trail))
		for i, p := range b.Trail {
			x, y := cam.Project(p)
			points[i] = rl.NewVector2(float32(x), float32(y))
		}
		rl.DrawLineStrip(points, rlColor(b.Color))
	}

	for _, b := range snap.Bodies {
		x, y := cam.Project(b.Pos)
		rl.DrawCircle(int32(x), int32(y), float32(cam.ProjectRadius(b.Radius)), rlColor(b.Color))
	}

	for _, b := range snap.Bodies {
		if b.Star {
			continue
		}
		x, y := cam.Project(b.Pos)
		half := rc.FontSize / 2
		rc.centered(b.Name, float32(x), float32(y)-half-20, ColLabel)
		rc.centered(fmt.Sprintf("%.1f km", b.DistanceToStar/1000), float32(x), float32(y)+half, ColLabel)
	}
}

func rlColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
