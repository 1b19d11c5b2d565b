// Package view maps simulation meters onto a virtual screen.
//
// A [Camera] holds the pan offset and zoom factor of a viewport. It never
// reads or writes simulation state; renderers feed it positions and draw
// what it returns.
package view

import (
	"github.com/charmbracelet/harmonica"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/solar"
	"gonum.org/v1/gonum/spatial/r2"
)

// Action is a camera command, independent of any input device.
type Action int

const (
	None Action = iota
	PanUp
	PanDown
	PanLeft
	PanRight
	ZoomIn
	ZoomOut
	Recenter
)

// ActionForKey maps a Bubble Tea key string to a camera action.
func ActionForKey(key string) Action {
	switch key {
	case "up":
		return PanUp
	case "down":
		return PanDown
	case "left":
		return PanLeft
	case "right":
		return PanRight
	case "+", "=":
		return ZoomIn
	case "-", "_":
		return ZoomOut
	case "c":
		return Recenter
	default:
		return None
	}
}

const (
	springFrequency = 6.0
	springDamping   = 1.0
)

// Camera projects meters to screen units of a Width×Height viewport.
//
// Pan and zoom set targets. With smoothing on, the shown values follow
// the targets through a critically damped spring, one Animate call per
// frame; otherwise they jump immediately.
type Camera struct {
	Width, Height float64
	PanStep       float64
	ZoomRatio     float64

	zoom, homeZoom float64
	offset         r2.Vec

	smooth    bool
	spring    harmonica.Spring
	shownZoom float64
	zoomVel   float64
	shown     r2.Vec
	shownVelX float64
	shownVelY float64
}

func NewCamera(cfg config.ViewConfig, fps int) *Camera {
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	return &Camera{
		Width:     float64(cfg.Width),
		Height:    float64(cfg.Height),
		PanStep:   cfg.PanStep,
		ZoomRatio: cfg.ZoomRatio,
		zoom:      cfg.Zoom,
		homeZoom:  cfg.Zoom,
		shownZoom: cfg.Zoom,
		smooth:    cfg.Smooth,
		spring:    harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping),
	}
}

// Apply executes a camera action and reports whether it was recognized.
func (c *Camera) Apply(a Action) bool {
	switch a {
	case PanUp:
		c.offset.Y += c.PanStep
	case PanDown:
		c.offset.Y -= c.PanStep
	case PanLeft:
		c.offset.X += c.PanStep
	case PanRight:
		c.offset.X -= c.PanStep
	case ZoomIn:
		c.zoom *= c.ZoomRatio
	case ZoomOut:
		c.zoom /= c.ZoomRatio
	case Recenter:
		c.offset = r2.Vec{}
		c.zoom = c.homeZoom
	default:
		return false
	}
	if !c.smooth {
		c.Settle()
	}
	return true
}

// Animate moves the shown zoom and offset one frame toward their targets.
func (c *Camera) Animate() {
	if !c.smooth {
		return
	}
	c.shownZoom, c.zoomVel = c.spring.Update(c.shownZoom, c.zoomVel, c.zoom)
	c.shown.X, c.shownVelX = c.spring.Update(c.shown.X, c.shownVelX, c.offset.X)
	c.shown.Y, c.shownVelY = c.spring.Update(c.shown.Y, c.shownVelY, c.offset.Y)
}

// Settle snaps the shown values onto the targets.
func (c *Camera) Settle() {
	c.shownZoom, c.zoomVel = c.zoom, 0
	c.shown, c.shownVelX, c.shownVelY = c.offset, 0, 0
}

// Zoom returns the zoom factor currently shown.
func (c *Camera) Zoom() float64 { return c.shownZoom }

// TargetZoom returns the zoom factor the camera is heading to.
func (c *Camera) TargetZoom() float64 { return c.zoom }

// Offset returns the pan offset currently shown.
func (c *Camera) Offset() r2.Vec { return c.shown }

// TargetOffset returns the pan offset the camera is heading to.
func (c *Camera) TargetOffset() r2.Vec { return c.offset }

// Project maps a position in meters to screen units.
func (c *Camera) Project(p r2.Vec) (float64, float64) {
	z := c.shownZoom * solar.Scale
	return c.Width/2 + c.shown.X + p.X*z, c.Height/2 + c.shown.Y + p.Y*z
}

// ProjectRadius scales a display radius by the shown zoom.
func (c *Camera) ProjectRadius(r float64) float64 {
	return r * c.shownZoom
}

// Visible reports whether a screen point lies inside the viewport.
func (c *Camera) Visible(x, y float64) bool {
	return x >= 0 && y >= 0 && x < c.Width && y < c.Height
}
