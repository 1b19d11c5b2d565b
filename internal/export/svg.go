// Package export writes still pictures of a simulation snapshot.
package export

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/san-kum/orrery/internal/solar"
	"github.com/san-kum/orrery/internal/view"
)

const (
	background = "#000000"
	labelColor = "#ffffff"
	fontSize   = 12
)

// TrailsToSVG draws the snapshot as the camera sees it, fitted into a
// width×height picture: trails of three or more points as polylines,
// bodies as filled circles, and planets labelled with their distance to
// the star.
func TrailsToSVG(snap solar.Snapshot, cam *view.Camera, width, height int) string {
	scale := math.Min(float64(width)/cam.Width, float64(height)/cam.Height)
	ox := (float64(width) - cam.Width*scale) / 2
	oy := (float64(height) - cam.Height*scale) / 2
	project := func(x, y float64) (float64, float64) {
		return ox + x*scale, oy + y*scale
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))

	sb.WriteString("<g fill=\"none\" stroke-width=\"1\">\n")
	for _, b := range snap.Bodies {
		if len(b.Trail) < 3 {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<polyline stroke="%s" points="`, hex(b.Color)))
		for i, p := range b.Trail {
			x, y := project(cam.Project(p))
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		}
		sb.WriteString("\"/>\n")
	}
	sb.WriteString("</g>\n")

	sb.WriteString("<g>\n")
	for _, b := range snap.Bodies {
		x, y := project(cam.Project(b.Pos))
		r := cam.ProjectRadius(b.Radius) * scale
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.2f" fill="%s"/>
`, x, y, r, hex(b.Color)))
	}
	sb.WriteString("</g>\n")

	sb.WriteString(fmt.Sprintf(`<g fill="%s" font-family="monospace" font-size="%d" text-anchor="middle">
`, labelColor, fontSize))
	for _, b := range snap.Bodies {
		if b.Star {
			continue
		}
		x, y := project(cam.Project(b.Pos))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f">%s</text>
`, x, y-20, escape(b.Name)))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f">%.1f km</text>
`, x, y+fontSize+4, b.DistanceToStar/1000))
	}
	sb.WriteString("</g>\n</svg>\n")

	return sb.String()
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string {
	return escaper.Replace(s)
}
