package vmath

import "github.com/lixenwraith/pong/core"

// Overlaps reports whether two rectangles given as top-left + size intersect with non-zero area
func Overlaps(ax, ay, aw, ah, bx, by, bw, bh int) bool {
	return ax < bx+bw &&
		ax+aw > bx &&
		ay < by+bh &&
		ay+ah > by
}

// AreasOverlap is Overlaps over two Area values
func AreasOverlap(a, b core.Area) bool {
	return Overlaps(a.X, a.Y, a.Width, a.Height, b.X, b.Y, b.Width, b.Height)
}

// AreaCenterX returns the horizontal center of the area, truncated toward zero
func AreaCenterX(a core.Area) int {
	return a.X + a.Width/2
}

// AreaClip intersects a with the bounds rectangle [0,w)x[0,h)
// Returns false if nothing of a remains inside
func AreaClip(a core.Area, w, h int) (core.Area, bool) {
	x0, y0 := max(a.X, 0), max(a.Y, 0)
	x1, y1 := min(a.X+a.Width, w), min(a.Y+a.Height, h)
	if x0 >= x1 || y0 >= y1 {
		return core.Area{}, false
	}
	return core.Area{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, true
}
