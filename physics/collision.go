package physics

import (
	"github.com/lixenwraith/pong/component"
	"github.com/lixenwraith/pong/vmath"
)

// BouncePlayerPaddle reflects the ball off the player paddle with spin
// Horizontal speed becomes the hit offset from paddle center divided by spinDivisor
// Returns true on contact
func BouncePlayerPaddle(b *component.Ball, p *component.Paddle, spinDivisor int) bool {
	if !vmath.AreasOverlap(b.Area(), p.Area()) {
		return false
	}

	offset := b.CenterX() - p.CenterX()
	b.VX = offset / spinDivisor
	b.VY = -b.VY
	return true
}

// BounceAIPaddle reflects the ball off the AI paddle, horizontal speed untouched
// Returns true on contact
func BounceAIPaddle(b *component.Ball, p *component.Paddle) bool {
	if !vmath.AreasOverlap(b.Area(), p.Area()) {
		return false
	}

	b.VY = -b.VY
	return true
}
