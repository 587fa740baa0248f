package physics

import (
	"github.com/lixenwraith/pong/component"
	"github.com/lixenwraith/pong/parameter"
)

// ReflectWalls inverts each velocity axis whose arena edges the ball touches or has crossed
// Horizontal and vertical tests are independent, a corner hit flips both
func ReflectWalls(b *component.Ball, cfg parameter.Config) {
	if b.X <= 0 || b.X+b.Width >= cfg.ArenaWidth {
		b.VX = -b.VX
	}
	if b.Y <= 0 || b.Y+b.Height >= cfg.ArenaHeight {
		b.VY = -b.VY
	}
}

// MoveBall reflects off walls, then advances position by velocity
// A ball already past an edge may stay outside for one tick, no clamping
func MoveBall(b *component.Ball, cfg parameter.Config) {
	ReflectWalls(b, cfg)
	b.X += b.VX
	b.Y += b.VY
}

// StepPlayerPaddle applies one tick of held-key input to a paddle
// Each direction only moves while the paddle has room on that side
func StepPlayerPaddle(p *component.Paddle, left, right bool, cfg parameter.Config) {
	maxX := cfg.ArenaWidth - p.Width

	if left && p.X > 0 {
		p.X -= cfg.PlayerSpeed
	}
	if right && p.X < maxX {
		p.X += cfg.PlayerSpeed
	}

	// Speeds that do not divide the travel distance would overshoot
	p.X = max(0, min(p.X, maxX))
}
