package component

import (
	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/parameter"
)

// Ball is the moving square, velocity in arena units per tick
type Ball struct {
	X, Y          int // Top-left corner
	VX, VY        int
	Width, Height int
}

// NewBall builds a ball at the arena center with the initial serve velocity
// The horizontal spawn is offset by +Width/2, half a ball right of true center
func NewBall(cfg parameter.Config) Ball {
	b := Ball{
		Width:  cfg.BallSize,
		Height: cfg.BallSize,
		VX:     cfg.BallSpeedX,
		VY:     cfg.BallSpeedY,
	}
	b.X = cfg.ArenaWidth/2 + b.Width/2
	b.Y = cfg.ArenaHeight/2 - b.Height/2
	return b
}

// Area returns the ball rectangle
func (b *Ball) Area() core.Area {
	return core.Area{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// CenterX returns the horizontal center
func (b *Ball) CenterX() int {
	return b.X + b.Width/2
}
