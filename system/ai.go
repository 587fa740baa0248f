package system

import (
	"github.com/lixenwraith/pong/component"
	"github.com/lixenwraith/pong/parameter"
	"github.com/lixenwraith/pong/vmath"
)

// PredictArrivalX estimates where the ball reaches the top edge
// Returns ok=false while the ball is not heading up
//
// Time of flight is measured to y=0, not to the paddle row, and truncated to whole ticks
// The straight-line projection is folded back into [0, ArenaWidth] to account for wall bounces
func PredictArrivalX(b *component.Ball, cfg parameter.Config) (x int, ok bool) {
	if b.VY >= 0 {
		return 0, false
	}

	timeToArrival := b.Y / -b.VY
	predicted := b.X + b.VX*timeToArrival - b.Width/2

	return vmath.Unfold(predicted, cfg.ArenaWidth), true
}

// MoveAIPaddle steps the AI paddle center toward the predicted arrival by AISpeed
// Constant step regardless of remaining distance; idle while the ball moves away
func MoveAIPaddle(ai *component.Paddle, b *component.Ball, cfg parameter.Config) {
	target, ok := PredictArrivalX(b, cfg)
	if !ok {
		return
	}

	center := ai.CenterX()
	switch {
	case center < target:
		ai.X += cfg.AISpeed
	case center > target:
		ai.X -= cfg.AISpeed
	}
}
