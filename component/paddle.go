package component

import (
	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/parameter"
)

// Side selects which edge of the arena a paddle guards
type Side uint8

const (
	SidePlayer Side = iota // Bottom edge, human controlled
	SideAI                 // Top edge, predictor controlled
)

// String returns the side name used in logs
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideAI:
		return "ai"
	default:
		return "unknown"
	}
}

// Paddle is a horizontally moving rectangle on a fixed row
type Paddle struct {
	Side          Side
	X, Y          int // Top-left corner
	Width, Height int
}

// NewPaddle builds the paddle for a side at its starting position
func NewPaddle(cfg parameter.Config, side Side) Paddle {
	p := Paddle{
		Side:   side,
		Width:  cfg.PaddleWidth,
		Height: cfg.PaddleHeight,
	}

	switch side {
	case SidePlayer:
		p.Y = cfg.ArenaHeight - cfg.PlayerInset
		p.X = cfg.ArenaWidth - cfg.ArenaWidth/2 - p.Width/2
	case SideAI:
		p.X = cfg.AIPaddleX
		p.Y = cfg.AIPaddleY
	}
	return p
}

// NewPlayerPaddle builds the bottom paddle, horizontally centered
func NewPlayerPaddle(cfg parameter.Config) Paddle {
	return NewPaddle(cfg, SidePlayer)
}

// NewAIPaddle builds the top paddle
func NewAIPaddle(cfg parameter.Config) Paddle {
	return NewPaddle(cfg, SideAI)
}

// Area returns the paddle rectangle
func (p *Paddle) Area() core.Area {
	return core.Area{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// CenterX returns the horizontal center used for steering and spin
func (p *Paddle) CenterX() int {
	return p.X + p.Width/2
}
