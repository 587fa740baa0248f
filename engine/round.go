package engine

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/pong/component"
	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/parameter"
	"github.com/lixenwraith/pong/physics"
	"github.com/lixenwraith/pong/status"
	"github.com/lixenwraith/pong/system"
)

// Frame is the per-tick output handed to the renderer
type Frame struct {
	Player core.Area
	AI     core.Area
	Ball   core.Area
}

// Areas returns the frame rectangles in draw order
func (f Frame) Areas() []core.Area {
	return []core.Area{f.Player, f.AI, f.Ball}
}

// Round owns the live paddles and ball and advances them one tick at a time
// Not safe for concurrent use; the game loop is the single owner
type Round struct {
	cfg parameter.Config

	player component.Paddle
	ai     component.Paddle
	ball   component.Ball

	// Metrics
	statTicks      *atomic.Int64
	statResets     *atomic.Int64
	statPlayerHits *atomic.Int64
	statAIHits     *atomic.Int64
}

// NewRound creates a round with both paddles and a fresh ball
// cfg must already be validated
func NewRound(cfg parameter.Config, reg *status.Registry) *Round {
	r := &Round{cfg: cfg}

	r.statTicks = reg.Ints.Get(status.KeyTicks)
	r.statResets = reg.Ints.Get(status.KeyResets)
	r.statPlayerHits = reg.Ints.Get(status.KeyPlayerHits)
	r.statAIHits = reg.Ints.Get(status.KeyAIHits)

	r.Reset()
	return r
}

// Reset places both paddles and the ball at their starting positions
func (r *Round) Reset() {
	r.player = component.NewPlayerPaddle(r.cfg)
	r.ai = component.NewAIPaddle(r.cfg)
	r.ball = component.NewBall(r.cfg)
}

// Tick runs one simulation step for the given held-key state
//
// Order matters: input, AI steering, player hit, AI hit, edge reset, integration
// The reset check sees the position from the previous tick, before integration
func (r *Round) Tick(in core.Intent) Frame {
	r.statTicks.Add(1)

	physics.StepPlayerPaddle(&r.player, in.Left, in.Right, r.cfg)

	system.MoveAIPaddle(&r.ai, &r.ball, r.cfg)

	if physics.BouncePlayerPaddle(&r.ball, &r.player, r.cfg.SpinDivisor) {
		r.statPlayerHits.Add(1)
		log.Printf("player hit at x=%d, spin vx=%d", r.ball.X, r.ball.VX)
	}

	if physics.BounceAIPaddle(&r.ball, &r.ai) {
		r.statAIHits.Add(1)
		log.Printf("ai hit at x=%d", r.ball.X)
	}

	if r.ball.Y <= 0 || r.ball.Y+r.ball.Height >= r.cfg.ArenaHeight {
		r.statResets.Add(1)
		log.Printf("ball reset from (%d,%d) velocity (%d,%d)", r.ball.X, r.ball.Y, r.ball.VX, r.ball.VY)
		r.ball = component.NewBall(r.cfg)
	}

	physics.MoveBall(&r.ball, r.cfg)

	return r.Frame()
}

// Frame returns the current rectangles without advancing the simulation
func (r *Round) Frame() Frame {
	return Frame{
		Player: r.player.Area(),
		AI:     r.ai.Area(),
		Ball:   r.ball.Area(),
	}
}

// Player returns a copy of the player paddle
func (r *Round) Player() component.Paddle { return r.player }

// AI returns a copy of the AI paddle
func (r *Round) AI() component.Paddle { return r.ai }

// Ball returns a copy of the ball
func (r *Round) Ball() component.Ball { return r.ball }
