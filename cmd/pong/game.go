package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/parameter"
	"github.com/lixenwraith/pong/render"
	"github.com/lixenwraith/pong/status"
)

// game wires the round controller to terminal input and output
type game struct {
	screen    tcell.Screen
	round     *engine.Round
	tracker   *input.Tracker
	fb        *render.Framebuffer
	presenter *render.Presenter
	color     uint32
}

func newGame(screen tcell.Screen, cfg parameter.Config, reg *status.Registry) (*game, error) {
	color, err := render.ParseColor(cfg.Color)
	if err != nil {
		return nil, err
	}

	fb, err := render.NewFramebuffer(cfg.ArenaWidth, cfg.ArenaHeight)
	if err != nil {
		return nil, err
	}

	return &game{
		screen:    screen,
		round:     engine.NewRound(cfg, reg),
		tracker:   input.NewTracker(parameter.KeyHoldInitial, parameter.KeyHoldRepeat),
		fb:        fb,
		presenter: render.NewPresenter(screen),
		color:     color,
	}, nil
}

// handleEvent feeds one terminal event into the key tracker
func (g *game) handleEvent(ev tcell.Event, now time.Time) {
	if g.tracker.HandleEvent(ev, now) == input.IntentResize {
		g.screen.Sync()
	}
}

// step runs one tick and presents it; returns false once quit was requested
func (g *game) step(now time.Time) bool {
	intent := g.tracker.Intent(now)
	if intent.Quit {
		return false
	}

	frame := g.round.Tick(intent)
	g.fb.Draw(frame.Areas(), g.color)
	g.presenter.Present(g.fb)
	return true
}

// run drives the fixed-rate loop until quit or until the event source closes
func (g *game) run(events <-chan tcell.Event) {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				// Screen finalized underneath us, quit on the next tick
				g.tracker.Close()
				events = nil
				continue
			}
			g.handleEvent(ev, time.Now())

		case now := <-ticker.C:
			if !g.step(now) {
				return
			}
		}
	}
}
