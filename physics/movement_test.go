package physics

import (
	"testing"

	"github.com/lixenwraith/pong/component"
	"github.com/lixenwraith/pong/parameter"
)

func TestMoveBall_FreeFlight(t *testing.T) {
	cfg := parameter.Default()
	b := component.Ball{X: 400, Y: 300, VX: 0, VY: 5, Width: 20, Height: 20}

	MoveBall(&b, cfg)

	if b.X != 400 || b.Y != 305 {
		t.Errorf("Expected (400,305), got (%d,%d)", b.X, b.Y)
	}
	if b.VX != 0 || b.VY != 5 {
		t.Errorf("Expected velocity unchanged, got (%d,%d)", b.VX, b.VY)
	}
}

func TestMoveBall_WallReflection(t *testing.T) {
	cfg := parameter.Default()

	tests := []struct {
		name           string
		ball           component.Ball
		wantVX, wantVY int
	}{
		{"left edge touch", component.Ball{X: 0, Y: 300, VX: -3, VY: 5}, 3, 5},
		{"left edge crossed", component.Ball{X: -2, Y: 300, VX: -3, VY: -5}, 3, -5},
		{"right edge touch", component.Ball{X: 780, Y: 300, VX: 4, VY: 5}, -4, 5},
		{"right edge crossed", component.Ball{X: 790, Y: 300, VX: 4, VY: 5}, -4, 5},
		{"top edge", component.Ball{X: 100, Y: 0, VX: 2, VY: -5}, 2, 5},
		{"bottom edge", component.Ball{X: 100, Y: 580, VX: 2, VY: 5}, 2, -5},
		{"corner", component.Ball{X: 0, Y: 0, VX: -1, VY: -5}, 1, 5},
		{"interior", component.Ball{X: 100, Y: 100, VX: -1, VY: -5}, -1, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.ball
			b.Width, b.Height = 20, 20
			startX, startY := b.X, b.Y

			MoveBall(&b, cfg)

			if b.VX != tt.wantVX || b.VY != tt.wantVY {
				t.Errorf("Expected velocity (%d,%d), got (%d,%d)", tt.wantVX, tt.wantVY, b.VX, b.VY)
			}
			// Position advances by the post-reflection velocity
			if b.X != startX+tt.wantVX || b.Y != startY+tt.wantVY {
				t.Errorf("Expected position (%d,%d), got (%d,%d)", startX+tt.wantVX, startY+tt.wantVY, b.X, b.Y)
			}
		})
	}
}

func TestMoveBall_TopBreachScenario(t *testing.T) {
	cfg := parameter.Default()
	b := component.Ball{X: 100, Y: -1, VX: 3, VY: -5, Width: 20, Height: 20}

	MoveBall(&b, cfg)

	if b.VY != 5 {
		t.Errorf("Expected VY=5, got %d", b.VY)
	}
	if b.Y != 4 {
		t.Errorf("Expected Y=4, got %d", b.Y)
	}
	if b.X != 103 || b.VX != 3 {
		t.Errorf("Expected X=103 with VX=3, got X=%d VX=%d", b.X, b.VX)
	}
}

func TestReflectWalls_ZeroHorizontalSpeed(t *testing.T) {
	cfg := parameter.Default()
	b := component.Ball{X: 0, Y: 200, VX: 0, VY: 5, Width: 20, Height: 20}

	ReflectWalls(&b, cfg)

	if b.VX != 0 || b.VY != 5 {
		t.Errorf("Expected (0,5), got (%d,%d)", b.VX, b.VY)
	}
}

func TestStepPlayerPaddle(t *testing.T) {
	cfg := parameter.Default()

	tests := []struct {
		name        string
		startX      int
		left, right bool
		wantX       int
	}{
		{"idle", 360, false, false, 360},
		{"left", 360, true, false, 350},
		{"right", 360, false, true, 370},
		{"both cancel", 360, true, true, 360},
		{"left at wall", 0, true, false, 0},
		{"right at wall", 720, false, true, 720},
		{"left near wall clamps", 4, true, false, 0},
		{"right near wall clamps", 715, false, true, 720},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := component.NewPlayerPaddle(cfg)
			p.X = tt.startX

			StepPlayerPaddle(&p, tt.left, tt.right, cfg)

			if p.X != tt.wantX {
				t.Errorf("Expected X=%d, got %d", tt.wantX, p.X)
			}
		})
	}
}

func TestStepPlayerPaddle_ClampUnderArbitraryInput(t *testing.T) {
	cfg := parameter.Default()
	cfg.PlayerSpeed = 7 // does not divide the travel distance
	p := component.NewPlayerPaddle(cfg)

	// Deterministic pseudo-random input sequence
	seed := uint32(12345)
	for i := 0; i < 5000; i++ {
		seed = seed*1103515245 + 12345
		left := seed&0x10000 != 0
		right := seed&0x20000 != 0

		StepPlayerPaddle(&p, left, right, cfg)

		if p.X < 0 || p.X > cfg.ArenaWidth-p.Width {
			t.Fatalf("Step %d: paddle X=%d outside [0, %d]", i, p.X, cfg.ArenaWidth-p.Width)
		}
	}
}
