package render

import (
	"errors"
	"testing"

	"github.com/lixenwraith/pong/core"
)

func TestNewFramebuffer_InvalidSize(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, 5}} {
		if _, err := NewFramebuffer(size[0], size[1]); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Expected ErrInvalidSize for %v, got %v", size, err)
		}
	}
}

func TestFramebuffer_FillArea(t *testing.T) {
	fb, err := NewFramebuffer(10, 8)
	if err != nil {
		t.Fatalf("Failed to create framebuffer: %v", err)
	}

	fb.FillArea(core.Area{X: 2, Y: 3, Width: 4, Height: 2}, PixelWhite)

	lit := 0
	for y := 0; y < 8; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x < 6 && y >= 3 && y < 5
			got := fb.At(x, y)
			if inside && got != PixelWhite {
				t.Errorf("Expected (%d,%d) lit", x, y)
			}
			if !inside && got != PixelOff {
				t.Errorf("Expected (%d,%d) off", x, y)
			}
			if got != PixelOff {
				lit++
			}
		}
	}
	if lit != 8 {
		t.Errorf("Expected 8 lit pixels, got %d", lit)
	}
}

func TestFramebuffer_FillAreaClips(t *testing.T) {
	fb, _ := NewFramebuffer(10, 10)

	// Ball partially above and left of the arena
	fb.FillArea(core.Area{X: -3, Y: -2, Width: 5, Height: 5}, PixelWhite)
	// Entirely outside
	fb.FillArea(core.Area{X: 50, Y: 50, Width: 5, Height: 5}, PixelWhite)

	if fb.At(0, 0) != PixelWhite || fb.At(1, 2) != PixelWhite {
		t.Error("Expected clipped corner to be lit")
	}
	if fb.At(2, 0) != PixelOff || fb.At(0, 3) != PixelOff {
		t.Error("Expected pixels past the clipped area to stay off")
	}
	if fb.At(-1, 0) != PixelOff || fb.At(10, 10) != PixelOff {
		t.Error("Expected out-of-bounds reads to be off")
	}
}

func TestFramebuffer_DrawClearsPreviousFrame(t *testing.T) {
	fb, _ := NewFramebuffer(20, 20)

	fb.Draw([]core.Area{{X: 0, Y: 0, Width: 5, Height: 5}}, PixelWhite)
	fb.Draw([]core.Area{{X: 10, Y: 10, Width: 5, Height: 5}}, PackRGB(1, 2, 3))

	if fb.At(0, 0) != PixelOff {
		t.Error("Expected previous frame cleared")
	}
	if fb.At(12, 12) != PackRGB(1, 2, 3) {
		t.Errorf("Expected new frame color, got %#x", fb.At(12, 12))
	}
}
