package render

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/vmath"
)

// ErrInvalidSize is returned for framebuffers without area
var ErrInvalidSize = errors.New("invalid framebuffer size")

// Framebuffer is a row-major pixel grid sized to the arena
type Framebuffer struct {
	width  int
	height int
	pix    []uint32
}

// NewFramebuffer allocates a cleared width x height buffer
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}, nil
}

// Size returns the buffer dimensions
func (f *Framebuffer) Size() (width, height int) {
	return f.width, f.height
}

// Clear turns every pixel off
func (f *Framebuffer) Clear() {
	clear(f.pix)
}

// At returns the pixel at (x, y), PixelOff outside the buffer
func (f *Framebuffer) At(x, y int) uint32 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return PixelOff
	}
	return f.pix[y*f.width+x]
}

// FillArea paints an opaque rectangle, clipped to the buffer
func (f *Framebuffer) FillArea(a core.Area, color uint32) {
	a, ok := vmath.AreaClip(a, f.width, f.height)
	if !ok {
		return
	}
	for y := a.Y; y < a.Y+a.Height; y++ {
		row := f.pix[y*f.width+a.X : y*f.width+a.X+a.Width]
		for i := range row {
			row[i] = color
		}
	}
}

// Draw clears the buffer and paints all areas with one color
func (f *Framebuffer) Draw(areas []core.Area, color uint32) {
	f.Clear()
	for _, a := range areas {
		f.FillArea(a, color)
	}
}
