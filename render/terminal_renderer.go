package render

import "github.com/gdamore/tcell/v2"

const (
	halfUpper = '▀'
	halfLower = '▄'
)

// Presenter downsamples a framebuffer onto a tcell screen
//
// Each terminal cell shows two vertically stacked pixel blocks using half-block
// glyphs, so the arena maps onto cols x (rows*2) blocks. A block is lit when any
// pixel inside it is lit, which keeps thin paddles visible at small sizes
type Presenter struct {
	screen     tcell.Screen
	background tcell.Color
}

// NewPresenter creates a presenter drawing onto screen
func NewPresenter(screen tcell.Screen) *Presenter {
	return &Presenter{
		screen:     screen,
		background: tcell.ColorBlack,
	}
}

// Present draws the whole framebuffer and shows the screen
// Skipped while the screen reports no area, as during a resize
func (p *Presenter) Present(fb *Framebuffer) {
	cols, rows := p.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}

	fbW, fbH := fb.Size()
	blockRows := rows * 2

	for cy := 0; cy < rows; cy++ {
		topY0, topY1 := span(cy*2, blockRows, fbH)
		botY0, botY1 := span(cy*2+1, blockRows, fbH)

		for cx := 0; cx < cols; cx++ {
			x0, x1 := span(cx, cols, fbW)
			top := sample(fb, x0, x1, topY0, topY1)
			bot := sample(fb, x0, x1, botY0, botY1)
			p.setCell(cx, cy, top, bot)
		}
	}

	p.screen.Show()
}

func (p *Presenter) setCell(x, y int, top, bot uint32) {
	base := tcell.StyleDefault.Background(p.background)

	switch {
	case top != PixelOff && bot != PixelOff:
		p.screen.SetContent(x, y, halfUpper, nil, base.Foreground(TcellColor(top)).Background(TcellColor(bot)))
	case top != PixelOff:
		p.screen.SetContent(x, y, halfUpper, nil, base.Foreground(TcellColor(top)))
	case bot != PixelOff:
		p.screen.SetContent(x, y, halfLower, nil, base.Foreground(TcellColor(bot)))
	default:
		p.screen.SetContent(x, y, ' ', nil, base)
	}
}

// span maps block i of n onto the pixel range [lo, hi) of a size-pixel axis
// Always at least one pixel wide when the screen outnumbers the pixels
func span(i, n, size int) (lo, hi int) {
	lo = i * size / n
	hi = (i + 1) * size / n
	if hi <= lo {
		hi = lo + 1
	}
	return lo, min(hi, size)
}

// sample returns the first lit pixel in the block, PixelOff if none
func sample(fb *Framebuffer, x0, x1, y0, y1 int) uint32 {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if c := fb.At(x, y); c != PixelOff {
				return c
			}
		}
	}
	return PixelOff
}
