package pattern

import (
	"unicode"

	"github.com/coff33ninja/ledmatrix/internal/frame"
)

const (
	glyphSize    = 5
	glyphAdvance = 6
)

func drawGlyph(b *frame.Buffer, ch rune, x, y int, c frame.RGB) {
	g, ok := glyphs[unicode.ToUpper(ch)]
	if !ok {
		return
	}
	for row := 0; row < glyphSize; row++ {
		bits := g[row]
		for col := 0; col < glyphSize; col++ {
			if bits&(1<<(glyphSize-1-col)) != 0 {
				b.SetPixel(x+col, y+row, c)
			}
		}
	}
}

// Text renders a string once, centered on the matrix. Characters without a
// glyph leave a blank advance.
func Text(b *frame.Buffer, text string, c frame.RGB) {
	b.Clear()
	runes := []rune(text)
	x0 := (b.Width() - len(runes)*glyphAdvance + 1) / 2
	y0 := (b.Height() - glyphSize) / 2
	for i, ch := range runes {
		drawGlyph(b, ch, x0+i*glyphAdvance, y0, c)
	}
}

// Scroll is the per-run state of the scrolling-text animation: the current
// horizontal offset of the first glyph.
type Scroll struct {
	pos int
}

// NewScroll starts the text just off the right edge.
func NewScroll(w int) *Scroll { return &Scroll{pos: w} }

// Step redraws the text shifted one column further left, wrapping back to
// the right edge once fully off-screen.
func (s *Scroll) Step(b *frame.Buffer, text string, c frame.RGB) {
	b.Clear()
	runes := []rune(text)
	y := b.Height() / 2
	for i, ch := range runes {
		x := s.pos + i*glyphAdvance
		if x >= -glyphAdvance && x <= b.Width() {
			drawGlyph(b, ch, x, y, c)
		}
	}
	s.pos--
	if s.pos < -len(runes)*glyphAdvance {
		s.pos = b.Width()
	}
}
