package pattern

import "github.com/coff33ninja/ledmatrix/internal/frame"

// Solid fills the whole buffer with the params color scaled by brightness.
func Solid(b *frame.Buffer, p Params) {
	b.Fill(p.Color.Scale(p.Brightness))
}
