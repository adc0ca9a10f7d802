package pattern

import "github.com/coff33ninja/ledmatrix/internal/frame"

// Raster copies a caller-supplied 2-D array of pixels into the buffer.
// Rows and columns beyond the buffer's extent are clipped, not an error.
func Raster(b *frame.Buffer, rows [][]frame.RGB) {
	b.Clear()
	h := b.Height()
	w := b.Width()
	for y := 0; y < len(rows) && y < h; y++ {
		row := rows[y]
		for x := 0; x < len(row) && x < w; x++ {
			b.SetPixel(x, y, row[x])
		}
	}
}
