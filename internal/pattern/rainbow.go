package pattern

import "github.com/coff33ninja/ledmatrix/internal/frame"

// Rainbow paints a static diagonal hue gradient: hue at (x,y) is
// (x+y)*360/(w+h) at full saturation and value.
func Rainbow(b *frame.Buffer) {
	w, h := b.Width(), b.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			hue := float64(x+y) * 360.0 / float64(w+h)
			b.SetPixel(x, y, frame.FromHSV(hue, 1, 1))
		}
	}
}
