package pattern

import (
	"math"

	"github.com/coff33ninja/ledmatrix/internal/frame"
)

// Plasma superposes four sine fields plus a time term and maps the sum to a
// hue. The time term is tick*speed/100, so the caller's tick counter fully
// determines the frame.
func Plasma(b *frame.Buffer, tick int, p Params) {
	w, h := b.Width(), b.Height()
	tf := float64(tick) * float64(clampSpeed(p.Speed)) / 100.0
	wave := 4 * math.Sin(tf)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fx, fy := float64(x), float64(y)
			v := math.Sin(fx/16) +
				math.Sin(fy/8) +
				math.Sin((fx+fy)/16) +
				math.Sin(math.Sqrt(fx*fx+fy*fy)/8) +
				wave
			// v is in [-8,8]; collapse to a 0..360 hue
			hue := math.Mod((v+4)/8*360+720, 360)
			b.SetPixel(x, y, frame.FromHSV(hue, 1, 1))
		}
	}
}
