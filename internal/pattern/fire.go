package pattern

import (
	"math/rand"

	"github.com/coff33ninja/ledmatrix/internal/frame"
)

// Fire is the classic cellular flame: a heat grid one row taller than the
// matrix, with the extra bottom row acting as the heat source. Heat diffuses
// upward as the average of the three cells below (wrapping horizontally)
// minus a random cooling term. State lives for one animation run only.
type Fire struct {
	w, h int
	heat [][]uint8 // (h+1) rows × w cols; row h is the source
	rng  *rand.Rand
}

func NewFire(w, h int, rng *rand.Rand) *Fire {
	heat := make([][]uint8, h+1)
	for i := range heat {
		heat[i] = make([]uint8, w)
	}
	return &Fire{w: w, h: h, heat: heat, rng: rng}
}

// Step advances the simulation one tick and writes the flame into b.
func (f *Fire) Step(b *frame.Buffer, p Params) {
	src := f.h // source row index
	for x := 0; x < f.w; x++ {
		f.heat[src][x] = uint8(f.rng.Intn(256))
	}
	cool := float64(clampSpeed(p.Speed)) / 50.0
	for y := 0; y < src; y++ {
		for x := 0; x < f.w; x++ {
			below := y + 1
			if below > src {
				below = src
			}
			left := (x - 1 + f.w) % f.w
			right := (x + 1) % f.w
			v := (float64(f.heat[below][left]) +
				float64(f.heat[below][x]) +
				float64(f.heat[below][right])) / 3.0
			v -= float64(f.rng.Intn(4)) * cool
			if v < 0 {
				v = 0
			}
			f.heat[y][x] = uint8(v)
		}
	}
	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			b.SetPixel(x, y, heatColor(f.heat[y][x]))
		}
	}
}

// heatColor maps heat through the 4-band black→red→orange→yellow→white
// palette.
func heatColor(h uint8) frame.RGB {
	v := int(h)
	switch {
	case v < 64:
		return frame.RGB{R: uint8(v * 3)}
	case v < 128:
		return frame.RGB{R: 255, G: uint8((v - 64) * 4)}
	case v < 192:
		return frame.RGB{R: 255, G: 255, B: uint8((v - 128) * 4)}
	default:
		return frame.RGB{R: 255, G: 255, B: 255}
	}
}
