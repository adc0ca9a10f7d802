package pattern

import (
	"math/rand"

	"github.com/coff33ninja/ledmatrix/internal/frame"
)

// Rain is per-column digital rain. drops[x] holds the head position plus one
// (0 means no drop in that column); intensity remembers lit cells so tails
// keep fading after the head has moved on.
type Rain struct {
	w, h      int
	drops     []int
	intensity [][]uint8
	rng       *rand.Rand
}

func NewRain(w, h int, rng *rand.Rand) *Rain {
	in := make([][]uint8, h)
	for i := range in {
		in[i] = make([]uint8, w)
	}
	return &Rain{w: w, h: h, drops: make([]int, w), intensity: in, rng: rng}
}

// Step advances every drop one row and redraws the buffer.
func (r *Rain) Step(b *frame.Buffer, p Params) {
	b.Clear()
	spawn := 0.05 * float64(clampSpeed(p.Speed)) / 50.0
	for x := 0; x < r.w; x++ {
		if r.drops[x] == 0 && r.rng.Float64() < spawn {
			r.drops[x] = 1
		}
		if r.drops[x] == 0 {
			continue
		}
		head := r.drops[x] - 1
		if head >= 0 && head < r.h {
			b.SetPixel(x, head, frame.RGB{R: 180, G: 255, B: 180})
			r.intensity[head][x] = 255
		}
		for i := 0; i < 5; i++ {
			ty := head - i - 1
			if ty < 0 || ty >= r.h {
				continue
			}
			val := 255 - i*50
			if val <= 0 {
				continue
			}
			b.SetPixel(x, ty, frame.RGB{G: uint8(val)})
			r.intensity[ty][x] = uint8(val)
		}
		r.drops[x]++
		if r.drops[x] > r.h+5 {
			r.drops[x] = 0
		}
	}
	// Global afterglow: everything previously lit decays by 5 per tick.
	for y := 0; y < r.h; y++ {
		for x := 0; x < r.w; x++ {
			if r.intensity[y][x] == 0 {
				continue
			}
			if r.intensity[y][x] > 5 {
				r.intensity[y][x] -= 5
			} else {
				r.intensity[y][x] = 0
			}
			if c := b.GetPixel(x, y); int(c.R)+int(c.G)+int(c.B) > 0 {
				b.SetPixel(x, y, frame.RGB{G: r.intensity[y][x]})
			}
		}
	}
}
