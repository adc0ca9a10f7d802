package frame

import "errors"

// ErrInvalidDimension is returned by New for non-positive sizes.
var ErrInvalidDimension = errors.New("frame: invalid dimensions")

// RGB is one pixel, 8 bits per channel.
type RGB struct {
	R, G, B uint8
}

// Buffer is a dense W×H grid of RGB pixels in row-major order. It is the
// single source of truth for what the matrix currently shows. Out-of-range
// coordinates are silently ignored on write and read back as black; the
// matrix is a best-effort display, not a place to panic.
type Buffer struct {
	w, h int
	pix  []RGB
}

// New allocates a zero-filled (black) buffer.
func New(w, h int) (*Buffer, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimension
	}
	return &Buffer{w: w, h: h, pix: make([]RGB, w*h)}, nil
}

func (b *Buffer) Width() int  { return b.w }
func (b *Buffer) Height() int { return b.h }

// SetPixel writes a color. Writes outside the grid are dropped.
func (b *Buffer) SetPixel(x, y int, c RGB) {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return
	}
	b.pix[y*b.w+x] = c
}

// GetPixel returns the color at (x,y), or black when out of range.
func (b *Buffer) GetPixel(x, y int) RGB {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return RGB{}
	}
	return b.pix[y*b.w+x]
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c RGB) {
	for i := range b.pix {
		b.pix[i] = c
	}
}

// Clear sets every pixel to black.
func (b *Buffer) Clear() { b.Fill(RGB{}) }

// Clone returns a deep copy, used to hand a stable snapshot to the
// dispatcher without holding the scheduler's lock during I/O.
func (b *Buffer) Clone() *Buffer {
	cp := &Buffer{w: b.w, h: b.h, pix: make([]RGB, len(b.pix))}
	copy(cp.pix, b.pix)
	return cp
}

// Pix exposes the backing slice in row-major order. Callers that iterate the
// whole frame (packing, preview encoding) use this instead of W*H GetPixel
// calls.
func (b *Buffer) Pix() []RGB { return b.pix }
