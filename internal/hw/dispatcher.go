// Package hw converts frame snapshots into wire bytes and ships them to the
// LED hardware. The wire format is fixed by the receiving firmware: one
// brightness-scaled RGB triple per LED, row-major, no framing.
package hw

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/coff33ninja/ledmatrix/internal/frame"
)

// Transport is one physical channel to the matrix hardware.
type Transport interface {
	// Send transmits one packed frame. A failed send reports an error but
	// must leave the transport usable for the next frame.
	Send(ctx context.Context, frame []byte) error
	Close() error
}

// ConnectionError wraps a transport-level failure to reach the hardware.
type ConnectionError struct {
	Target string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("hw: cannot reach %s: %v", e.Target, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// Pack serializes the buffer as W*H*3 bytes in row-major R,G,B order, each
// channel scaled by brightness/255 with integer truncation.
func Pack(b *frame.Buffer, brightness uint8) []byte {
	pix := b.Pix()
	out := make([]byte, len(pix)*3)
	for i, p := range pix {
		s := p.Scale(brightness)
		out[i*3+0] = s.R
		out[i*3+1] = s.G
		out[i*3+2] = s.B
	}
	return out
}

// Dispatcher owns the configured transport and the global brightness scale.
// Send failures are the caller's to log; the dispatcher never mutates the
// buffer it is handed.
type Dispatcher struct {
	mu         sync.Mutex
	tr         Transport
	brightness uint8
	timeout    time.Duration
	log        zerolog.Logger
}

func NewDispatcher(tr Transport, brightness uint8, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		tr:         tr,
		brightness: brightness,
		timeout:    time.Second,
		log:        log,
	}
}

// SetBrightness changes the global output scale for subsequent frames.
func (d *Dispatcher) SetBrightness(b uint8) {
	d.mu.Lock()
	d.brightness = b
	d.mu.Unlock()
}

func (d *Dispatcher) Brightness() uint8 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.brightness
}

// Send packs a snapshot and transmits it. Delivery is best effort: an error
// means this frame was lost, not that the link is dead.
func (d *Dispatcher) Send(b *frame.Buffer) error {
	d.mu.Lock()
	tr := d.tr
	bright := d.brightness
	timeout := d.timeout
	d.mu.Unlock()

	if tr == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := tr.Send(ctx, Pack(b, bright)); err != nil {
		return fmt.Errorf("hw: dispatch failed: %w", err)
	}
	return nil
}

// SetTransport swaps the underlying transport, closing the previous one.
func (d *Dispatcher) SetTransport(tr Transport) {
	d.mu.Lock()
	old := d.tr
	d.tr = tr
	d.mu.Unlock()
	if old != nil {
		if err := old.Close(); err != nil {
			d.log.Warn().Err(err).Msg("closing previous transport")
		}
	}
}

func (d *Dispatcher) Close() error {
	d.mu.Lock()
	tr := d.tr
	d.tr = nil
	d.mu.Unlock()
	if tr == nil {
		return nil
	}
	return tr.Close()
}
