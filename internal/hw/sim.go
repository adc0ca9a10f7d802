package hw

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// SimTransport is a headless sink: it counts frames and logs a compact
// summary, useful when no hardware is attached.
type SimTransport struct {
	mu    sync.Mutex
	count int
	log   zerolog.Logger
}

func NewSim(log zerolog.Logger) *SimTransport {
	return &SimTransport{log: log}
}

func (t *SimTransport) Send(_ context.Context, frame []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.count++
	var sum int
	for _, b := range frame {
		sum += int(b)
	}
	avg := 0.0
	if len(frame) > 0 {
		avg = float64(sum) / float64(len(frame))
	}
	t.log.Debug().
		Int("frame", t.count).
		Int("bytes", len(frame)).
		Float64("avg", avg).
		Msg("sim frame")
	return nil
}

// Frames returns how many frames have been written so far.
func (t *SimTransport) Frames() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

func (t *SimTransport) Close() error { return nil }
