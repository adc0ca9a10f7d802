// Package sched owns the lifecycle of the one running animation. At most
// one worker goroutine is alive at any instant; Start enforces this by
// synchronously stopping the previous worker before launching the next.
package sched

import (
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/coff33ninja/ledmatrix/internal/frame"
	"github.com/coff33ninja/ledmatrix/internal/pattern"
)

// Dispatcher receives frame snapshots at the end of every tick.
type Dispatcher interface {
	Send(*frame.Buffer) error
}

// Params is everything a Start call needs beyond the mode itself.
type Params struct {
	pattern.Params
	Text   string
	Scroll bool
	Raster [][]frame.RGB
	// Seed fixes the random source for fire/rain; 0 seeds from the clock.
	Seed int64
}

// Scheduler serializes all access to the shared frame buffer. The worker
// re-checks "still running, still my mode" under the lock every tick, which
// is what makes pattern switches safe without generation counters.
type Scheduler struct {
	// ctl serializes Start and Stop so two Start calls cannot race past
	// each other's Stop and spawn two workers.
	ctl  sync.Mutex
	mu   sync.Mutex
	buf  *frame.Buffer
	disp Dispatcher
	log  zerolog.Logger

	mode    Mode
	running bool
	done    chan struct{}

	stopTimeout time.Duration
}

func New(buf *frame.Buffer, disp Dispatcher, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		buf:         buf,
		disp:        disp,
		log:         log,
		mode:        ModeIdle,
		stopTimeout: time.Second,
	}
}

// State returns the current mode and whether a loop is running.
func (s *Scheduler) State() (Mode, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode, s.running
}

// Snapshot returns a deep copy of the current frame.
func (s *Scheduler) Snapshot() *frame.Buffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Clone()
}

// Mutate applies fn to the buffer under the lock, then dispatches the
// resulting frame. Used for direct pixel writes and clears.
func (s *Scheduler) Mutate(fn func(*frame.Buffer)) error {
	s.mu.Lock()
	fn(s.buf)
	snap := s.buf.Clone()
	s.mu.Unlock()
	return s.disp.Send(snap)
}

// Start stops whatever is running, installs the new state and either
// renders a single frame (one-shot modes) or launches the worker loop.
func (s *Scheduler) Start(mode Mode, p Params) error {
	s.ctl.Lock()
	defer s.ctl.Unlock()

	s.stop()
	if mode == ModeIdle {
		return nil
	}

	s.mu.Lock()
	s.mode = mode

	if !mode.animated(p.Scroll) {
		switch mode {
		case ModeSolid:
			pattern.Solid(s.buf, p.Params)
		case ModeRainbow:
			pattern.Rainbow(s.buf)
		case ModeCustom:
			pattern.Raster(s.buf, p.Raster)
		case ModeText:
			pattern.Text(s.buf, p.Text, textColor(p))
		}
		snap := s.buf.Clone()
		s.mu.Unlock()
		if err := s.disp.Send(snap); err != nil {
			s.log.Warn().Err(err).Stringer("mode", mode).Msg("one-shot frame dropped")
		}
		return nil
	}

	s.running = true
	done := make(chan struct{})
	s.done = done
	s.mu.Unlock()

	go s.run(mode, p, done)
	return nil
}

// Stop requests the worker to exit, resets the state to Idle and waits for
// the worker to quiesce. The wait is bounded so a hung transport cannot
// hang the control path; the expected case is prompt exit since the worker
// checks the flag every tick.
func (s *Scheduler) Stop() {
	s.ctl.Lock()
	defer s.ctl.Unlock()
	s.stop()
}

func (s *Scheduler) stop() {
	s.mu.Lock()
	s.running = false
	s.mode = ModeIdle
	done := s.done
	s.done = nil
	s.mu.Unlock()

	if done == nil {
		return
	}
	select {
	case <-done:
	case <-time.After(s.stopTimeout):
		s.log.Warn().Msg("animation worker did not quiesce in time")
	}
}

func (s *Scheduler) run(mode Mode, p Params, done chan struct{}) {
	defer close(done)

	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// Per-run pattern state lives here, scoped to this worker, so the next
	// run always starts clean.
	var (
		fire   *pattern.Fire
		rain   *pattern.Rain
		scroll *pattern.Scroll
	)
	w, h := s.buf.Width(), s.buf.Height()
	switch mode {
	case ModeFire:
		fire = pattern.NewFire(w, h, rng)
	case ModeRain:
		rain = pattern.NewRain(w, h, rng)
	case ModeText:
		scroll = pattern.NewScroll(w)
	}

	interval := tickInterval(mode, p.Speed)
	tick := 0
	for {
		s.mu.Lock()
		if !s.running || s.mode != mode {
			s.mu.Unlock()
			return
		}
		switch mode {
		case ModePlasma:
			pattern.Plasma(s.buf, tick, p.Params)
		case ModeFire:
			fire.Step(s.buf, p.Params)
		case ModeRain:
			rain.Step(s.buf, p.Params)
		case ModeText:
			scroll.Step(s.buf, p.Text, textColor(p))
		}
		snap := s.buf.Clone()
		s.mu.Unlock()

		if err := s.disp.Send(snap); err != nil {
			s.log.Warn().Err(err).Stringer("mode", mode).Int("tick", tick).Msg("frame dropped")
		}
		tick++
		if interval > 0 {
			time.Sleep(interval)
		}
	}
}

func tickInterval(mode Mode, speed int) time.Duration {
	switch mode {
	case ModeRain:
		if speed < 0 {
			speed = 0
		}
		if speed > 100 {
			speed = 100
		}
		iv := time.Duration(float64(100*time.Millisecond) * float64(100-speed) / 100.0)
		// Full speed would give a zero interval and a worker that never
		// yields; keep a floor so Stop can always get the lock.
		if iv < time.Millisecond {
			iv = time.Millisecond
		}
		return iv
	case ModeText:
		return 100 * time.Millisecond
	default:
		return 50 * time.Millisecond
	}
}

func textColor(p Params) frame.RGB {
	if (p.Color == frame.RGB{}) {
		return frame.RGB{R: 255, G: 255, B: 255}
	}
	return p.Color
}
