package sched

import (
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coff33ninja/ledmatrix/internal/frame"
	"github.com/coff33ninja/ledmatrix/internal/pattern"
)

func solidParams(c frame.RGB, brightness uint8) pattern.Params {
	return pattern.Params{Color: c, Brightness: brightness}
}

func speedParams(speed int) pattern.Params {
	return pattern.Params{Speed: speed}
}

// fakeDispatcher records every dispatched frame and signals arrivals.
type fakeDispatcher struct {
	mu     sync.Mutex
	frames []*frame.Buffer
	sent   chan struct{}
}

func newFakeDispatcher() *fakeDispatcher {
	return &fakeDispatcher{sent: make(chan struct{}, 1024)}
}

func (d *fakeDispatcher) Send(b *frame.Buffer) error {
	d.mu.Lock()
	d.frames = append(d.frames, b.Clone())
	d.mu.Unlock()
	select {
	case d.sent <- struct{}{}:
	default:
	}
	return nil
}

func (d *fakeDispatcher) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.frames)
}

func (d *fakeDispatcher) frame(i int) *frame.Buffer {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frames[i]
}

func (d *fakeDispatcher) waitForFrames(t *testing.T, n int) {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for d.count() < n {
		select {
		case <-d.sent:
		case <-deadline:
			t.Fatalf("timed out waiting for %d frames, have %d", n, d.count())
		}
	}
}

func newScheduler(t *testing.T, w, h int) (*Scheduler, *fakeDispatcher) {
	t.Helper()
	buf, err := frame.New(w, h)
	require.NoError(t, err)
	d := newFakeDispatcher()
	return New(buf, d, zerolog.Nop()), d
}

func TestOneShotSolidDispatchesOnce(t *testing.T) {
	s, d := newScheduler(t, 16, 16)
	err := s.Start(ModeSolid, Params{Params: solidParams(frame.RGB{G: 255}, 255)})
	require.NoError(t, err)

	assert.Equal(t, 1, d.count(), "one-shot mode dispatches exactly one frame")
	got := d.frame(0)
	for _, px := range got.Pix() {
		assert.Equal(t, frame.RGB{G: 255}, px)
	}

	mode, running := s.State()
	assert.Equal(t, ModeSolid, mode)
	assert.False(t, running, "one-shot modes do not leave a loop running")
}

func TestStartStopQuiesces(t *testing.T) {
	s, d := newFakeSchedulerRunning(t)
	s.Stop()

	mode, running := s.State()
	assert.Equal(t, ModeIdle, mode)
	assert.False(t, running)

	n := d.count()
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, n, d.count(), "no sends after Stop returned")
}

func newFakeSchedulerRunning(t *testing.T) (*Scheduler, *fakeDispatcher) {
	t.Helper()
	s, d := newScheduler(t, 16, 16)
	require.NoError(t, s.Start(ModePlasma, Params{Params: speedParams(50)}))
	d.waitForFrames(t, 2)
	return s, d
}

func TestStopIsIdempotent(t *testing.T) {
	s, _ := newScheduler(t, 8, 8)
	s.Stop()
	s.Stop()
	mode, running := s.State()
	assert.Equal(t, ModeIdle, mode)
	assert.False(t, running)
}

func TestSwitchingPatternsNeverMixesFrames(t *testing.T) {
	s, d := newScheduler(t, 16, 16)
	require.NoError(t, s.Start(ModePlasma, Params{Params: speedParams(50)}))
	d.waitForFrames(t, 3)

	// Switch to rain; Start must quiesce plasma before the rain loop runs.
	require.NoError(t, s.Start(ModeRain, Params{Params: speedParams(100), Seed: 5}))
	marker := d.count()
	d.waitForFrames(t, marker+5)
	s.Stop()

	for i := marker; i < d.count(); i++ {
		for _, px := range d.frame(i).Pix() {
			// rain frames only ever contain pure green; a stray plasma
			// write would show up as a hue with distinct R and B
			assert.Zero(t, px.R, "frame %d contains non-rain pixel %v", i, px)
			assert.Zero(t, px.B, "frame %d contains non-rain pixel %v", i, px)
		}
	}
}

func TestMutateDispatchesTheResult(t *testing.T) {
	s, d := newScheduler(t, 4, 4)
	err := s.Mutate(func(b *frame.Buffer) { b.SetPixel(1, 2, frame.RGB{B: 9}) })
	require.NoError(t, err)
	require.Equal(t, 1, d.count())
	assert.Equal(t, frame.RGB{B: 9}, d.frame(0).GetPixel(1, 2))
	assert.Equal(t, frame.RGB{B: 9}, s.Snapshot().GetPixel(1, 2))
}

func TestSnapshotIsACopy(t *testing.T) {
	s, _ := newScheduler(t, 4, 4)
	snap := s.Snapshot()
	snap.SetPixel(0, 0, frame.RGB{R: 1})
	assert.Equal(t, frame.RGB{}, s.Snapshot().GetPixel(0, 0))
}

func TestStartIdleJustStops(t *testing.T) {
	s, d := newFakeSchedulerRunning(t)
	require.NoError(t, s.Start(ModeIdle, Params{}))
	mode, running := s.State()
	assert.Equal(t, ModeIdle, mode)
	assert.False(t, running)
	n := d.count()
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, n, d.count())
}

func TestScrollTextRunsAndStops(t *testing.T) {
	s, d := newScheduler(t, 8, 8)
	require.NoError(t, s.Start(ModeText, Params{Text: "HI", Scroll: true}))
	mode, running := s.State()
	assert.Equal(t, ModeText, mode)
	assert.True(t, running)
	d.waitForFrames(t, 2)
	s.Stop()
}

func TestStaticTextIsOneShot(t *testing.T) {
	s, d := newScheduler(t, 16, 16)
	require.NoError(t, s.Start(ModeText, Params{Text: "A"}))
	assert.Equal(t, 1, d.count())
	_, running := s.State()
	assert.False(t, running)
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{
		"solid": ModeSolid, "Rainbow": ModeRainbow, "PLASMA": ModePlasma,
		"fire": ModeFire, "rain": ModeRain, "matrix": ModeRain,
		"text": ModeText, "custom": ModeCustom, "idle": ModeIdle,
	} {
		got, err := ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseMode("disco")
	assert.Error(t, err)
}

func TestConcurrentStartLeavesOneWorker(t *testing.T) {
	s, d := newScheduler(t, 16, 16)

	modes := []Mode{ModePlasma, ModeFire, ModeRain, ModePlasma, ModeFire, ModeRain, ModePlasma, ModeRain}
	var wg sync.WaitGroup
	for _, m := range modes {
		wg.Add(1)
		go func(m Mode) {
			defer wg.Done()
			assert.NoError(t, s.Start(m, Params{Params: speedParams(50), Seed: 1}))
		}(m)
	}
	wg.Wait()

	d.waitForFrames(t, 2)
	s.Stop()

	_, running := s.State()
	assert.False(t, running)
	n := d.count()
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, n, d.count(), "no surviving worker keeps dispatching after Stop")
}

func TestTickIntervalNeverZero(t *testing.T) {
	assert.Equal(t, time.Millisecond, tickInterval(ModeRain, 100))
	assert.Equal(t, time.Millisecond, tickInterval(ModeRain, 500))
	assert.Equal(t, 100*time.Millisecond, tickInterval(ModeRain, 0))
	assert.Equal(t, 50*time.Millisecond, tickInterval(ModeRain, 50))
	assert.Equal(t, 100*time.Millisecond, tickInterval(ModeText, 100))
	assert.Equal(t, 50*time.Millisecond, tickInterval(ModePlasma, 100))
}
