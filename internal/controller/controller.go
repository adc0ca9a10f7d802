// Package controller is the facade the HTTP and CLI front ends talk to. It
// validates inputs before touching scheduler state, so a bad request leaves
// whatever was running untouched.
package controller

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/coff33ninja/ledmatrix/internal/frame"
	"github.com/coff33ninja/ledmatrix/internal/hw"
	"github.com/coff33ninja/ledmatrix/internal/pattern"
	"github.com/coff33ninja/ledmatrix/internal/preview"
	"github.com/coff33ninja/ledmatrix/internal/sched"
)

// fanout delivers each dispatched frame to the hardware and, when present,
// to the preview broadcaster. Preview never fails a dispatch.
type fanout struct {
	disp *hw.Dispatcher
	prev *preview.Broadcaster
}

func (f fanout) Send(b *frame.Buffer) error {
	if f.prev != nil {
		f.prev.Publish(b)
	}
	return f.disp.Send(b)
}

type Controller struct {
	sched *sched.Scheduler
	disp  *hw.Dispatcher
	log   zerolog.Logger
}

// New builds the controller around a fresh black frame buffer. prev may be
// nil when no preview is wanted.
func New(width, height int, disp *hw.Dispatcher, prev *preview.Broadcaster, log zerolog.Logger) (*Controller, error) {
	buf, err := frame.New(width, height)
	if err != nil {
		return nil, err
	}
	s := sched.New(buf, fanout{disp: disp, prev: prev}, log)
	return &Controller{sched: s, disp: disp, log: log}, nil
}

// ApplyPattern validates and starts the named pattern. The color is parsed
// before the current animation is stopped, so a malformed request leaves
// the previous state running.
func (c *Controller) ApplyPattern(mode, colorHex string, brightness uint8, speed int) error {
	m, err := sched.ParseMode(mode)
	if err != nil {
		return err
	}
	if m == sched.ModeCustom {
		return fmt.Errorf("controller: custom pattern needs raster data")
	}
	if m == sched.ModeText {
		return fmt.Errorf("controller: text pattern needs text, use DrawText or ScrollText")
	}
	color, err := frame.ParseHex(colorHex)
	if err != nil {
		return err
	}
	c.log.Info().Str("pattern", mode).Str("color", color.Hex()).
		Uint8("brightness", brightness).Int("speed", speed).Msg("apply pattern")
	return c.sched.Start(m, sched.Params{
		Params: pattern.Params{Color: color, Brightness: brightness, Speed: speed},
	})
}

// ClearMatrix stops any animation and blanks the hardware.
func (c *Controller) ClearMatrix() error {
	c.sched.Stop()
	return c.sched.Mutate(func(b *frame.Buffer) { b.Clear() })
}

// SetPixel writes one pixel and pushes the resulting frame. Out-of-range
// coordinates are dropped silently, like every other buffer write.
func (c *Controller) SetPixel(x, y int, colorHex string) error {
	color, err := frame.ParseHex(colorHex)
	if err != nil {
		return err
	}
	return c.sched.Mutate(func(b *frame.Buffer) { b.SetPixel(x, y, color) })
}

// ApplyCustomRaster stops any animation and shows the uploaded raster,
// clipped to the matrix extent.
func (c *Controller) ApplyCustomRaster(rows [][]frame.RGB) error {
	if len(rows) == 0 {
		return fmt.Errorf("controller: empty raster")
	}
	return c.sched.Start(sched.ModeCustom, sched.Params{Raster: rows})
}

// DrawText renders text once, centered.
func (c *Controller) DrawText(text string) error {
	if text == "" {
		return fmt.Errorf("controller: empty text")
	}
	return c.sched.Start(sched.ModeText, sched.Params{Text: text})
}

// ScrollText starts the scrolling-text animation.
func (c *Controller) ScrollText(text string) error {
	if text == "" {
		return fmt.Errorf("controller: empty text")
	}
	return c.sched.Start(sched.ModeText, sched.Params{Text: text, Scroll: true})
}

// StopAnimation stops the running loop, if any, and waits for it to
// quiesce.
func (c *Controller) StopAnimation() {
	c.sched.Stop()
}

// Snapshot hands out a deep copy of the current frame for previews.
func (c *Controller) Snapshot() *frame.Buffer {
	return c.sched.Snapshot()
}

// State reports the current mode name and whether a loop is running.
func (c *Controller) State() (string, bool) {
	m, running := c.sched.State()
	return m.String(), running
}

// SetBrightness adjusts the global hardware output scale.
func (c *Controller) SetBrightness(b uint8) {
	c.disp.SetBrightness(b)
}
