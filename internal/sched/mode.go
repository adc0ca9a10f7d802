package sched

import (
	"fmt"
	"strings"
)

// Mode identifies the active visual pattern.
type Mode int

const (
	ModeIdle Mode = iota
	ModeSolid
	ModeRainbow
	ModePlasma
	ModeFire
	ModeRain
	ModeText
	ModeCustom
)

var modeNames = map[Mode]string{
	ModeIdle:    "idle",
	ModeSolid:   "solid",
	ModeRainbow: "rainbow",
	ModePlasma:  "plasma",
	ModeFire:    "fire",
	ModeRain:    "rain",
	ModeText:    "text",
	ModeCustom:  "custom",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return "unknown"
}

// ParseMode maps a pattern name to its Mode. "matrix" is the historical
// name for the digital-rain pattern and still accepted.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "solid":
		return ModeSolid, nil
	case "rainbow":
		return ModeRainbow, nil
	case "plasma":
		return ModePlasma, nil
	case "fire":
		return ModeFire, nil
	case "rain", "matrix":
		return ModeRain, nil
	case "text":
		return ModeText, nil
	case "custom":
		return ModeCustom, nil
	case "idle":
		return ModeIdle, nil
	}
	return ModeIdle, fmt.Errorf("sched: unknown pattern %q", s)
}

// animated reports whether the mode runs a background loop. Static text is
// handled separately via Params.Scroll.
func (m Mode) animated(scroll bool) bool {
	switch m {
	case ModePlasma, ModeFire, ModeRain:
		return true
	case ModeText:
		return scroll
	}
	return false
}
