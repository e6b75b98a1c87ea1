package config

import (
	"errors"
	"fmt"
	"time"
)

// Board dimensions
const (
	DefaultWidth  = 30
	DefaultHeight = 30
	MinSize       = 5
	MaxSize       = 255 // coordinates are uint8
)

// Tick settings
const (
	PollTimeout    = 80 * time.Millisecond // input wait per tick
	MinPollTimeout = 10 * time.Millisecond
	MaxPollTimeout = time.Second
)

// Rendering backends
const (
	BackendANSI  = "ansi"  // raw escape codes + eiannone/keyboard
	BackendTcell = "tcell" // tcell screen for both output and input
)

// Characters for rendering; every grid cell is two columns wide
const (
	CharEmpty  = "  "
	CharBorder = "██"
	CellWidth  = 2
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings the binary accepts on its command line
type Config struct {
	Width       int
	Height      int
	PollTimeout time.Duration
	Seed        uint64 // 0 picks a time-based seed
	Backend     string
	LogFile     string // empty discards logs
}

// Default returns the standard 30x30 board with an 80ms tick
func Default() Config {
	return Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		PollTimeout: PollTimeout,
		Backend:     BackendANSI,
	}
}

// Validate checks ranges and the backend name
func (c Config) Validate() error {
	if c.Width < MinSize || c.Width > MaxSize {
		return fmt.Errorf("%w: width %d not in [%d, %d]", ErrInvalidConfig, c.Width, MinSize, MaxSize)
	}
	if c.Height < MinSize || c.Height > MaxSize {
		return fmt.Errorf("%w: height %d not in [%d, %d]", ErrInvalidConfig, c.Height, MinSize, MaxSize)
	}
	if c.PollTimeout < MinPollTimeout || c.PollTimeout > MaxPollTimeout {
		return fmt.Errorf("%w: tick %v not in [%v, %v]", ErrInvalidConfig, c.PollTimeout, MinPollTimeout, MaxPollTimeout)
	}
	switch c.Backend {
	case BackendANSI, BackendTcell:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, c.Backend)
	}
	return nil
}
