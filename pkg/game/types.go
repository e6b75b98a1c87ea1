package game

import (
	"context"
	"time"
)

// Point represents a coordinate on the game board
type Point struct {
	X, Y uint8
}

// Direction is one of the four cardinal moves
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Opposite returns the direction pointing the other way
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Event is what an input source delivers for a single tick
type Event int

const (
	EventNone Event = iota
	EventUp
	EventDown
	EventLeft
	EventRight
	EventQuit
)

func (e Event) String() string {
	switch e {
	case EventUp:
		return "up"
	case EventDown:
		return "down"
	case EventLeft:
		return "left"
	case EventRight:
		return "right"
	case EventQuit:
		return "quit"
	default:
		return "none"
	}
}

// Direction maps a directional event to its Direction.
// ok is false for EventNone and EventQuit.
func (e Event) Direction() (dir Direction, ok bool) {
	switch e {
	case EventUp:
		return Up, true
	case EventDown:
		return Down, true
	case EventLeft:
		return Left, true
	case EventRight:
		return Right, true
	}
	return 0, false
}

// Color is an index into the basic 8-color terminal palette
type Color uint8

const (
	ColorBlack Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// Cell is a styled grid cell
type Cell struct {
	Color Color
	Glyph string
}

// Predefined cells painted by the game
var (
	SnakeCell = Cell{Color: ColorGreen, Glyph: "  "}
	AppleCell = Cell{Color: ColorRed, Glyph: "  "}
)

// Grid is the render sink the game paints into.
// SetCell with a nil cell clears it; Draw flushes pending changes to the terminal.
type Grid interface {
	Width() int
	Height() int
	SetCell(x, y int, cell *Cell) error
	Draw() error
}

// InputSource delivers at most one event per tick.
// Poll returns EventNone once timeout elapses without a key.
type InputSource interface {
	Poll(ctx context.Context, timeout time.Duration) (Event, error)
}
