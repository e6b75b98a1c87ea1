package renderer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/trytobebee/tuisnake/pkg/config"
	"github.com/trytobebee/tuisnake/pkg/game"
)

var (
	// ErrOutOfBounds is returned by SetCell for coordinates outside the grid
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrTerminalTooSmall is returned when the host terminal cannot fit the board
	ErrTerminalTooSmall = errors.New("terminal too small")
)

// ANSI escape sequences
const (
	escReset       = "\033[0m"
	escClearScreen = "\033[H\033[2J\033[3J"
	escHideCursor  = "\033[?25l"
	escShowCursor  = "\033[?25h"
	escAltScreen   = "\033[?1049h"
	escMainScreen  = "\033[?1049l"
)

// TerminalGrid is a game.Grid that paints with raw ANSI escapes.
// Only cells changed since the last Draw are written.
type TerminalGrid struct {
	width, height int
	cells         [][]*game.Cell
	dirty         [][]bool
	pending       []game.Point
	framed        bool
	out           io.Writer
	buffer        strings.Builder
}

// NewTerminalGrid creates a width x height grid writing to out
func NewTerminalGrid(out io.Writer, width, height int) *TerminalGrid {
	// Pre-allocate board to reduce GC pressure
	cells := make([][]*game.Cell, height)
	dirty := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]*game.Cell, width)
		dirty[i] = make([]bool, width)
	}

	return &TerminalGrid{
		width:  width,
		height: height,
		cells:  cells,
		dirty:  dirty,
		out:    out,
	}
}

// CheckSize fails with ErrTerminalTooSmall when the terminal behind fd
// cannot show the board and its border
func (g *TerminalGrid) CheckSize(fd int) error {
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	needCols, needRows := (g.width+2)*config.CellWidth, g.height+2
	if cols < needCols || rows < needRows {
		return fmt.Errorf("%w: need %dx%d, have %dx%d", ErrTerminalTooSmall, needCols, needRows, cols, rows)
	}
	return nil
}

// Open switches to the alternate screen and hides the cursor
func (g *TerminalGrid) Open() error {
	_, err := io.WriteString(g.out, escAltScreen+escHideCursor)
	return err
}

// Close restores the cursor and the main screen (call on exit)
func (g *TerminalGrid) Close() error {
	_, err := io.WriteString(g.out, escReset+escShowCursor+escMainScreen)
	return err
}

// Width is the board width in cells
func (g *TerminalGrid) Width() int { return g.width }

// Height is the board height in cells
func (g *TerminalGrid) Height() int { return g.height }

// SetCell stages a cell change; nil clears the cell
func (g *TerminalGrid) SetCell(x, y int, cell *game.Cell) error {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, x, y, g.width, g.height)
	}

	if cell != nil {
		c := *cell
		cell = &c
	}
	g.cells[y][x] = cell

	if !g.dirty[y][x] {
		g.dirty[y][x] = true
		g.pending = append(g.pending, game.Point{X: uint8(x), Y: uint8(y)})
	}
	return nil
}

// Draw flushes staged cells in a single write.
// The first call clears the screen and draws the border.
func (g *TerminalGrid) Draw() error {
	g.buffer.Reset()

	if !g.framed {
		g.writeFrame()
	}

	for _, p := range g.pending {
		x, y := int(p.X), int(p.Y)
		g.dirty[y][x] = false
		g.writeCell(x, y)
	}
	g.pending = g.pending[:0]
	g.buffer.WriteString(escReset)

	if _, err := io.WriteString(g.out, g.buffer.String()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	g.framed = true
	return nil
}

// writeFrame clears the screen and draws the border around the playfield
func (g *TerminalGrid) writeFrame() {
	g.buffer.WriteString(escClearScreen)

	edge := strings.Repeat(config.CharBorder, g.width+2)
	moveTo(&g.buffer, 1, 1)
	g.buffer.WriteString(edge)
	for y := 0; y < g.height; y++ {
		moveTo(&g.buffer, y+2, 1)
		g.buffer.WriteString(config.CharBorder)
		moveTo(&g.buffer, y+2, (g.width+1)*config.CellWidth+1)
		g.buffer.WriteString(config.CharBorder)
	}
	moveTo(&g.buffer, g.height+2, 1)
	g.buffer.WriteString(edge)
}

// writeCell renders grid cell (x, y); the border offsets it by one cell each way
func (g *TerminalGrid) writeCell(x, y int) {
	moveTo(&g.buffer, y+2, (x+1)*config.CellWidth+1)

	cell := g.cells[y][x]
	if cell == nil {
		g.buffer.WriteString(escReset)
		g.buffer.WriteString(config.CharEmpty)
		return
	}
	fmt.Fprintf(&g.buffer, "\033[4%dm", cell.Color)
	g.buffer.WriteString(cell.Glyph)
}

// moveTo positions the cursor at a 1-based row and column
func moveTo(b *strings.Builder, row, col int) {
	fmt.Fprintf(b, "\033[%d;%dH", row, col)
}
