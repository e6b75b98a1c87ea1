package renderer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/trytobebee/tuisnake/pkg/config"
	"github.com/trytobebee/tuisnake/pkg/game"
)

const borderRune = '█'

// ScreenGrid is a game.Grid backed by a tcell screen.
// tcell already diffs against what is on the terminal, so Draw is just Show.
type ScreenGrid struct {
	screen        tcell.Screen
	width, height int
}

// NewScreenGrid draws the border on an initialised screen and returns the grid inside it
func NewScreenGrid(screen tcell.Screen, width, height int) (*ScreenGrid, error) {
	cols, rows := screen.Size()
	needCols, needRows := (width+2)*config.CellWidth, height+2
	if cols < needCols || rows < needRows {
		return nil, fmt.Errorf("%w: need %dx%d, have %dx%d", ErrTerminalTooSmall, needCols, needRows, cols, rows)
	}

	g := &ScreenGrid{screen: screen, width: width, height: height}
	screen.HideCursor()
	screen.Clear()
	g.drawBorder()
	return g, nil
}

func (g *ScreenGrid) drawBorder() {
	style := tcell.StyleDefault
	put := func(cx, cy int) {
		for i := 0; i < config.CellWidth; i++ {
			g.screen.SetContent(cx*config.CellWidth+i, cy, borderRune, nil, style)
		}
	}

	for cx := 0; cx < g.width+2; cx++ {
		put(cx, 0)
		put(cx, g.height+1)
	}
	for cy := 1; cy <= g.height; cy++ {
		put(0, cy)
		put(g.width+1, cy)
	}
}

// Width is the board width in cells
func (g *ScreenGrid) Width() int { return g.width }

// Height is the board height in cells
func (g *ScreenGrid) Height() int { return g.height }

// SetCell writes a cell into the screen's back buffer; nil clears it
func (g *ScreenGrid) SetCell(x, y int, cell *game.Cell) error {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, x, y, g.width, g.height)
	}

	style := tcell.StyleDefault
	glyph := []rune(config.CharEmpty)
	if cell != nil {
		style = style.Background(tcell.PaletteColor(int(cell.Color)))
		glyph = []rune(cell.Glyph)
	}

	col, row := (x+1)*config.CellWidth, y+1
	for i := 0; i < config.CellWidth; i++ {
		r := ' '
		if i < len(glyph) {
			r = glyph[i]
		}
		g.screen.SetContent(col+i, row, r, nil, style)
	}
	return nil
}

// Draw pushes pending changes to the terminal
func (g *ScreenGrid) Draw() error {
	g.screen.Show()
	return nil
}
