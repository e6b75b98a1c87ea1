package game

import (
	"errors"
	"fmt"
)

// maxPlacementAttempts bounds random sampling before falling back to a free-cell scan
const maxPlacementAttempts = 100

// ErrNoFreeCell is returned when every interior cell is covered by the snake
var ErrNoFreeCell = errors.New("no free cell for apple")

// Rand is the subset of a random source apple placement needs
type Rand interface {
	Intn(n int) int
}

// Apple is the single piece of food on the board
type Apple struct {
	pos Point
}

// PlaceApple puts an apple on a random interior cell the snake does not occupy
// and paints it on grid. Interior excludes the one-cell border on every side.
func PlaceApple(grid Grid, snake Snake, rng Rand) (Apple, error) {
	w, h := grid.Width(), grid.Height()
	if w < 3 || h < 3 {
		return Apple{}, ErrNoFreeCell
	}

	pos, ok := sampleFree(w, h, snake, rng)
	if !ok {
		pos, ok = scanFree(w, h, snake, rng)
		if !ok {
			return Apple{}, ErrNoFreeCell
		}
	}

	cell := AppleCell
	if err := grid.SetCell(int(pos.X), int(pos.Y), &cell); err != nil {
		return Apple{}, fmt.Errorf("paint apple %v: %w", pos, err)
	}
	return Apple{pos: pos}, nil
}

// sampleFree draws uniformly from [1, w-2] x [1, h-2]
func sampleFree(w, h int, snake Snake, rng Rand) (Point, bool) {
	for attempts := 0; attempts < maxPlacementAttempts; attempts++ {
		pos := Point{
			X: uint8(rng.Intn(w-2) + 1),
			Y: uint8(rng.Intn(h-2) + 1),
		}
		if !snake.Occupies(pos) {
			return pos, true
		}
	}
	return Point{}, false
}

// scanFree enumerates the free interior cells and picks one uniformly
func scanFree(w, h int, snake Snake, rng Rand) (Point, bool) {
	var free []Point
	for y := 1; y <= h-2; y++ {
		for x := 1; x <= w-2; x++ {
			p := Point{X: uint8(x), Y: uint8(y)}
			if !snake.Occupies(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Point{}, false
	}
	return free[rng.Intn(len(free))], true
}

// IsEaten reports whether the snake's head is on the apple
func (a Apple) IsEaten(snake Snake) bool {
	return snake.Head() == a.pos
}

// Pos returns the apple's coordinate
func (a Apple) Pos() Point {
	return a.pos
}
