package game

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var errBoom = errors.New("boom")

// memGrid is an in-memory Grid recording painted cells
type memGrid struct {
	w, h    int
	cells   map[Point]Cell
	draws   int
	setErr  error
	drawErr error
}

func newMemGrid(w, h int) *memGrid {
	return &memGrid{w: w, h: h, cells: make(map[Point]Cell)}
}

func (m *memGrid) Width() int  { return m.w }
func (m *memGrid) Height() int { return m.h }

func (m *memGrid) SetCell(x, y int, cell *Cell) error {
	if m.setErr != nil {
		return m.setErr
	}
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return fmt.Errorf("cell (%d,%d) out of bounds", x, y)
	}
	p := Point{X: uint8(x), Y: uint8(y)}
	if cell == nil {
		delete(m.cells, p)
		return nil
	}
	m.cells[p] = *cell
	return nil
}

func (m *memGrid) Draw() error {
	if m.drawErr != nil {
		return m.drawErr
	}
	m.draws++
	return nil
}

// scriptedInput replays events, then reports EventNone forever
type scriptedInput struct {
	events []Event
	err    error
}

func (s *scriptedInput) Poll(ctx context.Context, timeout time.Duration) (Event, error) {
	if err := ctx.Err(); err != nil {
		return EventNone, err
	}
	if s.err != nil {
		return EventNone, s.err
	}
	if len(s.events) == 0 {
		return EventNone, nil
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, nil
}

// seqRand cycles through fixed values, reduced modulo n
type seqRand struct {
	seq []int
	i   int
}

func (r *seqRand) Intn(n int) int {
	v := r.seq[r.i%len(r.seq)]
	r.i++
	return v % n
}
