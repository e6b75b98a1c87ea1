package game

import "fmt"

// Snake is an ordered body, head first.
// All methods treat the receiver as immutable and return fresh values.
type Snake struct {
	segments []Point
}

// NewSnake creates a one-segment snake at the origin
func NewSnake() Snake {
	return Snake{segments: []Point{{X: 0, Y: 0}}}
}

// NewSnakeFrom builds a snake from segments listed head first
func NewSnakeFrom(segments ...Point) Snake {
	if len(segments) == 0 {
		panic("game: snake needs at least one segment")
	}
	body := make([]Point, len(segments))
	copy(body, segments)
	return Snake{segments: body}
}

// Head returns the first segment
func (s Snake) Head() Point {
	if len(s.segments) == 0 {
		// Zero value Snake behaves like NewSnake
		return Point{}
	}
	return s.segments[0]
}

// AddSegment grows the snake by making newHead its head.
// Used after the snake eats an apple; newHead must not be the current head.
func (s Snake) AddSegment(newHead Point) Snake {
	if newHead == s.Head() {
		panic(fmt.Sprintf("game: cannot grow onto own head at %v", newHead))
	}

	body := make([]Point, 0, len(s.segments)+1)
	body = append(body, newHead)
	body = append(body, s.body()...)
	return Snake{segments: body}
}

// Shift moves the snake one cell in dir: the tail drops off and a new head is prepended.
// Coordinates saturate at 0 and 255 instead of wrapping.
func (s Snake) Shift(dir Direction) Snake {
	old := s.body()
	head := old[0]

	next := head
	switch dir {
	case Up:
		if next.Y > 0 {
			next.Y--
		}
	case Down:
		if next.Y < 255 {
			next.Y++
		}
	case Left:
		if next.X > 0 {
			next.X--
		}
	case Right:
		if next.X < 255 {
			next.X++
		}
	}

	body := make([]Point, 0, len(old))
	body = append(body, next)
	body = append(body, old[:len(old)-1]...)
	return Snake{segments: body}
}

// Score is the number of segments, head included
func (s Snake) Score() int {
	return len(s.body())
}

// Occupies reports whether any segment sits on p
func (s Snake) Occupies(p Point) bool {
	for _, seg := range s.body() {
		if seg == p {
			return true
		}
	}
	return false
}

// CollidingWithSelf reports whether a non-head segment overlaps the head
func (s Snake) CollidingWithSelf() bool {
	body := s.body()
	for _, seg := range body[1:] {
		if seg == body[0] {
			return true
		}
	}
	return false
}

// Segments returns a copy of the body, head first
func (s Snake) Segments() []Point {
	body := s.body()
	out := make([]Point, len(body))
	copy(out, body)
	return out
}

func (s Snake) body() []Point {
	if len(s.segments) == 0 {
		return []Point{{}}
	}
	return s.segments
}
