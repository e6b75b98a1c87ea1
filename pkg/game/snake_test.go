package game

import (
	"slices"
	"testing"
)

// longSnake is the L-shaped body used by the shift and diff tests:
//
//	s
//	s
//	s s s s
//	      s
//	      s
func longSnake() Snake {
	return NewSnakeFrom(
		Point{0, 0}, Point{0, 1}, Point{0, 2}, Point{1, 2},
		Point{2, 2}, Point{3, 2}, Point{3, 3}, Point{3, 4},
	)
}

func TestAddSegment(t *testing.T) {
	grown := NewSnake().AddSegment(Point{X: 0, Y: 1})

	want := []Point{{0, 1}, {0, 0}}
	if got := grown.Segments(); !slices.Equal(got, want) {
		t.Errorf("AddSegment: expected %v, got %v", want, got)
	}

	moved := grown.Shift(Right)
	want = []Point{{1, 1}, {0, 1}}
	if got := moved.Segments(); !slices.Equal(got, want) {
		t.Errorf("Shift(Right) after AddSegment: expected %v, got %v", want, got)
	}
}

func TestAddSegmentOntoHeadPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("AddSegment onto the head should panic")
		}
	}()

	NewSnake().AddSegment(Point{X: 0, Y: 0})
}

func TestAddSegmentGrowsByOne(t *testing.T) {
	s := longSnake()
	grown := s.AddSegment(Point{X: 1, Y: 0})

	if grown.Score() != s.Score()+1 {
		t.Errorf("Expected length %d, got %d", s.Score()+1, grown.Score())
	}
	if grown.Head() != (Point{X: 1, Y: 0}) {
		t.Errorf("Expected new head (1,0), got %v", grown.Head())
	}
}

func TestShift(t *testing.T) {
	// s s
	// s
	// s s s s
	//       s
	want := []Point{
		{1, 0}, {0, 0}, {0, 1}, {0, 2},
		{1, 2}, {2, 2}, {3, 2}, {3, 3},
	}

	if got := longSnake().Shift(Right).Segments(); !slices.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestShiftKeepsBodyOrder(t *testing.T) {
	s := NewSnakeFrom(Point{5, 5}, Point{5, 6}, Point{6, 6}, Point{7, 6})

	tests := []struct {
		dir  Direction
		head Point
	}{
		{Up, Point{5, 4}},
		{Down, Point{5, 6}},
		{Left, Point{4, 5}},
		{Right, Point{6, 5}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			moved := s.Shift(tc.dir)
			if moved.Score() != s.Score() {
				t.Fatalf("Length changed from %d to %d", s.Score(), moved.Score())
			}
			if moved.Head() != tc.head {
				t.Errorf("Expected head %v, got %v", tc.head, moved.Head())
			}

			old, got := s.Segments(), moved.Segments()
			for i := 1; i < len(got); i++ {
				if got[i] != old[i-1] {
					t.Errorf("Segment %d: expected %v, got %v", i, old[i-1], got[i])
				}
			}
		})
	}
}

func TestShiftSaturatesAtZero(t *testing.T) {
	s := NewSnake()

	if head := s.Shift(Up).Head(); head != (Point{0, 0}) {
		t.Errorf("Shift(Up) at y=0 should stay at (0,0), got %v", head)
	}
	if head := s.Shift(Left).Head(); head != (Point{0, 0}) {
		t.Errorf("Shift(Left) at x=0 should stay at (0,0), got %v", head)
	}
}

func TestShiftLeavesReceiverUnchanged(t *testing.T) {
	s := longSnake()
	before := s.Segments()

	s.Shift(Down)
	s.AddSegment(Point{X: 9, Y: 9})

	if got := s.Segments(); !slices.Equal(got, before) {
		t.Errorf("Receiver mutated: expected %v, got %v", before, got)
	}
}

func TestSegmentsReturnsCopy(t *testing.T) {
	s := longSnake()
	segs := s.Segments()
	segs[0] = Point{X: 99, Y: 99}

	if s.Head() != (Point{0, 0}) {
		t.Errorf("Mutating Segments() leaked into the snake: head is %v", s.Head())
	}
}

func TestCollidingWithSelf(t *testing.T) {
	tests := []struct {
		name  string
		snake Snake
		want  bool
	}{
		{"single segment", NewSnake(), false},
		{"distinct segments", longSnake(), false},
		{"head on tail", NewSnakeFrom(Point{1, 1}, Point{1, 2}, Point{2, 2}, Point{2, 1}, Point{1, 1}), true},
		{"head on neck", NewSnakeFrom(Point{1, 1}, Point{1, 1}), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.snake.CollidingWithSelf(); got != tc.want {
				t.Errorf("Expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestOccupies(t *testing.T) {
	s := longSnake()

	for _, p := range s.Segments() {
		if !s.Occupies(p) {
			t.Errorf("Snake should occupy its own segment %v", p)
		}
	}
	if s.Occupies(Point{X: 5, Y: 5}) {
		t.Error("Snake should not occupy (5,5)")
	}
}

func TestScore(t *testing.T) {
	if got := NewSnake().Score(); got != 1 {
		t.Errorf("Expected score 1 for a new snake, got %d", got)
	}
	if got := longSnake().Score(); got != 8 {
		t.Errorf("Expected score 8, got %d", got)
	}
}

func TestZeroValueSnake(t *testing.T) {
	var s Snake

	if s.Head() != (Point{}) {
		t.Errorf("Zero snake head should be the origin, got %v", s.Head())
	}
	if s.Score() != 1 {
		t.Errorf("Zero snake should count as one segment, got %d", s.Score())
	}
	if head := s.Shift(Down).Head(); head != (Point{0, 1}) {
		t.Errorf("Zero snake should shift like NewSnake, got %v", head)
	}
}

func TestNewSnakeFromEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewSnakeFrom() with no segments should panic")
		}
	}()

	NewSnakeFrom()
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{Up: Down, Down: Up, Left: Right, Right: Left}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite(): expected %v, got %v", d, want, got)
		}
	}
}
