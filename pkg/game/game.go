package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"
)

// DefaultPollTimeout is the per-tick input wait
const DefaultPollTimeout = 80 * time.Millisecond

// OverReason tells why a game ended
type OverReason int

const (
	ReasonNone OverReason = iota
	ReasonQuit
	ReasonWall
	ReasonSelf
	ReasonBoardFull
)

func (r OverReason) String() string {
	switch r {
	case ReasonQuit:
		return "quit"
	case ReasonWall:
		return "hit wall"
	case ReasonSelf:
		return "hit self"
	case ReasonBoardFull:
		return "board full"
	default:
		return "running"
	}
}

// Options configures a Game
type Options struct {
	PollTimeout time.Duration
	Rand        Rand        // required; source for apple placement
	Logger      *log.Logger // optional; discards when nil
}

// Game owns the snake, the apple and the grid for one session
type Game struct {
	grid   Grid
	input  InputSource
	opts   Options
	logger *log.Logger

	snake    Snake
	apple    Apple
	dir      Direction // pending direction for the next move
	lastMove Direction // direction of the last committed move
	ticks    int
	reason   OverReason
}

// NewGame sets up the starting snake, paints it, places the first apple and draws once
func NewGame(grid Grid, input InputSource, opts Options) (*Game, error) {
	if opts.Rand == nil {
		return nil, errors.New("game: Options.Rand is required")
	}
	if opts.PollTimeout <= 0 {
		opts.PollTimeout = DefaultPollTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	g := &Game{
		grid:     grid,
		input:    input,
		opts:     opts,
		logger:   logger,
		snake:    NewSnake().AddSegment(Point{X: 0, Y: 1}).AddSegment(Point{X: 0, Y: 2}),
		dir:      Down,
		lastMove: Down,
	}

	cell := SnakeCell
	for _, p := range g.snake.Segments() {
		if err := grid.SetCell(int(p.X), int(p.Y), &cell); err != nil {
			return nil, fmt.Errorf("paint snake: %w", err)
		}
	}

	apple, err := PlaceApple(grid, g.snake, opts.Rand)
	if err != nil {
		return nil, fmt.Errorf("place first apple: %w", err)
	}
	g.apple = apple

	if err := grid.Draw(); err != nil {
		return nil, fmt.Errorf("draw: %w", err)
	}

	g.logger.Printf("game started on %dx%d grid, apple at %v", grid.Width(), grid.Height(), apple.Pos())
	return g, nil
}

// SetDirection queues dir for the next move.
// Returns false when dir would reverse the snake onto itself.
func (g *Game) SetDirection(dir Direction) bool {
	if dir == g.lastMove.Opposite() {
		return false
	}
	g.dir = dir
	return true
}

// Step advances the game by one tick given the event polled for it.
// over is true once the game has ended; err is only set on render failures.
func (g *Game) Step(ev Event) (over bool, err error) {
	if g.reason != ReasonNone {
		return true, nil
	}

	if ev == EventQuit {
		return g.end(ReasonQuit), nil
	}
	if dir, ok := ev.Direction(); ok {
		g.SetDirection(dir)
	}

	next := g.snake.Shift(g.dir)

	if reason := g.checkCollision(next); reason != ReasonNone {
		return g.end(reason), nil
	}

	boardFull := false
	if g.apple.IsEaten(next) {
		next = g.snake.AddSegment(g.apple.Pos())
		apple, err := PlaceApple(g.grid, next, g.opts.Rand)
		switch {
		case errors.Is(err, ErrNoFreeCell):
			boardFull = true
		case err != nil:
			return false, err
		default:
			g.logger.Printf("apple eaten at %v, length %d, next apple at %v",
				g.apple.Pos(), next.Score(), apple.Pos())
			g.apple = apple
		}
	}

	if err := RenderDiff(g.grid, g.snake, next); err != nil {
		return false, err
	}
	if err := g.grid.Draw(); err != nil {
		return false, fmt.Errorf("draw: %w", err)
	}

	g.snake = next
	g.lastMove = g.dir
	g.ticks++

	if boardFull {
		return g.end(ReasonBoardFull), nil
	}
	return false, nil
}

// checkCollision rejects a move that did not move the head, left the grid or bit the body
func (g *Game) checkCollision(next Snake) OverReason {
	head := next.Head()
	if head == g.snake.Head() ||
		int(head.X) >= g.grid.Width() ||
		int(head.Y) >= g.grid.Height() {
		return ReasonWall
	}
	if next.CollidingWithSelf() {
		return ReasonSelf
	}
	return ReasonNone
}

func (g *Game) end(reason OverReason) bool {
	g.reason = reason
	g.logger.Printf("game over after %d ticks: %s, score %d", g.ticks, reason, g.Score())
	return true
}

// Run polls input and steps until the game ends, ctx is cancelled or an I/O error occurs.
// The returned score is that of the last committed snake.
func (g *Game) Run(ctx context.Context) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return g.Score(), err
		}

		ev, err := g.input.Poll(ctx, g.opts.PollTimeout)
		if err != nil {
			return g.Score(), fmt.Errorf("poll input: %w", err)
		}

		over, err := g.Step(ev)
		if err != nil {
			return g.Score(), err
		}
		if over {
			return g.Score(), nil
		}
	}
}

// Score is the current snake length
func (g *Game) Score() int { return g.snake.Score() }

// Snake returns the committed snake
func (g *Game) Snake() Snake { return g.snake }

// Apple returns the current apple
func (g *Game) Apple() Apple { return g.apple }

// Direction returns the pending direction
func (g *Game) Direction() Direction { return g.dir }

// Ticks counts committed moves
func (g *Game) Ticks() int { return g.ticks }

// Reason is ReasonNone while the game is running
func (g *Game) Reason() OverReason { return g.reason }
