package input

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/trytobebee/tuisnake/pkg/game"
)

// queue hands events from a reader goroutine to the game loop
type queue struct {
	events    chan game.Event
	errs      chan error
	done      chan struct{}
	closeOnce sync.Once
}

func newQueue() *queue {
	return &queue{
		events: make(chan game.Event, 16),
		errs:   make(chan error, 1),
		done:   make(chan struct{}),
	}
}

// push delivers ev unless the queue is closed
func (q *queue) push(ev game.Event) bool {
	select {
	case q.events <- ev:
		return true
	case <-q.done:
		return false
	}
}

// fail reports a reader error once; later errors are dropped
func (q *queue) fail(err error) {
	select {
	case q.errs <- err:
	default:
	}
}

func (q *queue) close() {
	q.closeOnce.Do(func() { close(q.done) })
}

// Poll waits the full timeout so ticks stay evenly spaced.
// At most one event is taken per tick; later keys stay queued for the next ticks.
// Quit returns at once.
func (q *queue) Poll(ctx context.Context, timeout time.Duration) (game.Event, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	got := game.EventNone
	events := q.events
	for {
		select {
		case ev := <-events:
			if ev == game.EventQuit {
				return ev, nil
			}
			got = ev
			// nil channel: stop taking keys until the next Poll
			events = nil
		case err := <-q.errs:
			return game.EventNone, fmt.Errorf("read key: %w", err)
		case <-timer.C:
			return got, nil
		case <-ctx.Done():
			return game.EventNone, ctx.Err()
		}
	}
}
