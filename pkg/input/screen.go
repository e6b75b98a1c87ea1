package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/trytobebee/tuisnake/pkg/game"
)

// ScreenSource serves key events from a tcell screen
type ScreenSource struct {
	*queue
	screen tcell.Screen
}

// NewScreenSource starts reading events from an initialised screen.
// The reader exits once the screen is finalised.
func NewScreenSource(screen tcell.Screen) *ScreenSource {
	s := &ScreenSource{queue: newQueue(), screen: screen}

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			key, ok := ev.(*tcell.EventKey)
			if !ok {
				continue
			}
			if gev, ok := ParseScreenKey(key); ok {
				if !s.push(gev) {
					return
				}
			}
		}
	}()

	return s
}

// Stop stops forwarding events
func (s *ScreenSource) Stop() {
	s.close()
}

// ParseScreenKey is ParseKey for tcell key events
func ParseScreenKey(ev *tcell.EventKey) (game.Event, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.EventUp, true
	case tcell.KeyDown:
		return game.EventDown, true
	case tcell.KeyLeft:
		return game.EventLeft, true
	case tcell.KeyRight:
		return game.EventRight, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.EventQuit, true
	case tcell.KeyRune:
		return parseRune(ev.Rune())
	}
	return game.EventNone, false
}
