package input

import (
	"fmt"
	"sync"

	"github.com/eiannone/keyboard"

	"github.com/trytobebee/tuisnake/pkg/game"
)

// KeyInput represents a keyboard input event
type KeyInput struct {
	Char rune
	Key  keyboard.Key
}

// KeyboardSource reads raw keys with eiannone/keyboard and serves them through Poll
type KeyboardSource struct {
	*queue
	stopOnce sync.Once
}

// NewKeyboardSource creates a new keyboard input source
func NewKeyboardSource() *KeyboardSource {
	return &KeyboardSource{queue: newQueue()}
}

// Start puts the terminal in raw mode and begins listening for keys
func (h *KeyboardSource) Start() error {
	if err := keyboard.Open(); err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}

	go func() {
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				h.fail(err)
				return
			}
			if ev, ok := ParseKey(KeyInput{Char: char, Key: key}); ok {
				if !h.push(ev) {
					return
				}
			}
		}
	}()

	return nil
}

// Stop restores the terminal (call on exit)
func (h *KeyboardSource) Stop() {
	h.stopOnce.Do(func() {
		h.close()
		keyboard.Close()
	})
}

// ParseKey maps arrows, WASD and HJKL to directions and q, Esc, Ctrl-C to quit
func ParseKey(in KeyInput) (game.Event, bool) {
	// Handle arrow keys
	switch in.Key {
	case keyboard.KeyArrowUp:
		return game.EventUp, true
	case keyboard.KeyArrowDown:
		return game.EventDown, true
	case keyboard.KeyArrowLeft:
		return game.EventLeft, true
	case keyboard.KeyArrowRight:
		return game.EventRight, true
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return game.EventQuit, true
	}

	return parseRune(in.Char)
}

// parseRune handles the letter bindings shared by every backend
func parseRune(r rune) (game.Event, bool) {
	switch r {
	case 'w', 'W', 'k', 'K':
		return game.EventUp, true
	case 's', 'S', 'j', 'J':
		return game.EventDown, true
	case 'a', 'A', 'h', 'H':
		return game.EventLeft, true
	case 'd', 'D', 'l', 'L':
		return game.EventRight, true
	case 'q', 'Q':
		return game.EventQuit, true
	}
	return game.EventNone, false
}
