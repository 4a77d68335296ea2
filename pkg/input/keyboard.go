package input

import (
	"github.com/eiannone/keyboard"

	"github.com/KRussellSmith/malthusian-wetdream/pkg/game"
)

// Kind classifies an input event
type Kind int

const (
	KindNone Kind = iota
	KindDirection
	KindTap
	KindQuit
)

// Event is a logical player input, independent of the device
type Event struct {
	Kind Kind
	Dir  game.Point
}

// Source produces player input events
type Source interface {
	Start() error
	Stop()
	Events() <-chan Event
}

// KeyboardHandler handles keyboard input
type KeyboardHandler struct {
	inputChan chan Event
	done      chan struct{}
}

// NewKeyboardHandler creates a new keyboard input handler
func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{
		inputChan: make(chan Event),
		done:      make(chan struct{}),
	}
}

// Start begins listening for keyboard input
func (h *KeyboardHandler) Start() error {
	if err := keyboard.Open(); err != nil {
		return err
	}

	go func() {
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			ev := ParseKey(char, key)
			if ev.Kind == KindNone {
				continue
			}
			select {
			case h.inputChan <- ev:
			case <-h.done:
				return
			}
		}
	}()

	return nil
}

// Stop stops the keyboard handler
func (h *KeyboardHandler) Stop() {
	close(h.done)
	keyboard.Close()
}

// Events returns the input channel
func (h *KeyboardHandler) Events() <-chan Event {
	return h.inputChan
}

// ParseKey maps arrows/WASD to directions, R/Space/Enter to tap and Q/Esc/Ctrl-C to quit
func ParseKey(char rune, key keyboard.Key) Event {
	switch key {
	case keyboard.KeyArrowUp:
		return Event{Kind: KindDirection, Dir: game.Up}
	case keyboard.KeyArrowDown:
		return Event{Kind: KindDirection, Dir: game.Down}
	case keyboard.KeyArrowLeft:
		return Event{Kind: KindDirection, Dir: game.Left}
	case keyboard.KeyArrowRight:
		return Event{Kind: KindDirection, Dir: game.Right}
	case keyboard.KeySpace, keyboard.KeyEnter:
		return Event{Kind: KindTap}
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return Event{Kind: KindQuit}
	}
	return parseChar(char)
}

func parseChar(char rune) Event {
	switch char {
	case 'w', 'W':
		return Event{Kind: KindDirection, Dir: game.Up}
	case 's', 'S':
		return Event{Kind: KindDirection, Dir: game.Down}
	case 'a', 'A':
		return Event{Kind: KindDirection, Dir: game.Left}
	case 'd', 'D':
		return Event{Kind: KindDirection, Dir: game.Right}
	case 'r', 'R', ' ':
		return Event{Kind: KindTap}
	case 'q', 'Q':
		return Event{Kind: KindQuit}
	}
	return Event{}
}
