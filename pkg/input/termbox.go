package input

import (
	termbox "github.com/nsf/termbox-go"

	"github.com/KRussellSmith/malthusian-wetdream/pkg/game"
)

var termboxKeys = map[termbox.Key]Event{
	termbox.KeyArrowUp:    {Kind: KindDirection, Dir: game.Up},
	termbox.KeyArrowDown:  {Kind: KindDirection, Dir: game.Down},
	termbox.KeyArrowLeft:  {Kind: KindDirection, Dir: game.Left},
	termbox.KeyArrowRight: {Kind: KindDirection, Dir: game.Right},
	termbox.KeySpace:      {Kind: KindTap},
	termbox.KeyEnter:      {Kind: KindTap},
	termbox.KeyEsc:        {Kind: KindQuit},
	termbox.KeyCtrlC:      {Kind: KindQuit},
}

// TermboxHandler reads events from termbox. It owns termbox initialisation,
// so a TermboxSurface can draw once Start has returned.
type TermboxHandler struct {
	inputChan chan Event
	done      chan struct{}
}

func NewTermboxHandler() *TermboxHandler {
	return &TermboxHandler{
		inputChan: make(chan Event),
		done:      make(chan struct{}),
	}
}

func (h *TermboxHandler) Start() error {
	if err := termbox.Init(); err != nil {
		return err
	}
	termbox.SetInputMode(termbox.InputEsc)

	go func() {
		for {
			ev := termbox.PollEvent()
			if ev.Type == termbox.EventInterrupt || ev.Type == termbox.EventError {
				return
			}
			in := ParseTermboxEvent(ev)
			if in.Kind == KindNone {
				continue
			}
			select {
			case h.inputChan <- in:
			case <-h.done:
				return
			}
		}
	}()
	return nil
}

func (h *TermboxHandler) Stop() {
	close(h.done)
	termbox.Interrupt()
	termbox.Close()
}

func (h *TermboxHandler) Events() <-chan Event {
	return h.inputChan
}

// ParseTermboxEvent maps a key event the same way ParseKey does
func ParseTermboxEvent(ev termbox.Event) Event {
	if ev.Type != termbox.EventKey {
		return Event{}
	}
	if in, ok := termboxKeys[ev.Key]; ok {
		return in
	}
	return parseChar(ev.Ch)
}
