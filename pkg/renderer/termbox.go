package renderer

import (
	"math"

	termbox "github.com/nsf/termbox-go"

	"github.com/KRussellSmith/malthusian-wetdream/pkg/config"
	"github.com/KRussellSmith/malthusian-wetdream/pkg/game"
)

var termboxColors = map[string]termbox.Attribute{
	config.ColorSnake:  termbox.ColorGreen,
	config.ColorFood:   termbox.ColorCyan,
	config.ColorBorder: termbox.ColorRed,
}

// TermboxSurface draws into the termbox back buffer. Each unit is two columns wide.
// termbox must already be initialised.
type TermboxSurface struct {
	layout Layout
}

// NewTermboxSurface creates a surface for a gridSize board
func NewTermboxSurface(gridSize int) *TermboxSurface {
	return &TermboxSurface{layout: TerminalLayout(gridSize)}
}

func (t *TermboxSurface) Layout() Layout {
	return t.layout
}

func (t *TermboxSurface) Size() (float64, float64) {
	return t.layout.Width, t.layout.Height
}

func (t *TermboxSurface) Clear() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
}

func (t *TermboxSurface) paint(x, y int, ch rune, fg, bg termbox.Attribute) {
	termbox.SetCell(2*x, y, ch, fg, bg)
	termbox.SetCell(2*x+1, y, ch, fg, bg)
}

func (t *TermboxSurface) FillRect(x, y, w, h float64, color string) {
	bg := attr(color)
	for cy := int(math.Floor(y)); cy < int(math.Ceil(y+h)); cy++ {
		for cx := int(math.Floor(x)); cx < int(math.Ceil(x+w)); cx++ {
			t.paint(cx, cy, ' ', termbox.ColorDefault, bg)
		}
	}
}

// StrokeRect rings the rectangle from outside, like TerminalRenderer
func (t *TermboxSurface) StrokeRect(x, y, w, h, lineWidth float64, color string) {
	bg := attr(color)
	x0, y0 := int(math.Floor(x))-1, int(math.Floor(y))-1
	x1, y1 := int(math.Ceil(x+w)), int(math.Ceil(y+h))
	for cx := x0; cx <= x1; cx++ {
		t.paint(cx, y0, ' ', termbox.ColorDefault, bg)
		t.paint(cx, y1, ' ', termbox.ColorDefault, bg)
	}
	for cy := y0; cy <= y1; cy++ {
		t.paint(x0, cy, ' ', termbox.ColorDefault, bg)
		t.paint(x1, cy, ' ', termbox.ColorDefault, bg)
	}
}

func (t *TermboxSurface) FillText(x, y float64, text string, style TextStyle, color string) {
	fg := attr(color) | termbox.AttrBold
	cx, cy := 2*int(math.Floor(x)), int(math.Floor(y))
	for i, ch := range []rune(text) {
		termbox.SetCell(cx+i, cy, ch, fg, termbox.ColorDefault)
	}
}

// Render draws the state and flushes the back buffer
func (t *TermboxSurface) Render(state game.GameState) error {
	Draw(t, t.layout, state)
	if state.GameOver {
		t.FillText(0, t.layout.Height-1, "GAME OVER - press R or Space to restart", TextStyle{}, config.ColorBorder)
	}
	return termbox.Flush()
}

func attr(color string) termbox.Attribute {
	if a, ok := termboxColors[color]; ok {
		return a
	}
	return termbox.ColorWhite
}
