package renderer

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/KRussellSmith/malthusian-wetdream/pkg/config"
	"github.com/KRussellSmith/malthusian-wetdream/pkg/game"
)

// TerminalRenderer handles terminal-based rendering. One surface unit is one
// board cell, printed two columns wide.
type TerminalRenderer struct {
	cols, rows int
	board      [][]string
	buffer     strings.Builder
	out        io.Writer
	layout     Layout
}

var glyphs = map[string]string{
	config.ColorSnake:  config.CharBody,
	config.ColorFood:   config.CharFood,
	config.ColorBorder: config.CharWall,
}

// TerminalLayout is the board placement used by terminal surfaces:
// unit cells with room above the board for the score lines.
func TerminalLayout(gridSize int) Layout {
	return Layout{
		Width:    float64(gridSize + 4),
		Height:   float64(gridSize + 8),
		GridSize: gridSize,
		CellSize: 1,
		HUD:      &TextStyle{Size: 1, Spacing: 1},
	}
}

// NewTerminalRenderer creates a new terminal renderer for a gridSize board writing to stdout
func NewTerminalRenderer(gridSize int) *TerminalRenderer {
	return NewTerminalRendererTo(os.Stdout, gridSize)
}

// NewTerminalRendererTo is NewTerminalRenderer with an explicit writer
func NewTerminalRendererTo(out io.Writer, gridSize int) *TerminalRenderer {
	l := TerminalLayout(gridSize)
	cols, rows := int(l.Width), int(l.Height)

	// Pre-allocate board to reduce GC pressure
	board := make([][]string, rows)
	for i := range board {
		board[i] = make([]string, cols)
	}

	r := &TerminalRenderer{
		cols:   cols,
		rows:   rows,
		board:  board,
		out:    out,
		layout: l,
	}
	r.Clear()
	return r
}

// Layout returns the layout this renderer was sized for
func (r *TerminalRenderer) Layout() Layout {
	return r.layout
}

func (r *TerminalRenderer) Size() (float64, float64) {
	return float64(r.cols), float64(r.rows)
}

func (r *TerminalRenderer) Clear() {
	for y := range r.board {
		for x := range r.board[y] {
			r.board[y][x] = config.CharEmpty
		}
	}
}

func (r *TerminalRenderer) set(x, y int, s string) {
	if x < 0 || y < 0 || x >= r.cols || y >= r.rows {
		return
	}
	r.board[y][x] = s
}

func (r *TerminalRenderer) FillRect(x, y, w, h float64, color string) {
	g := glyph(color)
	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	x1, y1 := int(math.Ceil(x+w)), int(math.Ceil(y+h))
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			r.set(cx, cy, g)
		}
	}
}

// StrokeRect draws a one-cell ring just outside the rectangle, so a stroked
// board never hides the cells inside it. lineWidth is ignored.
func (r *TerminalRenderer) StrokeRect(x, y, w, h, lineWidth float64, color string) {
	g := glyph(color)
	x0, y0 := int(math.Floor(x))-1, int(math.Floor(y))-1
	x1, y1 := int(math.Ceil(x+w)), int(math.Ceil(y+h))
	for cx := x0; cx <= x1; cx++ {
		r.set(cx, y0, g)
		r.set(cx, y1, g)
	}
	for cy := y0; cy <= y1; cy++ {
		r.set(x0, cy, g)
		r.set(x1, cy, g)
	}
}

// FillText packs two characters into each cell
func (r *TerminalRenderer) FillText(x, y float64, text string, style TextStyle, color string) {
	cx, cy := int(math.Floor(x)), int(math.Floor(y))
	runes := []rune(text)
	for i := 0; i < len(runes); i += 2 {
		pair := string(runes[i])
		if i+1 < len(runes) {
			pair += string(runes[i+1])
		} else {
			pair += " "
		}
		r.set(cx+i/2, cy, pair)
	}
}

// Render draws the state and writes the frame
func (r *TerminalRenderer) Render(state game.GameState) error {
	Draw(r, r.layout, state)
	return r.Flush(state.GameOver)
}

// Flush writes the current board to the terminal
func (r *TerminalRenderer) Flush(gameOver bool) error {
	r.buffer.Reset()
	r.buffer.WriteString("\033[H\033[2J\033[3J")
	r.buffer.WriteString("\n  🐍 SNAKE 🐍\n\n")

	for _, row := range r.board {
		r.buffer.WriteString("  ")
		for _, cell := range row {
			r.buffer.WriteString(cell)
		}
		r.buffer.WriteString("\n")
	}

	r.buffer.WriteString("\n  Use WASD or Arrow keys to move, Q to quit\n")
	if gameOver {
		r.buffer.WriteString("\n  💀 GAME OVER! Press R or Space to restart\n")
	}

	_, err := io.WriteString(r.out, r.buffer.String())
	return err
}

// Cell returns what is drawn at x, y, or "" off the surface
func (r *TerminalRenderer) Cell(x, y int) string {
	if x < 0 || y < 0 || x >= r.cols || y >= r.rows {
		return ""
	}
	return r.board[y][x]
}

// Frame returns the board as plain text, one line per row, without escapes
func (r *TerminalRenderer) Frame() string {
	var b strings.Builder
	for _, row := range r.board {
		for _, cell := range row {
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// ShowCursor shows the cursor (call on exit)
func (r *TerminalRenderer) ShowCursor() {
	fmt.Fprint(r.out, "\033[?25h")
}

// HideCursor hides the cursor (call on start)
func (r *TerminalRenderer) HideCursor() {
	fmt.Fprint(r.out, "\033[?25l")
}

func glyph(color string) string {
	if g, ok := glyphs[color]; ok {
		return g
	}
	return "██"
}
