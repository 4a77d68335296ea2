package renderer

import (
	"fmt"
	"math"

	"github.com/KRussellSmith/malthusian-wetdream/pkg/config"
	"github.com/KRussellSmith/malthusian-wetdream/pkg/game"
)

// Layout places a square grid inside a surface
type Layout struct {
	Width    float64
	Height   float64
	GridSize int
	CellSize float64

	// HUD overrides the score font; nil derives it from Width
	HUD *TextStyle
}

// NewLayout fits gridSize cells per side into the smaller surface dimension
func NewLayout(width, height float64, gridSize int) Layout {
	l := Layout{Width: width, Height: height, GridSize: gridSize}
	if gridSize > 0 {
		l.CellSize = math.Min(width, height) / float64(gridSize)
	}
	return l
}

// Origin is the top-left pixel of the board, centred on the surface
func (l Layout) Origin() (x, y float64) {
	board := float64(l.GridSize) * l.CellSize
	return (l.Width - board) / 2, (l.Height - board) / 2
}

// HUDStyle is the score font for a surface of the given width
func HUDStyle(width float64) TextStyle {
	size := math.Floor(width / 20)
	return TextStyle{
		Font:    fmt.Sprintf("bold %dpx monospace", int(size)),
		Size:    size,
		Spacing: width / 40,
	}
}

func (l Layout) hudStyle() TextStyle {
	if l.HUD != nil {
		return *l.HUD
	}
	return HUDStyle(l.Width)
}

// Draw renders a snapshot. It only reads state.
func Draw(s Surface, l Layout, state game.GameState) {
	s.Clear()

	ox, oy := l.Origin()
	cell := l.CellSize
	for _, p := range state.Snake {
		s.FillRect(ox+float64(p.X)*cell, oy+float64(p.Y)*cell, cell, cell, config.ColorSnake)
	}
	s.FillRect(ox+float64(state.Food.X)*cell, oy+float64(state.Food.Y)*cell, cell, cell, config.ColorFood)

	board := float64(l.GridSize) * cell
	s.StrokeRect(ox, oy, board, board, config.BorderWidth, config.ColorBorder)

	MultilineText(s, l.Width*0.025, l.Height*0.025,
		fmt.Sprintf("%d\n%d", state.Score, state.HighScore),
		l.hudStyle(), config.ColorText)
}
