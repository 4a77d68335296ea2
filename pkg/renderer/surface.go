package renderer

import "strings"

// TextStyle describes how multi-line text is laid out.
// Text is always left-aligned with a top baseline.
type TextStyle struct {
	Font    string  `json:"font"`
	Size    float64 `json:"size"`
	Spacing float64 `json:"spacing"`
}

// Surface is the minimal 2D target the game draws onto
type Surface interface {
	Size() (width, height float64)
	Clear()
	FillRect(x, y, w, h float64, color string)
	StrokeRect(x, y, w, h, lineWidth float64, color string)
	// FillText draws a single line with its top-left corner at x, y
	FillText(x, y float64, text string, style TextStyle, color string)
}

// MultilineText draws text one line at a time, each line Size+Spacing below the last
func MultilineText(s Surface, x, y float64, text string, style TextStyle, color string) {
	for i, line := range strings.Split(text, "\n") {
		s.FillText(x, y+float64(i)*(style.Size+style.Spacing), line, style, color)
	}
}
