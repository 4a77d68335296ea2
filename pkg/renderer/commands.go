package renderer

// Command is one canvas call, serialised for the browser client
type Command struct {
	Op        string     `json:"op"` // "clear", "fill", "stroke" or "text"
	X         float64    `json:"x,omitempty"`
	Y         float64    `json:"y,omitempty"`
	W         float64    `json:"w,omitempty"`
	H         float64    `json:"h,omitempty"`
	LineWidth float64    `json:"lineWidth,omitempty"`
	Color     string     `json:"color,omitempty"`
	Text      string     `json:"text,omitempty"`
	Style     *TextStyle `json:"style,omitempty"`
}

// CommandList records draw calls instead of executing them
type CommandList struct {
	width, height float64
	Commands      []Command
}

// NewCommandList creates a recording surface of the given size
func NewCommandList(width, height float64) *CommandList {
	return &CommandList{width: width, height: height}
}

func (c *CommandList) Size() (float64, float64) {
	return c.width, c.height
}

// Resize changes the reported size. Recorded commands are kept.
func (c *CommandList) Resize(width, height float64) {
	c.width, c.height = width, height
}

// Clear drops previously recorded commands and records a clear
func (c *CommandList) Clear() {
	c.Commands = append(c.Commands[:0], Command{Op: "clear"})
}

func (c *CommandList) FillRect(x, y, w, h float64, color string) {
	c.Commands = append(c.Commands, Command{Op: "fill", X: x, Y: y, W: w, H: h, Color: color})
}

func (c *CommandList) StrokeRect(x, y, w, h, lineWidth float64, color string) {
	c.Commands = append(c.Commands, Command{Op: "stroke", X: x, Y: y, W: w, H: h, LineWidth: lineWidth, Color: color})
}

func (c *CommandList) FillText(x, y float64, text string, style TextStyle, color string) {
	st := style
	c.Commands = append(c.Commands, Command{Op: "text", X: x, Y: y, Text: text, Style: &st, Color: color})
}

// Take returns the recorded commands and starts a fresh list
func (c *CommandList) Take() []Command {
	out := c.Commands
	c.Commands = nil
	return out
}
