package game

// Snake is an ordered run of cells, head at index 0
type Snake struct {
	nodes []Point
	dir   Point
}

// NewSnake creates a length-1 snake at origin heading right
func NewSnake(origin Point) *Snake {
	return &Snake{
		nodes: []Point{origin},
		dir:   Right,
	}
}

// Head returns the first cell
func (s *Snake) Head() Point {
	return s.nodes[0]
}

// Len returns the number of cells, always at least 1
func (s *Snake) Len() int {
	return len(s.nodes)
}

// Direction returns the active direction
func (s *Snake) Direction() Point {
	return s.dir
}

// Cells returns a copy of the body, head first
func (s *Snake) Cells() []Point {
	out := make([]Point, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// Move shifts every cell onto its predecessor, tail first, then advances the head.
func (s *Snake) Move() {
	for i := len(s.nodes) - 1; i >= 1; i-- {
		s.nodes[i] = s.nodes[i-1]
	}
	s.nodes[0] = s.nodes[0].Add(s.dir)
}

// Grow prepends a new head one step ahead, leaving the rest of the body in place.
func (s *Snake) Grow() {
	s.nodes = append(s.nodes, Point{})
	copy(s.nodes[1:], s.nodes[:len(s.nodes)-1])
	s.nodes[0] = s.nodes[1].Add(s.dir)
}

// Turn changes direction. A reversal is ignored unless the snake is a single cell.
// Reports whether the turn was accepted.
func (s *Snake) Turn(d Point) bool {
	if _, ok := inverse[d]; !ok {
		return false
	}
	if len(s.nodes) == 1 || d != Inverse(s.dir) {
		s.dir = d
		return true
	}
	return false
}

// TouchingSelf reports whether any two cells share coordinates
func (s *Snake) TouchingSelf() bool {
	seen := make(map[Point]struct{}, len(s.nodes))
	for _, p := range s.nodes {
		if _, ok := seen[p]; ok {
			return true
		}
		seen[p] = struct{}{}
	}
	return false
}

// OutOfBounds reports whether any cell lies outside [0,width) x [0,height)
func (s *Snake) OutOfBounds(width, height int) bool {
	for _, p := range s.nodes {
		if p.X < 0 || p.Y < 0 || p.X >= width || p.Y >= height {
			return true
		}
	}
	return false
}
