package game

import (
	"time"

	"github.com/KRussellSmith/malthusian-wetdream/pkg/config"
)

// Point represents a coordinate on the game board, or a unit direction vector
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the cell one step from p along d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction vectors
var (
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}

	// Directions lists the four unit vectors
	Directions = []Point{Left, Right, Up, Down}

	inverse = map[Point]Point{
		Left:  Right,
		Right: Left,
		Up:    Down,
		Down:  Up,
	}

	directionNames = map[string]Point{
		"left":  Left,
		"right": Right,
		"up":    Up,
		"down":  Down,
	}
)

// Inverse returns the opposite direction. Anything that is not one of the four
// unit vectors has no inverse and yields the zero Point.
func Inverse(d Point) Point {
	return inverse[d]
}

// ParseDirection maps "left", "right", "up" or "down" to its vector
func ParseDirection(name string) (Point, bool) {
	d, ok := directionNames[name]
	return d, ok
}

func fromConfig(p config.Point) Point {
	return Point{X: p.X, Y: p.Y}
}

// GameState is a snapshot of a session for drawing, recording and client synchronization
type GameState struct {
	Snake     []Point `json:"snake"`
	Direction Point   `json:"direction"`
	Food      Point   `json:"food"`
	Score     int     `json:"score"`
	HighScore int     `json:"highScore"`
	Size      int     `json:"size"`
	GameOver  bool    `json:"gameOver"`
}

// GameConfig is a DTO for game settings sent to client on connect
type GameConfig struct {
	Size   int `json:"size"`
	TickMs int `json:"tickMs"`
}

// StepRecord is one logic tick as written by the recorder
type StepRecord struct {
	SessionID string    `json:"sessionId"`
	Step      int       `json:"step"`
	Time      time.Time `json:"time"`
	State     GameState `json:"state"`
}
