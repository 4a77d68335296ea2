package config

import (
	"errors"
	"fmt"
	"time"
)

// Board settings
const (
	GridSize = 30 // Cells per side
	OriginX  = 0
	OriginY  = 0
)

// Timing settings
const (
	TickInterval  = 100 * time.Millisecond // One logic step
	FrameInterval = 16 * time.Millisecond  // Host frame cadence (~60 FPS)
	ReplayFrame   = 100 * time.Millisecond // Fixed 10fps playback
)

// Persistence settings
const (
	StorageKey   = "KRS-snake-score"
	DatabasePath = "data/game.db"
	RecordDir    = "records"
)

// Colors used by the shared draw routine
const (
	ColorSnake  = "#80F080"
	ColorFood   = "#20C8F0"
	ColorBorder = "#F08080"
	ColorText   = "#20C8F0"
	BorderWidth = 2
)

// Characters for terminal rendering
const (
	CharEmpty = "  " // Two spaces to match emoji width
	CharWall  = "⬜"
	CharBody  = "🟩"
	CharFood  = "🔵"
)

// ErrInvalidSettings is returned by Settings.Validate.
var ErrInvalidSettings = errors.New("invalid settings")

// Point is a plain cell coordinate used for configuration only.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Settings is fixed for the lifetime of a session.
type Settings struct {
	Size   int           `json:"size"`
	Tick   time.Duration `json:"tick"`
	Origin Point         `json:"origin"`
}

// DefaultSettings returns the stock 30x30 board at 10 ticks per second.
func DefaultSettings() Settings {
	return Settings{
		Size:   GridSize,
		Tick:   TickInterval,
		Origin: Point{X: OriginX, Y: OriginY},
	}
}

// Validate checks that the board is non-empty, the tick positive and the origin on the board.
func (s Settings) Validate() error {
	if s.Size <= 0 {
		return fmt.Errorf("%w: size %d must be positive", ErrInvalidSettings, s.Size)
	}
	if s.Tick <= 0 {
		return fmt.Errorf("%w: tick %v must be positive", ErrInvalidSettings, s.Tick)
	}
	if s.Origin.X < 0 || s.Origin.Y < 0 || s.Origin.X >= s.Size || s.Origin.Y >= s.Size {
		return fmt.Errorf("%w: origin (%d,%d) outside %dx%d board",
			ErrInvalidSettings, s.Origin.X, s.Origin.Y, s.Size, s.Size)
	}
	return nil
}
