package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"

	"github.com/KRussellSmith/malthusian-wetdream/pkg/config"
)

// RecorderFactory opens a recorder for a new session
type RecorderFactory func(sessionID string) (Recorder, error)

// Option configures a Controller
type Option func(*Controller)

// WithRecorder records every tick of every session
func WithRecorder(f RecorderFactory) Option {
	return func(c *Controller) { c.newRecorder = f }
}

// Controller owns the single active session and routes player input to it.
// Restarting replaces the session rather than resetting it.
type Controller struct {
	settings config.Settings
	store    ScoreStore
	rng      *rand.Rand

	game      *Game
	sessionID string
	step      int

	newRecorder RecorderFactory
	recorder    Recorder
}

// NewController starts the first session
func NewController(settings config.Settings, store ScoreStore, rng *rand.Rand, opts ...Option) *Controller {
	if store == nil {
		store = NewMemoryStore()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	c := &Controller{
		settings: settings,
		store:    store,
		rng:      rng,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.startSession()
	return c
}

func (c *Controller) startSession() {
	c.closeRecorder()
	c.game = NewGame(c.settings, c.store, c.rng)
	c.sessionID = uuid.NewString()
	c.step = 0

	if c.newRecorder != nil {
		rec, err := c.newRecorder(c.sessionID)
		if err != nil {
			glog.Warningf("session %s will not be recorded: %v", c.sessionID, err)
		} else {
			c.recorder = rec
		}
	}
	glog.Infof("session %s started (high score %d)", c.sessionID, c.game.HighScore())
}

func (c *Controller) closeRecorder() {
	if c.recorder != nil {
		c.recorder.Close()
		c.recorder = nil
	}
}

// Game returns the active session
func (c *Controller) Game() *Game {
	return c.game
}

// SessionID identifies the active session
func (c *Controller) SessionID() string {
	return c.sessionID
}

// Update runs one logic tick on the active session
func (c *Controller) Update() {
	c.game.Update()
	c.step++
	if c.recorder != nil {
		c.recorder.RecordStep(StepRecord{
			SessionID: c.sessionID,
			Step:      c.step,
			Time:      time.Now(),
			State:     c.game.GetGameStateSnapshot(),
		})
	}
	if c.game.Over() {
		glog.Infof("session %s over: score %d, high score %d", c.sessionID, c.game.Score(), c.game.HighScore())
	}
}

// Over reports whether the active session has ended
func (c *Controller) Over() bool {
	return c.game.Over()
}

// Turn requests a direction change
func (c *Controller) Turn(d Point) bool {
	return c.game.OnDirection(d)
}

// Swipe maps a gesture delta to its dominant axis and turns
func (c *Controller) Swipe(dx, dy float64) bool {
	d, ok := SwipeDirection(dx, dy)
	if !ok {
		return false
	}
	return c.Turn(d)
}

// Tap restarts with a brand-new session, but only once the current one is over.
func (c *Controller) Tap() bool {
	if !c.game.Over() {
		return false
	}
	c.startSession()
	return true
}

// Close releases the active recorder
func (c *Controller) Close() {
	c.closeRecorder()
}

// SwipeDirection picks left/right when the horizontal component dominates,
// up/down otherwise. A zero delta carries no direction.
func SwipeDirection(dx, dy float64) (Point, bool) {
	if dx == 0 && dy == 0 || math.IsNaN(dx) || math.IsNaN(dy) {
		return Point{}, false
	}
	if math.Abs(dx) > math.Abs(dy) {
		if dx < 0 {
			return Left, true
		}
		return Right, true
	}
	if dy < 0 {
		return Up, true
	}
	return Down, true
}
