package game

import (
	"math/rand"
	"time"

	"github.com/golang/glog"

	"github.com/KRussellSmith/malthusian-wetdream/pkg/config"
)

// Game is one session: from start or restart until the snake dies
type Game struct {
	snake     *Snake
	food      Point
	score     int
	highScore int

	size     int
	settings config.Settings
	store    ScoreStore
	key      string
	rng      *rand.Rand
}

// NewGame creates a new game instance. A nil store keeps the high score in memory only.
func NewGame(settings config.Settings, store ScoreStore, rng *rand.Rand) *Game {
	if store == nil {
		store = NewMemoryStore()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Game{
		snake:    NewSnake(fromConfig(settings.Origin)),
		size:     settings.Size,
		settings: settings,
		store:    store,
		key:      config.StorageKey,
		rng:      rng,
	}
	g.SpawnFood()
	g.highScore = g.loadHighScore()
	return g
}

func (g *Game) loadHighScore() int {
	v, ok, err := g.store.Get(g.key)
	if err != nil {
		glog.Warningf("high score unavailable, starting from 0: %v", err)
		return 0
	}
	if !ok {
		return 0
	}
	return v
}

// Update advances the session by one tick: eat and grow, or move
func (g *Game) Update() {
	if g.snake.Head() == g.food {
		g.snake.Grow()
		g.SpawnFood()
		g.score++
		if g.score >= g.highScore {
			g.highScore = g.score
			// Other sessions may share the store and have raised it since NewGame
			stored, err := g.store.Raise(g.key, g.score)
			if err != nil {
				glog.Warningf("failed to persist high score %d: %v", g.score, err)
			} else if stored > g.highScore {
				g.highScore = stored
			}
		}
		glog.V(2).Infof("ate food: score=%d length=%d next food=%v", g.score, g.snake.Len(), g.food)
		return
	}
	g.snake.Move()
}

// Over reports whether the snake left the board or ran into itself
func (g *Game) Over() bool {
	return g.snake.OutOfBounds(g.size, g.size) || g.snake.TouchingSelf()
}

// OnDirection forwards a direction change to the snake. Inert once the game is over.
func (g *Game) OnDirection(d Point) bool {
	if g.Over() {
		return false
	}
	return g.snake.Turn(d)
}

// Snake returns the live snake
func (g *Game) Snake() *Snake { return g.snake }

// Food returns the food cell
func (g *Game) Food() Point { return g.food }

// Score is the number of foods eaten this session
func (g *Game) Score() int { return g.score }

// HighScore is the best score known to this session
func (g *Game) HighScore() int { return g.highScore }

// Size is the number of cells per board side
func (g *Game) Size() int { return g.size }

// Settings returns the settings the session was created with
func (g *Game) Settings() config.Settings { return g.settings }

// GetGameStateSnapshot returns a copy of the current game state for serialization
func (g *Game) GetGameStateSnapshot() GameState {
	return GameState{
		Snake:     g.snake.Cells(),
		Direction: g.snake.Direction(),
		Food:      g.food,
		Score:     g.score,
		HighScore: g.highScore,
		Size:      g.size,
		GameOver:  g.Over(),
	}
}

// GetGameConfig returns the current game configuration
func (g *Game) GetGameConfig() GameConfig {
	return GameConfig{
		Size:   g.size,
		TickMs: int(g.settings.Tick.Milliseconds()),
	}
}
