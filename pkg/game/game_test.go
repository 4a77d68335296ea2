package game

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/KRussellSmith/malthusian-wetdream/pkg/config"
)

func testSettings(size int) config.Settings {
	s := config.DefaultSettings()
	s.Size = size
	return s
}

func newTestGame(size int, store ScoreStore) *Game {
	return NewGame(testSettings(size), store, rand.New(rand.NewSource(1)))
}

type failingStore struct{}

func (failingStore) Get(string) (int, bool, error)  { return 0, false, errors.New("boom") }
func (failingStore) Set(string, int) error          { return errors.New("boom") }
func (failingStore) Raise(string, int) (int, error) { return 0, errors.New("boom") }

func TestNewGame(t *testing.T) {
	store := NewMemoryStore()
	store.Set(config.StorageKey, 7)

	g := newTestGame(10, store)

	if g.Snake().Len() != 1 || g.Snake().Head() != (Point{0, 0}) {
		t.Errorf("Expected single-cell snake at origin, got %v", g.Snake().Cells())
	}
	if g.Snake().Direction() != Right {
		t.Errorf("Expected initial direction right, got %v", g.Snake().Direction())
	}
	if g.Score() != 0 {
		t.Errorf("Expected score 0, got %d", g.Score())
	}
	if g.HighScore() != 7 {
		t.Errorf("Expected stored high score 7, got %d", g.HighScore())
	}
	if g.Over() {
		t.Error("New game should be running")
	}
	if !g.FoodAllowed(g.Food()) {
		t.Errorf("Initial food %v shares a row or column with the snake", g.Food())
	}
}

func TestNewGameStoreFailure(t *testing.T) {
	g := newTestGame(10, failingStore{})
	if g.HighScore() != 0 {
		t.Errorf("Unreadable store should give high score 0, got %d", g.HighScore())
	}
}

func TestThreeTicksNoFood(t *testing.T) {
	g := newTestGame(10, nil)
	g.food = Point{9, 9}

	for i := 0; i < 3; i++ {
		g.Update()
	}

	if g.Snake().Head() != (Point{3, 0}) {
		t.Errorf("Expected head at (3,0), got %v", g.Snake().Head())
	}
	if g.Snake().Len() != 1 {
		t.Errorf("Expected length 1, got %d", g.Snake().Len())
	}
}

func TestEatFood(t *testing.T) {
	g := newTestGame(10, nil)
	g.snake = snakeOf(Right, Point{5, 5}, Point{4, 5}, Point{3, 5})
	g.food = Point{6, 5}

	// Food is eaten on the tick after the head lands on it, so the scenario
	// "head (5,5) right, food (6,5) -> new head (6,5)" takes two ticks here and
	// leaves the head on (7,5) with (6,5) as the first body cell.

	// Head reaches the food
	g.Update()
	if g.Snake().Head() != (Point{6, 5}) || g.Snake().Len() != 3 || g.Score() != 0 {
		t.Fatalf("Expected head on food without eating yet, got head=%v len=%d score=%d",
			g.Snake().Head(), g.Snake().Len(), g.Score())
	}

	// Head on food: grow and score
	g.Update()
	if g.Snake().Len() != 4 {
		t.Errorf("Expected length 4, got %d", g.Snake().Len())
	}
	if g.Score() != 1 {
		t.Errorf("Expected score 1, got %d", g.Score())
	}
	cells := g.Snake().Cells()
	if cells[1] != (Point{6, 5}) {
		t.Errorf("Eaten cell should stay in the body, got %v", cells)
	}
	if g.Food() == (Point{6, 5}) {
		t.Error("Food should respawn after being eaten")
	}
}

func TestHighScorePersisted(t *testing.T) {
	store := NewMemoryStore()
	store.Set(config.StorageKey, 2)
	g := newTestGame(10, store)

	feed := func() {
		g.food = g.Snake().Head()
		g.Update()
	}

	feed()
	if v, _, _ := store.Get(config.StorageKey); v != 2 || g.HighScore() != 2 {
		t.Errorf("Score 1 must not touch high score 2, got stored=%d high=%d", v, g.HighScore())
	}
	feed()
	if v, _, _ := store.Get(config.StorageKey); v != 2 || g.HighScore() != 2 {
		t.Errorf("Score equal to high score keeps it, got stored=%d high=%d", v, g.HighScore())
	}
	feed()
	if v, _, _ := store.Get(config.StorageKey); v != 3 || g.HighScore() != 3 {
		t.Errorf("Expected high score 3 persisted, got stored=%d high=%d", v, g.HighScore())
	}
}

func TestHighScoreOverlappingSessions(t *testing.T) {
	store := NewMemoryStore()
	a := newTestGame(10, store)
	b := newTestGame(10, store) // loaded before a scored

	for i := 0; i < 3; i++ {
		a.food = a.Snake().Head()
		a.Update()
	}
	if v, _, _ := store.Get(config.StorageKey); v != 3 {
		t.Fatalf("Expected stored high score 3, got %d", v)
	}

	b.food = b.Snake().Head()
	b.Update()
	if v, _, _ := store.Get(config.StorageKey); v != 3 {
		t.Errorf("Stored high score decreased from 3 to %d", v)
	}
	if b.HighScore() != 3 {
		t.Errorf("Expected session to pick up stored high score 3, got %d", b.HighScore())
	}
	if b.Score() != 1 {
		t.Errorf("Expected score 1, got %d", b.Score())
	}
}

func TestMemoryStoreRaise(t *testing.T) {
	store := NewMemoryStore()
	if v, err := store.Raise("k", 4); err != nil || v != 4 {
		t.Errorf("Raise on missing key = %d, %v; want 4", v, err)
	}
	if v, err := store.Raise("k", 2); err != nil || v != 4 {
		t.Errorf("Raise to lower value = %d, %v; want 4", v, err)
	}
	if v, err := store.Raise("k", 9); err != nil || v != 9 {
		t.Errorf("Raise to higher value = %d, %v; want 9", v, err)
	}
}

func TestHighScoreStoreFailureIsSilent(t *testing.T) {
	g := newTestGame(10, failingStore{})
	g.food = g.Snake().Head()
	g.Update()
	if g.Score() != 1 || g.HighScore() != 1 {
		t.Errorf("Store errors must not affect play, got score=%d high=%d", g.Score(), g.HighScore())
	}
}

func TestOverOutOfBounds(t *testing.T) {
	g := newTestGame(10, nil)
	g.food = Point{9, 9}
	g.OnDirection(Up)
	g.Update()
	if !g.Over() {
		t.Errorf("Head at %v should be out of bounds", g.Snake().Head())
	}
}

func TestOverSelfCollision(t *testing.T) {
	g := newTestGame(10, nil)
	g.food = Point{9, 9}
	g.snake = snakeOf(Left, Point{2, 2}, Point{3, 2}, Point{3, 3}, Point{2, 3}, Point{1, 3})
	if g.Over() {
		t.Fatal("Snake should start clear of itself")
	}

	g.OnDirection(Down)
	g.Update()
	if !g.Over() {
		t.Errorf("Expected self collision, body %v", g.Snake().Cells())
	}
}

func TestOnDirectionInertWhenOver(t *testing.T) {
	g := newTestGame(10, nil)
	g.snake = snakeOf(Left, Point{-1, 0})
	if !g.Over() {
		t.Fatal("Expected game over")
	}
	if g.OnDirection(Down) {
		t.Error("Turn should be rejected once over")
	}
	if g.Snake().Direction() != Left {
		t.Errorf("Direction changed after game over: %v", g.Snake().Direction())
	}
}

func TestLengthNeverBelowOne(t *testing.T) {
	g := NewGame(testSettings(10), nil, rand.New(rand.NewSource(42)))
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 500 && !g.Over(); i++ {
		g.OnDirection(Directions[r.Intn(len(Directions))])
		g.Update()
		if g.Snake().Len() < 1 {
			t.Fatalf("Snake length dropped to %d at tick %d", g.Snake().Len(), i)
		}
	}
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(10, nil)
	g.food = Point{4, 4}
	state := g.GetGameStateSnapshot()

	if state.Size != 10 || state.Food != (Point{4, 4}) || state.GameOver {
		t.Errorf("Unexpected snapshot %+v", state)
	}
	state.Snake[0] = Point{8, 8}
	if g.Snake().Head() != (Point{0, 0}) {
		t.Error("Snapshot must not alias the snake")
	}

	cfg := g.GetGameConfig()
	if cfg.Size != 10 || cfg.TickMs != int(config.TickInterval.Milliseconds()) {
		t.Errorf("Unexpected config %+v", cfg)
	}
}
