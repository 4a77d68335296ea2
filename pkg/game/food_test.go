package game

import (
	"math/rand"
	"testing"
)

func TestSpawnFoodAvoidsRowsAndColumns(t *testing.T) {
	g := newTestGame(10, nil)
	g.snake = snakeOf(Right, Point{5, 5}, Point{4, 5}, Point{3, 5}, Point{3, 4}, Point{3, 3})

	for seed := int64(0); seed < 200; seed++ {
		g.rng = rand.New(rand.NewSource(seed))
		if !g.SpawnFood() {
			t.Fatalf("seed %d: spawn skipped on a mostly empty board", seed)
		}
		f := g.Food()
		if f.X < 0 || f.Y < 0 || f.X >= 10 || f.Y >= 10 {
			t.Fatalf("seed %d: food %v off the board", seed, f)
		}
		for _, p := range g.Snake().Cells() {
			if f.X == p.X || f.Y == p.Y {
				t.Fatalf("seed %d: food %v shares a row or column with %v", seed, f, p)
			}
		}
	}
}

func TestSpawnFoodFullBoard(t *testing.T) {
	g := newTestGame(2, nil)
	g.snake = snakeOf(Up, Point{0, 0}, Point{0, 1}, Point{1, 1}, Point{1, 0})
	g.food = Point{1, 1}

	if g.SpawnFood() {
		t.Error("Spawn on a full board should be skipped")
	}
	if g.Food() != (Point{1, 1}) {
		t.Errorf("Food should stay at (1,1), got %v", g.Food())
	}
}

func TestSpawnFoodNoFreeRow(t *testing.T) {
	// A vertical snake covering every row leaves no legal cell
	g := newTestGame(4, nil)
	g.snake = snakeOf(Down, Point{2, 3}, Point{2, 2}, Point{2, 1}, Point{2, 0})
	g.food = Point{0, 0}

	if g.SpawnFood() {
		t.Error("Spawn should be skipped when every row is occupied")
	}
	if g.Food() != (Point{0, 0}) {
		t.Errorf("Food should keep its old position, got %v", g.Food())
	}
}

func TestSpawnFoodUniform(t *testing.T) {
	g := newTestGame(4, nil)
	g.snake = snakeOf(Right, Point{0, 0})
	g.rng = rand.New(rand.NewSource(3))

	// 3x3 legal cells
	counts := make(map[Point]int)
	const n = 9000
	for i := 0; i < n; i++ {
		g.SpawnFood()
		counts[g.Food()]++
	}
	if len(counts) != 9 {
		t.Fatalf("Expected 9 distinct cells, got %d: %v", len(counts), counts)
	}
	for p, c := range counts {
		if c < n/9/2 || c > n/9*2 {
			t.Errorf("Cell %v picked %d times, expected about %d", p, c, n/9)
		}
	}
}
