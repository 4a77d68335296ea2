package game

// boardFull reports whether the snake covers every cell
func (g *Game) boardFull() bool {
	return g.snake.Len() >= g.size*g.size
}

// SpawnFood moves the food to a random cell that shares neither a row nor a
// column with any part of the snake. On a full board, or when every row or
// every column is taken, the previous position is kept.
func (g *Game) SpawnFood() bool {
	if g.boardFull() {
		return false
	}

	usedCols := make([]bool, g.size)
	usedRows := make([]bool, g.size)
	for _, p := range g.snake.nodes {
		if p.X >= 0 && p.X < g.size {
			usedCols[p.X] = true
		}
		if p.Y >= 0 && p.Y < g.size {
			usedRows[p.Y] = true
		}
	}

	freeCols := freeIndexes(usedCols)
	freeRows := freeIndexes(usedRows)
	if len(freeCols) == 0 || len(freeRows) == 0 {
		return false
	}

	// Uniform over freeCols x freeRows, same as sampling the whole board until a fit
	g.food = Point{
		X: freeCols[g.rng.Intn(len(freeCols))],
		Y: freeRows[g.rng.Intn(len(freeRows))],
	}
	return true
}

// FoodAllowed reports whether p passes the row/column exclusion rule
func (g *Game) FoodAllowed(p Point) bool {
	for _, n := range g.snake.nodes {
		if p.X == n.X || p.Y == n.Y {
			return false
		}
	}
	return true
}

func freeIndexes(used []bool) []int {
	free := make([]int, 0, len(used))
	for i, u := range used {
		if !u {
			free = append(free, i)
		}
	}
	return free
}
