package manager

import (
	"snake-classic/game/entity"
	"snake-classic/game/types"

	"golang.org/x/exp/rand"
)

// NoFood marks the absence of food; it is never on the grid.
var NoFood = types.Point{X: -1, Y: -1}

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, src rand.Source, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rand.New(src),
		collisionMgr: collisionMgr,
	}
}

// RandomCell draws a uniformly random cell.
func (fm *FoodManager) RandomCell() types.Point {
	return types.Point{
		X: fm.rng.Intn(fm.grid.Width),
		Y: fm.rng.Intn(fm.grid.Height),
	}
}

// GenerateFood resamples random cells until one is free of the snake.
// It reports false only when the snake covers the whole grid.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Point, bool) {
	if snake != nil && snake.Len() >= fm.grid.Cells() {
		return NoFood, false
	}
	for {
		food := fm.RandomCell()
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, true
		}
	}
}
