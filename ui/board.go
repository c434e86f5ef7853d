// Package ui hosts the game: it implements game.View for a raylib window
// and a tcell terminal and owns the loop that feeds input and ticks.
package ui

import (
	"fmt"

	"snake-classic/game"
	"snake-classic/game/input"
	"snake-classic/stats"
)

var _ input.Controller = (*game.Game)(nil)

// Board collects everything the game reports so a front end can paint it
// on its own schedule.
type Board struct {
	frame     game.Frame
	status    string
	score     int
	highScore int
	speed     int
	dirty     bool
}

func (b *Board) Draw(f game.Frame) {
	b.frame = f
	b.dirty = true
}

func (b *Board) SetStatus(msg string) {
	b.status = msg
	b.dirty = true
}

func (b *Board) SetScore(score int) {
	b.score = score
	b.dirty = true
}

func (b *Board) SetHighScore(score int) {
	b.highScore = score
	b.dirty = true
}

func (b *Board) SetSpeed(level int) {
	b.speed = level
	b.dirty = true
}

func (b *Board) scoreLine() string {
	return fmt.Sprintf("Score: %d   High score: %d", b.score, b.highScore)
}

func historyLine(history *stats.GameStats) string {
	if history == nil {
		return ""
	}
	sum := history.Summary()
	return fmt.Sprintf("Games: %d   Avg: %.1f   Best: %d", sum.GamesPlayed, sum.AverageScore, sum.MaxScore)
}
