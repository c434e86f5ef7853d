package store

import (
	"strconv"
	"strings"

	"github.com/golang/glog"
)

// HighScoreKey is the key the high score is kept under.
const HighScoreKey = "snake_high_score"

// HighScores stores the high score as a base-10 string.
type HighScores struct {
	store Store
}

func NewHighScores(s Store) *HighScores {
	return &HighScores{store: s}
}

// LoadHighScore returns the stored high score, or 0 when it is missing or
// cannot be read.
func (h *HighScores) LoadHighScore() int {
	raw, ok, err := h.store.Get(HighScoreKey)
	if err != nil {
		glog.Warningf("loading high score: %v", err)
		return 0
	}
	if !ok {
		return 0
	}
	score, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || score < 0 {
		glog.Warningf("ignoring stored high score %q", raw)
		return 0
	}
	return score
}

func (h *HighScores) SaveHighScore(score int) error {
	return h.store.Set(HighScoreKey, strconv.Itoa(score))
}
