package manager

import "github.com/golang/glog"

// HighScoreStore persists the best score across sessions.
type HighScoreStore interface {
	LoadHighScore() int
	SaveHighScore(score int) error
}

// StateManager tracks the running score and the persisted high score.
type StateManager struct {
	store     HighScoreStore
	score     int
	highScore int
}

func NewStateManager(store HighScoreStore) *StateManager {
	sm := &StateManager{store: store}
	if store != nil {
		sm.highScore = store.LoadHighScore()
	}
	if sm.highScore < 0 {
		sm.highScore = 0
	}
	return sm
}

func (sm *StateManager) ResetScore() {
	sm.score = 0
}

// AddPoint increments the score and reports whether it set a new high score.
// A new high score is persisted immediately; a failed write is logged and
// the in-memory value still advances.
func (sm *StateManager) AddPoint() bool {
	sm.score++
	if sm.score <= sm.highScore {
		return false
	}
	sm.highScore = sm.score
	if sm.store != nil {
		if err := sm.store.SaveHighScore(sm.highScore); err != nil {
			glog.Warningf("saving high score %d: %v", sm.highScore, err)
		}
	}
	return true
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}
