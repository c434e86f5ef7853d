// Package stats keeps the history of finished games. Old records are folded
// into aggregate records so the history stays small.
package stats

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// GroupSize is the number of records of one compression level folded into a
// single record of the next level.
const GroupSize = 100

// GameStats holds every recorded game (single or grouped).
type GameStats struct {
	Games []GameRecord
	path  string
	mutex sync.RWMutex
}

// GameRecord is a single game (CompressionIndex 0) or an aggregate of
// GamesCount games.
type GameRecord struct {
	UUID             string    `json:"uuid,omitempty"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	Score            int       `json:"score"`
	CompressionIndex int       `json:"compressionIndex"`
	GamesCount       int       `json:"gamesCount"`
	AverageScore     float64   `json:"averageScore"`
	MedianScore      float64   `json:"medianScore"`
	MaxScore         int       `json:"maxScore"`
	MinScore         int       `json:"minScore"`
	AverageDuration  float64   `json:"averageDuration"`
	MaxDuration      float64   `json:"maxDuration"`
	MinDuration      float64   `json:"minDuration"`
}

// Summary is the aggregate view shown next to the board.
type Summary struct {
	GamesPlayed     int
	AverageScore    float64
	MedianScore     float64
	MaxScore        int
	AverageDuration float64
}

// NewGameStats creates an empty history bound to path. An empty path keeps
// the history in memory only.
func NewGameStats(path string) *GameStats {
	return &GameStats{
		Games: make([]GameRecord, 0),
		path:  path,
	}
}

// Load creates a history bound to path and fills it from the file if one
// exists.
func Load(path string) (*GameStats, error) {
	s := NewGameStats(path)
	if err := s.loadFromFile(); err != nil {
		return s, err
	}
	return s, nil
}

// AddGame records a finished game. A zero startTime (the game never started
// moving) is treated as endTime.
func (s *GameStats) AddGame(score int, startTime, endTime time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if startTime.IsZero() {
		startTime = endTime
	}
	duration := endTime.Sub(startTime).Seconds()
	s.Games = append(s.Games, GameRecord{
		UUID:             uuid.New().String(),
		StartTime:        startTime,
		EndTime:          endTime,
		Score:            score,
		CompressionIndex: 0,
		GamesCount:       1,
		AverageScore:     float64(score),
		MedianScore:      float64(score),
		MaxScore:         score,
		MinScore:         score,
		AverageDuration:  duration,
		MaxDuration:      duration,
		MinDuration:      duration,
	})

	s.groupGames()
}

// groupGames folds every full group of GroupSize records of one compression
// level into one record of the next level, cascading upwards.
func (s *GameStats) groupGames() {
	sort.SliceStable(s.Games, func(i, j int) bool {
		if s.Games[i].CompressionIndex != s.Games[j].CompressionIndex {
			return s.Games[i].CompressionIndex < s.Games[j].CompressionIndex
		}
		return s.Games[i].StartTime.Before(s.Games[j].StartTime)
	})

	for level := 0; ; level++ {
		var records, others []GameRecord
		for _, g := range s.Games {
			if g.CompressionIndex == level {
				records = append(records, g)
			} else {
				others = append(others, g)
			}
		}
		if len(records) < GroupSize {
			break
		}

		var folded []GameRecord
		for i := 0; i < len(records); i += GroupSize {
			end := i + GroupSize
			if end > len(records) {
				folded = append(folded, records[i:]...)
				break
			}
			folded = append(folded, fold(records[i:end], level+1))
		}
		s.Games = append(others, folded...)
	}
}

func fold(group []GameRecord, level int) GameRecord {
	out := GameRecord{
		UUID:             uuid.New().String(),
		StartTime:        group[0].StartTime,
		EndTime:          group[0].EndTime,
		CompressionIndex: level,
		MaxScore:         group[0].MaxScore,
		MinScore:         group[0].MinScore,
		MaxDuration:      group[0].MaxDuration,
		MinDuration:      group[0].MinDuration,
	}

	var totalScore, totalDuration float64
	var medians []float64
	for _, g := range group {
		if g.MaxScore > out.MaxScore {
			out.MaxScore = g.MaxScore
		}
		if g.MinScore < out.MinScore {
			out.MinScore = g.MinScore
		}
		if g.MaxDuration > out.MaxDuration {
			out.MaxDuration = g.MaxDuration
		}
		if g.MinDuration < out.MinDuration {
			out.MinDuration = g.MinDuration
		}
		if g.StartTime.Before(out.StartTime) {
			out.StartTime = g.StartTime
		}
		if g.EndTime.After(out.EndTime) {
			out.EndTime = g.EndTime
		}
		totalScore += g.AverageScore * float64(g.GamesCount)
		totalDuration += g.AverageDuration * float64(g.GamesCount)
		out.GamesCount += g.GamesCount
		for i := 0; i < g.GamesCount; i++ {
			medians = append(medians, g.MedianScore)
		}
	}

	out.AverageScore = totalScore / float64(out.GamesCount)
	out.AverageDuration = totalDuration / float64(out.GamesCount)
	out.MedianScore = median(medians)
	out.Score = out.MaxScore
	return out
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sort.Float64s(values)
	n := len(values)
	if n%2 == 0 {
		return (values[n/2-1] + values[n/2]) / 2
	}
	return values[n/2]
}

// GetStats returns a copy of the records.
func (s *GameStats) GetStats() []GameRecord {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]GameRecord, len(s.Games))
	copy(out, s.Games)
	return out
}

// Summary aggregates every record, weighting groups by their game count.
func (s *GameStats) Summary() Summary {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var sum Summary
	if len(s.Games) == 0 {
		return sum
	}

	var totalScore, totalDuration float64
	var medians []float64
	for _, g := range s.Games {
		totalScore += g.AverageScore * float64(g.GamesCount)
		totalDuration += g.AverageDuration * float64(g.GamesCount)
		sum.GamesPlayed += g.GamesCount
		if g.MaxScore > sum.MaxScore {
			sum.MaxScore = g.MaxScore
		}
		for i := 0; i < g.GamesCount; i++ {
			medians = append(medians, g.MedianScore)
		}
	}
	if sum.GamesPlayed > 0 {
		sum.AverageScore = totalScore / float64(sum.GamesPlayed)
		sum.AverageDuration = totalDuration / float64(sum.GamesPlayed)
	}
	sum.MedianScore = median(medians)
	return sum
}

// SaveToFile writes the history as JSON. It is a no-op for an in-memory
// history.
func (s *GameStats) SaveToFile() error {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrap(err, "create stats directory")
	}
	data, err := json.MarshalIndent(s.Games, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal stats")
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return errors.Wrapf(err, "write stats %s", s.path)
	}
	return nil
}

func (s *GameStats) loadFromFile() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "read stats %s", s.path)
	}
	var games []GameRecord
	if err := json.Unmarshal(data, &games); err != nil {
		return errors.Wrapf(err, "decode stats %s", s.path)
	}
	s.Games = games
	return nil
}
