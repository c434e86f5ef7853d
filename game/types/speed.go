package types

import "time"

// Speed levels
const (
	MinSpeed     = 1
	MaxSpeed     = 5
	DefaultSpeed = 3
)

// speedLevels maps a speed level to its tick interval.
var speedLevels = map[int]time.Duration{
	1: 220 * time.Millisecond,
	2: 170 * time.Millisecond,
	3: 120 * time.Millisecond,
	4: 90 * time.Millisecond,
	5: 65 * time.Millisecond,
}

// SpeedInterval returns the tick interval for level and whether the level exists.
func SpeedInterval(level int) (time.Duration, bool) {
	d, ok := speedLevels[level]
	return d, ok
}

// SpeedLevels returns the selectable levels in ascending order.
func SpeedLevels() []int {
	levels := make([]int, 0, len(speedLevels))
	for l := MinSpeed; l <= MaxSpeed; l++ {
		levels = append(levels, l)
	}
	return levels
}
