package types

import (
	"testing"
	"time"
)

func TestSpeedInterval(t *testing.T) {
	tests := []struct {
		level int
		want  time.Duration
		ok    bool
	}{
		{1, 220 * time.Millisecond, true},
		{2, 170 * time.Millisecond, true},
		{3, 120 * time.Millisecond, true},
		{4, 90 * time.Millisecond, true},
		{5, 65 * time.Millisecond, true},
		{0, 0, false},
		{6, 0, false},
		{-1, 0, false},
	}
	for _, tt := range tests {
		got, ok := SpeedInterval(tt.level)
		if got != tt.want || ok != tt.ok {
			t.Errorf("SpeedInterval(%d) = %v, %v; want %v, %v", tt.level, got, ok, tt.want, tt.ok)
		}
	}

	levels := SpeedLevels()
	if len(levels) != 5 || levels[0] != 1 || levels[4] != 5 {
		t.Errorf("SpeedLevels() = %v", levels)
	}
}

func TestGridContains(t *testing.T) {
	g := DefaultGrid
	inside := []Point{{0, 0}, {19, 19}, {10, 10}, {0, 19}}
	outside := []Point{{-1, 0}, {0, -1}, {20, 10}, {10, 20}}
	for _, p := range inside {
		if !g.Contains(p) {
			t.Errorf("expected %v inside grid", p)
		}
	}
	for _, p := range outside {
		if g.Contains(p) {
			t.Errorf("expected %v outside grid", p)
		}
	}
	if g.Cells() != 400 {
		t.Errorf("Cells() = %d, want 400", g.Cells())
	}
}

func TestOpposite(t *testing.T) {
	if Opposite(Right) != Left || Opposite(Up) != Down {
		t.Error("Opposite returned wrong vector")
	}
	if IsDirection(Point{1, 1}) || IsDirection(Point{}) {
		t.Error("diagonal or zero vector accepted as direction")
	}
	if !IsDirection(Point{0, -1}) {
		t.Error("up rejected as direction")
	}
}
