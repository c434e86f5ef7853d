package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	"snake-classic/game"
	"snake-classic/game/input"
	"snake-classic/game/schedule"
	"snake-classic/game/types"
	"snake-classic/stats"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(80, 32)
	t.Cleanup(s.Fini)
	return s
}

func cellAt(s tcell.SimulationScreen, x, y int) tcell.SimCell {
	cells, w, _ := s.GetContents()
	return cells[y*w+x]
}

func rowText(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var out []rune
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			out = append(out, ' ')
			continue
		}
		out = append(out, c.Runes[0])
	}
	return string(out)
}

func background(c tcell.SimCell) tcell.Color {
	_, bg, _ := c.Style.Decompose()
	return bg
}

func boardCell(p types.Point) (int, int) {
	return termOriginX + p.X*termCellW, termOriginY + p.Y
}

func TestTerminalRendersBoard(t *testing.T) {
	screen := newSimScreen(t)
	term := NewTerminal(screen, stats.NewGameStats(""))
	g := game.NewGame(game.Config{Source: rand.NewSource(5), View: term})
	term.Render()

	x, y := boardCell(types.Point{X: 10, Y: 10})
	if got := background(cellAt(screen, x, y)); got != tcellColor(colorHead) {
		t.Errorf("head background = %v, want %v", got, tcellColor(colorHead))
	}
	x, y = boardCell(types.Point{X: 9, Y: 10})
	if got := background(cellAt(screen, x+1, y)); got != tcellColor(colorBody) {
		t.Errorf("body background = %v", got)
	}
	x, y = boardCell(g.Food())
	if got := background(cellAt(screen, x, y)); got != tcellColor(colorFood) {
		t.Errorf("food background = %v", got)
	}
	empty := types.Point{X: 0, Y: 0}
	if g.Food() == empty {
		empty = types.Point{X: 19, Y: 19}
	}
	x, y = boardCell(empty)
	if got := background(cellAt(screen, x, y)); got != tcellColor(colorBackground) {
		t.Errorf("empty background = %v", got)
	}

	panel := termOriginY + types.GridSize + 1
	if row := rowText(screen, panel+1); !strings.Contains(row, game.StatusReady) {
		t.Errorf("status row = %q", row)
	}
	if row := rowText(screen, panel); !strings.Contains(row, "Score: 0") {
		t.Errorf("score row = %q", row)
	}
}

func TestTerminalOverlay(t *testing.T) {
	screen := newSimScreen(t)
	term := NewTerminal(screen, nil)
	g := game.NewGame(game.Config{Source: rand.NewSource(5), View: term})
	g.RequestDirection(0, 1)
	g.TogglePause()
	term.Render()

	row := rowText(screen, termOriginY+types.GridSize/2)
	if !strings.Contains(row, game.OverlayPaused) {
		t.Errorf("overlay row = %q", row)
	}
	empty := types.Point{X: 0, Y: 0}
	if g.Food() == empty {
		empty = types.Point{X: 19, Y: 19}
	}
	x, y := boardCell(empty)
	if got := background(cellAt(screen, x, y)); got != tcellColor(colorBackground.dim(overlayOpacity)) {
		t.Errorf("board not dimmed under overlay: %v", got)
	}
}

func TestTerminalRunHandlesKeys(t *testing.T) {
	screen := newSimScreen(t)
	term := NewTerminal(screen, nil)
	ticker := schedule.NewTicker()
	g := game.NewGame(game.Config{Source: rand.NewSource(5), View: term, Scheduler: ticker})
	g.Start()
	defer g.Stop()

	screen.InjectKey(tcell.KeyRune, '5', tcell.ModNone)
	screen.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := term.Run(ctx, g, ticker); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ctx.Err() != nil {
		t.Fatal("Run returned on timeout instead of quit key")
	}
	if g.Speed() != 5 || ticker.Interval() != 65*time.Millisecond {
		t.Errorf("speed = %d, ticker = %v", g.Speed(), ticker.Interval())
	}
	if g.Phase() == game.Idle || g.NextDirection() != types.Down {
		t.Errorf("phase = %v, next = %v", g.Phase(), g.NextDirection())
	}
}

func TestTerminalRunStopsOnCancel(t *testing.T) {
	screen := newSimScreen(t)
	term := NewTerminal(screen, nil)
	ticker := schedule.NewTicker()
	g := game.NewGame(game.Config{Source: rand.NewSource(5), View: term, Scheduler: ticker})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := term.Run(ctx, g, ticker); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestKeyFromEvent(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want input.Key
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), input.KeyUp},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), input.KeyLeft},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), input.KeySpace},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), input.KeyEnter},
		{tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone), input.KeyThree},
		{tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), input.KeyQuit},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), input.KeyQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), input.KeyNone},
	}
	for _, tt := range tests {
		if got := keyFromEvent(tt.ev); got != tt.want {
			t.Errorf("keyFromEvent(%s) = %d, want %d", tt.ev.Name(), got, tt.want)
		}
	}
}
