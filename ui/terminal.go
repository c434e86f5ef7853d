package ui

import (
	"context"
	"fmt"

	"snake-classic/game"
	"snake-classic/game/input"
	"snake-classic/game/schedule"
	"snake-classic/game/types"
	"snake-classic/stats"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
)

// Board placement inside the terminal. Each cell is two columns wide so
// the board looks square.
const (
	termOriginX = 1
	termOriginY = 1
	termCellW   = 2
)

// Terminal renders the game with tcell.
type Terminal struct {
	Board
	screen  tcell.Screen
	history *stats.GameStats
}

// NewTerminal wraps an initialised screen.
func NewTerminal(screen tcell.Screen, history *stats.GameStats) *Terminal {
	screen.HideCursor()
	return &Terminal{screen: screen, history: history}
}

// Run feeds screen events and scheduler ticks into g until the player quits
// or ctx is cancelled. It is the only goroutine touching g.
func (t *Terminal) Run(ctx context.Context, g *game.Game, ticker *schedule.Ticker) error {
	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	t.Render()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				t.screen.Sync()
				t.dirty = true
			case *tcell.EventKey:
				if input.Handle(g, keyFromEvent(e)) {
					glog.Info("quit requested")
					return nil
				}
			}
		case <-ticker.C():
			g.Tick()
		}
		if t.dirty {
			t.Render()
		}
	}
}

func keyFromEvent(e *tcell.EventKey) input.Key {
	switch e.Key() {
	case tcell.KeyUp:
		return input.KeyUp
	case tcell.KeyDown:
		return input.KeyDown
	case tcell.KeyLeft:
		return input.KeyLeft
	case tcell.KeyRight:
		return input.KeyRight
	case tcell.KeyEnter:
		return input.KeyEnter
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.KeyQuit
	case tcell.KeyRune:
		switch e.Rune() {
		case ' ':
			return input.KeySpace
		case '1':
			return input.KeyOne
		case '2':
			return input.KeyTwo
		case '3':
			return input.KeyThree
		case '4':
			return input.KeyFour
		case '5':
			return input.KeyFive
		case 'q', 'Q':
			return input.KeyQuit
		}
	}
	return input.KeyNone
}

func tcellColor(c rgb) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Render paints the whole screen from the board state.
func (t *Terminal) Render() {
	t.screen.Clear()
	f := t.frame
	_, overlay := f.Overlay()

	shade := func(c rgb) tcell.Color {
		if overlay {
			return tcellColor(c.dim(overlayOpacity))
		}
		return tcellColor(c)
	}
	bg := tcell.StyleDefault.Background(shade(colorBackground))
	gridStyle := bg.Foreground(shade(colorGridLine))

	for y := 0; y < f.Grid.Height; y++ {
		for x := 0; x < f.Grid.Width; x++ {
			t.paintCell(types.Point{X: x, Y: y}, '·', gridStyle)
		}
	}
	if f.Grid.Contains(f.Food) {
		t.paintCell(f.Food, ' ', bg.Background(shade(colorFood)))
	}
	for i := len(f.Snake) - 1; i >= 0; i-- {
		c := colorBody
		if i == 0 {
			c = colorHead
		}
		t.paintCell(f.Snake[i], ' ', bg.Background(shade(c)))
	}
	t.drawBorder(f.Grid)

	if text, ok := f.Overlay(); ok {
		width := f.Grid.Width * termCellW
		x := termOriginX + (width-len(text))/2
		if x < termOriginX {
			x = termOriginX
		}
		y := termOriginY + f.Grid.Height/2
		style := bg.Foreground(tcellColor(colorText)).Bold(true)
		t.drawText(x, y, style, text)
	}

	t.drawPanel(termOriginY + f.Grid.Height + 1)
	t.screen.Show()
	t.dirty = false
}

func (t *Terminal) paintCell(p types.Point, r rune, style tcell.Style) {
	x := termOriginX + p.X*termCellW
	y := termOriginY + p.Y
	t.screen.SetContent(x, y, r, nil, style)
	t.screen.SetContent(x+1, y, ' ', nil, style)
}

func (t *Terminal) drawBorder(grid types.Grid) {
	style := tcell.StyleDefault.Foreground(tcellColor(colorMuted))
	left, top := termOriginX-1, termOriginY-1
	right := termOriginX + grid.Width*termCellW
	bottom := termOriginY + grid.Height
	for x := left + 1; x < right; x++ {
		t.screen.SetContent(x, top, tcell.RuneHLine, nil, style)
		t.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		t.screen.SetContent(left, y, tcell.RuneVLine, nil, style)
		t.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	t.screen.SetContent(left, top, tcell.RuneULCorner, nil, style)
	t.screen.SetContent(right, top, tcell.RuneURCorner, nil, style)
	t.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	t.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

func (t *Terminal) drawPanel(y int) {
	text := tcell.StyleDefault.Foreground(tcellColor(colorText))
	muted := tcell.StyleDefault.Foreground(tcellColor(colorMuted))

	t.drawText(termOriginX, y, text, t.scoreLine())
	t.drawText(termOriginX, y+1, text.Bold(true), t.status)

	x := t.drawText(termOriginX, y+2, muted, "Speed: ")
	for _, level := range types.SpeedLevels() {
		style := muted
		if level == t.speed {
			style = tcell.StyleDefault.
				Foreground(tcellColor(colorBackground)).
				Background(tcellColor(colorActive))
		}
		x = t.drawText(x, y+2, style, fmt.Sprintf(" %d ", level))
		x++
	}

	t.drawText(termOriginX, y+3, muted, historyLine(t.history))
	t.drawText(termOriginX, y+4, muted, helpLine)
}

// drawText writes s starting at (x, y) and returns the column after it.
func (t *Terminal) drawText(x, y int, style tcell.Style, s string) int {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
