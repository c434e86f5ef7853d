package ui

import (
	"fmt"
	"time"

	"snake-classic/game"
	"snake-classic/game/input"
	"snake-classic/game/schedule"
	"snake-classic/game/types"
	"snake-classic/stats"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/golang/glog"
)

const (
	borderPadding = 10  // Padding around game area
	panelHeight   = 150 // Score, status, speed selector and history below the board
	fontSize      = 20
	overlayFont   = 24
	blockPad      = 1
)

var windowKeys = []struct {
	rl  int32
	key input.Key
}{
	{rl.KeyUp, input.KeyUp},
	{rl.KeyDown, input.KeyDown},
	{rl.KeyLeft, input.KeyLeft},
	{rl.KeyRight, input.KeyRight},
	{rl.KeySpace, input.KeySpace},
	{rl.KeyEnter, input.KeyEnter},
	{rl.KeyOne, input.KeyOne},
	{rl.KeyTwo, input.KeyTwo},
	{rl.KeyThree, input.KeyThree},
	{rl.KeyFour, input.KeyFour},
	{rl.KeyFive, input.KeyFive},
	{rl.KeyQ, input.KeyQuit},
}

type speedButton struct {
	level int
	rect  rl.Rectangle
}

// Window renders the game in a raylib window.
type Window struct {
	Board
	size     int32
	cellSize int32
	history  *stats.GameStats
	buttons  []speedButton
}

// NewWindow prepares a window whose board is size pixels square. The
// window itself is created by Open.
func NewWindow(size int, history *stats.GameStats) *Window {
	if size < types.GridSize {
		size = types.GridSize
	}
	w := &Window{
		size:    int32(size),
		history: history,
	}
	w.cellSize = w.size / types.GridSize
	w.layoutButtons()
	return w
}

func (w *Window) Open() {
	rl.InitWindow(w.size+borderPadding*2, w.size+borderPadding*2+panelHeight, "Snake")
	rl.SetTargetFPS(60)
}

func (w *Window) Close() {
	rl.CloseWindow()
}

func (w *Window) layoutButtons() {
	const bw, bh, gap = 36, 28, 8
	y := float32(borderPadding + w.size + 8 + 3*(fontSize+8))
	x := float32(borderPadding + 80)
	w.buttons = w.buttons[:0]
	for _, level := range types.SpeedLevels() {
		w.buttons = append(w.buttons, speedButton{
			level: level,
			rect:  rl.NewRectangle(x, y, bw, bh),
		})
		x += bw + gap
	}
}

// Run drives g from the frame loop until the window is closed or the
// player quits. Ticks fire when the poller says the interval has passed.
func (w *Window) Run(g *game.Game, poller *schedule.Poller) {
	for !rl.WindowShouldClose() {
		if w.handleInput(g) {
			glog.Info("quit requested")
			return
		}
		if poller.Due(time.Now()) {
			g.Tick()
		}
		w.Render()
	}
}

func (w *Window) handleInput(g *game.Game) bool {
	for _, k := range windowKeys {
		if rl.IsKeyPressed(k.rl) && input.Handle(g, k.key) {
			return true
		}
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		pos := rl.GetMousePosition()
		for _, b := range w.buttons {
			if rl.CheckCollisionPointRec(pos, b.rect) {
				g.SetSpeed(b.level)
			}
		}
	}
	return false
}

func rlColor(c rgb) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}

func (w *Window) Render() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	f := w.frame
	w.drawGridBackground(f.Grid)
	if f.Grid.Contains(f.Food) {
		w.drawBlock(f.Food, rlColor(colorFood), 6)
	}
	for i, p := range f.Snake {
		c := colorBody
		if i == 0 {
			c = colorHead
		}
		w.drawBlock(p, rlColor(c), 4)
	}
	if text, ok := f.Overlay(); ok {
		w.drawOverlay(text)
	}

	w.drawPanel()
	rl.EndDrawing()
	w.dirty = false
}

func (w *Window) drawGridBackground(grid types.Grid) {
	rl.DrawRectangle(borderPadding, borderPadding, w.size, w.size, rlColor(colorBackground))

	line := rl.Fade(rl.White, 0.05)
	for i := int32(1); i < int32(grid.Width); i++ {
		pos := borderPadding + i*w.cellSize
		rl.DrawLine(pos, borderPadding, pos, borderPadding+w.size, line)
	}
	for i := int32(1); i < int32(grid.Height); i++ {
		pos := borderPadding + i*w.cellSize
		rl.DrawLine(borderPadding, pos, borderPadding+w.size, pos, line)
	}
}

func (w *Window) drawBlock(p types.Point, color rl.Color, radius float32) {
	x := float32(borderPadding + int32(p.X)*w.cellSize + blockPad)
	y := float32(borderPadding + int32(p.Y)*w.cellSize + blockPad)
	side := float32(w.cellSize - blockPad*2)
	roundness := radius * 2 / side
	if roundness > 1 {
		roundness = 1
	}
	rl.DrawRectangleRounded(rl.NewRectangle(x, y, side, side), roundness, 6, color)
}

func (w *Window) drawOverlay(text string) {
	rl.DrawRectangle(borderPadding, borderPadding, w.size, w.size, rl.Fade(rl.Black, overlayOpacity))
	width := rl.MeasureText(text, overlayFont)
	rl.DrawText(text,
		borderPadding+(w.size-width)/2,
		borderPadding+(w.size-overlayFont)/2,
		overlayFont, rlColor(colorText))
}

func (w *Window) drawPanel() {
	x := int32(borderPadding)
	y := borderPadding + w.size + 8
	lineHeight := int32(fontSize + 8)

	rl.DrawText(w.scoreLine(), x, y, fontSize, rlColor(colorText))
	y += lineHeight
	rl.DrawText(w.status, x, y, fontSize, rlColor(colorText))
	y += lineHeight
	rl.DrawText(historyLine(w.history), x, y, fontSize, rlColor(colorMuted))
	y += lineHeight

	rl.DrawText("Speed:", x, y+4, fontSize, rlColor(colorMuted))
	for _, b := range w.buttons {
		label := fmt.Sprintf("%d", b.level)
		fill, fg := rlColor(colorBackground), rlColor(colorMuted)
		if b.level == w.speed {
			fill, fg = rlColor(colorActive), rlColor(colorBackground)
		}
		rl.DrawRectangleRec(b.rect, fill)
		rl.DrawRectangleLinesEx(b.rect, 1, rlColor(colorMuted))
		tw := rl.MeasureText(label, fontSize)
		rl.DrawText(label,
			int32(b.rect.X)+(int32(b.rect.Width)-tw)/2,
			int32(b.rect.Y)+(int32(b.rect.Height)-fontSize)/2,
			fontSize, fg)
	}
	y += lineHeight + 8

	rl.DrawText(helpLine, x, y, fontSize-6, rlColor(colorMuted))
}
