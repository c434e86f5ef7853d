// Package game holds the Snake state engine. A Game is owned by a single
// host goroutine: input handlers and the scheduler tick are expected to run
// one at a time, so no locking happens here.
package game

import (
	"fmt"
	"time"

	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/game/types"

	"github.com/golang/glog"
	"golang.org/x/exp/rand"
)

// Status messages shown in the status text surface.
const (
	StatusReady      = "Press any arrow key to start"
	StatusInProgress = "Game in progress..."
	StatusPaused     = "Paused"
	StatusCrashed    = "You crashed! Press Enter to restart"
	StatusAte        = "Nice! Keep going"
)

// Overlay texts drawn over the board.
const (
	OverlayPaused   = "Paused (press Space to resume)"
	OverlayGameOver = "Game Over (press Enter to restart)"
)

// SpeedStatus is the status message after a speed change.
func SpeedStatus(level int) string {
	return fmt.Sprintf("Speed set to %d", level)
}

// Phase is the derived state of the running/paused/gameOver flags.
type Phase int

const (
	Idle Phase = iota
	Running
	Paused
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return "idle"
	}
}

// Frame is a copy of everything a renderer needs to paint the board.
type Frame struct {
	Grid      types.Grid
	Snake     []types.Point
	Food      types.Point
	Direction types.Point
	Paused    bool
	GameOver  bool
}

// Overlay returns the text to draw over the board, if any.
func (f Frame) Overlay() (string, bool) {
	switch {
	case f.GameOver:
		return OverlayGameOver, true
	case f.Paused:
		return OverlayPaused, true
	}
	return "", false
}

// View receives every visible change of the game.
type View interface {
	Draw(f Frame)
	SetStatus(msg string)
	SetScore(score int)
	SetHighScore(score int)
	SetSpeed(level int)
}

// Scheduler drives Tick at a fixed interval. Start replaces any timer
// already running.
type Scheduler interface {
	Start(interval time.Duration)
	Stop()
}

// History records finished games.
type History interface {
	AddGame(score int, startTime, endTime time.Time)
}

// Config wires a Game to its collaborators. Zero values select defaults.
type Config struct {
	Grid      types.Grid
	Speed     int
	Source    rand.Source
	Store     manager.HighScoreStore
	View      View
	Scheduler Scheduler
	History   History
	Clock     func() time.Time
}

type Game struct {
	Grid          types.Grid
	snake         *entity.Snake
	direction     types.Point
	nextDirection types.Point
	food          types.Point
	running       bool
	paused        bool
	gameOver      bool
	speed         int
	interval      time.Duration
	StartTime     time.Time

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager

	view      View
	scheduler Scheduler
	history   History
	now       func() time.Time
}

// NewGame builds a game in the Idle phase with food placed and the view
// primed with the persisted high score. The scheduler is not started until
// Start is called.
func NewGame(cfg Config) *Game {
	if cfg.Grid.Width <= 0 || cfg.Grid.Height <= 0 {
		cfg.Grid = types.DefaultGrid
	}
	if cfg.Source == nil {
		cfg.Source = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	if cfg.View == nil {
		cfg.View = nopView{}
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = nopScheduler{}
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	interval, ok := types.SpeedInterval(cfg.Speed)
	if !ok {
		cfg.Speed = types.DefaultSpeed
		interval, _ = types.SpeedInterval(cfg.Speed)
	}

	collisionMgr := manager.NewCollisionManager(cfg.Grid)
	g := &Game{
		Grid:         cfg.Grid,
		speed:        cfg.Speed,
		interval:     interval,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(cfg.Grid, cfg.Source, collisionMgr),
		stateMgr:     manager.NewStateManager(cfg.Store),
		view:         cfg.View,
		scheduler:    cfg.Scheduler,
		history:      cfg.History,
		now:          cfg.Clock,
	}

	g.view.SetHighScore(g.stateMgr.GetHighScore())
	g.Reset()
	return g
}

// Start shows the active speed and arms the scheduler.
func (g *Game) Start() {
	g.view.SetSpeed(g.speed)
	g.scheduler.Start(g.interval)
}

// Stop cancels the scheduler. Game state is left untouched.
func (g *Game) Stop() {
	g.scheduler.Stop()
}

// Reset starts a fresh round: starting snake, rightward direction, zero
// score, cleared flags and newly placed food.
func (g *Game) Reset() {
	g.snake = entity.NewStartSnake()
	g.direction = types.Right
	g.nextDirection = g.direction
	g.stateMgr.ResetScore()
	g.running = false
	g.paused = false
	g.gameOver = false
	g.StartTime = time.Time{}

	g.view.SetScore(0)
	g.view.SetStatus(StatusReady)
	g.placeFood()
	g.draw()
}

// Restart resets the game, but only once it is over.
func (g *Game) Restart() {
	if !g.gameOver {
		return
	}
	g.Reset()
}

// RequestDirection queues a turn for the next tick. The reversal check is
// made against the active direction only, so two quick turns inside one
// tick can still queue a reversal of the direction that ends up applied.
func (g *Game) RequestDirection(dx, dy int) {
	if g.gameOver {
		return
	}
	dir := types.Point{X: dx, Y: dy}
	if !types.IsDirection(dir) {
		return
	}
	if dir == types.Opposite(g.direction) {
		return
	}

	g.nextDirection = dir

	if !g.running {
		g.running = true
		g.StartTime = g.now()
		g.view.SetStatus(StatusInProgress)
	}
}

// Tick advances the snake one cell.
func (g *Game) Tick() {
	if !g.running || g.paused || g.gameOver {
		return
	}

	g.direction = g.nextDirection
	newHead := g.snake.GetHead().Add(g.direction)

	if collision := g.collisionMgr.CheckCollision(newHead, g.snake); collision != manager.NoCollision {
		g.gameOver = true
		g.running = false
		g.view.SetStatus(StatusCrashed)
		glog.V(1).Infof("crashed into %v at %v, score %d", collision, newHead, g.stateMgr.GetScore())
		if g.history != nil {
			g.history.AddGame(g.stateMgr.GetScore(), g.StartTime, g.now())
		}
		g.draw()
		return
	}

	g.snake.Move(newHead)

	if g.collisionMgr.IsFoodCollision(newHead, g.food) {
		newHigh := g.stateMgr.AddPoint()
		g.view.SetScore(g.stateMgr.GetScore())
		g.view.SetStatus(StatusAte)
		if newHigh {
			glog.V(1).Infof("new high score %d", g.stateMgr.GetHighScore())
			g.view.SetHighScore(g.stateMgr.GetHighScore())
		}
		g.placeFood()
	} else {
		g.snake.RemoveTail()
	}

	glog.V(2).Infof("tick: head %v dir %s len %d", newHead, types.DirectionName(g.direction), g.snake.Len())
	g.draw()
}

// TogglePause flips the paused flag of a running game. The scheduler keeps
// firing; paused ticks are no-ops.
func (g *Game) TogglePause() {
	if g.gameOver || !g.running {
		return
	}
	g.paused = !g.paused
	if g.paused {
		g.view.SetStatus(StatusPaused)
	} else {
		g.view.SetStatus(StatusInProgress)
	}
	g.draw()
}

// SetSpeed switches to level and restarts the scheduler at its interval.
// Unknown levels are ignored.
func (g *Game) SetSpeed(level int) {
	interval, ok := types.SpeedInterval(level)
	if !ok {
		return
	}
	g.speed = level
	g.interval = interval
	g.view.SetSpeed(level)
	g.scheduler.Start(interval)
	glog.V(1).Infof("speed level %d (%v)", level, interval)

	if !g.gameOver && !g.paused {
		g.view.SetStatus(SpeedStatus(level))
	}
}

func (g *Game) placeFood() {
	food, ok := g.foodMgr.GenerateFood(g.snake)
	if !ok {
		glog.V(1).Info("board full, no room for food")
	}
	g.food = food
}

func (g *Game) draw() {
	g.view.Draw(g.Frame())
}

// Frame returns a snapshot of the board.
func (g *Game) Frame() Frame {
	return Frame{
		Grid:      g.Grid,
		Snake:     g.snake.Cells(),
		Food:      g.food,
		Direction: g.direction,
		Paused:    g.paused,
		GameOver:  g.gameOver,
	}
}

func (g *Game) Phase() Phase {
	switch {
	case g.gameOver:
		return GameOver
	case g.running && g.paused:
		return Paused
	case g.running:
		return Running
	default:
		return Idle
	}
}

func (g *Game) Snake() []types.Point { return g.snake.Cells() }
func (g *Game) Direction() types.Point { return g.direction }
func (g *Game) NextDirection() types.Point { return g.nextDirection }
func (g *Game) Food() types.Point { return g.food }
func (g *Game) Score() int { return g.stateMgr.GetScore() }
func (g *Game) HighScore() int { return g.stateMgr.GetHighScore() }
func (g *Game) Speed() int { return g.speed }
func (g *Game) Interval() time.Duration { return g.interval }
func (g *Game) Running() bool { return g.running }
func (g *Game) Paused() bool { return g.paused }
func (g *Game) GameOver() bool { return g.gameOver }

type nopView struct{}

func (nopView) Draw(Frame) {}
func (nopView) SetStatus(string) {}
func (nopView) SetScore(int) {}
func (nopView) SetHighScore(int) {}
func (nopView) SetSpeed(int) {}

type nopScheduler struct{}

func (nopScheduler) Start(time.Duration) {}
func (nopScheduler) Stop() {}
