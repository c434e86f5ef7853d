package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"snake-classic/game"
	"snake-classic/game/manager"
	"snake-classic/game/schedule"
	"snake-classic/game/types"
	"snake-classic/stats"
	"snake-classic/store"
	"snake-classic/ui"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
	"golang.org/x/exp/rand"
)

func main() {
	frontend := flag.String("ui", "window", "Front end: window or terminal")
	speed := flag.Int("speed", types.DefaultSpeed, "Initial speed level (1-5)")
	dataDir := flag.String("data", "data", "Directory for the high score and game history (empty = in memory)")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = time based)")
	size := flag.Int("size", 600, "Board size in pixels for the window front end")
	flag.Parse()
	defer glog.Flush()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	var kv store.Store = store.NewMemoryStore()
	statsFile := ""
	if *dataDir != "" {
		kv = store.NewFileStore(filepath.Join(*dataDir, "store.json"))
		statsFile = filepath.Join(*dataDir, "stats.json")
	}
	highScores := store.NewHighScores(kv)

	history, err := stats.Load(statsFile)
	if err != nil {
		glog.Warningf("starting with an empty game history: %v", err)
	}

	glog.Infof("starting snake: ui=%s speed=%d seed=%d data=%q", *frontend, *speed, *seed, *dataDir)

	switch *frontend {
	case "window":
		runWindow(*size, *speed, *seed, highScores, history)
	case "terminal":
		if err := runTerminal(*speed, *seed, highScores, history); err != nil {
			glog.Exitf("terminal: %v", err)
		}
	default:
		glog.Exitf("unknown -ui %q (want window or terminal)", *frontend)
	}

	if err := history.SaveToFile(); err != nil {
		glog.Errorf("saving game history: %v", err)
	}
	glog.Info("bye")
}

func runWindow(size, speed int, seed uint64, highScores manager.HighScoreStore, history *stats.GameStats) {
	w := ui.NewWindow(size, history)
	w.Open()
	defer w.Close()

	poller := schedule.NewPoller(time.Now)
	g := game.NewGame(game.Config{
		Speed:     speed,
		Source:    rand.NewSource(seed),
		Store:     highScores,
		View:      w,
		Scheduler: poller,
		History:   history,
	})
	g.Start()
	defer g.Stop()

	w.Run(g, poller)
}

func runTerminal(speed int, seed uint64, highScores manager.HighScoreStore, history *stats.GameStats) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	term := ui.NewTerminal(screen, history)
	ticker := schedule.NewTicker()
	g := game.NewGame(game.Config{
		Speed:     speed,
		Source:    rand.NewSource(seed),
		Store:     highScores,
		View:      term,
		Scheduler: ticker,
		History:   history,
	})
	g.Start()
	defer g.Stop()

	return term.Run(ctx, g, ticker)
}
