// Package input maps front-end key presses to game commands.
package input

import "snake-classic/game/types"

// Key is a front-end neutral key.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEnter
	KeyOne
	KeyTwo
	KeyThree
	KeyFour
	KeyFive
	KeyQuit
)

// Action is what a command asks the game to do.
type Action int

const (
	None Action = iota
	Turn
	TogglePause
	Restart
	SetSpeed
	Quit
)

// Command is a single mapped input.
type Command struct {
	Action    Action
	Direction types.Point
	Level     int
}

// Controller is the part of the game commands act on.
type Controller interface {
	RequestDirection(dx, dy int)
	TogglePause()
	Restart()
	SetSpeed(level int)
}

var bindings = map[Key]Command{
	KeyUp:    {Action: Turn, Direction: types.Up},
	KeyDown:  {Action: Turn, Direction: types.Down},
	KeyLeft:  {Action: Turn, Direction: types.Left},
	KeyRight: {Action: Turn, Direction: types.Right},
	KeySpace: {Action: TogglePause},
	KeyEnter: {Action: Restart},
	KeyOne:   {Action: SetSpeed, Level: 1},
	KeyTwo:   {Action: SetSpeed, Level: 2},
	KeyThree: {Action: SetSpeed, Level: 3},
	KeyFour:  {Action: SetSpeed, Level: 4},
	KeyFive:  {Action: SetSpeed, Level: 5},
	KeyQuit:  {Action: Quit},
}

// Map returns the command bound to key. The second result reports whether
// the key is consumed by the game and must not fall through to the host.
func Map(key Key) (Command, bool) {
	cmd, ok := bindings[key]
	return cmd, ok
}

// Dispatch applies cmd to c and reports whether the host should quit.
func Dispatch(c Controller, cmd Command) bool {
	switch cmd.Action {
	case Turn:
		c.RequestDirection(cmd.Direction.X, cmd.Direction.Y)
	case TogglePause:
		c.TogglePause()
	case Restart:
		c.Restart()
	case SetSpeed:
		c.SetSpeed(cmd.Level)
	case Quit:
		return true
	}
	return false
}

// Handle maps and dispatches key in one step.
func Handle(c Controller, key Key) (quit bool) {
	cmd, ok := Map(key)
	if !ok {
		return false
	}
	return Dispatch(c, cmd)
}
