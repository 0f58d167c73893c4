package puzzle

import (
	"errors"
	"time"
)

// ErrUnknownTask is returned when a completion names no pending task.
var ErrUnknownTask = errors.New("puzzle: unknown task")

// TaskKind is the continuation a deferred task runs on completion.
type TaskKind int

const (
	// TaskRemoveTiles removes the confirmed word's tiles and reopens the gate.
	TaskRemoveTiles TaskKind = iota
	// TaskClearSelection ends a hidden-word commit; tiles stay in play.
	TaskClearSelection
	// TaskWin raises the win screen.
	TaskWin
)

func (k TaskKind) String() string {
	switch k {
	case TaskRemoveTiles:
		return "remove_tiles"
	case TaskClearSelection:
		return "clear_selection"
	case TaskWin:
		return "win"
	default:
		return "unknown"
	}
}

// Task asks the host to call Complete(ID) once Delay has elapsed.
type Task struct {
	ID      string
	Kind    TaskKind
	Delay   time.Duration
	TileIDs []string
}

// Delays holds the fixed durations of the deferred continuations.
type Delays struct {
	Found  time.Duration
	Hidden time.Duration
	Win    time.Duration
}

var DefaultDelays = Delays{
	Found:  800 * time.Millisecond,
	Hidden: 1200 * time.Millisecond,
	Win:    500 * time.Millisecond,
}
