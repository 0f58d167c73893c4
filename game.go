package main

import (
	"errors"
	"time"

	"stackwords/internal/puzzle"
	"stackwords/internal/types"
)

// timerAfterFunc schedules f on a runtime timer.
func timerAfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// runCommand applies fn to the session's game and schedules the tasks it
// emitted. Timers are armed only after the session lock is released.
func (app *App) runCommand(ps *PlaySession, fn func(g *puzzle.Game) bool) (bool, types.SessionView) {
	ps.mu.Lock()
	accepted := fn(ps.game)
	tasks := ps.game.TakeTasks()
	view := ps.game.View()
	ps.mu.Unlock()

	app.scheduleTasks(ps, tasks)
	return accepted, view
}

// viewState renders the session without changing it.
func (app *App) viewState(ps *PlaySession) types.SessionView {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.game.View()
}

func (app *App) scheduleTasks(ps *PlaySession, tasks []puzzle.Task) {
	for _, task := range tasks {
		task := task
		logDebug("Scheduling %s task %s for session %s in %v", task.Kind, task.ID, ps.ID, task.Delay)
		app.afterFunc(task.Delay, func() { app.completeTask(ps, task) })
	}
}

// completeTask fulfils one task request. A task from a level the player has
// already left is dropped by the game and ignored here.
func (app *App) completeTask(ps *PlaySession, task puzzle.Task) {
	ps.mu.Lock()
	err := ps.game.Complete(task.ID)
	next := ps.game.TakeTasks()
	ps.mu.Unlock()

	if err != nil {
		if errors.Is(err, puzzle.ErrUnknownTask) {
			logDebug("Dropped stale %s task for session %s", task.Kind, ps.ID)
			return
		}
		logWarn("Task %s for session %s failed: %v", task.ID, ps.ID, err)
		return
	}
	app.scheduleTasks(ps, next)
}
