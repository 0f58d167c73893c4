package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stackwords/internal/puzzle"
)

// playSessionOrAbort resolves the caller's play session, answering 500 when
// no game can be started.
func (app *App) playSessionOrAbort(c *gin.Context) (*PlaySession, bool) {
	ps, err := app.getPlaySession(c)
	if err != nil {
		logWarn("Failed to start game session: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": ErrorSessionFailed})
		return nil, false
	}
	return ps, true
}

// respond runs a command and writes the {accepted, state} envelope.
func (app *App) respond(c *gin.Context, fn func(g *puzzle.Game) bool) {
	ps, ok := app.playSessionOrAbort(c)
	if !ok {
		return
	}
	accepted, view := app.runCommand(ps, fn)
	c.JSON(http.StatusOK, CommandResponse{Accepted: accepted, State: view})
}

// stateHandler returns the presentation model of the current session.
func (app *App) stateHandler(c *gin.Context) {
	ps, ok := app.playSessionOrAbort(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, app.viewState(ps))
}

func (app *App) selectHandler(c *gin.Context) {
	var req tileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidRequest})
		return
	}
	app.respond(c, func(g *puzzle.Game) bool { return g.Select(req.TileID) })
}

func (app *App) deselectHandler(c *gin.Context) {
	var req tileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidRequest})
		return
	}
	app.respond(c, func(g *puzzle.Game) bool { return g.Deselect(req.TileID) })
}

// confirmHandler commits the assembled word. Resetting an invalid word counts
// as accepted.
func (app *App) confirmHandler(c *gin.Context) {
	app.respond(c, func(g *puzzle.Game) bool {
		return g.ConfirmOrReset() != puzzle.OutcomeRejected
	})
}

// hintHandler reveals the next target and echoes it as word.
func (app *App) hintHandler(c *gin.Context) {
	ps, ok := app.playSessionOrAbort(c)
	if !ok {
		return
	}
	var word string
	accepted, view := app.runCommand(ps, func(g *puzzle.Game) bool {
		w, ok := g.Hint()
		word = w
		return ok
	})
	c.JSON(http.StatusOK, CommandResponse{Accepted: accepted, Word: word, State: view})
}

func (app *App) bonusColorsHandler(c *gin.Context) {
	app.respond(c, func(g *puzzle.Game) bool { return g.RevealColors() })
}

func (app *App) restartHandler(c *gin.Context) {
	app.respond(c, func(g *puzzle.Game) bool { return g.Restart() })
}

func (app *App) nextLevelHandler(c *gin.Context) {
	app.respond(c, func(g *puzzle.Game) bool {
		_, ok := g.AdvanceLevel()
		return ok
	})
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	app.SessionMutex.RLock()
	sessions := len(app.PlaySessions)
	app.SessionMutex.RUnlock()

	c.JSON(http.StatusOK, gin.H{
		"status":           "ok",
		"env":              envName(app.IsProduction),
		"levels_loaded":    len(app.Levels),
		"dictionary_words": app.Dictionary.Len(),
		"active_sessions":  sessions,
		"uptime":           formatUptime(time.Since(app.StartTime)),
		"timestamp":        time.Now().UTC().Format(time.RFC3339),
	})
}
