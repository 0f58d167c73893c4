package main

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"stackwords/internal/puzzle"
)

// getOrCreateSession retrieves the session ID from the cookie or creates a new one.
func (app *App) getOrCreateSession(c *gin.Context) string {
	sessionID, err := c.Cookie(SessionCookieName)
	if err != nil || len(sessionID) < minSessionIDLen {
		sessionID = uuid.NewString()
		c.SetSameSite(http.SameSiteStrictMode)
		secure := app.IsProduction
		c.SetCookie(SessionCookieName, sessionID, int(app.CookieMaxAge.Seconds()), "/", "", secure, true)
		logInfo("Created new session: %s", sessionID)
	}
	return sessionID
}

// getPlaySession returns the play session for the request, starting a game on
// first use.
func (app *App) getPlaySession(c *gin.Context) (*PlaySession, error) {
	sessionID := app.getOrCreateSession(c)
	now := time.Now()

	app.SessionMutex.RLock()
	ps, exists := app.PlaySessions[sessionID]
	app.SessionMutex.RUnlock()
	if exists {
		ps.mu.Lock()
		ps.lastAccess = now
		ps.mu.Unlock()
		return ps, nil
	}

	app.SessionMutex.Lock()
	defer app.SessionMutex.Unlock()
	if ps, exists := app.PlaySessions[sessionID]; exists {
		return ps, nil
	}
	ps, err := app.newPlaySession(sessionID)
	if err != nil {
		return nil, err
	}
	ps.lastAccess = now
	app.PlaySessions[sessionID] = ps
	logInfo("Started game for session %s (request %s)", sessionID, requestID(c.Request.Context()))
	return ps, nil
}

func (app *App) newPlaySession(sessionID string) (*PlaySession, error) {
	seed := app.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := log.With().Str("session", sessionID).Logger()
	game, err := puzzle.NewGame(puzzle.Options{
		Levels:     app.Levels,
		Dictionary: app.Dictionary,
		Rand:       rand.New(rand.NewSource(seed)),
		Delays:     app.Delays,
		Logger:     &logger,
	})
	if err != nil {
		return nil, err
	}
	return &PlaySession{ID: sessionID, game: game}, nil
}

// cleanupIdleSessions drops sessions not touched since before cutoff. Timers
// still pending for a dropped session complete against an orphaned game.
func (app *App) cleanupIdleSessions(cutoff time.Time) int {
	app.SessionMutex.Lock()
	defer app.SessionMutex.Unlock()
	removed := 0
	for id, ps := range app.PlaySessions {
		ps.mu.Lock()
		idle := ps.lastAccess.Before(cutoff)
		ps.mu.Unlock()
		if idle {
			delete(app.PlaySessions, id)
			removed++
		}
	}
	return removed
}

// runSessionCleanup evicts idle sessions until ctx is cancelled.
func (app *App) runSessionCleanup(ctx context.Context) {
	interval := max(app.SessionTimeout/4, time.Minute)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := app.cleanupIdleSessions(now.Add(-app.SessionTimeout)); n > 0 {
				logInfo("Session cleanup removed %d idle session%s", n, plural(n))
			}
		}
	}
}
