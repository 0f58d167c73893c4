package main

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"stackwords/internal/puzzle"
	"stackwords/internal/types"
)

// App holds the loaded assets and every live play session.
type App struct {
	Levels     []types.LevelConfig
	Dictionary *puzzle.Dictionary
	Delays     puzzle.Delays
	Seed       int64

	PlaySessions map[string]*PlaySession
	SessionMutex sync.RWMutex

	LimiterMap   map[string]*rate.Limiter
	LimiterMutex sync.Mutex

	IsProduction   bool
	SessionTimeout time.Duration
	CookieMaxAge   time.Duration
	RateLimitRPS   int
	RateLimitBurst int
	StartTime      time.Time

	// afterFunc runs f once d has elapsed. Tests swap it for an immediate call.
	afterFunc func(d time.Duration, f func())
}

// PlaySession is one browser's game. mu serializes handlers and task timers.
type PlaySession struct {
	ID         string
	mu         sync.Mutex
	game       *puzzle.Game
	lastAccess time.Time
}

// tileRequest is the body of the select and deselect commands.
type tileRequest struct {
	TileID string `json:"tileId" binding:"required"`
}

// CommandResponse is returned by every mutating route.
type CommandResponse struct {
	Accepted bool              `json:"accepted"`
	Word     string            `json:"word,omitempty"`
	State    types.SessionView `json:"state"`
}
