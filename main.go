package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"

	"stackwords/internal/puzzle"
	"stackwords/internal/types"
)

func main() {
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		setupLogging("info", false)
		logFatal("Failed to load config: %v", err)
	}
	setupLogging(cfg.Server.LogLevel, cfg.Server.Production)
	logInfo("Starting Stackwords in %s mode", envName(cfg.Server.Production))

	levels, err := loadLevelsFile(cfg.Data.Levels)
	if err != nil {
		logFatal("Failed to load levels: %v", err)
	}
	logInfo("Loaded %d levels", len(levels))

	dict, err := loadDictionaryFile(cfg.Data.Dictionary)
	if err != nil {
		logFatal("Failed to load dictionary: %v", err)
	}
	logInfo("Loaded %d dictionary words", dict.Len())
	warnLevelProblems(levels, dict)

	if cfg.Server.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	app := newApp(cfg, levels, dict)
	router := app.setupRouter()
	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go app.runSessionCleanup(ctx)

	startServer(router, cfg.Server.Port)
}

// newApp wires the loaded assets and configuration into an App.
func newApp(cfg *Config, levels []types.LevelConfig, dict *puzzle.Dictionary) *App {
	return &App{
		Levels:         levels,
		Dictionary:     dict,
		Delays:         cfg.Delays(),
		Seed:           cfg.Game.Seed,
		PlaySessions:   make(map[string]*PlaySession),
		LimiterMap:     make(map[string]*rate.Limiter),
		IsProduction:   cfg.Server.Production,
		SessionTimeout: cfg.Limits.SessionTimeout.Duration,
		CookieMaxAge:   cfg.Limits.CookieMaxAge.Duration,
		RateLimitRPS:   cfg.Limits.RateLimitRPS,
		RateLimitBurst: cfg.Limits.RateLimitBurst,
		StartTime:      time.Now(),
		afterFunc:      timerAfterFunc,
	}
}

// setupRouter registers middleware and routes.
func (app *App) setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(
		requestIDMiddleware(),
		ginGzip.Gzip(ginGzip.DefaultCompression),
		cachecontrol.New(cachecontrol.Config{
			NoStore:        true,
			NoCache:        true,
			MustRevalidate: true,
		}),
	)

	router.GET(RouteState, app.stateHandler)
	router.GET(RouteHealth, app.healthzHandler)

	commands := router.Group("/", app.rateLimitMiddleware())
	commands.POST(RouteSelect, app.selectHandler)
	commands.POST(RouteDeselect, app.deselectHandler)
	commands.POST(RouteConfirm, app.confirmHandler)
	commands.POST(RouteHint, app.hintHandler)
	commands.POST(RouteBonusColors, app.bonusColorsHandler)
	commands.POST(RouteRestart, app.restartHandler)
	commands.POST(RouteNextLevel, app.nextLevelHandler)
	return router
}

func startServer(router *gin.Engine, port string) {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		logInfo("Shutdown signal received, shutting down server gracefully...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}
