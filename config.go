package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"stackwords/internal/puzzle"
)

const defaultConfigFile = "stackwords.toml"

// Config is the file layer of the configuration. Environment variables are
// applied on top of it by applyEnv.
type Config struct {
	Server ServerConfig `toml:"server"`
	Data   DataConfig   `toml:"data"`
	Game   GameConfig   `toml:"game"`
	Limits LimitsConfig `toml:"limits"`
}

type ServerConfig struct {
	Port       string `toml:"port"`
	Production bool   `toml:"production"`
	LogLevel   string `toml:"log_level"`
}

type DataConfig struct {
	Levels     string `toml:"levels"`
	Dictionary string `toml:"dictionary"`
}

type GameConfig struct {
	FoundDelay  Duration `toml:"found_delay"`
	HiddenDelay Duration `toml:"hidden_delay"`
	WinDelay    Duration `toml:"win_delay"`
	// Seed fixes board generation for every session; 0 seeds from the clock.
	Seed int64 `toml:"seed"`
}

type LimitsConfig struct {
	SessionTimeout Duration `toml:"session_timeout"`
	CookieMaxAge   Duration `toml:"cookie_max_age"`
	RateLimitRPS   int      `toml:"rate_limit_rps"`
	RateLimitBurst int      `toml:"rate_limit_burst"`
}

// Duration reads Go duration strings such as "800ms" from TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DefaultConfig returns the compiled defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:     "8080",
			LogLevel: "info",
		},
		Data: DataConfig{
			Levels:     "data/levels.json",
			Dictionary: "data/dictionary.txt",
		},
		Game: GameConfig{
			FoundDelay:  Duration{puzzle.DefaultDelays.Found},
			HiddenDelay: Duration{puzzle.DefaultDelays.Hidden},
			WinDelay:    Duration{puzzle.DefaultDelays.Win},
		},
		Limits: LimitsConfig{
			SessionTimeout: Duration{2 * time.Hour},
			CookieMaxAge:   Duration{2 * time.Hour},
			RateLimitRPS:   10,
			RateLimitBurst: 20,
		},
	}
}

// loadConfig layers defaults, the TOML file and the environment. The default
// file is optional; a file named by CONFIG_FILE must exist.
func loadConfig() (*Config, error) {
	path, explicit := os.LookupEnv("CONFIG_FILE")
	if !explicit || path == "" {
		path, explicit = defaultConfigFile, false
	}
	cfg, err := readConfigFile(path, explicit)
	if err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

func readConfigFile(path string, required bool) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (cfg *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if os.Getenv("GIN_MODE") == "release" || os.Getenv("ENV") == "production" {
		cfg.Server.Production = true
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Server.LogLevel = v
	}
	if v := os.Getenv("LEVELS_FILE"); v != "" {
		cfg.Data.Levels = v
	}
	if v := os.Getenv("DICTIONARY_FILE"); v != "" {
		cfg.Data.Dictionary = v
	}

	cfg.Game.FoundDelay.Duration = getEnvDuration("FOUND_DELAY", cfg.Game.FoundDelay.Duration)
	cfg.Game.HiddenDelay.Duration = getEnvDuration("HIDDEN_DELAY", cfg.Game.HiddenDelay.Duration)
	cfg.Game.WinDelay.Duration = getEnvDuration("WIN_DELAY", cfg.Game.WinDelay.Duration)
	cfg.Game.Seed = int64(getEnvInt("GAME_SEED", int(cfg.Game.Seed)))

	cfg.Limits.SessionTimeout.Duration = getEnvDuration("SESSION_TIMEOUT", cfg.Limits.SessionTimeout.Duration)
	cfg.Limits.CookieMaxAge.Duration = getEnvDuration("COOKIE_MAX_AGE", cfg.Limits.CookieMaxAge.Duration)
	cfg.Limits.RateLimitRPS = getEnvInt("RATE_LIMIT_RPS", cfg.Limits.RateLimitRPS)
	cfg.Limits.RateLimitBurst = getEnvInt("RATE_LIMIT_BURST", cfg.Limits.RateLimitBurst)
}

// Delays converts the game section into core delays.
func (cfg *Config) Delays() puzzle.Delays {
	return puzzle.Delays{
		Found:  cfg.Game.FoundDelay.Duration,
		Hidden: cfg.Game.HiddenDelay.Duration,
		Win:    cfg.Game.WinDelay.Duration,
	}
}
