package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"
)

// ErrInvalidDuration is returned for duration tokens that look numeric
// but do not parse (e.g. "45x").
var ErrInvalidDuration = errors.New("invalid duration token")

// Times holds the phase durations as compact tokens ("25m", "90s", "1h",
// or bare digits meaning minutes).
type Times struct {
	Work       string `json:"work"`
	ShortBreak string `json:"short_break"`
	LongBreak  string `json:"long_break"`
}

// Colors holds the terminal palette. Values are ANSI color names
// (cyan, magenta, ...) or hex codes.
type Colors struct {
	Work  string `json:"work"`
	Break string `json:"break"`
	Pause string `json:"pause"`
	Dim   string `json:"dim"`
}

// GameBalance holds the XP tuning knobs
type GameBalance struct {
	XPPerMinute        float64 `json:"xp_per_minute"`
	OvertimeMultiplier float64 `json:"overtime_multiplier"`
	BreakSkipXPPerMin  float64 `json:"break_skip_xp_per_min"`
}

// Sounds holds the optional phase-start sound files played via paplay
type Sounds struct {
	Enabled bool   `json:"enabled"`
	Work    string `json:"work"`
	Break   string `json:"break"`
}

// Config is the user-editable configuration document
type Config struct {
	Times       Times       `json:"times"`
	Colors      Colors      `json:"colors"`
	GameBalance GameBalance `json:"game_balance"`
	Sounds      Sounds      `json:"sounds"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Times: Times{
			Work:       "25m",
			ShortBreak: "5m",
			LongBreak:  "15m",
		},
		Colors: Colors{
			Work:  "cyan",
			Break: "magenta",
			Pause: "yellow",
			Dim:   "bright_black",
		},
		GameBalance: GameBalance{
			XPPerMinute:        10,
			OvertimeMultiplier: 2.0,
			BreakSkipXPPerMin:  5,
		},
		Sounds: Sounds{
			Enabled: true,
			Work:    "/usr/share/sounds/freedesktop/stereo/complete.oga",
			Break:   "/usr/share/sounds/freedesktop/stereo/service-login.oga",
		},
	}
}

// Dir returns the configuration directory path
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hypr_pomo"
	}
	return filepath.Join(home, ".config", "hypr_pomo")
}

// Path returns the configuration file path
func Path() string {
	return filepath.Join(Dir(), "config.json")
}

// Load reads the configuration from path, creating it with defaults when
// missing. A malformed file yields the defaults together with a non-nil
// error so the caller can warn; it is never fatal.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		// First run: materialize the defaults so users can edit them.
		// Failing to write is not fatal; the in-memory defaults stand.
		if werr := write(path, cfg); werr != nil {
			return cfg, fmt.Errorf("write default config: %w", werr)
		}
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	// Unmarshal over the defaults so missing keys keep their default value
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var durationPattern = regexp.MustCompile(`^(\d+)([smh])$`)

// ParseDuration parses a compact duration token: "90s", "45m", "1h", or
// bare digits meaning minutes.
func ParseDuration(token string) (time.Duration, error) {
	if token == "" {
		return 0, fmt.Errorf("%w: empty token", ErrInvalidDuration)
	}

	if n, err := strconv.Atoi(token); err == nil {
		if n <= 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, token)
		}
		return time.Duration(n) * time.Minute, nil
	}

	m := durationPattern.FindStringSubmatch(token)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, token)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, token)
	}

	switch m[2] {
	case "s":
		return time.Duration(n) * time.Second, nil
	case "m":
		return time.Duration(n) * time.Minute, nil
	case "h":
		return time.Duration(n) * time.Hour, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, token)
}

// WorkDuration returns the configured work duration, falling back to the
// default when the token is unparseable.
func (c Config) WorkDuration() time.Duration {
	return durationOr(c.Times.Work, 25*time.Minute)
}

// ShortBreakDuration returns the configured short break duration
func (c Config) ShortBreakDuration() time.Duration {
	return durationOr(c.Times.ShortBreak, 5*time.Minute)
}

// LongBreakDuration returns the configured long break duration
func (c Config) LongBreakDuration() time.Duration {
	return durationOr(c.Times.LongBreak, 15*time.Minute)
}

func durationOr(token string, fallback time.Duration) time.Duration {
	d, err := ParseDuration(token)
	if err != nil {
		return fallback
	}
	return d
}
