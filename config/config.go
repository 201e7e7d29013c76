package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/04pril/minesweeper/session"
)

const (
	EnvDifficulty = "MINESWEEPER_DIFFICULTY"
	EnvWidth      = "MINESWEEPER_WIDTH"
	EnvHeight     = "MINESWEEPER_HEIGHT"
	EnvMines      = "MINESWEEPER_MINES"
	EnvSeed       = "MINESWEEPER_SEED"
	EnvLogLevel   = "MINESWEEPER_LOG_LEVEL"
	EnvLogFormat  = "MINESWEEPER_LOG_FORMAT"
)

var ErrInvalidValue = errors.New("invalid configuration value")

// Config holds the process level settings.
type Config struct {
	DifficultyName string // preset name or "custom"
	Width          int    // custom only
	Height         int    // custom only
	Mines          int    // custom only

	Seed uint64 // 0 picks a random seed

	LogLevel  logrus.Level
	LogFormat string // text or json
}

type lookup func(key string) (string, bool)

// Load reads the environment, falling back to values from the given .env
// files. With no files it tries ./.env and ignores its absence. Variables
// already set in the environment win over file values, and the files never
// modify the process environment.
func Load(files ...string) (*Config, error) {
	fileVals, err := godotenv.Read(files...)
	if err != nil {
		if len(files) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read env files: %w", err)
		}
		fileVals = map[string]string{}
	}
	get := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVals[key]
		return v, ok
	}
	return parse(get)
}

func parse(get lookup) (*Config, error) {
	c := &Config{
		DifficultyName: strings.ToLower(strings.TrimSpace(value(get, EnvDifficulty, session.Easy.Name))),
		LogFormat:      strings.ToLower(strings.TrimSpace(value(get, EnvLogFormat, "text"))),
	}

	var err error
	if c.LogLevel, err = logrus.ParseLevel(value(get, EnvLogLevel, "info")); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", EnvLogLevel, ErrInvalidValue, err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return nil, fmt.Errorf("%s=%q: %w", EnvLogFormat, c.LogFormat, ErrInvalidValue)
	}
	if s, ok := get(EnvSeed); ok && s != "" {
		if c.Seed, err = strconv.ParseUint(s, 10, 64); err != nil {
			return nil, fmt.Errorf("%s: %w: %v", EnvSeed, ErrInvalidValue, err)
		}
	}
	if c.Width, err = intValue(get, EnvWidth); err != nil {
		return nil, err
	}
	if c.Height, err = intValue(get, EnvHeight); err != nil {
		return nil, err
	}
	if c.Mines, err = intValue(get, EnvMines); err != nil {
		return nil, err
	}

	if _, err := c.Difficulty(); err != nil {
		return nil, err
	}
	return c, nil
}

func value(get lookup, key, def string) string {
	if v, ok := get(key); ok && v != "" {
		return v
	}
	return def
}

func intValue(get lookup, key string) (int, error) {
	s, ok := get(key)
	if !ok || s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w: %v", key, ErrInvalidValue, err)
	}
	return n, nil
}

// Difficulty resolves the configured preset, or builds the custom board
// from width, height and mines.
func (c *Config) Difficulty() (session.Difficulty, error) {
	if c.DifficultyName == "custom" {
		d, err := session.Custom(c.Width, c.Height, c.Mines)
		if err != nil {
			return session.Difficulty{}, fmt.Errorf("%s=custom: %w", EnvDifficulty, err)
		}
		return d, nil
	}
	d, err := session.ParseDifficulty(c.DifficultyName)
	if err != nil {
		return session.Difficulty{}, fmt.Errorf("%s: %w", EnvDifficulty, err)
	}
	return d, nil
}

// Rand returns a PCG source seeded from Seed, so a fixed seed replays the
// same mine layouts.
func (c *Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func (c *Config) Logger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(c.LogLevel)
	if c.LogFormat == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l
}

// SessionOptions wires the logger and random source into a session.
func (c *Config) SessionOptions() []session.Option {
	return []session.Option{
		session.WithLogger(c.Logger()),
		session.WithRand(c.Rand()),
	}
}
