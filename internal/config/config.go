package config

import (
	"io"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidScoreLimit  = errors.New("score limit must be at least 1")
	ErrInvalidFallibility = errors.New("fallibility must be within [0, 1]")
	ErrInvalidMarker      = errors.New("player marker must be X or O")
	ErrInvalidFirstMover  = errors.New("first mover must be player, computer or alternate")
	ErrNoComputerNames    = errors.New("at least one computer name is required")
)

const DefaultPath = "./config.yml"

type FirstMover string

const (
	FirstMoverPlayer    = FirstMover("player")
	FirstMoverComputer  = FirstMover("computer")
	FirstMoverAlternate = FirstMover("alternate")
)

type Config struct {
	ScoreLimit    int        `yaml:"score_limit" env:"TTT_SCORE_LIMIT" env-description:"rounds a player must win to become champion"`
	Fallibility   float64    `yaml:"fallibility" env:"TTT_FALLIBILITY" env-description:"probability the computer ignores its heuristic"`
	FirstMover    FirstMover `yaml:"first_mover" env:"TTT_FIRST_MOVER" env-description:"player, computer or alternate"`
	PlayerName    string     `yaml:"player_name" env:"TTT_PLAYER_NAME" env-description:"human name, asked for when empty"`
	PlayerMarker  string     `yaml:"player_marker" env:"TTT_PLAYER_MARKER" env-description:"X or O"`
	ComputerNames []string   `yaml:"computer_names" env:"TTT_COMPUTER_NAMES" env-description:"comma separated names the computer picks from"`
	Seed          uint64     `yaml:"seed" env:"TTT_SEED" env-description:"random seed, 0 picks one from the clock"`
	Animation     bool       `yaml:"animation" env:"TTT_ANIMATION" env-description:"play the champion fireworks"`
	EventsFile    string     `yaml:"events_file" env:"TTT_EVENTS_FILE" env-description:"write JSON lines events to this file"`
	LogLevel      string     `yaml:"log_level" env:"TTT_LOG_LEVEL" env-description:"debug, info, warn or error"`
	LogOutput     string     `yaml:"log_output" env:"TTT_LOG_OUTPUT" env-description:"zap output path"`
}

func defaults() Config {
	return Config{
		ScoreLimit:    2,
		Fallibility:   0.1,
		FirstMover:    FirstMoverPlayer,
		PlayerMarker:  "X",
		ComputerNames: []string{"R2D2", "Hal", "Chappie", "Sonny", "Number 5"},
		Animation:     true,
		LogLevel:      "warn",
		LogOutput:     "stderr",
	}
}

// New reads the YAML file at cfgPath over the defaults, then applies
// environment overrides. A missing file is tolerated only for DefaultPath.
func New(cfgPath string) (Config, error) {
	cfg := defaults()
	file, err := os.Open(cfgPath)
	switch {
	case err == nil:
		defer func() {
			_ = file.Close()
		}()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, errors.WithMessagef(err, "decode config file '%s'", cfgPath)
		}
	case os.IsNotExist(err) && cfgPath == DefaultPath:
	default:
		return Config{}, errors.WithMessage(err, "open config file")
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, errors.WithMessage(err, "read config from environment")
	}
	cfg.PlayerMarker = strings.ToUpper(strings.TrimSpace(cfg.PlayerMarker))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// EnvUsage writes the supported environment variables to w.
func EnvUsage(w io.Writer) {
	cfg := defaults()
	cleanenv.FUsage(w, &cfg, nil)()
}

func (c Config) Validate() error {
	if c.ScoreLimit < 1 {
		return ErrInvalidScoreLimit
	}
	if c.Fallibility < 0 || c.Fallibility > 1 {
		return ErrInvalidFallibility
	}
	if c.PlayerMarker != "X" && c.PlayerMarker != "O" {
		return errors.WithMessagef(ErrInvalidMarker, "got '%s'", c.PlayerMarker)
	}
	switch c.FirstMover {
	case FirstMoverPlayer, FirstMoverComputer, FirstMoverAlternate:
	default:
		return errors.WithMessagef(ErrInvalidFirstMover, "got '%s'", c.FirstMover)
	}
	if len(c.ComputerNames) == 0 {
		return ErrNoComputerNames
	}
	return nil
}

// Dump renders the effective configuration as YAML.
func (c Config) Dump() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.WithMessage(err, "marshal config")
	}
	return out, nil
}
