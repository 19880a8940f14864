package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	GameRPSLS     = "rpsls"
	GameTicTacToe = "tictactoe"
	GameTwentyOne = "twentyone"
)

var (
	ErrUnknownGame         = errors.New("unknown game")
	ErrInvalidWinsRequired = errors.New("wins required must be at least 1")
)

type Config struct {
	LogLevel     string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Game         string `yaml:"game" env:"GAME" env-default:"rpsls"`
	WinsRequired int    `yaml:"wins-required" env:"WINS_REQUIRED" env-default:"5"`
	// Seed of the random source; 0 picks a fresh seed on every run.
	Seed uint64 `yaml:"seed" env:"SEED" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file, environment variables take precedence.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err := config.Validate(); err != nil {
		panic(fmt.Errorf("invalid config: %w", err))
	}

	return config
}

func (that *Config) Validate() error {
	switch that.Game {
	case GameRPSLS, GameTicTacToe, GameTwentyOne:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGame, that.Game)
	}

	if that.WinsRequired < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidWinsRequired, that.WinsRequired)
	}

	return nil
}
