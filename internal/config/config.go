package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidGameConfig = errors.New("invalid game config")

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Redis      Redis  `yaml:"redis"`
	Game       Game   `yaml:"game"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Game holds the defaults offered to the table before a game is started.
type Game struct {
	PlayerCount  int           `yaml:"player-count" env:"GAME_PLAYER_COUNT" env-default:"4"`
	RuleVariant  string        `yaml:"rule-variant" env:"GAME_RULE_VARIANT" env-default:"single"`
	WinningScore int           `yaml:"winning-score" env:"GAME_WINNING_SCORE" env-default:"0"`
	SessionTTL   time.Duration `yaml:"session-ttl" env:"GAME_SESSION_TTL" env-default:"24h"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// Validate - checks the game defaults using the same predicates as the rules engine.
func (that *Game) Validate(supportedPlayerCount func(int) bool, knownVariant func(string) bool) error {
	if !supportedPlayerCount(that.PlayerCount) {
		return fmt.Errorf("%w: player count %d", ErrInvalidGameConfig, that.PlayerCount)
	}

	if !knownVariant(that.RuleVariant) {
		return fmt.Errorf("%w: rule variant %q", ErrInvalidGameConfig, that.RuleVariant)
	}

	if that.WinningScore < 0 {
		return fmt.Errorf("%w: winning score %d", ErrInvalidGameConfig, that.WinningScore)
	}

	return nil
}
