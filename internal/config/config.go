package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/ilyakaznacheev/cleanenv"
)

var (
	ErrInvalidSymbols  = errors.New("exactly two distinct single-character player symbols are required")
	ErrInvalidPriority = errors.New("computer priority must be win-first or block-first")
)

type Config struct {
	LogLevel          string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort          string    `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort        string    `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	PublicURL         string    `yaml:"public-url" env:"PUBLIC_URL" env-default:"http://localhost:9090"`
	Redis             Redis     `yaml:"redis"`
	SQLiteStoragePath string    `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"./tictactoe.db"`
	TicTacToe         TicTacToe `yaml:"tictactoe"`
	Computer          Computer  `yaml:"computer"`
	SMTP              SMTP      `yaml:"smtp"`
}

type Redis struct {
	Host     string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	TokenTTL time.Duration `yaml:"token-ttl" env:"REDIS_TOKEN_TTL" env-default:"720h"`
}

type TicTacToe struct {
	PlayerSymbols []string `yaml:"player-symbols" env:"TICTACTOE_PLAYER_SYMBOLS" env-default:"X,O"`
	ComputerName  string   `yaml:"computer-name" env:"TICTACTOE_COMPUTER_NAME" env-default:"Computer"`
}

type Computer struct {
	Priority string `yaml:"priority" env:"COMPUTER_PRIORITY" env-default:"win-first"`
}

type SMTP struct {
	Host     string `yaml:"host" env:"SMTP_HOST" env-default:""`
	Port     string `yaml:"port" env:"SMTP_PORT" env-default:"25"`
	Username string `yaml:"username" env:"SMTP_USERNAME" env-default:""`
	Password string `yaml:"password" env:"SMTP_PASSWORD" env-default:""`
	From     string `yaml:"from" env:"SMTP_FROM" env-default:"tictactoe@localhost"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	symbols := that.TicTacToe.PlayerSymbols
	if len(symbols) != 2 || symbols[0] == symbols[1] {
		return fmt.Errorf("%w: %v", ErrInvalidSymbols, symbols)
	}

	for _, symbol := range symbols {
		if utf8.RuneCountInString(symbol) != 1 {
			return fmt.Errorf("%w: %q", ErrInvalidSymbols, symbol)
		}
	}

	switch that.Computer.Priority {
	case "win-first", "block-first":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPriority, that.Computer.Priority)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that *SMTP) GetSMTPAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that *SMTP) Enabled() bool {
	return that.Host != ""
}
