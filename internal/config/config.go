package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	WSPath          string        `env:"WS_PATH" envDefault:"/room"`
	AppEnv          string        `env:"APP_ENV" envDefault:"development"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"text"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	WS   WSConfig
	Room RoomConfig
}

// WSConfig tunes the websocket transport.
type WSConfig struct {
	ReadLimit  int64         `env:"WS_READ_LIMIT" envDefault:"4096"`
	SendBuffer int           `env:"WS_SEND_BUFFER" envDefault:"64"`
	PingPeriod time.Duration `env:"WS_PING_PERIOD" envDefault:"54s"`
	WriteWait  time.Duration `env:"WS_WRITE_WAIT" envDefault:"10s"`
}

// PongWait is how long a connection may stay silent before it is considered gone.
func (c WSConfig) PongWait() time.Duration {
	return c.PingPeriod * 10 / 9
}

type RoomConfig struct {
	IDLength int `env:"ROOM_ID_LENGTH" envDefault:"6"`
}

// Default returns the configuration with every default applied and no
// environment lookup.
func Default() Config {
	var c Config
	_ = env.ParseWithOptions(&c, env.Options{Environment: map[string]string{}})
	return c
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var c Config
	if err := env.Parse(&c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid LOG_FORMAT %q: want text or json", c.LogFormat)
	}
	if c.Room.IDLength < 4 || c.Room.IDLength > 32 {
		return fmt.Errorf("invalid ROOM_ID_LENGTH %d: want 4..32", c.Room.IDLength)
	}
	if c.WS.SendBuffer < 1 {
		return fmt.Errorf("invalid WS_SEND_BUFFER %d", c.WS.SendBuffer)
	}
	if c.WS.PingPeriod <= 0 || c.WS.WriteWait <= 0 {
		return fmt.Errorf("websocket timings must be positive")
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// NewLogger builds the process logger from LOG_LEVEL and LOG_FORMAT.
func (c Config) NewLogger() *logrus.Logger {
	log := logrus.New()
	if c.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
