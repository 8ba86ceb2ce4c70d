package demo

import (
	"log/slog"
	"time"
)

type Config struct {
	AppName  string     `env:"APP_NAME" envDefault:"mathkit"`
	Env      string     `env:"APP_ENV" envDefault:"development"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	// LogFile is truncated on start. Empty logs to stderr.
	LogFile string        `env:"LOG_FILE" envDefault:"log.txt"`
	Wait    time.Duration `env:"WAIT" envDefault:"5s"`
	Locale  string        `env:"LOCALE" envDefault:"en"`
	Point   float64       `env:"POINT" envDefault:"4"`
}
