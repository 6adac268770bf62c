package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config agrupa toda la configuración del servicio, cargada desde env vars.
type Config struct {
	AppName string `env:"APP_NAME" envDefault:"animal-health-service"`
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	Port    int    `env:"PORT" envDefault:"8080"`

	// Secreto HMAC para verificar los JWT emitidos por el servicio de usuarios.
	JWTSecret string `env:"JWT_SECRET,required,notEmpty"`

	// Si viene vacío, se usan repos in-memory (dev/tests).
	DatabaseDSN string `env:"DB_DSN"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}
