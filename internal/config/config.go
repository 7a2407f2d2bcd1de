package config

import (
	"fmt"

	env "github.com/caarlos0/env/v11"
)

type CommonConfig struct {
	LogLevel string `env:"COMMON_LOG_LEVEL" envDefault:"info"`
}

type HTTPConfig struct {
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`
}

type StoreConfig struct {
	Path string `env:"CAFE_DB_PATH" envDefault:"cafe-eight.db"`
}

type RabbitConfig struct {
	// URL enables the order-event mirror when set; empty means events are off.
	URL string `env:"RABBIT_URL"`
}

type Config struct {
	Common CommonConfig
	HTTP   HTTPConfig
	Store  StoreConfig
	Rabbit RabbitConfig
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Store.Path == "" {
		return Config{}, fmt.Errorf("store path is empty: set CAFE_DB_PATH")
	}
	return cfg, nil
}
