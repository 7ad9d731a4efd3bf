package config

import (
	"fmt"

	"github.com/Anson-Quek/weverse-go/pkg/lib"
	"github.com/Anson-Quek/weverse-go/pkg/lib/log"
	"github.com/Anson-Quek/weverse-go/pkg/stream"
	"github.com/Anson-Quek/weverse-go/pkg/weverse"
	"github.com/joeshaw/envdecode"
)

type Config struct {
	Weverse weverse.Config `env:""`
	Stream  stream.Config  `env:""`
	Log     log.Config     `env:""`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := lib.ValidateStruct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
