package main

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-yaml/yaml"
	"github.com/pkg/errors"

	"github.com/totegamma/longrest/core"
)

type Config struct {
	Server   Server   `yaml:"server"`
	Auth     Auth     `yaml:"auth"`
	Longrest Longrest `yaml:"longrest"`
}

type Server struct {
	Dsn           string `yaml:"dsn" env:"LONGREST_DSN"`
	RedisAddr     string `yaml:"redisAddr" env:"LONGREST_REDIS_ADDR"`
	RedisDB       int    `yaml:"redisDB" env:"LONGREST_REDIS_DB"`
	MemcachedAddr string `yaml:"memcachedAddr" env:"LONGREST_MEMCACHED_ADDR"`
	EnableTrace   bool   `yaml:"enableTrace" env:"LONGREST_ENABLE_TRACE"`
	TraceEndpoint string `yaml:"traceEndpoint" env:"LONGREST_TRACE_ENDPOINT"`
	Listen        string `yaml:"listen" env:"LONGREST_LISTEN"`
}

type Auth struct {
	JWTSecret string `yaml:"jwtSecret" env:"LONGREST_JWT_SECRET"`
	Audience  string `yaml:"audience" env:"LONGREST_JWT_AUDIENCE"`
}

type Longrest struct {
	InFlightTTL    time.Duration `yaml:"inFlightTTL" env:"LONGREST_INFLIGHT_TTL"`
	IdempotencyTTL time.Duration `yaml:"idempotencyTTL" env:"LONGREST_IDEMPOTENCY_TTL"`
}

// Load reads the yaml file at path, then applies environment overrides.
// A missing file is not an error as long as the environment fills the gaps.
func (c *Config) Load(path string) error {
	f, err := os.Open(path)
	if err == nil {
		defer f.Close()
		err = yaml.NewDecoder(f).Decode(c)
		if err != nil {
			return errors.Wrap(err, "failed to load configuration file")
		}
	} else if !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to open configuration file")
	}

	if err := env.Parse(c); err != nil {
		return errors.Wrap(err, "failed to apply environment overrides")
	}

	if c.Server.Listen == "" {
		c.Server.Listen = ":8000"
	}
	if c.Longrest.IdempotencyTTL <= 0 {
		c.Longrest.IdempotencyTTL = 24 * time.Hour
	}

	return nil
}

// Core projects the file layout onto the settings the services read
func (c Config) Core() core.Config {
	return core.Config{
		JWTSecret:      c.Auth.JWTSecret,
		Audience:       c.Auth.Audience,
		InFlightTTL:    c.Longrest.InFlightTTL,
		IdempotencyTTL: c.Longrest.IdempotencyTTL,
	}
}
