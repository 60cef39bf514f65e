package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"golang.org/x/oauth2"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/weibo"
	"github.com/dmitrymomot/weibo/internal/loginserver"
	"github.com/dmitrymomot/weibo/pkg/logger"
)

// appConfig is the CLI configuration file layout.
type appConfig struct {
	Weibo  weibo.Config        `yaml:"weibo"`
	Sentry logger.SentryConfig `yaml:"sentry"`
	Log    struct {
		Level string `env:"LOG_LEVEL" yaml:"level"`
	} `yaml:"log"`
	Server struct {
		Addr         string `env:"WEIBO_SERVER_ADDR" yaml:"addr"`
		SecureCookie bool   `env:"WEIBO_SECURE_COOKIE" yaml:"secure_cookie"`
	} `yaml:"server"`
}

// loadConfig reads path (if set) and overlays environment variables.
func loadConfig(path string) (*appConfig, error) {
	var cfg appConfig
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	return &cfg, nil
}

func (c *appConfig) logger() *slog.Logger {
	return logger.NewWithSentry(c.Sentry, logger.ParseLevel(c.Log.Level), loginserver.RequestID)
}

// profileUser hands the normalized profile back as the authenticated user.
func profileUser(_ context.Context, _ *oauth2.Token, p *weibo.Profile) (any, error) {
	return p, nil
}

func (c *appConfig) strategy(log *slog.Logger) (*weibo.Strategy, error) {
	s, err := weibo.New(c.Weibo, profileUser, weibo.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("failed to create strategy: %w", err)
	}
	return s, nil
}
