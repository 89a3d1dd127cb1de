package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"liner/internal/config"
	"liner/internal/ingest"
	"liner/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) newLogger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}

// buildEnv carries the pieces a post-build step needs.
type buildEnv struct {
	cfg    *config.Config
	logger *slog.Logger
}

// runBuild runs the ingest pipeline under a signal-aware context and hands
// the result to fn.
func (c *commandContext) runBuild(cmdCtx context.Context, fn func(context.Context, buildEnv, *ingest.Result) error) error {
	signalCtx, cancel := signal.NotifyContext(cmdCtx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := c.ensureConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger, err := c.newLogger()
	if err != nil {
		return err
	}

	res, err := ingest.NewBuilder(cfg, logger).Build(signalCtx)
	if err != nil {
		return err
	}
	return fn(signalCtx, buildEnv{cfg: cfg, logger: logger}, res)
}
