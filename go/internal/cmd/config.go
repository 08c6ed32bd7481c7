package main

import (
	"fmt"
	"os"
	"time"

	"github.com/draftforge/dynasty/go/internal/draft/scheduler"
	"gopkg.in/yaml.v3"
)

// Config is the static process configuration. Runtime secrets (database,
// broker) come from the environment; the yaml file carries the draft
// engine tunables an operator adjusts per deployment.
type Config struct {
	Draft struct {
		TickIntervalSeconds int `yaml:"tick_interval_seconds"`
		TickBatchSize       int `yaml:"tick_batch_size"`
		TickWorkers         int `yaml:"tick_workers"`
	} `yaml:"draft"`
}

// SchedulerConfig maps the yaml tunables onto the tick scheduler,
// deferring to its defaults for anything unset.
func (c *Config) SchedulerConfig() scheduler.Config {
	cfg := scheduler.DefaultConfig()
	if c.Draft.TickIntervalSeconds > 0 {
		cfg.PollInterval = time.Duration(c.Draft.TickIntervalSeconds) * time.Second
	}
	if c.Draft.TickBatchSize > 0 {
		cfg.BatchSize = int32(c.Draft.TickBatchSize)
	}
	if c.Draft.TickWorkers > 0 {
		cfg.NumWorkers = c.Draft.TickWorkers
	}
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}


func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}
