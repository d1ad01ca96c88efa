package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const pathEnv = "DRILLS_CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   15 * time.Second,
			MaxBodyBytes:      1 << 15,
			AllowedOrigins:    []string{"http://localhost:3000", "http://localhost:5173"},
		},
		Log: LogConfig{Mode: "development", Level: "debug"},
		DB: DBConfig{
			Driver:     "sqlite",
			Host:       "localhost",
			Port:       5432,
			User:       "postgres",
			Name:       "drills",
			SQLitePath: "drills.db",
		},
		Redis: RedisConfig{Addr: "localhost:6379", TTL: 24 * time.Hour},
		LLM: LLMConfig{
			BaseURL:     "https://api.openai.com/v1",
			Model:       "gpt-4o-mini",
			Timeout:     60 * time.Second,
			MaxAttempts: 2,
		},
		Generation: GenerationConfig{
			MaxTries:           80,
			FallbackDifficulty: "hsk3",
			MaxAnswerRunes:     2000,
		},
		Metrics: MetricsConfig{Enabled: true, Path: "/metrics"},
		Otel: OtelConfig{
			ServiceName: "connective-drills",
			Environment: "development",
			SampleRatio: 0.1,
		},
	}
}

// Load layers defaults, then the YAML file named by DRILLS_CONFIG_PATH (or
// ./config/config.yaml when present), then environment overrides.
func Load() (*Config, error) {
	return LoadFrom(environMap(os.Environ()))
}

// LoadFrom is Load with an explicit environment.
func LoadFrom(environ map[string]string) (*Config, error) {
	cfg := defaultConfig()

	cfgPath := strings.TrimSpace(environ[pathEnv])
	if cfgPath == "" {
		if wd, err := os.Getwd(); err == nil {
			p := filepath.Join(wd, "config", "config.yaml")
			if _, err := os.Stat(p); err == nil {
				cfgPath = p
			}
		}
	}
	if cfgPath != "" {
		b, err := os.ReadFile(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		return errors.New("http.addr is required")
	}
	if c.HTTP.MaxBodyBytes <= 0 {
		c.HTTP.MaxBodyBytes = 1 << 15
	}
	if c.Generation.MaxTries <= 0 {
		return fmt.Errorf("generation.max_tries must be positive, got %d", c.Generation.MaxTries)
	}
	if c.Generation.MaxAnswerRunes <= 0 {
		c.Generation.MaxAnswerRunes = 2000
	}
	switch strings.ToLower(strings.TrimSpace(c.DB.Driver)) {
	case "postgres", "sqlite":
		c.DB.Driver = strings.ToLower(strings.TrimSpace(c.DB.Driver))
	default:
		return fmt.Errorf("db.driver must be postgres or sqlite, got %q", c.DB.Driver)
	}
	if c.LLM.Enabled && strings.TrimSpace(c.LLM.APIKey) == "" {
		return errors.New("llm.enabled requires OPENAI_API_KEY")
	}
	if c.LLM.MaxAttempts <= 0 {
		c.LLM.MaxAttempts = 1
	}
	if c.Otel.SampleRatio < 0 {
		c.Otel.SampleRatio = 0
	}
	if c.Otel.SampleRatio > 1 {
		c.Otel.SampleRatio = 1
	}
	if strings.TrimSpace(c.Metrics.Path) == "" {
		c.Metrics.Path = "/metrics"
	}
	return nil
}

func environMap(kv []string) map[string]string {
	out := make(map[string]string, len(kv))
	for _, e := range kv {
		k, v, ok := strings.Cut(e, "=")
		if ok {
			out[k] = v
		}
	}
	return out
}
