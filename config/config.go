package config

import (
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
)

const defaultSweeperCallsPerSec = 1

func (cfg *Cache) AdjustConfig() {
	if cfg.DB.SizeBudget <= 0 {
		cfg.DB.SizeBudget = DefaultSizeBudget
	}
	if cfg.DB.DrainResistance < 0 {
		cfg.DB.DrainResistance = 0
	}
	if cfg.DB.TelemetryLogsInterval <= 0 {
		cfg.DB.TelemetryLogsInterval = DefaultTelemetryLogsInterval
	}

	if cfg.Sweeper.Enabled() && cfg.Sweeper.CallsPerSec <= 0 {
		cfg.Sweeper.CallsPerSec = defaultSweeperCallsPerSec
	}
}

func LoadConfig(path string) (*Cache, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config yaml file %s: %w", path, err)
	}

	var cfg *Cache
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml from %s: %w", path, err)
	}
	if cfg == nil {
		cfg = &Cache{}
	}
	cfg.AdjustConfig()

	return cfg, nil
}
