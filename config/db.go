package config

import "time"

const (
	DefaultSizeBudget            = 100
	DefaultTelemetryLogsInterval = 5 * time.Second
)

type DBCfg struct {
	// SizeBudget is the soft cap on the number of active (non-ghost) objects.
	// Incremental sweeps ghost the oldest objects until the cache fits.
	SizeBudget int `yaml:"size_budget"`

	// DrainResistance makes incremental sweeps drain the cache even without growth:
	// with N > 0 each sweep also targets active-1-active/N. Zero disables draining.
	DrainResistance int `yaml:"drain_resistance"`

	// CacheAge is accepted for compatibility and ignored.
	CacheAge int `yaml:"cache_age"`

	// RingChecking walks the whole ring around every structural operation.
	// Builds with the "invariants" tag always check.
	RingChecking bool `yaml:"ring_checking"`

	// EngineNoise emits a debug trace of sweep decisions.
	EngineNoise bool `yaml:"engine_noise"`

	IsTelemetryLogsEnabled bool          `yaml:"stat_logs_enabled"`
	TelemetryLogsInterval  time.Duration `yaml:"stat_logs_interval"`
}
