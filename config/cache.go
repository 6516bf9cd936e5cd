package config

// Cache groups configuration of the cache engine and its optional workers.
// Optional components are disabled by leaving them nil.
type Cache struct {
	DB DBCfg `yaml:"db"`

	// Sweeper runs incremental sweeps in the background whenever the number of
	// active objects exceeds DB.SizeBudget.
	// If nil, sweeps only happen when the owner calls them.
	Sweeper *SweeperCfg `yaml:"sweeper"`

	// Metrics exports engine counters to Prometheus.
	// If nil, metrics are not collected.
	Metrics *MetricsCfg `yaml:"metrics"`
}
