package config

type SweeperCfg struct {
	// CallsPerSec defines how many times per second the sweeper checks the cache size.
	// Each check that finds the cache over budget runs one incremental sweep.
	CallsPerSec int `yaml:"calls_per_sec"`
}

func (cfg *SweeperCfg) Enabled() bool {
	return cfg != nil
}
