package config

import "github.com/prometheus/client_golang/prometheus"

type MetricsCfg struct {
	Namespace   string            `yaml:"namespace"`
	Subsystem   string            `yaml:"subsystem"`
	ConstLabels map[string]string `yaml:"const_labels"`

	// Registerer receives the collectors. Nil means prometheus.DefaultRegisterer.
	// It is not read from YAML.
	Registerer prometheus.Registerer `yaml:"-"`
}

func (cfg *MetricsCfg) Enabled() bool {
	return cfg != nil
}
