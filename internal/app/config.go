package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	MeshPath string // hcl file or directory of hcl files

	// Vars are CLI-supplied values exposed to mesh expressions as `var.*`.
	Vars map[string]string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config value.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.MeshPath == "" {
		return nil, errors.New("MeshPath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
