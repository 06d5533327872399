package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ScriptPath points at a single script file, or a directory scanned
	// for scripts matching Extensions.
	ScriptPath string
	// ValuesPath optionally points at an HCL values file providing
	// explicit input bindings.
	ValuesPath string
	// Extensions are the file suffixes treated as scripts in directory
	// mode, e.g. ".py".
	Extensions []string

	LogFormat string
	LogLevel  string
}

// NewConfig validates the configuration and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ScriptPath == "" {
		return nil, errors.New("ScriptPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
