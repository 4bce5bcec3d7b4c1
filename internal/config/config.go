// Package config resolves the registrar's settings from the environment.
//
// Every variable has a working default, so a bare invocation inside the
// application container configures itself. Missing variables never error.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/fusionsystems/reviewcron/internal/constants"
)

// Config holds the resolved settings for one invocation.
type Config struct {
	// ProjectPath is the application directory the job runs in.
	ProjectPath string
	// PythonPath is the interpreter invoked for manage.py.
	PythonPath string
	// Environment selects the schedule tier. Free-form; unrecognized
	// values fall back to the development tier.
	Environment string
	// TierFile is an optional TOML file overriding the built-in tiers.
	TierFile string
	// TextfileDir, when set, receives a node-exporter textfile metric
	// snapshot after each successful install.
	TextfileDir string

	Logging LoggingConfig
}

// LoggingConfig configures the diagnostic logger.
type LoggingConfig struct {
	Level  string
	Format string
}

// FromEnv builds a Config from the process environment, filling defaults
// for anything unset.
func FromEnv() *Config {
	cfg := &Config{
		ProjectPath: os.Getenv(constants.EnvProjectPath),
		PythonPath:  os.Getenv(constants.EnvPythonPath),
		Environment: os.Getenv(constants.EnvEnvironment),
		TierFile:    os.Getenv(constants.EnvTierFile),
		TextfileDir: os.Getenv(constants.EnvTextfileDir),
		Logging: LoggingConfig{
			Level:  os.Getenv(constants.EnvLogLevel),
			Format: os.Getenv(constants.EnvLogFormat),
		},
	}

	applyDefaults(cfg)

	return cfg
}

// Validate checks the configuration and returns all problems found.
// It never touches the filesystem: whether ProjectPath or PythonPath
// actually exist is checked by `reviewcron doctor`, not here.
func (c *Config) Validate() []error {
	var errors []error

	if c.ProjectPath == "" {
		errors = append(errors, fmt.Errorf("%s cannot be empty", constants.EnvProjectPath))
	} else if hasParentRef(c.ProjectPath) {
		errors = append(errors, fmt.Errorf("%s contains potentially dangerous path traversal sequence", constants.EnvProjectPath))
	}

	if c.PythonPath == "" {
		errors = append(errors, fmt.Errorf("%s cannot be empty", constants.EnvPythonPath))
	}

	if c.Logging.Level == "" {
		errors = append(errors, fmt.Errorf("logging level is required"))
	} else {
		validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
		if !validLevels[strings.ToLower(c.Logging.Level)] {
			errors = append(errors, fmt.Errorf("invalid logging level: %s (expected: debug, info, warn, error)", c.Logging.Level))
		}
	}

	if c.Logging.Format == "" {
		errors = append(errors, fmt.Errorf("logging format is required"))
	} else {
		validFormats := map[string]bool{"json": true, "text": true}
		if !validFormats[strings.ToLower(c.Logging.Format)] {
			errors = append(errors, fmt.Errorf("invalid logging format: %s (expected: json, text)", c.Logging.Format))
		}
	}

	return errors
}

// hasParentRef reports whether any path element is "..". A ".." inside
// a name, like /srv/app..v2, is a legal directory and passes.
func hasParentRef(path string) bool {
	for _, elem := range strings.Split(path, "/") {
		if elem == ".." {
			return true
		}
	}
	return false
}

// applyDefaults fills empty fields with the documented defaults.
func applyDefaults(c *Config) {
	if c.ProjectPath == "" {
		c.ProjectPath = constants.DefaultProjectPath
	}
	if c.PythonPath == "" {
		c.PythonPath = constants.DefaultPythonPath
	}
	if c.Environment == "" {
		c.Environment = constants.ModeDevelopment
	}
	if c.Logging.Level == "" {
		c.Logging.Level = constants.DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = constants.DefaultLogFormat
	}
}
