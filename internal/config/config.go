// Package config loads the houston.yaml project configuration and applies
// HOUSTON_* environment overrides on top of it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/rupertdev/houston/pkg/houston"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type PackageConfig struct {
	Name         string   `yaml:"name"`
	Maintainer   string   `yaml:"maintainer"`
	Architecture string   `yaml:"architecture,omitempty"`
	BuildDepends []string `yaml:"build_depends,omitempty"`
}

type ChecksConfig struct {
	Disabled []string `yaml:"disabled,omitempty"`
	Fix      bool     `yaml:"fix"`
}

type ProjectConfig struct {
	Control string        `yaml:"control,omitempty"`
	Package PackageConfig `yaml:"package"`
	Checks  ChecksConfig  `yaml:"checks"`
}

const ConfigFileName = houston.ConfigFileName

// Environment variables read by ApplyEnv.
const (
	EnvControl        = houston.EnvPrefix + "CONTROL"
	EnvPackage        = houston.EnvPrefix + "PACKAGE"
	EnvMaintainer     = houston.EnvPrefix + "MAINTAINER"
	EnvArchitecture   = houston.EnvPrefix + "ARCHITECTURE"
	EnvBuildDepends   = houston.EnvPrefix + "BUILD_DEPENDS"
	EnvDisabledChecks = houston.EnvPrefix + "DISABLED_CHECKS"
	EnvFix            = houston.EnvPrefix + "FIX"
)

func Load(workspacePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(workspacePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", configPath, err, houston.ErrInvalidConfig)
	}
	return &cfg, nil
}

// ApplyEnv overrides configuration values with HOUSTON_* variables found by
// lookup. List values are comma separated.
func (c *ProjectConfig) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvControl); ok {
		c.Control = v
	}
	if v, ok := lookup(EnvPackage); ok {
		c.Package.Name = v
	}
	if v, ok := lookup(EnvMaintainer); ok {
		c.Package.Maintainer = v
	}
	if v, ok := lookup(EnvArchitecture); ok {
		c.Package.Architecture = v
	}
	if v, ok := lookup(EnvBuildDepends); ok {
		c.Package.BuildDepends = splitList(v)
	}
	if v, ok := lookup(EnvDisabledChecks); ok {
		c.Checks.Disabled = splitList(v)
	}
	if v, ok := lookup(EnvFix); ok {
		fix, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q is not a boolean: %w", EnvFix, v, houston.ErrInvalidConfig)
		}
		c.Checks.Fix = fix
	}
	return nil
}

// Validate reports every problem with the configuration. knownChecks lists
// the check names accepted in checks.disabled.
func (c *ProjectConfig) Validate(knownChecks []string) error {
	var errs []error

	if strings.ContainsAny(c.Package.Name, " \t\n") {
		errs = append(errs, fmt.Errorf("package.name %q cannot contain whitespace: %w", c.Package.Name, houston.ErrInvalidConfig))
	}

	if strings.ContainsAny(c.Package.Architecture, ",\n") {
		errs = append(errs, fmt.Errorf("package.architecture %q must be space separated: %w", c.Package.Architecture, houston.ErrInvalidConfig))
	}

	for _, dep := range c.Package.BuildDepends {
		if strings.TrimSpace(dep) == "" {
			errs = append(errs, fmt.Errorf("package.build_depends cannot contain empty entries: %w", houston.ErrInvalidConfig))
			break
		}
	}

	for _, name := range c.Checks.Disabled {
		if !slices.Contains(knownChecks, name) {
			errs = append(errs, fmt.Errorf("checks.disabled: unknown check %q (known: %s): %w",
				name, strings.Join(knownChecks, ", "), houston.ErrInvalidConfig))
		}
	}

	return errors.Join(errs...)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
