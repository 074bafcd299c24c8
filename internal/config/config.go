// Package config provides configuration management.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"pouch-cost/core/types"
	"pouch-cost/internal/errors"
	"pouch-cost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" toml:"version" yaml:"version"`

	// Materials maps a material identifier to its rate and density.
	// Entries are merged over the built-in materials.
	Materials map[string]MaterialConfig `json:"materials" toml:"materials" yaml:"materials"`

	// Defaults fill in process assumptions a job leaves out
	Defaults types.ProcessDefaults `json:"defaults" toml:"defaults" yaml:"defaults"`

	// Server contains HTTP API configuration
	Server ServerConfig `json:"server" toml:"server" yaml:"server"`

	// Output contains output configuration
	Output OutputConfig `json:"output" toml:"output" yaml:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" toml:"logging" yaml:"logging"`
}

// MaterialConfig is one row of the material library. A zero value means
// "not set": the built-in figure, or the engine fallback, applies.
type MaterialConfig struct {
	// Rate is the price per kg
	Rate float64 `json:"rate" toml:"rate" yaml:"rate"`

	// Density is in g/cm³
	Density float64 `json:"density" toml:"density" yaml:"density"`
}

// ServerConfig contains HTTP API settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr" toml:"addr" yaml:"addr"`

	// ReadTimeoutSeconds bounds reading a request
	ReadTimeoutSeconds int `json:"read_timeout_seconds" toml:"read_timeout_seconds" yaml:"read_timeout_seconds"`

	// WriteTimeoutSeconds bounds writing a response
	WriteTimeoutSeconds int `json:"write_timeout_seconds" toml:"write_timeout_seconds" yaml:"write_timeout_seconds"`

	// MaxSweepPoints caps the values of one sweep request
	MaxSweepPoints int `json:"max_sweep_points" toml:"max_sweep_points" yaml:"max_sweep_points"`

	// SweepWorkers is the parallelism of sweeps and comparisons
	SweepWorkers int `json:"sweep_workers" toml:"sweep_workers" yaml:"sweep_workers"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format" toml:"default_format" yaml:"default_format"`

	// ShowDetails shows the intermediate geometry and film figures
	ShowDetails bool `json:"show_details" toml:"show_details" yaml:"show_details"`
}

// Default returns a default configuration
func Default() *Config {
	materials := make(map[string]MaterialConfig)
	builtin := types.DefaultMaterialTables()
	for name, rate := range builtin.Rates {
		materials[name] = MaterialConfig{Rate: rate, Density: builtin.Density(name)}
	}

	return &Config{
		Version:   "1.0",
		Materials: materials,
		Defaults:  types.DefaultProcessDefaults(),
		Server: ServerConfig{
			Addr:                ":8080",
			ReadTimeoutSeconds:  15,
			WriteTimeoutSeconds: 30,
			MaxSweepPoints:      50,
			SweepWorkers:        4,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDetails:   true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file. The format follows the extension:
// .json, .toml, .yaml or .yml. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Config("read "+path, err)
	}

	cfg := Default()
	if err := decode(data, formatOf(path), cfg); err != nil {
		return nil, errors.Parsing("decode config "+path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a file, encoded by extension
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Config("create config dir", err)
	}

	data, err := encode(c, formatOf(path))
	if err != nil {
		return errors.Config("encode config", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the engine would price nonsensically
func (c *Config) Validate() error {
	for name, m := range c.Materials {
		if m.Rate < 0 || m.Density < 0 {
			return errors.Newf(errors.TypeConfig, "material %s: rate and density must not be negative", name)
		}
	}
	d := c.Defaults
	if d.WastagePercent < 0 || d.LaborCostPerKg < 0 || d.MachineUsageCostPerKg < 0 || d.CylinderCostPerUnit < 0 {
		return errors.New(errors.TypeConfig, "process defaults must not be negative")
	}
	if d.PrintingMethod != "" && !d.PrintingMethod.Valid() {
		return errors.Newf(errors.TypeConfig, "unknown default printing method %q", d.PrintingMethod)
	}
	if c.Server.MaxSweepPoints < 0 || c.Server.SweepWorkers < 0 {
		return errors.New(errors.TypeConfig, "server limits must not be negative")
	}
	return nil
}

// Tables builds the material tables injected into the engine. Names are
// normalised; unset rates or densities take the built-in figure when the
// material is built in and are left out otherwise.
func (c *Config) Tables() types.MaterialTables {
	builtin := types.DefaultMaterialTables()
	tables := types.MaterialTables{
		Rates:     types.RateTable{},
		Densities: types.DensityTable{},
	}
	for raw, m := range c.Materials {
		name := types.NormalizeMaterial(raw)
		if m.Rate > 0 {
			tables.Rates[name] = m.Rate
		} else if rate, ok := builtin.Rates[name]; ok {
			tables.Rates[name] = rate
		}
		if m.Density > 0 {
			tables.Densities[name] = m.Density
		} else if density, ok := builtin.Densities[name]; ok {
			tables.Densities[name] = density
		}
	}
	return tables
}

type format string

const (
	formatJSON format = "json"
	formatTOML format = "toml"
	formatYAML format = "yaml"
)

func formatOf(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return formatTOML
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

func decode(data []byte, f format, cfg *Config) error {
	switch f {
	case formatTOML:
		_, err := toml.Decode(string(data), cfg)
		return err
	case formatYAML:
		return yaml.Unmarshal(data, cfg)
	default:
		return json.Unmarshal(data, cfg)
	}
}

func encode(cfg *Config, f format) ([]byte, error) {
	switch f {
	case formatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case formatYAML:
		return yaml.Marshal(cfg)
	default:
		return json.MarshalIndent(cfg, "", "  ")
	}
}

// Global configuration instance, used by the CLI only
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
