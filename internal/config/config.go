package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/cgats-tools/internal/deltae"
	"github.com/ironsheep/cgats-tools/internal/swatch"
)

// Environment variables read by Load.
const (
	EnvConfigPath = "CGATS_MCP_CONFIG"
	EnvLogLevel   = "CGATS_MCP_LOG_LEVEL"
	EnvMethod     = "CGATS_MCP_DE_METHOD"
)

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// DeltaEConfig sets the delta-E formula used when a request names none.
type DeltaEConfig struct {
	Method string `yaml:"method"`
}

// ReportConfig sets the best/worst split of delta-E reports.
type ReportConfig struct {
	Split float64 `yaml:"split"`
}

// SwatchConfig sets swatch sheet defaults.
type SwatchConfig struct {
	PatchSize  int    `yaml:"patch_size"`
	Columns    int    `yaml:"columns"`
	Background string `yaml:"background"`
	Labels     bool   `yaml:"labels"`
}

// Config is the server configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	DeltaE DeltaEConfig `yaml:"deltae"`
	Report ReportConfig `yaml:"report"`
	Swatch SwatchConfig `yaml:"swatch"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info", Format: "text"},
		DeltaE: DeltaEConfig{Method: deltae.Default.String()},
		Report: ReportConfig{Split: 0.9},
		Swatch: SwatchConfig{
			PatchSize:  swatch.DefaultPatchSize,
			Columns:    swatch.DefaultColumns,
			Background: swatch.DefaultBackground,
			Labels:     true,
		},
	}
}

// Load reads the YAML file at path over the defaults, applies environment
// overrides, and validates the result. An empty path falls back to
// $CGATS_MCP_CONFIG; with neither set only defaults and environment apply.
//
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvMethod)); v != "" {
		c.DeltaE.Method = v
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log.level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log.format %q: want text or json", c.Log.Format)
	}
	if _, err := deltae.ParseMethod(c.DeltaE.Method); err != nil {
		return fmt.Errorf("invalid deltae.method: %w", err)
	}
	if c.Report.Split <= 0 || c.Report.Split >= 1 {
		return fmt.Errorf("invalid report.split %v: must be between 0 and 1", c.Report.Split)
	}
	if c.Swatch.PatchSize < swatch.MinPatchSize {
		return fmt.Errorf("invalid swatch.patch_size %d: must be at least %d", c.Swatch.PatchSize, swatch.MinPatchSize)
	}
	if c.Swatch.Columns <= 0 {
		return fmt.Errorf("invalid swatch.columns %d", c.Swatch.Columns)
	}
	if _, err := swatch.ParseHexColor(c.Swatch.Background); err != nil {
		return fmt.Errorf("invalid swatch.background: %w", err)
	}
	return nil
}

// Method returns the configured delta-E method.
func (c *Config) Method() deltae.Method {
	m, err := deltae.ParseMethod(c.DeltaE.Method)
	if err != nil {
		return deltae.Default
	}
	return m
}

// SwatchOptions returns the swatch defaults as render options.
func (c *Config) SwatchOptions() swatch.Options {
	return swatch.Options{
		Columns:    c.Swatch.Columns,
		PatchSize:  c.Swatch.PatchSize,
		Background: c.Swatch.Background,
		Labels:     c.Swatch.Labels,
	}
}
