// Package config holds the runtime settings for a scan: where reports go,
// how much the summary shows, and the suspicious-port watchlist. Settings
// merge in precedence order: defaults, then an optional YAML file, then
// CONNMON_* environment variables. Command-line flags are bound on top by
// the CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config captures the runtime settings for one run.
type Config struct {
	LogLevel        string `yaml:"logLevel"`
	LogFormat       string `yaml:"logFormat"`
	ReportDir       string `yaml:"reportDir"`
	TopFlagged      int    `yaml:"topFlagged"`
	SuspiciousPorts []int  `yaml:"suspiciousPorts"`
}

// Default returns the out-of-the-box settings. The port seed covers ports
// with a history of reverse-shell, botnet C2, and open-relay use; it is a
// starting point, not a verdict, and any set is valid configuration.
func Default() Config {
	return Config{
		LogLevel:   "info",
		LogFormat:  "text",
		ReportDir:  "reports",
		TopFlagged: 10,
		SuspiciousPorts: []int{
			1080, 1337, 3128, 4444, 5554, 5555,
			6666, 6667, 6668, 6669, 9001, 12345, 31337,
		},
	}
}

// Load builds the configuration by merging defaults, the optional YAML file
// at path, and environment overrides, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the scan cannot honor.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}

	if c.ReportDir == "" {
		return fmt.Errorf("report directory must not be empty")
	}
	if c.TopFlagged < 0 {
		return fmt.Errorf("topFlagged must be non-negative, got %d", c.TopFlagged)
	}
	for _, p := range c.SuspiciousPorts {
		if p < 1 || p > 65535 {
			return fmt.Errorf("suspicious port %d out of range 1..65535", p)
		}
	}
	return nil
}

// PortSet returns the watchlist in the form the classifier consumes.
func (c Config) PortSet() map[int]struct{} {
	set := make(map[int]struct{}, len(c.SuspiciousPorts))
	for _, p := range c.SuspiciousPorts {
		set[p] = struct{}{}
	}
	return set
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	type fileConfig Config
	var fileCfg fileConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	merge(cfg, Config(fileCfg))
	return nil
}

func merge(base *Config, override Config) {
	if override.LogLevel != "" {
		base.LogLevel = override.LogLevel
	}
	if override.LogFormat != "" {
		base.LogFormat = override.LogFormat
	}
	if override.ReportDir != "" {
		base.ReportDir = override.ReportDir
	}
	if override.TopFlagged != 0 {
		base.TopFlagged = override.TopFlagged
	}
	if override.SuspiciousPorts != nil {
		// A configured watchlist replaces the seed, it does not extend it.
		base.SuspiciousPorts = override.SuspiciousPorts
	}
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("CONNMON_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CONNMON_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("CONNMON_REPORT_DIR"); v != "" {
		cfg.ReportDir = v
	}
	if v := os.Getenv("CONNMON_TOP_FLAGGED"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			cfg.TopFlagged = iv
		}
	}
	if v := os.Getenv("CONNMON_SUSPICIOUS_PORTS"); v != "" {
		ports, err := ParsePorts(v)
		if err != nil {
			return fmt.Errorf("CONNMON_SUSPICIOUS_PORTS: %w", err)
		}
		cfg.SuspiciousPorts = ports
	}
	return nil
}

// ParsePorts reads a comma-separated port list ("4444, 31337"). A corrupt
// watchlist is an error, not a silent fallback to the seed.
func ParsePorts(s string) ([]int, error) {
	var ports []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		p, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid port %q", part)
		}
		if p < 1 || p > 65535 {
			return nil, fmt.Errorf("port %d out of range 1..65535", p)
		}
		ports = append(ports, p)
	}
	return ports, nil
}
