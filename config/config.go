// Package config provides configuration loading and management for the
// completeness engine: where profile definitions come from, how the
// sanitization advisor behaves, and which delivery mode builds default to.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the name of the project-level config file.
const DefaultConfigFile = "profilekit.yaml"

// Config is the complete engine configuration.
type Config struct {
	Definitions DefinitionsConfig `yaml:"definitions"`
	Sanitize    SanitizeConfig    `yaml:"sanitize"`
	Output      OutputConfig      `yaml:"output"`
	Suggest     SuggestConfig     `yaml:"suggest"`
}

// DefinitionsConfig configures the profile definition source.
type DefinitionsConfig struct {
	// Path is a YAML definitions file replacing the built-in profiles
	// (empty = built-ins).
	Path string `yaml:"path"`

	// Watch enables hot reloading of the definitions file.
	Watch bool `yaml:"watch"`

	// DebounceDelay is how long to wait for more changes before reloading.
	DebounceDelay time.Duration `yaml:"debounce_delay"`
}

// SanitizeConfig configures the security advisor. The fields are pointers
// so that an overlay which never mentions the section cannot flip them: nil
// means "not set here" and Merge leaves the base value alone.
type SanitizeConfig struct {
	// Enabled controls whether validation runs the advisor at all.
	// Unset means enabled.
	Enabled *bool `yaml:"enabled"`

	// AttachSanitized attaches a sanitized document copy to every
	// validation result. Unset means off.
	AttachSanitized *bool `yaml:"attach_sanitized"`
}

// IsEnabled reports whether the advisor should run.
func (s SanitizeConfig) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// ShouldAttach reports whether validation results carry a sanitized copy.
func (s SanitizeConfig) ShouldAttach() bool {
	return s.AttachSanitized != nil && *s.AttachSanitized
}

// OutputConfig configures document finalization.
type OutputConfig struct {
	// DefaultMode is the delivery mode used when the caller passes none
	// (strict-seo, split-channels, standards-header).
	DefaultMode string `yaml:"default_mode"`
}

// SuggestConfig configures suggestion presentation hints.
type SuggestConfig struct {
	// OptionalDisplayCap is the number of optional suggestions consumers
	// are expected to display.
	OptionalDisplayCap int `yaml:"optional_display_cap"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Definitions: DefinitionsConfig{
			Path:          "", // Built-in profiles
			Watch:         false,
			DebounceDelay: 500 * time.Millisecond,
		},
		Sanitize: SanitizeConfig{
			Enabled:         boolp(true),
			AttachSanitized: boolp(false),
		},
		Output: OutputConfig{
			DefaultMode: "strict-seo",
		},
		Suggest: SuggestConfig{
			OptionalDisplayCap: 5,
		},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	switch c.Output.DefaultMode {
	case "strict-seo", "split-channels", "standards-header":
	default:
		return fmt.Errorf("output.default_mode must be one of strict-seo, split-channels, standards-header, got %q", c.Output.DefaultMode)
	}
	if c.Suggest.OptionalDisplayCap < 0 {
		return fmt.Errorf("suggest.optional_display_cap must not be negative")
	}
	if c.Definitions.Watch && c.Definitions.Path == "" {
		return fmt.Errorf("definitions.watch requires definitions.path")
	}
	if c.Definitions.DebounceDelay < 0 {
		return fmt.Errorf("definitions.debounce_delay must not be negative")
	}
	return nil
}

// Merge overlays non-zero values from other onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Definitions.Path != "" {
		c.Definitions.Path = other.Definitions.Path
	}
	if other.Definitions.Watch {
		c.Definitions.Watch = true
	}
	if other.Definitions.DebounceDelay > 0 {
		c.Definitions.DebounceDelay = other.Definitions.DebounceDelay
	}
	if other.Output.DefaultMode != "" {
		c.Output.DefaultMode = other.Output.DefaultMode
	}
	if other.Suggest.OptionalDisplayCap > 0 {
		c.Suggest.OptionalDisplayCap = other.Suggest.OptionalDisplayCap
	}
	if other.Sanitize.Enabled != nil {
		c.Sanitize.Enabled = other.Sanitize.Enabled
	}
	if other.Sanitize.AttachSanitized != nil {
		c.Sanitize.AttachSanitized = other.Sanitize.AttachSanitized
	}
}

func boolp(b bool) *bool { return &b }

// LoadFromFile loads configuration from a YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveToFile writes the configuration to a YAML file, creating parent
// directories as needed.
func (c *Config) SaveToFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
