package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"skirmish/pkg/shader"
)

// Config represents the main configuration
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Profile  ProfileConfig  `yaml:"profile"`
	Shaders  ShadersConfig  `yaml:"shaders"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty logs to stdout only
}

// GraphicsConfig contains the context hints used when probing a live driver
type GraphicsConfig struct {
	Width        int  `yaml:"width"`
	Height       int  `yaml:"height"`
	ContextMajor int  `yaml:"context_major"`
	ContextMinor int  `yaml:"context_minor"`
	CoreProfile  bool `yaml:"core_profile"`
}

// ProfileConfig describes the shading language to generate for.
// With Probe set the profile is read from a live context instead.
type ProfileConfig struct {
	Probe  bool   `yaml:"probe"`
	Major  int    `yaml:"major"`
	Minor  int    `yaml:"minor"`
	Suffix string `yaml:"suffix"`
}

// ShadersConfig contains shader variable name overrides
type ShadersConfig struct {
	Names shader.Naming `yaml:"names"`
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Graphics: GraphicsConfig{
			Width:        640,
			Height:       480,
			ContextMajor: 3,
			ContextMinor: 3,
			CoreProfile:  true,
		},
		Profile: ProfileConfig{
			Major:  3,
			Minor:  3,
			Suffix: "core",
		},
		Shaders: ShadersConfig{
			Names: shader.DefaultNaming(),
		},
	}
}

// ShaderProfile returns the configured capability profile
func (c *Config) ShaderProfile() shader.Profile {
	return shader.Profile{
		Major:  c.Profile.Major,
		Minor:  c.Profile.Minor,
		Suffix: c.Profile.Suffix,
	}
}

// Naming returns the configured names with defaults for missing entries
func (c *Config) Naming() shader.Naming {
	return c.Shaders.Names.Merge()
}

// Validate checks values that would otherwise fail later at compile time
func (c *Config) Validate() error {
	if !c.Profile.Probe && c.Profile.Major <= 0 {
		return fmt.Errorf("profile: major version must be positive, got %d", c.Profile.Major)
	}
	if c.Profile.Minor < 0 {
		return fmt.Errorf("profile: minor version must not be negative, got %d", c.Profile.Minor)
	}
	if err := c.Naming().Validate(); err != nil {
		return fmt.Errorf("shaders.names: %w", err)
	}
	return nil
}

// LoadConfig loads the configuration from a file
func LoadConfig(filePath string) (*Config, error) {
	// Create default config
	config := DefaultConfig()

	// Read file
	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("config file not found, using defaults: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, config); err != nil {
		return config, fmt.Errorf("error parsing config: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	// Convert to YAML
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %w", err)
	}

	// Write file
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
