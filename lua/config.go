package lua

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// GeneratorName identifies the translator in emitted headers
	GeneratorName = "pylua"
	// Version is the translator version
	Version = "0.1.0"
	// ProjectURL is the project reference written into headers
	ProjectURL = "https://github.com/pylua/pylua"
)

// Config controls the shape of emitted text
type Config struct {
	IndentWidth   int      `yaml:"indent_width"`
	Header        bool     `yaml:"header"`
	Digest        bool     `yaml:"digest"`
	Version       string   `yaml:"version"`
	ProjectURL    string   `yaml:"project_url"`
	MethodMarkers []string `yaml:"method_markers"`
}

// DefaultConfig returns the configuration used when none is given
func DefaultConfig() Config {
	return Config{
		IndentWidth:   4,
		Header:        true,
		Digest:        true,
		Version:       Version,
		ProjectURL:    ProjectURL,
		MethodMarkers: []string{"nc", "namecall"},
	}
}

// LoadConfig reads a YAML config file. Keys absent from the file keep their
// default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the emitter cannot honor
func (c Config) Validate() error {
	if c.IndentWidth < 1 || c.IndentWidth > 16 {
		return fmt.Errorf("indent_width must be between 1 and 16, got %d", c.IndentWidth)
	}
	if len(c.MethodMarkers) == 0 {
		return fmt.Errorf("method_markers must name at least one keyword")
	}
	for _, m := range c.MethodMarkers {
		if m == "" {
			return fmt.Errorf("method_markers must not contain an empty name")
		}
	}
	return nil
}

func (c Config) isMethodMarker(name string) bool {
	for _, m := range c.MethodMarkers {
		if m == name {
			return true
		}
	}
	return false
}
