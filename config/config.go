package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for sentilex.
type Config struct {
	Sources  SourcesConfig  `yaml:"sources"`
	Analysis AnalysisConfig `yaml:"analysis"`
	UI       UIConfig       `yaml:"ui"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SourcesConfig names the input files. Paths are relative to the root
// directory and may be doublestar globs; the first match is used.
type SourcesConfig struct {
	PositiveWords string `yaml:"positive_words"`
	NegativeWords string `yaml:"negative_words"`
	Reviews       string `yaml:"reviews"`
}

// AnalysisConfig holds analysis configuration.
type AnalysisConfig struct {
	InitialCapacity int  `yaml:"initial_capacity"`
	ConfirmBatch    bool `yaml:"confirm_batch"` // Ask before the corpus-wide pass
}

// UIConfig holds terminal output configuration.
type UIConfig struct {
	ClearScreen  bool `yaml:"clear_screen"`
	ProgressBar  bool `yaml:"progress_bar"`
	PauseListing bool `yaml:"pause_listing"` // Wait for Enter after word listings
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Sources: SourcesConfig{
			PositiveWords: "positive-words.txt",
			NegativeWords: "negative-words.txt",
			Reviews:       "tripadvisor_hotel_reviews.csv",
		},
		Analysis: AnalysisConfig{
			InitialCapacity: 10,
			ConfirmBatch:    true,
		},
		UI: UIConfig{
			ClearScreen:  true,
			ProgressBar:  true,
			PauseListing: true,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for sentilex.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "sentilex.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".sentilex", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
