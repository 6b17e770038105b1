package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level unsub.yaml configuration.
type Config struct {
	Lexicon    LexiconConfig    `yaml:"lexicon"`
	Thresholds ThresholdsConfig `yaml:"thresholds"`
	AI         AIConfig         `yaml:"ai"`
}

// LexiconConfig extends the built-in keyword lexicon.
type LexiconConfig struct {
	ExtraKeywords []string `yaml:"extra_keywords,omitempty"`
}

// ThresholdsConfig controls detection cutoffs.
type ThresholdsConfig struct {
	// MinAmount is the cost floor below which a recurring charge is
	// assumed to be a fee, not a subscription.
	MinAmount float64 `yaml:"min_amount"`
}

// AIConfig controls the external classification call.
type AIConfig struct {
	Enabled bool   `yaml:"enabled"`
	Model   string `yaml:"model"`
	// MaxTransactions caps how many transactions go into one prompt.
	MaxTransactions int `yaml:"max_transactions"`
}

// Load reads an unsub.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Thresholds: ThresholdsConfig{
			MinAmount: 1.0,
		},
		AI: AIConfig{
			Enabled:         false,
			Model:           "gemini-2.0-flash",
			MaxTransactions: 200,
		},
	}
}
