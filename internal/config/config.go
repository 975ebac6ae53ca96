package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the default config file looked up in the working directory.
const FileName = "bankcat.yaml"

// Config represents the top-level bankcat.yaml configuration.
type Config struct {
	Extraction ExtractionConfig `yaml:"extraction"`
	Report     ReportConfig     `yaml:"report"`
	Workers    int              `yaml:"workers"`
}

// ExtractionConfig tunes the invoice and counterparty extractors.
type ExtractionConfig struct {
	InvoiceMinDigits     int `yaml:"invoice_min_digits"`
	CounterpartyMaxWords int `yaml:"counterparty_max_words"`
}

// ReportConfig controls the output artifacts.
type ReportConfig struct {
	CSVExport bool `yaml:"csv_export"`
}

// Load reads a bankcat.yaml file from disk.
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
		Extraction: ExtractionConfig{
			InvoiceMinDigits:     5,
			CounterpartyMaxWords: 5,
		},
		Report: ReportConfig{
			CSVExport: false,
		},
		Workers: 4,
	}
}
