package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultHistoryPath = ".lrun_shell_history"
	DefaultTruncate    = 4096
	DefaultLogLevel    = "info"
)

// Config holds shell configuration.
type Config struct {
	BinaryPath  string `yaml:"binaryPath"`
	ProfilePath string `yaml:"profilePath"`
	HistoryPath string `yaml:"historyPath"`
	LogLevel    string `yaml:"logLevel"`
	LogFormat   string `yaml:"logFormat"`
	Truncate    int64  `yaml:"truncate"`
	ExactExceed bool   `yaml:"exactExceed"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	cfg := Config{}
	applyDefaults(&cfg)
	return cfg
}

// Load reads a YAML config file.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file failed: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file failed: %w", err)
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.HistoryPath == "" {
		cfg.HistoryPath = DefaultHistoryPath
	}
	if cfg.Truncate == 0 {
		cfg.Truncate = DefaultTruncate
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}
