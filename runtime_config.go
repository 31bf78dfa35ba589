package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RuntimeConfig represents the user-level configuration (~/.config/hcal/config.yml)
type RuntimeConfig struct {
	Sign string `yaml:"sign,omitempty"`
}

// RuntimeConfigPath returns the path to the user's config file.
var RuntimeConfigPath = defaultRuntimeConfigPath

func defaultRuntimeConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("determining config directory: %w", err)
	}
	return filepath.Join(configDir, "hcal", "config.yml"), nil
}

// LoadRuntimeConfig reads the config file. Returns zero-value config if missing.
func LoadRuntimeConfig() (*RuntimeConfig, error) {
	path, err := RuntimeConfigPath()
	if err != nil {
		return &RuntimeConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &RuntimeConfig{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg RuntimeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// SaveRuntimeConfig writes the config file, creating directories as needed.
func SaveRuntimeConfig(cfg *RuntimeConfig) error {
	path, err := RuntimeConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// ResolveSign picks the sign: flag or HCAL_SIGN (already merged by the CLI) > config file > none.
func ResolveSign(explicit string) (Sign, error) {
	cfg, cfgErr := LoadRuntimeConfig()

	if explicit != "" {
		if cfgErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: ignoring config file: %v\n", cfgErr)
		} else if _, err := ParseSign(cfg.Sign); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: ignoring invalid sign %q in config file\n", cfg.Sign)
		}
		return ParseSign(explicit)
	}

	if cfgErr != nil {
		return NoSign, cfgErr
	}
	sign, err := ParseSign(cfg.Sign)
	if err != nil {
		return NoSign, fmt.Errorf("config file sign: %w", err)
	}
	return sign, nil
}

const validConfigKeys = "sign"

// GetConfigValue returns the value for a key from the config file.
func GetConfigValue(key string) (string, error) {
	cfg, err := LoadRuntimeConfig()
	if err != nil {
		return "", err
	}

	switch key {
	case "sign":
		return cfg.Sign, nil
	default:
		return "", fmt.Errorf("unknown config key %q (valid: %s)", key, validConfigKeys)
	}
}

// SetConfigValue sets a value for a key in the config file.
func SetConfigValue(key, value string) error {
	// Validate value before writing
	switch key {
	case "sign":
		if _, err := ParseSign(value); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown config key %q (valid: %s)", key, validConfigKeys)
	}

	cfg, err := LoadRuntimeConfig()
	if err != nil {
		return err
	}

	switch key {
	case "sign":
		cfg.Sign = value
	}

	return SaveRuntimeConfig(cfg)
}
