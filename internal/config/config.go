package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// AppConfig is the serve-mode configuration, stored as JSON next to the
// executable.
type AppConfig struct {
	Port        int    `json:"port"`
	SliceCount  int    `json:"slice_count"`
	BodyLimitMB int    `json:"body_limit_mb"`
	CachePath   string `json:"cache_path"`
}

// Default returns the configuration used when no settings file exists.
func Default() *AppConfig {
	return &AppConfig{
		Port:        8080,
		SliceCount:  20,
		BodyLimitMB: 64,
	}
}

// GetConfigPath locates the settings file next to the executable.
func GetConfigPath() string {
	exePath, err := os.Executable()
	if err != nil {
		return "wedmsim-settings.json"
	}
	return filepath.Join(filepath.Dir(exePath), "wedmsim-settings.json")
}

// Load reads the settings file, falling back to defaults when it does
// not exist. A present-but-invalid file is an error; silently ignoring
// it would mask typos in hand-edited settings.
func Load(path string) (*AppConfig, error) {
	if path == "" {
		path = GetConfigPath()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as indented JSON.
func Save(path string, cfg *AppConfig) error {
	if path == "" {
		path = GetConfigPath()
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
