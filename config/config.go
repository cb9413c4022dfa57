package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	GenesisFile    string `toml:"GenesisFile"`
	Env            string `toml:"Env"`
	MetricsAddress string `toml:"MetricsAddress"`
}

// Load loads the configuration from the given path, creating a default
// file when none exists.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return createDefault(path)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	if cfg.GenesisFile == "" {
		return nil, fmt.Errorf("config file %s: GenesisFile is required", path)
	}
	return cfg, nil
}

func createDefault(path string) (*Config, error) {
	cfg := &Config{
		GenesisFile:    "./genesis.json",
		Env:            "",
		MetricsAddress: "",
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create config directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create default config: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return nil, fmt.Errorf("write default config: %w", err)
	}
	return cfg, nil
}
