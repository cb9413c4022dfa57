package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.GenesisFile != "./genesis.json" {
		t.Fatalf("default genesis file: got %q", cfg.GenesisFile)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config not written: %v", err)
	}

	// A second load reads the file written by the first.
	again, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if *again != *cfg {
		t.Fatalf("reloaded config differs: %+v vs %+v", again, cfg)
	}
}

func TestLoadExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := "GenesisFile = \"/var/lib/minichain/genesis.json\"\nEnv = \"prod\"\nMetricsAddress = \"127.0.0.1:9464\"\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.GenesisFile != "/var/lib/minichain/genesis.json" {
		t.Fatalf("genesis file: got %q", cfg.GenesisFile)
	}
	if cfg.Env != "prod" {
		t.Fatalf("env: got %q", cfg.Env)
	}
	if cfg.MetricsAddress != "127.0.0.1:9464" {
		t.Fatalf("metrics address: got %q", cfg.MetricsAddress)
	}
}

func TestLoadRequiresGenesisFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("Env = \"dev\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for missing GenesisFile")
	}
}
