package cli

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	valid := Config{Extension: ".txt", BloomFilterSize: 1000, BloomFilterFP: 0.01}

	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad_extension", func(c *Config) { c.Extension = "txt" }, "extension"},
		{"empty_extension", func(c *Config) { c.Extension = "" }, "extension"},
		{"zero_bloom_size", func(c *Config) { c.BloomFilterSize = 0 }, "size"},
		{"bad_bloom_fp", func(c *Config) { c.BloomFilterFP = 1.5 }, "false positive"},
		{"ui_conflict", func(c *Config) { c.ShowDashboard = true; c.ShowProgress = true }, "mutually exclusive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{Extension: ".txt", BloomFilterSize: 1000000, BloomFilterFP: 0.01}
	cfg.ApplyDefaults()

	if cfg.InputDir == "" || cfg.OutputDir == "" {
		t.Fatal("ApplyDefaults left directories empty")
	}
	if filepath.Base(cfg.InputDir) != "platforms" {
		t.Errorf("InputDir = %q, want .../platforms", cfg.InputDir)
	}
	if filepath.Base(cfg.OutputDir) != "platforms_apex" {
		t.Errorf("OutputDir = %q, want .../platforms_apex", cfg.OutputDir)
	}
	if filepath.Dir(cfg.InputDir) != filepath.Dir(cfg.OutputDir) {
		t.Error("input and output dirs are not siblings")
	}
	if cfg.RealBloomFilterSize != 1000000 {
		t.Errorf("RealBloomFilterSize = %d, want 1000000", cfg.RealBloomFilterSize)
	}
}

func TestConfigApplyDefaultsKeepsOverrides(t *testing.T) {
	cfg := Config{
		InputDir:        "/data/in",
		OutputDir:       "/data/out",
		Extension:       ".txt",
		BloomFilterSize: 1000,
		BloomFilterFP:   0.01,
	}
	cfg.ApplyDefaults()

	if cfg.InputDir != "/data/in" || cfg.OutputDir != "/data/out" {
		t.Errorf("ApplyDefaults overwrote explicit dirs: %q, %q", cfg.InputDir, cfg.OutputDir)
	}
}
