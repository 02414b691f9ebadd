package config

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig() should validate cleanly: %v", err)
	}
}

func TestValidateWrapsErrInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TikTak.QuasirandomN = 0
	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Validate() error = %v, want errors.Is(err, ErrInvalidConfig)", err)
	}
}

func TestValidateCatchesBadFields(t *testing.T) {
	base := func() *Config { return DefaultConfig() }

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"zero quasirandom_n", func(c *Config) { c.TikTak.QuasirandomN = 0 }, true},
		{"keep_ratio too high", func(c *Config) { c.TikTak.KeepRatio = 1.5 }, true},
		{"keep_ratio zero", func(c *Config) { c.TikTak.KeepRatio = 0 }, true},
		{"theta_min out of range", func(c *Config) { c.TikTak.ThetaMin = 1.5 }, true},
		{"theta_min above theta_max", func(c *Config) { c.TikTak.ThetaMin = 0.99; c.TikTak.ThetaMax = 0.5 }, true},
		{"theta_pow zero", func(c *Config) { c.TikTak.ThetaPow = 0 }, true},
		{"local_maxeval_initial zero", func(c *Config) { c.TikTak.LocalMaxEvalInit = 0 }, true},
		{"local_maxeval_final zero", func(c *Config) { c.TikTak.LocalMaxEvalFinal = 0 }, true},
		{"negative workers", func(c *Config) { c.Execution.Workers = -1 }, true},
		{"zero workers is allowed", func(c *Config) { c.Execution.Workers = 0 }, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := base()
			c.mutate(cfg)
			err := cfg.Validate()
			if c.wantErr && err == nil {
				t.Fatalf("expected validation error, got nil")
			}
			if !c.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestInitialNRoundsUpAndClamps(t *testing.T) {
	cases := []struct {
		n    int
		keep float64
		want int
	}{
		{10000, 0.1, 1000},
		{3, 0.5, 2},
		{1, 1.0, 1},
		{5, 0.01, 1},
		{5, 1.0, 5},
	}
	for _, c := range cases {
		tk := TikTakConfig{QuasirandomN: c.n, KeepRatio: c.keep}
		if got := tk.InitialN(); got != c.want {
			t.Errorf("InitialN() with N=%d keep=%v = %d, want %d", c.n, c.keep, got, c.want)
		}
	}
}

func TestLoadFallsBackToDefaultsWhenFileAbsent(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TikTak.QuasirandomN != DefaultConfig().TikTak.QuasirandomN {
		t.Fatalf("Load on missing file should return defaults, got %+v", cfg.TikTak)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiktak.yaml")

	cfg := DefaultConfig()
	cfg.TikTak.QuasirandomN = 2500
	cfg.Execution.Workers = 4

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.TikTak.QuasirandomN != 2500 {
		t.Fatalf("QuasirandomN = %d, want 2500", loaded.TikTak.QuasirandomN)
	}
	if loaded.Execution.Workers != 4 {
		t.Fatalf("Workers = %d, want 4", loaded.Execution.Workers)
	}
}
