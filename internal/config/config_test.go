package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestNewConfig tests default configuration values.
func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	if cfg.Timeout != DefaultTimeout {
		t.Errorf("expected timeout %v, got %v", DefaultTimeout, cfg.Timeout)
	}
	if cfg.UserAgent != DefaultUserAgent {
		t.Errorf("expected user agent %q, got %q", DefaultUserAgent, cfg.UserAgent)
	}
	if cfg.APIKey != "" || cfg.UserToken != "" || cfg.Board != "" {
		t.Error("expected empty credentials by default")
	}
}

// TestValidate tests configuration validation.
func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		return &Config{
			APIKey:    "key123",
			UserToken: "token456",
			Board:     "board789",
			Timeout:   DefaultTimeout,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "valid configuration",
			mutate:  func(*Config) {},
			wantErr: nil,
		},
		{
			name:    "missing API key",
			mutate:  func(c *Config) { c.APIKey = "" },
			wantErr: ErrNoAPIKey,
		},
		{
			name:    "missing user token",
			mutate:  func(c *Config) { c.UserToken = "" },
			wantErr: ErrNoUserToken,
		},
		{
			name:    "missing board",
			mutate:  func(c *Config) { c.Board = "" },
			wantErr: ErrNoBoard,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Timeout = 0 },
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Timeout = -time.Second },
			wantErr: ErrInvalidTimeout,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestConfigFilePath tests configuration file path resolution.
func TestConfigFilePath(t *testing.T) {
	t.Run("env override takes precedence", func(t *testing.T) {
		t.Setenv(ConfigFileEnv, "/tmp/custom.yaml")

		if got := ConfigFilePath(); got != "/tmp/custom.yaml" {
			t.Errorf("expected /tmp/custom.yaml, got %q", got)
		}
	})

	t.Run("falls back to XDG config dir", func(t *testing.T) {
		t.Setenv(ConfigFileEnv, "")

		got := ConfigFilePath()
		if got == "" {
			t.Fatal("expected non-empty path")
		}
		if filepath.Base(got) != "config.yaml" {
			t.Errorf("expected config.yaml file name, got %q", got)
		}
		if filepath.Base(filepath.Dir(got)) != AppName {
			t.Errorf("expected %s directory, got %q", AppName, got)
		}
	})
}

// TestCacheFilePath tests cache file path resolution.
func TestCacheFilePath(t *testing.T) {
	t.Run("returns env value", func(t *testing.T) {
		t.Setenv(CacheFileEnv, "/tmp/cache.db")

		if got := CacheFilePath(); got != "/tmp/cache.db" {
			t.Errorf("expected /tmp/cache.db, got %q", got)
		}
	})

	t.Run("empty when unset", func(t *testing.T) {
		t.Setenv(CacheFileEnv, "")

		if got := CacheFilePath(); got != "" {
			t.Errorf("expected empty path, got %q", got)
		}
	})
}

// TestLoadSave tests configuration file round-trips.
func TestLoadSave(t *testing.T) {
	t.Parallel()

	t.Run("round-trip preserves values", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "sub", "config.yaml")
		in := &File{
			Trello: TrelloSection{
				APIKey:    "key123",
				UserToken: "token456",
				Board:     "board789",
			},
		}

		if err := Save(path, in); err != nil {
			t.Fatalf("Save() failed: %v", err)
		}

		out, err := Load(path)
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if *out != *in {
			t.Errorf("round-trip mismatch: got %+v, want %+v", out, in)
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("malformed file returns parse error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := Save(path, &File{}); err != nil {
			t.Fatalf("Save() failed: %v", err)
		}
		// Overwrite with invalid YAML
		if err := os.WriteFile(path, []byte("trello: [unclosed"), 0600); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		if _, err := Load(path); err == nil {
			t.Error("expected parse error for malformed YAML")
		}
	})
}

// TestFileApply tests applying file values onto a Config.
func TestFileApply(t *testing.T) {
	t.Parallel()

	t.Run("copies all values", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{Timeout: DefaultTimeout}
		f := &File{Trello: TrelloSection{
			APIKey:    "key",
			UserToken: "token",
			Board:     "board",
		}}

		f.Apply(cfg)

		if cfg.APIKey != "key" || cfg.UserToken != "token" || cfg.Board != "board" {
			t.Errorf("unexpected config after apply: %+v", cfg)
		}
	})

	t.Run("empty values keep existing config", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{APIKey: "existing", Timeout: DefaultTimeout}
		f := &File{}

		f.Apply(cfg)

		if cfg.APIKey != "existing" {
			t.Errorf("expected existing API key to survive, got %q", cfg.APIKey)
		}
	})
}
