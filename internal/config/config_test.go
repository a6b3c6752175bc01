package config

import "testing"

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Appearance.Theme != "manager-dark" {
		t.Errorf("Theme = %q, want manager-dark", cfg.Appearance.Theme)
	}
	if cfg.API.BaseURL != "" {
		t.Errorf("BaseURL = %q, want empty (resolved lazily)", cfg.API.BaseURL)
	}
	if Exists() {
		t.Error("Exists() = true with no config file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.API.BaseURL = "http://finance.local:9000"
	cfg.Appearance.Theme = "terminal"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Errorf("Load = %+v, want %+v", got, cfg)
	}
}

func TestBaseURL_Resolution(t *testing.T) {
	t.Setenv("GRANA_API_URL", "")

	if got := BaseURL(Config{}); got != DefaultBaseURL {
		t.Errorf("BaseURL(empty) = %q, want %q", got, DefaultBaseURL)
	}

	cfg := Config{API: APIConfig{BaseURL: "http://from-config:8080"}}
	if got := BaseURL(cfg); got != "http://from-config:8080" {
		t.Errorf("BaseURL(config) = %q", got)
	}

	// Environment beats the file.
	t.Setenv("GRANA_API_URL", "http://from-env:8080")
	if got := BaseURL(cfg); got != "http://from-env:8080" {
		t.Errorf("BaseURL(env) = %q", got)
	}
}
