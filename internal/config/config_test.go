package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// clearEnv blanks every variable Load reads so host environment does not
// leak into the tests.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"YOUTUBE_API_KEY", "GEMINI_API_KEY", "GOOGLE_CLOUD_PROJECT",
		"GOOGLE_CLOUD_LOCATION", "SEARCH_API_KEY", "SEARCH_ENGINE_ID",
		"SEARCH_LANG", "PORT", "ALLOWED_ORIGINS", "REQUEST_TIMEOUT_SECONDS",
		"CONFIG_FILE",
	} {
		t.Setenv(key, "")
	}
	// Point CONFIG_FILE somewhere that does not exist so a stray
	// config.yaml in the working directory is ignored.
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
}

func TestLoadRequiresModelCredential(t *testing.T) {
	clearEnv(t)

	if _, err := Load(); err == nil {
		t.Error("Load() should fail without a model credential")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AI.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %q, want default", cfg.AI.Model)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Search.Language != "lang_en" {
		t.Errorf("Language = %q, want lang_en", cfg.Search.Language)
	}
	if cfg.Server.RequestTimeout != 90*time.Second {
		t.Errorf("RequestTimeout = %v, want 90s", cfg.Server.RequestTimeout)
	}
	if cfg.SearchEnabled() {
		t.Error("SearchEnabled() = true without search credentials")
	}
}

func TestLoadSearchPair(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "test-key")

	t.Run("Key without engine ID", func(t *testing.T) {
		t.Setenv("SEARCH_API_KEY", "search-key")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.SearchEnabled() {
			t.Error("half a credential pair must not enable search")
		}
	})

	t.Run("Full pair", func(t *testing.T) {
		t.Setenv("SEARCH_API_KEY", "search-key")
		t.Setenv("SEARCH_ENGINE_ID", "engine-id")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if !cfg.SearchEnabled() {
			t.Error("SearchEnabled() = false with both credentials set")
		}
	})
}

func TestLoadFromYAMLFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	content := `youtube:
  api_key: yt-key
ai:
  gemini_api_key: gem-key
  model: gemini-2.0-flash
server:
  port: "9090"
  allowed_origins:
    - https://baitcheck.example
`
	if err := os.WriteFile(configFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", configFile)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.YouTube.APIKey != "yt-key" {
		t.Errorf("YouTube.APIKey = %q", cfg.YouTube.APIKey)
	}
	if cfg.AI.Model != "gemini-2.0-flash" {
		t.Errorf("Model = %q", cfg.AI.Model)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %q", cfg.Server.Port)
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "https://baitcheck.example" {
		t.Errorf("AllowedOrigins = %v", cfg.Server.AllowedOrigins)
	}
}

func TestLoadEnvOverridesEmptyFileFields(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "gem-key")
	t.Setenv("YOUTUBE_API_KEY", "yt-key")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.YouTube.APIKey != "yt-key" {
		t.Errorf("YouTube.APIKey = %q", cfg.YouTube.APIKey)
	}
	if cfg.Server.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v, want 30s", cfg.Server.RequestTimeout)
	}
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "gem-key")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "soon")

	if _, err := Load(); err == nil {
		t.Error("Load() should reject a non-numeric timeout")
	}
}
