package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("NASA_API_KEY", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.WindowDays != defaultWindowDays {
		t.Fatalf("WindowDays = %d, want %d", cfg.WindowDays, defaultWindowDays)
	}
	if cfg.CacheEntries != defaultCacheEntries {
		t.Fatalf("CacheEntries = %d, want %d", cfg.CacheEntries, defaultCacheEntries)
	}
	if cfg.Endpoint != "" || cfg.APIKey != "" {
		t.Fatalf("cfg = %+v, want empty endpoint and key", cfg)
	}
	if cfg.DownloadDir == "" {
		t.Fatal("DownloadDir empty, want expanded default")
	}
}

func TestLoad_ParsesFileAndOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := `
endpoint = "https://api.example.com/apod"
api_key = "from-file"
window_days = 14
cache_entries = 64
download_dir = "` + dir + `"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("NASA_API_KEY", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Endpoint != "https://api.example.com/apod" {
		t.Fatalf("Endpoint = %q", cfg.Endpoint)
	}
	// A key in the file wins over the environment.
	if cfg.APIKey != "from-file" {
		t.Fatalf("APIKey = %q, want from-file", cfg.APIKey)
	}
	if cfg.WindowDays != 14 || cfg.CacheEntries != 64 {
		t.Fatalf("WindowDays/CacheEntries = %d/%d, want 14/64", cfg.WindowDays, cfg.CacheEntries)
	}
	if cfg.DownloadDir != dir {
		t.Fatalf("DownloadDir = %q, want %q", cfg.DownloadDir, dir)
	}
}

func TestLoad_KeyFallsBackToEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`window_days = 7`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("NASA_API_KEY", "env-key")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIKey != "env-key" {
		t.Fatalf("APIKey = %q, want env-key", cfg.APIKey)
	}
	if cfg.WindowDays != 7 {
		t.Fatalf("WindowDays = %d, want 7", cfg.WindowDays)
	}
}

func TestLoad_RejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`window_days = `), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted malformed TOML")
	}
}

func TestLoad_IgnoresNonPositiveSizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("window_days = -3\ncache_entries = 0\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("NASA_API_KEY", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.WindowDays != defaultWindowDays || cfg.CacheEntries != defaultCacheEntries {
		t.Fatalf("cfg = %+v, want defaults for non-positive sizes", cfg)
	}
}
