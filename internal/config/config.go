package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything Cosmonaut needs to talk to the APOD API and
// size its local resources.
type Config struct {
	Endpoint     string
	APIKey       string
	WindowDays   int
	CacheEntries int
	DownloadDir  string
}

const (
	defaultConfigPath   = "~/.config/cosmonaut/config.toml"
	defaultWindowDays   = 30
	defaultCacheEntries = 256
	defaultDownloadDir  = "~/Downloads"

	apiKeyEnv = "NASA_API_KEY"
)

// Load locates and parses the config file, falling back to defaults when
// it is missing. The API key resolves in order: config file, then the
// NASA_API_KEY environment variable (a .env file in the working
// directory is honored); when both are empty the apod client falls back
// to NASA's shared DEMO_KEY.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		WindowDays:   defaultWindowDays,
		CacheEntries: defaultCacheEntries,
		DownloadDir:  mustExpand(defaultDownloadDir),
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.APIKey = keyFromEnv()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Endpoint     string `toml:"endpoint"`
		APIKey       string `toml:"api_key"`
		WindowDays   int    `toml:"window_days"`
		CacheEntries int    `toml:"cache_entries"`
		DownloadDir  string `toml:"download_dir"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Endpoint = strings.TrimSpace(raw.Endpoint)

	cfg.APIKey = strings.TrimSpace(raw.APIKey)
	if cfg.APIKey == "" {
		cfg.APIKey = keyFromEnv()
	}

	if raw.WindowDays > 0 {
		cfg.WindowDays = raw.WindowDays
	}
	if raw.CacheEntries > 0 {
		cfg.CacheEntries = raw.CacheEntries
	}
	if dir := strings.TrimSpace(raw.DownloadDir); dir != "" {
		cfg.DownloadDir = mustExpand(dir)
	}

	return cfg, nil
}

// keyFromEnv reads NASA_API_KEY, loading a .env file first so a key can
// sit next to the binary during development.
func keyFromEnv() string {
	_ = godotenv.Load()
	return strings.TrimSpace(os.Getenv(apiKeyEnv))
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
