package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	CacheDir string `toml:"cache_dir" json:"cache_dir"`
	LogDir   string `toml:"log_dir" json:"log_dir"`
}

// AssemblyAI contains configuration for the transcription provider.
type AssemblyAI struct {
	APIKey              string `toml:"api_key" json:"api_key"`
	BaseURL             string `toml:"base_url" json:"base_url"`
	PollIntervalSeconds int    `toml:"poll_interval_seconds" json:"poll_interval_seconds"`
}

// Search contains the matching knobs passed to the engine.
type Search struct {
	Threshold    int `toml:"threshold" json:"threshold"`
	WindowSize   int `toml:"window_size" json:"window_size"`
	ClipDuration int `toml:"clip_duration" json:"clip_duration"`
}

// Logging contains log output configuration.
type Logging struct {
	Level  string `toml:"level" json:"level"`
	Format string `toml:"format" json:"format"`
}

// Config centralizes every knob the CLI needs.
type Config struct {
	Paths      Paths      `toml:"paths" json:"paths"`
	AssemblyAI AssemblyAI `toml:"assemblyai" json:"assemblyai"`
	Search     Search     `toml:"search" json:"search"`
	Logging    Logging    `toml:"logging" json:"logging"`
}

// DefaultConfigPath returns the per-user config file location.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "clipseek", "config.toml"), nil
}

// Load reads configuration from path, or from the default location when path
// is empty. A missing file yields the defaults rather than an error. The
// returned path is the file that was consulted; exists reports whether it
// was actually read.
func Load(path string) (cfg *Config, resolvedPath string, exists bool, err error) {
	resolvedPath = strings.TrimSpace(path)
	if resolvedPath == "" {
		if resolvedPath, err = DefaultConfigPath(); err != nil {
			return nil, "", false, err
		}
	} else if resolvedPath, err = ExpandPath(resolvedPath); err != nil {
		return nil, "", false, err
	}

	loaded := Default()
	data, readErr := os.ReadFile(resolvedPath)
	switch {
	case readErr == nil:
		if err := toml.Unmarshal(data, &loaded); err != nil {
			return nil, resolvedPath, true, fmt.Errorf("parse config %s: %w", resolvedPath, err)
		}
		exists = true
	case errors.Is(readErr, fs.ErrNotExist):
		// Defaults apply.
	default:
		return nil, resolvedPath, false, fmt.Errorf("read config %s: %w", resolvedPath, readErr)
	}

	applyEnvOverrides(&loaded)
	if err := loaded.normalize(); err != nil {
		return nil, resolvedPath, exists, err
	}
	if err := loaded.Validate(); err != nil {
		return nil, resolvedPath, exists, err
	}
	return &loaded, resolvedPath, exists, nil
}

// applyEnvOverrides lets the environment win over the file for secrets, the
// way the surrounding tooling has always supplied the provider key. A .env
// file in the working directory is honoured without clobbering variables
// already set.
func applyEnvOverrides(cfg *Config) {
	_ = godotenv.Load()
	if key := strings.TrimSpace(os.Getenv("ASSEMBLYAI_API_KEY")); key != "" {
		cfg.AssemblyAI.APIKey = key
	}
}

// CreateSample writes the annotated sample configuration to path.
func CreateSample(path string) error {
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// EnsureDirectories creates the cache and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.CacheDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure directory %s: %w", dir, err)
		}
	}
	return nil
}

// ExpandPath resolves tilde shortcuts and cleans the path. Empty input stays
// empty.
func ExpandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Clean(path), nil
}
