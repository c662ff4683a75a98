package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"photowatermark/pkg/watermark"
)

// FileConfig is the TOML representation of Config. The input path is
// always given on the command line. Numbers are pointers so that an explicit
// zero reaches validation instead of being mistaken for an absent key.
type FileConfig struct {
	FontSize    *int   `toml:"font_size"`
	FontColor   string `toml:"font_color"`
	Position    string `toml:"position"`
	Font        string `toml:"font"`
	JPEGQuality *int   `toml:"jpeg_quality"`
	LogLevel    string `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("%w: read %s: %v", watermark.ErrInvalidConfig, path, err)
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("%w: parse %s: %v", watermark.ErrInvalidConfig, path, err)
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.photowatermark/config.toml, or "" when the
// home directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".photowatermark", "config.toml")
	}
	return ""
}

// ApplyFileConfig copies file values into cfg, skipping flags the user set
// explicitly.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setIntPtr("font-size", fc.FontSize, &cfg.FontSize)
	s.setString("font-color", fc.FontColor, &cfg.FontColor)
	s.setString("position", fc.Position, &cfg.Position)
	s.setString("font", fc.Font, &cfg.FontPath)
	s.setIntPtr("quality", fc.JPEGQuality, &cfg.JPEGQuality)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
