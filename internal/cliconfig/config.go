package cliconfig

import (
	"fmt"
	"strconv"

	"photowatermark/pkg/watermark"
)

// Config holds CLI configuration before it is turned into a watermark.Config.
type Config struct {
	InputPath   string
	FontSize    int
	FontColor   string
	Position    string
	FontPath    string
	JPEGQuality int
	LogLevel    string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		FontSize:    watermark.DefaultFontSize,
		FontColor:   watermark.DefaultFontColor,
		Position:    watermark.DefaultAnchor.String(),
		JPEGQuality: watermark.DefaultJPEGQuality,
		LogLevel:    "info",
	}
}

// Watermark validates c and converts it into the engine configuration.
// Errors wrap watermark.ErrInvalidConfig.
func (c Config) Watermark() (watermark.Config, error) {
	anchor, err := watermark.ParseAnchor(c.Position)
	if err != nil {
		return watermark.Config{}, err
	}
	wc := watermark.Config{
		InputPath:   c.InputPath,
		FontSize:    c.FontSize,
		FontColor:   c.FontColor,
		Anchor:      anchor,
		FontPath:    c.FontPath,
		JPEGQuality: c.JPEGQuality,
	}
	if err := wc.Validate(); err != nil {
		return watermark.Config{}, err
	}
	return wc, nil
}

// configSetter applies values only if the corresponding flag hasn't been
// explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setIntPtr sets an int from a pointer if not nil and flag not changed.
// Zero and negative values are kept for validation to reject.
func (s *configSetter) setIntPtr(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses environment values. Zero and negative numbers are
// kept so that validation reports them instead of silently ignoring them.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%w: parse %s: %v", watermark.ErrInvalidConfig, flag, err)
	}
	*dst = i
	return nil
}
