package watermark

import (
	"fmt"
	"image/color"
	"regexp"
	"strconv"
	"strings"
)

// Defaults applied by DefaultConfig.
const (
	DefaultFontSize    = 24
	DefaultFontColor   = "#000000"
	DefaultAnchor      = BottomRight
	DefaultJPEGQuality = 100
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config describes one watermark run. It is built once by the caller and
// treated as read-only afterwards.
type Config struct {
	// InputPath is an image file or a directory of images.
	InputPath string
	// FontSize is the text size in points at 72 DPI.
	FontSize int
	// FontColor is an opaque colour in #RRGGBB form.
	FontColor string
	Anchor    Anchor
	// FontPath optionally points at a TTF/OTF file. Empty selects Go Bold.
	FontPath    string
	JPEGQuality int
}

// DefaultConfig returns a Config for inputPath with default values.
func DefaultConfig(inputPath string) Config {
	return Config{
		InputPath:   inputPath,
		FontSize:    DefaultFontSize,
		FontColor:   DefaultFontColor,
		Anchor:      DefaultAnchor,
		JPEGQuality: DefaultJPEGQuality,
	}
}

// Validate checks the configuration. Every error wraps ErrInvalidConfig.
func (c Config) Validate() error {
	if strings.TrimSpace(c.InputPath) == "" {
		return fmt.Errorf("%w: input path is required", ErrInvalidConfig)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("%w: font size must be positive, got %d", ErrInvalidConfig, c.FontSize)
	}
	if _, err := ParseHexColor(c.FontColor); err != nil {
		return err
	}
	if !c.Anchor.Valid() {
		return fmt.Errorf("%w: unknown anchor %d", ErrInvalidConfig, int(c.Anchor))
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("%w: jpeg quality must be between 1 and 100, got %d", ErrInvalidConfig, c.JPEGQuality)
	}
	return nil
}

// ParseHexColor decodes a #RRGGBB string into an opaque colour.
func ParseHexColor(s string) (color.NRGBA, error) {
	if !hexColorPattern.MatchString(s) {
		return color.NRGBA{}, fmt.Errorf("%w: invalid color %q, want #RRGGBB", ErrInvalidConfig, s)
	}
	var rgb [3]uint8
	for i := range rgb {
		v, err := strconv.ParseUint(s[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: invalid color %q: %v", ErrInvalidConfig, s, err)
		}
		rgb[i] = uint8(v)
	}
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}, nil
}
