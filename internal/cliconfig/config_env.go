package cliconfig

import "os"

// Environment variables read by ApplyEnvConfig.
const (
	EnvFontSize    = "PHOTOWM_FONT_SIZE"
	EnvFontColor   = "PHOTOWM_FONT_COLOR"
	EnvPosition    = "PHOTOWM_POSITION"
	EnvFont        = "PHOTOWM_FONT"
	EnvJPEGQuality = "PHOTOWM_JPEG_QUALITY"
	EnvLogLevel    = "PHOTOWM_LOG_LEVEL"
)

// ApplyEnvConfig applies PHOTOWM_* variables. They override the config file
// but not explicitly set flags.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setIntFromString("font-size", os.Getenv(EnvFontSize), &cfg.FontSize); err != nil {
		return err
	}
	s.setString("font-color", os.Getenv(EnvFontColor), &cfg.FontColor)
	s.setString("position", os.Getenv(EnvPosition), &cfg.Position)
	s.setString("font", os.Getenv(EnvFont), &cfg.FontPath)
	if err := s.setIntFromString("quality", os.Getenv(EnvJPEGQuality), &cfg.JPEGQuality); err != nil {
		return err
	}
	s.setString("log-level", os.Getenv(EnvLogLevel), &cfg.LogLevel)
	return nil
}
