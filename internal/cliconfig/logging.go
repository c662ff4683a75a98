package cliconfig

import (
	"io"
	"strings"

	"github.com/rs/zerolog"

	"photowatermark/pkg/log"
)

// NewLogger returns a console logger writing to w at the named level.
// Unknown level names fall back to info.
func NewLogger(w io.Writer, level string) *log.ZerologAdapter {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return log.NewConsoleAdapter(w, lvl)
}
