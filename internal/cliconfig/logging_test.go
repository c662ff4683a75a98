package cliconfig

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{level: "debug", wantDebug: true, wantInfo: true},
		{level: "WARN"},
		{level: "", wantInfo: true},
		{level: "chatty", wantInfo: true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewLogger(&buf, tt.level)
			l.Debug("debug-line")
			l.Info("info-line")
			if got := strings.Contains(buf.String(), "debug-line"); got != tt.wantDebug {
				t.Errorf("debug written = %v, want %v", got, tt.wantDebug)
			}
			if got := strings.Contains(buf.String(), "info-line"); got != tt.wantInfo {
				t.Errorf("info written = %v, want %v", got, tt.wantInfo)
			}
		})
	}
}
