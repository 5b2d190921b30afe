package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	cases := []struct {
		level, format string
		want          zapcore.Level
	}{
		{"debug", "console", zapcore.DebugLevel},
		{"warn", "json", zapcore.WarnLevel},
		{"bogus", "json", zapcore.InfoLevel},
	}
	for _, tc := range cases {
		l, err := New(tc.level, tc.format)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !l.Core().Enabled(tc.want) {
			t.Fatalf("level %s should be enabled for %q", tc.want, tc.level)
		}
		if tc.want > zapcore.DebugLevel && l.Core().Enabled(tc.want-1) {
			t.Fatalf("level %s should be disabled for %q", tc.want-1, tc.level)
		}
	}
}
