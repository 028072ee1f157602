package common

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lni/dragonboat/v4/logger"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]logger.LogLevel{
		"debug":   logger.DEBUG,
		"INFO":    logger.INFO,
		"warn":    logger.WARNING,
		"warning": logger.WARNING,
		"error":   logger.ERROR,
	}
	for in, want := range cases {
		got, err := ParseLogLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLogLevel(%s) = (%v, %v), want %v", in, got, err, want)
		}
	}

	if _, err := ParseLogLevel("loud"); err == nil {
		t.Error("Expected an error for an unknown level")
	}
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerFactory(&buf, logger.WARNING)("store")

	l.Debugf("hidden %d", 1)
	l.Infof("hidden %d", 2)
	l.Warningf("shown %d", 3)
	l.Errorf("shown %d", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Messages below the level were logged: %q", out)
	}
	if !strings.Contains(out, "WARN  | store | shown 3") || !strings.Contains(out, "ERROR | store | shown 4") {
		t.Errorf("Expected formatted warn and error lines, got %q", out)
	}

	buf.Reset()
	l.SetLevel(logger.DEBUG)
	l.Debugf("now visible")
	if !strings.Contains(buf.String(), "DEBUG | store | now visible") {
		t.Errorf("Expected debug line after SetLevel, got %q", buf.String())
	}
}
