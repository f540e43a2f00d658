package cli

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("drawn") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("rejected path") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("rejected path") }, true},
		{"warn at info level", log.InfoLevel, func(l *log.Logger) { l.Warn("unknown config key") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))

			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestNewLoggerTimestamp(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, log.InfoLevel).Info("hello")

	if !regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `).MatchString(buf.String()) {
		t.Errorf("log line should start with HH:MM:SS.ms, got %q", buf.String())
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")

	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("log output = %q", buf.String())
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.done("Drew gift circle for 4 participants")

	out := buf.String()
	if !strings.Contains(out, "Drew gift circle for 4 participants (") || !strings.Contains(out, "s)") {
		t.Errorf("progress.done() output = %q", out)
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext should fall back to log.Default()")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), custom)
	if loggerFromContext(ctx) != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
}

func TestVerboseFlagEnablesDebug(t *testing.T) {
	h := newHarness(t)
	input := h.writeFile("family.csv", familyCSV)

	if err := h.run("-v", "check", "-i", input); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(h.stderr.String(), "read participants") {
		t.Errorf("--verbose should log debug lines, stderr = %q", h.stderr.String())
	}
}
