package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.log")
	closeLog, err := Setup("debug", "json", path)
	if err != nil {
		t.Fatal(err)
	}

	slog.Info("hello", "key", "value")
	if err := closeLog(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"msg":"hello"`) {
		t.Errorf("log file missing entry: %q", data)
	}
}

func TestSetupLevelFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.log")
	closeLog, err := Setup("warn", "text", path)
	if err != nil {
		t.Fatal(err)
	}

	slog.Debug("quiet")
	slog.Warn("loud")
	closeLog()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "quiet") {
		t.Error("debug entry passed a warn-level logger")
	}
	if !strings.Contains(string(data), "loud") {
		t.Error("warn entry missing")
	}
}
