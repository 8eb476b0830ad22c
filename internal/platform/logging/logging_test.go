package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"statdeck/internal/platform/logging"
)

func TestNewWritesJSONToFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "logs", "statdeck.log")
	logger, err := logging.New(path, "debug")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("screen fetch failed", zap.String("screen", "dashboard"))
	_ = logger.Sync()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := string(raw)
	if !strings.Contains(line, `"msg":"screen fetch failed"`) || !strings.Contains(line, `"screen":"dashboard"`) {
		t.Fatalf("unexpected log line: %s", line)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	t.Parallel()
	if _, err := logging.New(filepath.Join(t.TempDir(), "x.log"), "chatty"); err == nil {
		t.Fatalf("unknown level should fail")
	}
}
