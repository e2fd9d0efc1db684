package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestGetLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    logrus.Level
		wantErr bool
	}{
		{"", logrus.InfoLevel, false},
		{"info", logrus.InfoLevel, false},
		{"DEBUG", logrus.DebugLevel, false},
		{"warn", logrus.WarnLevel, false},
		{"error", logrus.ErrorLevel, false},
		{"trace", logrus.DebugLevel, true},
	}
	for _, tt := range tests {
		got, err := GetLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("GetLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("GetLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetupDiscardsWithoutFile(t *testing.T) {
	logger, closer, err := Setup(Options{Level: "debug"})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer closer.Close()

	if logger.Out != io.Discard {
		t.Errorf("expected io.Discard output, got %T", logger.Out)
	}
	if logger.Out == os.Stdout || logger.Out == os.Stderr {
		t.Error("log output must not be stdout or stderr")
	}
}

func TestSetupWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "boxframe.log")
	logger, closer, err := Setup(Options{Level: "info", Format: "json", File: path})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	logger.WithField("layers", 3).Info("rendered")
	logger.Debug("filtered")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !bytes.Contains(data, []byte(`"msg":"rendered"`)) || !bytes.Contains(data, []byte(`"layers":3`)) {
		t.Errorf("log missing entry: %s", data)
	}
	if bytes.Contains(data, []byte("filtered")) {
		t.Error("debug entry written at info level")
	}
}

func TestSetupRotatesLargeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boxframe.log")
	if err := os.WriteFile(path, make([]byte, MaxSize+1), 0o644); err != nil {
		t.Fatalf("write large log: %v", err)
	}

	_, closer, err := Setup(Options{File: path})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer closer.Close()

	old, err := os.Stat(path + ".old")
	if err != nil {
		t.Fatalf("expected rotated file: %v", err)
	}
	if old.Size() != MaxSize+1 {
		t.Errorf("rotated size = %d", old.Size())
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat new log: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("new log size = %d, want 0", info.Size())
	}
}

func TestSetupRejectsBadLevel(t *testing.T) {
	if _, _, err := Setup(Options{Level: "loud"}); err == nil || !strings.Contains(err.Error(), "invalid log level") {
		t.Errorf("err = %v", err)
	}
}
