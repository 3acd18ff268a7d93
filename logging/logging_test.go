package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/drake/pickers/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"INFO":    logrus.InfoLevel,
		"Warning": logrus.WarnLevel,
		"warn":    logrus.WarnLevel,
		"ERROR":   logrus.ErrorLevel,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Errorf("ParseLevel(verbose) should fail")
	}
}

func TestSetupWritesToFile(t *testing.T) {
	t.Setenv("PICKERS_DEBUG", "")
	oldOut, oldLevel := logrus.StandardLogger().Out, logrus.GetLevel()
	defer func() {
		logrus.SetOutput(oldOut)
		logrus.SetLevel(oldLevel)
	}()

	path := filepath.Join(t.TempDir(), "logs", "pickers.log")
	closer, err := Setup(config.Log{Level: "DEBUG", File: path, MaxSizeMB: 1})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	logrus.WithField("code", "QQ").Debug("probe line")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	for _, want := range []string{"Logger initialized", "probe line", "code=QQ"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log file missing %q:\n%s", want, data)
		}
	}
}

func TestSetupRejectsBadLevel(t *testing.T) {
	if _, err := Setup(config.Log{Level: "loud", File: filepath.Join(t.TempDir(), "x.log")}); err == nil {
		t.Fatalf("expected error for bad level")
	}
}
