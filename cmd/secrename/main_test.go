package main

import (
	"bytes"
	"io"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/filingtools/secrename/internal/config"
)

func TestPrintVersion(t *testing.T) {
	originalStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	oldVersion := version
	oldBuildTime := buildTime
	oldGitCommit := gitCommit
	version = "1.2.3"
	buildTime = "2026-01-01_00:00:00"
	gitCommit = "abc123"
	defer func() {
		version = oldVersion
		buildTime = oldBuildTime
		gitCommit = oldGitCommit
		os.Stdout = originalStdout
	}()

	printVersion()
	w.Close()
	os.Stdout = originalStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("Failed to read captured output: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"secrename 1.2.3", "abc123", "2026-01-01_00:00:00"} {
		if !strings.Contains(out, want) {
			t.Errorf("printVersion() output missing %q:\n%s", want, out)
		}
	}
}

func TestSetupLoggingStdio(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	cfg := config.DefaultConfig()
	cfg.Mode = config.ModeStdio
	cfg.LogLevel = "info"

	// Must not panic; in quiet stdio mode log output is discarded so it
	// cannot corrupt the MCP protocol stream.
	setupLogging(cfg)

	cfg.LogLevel = "debug"
	setupLogging(cfg)
}
