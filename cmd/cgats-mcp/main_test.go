package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_Version(t *testing.T) {
	for _, arg := range []string{"--version", "-v", "version"} {
		t.Run(arg, func(t *testing.T) {
			var out bytes.Buffer
			if code := run([]string{arg}, &out); code != 0 {
				t.Fatalf("exit code %d", code)
			}
			if !strings.HasPrefix(out.String(), "cgats-mcp "+Version) {
				t.Errorf("unexpected output: %q", out.String())
			}
		})
	}
}

func TestRun_Help(t *testing.T) {
	var out bytes.Buffer
	if code := run([]string{"--help"}, &out); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	for _, want := range []string{"Usage: cgats-mcp", "--config", "CGATS_MCP_LOG_LEVEL"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("help missing %q", want)
		}
	}
}

func TestRun_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("report:\n  split: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if code := run([]string{"--config", path}, &out); code != 1 {
		t.Errorf("exit code: got %d, want 1", code)
	}
}

func TestRun_UnknownFlag(t *testing.T) {
	var out bytes.Buffer
	if code := run([]string{"--bogus"}, &out); code != 2 {
		t.Errorf("exit code: got %d, want 2", code)
	}
}
