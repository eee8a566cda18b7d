package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitWriter_JSON(t *testing.T) {
	defer logrus.SetOutput(os.Stderr)

	var buf bytes.Buffer
	if err := InitWriter(&buf, "debug", "json"); err != nil {
		t.Fatalf("InitWriter failed: %v", err)
	}

	New("server").WithField("tool", "cgats_load").Debug("called")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if entry["component"] != "server" || entry["tool"] != "cgats_load" || entry["message"] != "called" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestInitWriter_Level(t *testing.T) {
	defer logrus.SetOutput(os.Stderr)

	var buf bytes.Buffer
	if err := InitWriter(&buf, "warn", "text"); err != nil {
		t.Fatalf("InitWriter failed: %v", err)
	}

	New("test").Info("hidden")
	New("test").Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info message logged at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "component=test") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestInitWriter_Errors(t *testing.T) {
	var buf bytes.Buffer
	if err := InitWriter(&buf, "loud", "text"); err == nil {
		t.Error("InitWriter should reject an unknown level")
	}
	if err := InitWriter(&buf, "info", "xml"); err == nil {
		t.Error("InitWriter should reject an unknown format")
	}
}
