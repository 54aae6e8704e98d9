package log

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func captureOutput(t *testing.T, debug bool) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var progress, debugOut bytes.Buffer
	noColor := color.NoColor
	color.NoColor = true
	SetOutput(&progress, &debugOut)
	Init(debug)
	t.Cleanup(func() {
		color.NoColor = noColor
		SetOutput(color.Error, os.Stderr)
		Init(false)
	})
	return &progress, &debugOut
}

func TestLogger(t *testing.T) {
	progress, debugOut := captureOutput(t, false)

	Section("Reading books.xml...")
	Item("catalog")
	Warn("careful")
	Hint("try --all")
	Success("Done")
	Debug("hidden %d", 1)
	Error("failed")

	expected := "[+] Reading books.xml...\n    - catalog\n[!] careful\n-> try --all\n✨ Done\n"
	if got := progress.String(); got != expected {
		t.Errorf("progress = %q, want %q", got, expected)
	}
	if got := debugOut.String(); got != "[✘] failed\n" {
		t.Errorf("errors = %q, want %q", got, "[✘] failed\n")
	}
}

func TestLogger_Debug(t *testing.T) {
	progress, debugOut := captureOutput(t, true)

	Section("Reading books.xml...")
	Debug("Cache hit for %s", "books.xml")

	if progress.Len() != 0 {
		t.Errorf("expected no progress output in debug mode, got %q", progress.String())
	}
	lines := strings.Split(strings.TrimSpace(debugOut.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", lines)
	}
	if !strings.HasSuffix(lines[0], "INFO: [+] Reading books.xml...") {
		t.Errorf("unexpected line %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "DEBUG: Cache hit for books.xml") {
		t.Errorf("unexpected line %q", lines[1])
	}
}
