package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "studify", "config.toml")

	output, err := runCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Wrote sample configuration") {
		t.Fatalf("unexpected output:\n%s", output)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample config: %v", err)
	}
	if !strings.Contains(string(data), "[paths]") {
		t.Fatalf("sample config missing paths section:\n%s", data)
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	if output, err := runCommand(t, "config", "init", "--path", target); err != nil {
		t.Fatalf("config init failed: %v\n%s", err, output)
	}
	if _, err := runCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected refusal without --overwrite")
	}
	if output, err := runCommand(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite failed: %v\n%s", err, output)
	}
}

func TestRootHelpListsCommands(t *testing.T) {
	output, err := runCommand(t, "--help")
	if err != nil {
		t.Fatalf("help failed: %v", err)
	}
	for _, name := range []string{"subject", "library", "upload", "analyze", "plan", "config"} {
		if !strings.Contains(output, name) {
			t.Fatalf("expected %q in help output:\n%s", name, output)
		}
	}
}
