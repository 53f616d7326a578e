package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, dataDir string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--data", dataDir}, args...))
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("shelf %s: %v\noutput:\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

// idFor extracts the short id the list command printed for a title.
func idFor(t *testing.T, listOutput, title string) string {
	t.Helper()
	for _, line := range strings.Split(listOutput, "\n") {
		if !strings.Contains(line, title) {
			continue
		}
		idx := strings.Index(line, "] ")
		if idx < 0 {
			break
		}
		return strings.Fields(line[idx+2:])[0]
	}
	t.Fatalf("no list line for %q in:\n%s", title, listOutput)
	return ""
}

func TestAddListDoneRemove(t *testing.T) {
	dir := t.TempDir()

	runCLI(t, dir, "add", "buy groceries")
	runCLI(t, dir, "add", "--note", "gate B22", "pack for trip")

	out := runCLI(t, dir, "list")
	if !strings.Contains(out, "buy groceries") || !strings.Contains(out, "pack for trip") {
		t.Fatalf("list is missing entries:\n%s", out)
	}
	if !strings.Contains(out, "(gate B22)") {
		t.Errorf("list should show the note:\n%s", out)
	}

	id := idFor(t, out, "buy groceries")
	out = runCLI(t, dir, "done", id)
	if !strings.Contains(out, "done") {
		t.Errorf("unexpected done output: %s", out)
	}

	out = runCLI(t, dir, "list", "--done", "--pending=false")
	if !strings.Contains(out, "buy groceries") || strings.Contains(out, "pack for trip") {
		t.Errorf("done filter wrong:\n%s", out)
	}

	out = runCLI(t, dir, "rm", id)
	if !strings.Contains(out, "Removed 1") {
		t.Errorf("unexpected rm output: %s", out)
	}

	out = runCLI(t, dir, "list", "--done=false", "--pending=false")
	if strings.Contains(out, "buy groceries") {
		t.Errorf("removed entry still listed:\n%s", out)
	}
}

func TestStatePersistsAcrossRuns(t *testing.T) {
	dir := t.TempDir()

	runCLI(t, dir, "add", "survives restarts")

	// Each command run opens the store fresh, so this re-reads from disk.
	out := runCLI(t, dir, "list", "--done=false", "--pending=false")
	if !strings.Contains(out, "survives restarts") {
		t.Fatalf("entry should persist across runs:\n%s", out)
	}
}

func TestExportFormats(t *testing.T) {
	dir := t.TempDir()
	runCLI(t, dir, "add", "exported entry")

	out := runCLI(t, dir, "export")
	if !strings.Contains(out, `"title": "exported entry"`) {
		t.Errorf("json export missing entry:\n%s", out)
	}

	out = runCLI(t, dir, "export", "--format", "yaml")
	if !strings.Contains(out, "title: exported entry") {
		t.Errorf("yaml export missing entry:\n%s", out)
	}
}

func TestCodecFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SHELF_CODEC", "yaml")

	runCLI(t, dir, "add", "env configured")

	blob, err := os.ReadFile(filepath.Join(dir, "entries"))
	if err != nil {
		t.Fatalf("read blob: %v", err)
	}
	if !strings.Contains(string(blob), "records:") {
		t.Errorf("SHELF_CODEC=yaml should persist yaml, got:\n%s", blob)
	}
}

func TestUnknownIDFails(t *testing.T) {
	dir := t.TempDir()
	runCLI(t, dir, "add", "only entry")

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--data", dir, "done", "zzzzzzzz"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected an error for an unknown id")
	}
}
