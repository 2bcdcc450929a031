package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"obsidian-logging/internal/config"
)

// fixedNow pins the clock so default timestamps and dates are deterministic.
func fixedNow(t *testing.T) time.Time {
	t.Helper()
	fixed, err := time.Parse("2006-01-02 15:04:05", "2024-03-15 10:30:00")
	if err != nil {
		t.Fatalf("time.Parse: %v", err)
	}

	previous := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = previous })
	return fixed
}

// setupVault creates a temp vault plus a config file pointing at it and
// returns the --config argument value.
func setupVault(t *testing.T) (vaultDir, configPath string) {
	t.Helper()
	base := t.TempDir()
	vaultDir = filepath.Join(base, "vault")
	if err := os.MkdirAll(vaultDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	configPath = filepath.Join(base, "obsidian-logging.yaml")
	content := strings.Join([]string{
		"file_path_format: \"{date}.md\"",
		"section_header: \"## 🕗\"",
		"list_type: bullet",
		"time_format: \"24\"",
		"categories:",
		"  work: \"## Work\"",
		"phrases:",
		"  standup: \"Daily standup with the team\"",
		"  met: \"Met with {0} about {1}\"",
		"",
	}, "\n")
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	t.Setenv(config.VaultEnvVar, vaultDir)
	return vaultDir, configPath
}

func executeCommand(t *testing.T, args ...string) string {
	t.Helper()
	cmd := NewRootCommand(context.Background())
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute %v: %v\noutput: %s", args, err, buf.String())
	}
	return buf.String()
}

func executeCommandErr(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewRootCommand(context.Background())
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func assertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output missing %q:\n%s", want, output)
	}
}

func assertNotContains(t *testing.T, output, unwanted string) {
	t.Helper()
	if strings.Contains(output, unwanted) {
		t.Fatalf("output should not contain %q:\n%s", unwanted, output)
	}
}

// readNote loads the note written for the fixed test date.
func readNote(t *testing.T, vaultDir string) string {
	t.Helper()
	return readNoteNamed(t, vaultDir, "2024-03-15.md")
}

func readNoteNamed(t *testing.T, vaultDir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(vaultDir, name))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return string(data)
}
