package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestCLIWorkflowEndToEnd(t *testing.T) {
	fixedNow(t)
	vaultDir, configPath := setupVault(t)

	// 1. Log an entry with an explicit time into a fresh note.
	out := executeCommand(t, "--config", configPath, "-t", "09:00", "Standup", "meeting")
	assertContains(t, out, "Logged 09:00:00 Standup meeting")

	note := readNote(t, vaultDir)
	assertContains(t, note, "## 🕗")
	assertContains(t, note, "* 09:00:00 Standup meeting")

	// 2. A second entry lands sorted before a later one.
	executeCommand(t, "--config", configPath, "-t", "08:15", "Reviewed", "PRs")
	note = readNote(t, vaultDir)
	if strings.Index(note, "Reviewed PRs") > strings.Index(note, "Standup meeting") {
		t.Fatalf("entries not sorted by time:\n%s", note)
	}

	// 3. Same timestamp bumps by one second instead of clobbering.
	out = executeCommand(t, "--config", configPath, "-t", "09:00", "Sync", "with", "design")
	assertContains(t, out, "Logged 09:00:01 Sync with design")

	// 4. List shows the day's entries in bullet notation.
	out = executeCommand(t, "--config", configPath, "-l")
	assertContains(t, out, "2024-03-15")
	assertContains(t, out, "* 08:15:00 Reviewed PRs")
	assertContains(t, out, "* 09:00:00 Standup meeting")
	assertContains(t, out, "* 09:00:01 Sync with design")

	// 5. Converting to table notation rewrites the stored section.
	executeCommand(t, "--config", configPath, "-T", "table", "-t", "11:00", "Lunch")
	note = readNote(t, vaultDir)
	assertContains(t, note, "| Tidspunkt")
	assertContains(t, note, "| 11:00:00")
	assertNotContains(t, note, "* 09:00:00")

	// 6. The table notation persists without further flags.
	executeCommand(t, "--config", configPath, "-t", "12:00", "Back", "from", "lunch")
	note = readNote(t, vaultDir)
	assertContains(t, note, "| 12:00:00")

	// 7. Remove the latest entry.
	out = executeCommand(t, "--config", configPath, "-r")
	assertContains(t, out, "Removed 12:00:00 Back from lunch")
	note = readNote(t, vaultDir)
	assertNotContains(t, note, "Back from lunch")
	assertContains(t, note, "Lunch")
}

func TestAddDefaultsToCurrentTime(t *testing.T) {
	fixedNow(t)
	vaultDir, configPath := setupVault(t)

	out := executeCommand(t, "--config", configPath, "Quick", "note")
	assertContains(t, out, "Logged 10:30:00 Quick note")
	assertContains(t, readNote(t, vaultDir), "* 10:30:00 Quick note")
}

func TestAddFromStdin(t *testing.T) {
	fixedNow(t)
	vaultDir, configPath := setupVault(t)

	cmd := NewRootCommand(context.Background())
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader("Piped from another tool\n"))
	cmd.SetArgs([]string{"--config", configPath, "--stdin", "-t", "14:00"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	assertContains(t, buf.String(), "Logged 14:00:00 Piped from another tool")
	assertContains(t, readNote(t, vaultDir), "* 14:00:00 Piped from another tool")
}

func TestAddPhrase(t *testing.T) {
	fixedNow(t)
	vaultDir, configPath := setupVault(t)

	out := executeCommand(t, "--config", configPath, "-p", "-t", "09:30", "met", "Kari", "budsjettet")
	assertContains(t, out, "Logged 09:30:00 Met with Kari about budsjettet")
	assertContains(t, readNote(t, vaultDir), "Met with Kari about budsjettet")

	if err := executeCommandErr(t, "--config", configPath, "-p", "nope"); err == nil {
		t.Fatal("expected an error for an unknown phrase")
	}
}

func TestAddUnderCategory(t *testing.T) {
	fixedNow(t)
	vaultDir, configPath := setupVault(t)

	executeCommand(t, "--config", configPath, "-c", "work", "-t", "09:00", "Planning")
	note := readNote(t, vaultDir)
	assertContains(t, note, "## Work")
	assertContains(t, note, "* 09:00:00 Planning")

	if err := executeCommandErr(t, "--config", configPath, "-c", "bogus", "x"); err == nil {
		t.Fatal("expected an error for an unknown category")
	}
}

func TestAddBackDated(t *testing.T) {
	fixedNow(t)
	vaultDir, configPath := setupVault(t)

	executeCommand(t, "--config", configPath, "-b", "1", "-t", "16:00", "Yesterday's", "entry")

	data := readNoteNamed(t, vaultDir, "2024-03-14.md")
	assertContains(t, data, "* 16:00:00 Yesterday's entry")
}

func TestListMissingNote(t *testing.T) {
	fixedNow(t)
	_, configPath := setupVault(t)

	out := executeCommand(t, "--config", configPath, "-l")
	assertContains(t, out, "No note for 2024-03-15")
}

func TestRemoveLastOnEmptyDay(t *testing.T) {
	fixedNow(t)
	_, configPath := setupVault(t)

	out := executeCommand(t, "--config", configPath, "-r")
	assertContains(t, out, "No note for 2024-03-15")
}

func TestInvalidTimeFlag(t *testing.T) {
	fixedNow(t)
	_, configPath := setupVault(t)

	if err := executeCommandErr(t, "--config", configPath, "-t", "25:99", "x"); err == nil {
		t.Fatal("expected an error for an invalid --time")
	}
}

func TestMissingVaultConfiguration(t *testing.T) {
	fixedNow(t)
	_, configPath := setupVault(t)
	t.Setenv("OBSIDIAN_VAULT_DIR", "")

	err := executeCommandErr(t, "--config", configPath, "some", "text")
	if err == nil || !strings.Contains(err.Error(), "vault") {
		t.Fatalf("expected a vault configuration error, got %v", err)
	}
}
