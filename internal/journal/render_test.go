package journal

import (
	"strings"
	"testing"
)

func mustEntry(t *testing.T, timeText, text string) Entry {
	t.Helper()
	clock, err := ParseClock(timeText)
	if err != nil {
		t.Fatalf("ParseClock(%q): %v", timeText, err)
	}
	return Entry{Time: clock, Text: text}
}

func TestRenderBullets(t *testing.T) {
	entries := []Entry{
		mustEntry(t, "09:00", "First entry"),
		mustEntry(t, "10:30", "Second entry"),
	}

	lines := Render(entries, Bullet, Hour24, DefaultLabels(), true)
	want := []string{
		"* 09:00:00 First entry",
		"* 10:30:00 Second entry",
	}
	if len(lines) != len(want) {
		t.Fatalf("lines = %#v, want %#v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRenderTableAlignsColumns(t *testing.T) {
	entries := []Entry{
		mustEntry(t, "09:00", "First entry"),
		mustEntry(t, "10:30", "A considerably longer description"),
	}

	lines := Render(entries, Table, Hour24, DefaultLabels(), true)
	if len(lines) != 4 {
		t.Fatalf("line count = %d, want 4 (header, separator, two rows)", len(lines))
	}

	width := len(lines[0])
	for i, line := range lines {
		if len(line) != width {
			t.Fatalf("lines[%d] width = %d, want %d (%q)", i, len(line), width, line)
		}
	}

	// Columns must break at the same offsets on every row.
	headerPipes := pipeOffsets(lines[0])
	for i, line := range lines[1:] {
		if got := pipeOffsets(strings.ReplaceAll(line, "-", " ")); !equalInts(got, headerPipes) {
			t.Fatalf("lines[%d] pipe offsets = %v, want %v", i+1, got, headerPipes)
		}
	}

	if !strings.HasPrefix(lines[0], "| Tidspunkt") {
		t.Fatalf("header = %q, want Tidspunkt label first", lines[0])
	}
	if !IsTableSeparator(lines[1]) {
		t.Fatalf("lines[1] = %q, want separator row", lines[1])
	}
}

func TestRenderTableWidthsGrowWithTimeColumn(t *testing.T) {
	entries := []Entry{mustEntry(t, "09:00", "Morning")}

	// 12-hour rendering is wider than the Tidspunkt label.
	lines := Render(entries, Table, Hour12, DefaultLabels(), true)
	if len(lines[0]) != len(lines[2]) {
		t.Fatalf("header width %d != row width %d", len(lines[0]), len(lines[2]))
	}
	if !strings.Contains(lines[2], "09:00:00 AM") {
		t.Fatalf("row = %q, want 12-hour time", lines[2])
	}
}

func TestRenderTableWithoutHeader(t *testing.T) {
	entries := []Entry{mustEntry(t, "09:00", "First entry")}

	lines := Render(entries, Table, Hour24, DefaultLabels(), false)
	if len(lines) != 1 {
		t.Fatalf("lines = %#v, want a single data row", lines)
	}
	if !strings.HasPrefix(lines[0], "| 09:00:00") {
		t.Fatalf("row = %q, want data row", lines[0])
	}
}

func TestRenderEmptySet(t *testing.T) {
	if lines := Render(nil, Bullet, Hour24, DefaultLabels(), true); len(lines) != 0 {
		t.Fatalf("bullet render of empty set = %#v, want none", lines)
	}
	lines := Render(nil, Table, Hour24, DefaultLabels(), true)
	if len(lines) != 2 {
		t.Fatalf("table render of empty set = %#v, want header and separator", lines)
	}
}

func TestRenderThenDecodeIsLossless(t *testing.T) {
	labels := DefaultLabels()
	entries := []Entry{
		mustEntry(t, "09:00", "First entry"),
		mustEntry(t, "10:30:15", "Second entry"),
		mustEntry(t, "02:45 PM", "Third entry"),
	}

	for _, notation := range []ListType{Bullet, Table} {
		lines := Render(entries, notation, Hour24, labels, true)
		var decoded []Entry
		for _, line := range lines {
			if entry, ok := DecodeLine(line, labels); ok {
				decoded = append(decoded, entry)
			}
		}
		if len(decoded) != len(entries) {
			t.Fatalf("%v round trip lost entries: %#v", notation, decoded)
		}
		for i := range entries {
			if decoded[i] != entries[i] {
				t.Fatalf("%v round trip entry %d = %+v, want %+v", notation, i, decoded[i], entries[i])
			}
		}
	}
}

func pipeOffsets(line string) []int {
	var offsets []int
	for i, r := range line {
		if r == '|' {
			offsets = append(offsets, i)
		}
	}
	return offsets
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
