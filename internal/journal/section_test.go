package journal

import (
	"strings"
	"testing"
)

func TestSplitBulletSection(t *testing.T) {
	content := `# Header
Some content

## Test
* 09:00 First entry
* 10:30 Second entry
* 11:15 Third entry

## Another section
Trailing text
`

	section := Split(content, "## Test", DefaultLabels(), Bullet)
	if !section.Found {
		t.Fatalf("section not found")
	}
	if section.Before != "# Header\nSome content" {
		t.Fatalf("Before = %q", section.Before)
	}
	if section.After != "## Another section\nTrailing text" {
		t.Fatalf("After = %q", section.After)
	}
	if len(section.Lines) != 3 {
		t.Fatalf("Lines = %#v, want 3 entry lines", section.Lines)
	}
	if section.Detected != Bullet {
		t.Fatalf("Detected = %v, want Bullet", section.Detected)
	}
}

func TestSplitTableSectionExcludesHeaderAndSeparator(t *testing.T) {
	content := `# Header

## Test
| Tidspunkt | Hendelse |
|-----------|----------|
| 09:00 | First entry |
| 10:30 | Second entry |

## Another section
`

	section := Split(content, "## Test", DefaultLabels(), Bullet)
	if section.Detected != Table {
		t.Fatalf("Detected = %v, want Table", section.Detected)
	}
	if len(section.Lines) != 2 {
		t.Fatalf("Lines = %#v, want 2 data rows", section.Lines)
	}
	for _, line := range section.Lines {
		if IsTableSeparator(line) || IsTableHeader(line, DefaultLabels()) {
			t.Fatalf("header or separator leaked into Lines: %q", line)
		}
	}
}

func TestSplitMissingHeader(t *testing.T) {
	content := "# Header\nSome content\n"

	section := Split(content, "## Test", DefaultLabels(), Table)
	if section.Found {
		t.Fatalf("section unexpectedly found")
	}
	if section.Before != "# Header\nSome content" {
		t.Fatalf("Before = %q", section.Before)
	}
	if section.After != "" || len(section.Lines) != 0 {
		t.Fatalf("After = %q, Lines = %#v, want empty", section.After, section.Lines)
	}
	if section.Detected != Table {
		t.Fatalf("Detected = %v, want caller fallback", section.Detected)
	}
}

func TestSplitEmptySectionKeepsFallback(t *testing.T) {
	content := "## Test\n\n## Next\n"

	section := Split(content, "## Test", DefaultLabels(), Table)
	if !section.Found {
		t.Fatalf("section not found")
	}
	if len(section.Lines) != 0 {
		t.Fatalf("Lines = %#v, want none", section.Lines)
	}
	if section.Detected != Table {
		t.Fatalf("Detected = %v, want caller fallback", section.Detected)
	}
}

func TestSplitTerminatesOnEqualOrHigherHeading(t *testing.T) {
	content := `## Test
* 09:00 Inside

# Top level heading
* 10:00 Outside
`

	section := Split(content, "## Test", DefaultLabels(), Bullet)
	if len(section.Lines) != 1 {
		t.Fatalf("Lines = %#v, want only the inside entry", section.Lines)
	}
	if !strings.HasPrefix(section.After, "# Top level heading") {
		t.Fatalf("After = %q", section.After)
	}
}

func TestSplitKeepsLowerLevelHeadingsInside(t *testing.T) {
	content := `## Test
* 09:00 Before notes
### Notes
* 10:00 After notes

## Next
`

	section := Split(content, "## Test", DefaultLabels(), Bullet)
	if len(section.Lines) != 2 {
		t.Fatalf("Lines = %#v, want both entries around the sub-heading", section.Lines)
	}
	if section.After != "## Next" {
		t.Fatalf("After = %q", section.After)
	}
}

func TestSplitFirstNotationMarkerWins(t *testing.T) {
	content := `## Test
| 09:00 | Table row first |
* 10:00 Bullet afterwards
`

	section := Split(content, "## Test", DefaultLabels(), Bullet)
	if section.Detected != Table {
		t.Fatalf("Detected = %v, want Table (first marker wins)", section.Detected)
	}
	if len(section.Lines) != 2 {
		t.Fatalf("Lines = %#v, want both raw lines kept", section.Lines)
	}
}

func TestSplitSkipsStrayProse(t *testing.T) {
	content := `## Test
Some stray note that is not an entry
* 09:00 Real entry
`

	section := Split(content, "## Test", DefaultLabels(), Bullet)
	if len(section.Lines) != 1 {
		t.Fatalf("Lines = %#v, want only the entry line", section.Lines)
	}
}

func TestSplitNormalizesCRLF(t *testing.T) {
	content := "# Header\r\n\r\n## Test\r\n* 09:00 Entry\r\n"

	section := Split(content, "## Test", DefaultLabels(), Bullet)
	if !section.Found || len(section.Lines) != 1 {
		t.Fatalf("section = %+v", section)
	}
	if section.Before != "# Header" {
		t.Fatalf("Before = %q", section.Before)
	}
}
