package journal

import "strings"

// Section is the delimited subrange of a document owned by the synchronizer.
// Before and After are the untouched surroundings; Lines holds the raw
// candidate entry lines in document order.
type Section struct {
	Found    bool
	Before   string
	After    string
	Lines    []string
	Detected ListType
}

// Split locates the section marked by header and carves the document into
// before, entry lines, and after. The section runs from the header line to
// the next heading of equal or higher level, or end of document.
//
// Notation detection is first-match-wins: the first table header, separator,
// or row flips the section to Table; the first bullet line flips it to
// Bullet. A section with no entry-bearing lines carries no evidence and
// reports the caller's fallback unchanged.
func Split(content, header string, labels Labels, fallback ListType) Section {
	section := Section{Detected: fallback}
	header = strings.TrimSpace(header)
	level := headingLevel(header)

	lines := splitLines(content)
	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == header {
			start = i
			break
		}
	}

	if start == -1 {
		section.Before = strings.TrimRight(content, " \t\n")
		return section
	}

	section.Found = true
	section.Before = strings.TrimRight(strings.Join(lines[:start], "\n"), " \t\n")

	sawEvidence := false
	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		if lvl := headingLevel(line); lvl > 0 && lvl <= level && line != header {
			end = i
			break
		}

		switch {
		case IsTableSeparator(line), IsTableHeader(line, labels):
			if !sawEvidence {
				section.Detected = Table
				sawEvidence = true
			}
		case strings.HasPrefix(line, "|"):
			if !sawEvidence {
				section.Detected = Table
				sawEvidence = true
			}
			section.Lines = append(section.Lines, line)
		case strings.HasPrefix(line, "* "), strings.HasPrefix(line, "- "):
			if !sawEvidence {
				section.Detected = Bullet
				sawEvidence = true
			}
			section.Lines = append(section.Lines, line)
		}
		// Anything else is stray prose or a lower-level heading; both stay
		// out of the entry set and do not end the section.
	}

	if end < len(lines) {
		section.After = strings.Join(lines[end:], "\n")
	}
	return section
}

// headingLevel returns the markdown heading level of the line, or 0 when the
// line is not a heading. "## 🕗" is level 2.
func headingLevel(line string) int {
	count := 0
	for count < len(line) && line[count] == '#' {
		count++
	}
	if count == 0 {
		return 0
	}
	if count < len(line) && line[count] != ' ' {
		return 0
	}
	return count
}

func splitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(content, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
