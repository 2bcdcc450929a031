package journal

import (
	"regexp"
	"strings"
)

// ListType is the notation a section uses to lay out its entries.
type ListType uint8

const (
	// Bullet renders one "* HH:MM:SS text" line per entry.
	Bullet ListType = iota
	// Table renders a pipe-delimited table with a header and separator row.
	Table
)

// ParseListType converts a config value to a ListType, case-insensitively.
func ParseListType(value string) (ListType, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "bullet", "":
		return Bullet, nil
	case "table":
		return Table, nil
	default:
		return Bullet, &InvalidListTypeError{Value: value}
	}
}

// InvalidListTypeError reports an unrecognized list type value.
type InvalidListTypeError struct {
	Value string
}

func (e *InvalidListTypeError) Error() string {
	return "invalid list type \"" + e.Value + "\" (expected bullet or table)"
}

func (t ListType) String() string {
	if t == Table {
		return "table"
	}
	return "bullet"
}

// MarshalText implements encoding.TextMarshaler for yaml and flag layers.
func (t ListType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ListType) UnmarshalText(text []byte) error {
	parsed, err := ParseListType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalYAML renders the enum as its config spelling.
func (t ListType) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

// UnmarshalYAML accepts "bullet" or "table" in any casing from a config file.
func (t *ListType) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var value string
	if err := unmarshal(&value); err != nil {
		return err
	}
	return t.UnmarshalText([]byte(value))
}

// Labels names the two table columns. Defaults are Norwegian because the tool
// grew up in a Norwegian vault.
type Labels struct {
	Time  string
	Event string
}

// DefaultLabels returns the column labels used when none are configured.
func DefaultLabels() Labels {
	return Labels{Time: "Tidspunkt", Event: "Hendelse"}
}

// Entry is one journal record: a clock time and free-form description.
// Entries are values; two entries with the same time and text are the same
// entry.
type Entry struct {
	Time Clock
	Text string
}

var bulletLinePattern = regexp.MustCompile(`^[-*]\s+(.*\S)\s*$`)

// Leading time token of a bullet body. Seconds- and meridiem-qualified forms
// are swallowed greedily before the bare minute form gets a chance.
var bulletTimePattern = regexp.MustCompile(`^(\d{1,2}:\d{2}(?::\d{2})?(?:\s*[AaPp][Mm]\b)?)\s+(.+)$`)

// DecodeLine converts one rendered line into an Entry. The second return is
// false for anything that is not an entry: blank lines, stray prose, table
// header and separator rows, and lines whose time token will not parse.
// Extraction never fails on a single bad line; it just drops it.
func DecodeLine(line string, labels Labels) (Entry, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Entry{}, false
	}

	if strings.HasPrefix(line, "|") {
		return decodeTableRow(line, labels)
	}

	matches := bulletLinePattern.FindStringSubmatch(line)
	if matches == nil {
		return Entry{}, false
	}
	return decodeBulletBody(matches[1])
}

func decodeBulletBody(body string) (Entry, bool) {
	matches := bulletTimePattern.FindStringSubmatch(body)
	if matches == nil {
		return Entry{}, false
	}
	clock, err := ParseClock(matches[1])
	if err != nil {
		return Entry{}, false
	}
	text := strings.TrimSpace(matches[2])
	if text == "" {
		return Entry{}, false
	}
	return Entry{Time: clock, Text: text}, true
}

func decodeTableRow(line string, labels Labels) (Entry, bool) {
	if IsTableSeparator(line) || IsTableHeader(line, labels) {
		return Entry{}, false
	}

	cells := splitTableRow(line)
	if len(cells) < 2 {
		return Entry{}, false
	}

	clock, err := ParseClock(cells[0])
	if err != nil {
		return Entry{}, false
	}
	text := strings.TrimSpace(cells[1])
	if text == "" {
		return Entry{}, false
	}
	return Entry{Time: clock, Text: text}, true
}

// splitTableRow returns the trimmed interior cells of a pipe-delimited row.
func splitTableRow(line string) []string {
	parts := strings.Split(line, "|")
	if len(parts) < 3 {
		return nil
	}
	// Drop the empty fragments produced by the leading and trailing pipe.
	parts = parts[1 : len(parts)-1]
	cells := make([]string, 0, len(parts))
	for _, part := range parts {
		cells = append(cells, strings.TrimSpace(part))
	}
	return cells
}

// IsTableHeader reports whether the line is the column-label row.
func IsTableHeader(line string, labels Labels) bool {
	cells := splitTableRow(strings.TrimSpace(line))
	return len(cells) >= 2 && cells[0] == labels.Time && cells[1] == labels.Event
}

// IsTableSeparator reports whether the line consists solely of pipes, dashes,
// and spaces, as in "|-----------|----------|".
func IsTableSeparator(line string) bool {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "|") || !strings.Contains(line, "-") {
		return false
	}
	for _, r := range line {
		switch r {
		case '|', '-', ' ':
		default:
			return false
		}
	}
	return true
}
