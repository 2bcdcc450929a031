package journal

import (
	"fmt"
	"strings"
)

// Render produces the text block for a section body, one string per line.
// Bullet notation always emits "* " regardless of the marker the entries were
// decoded from. Table notation recomputes column widths from scratch on every
// call; entries may have switched notation or gained seconds since the last
// render, so cached widths would misalign.
func Render(entries []Entry, notation ListType, format TimeFormat, labels Labels, withHeader bool) []string {
	if notation == Table {
		return renderTable(entries, format, labels, withHeader)
	}
	return renderBullets(entries, format)
}

func renderBullets(entries []Entry, format TimeFormat) []string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		var builder strings.Builder
		builder.Grow(4 + len(entry.Text) + 12)
		builder.WriteString("* ")
		builder.WriteString(entry.Time.Format(format))
		builder.WriteString(" ")
		builder.WriteString(entry.Text)
		lines = append(lines, builder.String())
	}
	return lines
}

func renderTable(entries []Entry, format TimeFormat, labels Labels, withHeader bool) []string {
	timeWidth := len(labels.Time)
	eventWidth := len(labels.Event)

	formatted := make([]string, 0, len(entries))
	for _, entry := range entries {
		formatted = append(formatted, entry.Time.Format(format))
	}
	for i, entry := range entries {
		if w := len(formatted[i]); w > timeWidth {
			timeWidth = w
		}
		if w := len(entry.Text); w > eventWidth {
			eventWidth = w
		}
	}

	lines := make([]string, 0, len(entries)+2)
	if withHeader {
		lines = append(lines,
			tableRow(labels.Time, labels.Event, timeWidth, eventWidth),
			tableSeparator(timeWidth, eventWidth),
		)
	}
	for i, entry := range entries {
		lines = append(lines, tableRow(formatted[i], entry.Text, timeWidth, eventWidth))
	}
	return lines
}

func tableRow(timeCell, eventCell string, timeWidth, eventWidth int) string {
	return fmt.Sprintf("| %-*s | %-*s |", timeWidth, timeCell, eventWidth, eventCell)
}

func tableSeparator(timeWidth, eventWidth int) string {
	return "|-" + strings.Repeat("-", timeWidth) + "-|-" + strings.Repeat("-", eventWidth) + "-|"
}
