package journal

import (
	"sort"
	"strings"
)

// Options carries everything the synchronizer needs besides the document
// itself. The zero value of OmitTableHeader means tables get their header and
// separator rows.
type Options struct {
	// Header is the exact section marker line, e.g. "## 🕗".
	Header string
	// List is the configured notation, used for new or empty sections.
	List ListType
	// Forced renders in List unconditionally, for explicit per-run overrides.
	Forced bool
	// Format is the display format all timestamps converge to.
	Format TimeFormat
	// Labels names the table columns.
	Labels Labels
	// NewDocument marks a document that did not exist before this run.
	NewDocument bool
	// OmitTableHeader skips the label and separator rows when rendering a
	// table, for callers appending to a table that keeps its own header.
	OmitTableHeader bool
}

// Extraction is the decoded state of a document's section.
type Extraction struct {
	Found    bool
	Before   string
	After    string
	Entries  []Entry
	Detected ListType
}

// Extract locates the section and batch-decodes its entry lines. Lines that
// decode to nothing are dropped; a journal accumulates hand-edited oddities
// over months and a single bad line must never block an append.
func Extract(content string, opts Options) Extraction {
	section := Split(content, opts.Header, opts.Labels, opts.List)

	entries := make([]Entry, 0, len(section.Lines))
	for _, line := range section.Lines {
		if entry, ok := DecodeLine(line, opts.Labels); ok {
			entries = append(entries, entry)
		}
	}

	return Extraction{
		Found:    section.Found,
		Before:   section.Before,
		After:    section.After,
		Entries:  entries,
		Detected: section.Detected,
	}
}

// Synchronize merges one new entry into the document's section and returns
// the full replacement document. The section is created at the document tail
// when the header is missing. Running the result through Extract reproduces
// the merged entry set exactly; re-synchronizing never drifts.
func Synchronize(content string, entry Entry, opts Options) string {
	extraction := Extract(content, opts)

	entry.Time = resolveUnique(entry.Time, extraction.Entries)
	entry.Text = strings.TrimSpace(entry.Text)

	merged := make([]Entry, 0, len(extraction.Entries)+1)
	merged = append(merged, extraction.Entries...)
	merged = append(merged, entry)
	sortEntries(merged)

	return assemble(extraction, merged, opts)
}

// Reassemble rewrites the section with the given entry set, sorted, without
// adding anything. Used when entries are removed or re-rendered in place.
func Reassemble(content string, entries []Entry, opts Options) string {
	extraction := Extract(content, opts)
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sortEntries(sorted)
	return assemble(extraction, sorted, opts)
}

// resolveUnique advances the candidate time one second at a time until no
// existing entry occupies it. The day has 86400 slots and the entry set is
// finite, so this terminates.
func resolveUnique(candidate Clock, existing []Entry) Clock {
	for occupied(candidate, existing) {
		candidate = candidate.Next()
	}
	return candidate
}

func occupied(clock Clock, entries []Entry) bool {
	for _, entry := range entries {
		if entry.Time == clock {
			return true
		}
	}
	return false
}

// sortEntries orders ascending by time. The sort is stable so pre-existing
// duplicate timestamps, if a document already contained them, keep their
// relative order.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time.Before(entries[j].Time)
	})
}

// effectiveNotation resolves which notation to render in: an explicit
// override or a section without evidence uses the configured notation;
// otherwise the section's detected notation persists across runs.
func effectiveNotation(extraction Extraction, opts Options) ListType {
	if opts.Forced || opts.NewDocument || len(extraction.Entries) == 0 {
		return opts.List
	}
	return extraction.Detected
}

func assemble(extraction Extraction, entries []Entry, opts Options) string {
	notation := effectiveNotation(extraction, opts)
	body := Render(entries, notation, opts.Format, opts.Labels, !opts.OmitTableHeader)

	var builder strings.Builder
	if extraction.Before != "" {
		builder.WriteString(extraction.Before)
		builder.WriteString("\n\n")
	}
	builder.WriteString(strings.TrimSpace(opts.Header))
	builder.WriteString("\n\n")
	builder.WriteString(strings.Join(body, "\n"))
	builder.WriteString("\n")
	if extraction.After != "" {
		builder.WriteString("\n")
		builder.WriteString(extraction.After)
	}

	return strings.TrimRight(builder.String(), " \t\n") + "\n"
}
