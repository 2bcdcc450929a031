package cli

import (
	"github.com/spf13/cobra"

	"obsidian-logging/internal/config"
	"obsidian-logging/internal/editor"
	"obsidian-logging/internal/journal"
	"obsidian-logging/internal/output"
	"obsidian-logging/internal/template"
)

// runRemoveLast drops the latest entry from the day's section and rewrites
// the note.
func runRemoveLast(cmd *cobra.Command, printer *output.Printer, cfg config.Config, flags *rootFlags) error {
	vault, err := openVault(cfg)
	if err != nil {
		return err
	}

	opts, err := syncOptions(cfg, flags, cmd.Flags().Changed("list-type"))
	if err != nil {
		return err
	}

	date := resolveDate(flags.back)
	content, exists, err := vault.Read(date)
	if err != nil {
		return err
	}
	if !exists {
		printer.Muted("No note for %s", date.Format("2006-01-02"))
		return nil
	}

	extraction := journal.Extract(content, opts)
	if len(extraction.Entries) == 0 {
		printer.Muted("No entries for %s", date.Format("2006-01-02"))
		return nil
	}

	removed := latestEntry(extraction.Entries)
	remaining := make([]journal.Entry, 0, len(extraction.Entries)-1)
	skipped := false
	for _, entry := range extraction.Entries {
		if !skipped && entry == removed {
			skipped = true
			continue
		}
		remaining = append(remaining, entry)
	}

	if err := vault.Write(date, journal.Reassemble(content, remaining, opts)); err != nil {
		return err
	}

	printer.Success("Removed %s %s", removed.Time.Format(opts.Format), removed.Text)
	return nil
}

// latestEntry returns the entry with the greatest timestamp, preferring the
// later document position on ties.
func latestEntry(entries []journal.Entry) journal.Entry {
	latest := entries[0]
	for _, entry := range entries[1:] {
		if !entry.Time.Before(latest.Time) {
			latest = entry
		}
	}
	return latest
}

// runEdit opens the day's note in the user's editor, creating it from the
// template first when missing so the editor does not start on a blank file.
func runEdit(cfg config.Config, flags *rootFlags) error {
	vault, err := openVault(cfg)
	if err != nil {
		return err
	}

	date := resolveDate(flags.back)
	_, exists, err := vault.Read(date)
	if err != nil {
		return err
	}
	if !exists {
		content := template.Load(cfg.TemplatePath, template.NewData(date, cfg.Locale))
		if err := vault.Write(date, content); err != nil {
			return err
		}
	}

	return editor.Open(vault.DayPath(date))
}
