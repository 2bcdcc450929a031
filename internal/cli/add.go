package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"obsidian-logging/internal/config"
	"obsidian-logging/internal/journal"
	"obsidian-logging/internal/output"
	"obsidian-logging/internal/phrase"
	"obsidian-logging/internal/template"
)

// runAdd records one entry in the target day's note, creating the note from
// the template when it does not exist yet.
func runAdd(cmd *cobra.Command, printer *output.Printer, cfg config.Config, flags *rootFlags, args []string) error {
	text, err := entryText(cmd, cfg, flags, args)
	if err != nil {
		return err
	}
	if text == "" {
		return fmt.Errorf("entry text is required")
	}

	clock, err := resolveClock(flags.timeFlag)
	if err != nil {
		return err
	}

	vault, err := openVault(cfg)
	if err != nil {
		return err
	}

	date := resolveDate(flags.back)
	content, exists, err := vault.Read(date)
	if err != nil {
		return err
	}
	if !exists {
		content = template.Load(cfg.TemplatePath, template.NewData(date, cfg.Locale))
	}

	opts, err := syncOptions(cfg, flags, cmd.Flags().Changed("list-type"))
	if err != nil {
		return err
	}
	opts.NewDocument = !exists

	updated := journal.Synchronize(content, journal.Entry{Time: clock, Text: text}, opts)
	if err := vault.Write(date, updated); err != nil {
		return err
	}

	// The synchronizer may have advanced the timestamp to keep it unique,
	// so report what actually landed in the note.
	logged := loggedEntry(updated, text, opts)
	printer.Success("Logged %s %s", logged.Time.Format(opts.Format), logged.Text)
	return nil
}

// entryText assembles the entry text from arguments, standard input, or a
// phrase expansion.
func entryText(cmd *cobra.Command, cfg config.Config, flags *rootFlags, args []string) (string, error) {
	if flags.stdin {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	if flags.phrase {
		if len(args) == 0 {
			return "", fmt.Errorf("a phrase key is required with --phrase")
		}
		return phrase.Expand(cfg.Phrases, args[0], args[1:], cfg.Locale)
	}

	return strings.TrimSpace(strings.Join(args, " ")), nil
}

// loggedEntry finds the entry with the given text in the updated document so
// the confirmation shows the resolved timestamp. Falls back to the text alone
// when the scan comes up empty.
func loggedEntry(content, text string, opts journal.Options) journal.Entry {
	extraction := journal.Extract(content, opts)
	for i := len(extraction.Entries) - 1; i >= 0; i-- {
		if extraction.Entries[i].Text == text {
			return extraction.Entries[i]
		}
	}
	return journal.Entry{Text: text}
}
