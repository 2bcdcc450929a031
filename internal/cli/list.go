package cli

import (
	"github.com/spf13/cobra"

	"obsidian-logging/internal/config"
	"obsidian-logging/internal/journal"
	"obsidian-logging/internal/output"
)

// runList prints the day's section entries in their stored notation.
func runList(cmd *cobra.Command, printer *output.Printer, cfg config.Config, flags *rootFlags) error {
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

	notation := extraction.Detected
	if opts.Forced {
		notation = opts.List
	}

	styles := printer.Styles()
	printer.Println(styles.Header.Render(date.Format("2006-01-02")))
	for _, line := range journal.Render(extraction.Entries, notation, opts.Format, opts.Labels, true) {
		printer.Println(line)
	}
	return nil
}
