// Package cli wires the command surface: a flag-driven root command for the
// everyday fast path (log an entry, list the day) plus subcommands for
// configuration and the interactive browser.
package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"obsidian-logging/internal/config"
	"obsidian-logging/internal/output"
	"obsidian-logging/internal/version"
)

// rootFlags holds every flag the root command dispatches on.
type rootFlags struct {
	configPath string
	timeFlag   string
	back       int
	list       bool
	edit       bool
	removeLast bool
	phrase     bool
	stdin      bool
	listType   string
	timeFormat string
	category   string
}

// NewRootCommand creates the top-level Cobra command. The root itself does
// the work: bare arguments become an entry, flags select the other modes.
func NewRootCommand(ctx context.Context) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "olog [entry text ...]",
		Short: "Log timestamped entries into your Obsidian daily note.",
		Long: "olog appends a timestamped entry to the configured section of today's " +
			"daily note, creating the note from your template when it does not exist " +
			"yet. Without arguments it lists the day's entries.",
		Args: cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loadEnvFiles()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags.configPath)
			if err != nil {
				return err
			}

			printer := output.NewPrinter(cmd.OutOrStdout(), output.IsTTY(cmd.OutOrStdout())).
				WithStderr(cmd.ErrOrStderr())

			switch {
			case flags.removeLast:
				return runRemoveLast(cmd, printer, cfg, flags)
			case flags.edit:
				return runEdit(cfg, flags)
			case flags.list || (len(args) == 0 && !flags.stdin):
				return runList(cmd, printer, cfg, flags)
			default:
				return runAdd(cmd, printer, cfg, flags, args)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "Path to the configuration file (default: the XDG location)")
	cmd.Flags().StringVarP(&flags.timeFlag, "time", "t", "", "Timestamp for the entry, e.g. 14:30 or 2:30 PM (default: now)")
	cmd.Flags().IntVarP(&flags.back, "back", "b", 0, "Operate on the note N days back")
	cmd.Flags().BoolVarP(&flags.list, "list", "l", false, "List the day's entries")
	cmd.Flags().BoolVarP(&flags.edit, "edit", "e", false, "Open the day's note in $EDITOR")
	cmd.Flags().BoolVarP(&flags.removeLast, "remove-last", "r", false, "Remove the day's last entry")
	cmd.Flags().BoolVarP(&flags.phrase, "phrase", "p", false, "Treat the first argument as a phrase key and expand it")
	cmd.Flags().BoolVar(&flags.stdin, "stdin", false, "Read the entry text from standard input")
	cmd.Flags().StringVarP(&flags.listType, "list-type", "T", "", "Render the section as bullet or table (default: from config)")
	cmd.Flags().StringVarP(&flags.timeFormat, "time-format", "f", "", "Display timestamps in 24 or 12 hour clock (default: from config)")
	cmd.Flags().StringVarP(&flags.category, "category", "c", "", "Log under a category's section instead of the default")

	cmd.AddCommand(
		newConfigCommand(),
		newTUICommand(ctx),
	)

	return cmd
}

// loadConfig reads the configuration, honoring an explicit --config path.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// loadEnvFiles pulls in .env.local, .env, and the config directory's env
// file. godotenv never overrides variables already set, so the real
// environment always wins.
func loadEnvFiles() {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()
	if dir := config.Dir(); dir != "" {
		_ = godotenv.Load(filepath.Join(dir, "env"))
	}
}

// Main is the entry point used by cmd/olog/main.go. A .env file in the
// working directory can supply OBSIDIAN_VAULT_DIR or EDITOR.
func Main(ctx context.Context) {
	cmd := NewRootCommand(ctx)
	if err := fang.Execute(ctx, cmd, fang.WithVersion(version.Info())); err != nil {
		os.Exit(1)
	}
}
