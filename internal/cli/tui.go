package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"obsidian-logging/internal/ui"
)

func newTUICommand(ctx context.Context) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse and edit daily notes interactively.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			vault, err := openVault(cfg)
			if err != nil {
				return err
			}

			m := ui.NewModel(ctx, cfg, vault)
			if _, err := tea.NewProgram(m).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to the configuration file (default: the XDG location)")

	return cmd
}
