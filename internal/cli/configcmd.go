package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"obsidian-logging/internal/config"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file.",
	}

	cmd.AddCommand(newConfigInitCommand(), newConfigShowCommand())
	return cmd
}

func newConfigInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Interactively create the configuration file and template.",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := config.Init(cmd.InOrStdin(), cmd.OutOrStdout())
			return err
		},
	}
}

func newConfigShowCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration.",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				path = config.Path()
			}

			cfg, err := config.LoadFrom(path)
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("serialize config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s\n", path)
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to the configuration file (default: the XDG location)")

	return cmd
}
