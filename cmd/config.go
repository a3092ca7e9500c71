package cmd

import (
	"errors"
	"fmt"
	"os"

	"midikara/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitOverwrite bool

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a sample configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if len(args) == 1 {
			path = args[0]
		}
		var err error
		if path == "" {
			path, err = config.DefaultConfigPath()
		} else {
			path, err = config.ExpandPath(path)
		}
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); err == nil && !configInitOverwrite {
			return fmt.Errorf("%s already exists (use --overwrite to replace it)", path)
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat config: %w", err)
		}

		if err := config.CreateSample(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitOverwrite, "overwrite", false, "replace an existing file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
