package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Mondacars0165/PokeTest/internal/adapter"
	"github.com/spf13/cobra"
)

var configForce bool

// configCmd groups configuration helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
}

// configInitCmd writes the effective configuration to disk
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the current settings to a config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = filepath.Join(adapter.DefaultConfigDir(), "config.yaml")
		}

		if _, err := os.Stat(path); err == nil && !configForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := adapter.SaveConfig(cfg, path); err != nil {
			return err
		}
		logger.Info("wrote config", "path", path)
		fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
		return nil
	},
}

// configPathCmd prints where configuration is read from
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the default config file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(adapter.DefaultConfigDir(), "config.yaml"))
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd, configPathCmd)
}
