// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the circ-reader CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/circ-reader/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadConfig materializes the viper state into a typed config. Invalid
// config values warn and fall back to defaults rather than aborting.
func loadConfig() types.Config {
	var c types.Config
	if err := viper.Unmarshal(&c); err != nil {
		fmt.Fprintln(os.Stderr, "warning: ignoring invalid config:", err)
		return types.Config{}
	}
	return c
}

// rootCmd is the base command for the circ-reader CLI.
var rootCmd = &cobra.Command{
	Use:   "circ-reader",
	Short: "Reconstruct discharge records from a WorkFlows circulation export",
	Long: `circ-reader reads the flat text export produced by the SirsiDynix
WorkFlows discharging assistant and reconstructs it into one record per
discharged item, with normalized header, author, description, copy, item ID,
type, location, and discharge date fields.

Records are sorted by shelving location so a cart can be walked in order.
Use subcommands to read records, inspect raw lines, or export to a file.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./circ-reader.yaml or ~/.config/circ-reader/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("circ-reader")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "circ-reader"))
		}
	}

	viper.SetEnvPrefix("CIRC_READER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
