// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the scytl-extract CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/scytl-extract/internal/report"
	"github.com/pdiddy/scytl-extract/internal/scytl"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command. Invoked with a workbook path it extracts
// the dataset and writes the semicolon-delimited report to stdout;
// subcommands cover export and storage.
var rootCmd = &cobra.Command{
	Use:   "scytl-extract <workbook.xml>",
	Short: "Extract election results from Scytl SpreadsheetML workbooks",
	Long: `scytl-extract reads a Scytl election-results workbook (Excel 2003 XML),
validates it against the known sheet schema, and prints the document
metadata, table of contents, registered-voters profile, and per-contest
results as semicolon-delimited text.

The extraction fails closed: any structural mismatch between the
workbook and the expected schema aborts the whole run with a nonzero
exit code and no partial output.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := scytl.ReadFile(args[0])
		if err != nil {
			return err
		}
		return report.Write(os.Stdout, ds)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./scytl-extract.yaml or ~/.config/scytl-extract/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("scytl-extract")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "scytl-extract"))
		}
	}

	viper.SetDefault("export.output_dir", ".")
	viper.SetDefault("export.format", report.FormatYAML)
	viper.SetDefault("store.database_path", "results.db")

	viper.SetEnvPrefix("SCYTL_EXTRACT")
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
