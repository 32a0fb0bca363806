// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/scytl-extract/internal/report"
	"github.com/pdiddy/scytl-extract/internal/scytl"
	"github.com/pdiddy/scytl-extract/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export <workbook.xml>",
	Short: "Extract a workbook and write the dataset as YAML or JSON",
	Long: `Export runs the same schema-validated extraction as the root command
and writes the complete dataset to a file named after the workbook
(results.xml becomes results.yaml or results.json).`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := exportConfig(cmd)

	ds, err := scytl.ReadFile(args[0])
	if err != nil {
		return err
	}

	path, err := report.Export(cfg, args[0], ds)
	if err != nil {
		return err
	}
	fmt.Println("Exported to", path)
	return nil
}

// exportConfig merges flags over config-file defaults.
func exportConfig(cmd *cobra.Command) types.ExportConfig {
	cfg := types.ExportConfig{
		OutputDir: viper.GetString("export.output_dir"),
		Format:    viper.GetString("export.format"),
	}
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		cfg.OutputDir = out
	}
	if format, _ := cmd.Flags().GetString("format"); format != "" {
		cfg.Format = format
	}
	return cfg
}

func init() {
	exportCmd.Flags().String("format", "", "export format: yaml or json")
	exportCmd.Flags().String("out", "", "output directory")

	rootCmd.AddCommand(exportCmd)
}
