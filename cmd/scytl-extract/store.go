// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/scytl-extract/internal/scytl"
	"github.com/pdiddy/scytl-extract/internal/store"
	"github.com/pdiddy/scytl-extract/pkg/types"
)

var storeCmd = &cobra.Command{
	Use:   "store <workbook.xml>",
	Short: "Extract a workbook and persist the dataset in SQLite",
	Long: `Store runs the same schema-validated extraction as the root command
and saves the dataset into a SQLite database, one document row per
workbook with normalized tables for contents, regions, and results.
Repeated runs append new documents; nothing is overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: runStore,
}

func runStore(cmd *cobra.Command, args []string) error {
	cfg := storeConfig(cmd)

	ds, err := scytl.ReadFile(args[0])
	if err != nil {
		return err
	}

	s, err := store.Open(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	docID, err := s.Save(context.Background(), args[0], ds)
	if err != nil {
		return err
	}
	fmt.Printf("Stored document %d (%d regions, %d elections) in %s\n",
		docID, len(ds.Regions), len(ds.Elections), cfg.DatabasePath)
	return nil
}

// storeConfig merges flags over config-file defaults.
func storeConfig(cmd *cobra.Command) types.StoreConfig {
	cfg := types.StoreConfig{
		DatabasePath: viper.GetString("store.database_path"),
	}
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.DatabasePath = db
	}
	return cfg
}

func init() {
	storeCmd.Flags().String("db", "", "SQLite database file")

	rootCmd.AddCommand(storeCmd)
}
