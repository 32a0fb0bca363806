// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExportConfig holds settings for the export subcommand.
type ExportConfig struct {
	// OutputDir is the directory export files are written to (default ".").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Format selects the export encoding: "yaml" or "json" (default "yaml").
	Format string `json:"format" yaml:"format"`
}

// StoreConfig holds settings for the store subcommand.
type StoreConfig struct {
	// DatabasePath is the SQLite database file (default "results.db").
	DatabasePath string `json:"database_path" yaml:"database_path"`
}
