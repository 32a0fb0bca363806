// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/scytl-extract/pkg/types"
)

// Export formats recognized by Export.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Export writes the dataset to cfg.OutputDir as YAML or JSON, named
// after the source workbook (results.xml → results.yaml). It returns the
// path written.
func Export(cfg types.ExportConfig, source string, ds *types.ElectionDataset) (string, error) {
	var data []byte
	var err error

	switch cfg.Format {
	case FormatYAML:
		data, err = yaml.Marshal(ds)
		if err != nil {
			return "", fmt.Errorf("marshaling YAML: %w", err)
		}
	case FormatJSON:
		data, err = json.MarshalIndent(ds, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshaling JSON: %w", err)
		}
	default:
		return "", fmt.Errorf("unknown export format %q", cfg.Format)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(cfg.OutputDir, exportName(source, cfg.Format))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}

// exportName derives the export file name from the source workbook name.
func exportName(source, format string) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + "." + format
}
