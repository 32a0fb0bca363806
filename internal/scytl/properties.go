// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scytl

import (
	"encoding/xml"
	"fmt"

	"github.com/pdiddy/scytl-extract/internal/sheetxml"
	"github.com/pdiddy/scytl-extract/pkg/types"
)

// readDocumentProperties reads the three required metadata text fields
// from the workbook's DocumentProperties block. The block and each field
// must be present with non-empty text; there is no partial success.
func readDocumentProperties(dp sheetxml.Node) (types.DocumentProperties, error) {
	var props types.DocumentProperties
	if dp == nil {
		return props, fmt.Errorf("document properties: %w", ErrMissingNode)
	}

	fields := []struct {
		elem xml.Name
		dst  *string
	}{
		{elemTitle, &props.Title},
		{elemAuthor, &props.Author},
		{elemCreated, &props.Created},
	}
	for _, f := range fields {
		child := dp.Child(f.elem)
		if child == nil {
			return types.DocumentProperties{}, fmt.Errorf("document properties: %s: %w", f.elem.Local, ErrMissingNode)
		}
		text := child.Text()
		if text == "" {
			return types.DocumentProperties{}, fmt.Errorf("document properties: %s has no text: %w", f.elem.Local, ErrMissingNode)
		}
		*f.dst = text
	}

	return props, nil
}
