// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scytl extracts structured election results from Scytl
// SpreadsheetML workbooks. The workbook carries a metadata block, a
// "Table of Contents" sheet, a "Registered Voters" sheet, and one sheet
// per contest; each extractor cross-checks column names, cell styles,
// and datum types against the known schema and fails closed on any
// mismatch. A structurally inconsistent file is treated as wholly
// untrustworthy: no partial dataset is ever returned.
package scytl

import (
	"fmt"
	"os"

	"github.com/pdiddy/scytl-extract/internal/sheetxml"
	"github.com/pdiddy/scytl-extract/pkg/types"
)

// ReadFile parses the workbook at path and extracts its dataset.
func ReadFile(path string) (*types.ElectionDataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	doc, err := sheetxml.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("parsing workbook %s: %w", path, err)
	}
	return Read(doc)
}

// Read extracts the full dataset from a parsed workbook document.
//
// The worksheet scan is strictly forward: the "Table of Contents" lookup
// starts at the first worksheet, the "Registered Voters" lookup resumes
// from wherever that left off, and every sheet after "Registered Voters"
// is a contest sheet. Worksheet order in the document is load-bearing; a
// sheet appearing before the cursor reaches its name is never found.
func Read(doc sheetxml.Node) (*types.ElectionDataset, error) {
	root := doc.Child(elemWorkbook)
	if root == nil {
		return nil, fmt.Errorf("no Workbook root element: %w", ErrMissingNode)
	}

	var ds types.ElectionDataset
	var err error

	ds.Properties, err = readDocumentProperties(root.Child(elemDocumentProperties))
	if err != nil {
		return nil, err
	}

	ws := seekWorksheet(root.Child(elemWorksheet), sheetTableOfContents)
	if ws == nil {
		return nil, fmt.Errorf("no %q worksheet: %w", sheetTableOfContents, ErrMissingNode)
	}
	ds.Contents, err = readTableOfContents(ws)
	if err != nil {
		return nil, err
	}

	ws = seekWorksheet(ws, sheetRegisteredVoters)
	if ws == nil {
		return nil, fmt.Errorf("no %q worksheet: %w", sheetRegisteredVoters, ErrMissingNode)
	}
	ds.Regions, err = readRegisteredVoters(ws)
	if err != nil {
		return nil, err
	}

	for ws = ws.NextSibling(); ws != nil; ws = ws.NextSibling() {
		election, err := readElectionResults(ws, worksheetName(ws))
		if err != nil {
			return nil, err
		}
		ds.Elections = append(ds.Elections, election)
	}

	return &ds, nil
}

// seekWorksheet advances from ws (inclusive) to the next sibling whose
// Name attribute matches, or nil when the scan runs off the end.
func seekWorksheet(ws sheetxml.Node, name string) sheetxml.Node {
	for ; ws != nil; ws = ws.NextSibling() {
		if n, ok := ws.Attr(attrName); ok && n == name {
			return ws
		}
	}
	return nil
}

// worksheetName returns the sheet's Name attribute for error context.
func worksheetName(ws sheetxml.Node) string {
	if n, ok := ws.Attr(attrName); ok {
		return n
	}
	return "unnamed"
}
