// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scytl

import (
	"fmt"
	"strconv"

	"github.com/pdiddy/scytl-extract/internal/sheetxml"
	"github.com/pdiddy/scytl-extract/pkg/types"
)

// readElectionResults reads one contest worksheet. The sheet carries four
// row groups in fixed order: a single-cell title row whose MergeAcross
// attribute declares the column count, a candidate-name row with merged
// cells, a column-name row with one cell per column, and one data row per
// region. The title row's width is the authority every later row is
// checked against.
func readElectionResults(ws sheetxml.Node, sheetName string) (types.Election, error) {
	var election types.Election

	table := ws.Child(elemTable)
	if table == nil {
		return election, fmt.Errorf("worksheet %q: no table: %w", sheetName, ErrMissingNode)
	}

	row := table.Child(elemRow)
	name, width, err := readTitleRow(row, sheetName)
	if err != nil {
		return election, err
	}
	election.Name = name
	election.Headers = make([]types.ElectionHeader, width)

	row = nextRow(row)
	if err := readCandidateRow(row, election.Headers, sheetName); err != nil {
		return election, err
	}

	row = nextRow(row)
	if err := readColumnNameRow(row, election.Headers, sheetName); err != nil {
		return election, err
	}

	row = nextRow(row)
	for rowIdx := 4; row != nil; row, rowIdx = row.NextSibling(), rowIdx+1 {
		tuple, err := readDataRow(row, sheetName, rowIdx)
		if err != nil {
			return election, err
		}
		if len(tuple.Data)+1 != len(election.Headers) {
			return election, resultsErr(sheetName, rowIdx, fmt.Sprintf("%d vote cells for %d columns", len(tuple.Data), len(election.Headers)), ErrWidthMismatch)
		}
		election.Results = append(election.Results, tuple)
	}

	return election, nil
}

// readTitleRow reads the election name and derives the sheet's logical
// column count from the title cell's MergeAcross attribute.
//
//	<Row>
//	  <Cell ss:MergeAcross="6" ss:StyleID="headerLbl">
//	    <Data ss:Type="String">U.S. President - DEM</Data>
//	  </Cell>
//	</Row>
func readTitleRow(row sheetxml.Node, sheetName string) (string, int, error) {
	if row == nil {
		return "", 0, resultsErr(sheetName, 1, "no title row", ErrMissingNode)
	}
	cell := row.Child(elemCell)
	if cell == nil {
		return "", 0, resultsErr(sheetName, 1, "no title cell", ErrMissingNode)
	}
	data := cell.Child(elemData)
	if data == nil {
		return "", 0, resultsErr(sheetName, 1, "title cell has no datum", ErrMissingNode)
	}
	style, _ := cell.Attr(attrStyleID)
	dataType, _ := data.Attr(attrType)
	if style != styleHeaderLabel || dataType != typeString {
		return "", 0, resultsErr(sheetName, 1, fmt.Sprintf("title cell styled %q typed %q", style, dataType), ErrSchemaViolation)
	}

	merge, err := mergeAcross(cell)
	if err != nil {
		return "", 0, resultsErr(sheetName, 1, err.Error(), ErrParseFailure)
	}
	return data.Text(), merge + 1, nil
}

// readCandidateRow assigns candidate names to header slots, expanding
// each cell's MergeAcross span. Cells with empty text leave their slots
// unnamed; those columns belong to no candidate.
//
//	<Row>
//	  <Cell><Data ss:Type="String"/></Cell>
//	  <Cell ss:MergeAcross="1"><Data ss:Type="String">John Wolfe</Data></Cell>
//	  <Cell ss:MergeAcross="1"><Data ss:Type="String">Barack Obama</Data></Cell>
//	  <Cell><Data ss:Type="String"/></Cell>
//	</Row>
func readCandidateRow(row sheetxml.Node, headers []types.ElectionHeader, sheetName string) error {
	var cell sheetxml.Node
	if row != nil {
		cell = row.Child(elemCell)
	}

	slot := 0
	for ; cell != nil && slot < len(headers); cell = cell.NextSibling() {
		merge, err := mergeAcross(cell)
		if err != nil {
			return resultsErr(sheetName, 2, err.Error(), ErrParseFailure)
		}
		var name string
		if data := cell.Child(elemData); data != nil {
			name = data.Text()
		}
		for span := 0; span <= merge && slot < len(headers); span++ {
			if name != "" {
				headers[slot].CandidateName = name
			}
			slot++
		}
	}

	if cell != nil || slot != len(headers) {
		return resultsErr(sheetName, 2, "candidate cells disagree with title width", ErrWidthMismatch)
	}
	return nil
}

// readColumnNameRow assigns each header slot its column name, one real
// cell per slot. Every cell must hold a String datum with non-empty text.
func readColumnNameRow(row sheetxml.Node, headers []types.ElectionHeader, sheetName string) error {
	var cell sheetxml.Node
	if row != nil {
		cell = row.Child(elemCell)
	}

	slot := 0
	for ; cell != nil && slot < len(headers); cell, slot = cell.NextSibling(), slot+1 {
		data := cell.Child(elemData)
		if data == nil {
			return resultsErr(sheetName, 3, "column name cell has no datum", ErrMissingNode)
		}
		if t, _ := data.Attr(attrType); t != typeString {
			return resultsErr(sheetName, 3, fmt.Sprintf("column name typed %q", t), ErrTypeMismatch)
		}
		text := data.Text()
		if text == "" {
			return resultsErr(sheetName, 3, "column name is empty", ErrMissingNode)
		}
		headers[slot].ColumnName = text
	}

	if cell != nil || slot != len(headers) {
		return resultsErr(sheetName, 3, "column name cells disagree with title width", ErrWidthMismatch)
	}
	return nil
}

// readDataRow reads one region's tuple: a String label cell followed by
// VoteCount/Number cells. Width against the header is checked by the
// caller, which knows the election.
func readDataRow(row sheetxml.Node, sheetName string, rowIdx int) (types.LabeledTuple, error) {
	var tuple types.LabeledTuple

	cell := row.Child(elemCell)
	if cell == nil {
		return tuple, resultsErr(sheetName, rowIdx, "no cells", ErrMissingNode)
	}
	data := cell.Child(elemData)
	if data == nil {
		return tuple, resultsErr(sheetName, rowIdx, "label cell has no datum", ErrMissingNode)
	}
	if t, _ := data.Attr(attrType); t != typeString {
		return tuple, resultsErr(sheetName, rowIdx, fmt.Sprintf("label typed %q", t), ErrTypeMismatch)
	}
	tuple.Label = data.Text()

	for cell = cell.NextSibling(); cell != nil; cell = cell.NextSibling() {
		style, _ := cell.Attr(attrStyleID)
		var dataType, text string
		if data := cell.Child(elemData); data != nil {
			dataType, _ = data.Attr(attrType)
			text = data.Text()
		}
		if style != styleVoteCount || dataType != typeNumber {
			return tuple, resultsErr(sheetName, rowIdx, fmt.Sprintf("vote cell styled %q typed %q", style, dataType), ErrSchemaViolation)
		}
		v, err := strconv.Atoi(text)
		if err != nil {
			return tuple, resultsErr(sheetName, rowIdx, fmt.Sprintf("%q is not an integer", text), ErrParseFailure)
		}
		tuple.Data = append(tuple.Data, v)
	}

	return tuple, nil
}

// mergeAcross returns the cell's MergeAcross count, 0 when absent.
func mergeAcross(cell sheetxml.Node) (int, error) {
	raw, ok := cell.Attr(attrMergeAcross)
	if !ok {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("MergeAcross %q is not an integer", raw)
	}
	return v, nil
}

// nextRow is a nil-safe sibling step for the fixed row groups.
func nextRow(row sheetxml.Node) sheetxml.Node {
	if row == nil {
		return nil
	}
	return row.NextSibling()
}

func resultsErr(sheetName string, rowIdx int, detail string, kind error) error {
	return fmt.Errorf("worksheet %q row %d: %s: %w", sheetName, rowIdx, detail, kind)
}
