// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scytl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/scytl-extract/internal/sheetxml"
	"github.com/pdiddy/scytl-extract/pkg/types"
)

// turnoutSuffix is the two-character suffix every turnout datum carries.
const turnoutSuffix = " %"

// readRegisteredVoters reads the "Registered Voters" worksheet: a header
// row naming the columns, then one row per region. The header name, cell
// style, and datum type are cross-checked for every cell, so a column
// that moved or changed meaning fails the extraction instead of
// producing misattributed counts.
func readRegisteredVoters(ws sheetxml.Node) ([]types.RegionProfile, error) {
	table := ws.Child(elemTable)
	if table == nil {
		return nil, fmt.Errorf("worksheet %q: no table: %w", sheetRegisteredVoters, ErrMissingNode)
	}

	// First row is the header. String-typed cells contribute their text;
	// decorative cells without a String datum are ignored.
	var header []string
	row := table.Child(elemRow)
	if row != nil {
		for cell := row.Child(elemCell); cell != nil; cell = cell.NextSibling() {
			data := cell.Child(elemData)
			if data == nil {
				continue
			}
			if t, _ := data.Attr(attrType); t == typeString {
				header = append(header, data.Text())
			}
		}
		row = row.NextSibling()
	}

	var regions []types.RegionProfile
	for rowIdx := 2; row != nil; row, rowIdx = row.NextSibling(), rowIdx+1 {
		profile, err := readRegionRow(row, header, rowIdx)
		if err != nil {
			return nil, err
		}
		regions = append(regions, profile)
	}

	return regions, nil
}

// readRegionRow reads one data row against the header list. The first
// cell is always the region name; the remaining cells are matched
// positionally against the header with its first entry skipped, since
// the name column's label differs between county- and precinct-level
// files.
func readRegionRow(row sheetxml.Node, header []string, rowIdx int) (types.RegionProfile, error) {
	var profile types.RegionProfile

	cell := row.Child(elemCell)
	if cell == nil {
		return profile, votersErr(rowIdx, "no cells", ErrMissingNode)
	}
	data := cell.Child(elemData)
	if data == nil {
		return profile, votersErr(rowIdx, "region name has no datum", ErrMissingNode)
	}
	if t, _ := data.Attr(attrType); t != typeString {
		return profile, votersErr(rowIdx, fmt.Sprintf("region name typed %q", t), ErrTypeMismatch)
	}
	profile.RegionName = data.Text()

	cell = cell.NextSibling()
	col := 1
	for ; cell != nil && col < len(header); cell, col = cell.NextSibling(), col+1 {
		style, _ := cell.Attr(attrStyleID)
		var dataType, text string
		if data := cell.Child(elemData); data != nil {
			dataType, _ = data.Attr(attrType)
			text = data.Text()
		}

		switch header[col] {
		case columnRegisteredVoters:
			if style != styleVoteCount || dataType != typeNumber {
				return profile, votersErr(rowIdx, fmt.Sprintf("%q cell styled %q typed %q", header[col], style, dataType), ErrSchemaViolation)
			}
			v, err := strconv.Atoi(text)
			if err != nil {
				return profile, votersErr(rowIdx, fmt.Sprintf("%q is not an integer", text), ErrParseFailure)
			}
			profile.RegisteredVoters = v

		case columnBallotsCast:
			if style != styleVoteCount || dataType != typeNumber {
				return profile, votersErr(rowIdx, fmt.Sprintf("%q cell styled %q typed %q", header[col], style, dataType), ErrSchemaViolation)
			}
			v, err := strconv.Atoi(text)
			if err != nil {
				return profile, votersErr(rowIdx, fmt.Sprintf("%q is not an integer", text), ErrParseFailure)
			}
			profile.BallotsCast = v

		case columnVoterTurnout:
			if style != styleVoteCount || dataType != typeString {
				return profile, votersErr(rowIdx, fmt.Sprintf("%q cell styled %q typed %q", header[col], style, dataType), ErrSchemaViolation)
			}
			v, err := parseTurnout(text)
			if err != nil {
				return profile, votersErr(rowIdx, err.Error(), ErrParseFailure)
			}
			profile.VoterTurnout = v

		default:
			return profile, votersErr(rowIdx, fmt.Sprintf("unrecognized column name %q", header[col]), ErrSchemaViolation)
		}
	}

	// Cells and header entries must run out in lock-step.
	if cell != nil || col != len(header) {
		return profile, votersErr(rowIdx, "cell count disagrees with header", ErrWidthMismatch)
	}

	return profile, nil
}

// parseTurnout converts a percentage datum like "20.87 %" to its numeric
// value. The trailing " %" is required verbatim and the remainder must
// parse as a decimal with nothing left over.
func parseTurnout(s string) (float64, error) {
	if !strings.HasSuffix(s, turnoutSuffix) {
		return 0, fmt.Errorf("turnout %q lacks %q suffix", s, turnoutSuffix)
	}
	v, err := strconv.ParseFloat(s[:len(s)-len(turnoutSuffix)], 64)
	if err != nil {
		return 0, fmt.Errorf("turnout %q is not a decimal", s)
	}
	return v, nil
}

func votersErr(rowIdx int, detail string, kind error) error {
	return fmt.Errorf("worksheet %q row %d: %s: %w", sheetRegisteredVoters, rowIdx, detail, kind)
}
