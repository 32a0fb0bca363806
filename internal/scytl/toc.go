// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scytl

import (
	"fmt"
	"strconv"

	"github.com/pdiddy/scytl-extract/internal/sheetxml"
	"github.com/pdiddy/scytl-extract/pkg/types"
)

// readTableOfContents scans the first worksheet for (page, contest)
// index rows. A row counts only if its first cell carries the "Page"
// style and it holds exactly two data cells typed Number then String
// with a parseable page number. The sheet carries headers and other
// decoration on the same table, so anything else is skipped silently
// rather than rejected.
//
// Example row:
//
//	<Row>
//	  <Cell ss:StyleID="Page"><Data ss:Type="Number">1</Data></Cell>
//	  <Cell><Data ss:Type="String">Registered Voters</Data></Cell>
//	</Row>
func readTableOfContents(ws sheetxml.Node) ([]types.TocEntry, error) {
	table := ws.Child(elemTable)
	if table == nil {
		return nil, fmt.Errorf("worksheet %q: no table: %w", sheetTableOfContents, ErrMissingNode)
	}

	var toc []types.TocEntry
	for row := table.Child(elemRow); row != nil; row = row.NextSibling() {
		pageCell := row.Child(elemCell)
		if pageCell == nil {
			continue
		}
		contestCell := pageCell.NextSibling()
		if contestCell == nil || contestCell.NextSibling() != nil {
			continue
		}

		if style, ok := pageCell.Attr(attrStyleID); !ok || style != stylePage {
			continue
		}

		pageData := pageCell.Child(elemData)
		contestData := contestCell.Child(elemData)
		if pageData == nil || contestData == nil {
			continue
		}
		if t, _ := pageData.Attr(attrType); t != typeNumber {
			continue
		}
		if t, _ := contestData.Attr(attrType); t != typeString {
			continue
		}

		page, err := strconv.Atoi(pageData.Text())
		if err != nil {
			continue
		}

		toc = append(toc, types.TocEntry{Page: page, Contest: contestData.Text()})
	}

	return toc, nil
}
