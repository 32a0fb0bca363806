package scytl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pdiddy/scytl-extract/internal/sheetxml"
)

// nsDecl declares the two namespaces the way Scytl workbooks do: the
// spreadsheet namespace as default and again under the ss prefix for
// attributes, plus the office namespace for metadata.
const nsDecl = `xmlns="urn:schemas-microsoft-com:office:spreadsheet" ` +
	`xmlns:ss="urn:schemas-microsoft-com:office:spreadsheet" ` +
	`xmlns:o="urn:schemas-microsoft-com:office:office"`

func decodeDoc(t *testing.T, src string) sheetxml.Node {
	t.Helper()
	doc, err := sheetxml.Decode(strings.NewReader(src))
	require.NoError(t, err)
	return doc
}

// worksheet wraps table rows in a named Worksheet/Table pair.
func worksheet(name, rows string) string {
	return `<Worksheet ss:Name="` + name + `"><Table>` + rows + `</Table></Worksheet>`
}

// worksheetNode decodes a standalone worksheet fixture.
func worksheetNode(t *testing.T, rows string) sheetxml.Node {
	t.Helper()
	doc := decodeDoc(t, `<Workbook `+nsDecl+`>`+worksheet("Test", rows)+`</Workbook>`)
	ws := doc.Child(elemWorkbook).Child(elemWorksheet)
	require.NotNil(t, ws)
	return ws
}

// stringCell renders a plain String-typed cell.
func stringCell(text string) string {
	return `<Cell><Data ss:Type="String">` + text + `</Data></Cell>`
}

// voteCell renders a VoteCount-styled Number cell.
func voteCell(value string) string {
	return `<Cell ss:StyleID="VoteCount"><Data ss:Type="Number">` + value + `</Data></Cell>`
}

// docProperties renders the metadata block.
func docProperties(title, author, created string) string {
	return `<o:DocumentProperties>` +
		`<o:Title>` + title + `</o:Title>` +
		`<o:Author>` + author + `</o:Author>` +
		`<o:Created>` + created + `</o:Created>` +
		`</o:DocumentProperties>`
}

// tocSheet renders a minimal "Table of Contents" worksheet with the
// given (page, contest) rows.
func tocSheet(entries ...[2]string) string {
	var rows strings.Builder
	rows.WriteString(`<Row>` + stringCell("Summary Results Report") + `</Row>`)
	for _, e := range entries {
		rows.WriteString(`<Row><Cell ss:StyleID="Page"><Data ss:Type="Number">` + e[0] + `</Data></Cell>` +
			stringCell(e[1]) + `</Row>`)
	}
	return worksheet(sheetTableOfContents, rows.String())
}

// votersSheet renders a "Registered Voters" worksheet with the standard
// header and the given data rows.
func votersSheet(dataRows string) string {
	header := `<Row>` +
		stringCell("County") +
		stringCell(columnRegisteredVoters) +
		stringCell(columnBallotsCast) +
		stringCell(columnVoterTurnout) +
		`</Row>`
	return worksheet(sheetRegisteredVoters, header+dataRows)
}

// voterRow renders one region row of the registered-voters sheet.
func voterRow(region, registered, cast, turnout string) string {
	return `<Row>` + stringCell(region) +
		voteCell(registered) +
		voteCell(cast) +
		`<Cell ss:StyleID="VoteCount"><Data ss:Type="String">` + turnout + `</Data></Cell>` +
		`</Row>`
}

// presidentSheet is a two-candidate contest sheet: seven logical columns
// (County, two per candidate, and two more plus a total), regions
// Arkansas and Ashley.
func presidentSheet() string {
	rows := `<Row><Cell ss:MergeAcross="6" ss:StyleID="headerLbl">` +
		`<Data ss:Type="String">U.S. President - DEM</Data></Cell></Row>` +
		`<Row>` +
		`<Cell><Data ss:Type="String"/></Cell>` +
		`<Cell><Data ss:Type="String"/></Cell>` +
		`<Cell ss:MergeAcross="1"><Data ss:Type="String">John Wolfe</Data></Cell>` +
		`<Cell ss:MergeAcross="1"><Data ss:Type="String">Barack Obama</Data></Cell>` +
		`<Cell><Data ss:Type="String"/></Cell>` +
		`</Row>` +
		`<Row>` +
		stringCell("County") +
		stringCell("Registered Voters") +
		stringCell("Election Day") +
		stringCell("Total Votes") +
		stringCell("Election Day") +
		stringCell("Total Votes") +
		stringCell("Total") +
		`</Row>` +
		`<Row>` + stringCell("Arkansas") +
		voteCell("9095") + voteCell("0") + voteCell("508") + voteCell("599") + voteCell("599") + voteCell("1107") +
		`</Row>` +
		`<Row>` + stringCell("Ashley") +
		voteCell("11846") + voteCell("12") + voteCell("444") + voteCell("745") + voteCell("757") + voteCell("1201") +
		`</Row>`
	return worksheet("U.S. President - DEM", rows)
}

// workbook wraps body elements in the Workbook root with namespaces.
func workbook(body string) string {
	return `<?xml version="1.0"?><Workbook ` + nsDecl + `>` + body + `</Workbook>`
}
