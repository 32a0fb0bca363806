package scytl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/scytl-extract/pkg/types"
)

// minimalWorkbook is the smallest complete document: metadata, a TOC
// with one entry, a registered-voters sheet with one region, and no
// contest sheets.
func minimalWorkbook() string {
	return workbook(
		docProperties("Summary Report", "Secretary of State", "2012-05-25") +
			tocSheet([2]string{"1", "Registered Voters"}) +
			votersSheet(voterRow("Arkansas", "9095", "1898", "20.87 %")))
}

func TestReadMinimalWorkbook(t *testing.T) {
	ds, err := Read(decodeDoc(t, minimalWorkbook()))
	require.NoError(t, err)

	assert.Equal(t, types.DocumentProperties{
		Title:   "Summary Report",
		Author:  "Secretary of State",
		Created: "2012-05-25",
	}, ds.Properties)
	assert.Equal(t, []types.TocEntry{{Page: 1, Contest: "Registered Voters"}}, ds.Contents)
	assert.Equal(t, []types.RegionProfile{
		{RegionName: "Arkansas", RegisteredVoters: 9095, BallotsCast: 1898, VoterTurnout: 20.87},
	}, ds.Regions)
	assert.Empty(t, ds.Elections)
}

func TestReadWorkbookWithElections(t *testing.T) {
	src := workbook(
		docProperties("Summary Report", "Secretary of State", "2012-05-25") +
			tocSheet([2]string{"1", "Registered Voters"}, [2]string{"2", "U.S. President - DEM"}) +
			votersSheet(voterRow("Arkansas", "9095", "1898", "20.87 %")) +
			presidentSheet())

	ds, err := Read(decodeDoc(t, src))
	require.NoError(t, err)

	require.Len(t, ds.Elections, 1)
	assert.Equal(t, "U.S. President - DEM", ds.Elections[0].Name)
	assert.Len(t, ds.Elections[0].Headers, 7)
	assert.Len(t, ds.Elections[0].Results, 2)
}

func TestReadIsDeterministic(t *testing.T) {
	doc := decodeDoc(t, workbook(
		docProperties("T", "A", "C") +
			tocSheet([2]string{"1", "Registered Voters"}) +
			votersSheet(voterRow("Arkansas", "9095", "1898", "20.87 %")) +
			presidentSheet()))

	first, err := Read(doc)
	require.NoError(t, err)
	second, err := Read(doc)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestReadNoWorkbookRoot(t *testing.T) {
	_, err := Read(decodeDoc(t, `<NotAWorkbook `+nsDecl+`/>`))
	require.ErrorIs(t, err, ErrMissingNode)
}

func TestReadMissingWorksheets(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "no worksheets at all",
			body: docProperties("T", "A", "C"),
		},
		{
			name: "no registered voters sheet",
			body: docProperties("T", "A", "C") + tocSheet(),
		},
		{
			// The scan is forward-only: a sheet behind the cursor is
			// never found, so order in the document is load-bearing.
			name: "registered voters before table of contents",
			body: docProperties("T", "A", "C") +
				votersSheet(voterRow("Arkansas", "9095", "1898", "20.87 %")) +
				tocSheet([2]string{"1", "Registered Voters"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(decodeDoc(t, workbook(tt.body)))
			require.ErrorIs(t, err, ErrMissingNode)
		})
	}
}

func TestReadAbortsOnBadElectionSheet(t *testing.T) {
	// Last data row is one vote cell short; the whole read fails and no
	// dataset survives.
	badSheet := worksheet("U.S. Senate", `<Row><Cell ss:MergeAcross="2" ss:StyleID="headerLbl">`+
		`<Data ss:Type="String">U.S. Senate</Data></Cell></Row>`+
		`<Row><Cell><Data ss:Type="String"/></Cell>`+
		`<Cell ss:MergeAcross="1"><Data ss:Type="String">A</Data></Cell></Row>`+
		`<Row>`+stringCell("County")+stringCell("Votes")+stringCell("Total")+`</Row>`+
		`<Row>`+stringCell("Clark")+voteCell("10")+`</Row>`)

	src := workbook(
		docProperties("T", "A", "C") +
			tocSheet([2]string{"1", "Registered Voters"}) +
			votersSheet(voterRow("Arkansas", "9095", "1898", "20.87 %")) +
			presidentSheet() +
			badSheet)

	ds, err := Read(decodeDoc(t, src))
	require.ErrorIs(t, err, ErrWidthMismatch)
	assert.Nil(t, ds)
	assert.Contains(t, err.Error(), "U.S. Senate")
}

func TestReadPropagatesPropertiesFailure(t *testing.T) {
	src := workbook(
		`<o:DocumentProperties><o:Title>T</o:Title></o:DocumentProperties>` +
			tocSheet() +
			votersSheet(""))

	_, err := Read(decodeDoc(t, src))
	require.ErrorIs(t, err, ErrMissingNode)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.xml")
	require.NoError(t, os.WriteFile(path, []byte(minimalWorkbook()), 0o644))

	ds, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Summary Report", ds.Properties.Title)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.xml"))
	require.Error(t, err)
}

func TestReadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xml")
	require.NoError(t, os.WriteFile(path, []byte("<Workbook><unclosed>"), 0o644))

	_, err := ReadFile(path)
	require.Error(t, err)
}
