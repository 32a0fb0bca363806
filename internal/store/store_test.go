package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/scytl-extract/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.StoreConfig{DatabasePath: filepath.Join(t.TempDir(), "results.db")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleDataset() *types.ElectionDataset {
	return &types.ElectionDataset{
		Properties: types.DocumentProperties{
			Title:   "Summary Report",
			Author:  "Secretary of State",
			Created: "2012-05-25",
		},
		Contents: []types.TocEntry{
			{Page: 1, Contest: "Registered Voters"},
			{Page: 2, Contest: "U.S. President - DEM"},
		},
		Regions: []types.RegionProfile{
			{RegionName: "Arkansas", RegisteredVoters: 9095, BallotsCast: 1898, VoterTurnout: 20.87},
		},
		Elections: []types.Election{
			{
				Name: "U.S. President - DEM",
				Headers: []types.ElectionHeader{
					{ColumnName: "County"},
					{ColumnName: "Total Votes", CandidateName: "Barack Obama"},
					{ColumnName: "Total"},
				},
				Results: []types.LabeledTuple{
					{Label: "Arkansas", Data: []int{599, 1107}},
				},
			},
		},
	}
}

func TestSaveAndLoad(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	docID, err := s.Save(ctx, "results.xml", sampleDataset())
	require.NoError(t, err)
	require.Positive(t, docID)

	got, err := s.Load(ctx, docID)
	require.NoError(t, err)
	assert.Equal(t, sampleDataset(), got)
}

func TestSaveAssignsDistinctDocuments(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	first, err := s.Save(ctx, "a.xml", sampleDataset())
	require.NoError(t, err)
	second, err := s.Save(ctx, "b.xml", sampleDataset())
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	got, err := s.Load(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, sampleDataset(), got)
}

func TestLoadUnknownDocument(t *testing.T) {
	s := testStore(t)

	_, err := s.Load(context.Background(), 999)
	require.Error(t, err)
}

func TestSaveEmptyCollections(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	ds := &types.ElectionDataset{
		Properties: types.DocumentProperties{Title: "T", Author: "A", Created: "C"},
	}
	docID, err := s.Save(ctx, "empty.xml", ds)
	require.NoError(t, err)

	got, err := s.Load(ctx, docID)
	require.NoError(t, err)
	assert.Equal(t, ds, got)
}

func TestOpenReusesExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	ctx := context.Background()

	first, err := Open(types.StoreConfig{DatabasePath: path})
	require.NoError(t, err)
	docID, err := first.Save(ctx, "results.xml", sampleDataset())
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(types.StoreConfig{DatabasePath: path})
	require.NoError(t, err)
	defer second.Close()

	got, err := second.Load(ctx, docID)
	require.NoError(t, err)
	assert.Equal(t, sampleDataset(), got)
}
