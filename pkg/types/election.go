// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DocumentProperties holds the workbook metadata block. All three fields
// are required; a workbook without them is rejected whole.
type DocumentProperties struct {
	Title   string `json:"title" yaml:"title"`
	Author  string `json:"author" yaml:"author"`
	Created string `json:"created" yaml:"created"`
}

// TocEntry is one recognized row of the "Table of Contents" worksheet:
// a page number paired with the contest printed on that page.
type TocEntry struct {
	Page    int    `json:"page" yaml:"page"`
	Contest string `json:"contest" yaml:"contest"`
}

// RegionProfile is one data row of the "Registered Voters" worksheet.
// Either all four fields are populated or the row is rejected; there are
// no partial profiles.
type RegionProfile struct {
	RegionName       string  `json:"region_name" yaml:"region_name"`
	RegisteredVoters int     `json:"registered_voters" yaml:"registered_voters"`
	BallotsCast      int     `json:"ballots_cast" yaml:"ballots_cast"`
	VoterTurnout     float64 `json:"voter_turnout" yaml:"voter_turnout"`
}

// ElectionHeader describes one logical column of a results worksheet
// after merged-cell expansion. CandidateName is empty for columns that
// do not belong to a candidate (e.g. the region label or totals).
type ElectionHeader struct {
	ColumnName    string `json:"column_name" yaml:"column_name"`
	CandidateName string `json:"candidate_name,omitempty" yaml:"candidate_name,omitempty"`
}

// LabeledTuple is one data row of a results worksheet: a region label
// followed by one vote count per non-label column. For an election with
// headers H, len(Data)+1 == len(H) always holds.
type LabeledTuple struct {
	Label string `json:"label" yaml:"label"`
	Data  []int  `json:"data" yaml:"data"`
}

// Election holds one contest worksheet: its title, the expanded header
// columns, and one tuple per region row, in document order.
type Election struct {
	Name    string           `json:"name" yaml:"name"`
	Headers []ElectionHeader `json:"headers" yaml:"headers"`
	Results []LabeledTuple   `json:"results" yaml:"results"`
}

// ElectionDataset is the fully extracted workbook. It is built once by a
// successful extraction and never mutated afterwards; a failed extraction
// produces no dataset at all.
type ElectionDataset struct {
	Properties DocumentProperties `json:"properties" yaml:"properties"`
	Contents   []TocEntry         `json:"table_of_contents" yaml:"table_of_contents"`
	Regions    []RegionProfile    `json:"regions" yaml:"regions"`
	Elections  []Election         `json:"elections" yaml:"elections"`
}
