// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders extracted election datasets: the
// semicolon-delimited text report, and YAML/JSON exports of the full
// dataset.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdiddy/scytl-extract/pkg/types"
)

// Write renders the dataset as semicolon-delimited text: three metadata
// lines, one line per table-of-contents entry, the registered-voters
// section with its header line, then each election as a name line, a
// joined header line, and one line per data tuple.
func Write(w io.Writer, ds *types.ElectionDataset) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Title;%s\n", ds.Properties.Title)
	fmt.Fprintf(bw, "Author;%s\n", ds.Properties.Author)
	fmt.Fprintf(bw, "Created;%s\n", ds.Properties.Created)

	for _, entry := range ds.Contents {
		fmt.Fprintf(bw, "%d;%s\n", entry.Page, entry.Contest)
	}

	fmt.Fprintln(bw, "County;Registered Voters;Ballots Cast;Voter Turnout")
	for _, region := range ds.Regions {
		fmt.Fprintf(bw, "  %s;%d;%d;%s\n",
			region.RegionName, region.RegisteredVoters, region.BallotsCast,
			formatTurnout(region.VoterTurnout))
	}

	for _, election := range ds.Elections {
		fmt.Fprintln(bw, election.Name)
		fmt.Fprintln(bw, joinHeaders(election.Headers))
		for _, tuple := range election.Results {
			fmt.Fprint(bw, tuple.Label)
			for _, v := range tuple.Data {
				fmt.Fprintf(bw, ";%d", v)
			}
			fmt.Fprintln(bw)
		}
	}

	return bw.Flush()
}

// joinHeaders renders one election's header line: "candidate - column"
// for columns owned by a candidate, the bare column name otherwise.
func joinHeaders(headers []types.ElectionHeader) string {
	parts := make([]string, len(headers))
	for i, h := range headers {
		if h.CandidateName != "" {
			parts[i] = h.CandidateName + " - " + h.ColumnName
		} else {
			parts[i] = h.ColumnName
		}
	}
	return strings.Join(parts, ";")
}

// formatTurnout renders a turnout percentage without a fixed precision,
// so 20.87 stays "20.87" and 21.5 stays "21.5".
func formatTurnout(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
