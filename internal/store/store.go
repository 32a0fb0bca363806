// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists extracted election datasets in SQLite, one
// document row per workbook with its TOC entries, region profiles, and
// election results in normalized tables.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/scytl-extract/pkg/types"
)

// Store manages the results SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the results database at cfg.DatabasePath and
// creates the schema if it does not exist.
func Open(cfg types.StoreConfig) (*Store, error) {
	db, err := sql.Open("sqlite3", cfg.DatabasePath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			title TEXT,
			author TEXT,
			created TEXT,
			stored_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS toc_entries (
			document_id INTEGER NOT NULL REFERENCES documents(id),
			position INTEGER NOT NULL,
			page INTEGER NOT NULL,
			contest TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS regions (
			document_id INTEGER NOT NULL REFERENCES documents(id),
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			registered_voters INTEGER NOT NULL,
			ballots_cast INTEGER NOT NULL,
			voter_turnout REAL NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS elections (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			document_id INTEGER NOT NULL REFERENCES documents(id),
			position INTEGER NOT NULL,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS election_headers (
			election_id INTEGER NOT NULL REFERENCES elections(id),
			position INTEGER NOT NULL,
			column_name TEXT NOT NULL,
			candidate_name TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS election_results (
			election_id INTEGER NOT NULL REFERENCES elections(id),
			position INTEGER NOT NULL,
			label TEXT NOT NULL,
			votes TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_elections_document_id ON elections(document_id)`,
		`CREATE INDEX IF NOT EXISTS idx_regions_document_id ON regions(document_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save persists a dataset extracted from the named source workbook in a
// single transaction and returns the new document id.
func (s *Store) Save(ctx context.Context, source string, ds *types.ElectionDataset) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO documents (source, title, author, created, stored_at) VALUES (?, ?, ?, ?, ?)`,
		source, ds.Properties.Title, ds.Properties.Author, ds.Properties.Created,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("inserting document: %w", err)
	}
	docID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading document id: %w", err)
	}

	for i, entry := range ds.Contents {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO toc_entries (document_id, position, page, contest) VALUES (?, ?, ?, ?)`,
			docID, i, entry.Page, entry.Contest); err != nil {
			return 0, fmt.Errorf("inserting TOC entry: %w", err)
		}
	}

	for i, region := range ds.Regions {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO regions (document_id, position, name, registered_voters, ballots_cast, voter_turnout)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			docID, i, region.RegionName, region.RegisteredVoters, region.BallotsCast, region.VoterTurnout); err != nil {
			return 0, fmt.Errorf("inserting region %s: %w", region.RegionName, err)
		}
	}

	for i, election := range ds.Elections {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO elections (document_id, position, name) VALUES (?, ?, ?)`,
			docID, i, election.Name)
		if err != nil {
			return 0, fmt.Errorf("inserting election %s: %w", election.Name, err)
		}
		electionID, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("reading election id: %w", err)
		}

		for j, h := range election.Headers {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO election_headers (election_id, position, column_name, candidate_name) VALUES (?, ?, ?, ?)`,
				electionID, j, h.ColumnName, h.CandidateName); err != nil {
				return 0, fmt.Errorf("inserting header: %w", err)
			}
		}

		for j, tuple := range election.Results {
			votes, err := json.Marshal(tuple.Data)
			if err != nil {
				return 0, fmt.Errorf("marshaling votes: %w", err)
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO election_results (election_id, position, label, votes) VALUES (?, ?, ?, ?)`,
				electionID, j, tuple.Label, string(votes)); err != nil {
				return 0, fmt.Errorf("inserting result row %s: %w", tuple.Label, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}
	return docID, nil
}

// Load reads a stored dataset back by document id.
func (s *Store) Load(ctx context.Context, docID int64) (*types.ElectionDataset, error) {
	var ds types.ElectionDataset

	err := s.db.QueryRowContext(ctx,
		`SELECT title, author, created FROM documents WHERE id = ?`, docID).
		Scan(&ds.Properties.Title, &ds.Properties.Author, &ds.Properties.Created)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no document with id %d", docID)
	}
	if err != nil {
		return nil, fmt.Errorf("querying document: %w", err)
	}

	if err := s.loadContents(ctx, docID, &ds); err != nil {
		return nil, err
	}
	if err := s.loadRegions(ctx, docID, &ds); err != nil {
		return nil, err
	}
	if err := s.loadElections(ctx, docID, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (s *Store) loadContents(ctx context.Context, docID int64, ds *types.ElectionDataset) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT page, contest FROM toc_entries WHERE document_id = ? ORDER BY position`, docID)
	if err != nil {
		return fmt.Errorf("querying TOC entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entry types.TocEntry
		if err := rows.Scan(&entry.Page, &entry.Contest); err != nil {
			return fmt.Errorf("scanning TOC entry: %w", err)
		}
		ds.Contents = append(ds.Contents, entry)
	}
	return rows.Err()
}

func (s *Store) loadRegions(ctx context.Context, docID int64, ds *types.ElectionDataset) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, registered_voters, ballots_cast, voter_turnout
		 FROM regions WHERE document_id = ? ORDER BY position`, docID)
	if err != nil {
		return fmt.Errorf("querying regions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r types.RegionProfile
		if err := rows.Scan(&r.RegionName, &r.RegisteredVoters, &r.BallotsCast, &r.VoterTurnout); err != nil {
			return fmt.Errorf("scanning region: %w", err)
		}
		ds.Regions = append(ds.Regions, r)
	}
	return rows.Err()
}

func (s *Store) loadElections(ctx context.Context, docID int64, ds *types.ElectionDataset) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name FROM elections WHERE document_id = ? ORDER BY position`, docID)
	if err != nil {
		return fmt.Errorf("querying elections: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		var election types.Election
		if err := rows.Scan(&id, &election.Name); err != nil {
			return fmt.Errorf("scanning election: %w", err)
		}
		ids = append(ids, id)
		ds.Elections = append(ds.Elections, election)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i, id := range ids {
		if err := s.loadElectionDetail(ctx, id, &ds.Elections[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) loadElectionDetail(ctx context.Context, electionID int64, election *types.Election) error {
	headerRows, err := s.db.QueryContext(ctx,
		`SELECT column_name, candidate_name FROM election_headers
		 WHERE election_id = ? ORDER BY position`, electionID)
	if err != nil {
		return fmt.Errorf("querying headers: %w", err)
	}
	defer headerRows.Close()

	for headerRows.Next() {
		var h types.ElectionHeader
		if err := headerRows.Scan(&h.ColumnName, &h.CandidateName); err != nil {
			return fmt.Errorf("scanning header: %w", err)
		}
		election.Headers = append(election.Headers, h)
	}
	if err := headerRows.Err(); err != nil {
		return err
	}

	resultRows, err := s.db.QueryContext(ctx,
		`SELECT label, votes FROM election_results
		 WHERE election_id = ? ORDER BY position`, electionID)
	if err != nil {
		return fmt.Errorf("querying results: %w", err)
	}
	defer resultRows.Close()

	for resultRows.Next() {
		var tuple types.LabeledTuple
		var votes string
		if err := resultRows.Scan(&tuple.Label, &votes); err != nil {
			return fmt.Errorf("scanning result row: %w", err)
		}
		if err := json.Unmarshal([]byte(votes), &tuple.Data); err != nil {
			return fmt.Errorf("unmarshaling votes: %w", err)
		}
		election.Results = append(election.Results, tuple)
	}
	return resultRows.Err()
}
