// Package ingest performs the one-time conversion of the raw CSV datasets
// into the catalog tables. Each category has a fixed source file and a
// normalize step that renames columns, coerces types and joins list-valued
// fields into comma-separated strings.
//
// A row that cannot be normalized is skipped, never fatal to the batch.
// The whole pass runs only when the store has no data yet; re-running it
// is a human decision made by deleting the database file and restarting.
package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"

	"github.com/mediashelf/entertainment/internal/store"
)

// headerIndex maps cleaned column names to their position in a CSV row.
type headerIndex map[string]int

// source describes one category's raw dataset and how to turn its rows
// into store records.
type source struct {
	// Key is the category name, also the target table.
	Key string
	// File is the CSV file name inside the data directory.
	File string
	// Attribution is stamped into created_by for every ingested row.
	Attribution string
	// Windows1252 marks datasets that are not UTF-8 encoded.
	Windows1252 bool
	// Normalize converts one raw row into an insertable record plus its
	// natural key for in-batch deduplication.
	Normalize func(row []string, idx headerIndex, attribution string) (any, string, error)
	// Insert writes a normalized record to the store.
	Insert func(ctx context.Context, st *store.Store, rec any) error
}

// sources lists the four category datasets in ingestion order.
var sources = []source{
	moviesSource,
	songsSource,
	booksSource,
	gamesSource,
}

// Runner executes the ingestion pass against a store.
type Runner struct {
	store   *store.Store
	dataDir string
	log     *slog.Logger
}

// NewRunner returns a Runner reading CSV files from dataDir.
func NewRunner(st *store.Store, dataDir string) *Runner {
	return &Runner{
		store:   st,
		dataDir: dataDir,
		log:     slog.Default(),
	}
}

// Result summarizes one category's ingestion.
type Result struct {
	Category string
	Inserted int
	Skipped  int
}

// Run ingests every category whose table is still empty. It is an
// explicit idempotent initialization step: calling it against an already
// seeded store is a no-op.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	runID := uuid.NewString()
	log := r.log.With("run_id", runID)

	var results []Result
	for _, src := range sources {
		n, err := r.store.Count(ctx, src.Key)
		if err != nil {
			return results, err
		}
		if n > 0 {
			log.Debug("table already seeded, skipping", "category", src.Key, "rows", n)
			continue
		}

		res, err := r.ingestSource(ctx, log, src)
		if err != nil {
			// A missing or unreadable dataset leaves that category empty
			// but does not abort the others.
			log.Error("dataset ingestion failed", "category", src.Key, "error", err)
			continue
		}
		log.Info("dataset ingested",
			"category", res.Category,
			"inserted", res.Inserted,
			"skipped", res.Skipped,
		)
		results = append(results, res)
	}
	return results, nil
}

// ingestSource reads, normalizes and inserts a single category dataset.
func (r *Runner) ingestSource(ctx context.Context, log *slog.Logger, src source) (Result, error) {
	res := Result{Category: src.Key}

	path := filepath.Join(r.dataDir, src.File)
	f, err := os.Open(path)
	if err != nil {
		return res, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	var rd io.Reader = f
	if src.Windows1252 {
		rd = charmap.Windows1252.NewDecoder().Reader(f)
	}

	cr := csv.NewReader(rd)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return res, fmt.Errorf("read header: %w", err)
	}
	idx := makeHeaderIndex(header)

	seen := make(map[string]bool)
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			res.Skipped++
			log.Debug("unreadable row skipped", "category", src.Key, "line", line, "error", err)
			continue
		}
		if emptyRow(row) {
			continue
		}

		rec, key, err := src.Normalize(row, idx, src.Attribution)
		if err != nil {
			res.Skipped++
			log.Debug("row skipped", "category", src.Key, "line", line, "reason", err)
			continue
		}

		// First occurrence of a natural key wins, duplicates are dropped.
		if seen[key] {
			res.Skipped++
			continue
		}
		seen[key] = true

		if err := src.Insert(ctx, r.store, rec); err != nil {
			res.Skipped++
			log.Debug("row insert failed", "category", src.Key, "line", line, "error", err)
			continue
		}
		res.Inserted++
	}

	return res, nil
}

// makeHeaderIndex builds a lookup of cleaned header names to positions.
// Called once per file, then reused for every row.
func makeHeaderIndex(header []string) headerIndex {
	idx := make(headerIndex, len(header))
	for i, h := range header {
		idx[cleanHeader(h)] = i
	}
	return idx
}

func emptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
