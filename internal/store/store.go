// Package store persists the four catalog tables (movies, songs, books,
// games) in a single local SQLite database file.
//
// The store assigns integer primary keys and treats list-valued attributes
// (genres, developers, publishers) as comma-joined strings, since SQLite
// has no native list column type. Write serialization is left to the
// engine's own locking; the only concession here is a busy timeout so
// overlapping writers wait instead of failing immediately.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"
	"github.com/samber/lo"
)

// ErrNotFound is returned by id-based lookups, updates and deletes when no
// record with the given id exists.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned by inserts and updates that collide with an
// existing record's natural key.
var ErrDuplicate = errors.New("record already exists")

// Store wraps the SQLite database handle. It is safe for concurrent use
// and is injected into request handlers rather than held as a package
// singleton.
type Store struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// Open opens (creating if necessary) the SQLite database file at path.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	return &Store{
		db: db,
		sb: squirrel.StatementBuilder.RunWith(db),
	}, nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the raw handle for tests.
func (s *Store) DB() *sql.DB {
	return s.db
}

const schema = `
CREATE TABLE IF NOT EXISTS movies (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	title       TEXT    NOT NULL,
	premiere    TEXT    NOT NULL,
	score       REAL,
	genres      TEXT    NOT NULL,
	overview    TEXT,
	crew        TEXT,
	orig_title  TEXT,
	orig_lang   TEXT,
	budget      REAL,
	revenue     REAL,
	country     TEXT,
	created_by  TEXT,
	updated_by  TEXT,
	UNIQUE(title, premiere)
);

CREATE TABLE IF NOT EXISTS songs (
	id                INTEGER PRIMARY KEY AUTOINCREMENT,
	spotify_id        TEXT,
	title             TEXT    NOT NULL,
	artist            TEXT    NOT NULL,
	song_popularity   INTEGER,
	album_id          TEXT,
	album_name        TEXT    NOT NULL,
	album_premiere    TEXT,
	playlist_name     TEXT,
	playlist_genre    TEXT,
	playlist_subgenre TEXT,
	duration_ms       INTEGER,
	created_by        TEXT,
	updated_by        TEXT,
	UNIQUE(title, artist, album_name, duration_ms)
);

CREATE TABLE IF NOT EXISTS books (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	title          TEXT    NOT NULL,
	author         TEXT    NOT NULL,
	description    TEXT,
	genres         TEXT    NOT NULL,
	avg_rating     REAL,
	rating_reviews INTEGER,
	created_by     TEXT,
	updated_by     TEXT,
	UNIQUE(title, author)
);

CREATE TABLE IF NOT EXISTS games (
	id                   INTEGER PRIMARY KEY AUTOINCREMENT,
	title                TEXT    NOT NULL,
	premiere             TEXT    NOT NULL,
	developer            TEXT    NOT NULL,
	publisher            TEXT,
	genres               TEXT    NOT NULL,
	game_type            TEXT,
	price_eur            REAL,
	price_discounted_eur REAL,
	review_overall       TEXT,
	review_detailed      TEXT,
	reviews_number       INTEGER,
	reviews_positive     TEXT,
	created_by           TEXT,
	updated_by           TEXT,
	UNIQUE(title, premiere, developer)
);
`

// Init creates the four category tables if they do not exist yet.
// It is safe to call on every startup.
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Count returns the number of rows in the named table.
func (s *Store) Count(ctx context.Context, table string) (int64, error) {
	var n int64
	err := s.sb.Select("count(*)").From(table).QueryRowContext(ctx).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

// distinctGenres collects the distinct values of a comma-joined genre
// column, splits them and returns the sorted unique lower-cased genre
// names.
func (s *Store) distinctGenres(ctx context.Context, table, column string) ([]string, error) {
	rows, err := s.sb.Select("DISTINCT "+column).From(table).
		Where(column + " IS NOT NULL").QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("select genres from %s: %w", table, err)
	}
	defer rows.Close()

	var all []string
	for rows.Next() {
		var joined string
		if err := rows.Scan(&joined); err != nil {
			return nil, err
		}
		for _, g := range strings.Split(joined, ",") {
			if g = strings.ToLower(strings.TrimSpace(g)); g != "" {
				all = append(all, g)
			}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	unique := lo.Uniq(all)
	sort.Strings(unique)
	return unique, nil
}

// mapConstraint rewrites the driver's unique-constraint violation into
// ErrDuplicate so callers never see raw engine errors for key collisions.
func mapConstraint(err error) error {
	var serr sqlite3.Error
	if errors.As(err, &serr) &&
		(serr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			serr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey) {
		return ErrDuplicate
	}
	return err
}

// execRequireRow runs an UPDATE or DELETE built by sqlizer and maps
// "no rows touched" to ErrNotFound.
func execRequireRow(ctx context.Context, sqlizer interface {
	ExecContext(ctx context.Context) (sql.Result, error)
}) error {
	res, err := sqlizer.ExecContext(ctx)
	if err != nil {
		return mapConstraint(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// likeContains builds a case-insensitive substring LIKE pattern.
func likeContains(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
