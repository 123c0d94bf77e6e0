package store

import (
	"context"
	"fmt"
)

// resetTable deletes every row of a table and restarts its id sequence
// so a re-seeded catalog gets the same ids as a fresh one.
func (s *Store) resetTable(ctx context.Context, table string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("reset %s: %w", table, err)
	}
	_, err := s.db.ExecContext(ctx, "DELETE FROM sqlite_sequence WHERE name = ?", table)
	return err
}

// ResetMovies truncates the movies table.
func (s *Store) ResetMovies(ctx context.Context) error { return s.resetTable(ctx, "movies") }

// ResetSongs truncates the songs table.
func (s *Store) ResetSongs(ctx context.Context) error { return s.resetTable(ctx, "songs") }

// ResetBooks truncates the books table.
func (s *Store) ResetBooks(ctx context.Context) error { return s.resetTable(ctx, "books") }

// ResetGames truncates the games table.
func (s *Store) ResetGames(ctx context.Context) error { return s.resetTable(ctx, "games") }
