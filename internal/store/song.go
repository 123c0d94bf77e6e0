package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
)

// Song is a single row of the songs table. SpotifyID carries the source
// dataset's track identifier and is not the primary key.
type Song struct {
	ID               int64   `json:"id"`
	SpotifyID        *string `json:"spotify_id"`
	Title            string  `json:"title"`
	Artist           string  `json:"artist"`
	SongPopularity   *int64  `json:"song_popularity"`
	AlbumID          *string `json:"album_id"`
	AlbumName        string  `json:"album_name"`
	AlbumPremiere    *string `json:"album_premiere"`
	PlaylistName     *string `json:"playlist_name"`
	PlaylistGenre    *string `json:"playlist_genre"`
	PlaylistSubgenre *string `json:"playlist_subgenre"`
	DurationMS       *int64  `json:"duration_ms"`
	CreatedBy        *string `json:"created_by"`
	UpdatedBy        *string `json:"updated_by"`
}

// SongFilter narrows ListSongs results. Zero values mean "no filter".
type SongFilter struct {
	Title  string
	Artist string
	Album  string
	Genre  string
	Limit  uint64
	Offset uint64
}

var songColumns = []string{
	"id", "spotify_id", "title", "artist", "song_popularity", "album_id",
	"album_name", "album_premiere", "playlist_name", "playlist_genre",
	"playlist_subgenre", "duration_ms", "created_by", "updated_by",
}

func scanSong(row squirrel.RowScanner) (*Song, error) {
	var s Song
	err := row.Scan(
		&s.ID, &s.SpotifyID, &s.Title, &s.Artist, &s.SongPopularity,
		&s.AlbumID, &s.AlbumName, &s.AlbumPremiere, &s.PlaylistName,
		&s.PlaylistGenre, &s.PlaylistSubgenre, &s.DurationMS,
		&s.CreatedBy, &s.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateSong inserts sg and fills in the generated id.
func (s *Store) CreateSong(ctx context.Context, sg *Song) error {
	res, err := s.sb.Insert("songs").
		Columns(songColumns[1:]...).
		Values(
			sg.SpotifyID, sg.Title, sg.Artist, sg.SongPopularity,
			sg.AlbumID, sg.AlbumName, sg.AlbumPremiere, sg.PlaylistName,
			sg.PlaylistGenre, sg.PlaylistSubgenre, sg.DurationMS,
			sg.CreatedBy, sg.UpdatedBy,
		).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("insert song: %w", mapConstraint(err))
	}
	sg.ID, err = res.LastInsertId()
	return err
}

// GetSong returns the song with the given id, or ErrNotFound.
func (s *Store) GetSong(ctx context.Context, id int64) (*Song, error) {
	row := s.sb.Select(songColumns...).
		From("songs").
		Where(squirrel.Eq{"id": id}).
		QueryRowContext(ctx)

	sg, err := scanSong(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return sg, err
}

// ListSongs returns songs matching the filter, ordered by id.
func (s *Store) ListSongs(ctx context.Context, f SongFilter) ([]Song, error) {
	q := s.sb.Select(songColumns...).From("songs").OrderBy("id")

	if f.Title != "" {
		q = q.Where(squirrel.Like{"title": likeContains(f.Title)})
	}
	if f.Artist != "" {
		q = q.Where(squirrel.Like{"artist": likeContains(f.Artist)})
	}
	if f.Album != "" {
		q = q.Where(squirrel.Like{"album_name": likeContains(f.Album)})
	}
	if f.Genre != "" {
		q = q.Where(squirrel.Like{"playlist_genre": likeContains(f.Genre)})
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	rows, err := q.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list songs: %w", err)
	}
	defer rows.Close()

	var songs []Song
	for rows.Next() {
		sg, err := scanSong(rows)
		if err != nil {
			return nil, err
		}
		songs = append(songs, *sg)
	}
	return songs, rows.Err()
}

// UpdateSong replaces every mutable column of the song identified by
// sg.ID. Returns ErrNotFound if the id does not exist.
func (s *Store) UpdateSong(ctx context.Context, sg *Song) error {
	q := s.sb.Update("songs").
		Set("spotify_id", sg.SpotifyID).
		Set("title", sg.Title).
		Set("artist", sg.Artist).
		Set("song_popularity", sg.SongPopularity).
		Set("album_id", sg.AlbumID).
		Set("album_name", sg.AlbumName).
		Set("album_premiere", sg.AlbumPremiere).
		Set("playlist_name", sg.PlaylistName).
		Set("playlist_genre", sg.PlaylistGenre).
		Set("playlist_subgenre", sg.PlaylistSubgenre).
		Set("duration_ms", sg.DurationMS).
		Set("updated_by", sg.UpdatedBy).
		Where(squirrel.Eq{"id": sg.ID})

	return execRequireRow(ctx, q)
}

// DeleteSong removes the song with the given id, or returns ErrNotFound.
func (s *Store) DeleteSong(ctx context.Context, id int64) error {
	return execRequireRow(ctx, s.sb.Delete("songs").Where(squirrel.Eq{"id": id}))
}

// SongGenres returns the sorted unique playlist genre names across all
// songs.
func (s *Store) SongGenres(ctx context.Context) ([]string, error) {
	return s.distinctGenres(ctx, "songs", "playlist_genre")
}
