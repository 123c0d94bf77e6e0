package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
)

// Movie is a single row of the movies table. Pointer fields map to
// nullable columns. Premiere is a YYYY-MM-DD date string.
type Movie struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Premiere  string   `json:"premiere"`
	Score     *float64 `json:"score"`
	Genres    string   `json:"genres"`
	Overview  *string  `json:"overview"`
	Crew      *string  `json:"crew"`
	OrigTitle *string  `json:"orig_title"`
	OrigLang  *string  `json:"orig_lang"`
	Budget    *float64 `json:"budget"`
	Revenue   *float64 `json:"revenue"`
	Country   *string  `json:"country"`
	CreatedBy *string  `json:"created_by"`
	UpdatedBy *string  `json:"updated_by"`
}

// MovieFilter narrows ListMovies results. Zero values mean "no filter".
type MovieFilter struct {
	Title          string
	Genre          string
	Country        string
	Language       string
	PremiereSince  string
	PremiereBefore string
	ScoreGE        *float64
	Limit          uint64
	Offset         uint64
}

var movieColumns = []string{
	"id", "title", "premiere", "score", "genres", "overview", "crew",
	"orig_title", "orig_lang", "budget", "revenue", "country",
	"created_by", "updated_by",
}

func scanMovie(row squirrel.RowScanner) (*Movie, error) {
	var m Movie
	err := row.Scan(
		&m.ID, &m.Title, &m.Premiere, &m.Score, &m.Genres, &m.Overview,
		&m.Crew, &m.OrigTitle, &m.OrigLang, &m.Budget, &m.Revenue,
		&m.Country, &m.CreatedBy, &m.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateMovie inserts m and fills in the generated id.
func (s *Store) CreateMovie(ctx context.Context, m *Movie) error {
	res, err := s.sb.Insert("movies").
		Columns(movieColumns[1:]...).
		Values(
			m.Title, m.Premiere, m.Score, m.Genres, m.Overview, m.Crew,
			m.OrigTitle, m.OrigLang, m.Budget, m.Revenue, m.Country,
			m.CreatedBy, m.UpdatedBy,
		).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("insert movie: %w", mapConstraint(err))
	}
	m.ID, err = res.LastInsertId()
	return err
}

// GetMovie returns the movie with the given id, or ErrNotFound.
func (s *Store) GetMovie(ctx context.Context, id int64) (*Movie, error) {
	row := s.sb.Select(movieColumns...).
		From("movies").
		Where(squirrel.Eq{"id": id}).
		QueryRowContext(ctx)

	m, err := scanMovie(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return m, err
}

// ListMovies returns movies matching the filter, ordered by id.
func (s *Store) ListMovies(ctx context.Context, f MovieFilter) ([]Movie, error) {
	q := s.sb.Select(movieColumns...).From("movies").OrderBy("id")

	if f.Title != "" {
		q = q.Where(squirrel.Like{"title": likeContains(f.Title)})
	}
	if f.Genre != "" {
		q = q.Where(squirrel.Like{"genres": likeContains(f.Genre)})
	}
	if f.Country != "" {
		q = q.Where(squirrel.Like{"country": likeContains(f.Country)})
	}
	if f.Language != "" {
		q = q.Where(squirrel.Like{"orig_lang": likeContains(f.Language)})
	}
	if f.PremiereSince != "" {
		q = q.Where(squirrel.GtOrEq{"premiere": f.PremiereSince})
	}
	if f.PremiereBefore != "" {
		q = q.Where(squirrel.LtOrEq{"premiere": f.PremiereBefore})
	}
	if f.ScoreGE != nil {
		q = q.Where(squirrel.GtOrEq{"score": *f.ScoreGE})
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	rows, err := q.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()

	var movies []Movie
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, *m)
	}
	return movies, rows.Err()
}

// UpdateMovie replaces every mutable column of the movie identified by
// m.ID. Returns ErrNotFound if the id does not exist. Applying the same
// update twice yields the same final state.
func (s *Store) UpdateMovie(ctx context.Context, m *Movie) error {
	q := s.sb.Update("movies").
		Set("title", m.Title).
		Set("premiere", m.Premiere).
		Set("score", m.Score).
		Set("genres", m.Genres).
		Set("overview", m.Overview).
		Set("crew", m.Crew).
		Set("orig_title", m.OrigTitle).
		Set("orig_lang", m.OrigLang).
		Set("budget", m.Budget).
		Set("revenue", m.Revenue).
		Set("country", m.Country).
		Set("updated_by", m.UpdatedBy).
		Where(squirrel.Eq{"id": m.ID})

	return execRequireRow(ctx, q)
}

// DeleteMovie removes the movie with the given id, or returns ErrNotFound.
func (s *Store) DeleteMovie(ctx context.Context, id int64) error {
	return execRequireRow(ctx, s.sb.Delete("movies").Where(squirrel.Eq{"id": id}))
}

// MovieGenres returns the sorted unique genre names across all movies.
func (s *Store) MovieGenres(ctx context.Context) ([]string, error) {
	return s.distinctGenres(ctx, "movies", "genres")
}
