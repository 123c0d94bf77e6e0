package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
)

// Book is a single row of the books table.
type Book struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	Description   *string  `json:"description"`
	Genres        string   `json:"genres"`
	AvgRating     *float64 `json:"avg_rating"`
	RatingReviews *int64   `json:"rating_reviews"`
	CreatedBy     *string  `json:"created_by"`
	UpdatedBy     *string  `json:"updated_by"`
}

// BookFilter narrows ListBooks results. Zero values mean "no filter".
type BookFilter struct {
	Title    string
	Author   string
	Genre    string
	RatingGE *float64
	Limit    uint64
	Offset   uint64
}

var bookColumns = []string{
	"id", "title", "author", "description", "genres", "avg_rating",
	"rating_reviews", "created_by", "updated_by",
}

func scanBook(row squirrel.RowScanner) (*Book, error) {
	var b Book
	err := row.Scan(
		&b.ID, &b.Title, &b.Author, &b.Description, &b.Genres,
		&b.AvgRating, &b.RatingReviews, &b.CreatedBy, &b.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateBook inserts b and fills in the generated id.
func (s *Store) CreateBook(ctx context.Context, b *Book) error {
	res, err := s.sb.Insert("books").
		Columns(bookColumns[1:]...).
		Values(
			b.Title, b.Author, b.Description, b.Genres, b.AvgRating,
			b.RatingReviews, b.CreatedBy, b.UpdatedBy,
		).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("insert book: %w", mapConstraint(err))
	}
	b.ID, err = res.LastInsertId()
	return err
}

// GetBook returns the book with the given id, or ErrNotFound.
func (s *Store) GetBook(ctx context.Context, id int64) (*Book, error) {
	row := s.sb.Select(bookColumns...).
		From("books").
		Where(squirrel.Eq{"id": id}).
		QueryRowContext(ctx)

	b, err := scanBook(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return b, err
}

// ListBooks returns books matching the filter, ordered by id.
func (s *Store) ListBooks(ctx context.Context, f BookFilter) ([]Book, error) {
	q := s.sb.Select(bookColumns...).From("books").OrderBy("id")

	if f.Title != "" {
		q = q.Where(squirrel.Like{"title": likeContains(f.Title)})
	}
	if f.Author != "" {
		q = q.Where(squirrel.Like{"author": likeContains(f.Author)})
	}
	if f.Genre != "" {
		q = q.Where(squirrel.Like{"genres": likeContains(f.Genre)})
	}
	if f.RatingGE != nil {
		q = q.Where(squirrel.GtOrEq{"avg_rating": *f.RatingGE})
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	rows, err := q.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, *b)
	}
	return books, rows.Err()
}

// UpdateBook replaces every mutable column of the book identified by
// b.ID. Returns ErrNotFound if the id does not exist.
func (s *Store) UpdateBook(ctx context.Context, b *Book) error {
	q := s.sb.Update("books").
		Set("title", b.Title).
		Set("author", b.Author).
		Set("description", b.Description).
		Set("genres", b.Genres).
		Set("avg_rating", b.AvgRating).
		Set("rating_reviews", b.RatingReviews).
		Set("updated_by", b.UpdatedBy).
		Where(squirrel.Eq{"id": b.ID})

	return execRequireRow(ctx, q)
}

// DeleteBook removes the book with the given id, or returns ErrNotFound.
func (s *Store) DeleteBook(ctx context.Context, id int64) error {
	return execRequireRow(ctx, s.sb.Delete("books").Where(squirrel.Eq{"id": id}))
}

// BookGenres returns the sorted unique genre names across all books.
func (s *Store) BookGenres(ctx context.Context) ([]string, error) {
	return s.distinctGenres(ctx, "books", "genres")
}
