package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
)

// Game is a single row of the games table. Prices are EUR; the source
// dataset's INR prices are converted during ingestion.
type Game struct {
	ID                 int64    `json:"id"`
	Title              string   `json:"title"`
	Premiere           string   `json:"premiere"`
	Developer          string   `json:"developer"`
	Publisher          *string  `json:"publisher"`
	Genres             string   `json:"genres"`
	GameType           *string  `json:"game_type"`
	PriceEUR           *float64 `json:"price_eur"`
	PriceDiscountedEUR *float64 `json:"price_discounted_eur"`
	ReviewOverall      *string  `json:"review_overall"`
	ReviewDetailed     *string  `json:"review_detailed"`
	ReviewsNumber      *int64   `json:"reviews_number"`
	ReviewsPositive    *string  `json:"reviews_positive"`
	CreatedBy          *string  `json:"created_by"`
	UpdatedBy          *string  `json:"updated_by"`
}

// GameFilter narrows ListGames results. Zero values mean "no filter".
type GameFilter struct {
	Title     string
	Genre     string
	Developer string
	PriceLE   *float64
	Limit     uint64
	Offset    uint64
}

var gameColumns = []string{
	"id", "title", "premiere", "developer", "publisher", "genres",
	"game_type", "price_eur", "price_discounted_eur", "review_overall",
	"review_detailed", "reviews_number", "reviews_positive",
	"created_by", "updated_by",
}

func scanGame(row squirrel.RowScanner) (*Game, error) {
	var g Game
	err := row.Scan(
		&g.ID, &g.Title, &g.Premiere, &g.Developer, &g.Publisher,
		&g.Genres, &g.GameType, &g.PriceEUR, &g.PriceDiscountedEUR,
		&g.ReviewOverall, &g.ReviewDetailed, &g.ReviewsNumber,
		&g.ReviewsPositive, &g.CreatedBy, &g.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// CreateGame inserts g and fills in the generated id.
func (s *Store) CreateGame(ctx context.Context, g *Game) error {
	res, err := s.sb.Insert("games").
		Columns(gameColumns[1:]...).
		Values(
			g.Title, g.Premiere, g.Developer, g.Publisher, g.Genres,
			g.GameType, g.PriceEUR, g.PriceDiscountedEUR, g.ReviewOverall,
			g.ReviewDetailed, g.ReviewsNumber, g.ReviewsPositive,
			g.CreatedBy, g.UpdatedBy,
		).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("insert game: %w", mapConstraint(err))
	}
	g.ID, err = res.LastInsertId()
	return err
}

// GetGame returns the game with the given id, or ErrNotFound.
func (s *Store) GetGame(ctx context.Context, id int64) (*Game, error) {
	row := s.sb.Select(gameColumns...).
		From("games").
		Where(squirrel.Eq{"id": id}).
		QueryRowContext(ctx)

	g, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return g, err
}

// ListGames returns games matching the filter, ordered by id.
func (s *Store) ListGames(ctx context.Context, f GameFilter) ([]Game, error) {
	q := s.sb.Select(gameColumns...).From("games").OrderBy("id")

	if f.Title != "" {
		q = q.Where(squirrel.Like{"title": likeContains(f.Title)})
	}
	if f.Genre != "" {
		q = q.Where(squirrel.Like{"genres": likeContains(f.Genre)})
	}
	if f.Developer != "" {
		q = q.Where(squirrel.Like{"developer": likeContains(f.Developer)})
	}
	if f.PriceLE != nil {
		q = q.Where(squirrel.LtOrEq{"price_eur": *f.PriceLE})
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	rows, err := q.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	var games []Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, *g)
	}
	return games, rows.Err()
}

// UpdateGame replaces every mutable column of the game identified by
// g.ID. Returns ErrNotFound if the id does not exist.
func (s *Store) UpdateGame(ctx context.Context, g *Game) error {
	q := s.sb.Update("games").
		Set("title", g.Title).
		Set("premiere", g.Premiere).
		Set("developer", g.Developer).
		Set("publisher", g.Publisher).
		Set("genres", g.Genres).
		Set("game_type", g.GameType).
		Set("price_eur", g.PriceEUR).
		Set("price_discounted_eur", g.PriceDiscountedEUR).
		Set("review_overall", g.ReviewOverall).
		Set("review_detailed", g.ReviewDetailed).
		Set("reviews_number", g.ReviewsNumber).
		Set("reviews_positive", g.ReviewsPositive).
		Set("updated_by", g.UpdatedBy).
		Where(squirrel.Eq{"id": g.ID})

	return execRequireRow(ctx, q)
}

// DeleteGame removes the game with the given id, or returns ErrNotFound.
func (s *Store) DeleteGame(ctx context.Context, id int64) error {
	return execRequireRow(ctx, s.sb.Delete("games").Where(squirrel.Eq{"id": id}))
}

// GameGenres returns the sorted unique genre names across all games.
func (s *Store) GameGenres(ctx context.Context) ([]string, error) {
	return s.distinctGenres(ctx, "games", "genres")
}
