package web

import (
	"net/http"
	"strings"

	"github.com/mediashelf/entertainment/internal/store"
)

// gameRequest is the JSON body for creating or replacing a game.
// Genres are submitted as a list and stored comma-joined.
type gameRequest struct {
	Title              string   `json:"title" validate:"required,max=200"`
	Premiere           string   `json:"premiere" validate:"required,datetime=2006-01-02"`
	Developer          string   `json:"developer" validate:"required,max=200"`
	Publisher          *string  `json:"publisher" validate:"omitempty,max=200"`
	Genres             []string `json:"genres" validate:"required,min=1,max=20,dive,required,max=100"`
	GameType           *string  `json:"game_type" validate:"omitempty,max=100"`
	PriceEUR           *float64 `json:"price_eur" validate:"omitempty,gte=0"`
	PriceDiscountedEUR *float64 `json:"price_discounted_eur" validate:"omitempty,gte=0"`
	ReviewOverall      *string  `json:"review_overall" validate:"omitempty,max=100"`
	ReviewDetailed     *string  `json:"review_detailed" validate:"omitempty,max=100"`
	ReviewsNumber      *int64   `json:"reviews_number" validate:"omitempty,gte=0"`
	ReviewsPositive    *string  `json:"reviews_positive" validate:"omitempty,max=10"`
}

func (req *gameRequest) toModel() *store.Game {
	return &store.Game{
		Title:              strings.TrimSpace(req.Title),
		Premiere:           req.Premiere,
		Developer:          strings.TrimSpace(req.Developer),
		Publisher:          req.Publisher,
		Genres:             joinGenres(req.Genres),
		GameType:           req.GameType,
		PriceEUR:           req.PriceEUR,
		PriceDiscountedEUR: req.PriceDiscountedEUR,
		ReviewOverall:      req.ReviewOverall,
		ReviewDetailed:     req.ReviewDetailed,
		ReviewsNumber:      req.ReviewsNumber,
		ReviewsPositive:    req.ReviewsPositive,
	}
}

// handleListGames returns games matching the query filters.
//
//	@Summary  List games
//	@Tags     games
//	@Param    title     query string  false "substring match on title"
//	@Param    genre     query string  false "substring match on genres"
//	@Param    developer query string  false "substring match on developer"
//	@Param    price_le  query number  false "maximum price in EUR"
//	@Param    limit     query integer false "page size (default 50, max 500)"
//	@Param    offset    query integer false "rows to skip"
//	@Success  200 {array} store.Game
//	@Router   /api/games [get]
func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := store.GameFilter{
		Title:     q.Get("title"),
		Genre:     q.Get("genre"),
		Developer: q.Get("developer"),
		PriceLE:   queryFloat(r, "price_le"),
	}
	f.Limit, f.Offset = queryLimitOffset(r)

	games, err := s.store.ListGames(r.Context(), f)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, listResponse[store.Game]{Count: len(games), Results: games})
}

// handleGetGame returns a single game by id.
//
//	@Summary  Get game
//	@Tags     games
//	@Param    id path integer true "game id"
//	@Success  200 {object} store.Game
//	@Failure  404 {object} errorResponse
//	@Router   /api/games/{id} [get]
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	g, err := s.store.GetGame(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, g)
}

// handleCreateGame validates the body and inserts a new game.
//
//	@Summary  Create game
//	@Tags     games
//	@Param    game body gameRequest true "game fields"
//	@Success  201 {object} store.Game
//	@Failure  409 {object} errorResponse
//	@Failure  422 {object} errorResponse
//	@Router   /api/games [post]
func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req gameRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if fields := validateStruct(&req); fields != nil {
		respondValidationError(w, r, fields)
		return
	}

	g := req.toModel()
	g.CreatedBy = apiActor()
	if err := s.store.CreateGame(r.Context(), g); err != nil {
		respondStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, g)
}

// handleUpdateGame replaces the game identified by id with the body.
//
//	@Summary  Update game
//	@Tags     games
//	@Param    id   path integer     true "game id"
//	@Param    game body gameRequest true "replacement fields"
//	@Success  200 {object} store.Game
//	@Failure  404 {object} errorResponse
//	@Failure  409 {object} errorResponse
//	@Failure  422 {object} errorResponse
//	@Router   /api/games/{id} [put]
func (s *Server) handleUpdateGame(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req gameRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if fields := validateStruct(&req); fields != nil {
		respondValidationError(w, r, fields)
		return
	}

	g := req.toModel()
	g.ID = id
	g.UpdatedBy = apiActor()
	if err := s.store.UpdateGame(r.Context(), g); err != nil {
		respondStoreError(w, r, err)
		return
	}

	updated, err := s.store.GetGame(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, updated)
}

// handleDeleteGame removes the game identified by id.
//
//	@Summary  Delete game
//	@Tags     games
//	@Param    id path integer true "game id"
//	@Success  204
//	@Failure  404 {object} errorResponse
//	@Router   /api/games/{id} [delete]
func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := s.store.DeleteGame(r.Context(), id); err != nil {
		respondStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleGameGenres returns the distinct genre names across all games.
//
//	@Summary  List game genres
//	@Tags     games
//	@Success  200 {array} string
//	@Router   /api/games/genres [get]
func (s *Server) handleGameGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := s.store.GameGenres(r.Context())
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, genres)
}
