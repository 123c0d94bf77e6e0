package web

import (
	"net/http"
	"strings"

	"github.com/mediashelf/entertainment/internal/store"
)

// movieRequest is the JSON body for creating or replacing a movie.
// Genres are submitted as a list and stored comma-joined.
type movieRequest struct {
	Title     string   `json:"title" validate:"required,max=200"`
	Premiere  string   `json:"premiere" validate:"required,datetime=2006-01-02"`
	Score     *float64 `json:"score" validate:"omitempty,gte=0,lte=10"`
	Genres    []string `json:"genres" validate:"required,min=1,max=20,dive,required,max=100"`
	Overview  *string  `json:"overview" validate:"omitempty,max=500"`
	Crew      *string  `json:"crew" validate:"omitempty,max=500"`
	OrigTitle *string  `json:"orig_title" validate:"omitempty,max=200"`
	OrigLang  *string  `json:"orig_lang" validate:"omitempty,max=30"`
	Budget    *float64 `json:"budget" validate:"omitempty,gte=0"`
	Revenue   *float64 `json:"revenue" validate:"omitempty,gte=0"`
	Country   *string  `json:"country" validate:"omitempty,max=3"`
}

func (req *movieRequest) toModel() *store.Movie {
	return &store.Movie{
		Title:     strings.TrimSpace(req.Title),
		Premiere:  req.Premiere,
		Score:     req.Score,
		Genres:    joinGenres(req.Genres),
		Overview:  req.Overview,
		Crew:      req.Crew,
		OrigTitle: req.OrigTitle,
		OrigLang:  req.OrigLang,
		Budget:    req.Budget,
		Revenue:   req.Revenue,
		Country:   req.Country,
	}
}

// handleListMovies returns movies matching the query filters.
//
//	@Summary  List movies
//	@Tags     movies
//	@Param    title           query string  false "substring match on title"
//	@Param    genre           query string  false "substring match on genres"
//	@Param    country         query string  false "substring match on country"
//	@Param    language        query string  false "substring match on original language"
//	@Param    premiere_since  query string  false "YYYY-MM-DD lower bound"
//	@Param    premiere_before query string  false "YYYY-MM-DD upper bound"
//	@Param    score_ge        query number  false "minimum score"
//	@Param    limit           query integer false "page size (default 50, max 500)"
//	@Param    offset          query integer false "rows to skip"
//	@Success  200 {array} store.Movie
//	@Router   /api/movies [get]
func (s *Server) handleListMovies(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := store.MovieFilter{
		Title:          q.Get("title"),
		Genre:          q.Get("genre"),
		Country:        q.Get("country"),
		Language:       q.Get("language"),
		PremiereSince:  q.Get("premiere_since"),
		PremiereBefore: q.Get("premiere_before"),
		ScoreGE:        queryFloat(r, "score_ge"),
	}
	f.Limit, f.Offset = queryLimitOffset(r)

	movies, err := s.store.ListMovies(r.Context(), f)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, listResponse[store.Movie]{Count: len(movies), Results: movies})
}

// handleGetMovie returns a single movie by id.
//
//	@Summary  Get movie
//	@Tags     movies
//	@Param    id path integer true "movie id"
//	@Success  200 {object} store.Movie
//	@Failure  404 {object} errorResponse
//	@Router   /api/movies/{id} [get]
func (s *Server) handleGetMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	m, err := s.store.GetMovie(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, m)
}

// handleCreateMovie validates the body and inserts a new movie.
//
//	@Summary  Create movie
//	@Tags     movies
//	@Param    movie body movieRequest true "movie fields"
//	@Success  201 {object} store.Movie
//	@Failure  409 {object} errorResponse
//	@Failure  422 {object} errorResponse
//	@Router   /api/movies [post]
func (s *Server) handleCreateMovie(w http.ResponseWriter, r *http.Request) {
	var req movieRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if fields := validateStruct(&req); fields != nil {
		respondValidationError(w, r, fields)
		return
	}

	m := req.toModel()
	m.CreatedBy = apiActor()
	if err := s.store.CreateMovie(r.Context(), m); err != nil {
		respondStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, m)
}

// handleUpdateMovie replaces the movie identified by id with the body.
//
//	@Summary  Update movie
//	@Tags     movies
//	@Param    id    path integer      true "movie id"
//	@Param    movie body movieRequest true "replacement fields"
//	@Success  200 {object} store.Movie
//	@Failure  404 {object} errorResponse
//	@Failure  409 {object} errorResponse
//	@Failure  422 {object} errorResponse
//	@Router   /api/movies/{id} [put]
func (s *Server) handleUpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req movieRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if fields := validateStruct(&req); fields != nil {
		respondValidationError(w, r, fields)
		return
	}

	m := req.toModel()
	m.ID = id
	m.UpdatedBy = apiActor()
	if err := s.store.UpdateMovie(r.Context(), m); err != nil {
		respondStoreError(w, r, err)
		return
	}

	updated, err := s.store.GetMovie(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, updated)
}

// handleDeleteMovie removes the movie identified by id.
//
//	@Summary  Delete movie
//	@Tags     movies
//	@Param    id path integer true "movie id"
//	@Success  204
//	@Failure  404 {object} errorResponse
//	@Router   /api/movies/{id} [delete]
func (s *Server) handleDeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := s.store.DeleteMovie(r.Context(), id); err != nil {
		respondStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleMovieGenres returns the distinct genre names across all movies.
//
//	@Summary  List movie genres
//	@Tags     movies
//	@Success  200 {array} string
//	@Router   /api/movies/genres [get]
func (s *Server) handleMovieGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := s.store.MovieGenres(r.Context())
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, genres)
}
