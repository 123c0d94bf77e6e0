package web

import (
	"net/http"
	"strings"

	"github.com/mediashelf/entertainment/internal/store"
)

// bookRequest is the JSON body for creating or replacing a book.
// Genres are submitted as a list and stored comma-joined.
type bookRequest struct {
	Title         string   `json:"title" validate:"required,max=200"`
	Author        string   `json:"author" validate:"required,max=200"`
	Description   *string  `json:"description" validate:"omitempty,max=2000"`
	Genres        []string `json:"genres" validate:"required,min=1,max=20,dive,required,max=100"`
	AvgRating     *float64 `json:"avg_rating" validate:"omitempty,gte=0,lte=5"`
	RatingReviews *int64   `json:"rating_reviews" validate:"omitempty,gte=0"`
}

func (req *bookRequest) toModel() *store.Book {
	return &store.Book{
		Title:         strings.TrimSpace(req.Title),
		Author:        strings.TrimSpace(req.Author),
		Description:   req.Description,
		Genres:        joinGenres(req.Genres),
		AvgRating:     req.AvgRating,
		RatingReviews: req.RatingReviews,
	}
}

// handleListBooks returns books matching the query filters.
//
//	@Summary  List books
//	@Tags     books
//	@Param    title     query string  false "substring match on title"
//	@Param    author    query string  false "substring match on author"
//	@Param    genre     query string  false "substring match on genres"
//	@Param    rating_ge query number  false "minimum average rating"
//	@Param    limit     query integer false "page size (default 50, max 500)"
//	@Param    offset    query integer false "rows to skip"
//	@Success  200 {array} store.Book
//	@Router   /api/books [get]
func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := store.BookFilter{
		Title:    q.Get("title"),
		Author:   q.Get("author"),
		Genre:    q.Get("genre"),
		RatingGE: queryFloat(r, "rating_ge"),
	}
	f.Limit, f.Offset = queryLimitOffset(r)

	books, err := s.store.ListBooks(r.Context(), f)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, listResponse[store.Book]{Count: len(books), Results: books})
}

// handleGetBook returns a single book by id.
//
//	@Summary  Get book
//	@Tags     books
//	@Param    id path integer true "book id"
//	@Success  200 {object} store.Book
//	@Failure  404 {object} errorResponse
//	@Router   /api/books/{id} [get]
func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	b, err := s.store.GetBook(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, b)
}

// handleCreateBook validates the body and inserts a new book.
//
//	@Summary  Create book
//	@Tags     books
//	@Param    book body bookRequest true "book fields"
//	@Success  201 {object} store.Book
//	@Failure  409 {object} errorResponse
//	@Failure  422 {object} errorResponse
//	@Router   /api/books [post]
func (s *Server) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if fields := validateStruct(&req); fields != nil {
		respondValidationError(w, r, fields)
		return
	}

	b := req.toModel()
	b.CreatedBy = apiActor()
	if err := s.store.CreateBook(r.Context(), b); err != nil {
		respondStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, b)
}

// handleUpdateBook replaces the book identified by id with the body.
//
//	@Summary  Update book
//	@Tags     books
//	@Param    id   path integer     true "book id"
//	@Param    book body bookRequest true "replacement fields"
//	@Success  200 {object} store.Book
//	@Failure  404 {object} errorResponse
//	@Failure  409 {object} errorResponse
//	@Failure  422 {object} errorResponse
//	@Router   /api/books/{id} [put]
func (s *Server) handleUpdateBook(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req bookRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if fields := validateStruct(&req); fields != nil {
		respondValidationError(w, r, fields)
		return
	}

	b := req.toModel()
	b.ID = id
	b.UpdatedBy = apiActor()
	if err := s.store.UpdateBook(r.Context(), b); err != nil {
		respondStoreError(w, r, err)
		return
	}

	updated, err := s.store.GetBook(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, updated)
}

// handleDeleteBook removes the book identified by id.
//
//	@Summary  Delete book
//	@Tags     books
//	@Param    id path integer true "book id"
//	@Success  204
//	@Failure  404 {object} errorResponse
//	@Router   /api/books/{id} [delete]
func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := s.store.DeleteBook(r.Context(), id); err != nil {
		respondStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleBookGenres returns the distinct genre names across all books.
//
//	@Summary  List book genres
//	@Tags     books
//	@Success  200 {array} string
//	@Router   /api/books/genres [get]
func (s *Server) handleBookGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := s.store.BookGenres(r.Context())
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, genres)
}
