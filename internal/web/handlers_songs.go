package web

import (
	"net/http"
	"strings"

	"github.com/mediashelf/entertainment/internal/store"
)

// songRequest is the JSON body for creating or replacing a song.
type songRequest struct {
	SpotifyID        *string `json:"spotify_id" validate:"omitempty,max=64"`
	Title            string  `json:"title" validate:"required,max=200"`
	Artist           string  `json:"artist" validate:"required,max=200"`
	SongPopularity   *int64  `json:"song_popularity" validate:"omitempty,gte=0,lte=100"`
	AlbumID          *string `json:"album_id" validate:"omitempty,max=64"`
	AlbumName        string  `json:"album_name" validate:"required,max=200"`
	AlbumPremiere    *string `json:"album_premiere" validate:"omitempty,datetime=2006-01-02"`
	PlaylistName     *string `json:"playlist_name" validate:"omitempty,max=200"`
	PlaylistGenre    *string `json:"playlist_genre" validate:"omitempty,max=100"`
	PlaylistSubgenre *string `json:"playlist_subgenre" validate:"omitempty,max=100"`
	DurationMS       *int64  `json:"duration_ms" validate:"omitempty,gt=0"`
}

func (req *songRequest) toModel() *store.Song {
	return &store.Song{
		SpotifyID:        req.SpotifyID,
		Title:            strings.TrimSpace(req.Title),
		Artist:           strings.TrimSpace(req.Artist),
		SongPopularity:   req.SongPopularity,
		AlbumID:          req.AlbumID,
		AlbumName:        strings.TrimSpace(req.AlbumName),
		AlbumPremiere:    req.AlbumPremiere,
		PlaylistName:     req.PlaylistName,
		PlaylistGenre:    req.PlaylistGenre,
		PlaylistSubgenre: req.PlaylistSubgenre,
		DurationMS:       req.DurationMS,
	}
}

// handleListSongs returns songs matching the query filters.
//
//	@Summary  List songs
//	@Tags     songs
//	@Param    title  query string  false "substring match on title"
//	@Param    artist query string  false "substring match on artist"
//	@Param    album  query string  false "substring match on album name"
//	@Param    genre  query string  false "substring match on playlist genre"
//	@Param    limit  query integer false "page size (default 50, max 500)"
//	@Param    offset query integer false "rows to skip"
//	@Success  200 {array} store.Song
//	@Router   /api/songs [get]
func (s *Server) handleListSongs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := store.SongFilter{
		Title:  q.Get("title"),
		Artist: q.Get("artist"),
		Album:  q.Get("album"),
		Genre:  q.Get("genre"),
	}
	f.Limit, f.Offset = queryLimitOffset(r)

	songs, err := s.store.ListSongs(r.Context(), f)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, listResponse[store.Song]{Count: len(songs), Results: songs})
}

// handleGetSong returns a single song by id.
//
//	@Summary  Get song
//	@Tags     songs
//	@Param    id path integer true "song id"
//	@Success  200 {object} store.Song
//	@Failure  404 {object} errorResponse
//	@Router   /api/songs/{id} [get]
func (s *Server) handleGetSong(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	sg, err := s.store.GetSong(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, sg)
}

// handleCreateSong validates the body and inserts a new song.
//
//	@Summary  Create song
//	@Tags     songs
//	@Param    song body songRequest true "song fields"
//	@Success  201 {object} store.Song
//	@Failure  409 {object} errorResponse
//	@Failure  422 {object} errorResponse
//	@Router   /api/songs [post]
func (s *Server) handleCreateSong(w http.ResponseWriter, r *http.Request) {
	var req songRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if fields := validateStruct(&req); fields != nil {
		respondValidationError(w, r, fields)
		return
	}

	sg := req.toModel()
	sg.CreatedBy = apiActor()
	if err := s.store.CreateSong(r.Context(), sg); err != nil {
		respondStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, sg)
}

// handleUpdateSong replaces the song identified by id with the body.
//
//	@Summary  Update song
//	@Tags     songs
//	@Param    id   path integer     true "song id"
//	@Param    song body songRequest true "replacement fields"
//	@Success  200 {object} store.Song
//	@Failure  404 {object} errorResponse
//	@Failure  409 {object} errorResponse
//	@Failure  422 {object} errorResponse
//	@Router   /api/songs/{id} [put]
func (s *Server) handleUpdateSong(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req songRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if fields := validateStruct(&req); fields != nil {
		respondValidationError(w, r, fields)
		return
	}

	sg := req.toModel()
	sg.ID = id
	sg.UpdatedBy = apiActor()
	if err := s.store.UpdateSong(r.Context(), sg); err != nil {
		respondStoreError(w, r, err)
		return
	}

	updated, err := s.store.GetSong(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, updated)
}

// handleDeleteSong removes the song identified by id.
//
//	@Summary  Delete song
//	@Tags     songs
//	@Param    id path integer true "song id"
//	@Success  204
//	@Failure  404 {object} errorResponse
//	@Router   /api/songs/{id} [delete]
func (s *Server) handleDeleteSong(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := s.store.DeleteSong(r.Context(), id); err != nil {
		respondStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSongGenres returns the distinct playlist genre names.
//
//	@Summary  List song genres
//	@Tags     songs
//	@Success  200 {array} string
//	@Router   /api/songs/genres [get]
func (s *Server) handleSongGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := s.store.SongGenres(r.Context())
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, genres)
}
