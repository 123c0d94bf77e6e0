package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/mediashelf/entertainment/internal/logging"
	"github.com/mediashelf/entertainment/internal/store"
)

// Error codes returned alongside every error response.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeNotFound         = "not_found"
	codeConflict         = "conflict"
	codeRateLimited      = "rate_limited"
	codeInternal         = "internal_error"
)

// errorResponse is the JSON body for every error.
type errorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// writeJSON encodes v and writes it with the given status.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).Error("json encode failed", "error", err)
	}
}

// writeError writes a JSON error response and logs it.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"code", code,
		"error", message,
	)
	writeJSON(w, r, status, errorResponse{Error: message, Code: code})
}

// respondStoreError maps store errors onto the API error taxonomy.
// Unrecognized errors are logged but never echoed to the client.
func respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, codeNotFound, "record not found")
		return
	}
	if errors.Is(err, store.ErrDuplicate) {
		writeError(w, r, http.StatusConflict, codeConflict, "record already exists")
		return
	}
	logging.FromContext(r.Context()).Error("store error",
		"path", r.URL.Path,
		"method", r.Method,
		"error", err,
	)
	writeError(w, r, http.StatusInternalServerError, codeInternal, "internal server error")
}

// respondValidationError writes a 422 with per-field messages.
func respondValidationError(w http.ResponseWriter, r *http.Request, fields map[string]string) {
	logging.FromContext(r.Context()).Debug("validation failed",
		"path", r.URL.Path,
		"fields", len(fields),
	)
	writeJSON(w, r, http.StatusUnprocessableEntity, errorResponse{
		Error:  "validation failed",
		Code:   codeValidationFailed,
		Fields: fields,
	})
}

// decodeBody decodes the JSON request body into dst, reporting a 400 to
// the client on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, codeBadRequest, "malformed JSON body: "+err.Error())
		return false
	}
	return true
}

// idParam parses the {id} route parameter. A non-numeric id cannot match
// any record, so it reports not-found rather than a validation error.
func idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusNotFound, codeNotFound, "record not found")
		return 0, false
	}
	return id, true
}

// queryFloat parses an optional float query parameter, returning nil when
// absent or unparseable.
func queryFloat(r *http.Request, name string) *float64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}

// queryLimitOffset parses limit/offset with a default and cap on limit.
func queryLimitOffset(r *http.Request) (limit, offset uint64) {
	const (
		defaultLimit = 50
		maxLimit     = 500
	)

	limit = defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.ParseUint(raw, 10, 64); err == nil && n > 0 {
			limit = min(n, maxLimit)
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if n, err := strconv.ParseUint(raw, 10, 64); err == nil {
			offset = n
		}
	}
	return limit, offset
}
