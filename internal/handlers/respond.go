package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/cx-tal-miterani/flight-data-api/internal/database"
	"github.com/cx-tal-miterani/flight-data-api/internal/query"
)

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{"success": false, "error": message})
}

// respondServiceError maps interpreter and repository errors onto HTTP
// statuses: malformed filters are client errors, missing records are 404,
// everything else (including database failures) is a 500.
func respondServiceError(w http.ResponseWriter, err error) {
	var filterErr *query.FilterError
	switch {
	case errors.As(err, &filterErr):
		respondError(w, http.StatusBadRequest, filterErr.Error())
	case errors.Is(err, database.ErrNotFound):
		respondError(w, http.StatusNotFound, "not found")
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}

// decodeBody decodes a JSON request body into dst. An empty body is legal
// and leaves dst zero-valued; malformed JSON is an error.
func decodeBody(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
