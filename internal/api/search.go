package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"zerai/internal/rawg"
)

type SearchHandler struct {
	catalog *rawg.Client
}

func NewSearchHandler(catalog *rawg.Client) *SearchHandler {
	return &SearchHandler{catalog: catalog}
}

// GET /search/{query}
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := chi.URLParam(r, "query")

	results, err := h.catalog.Search(r.Context(), query)
	if err != nil {
		// Cause stays in the logs; clients get one uniform failure.
		slog.Error("catalog search failed", "error", err, "request_id", GetRequestID(r))
		writeError(w, http.StatusInternalServerError, ErrCodeSearchUnavailable,
			"Error communicating with the external games service")
		return
	}

	writeJSON(w, http.StatusOK, results)
}
