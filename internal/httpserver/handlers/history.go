package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/voyage/internal/domain"
	"github.com/MrSnakeDoc/voyage/internal/httpserver/deps"
	"github.com/MrSnakeDoc/voyage/internal/logger"
	redisstore "github.com/MrSnakeDoc/voyage/internal/store/redis"
)

// CreateHistory records one page visit with a server-assigned id and
// visit time.
func CreateHistory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in domain.HistoryCreate
		if err := decodeBody(r, &in); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		entry, err := domain.NewHistoryEntry(in)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}

		if err := redisstore.Save(r.Context(), d.Store, redisstore.History, entry); err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, entry)
	}
}

// ListHistory returns visits newest-first. The limit query parameter
// defaults to the collection cap and is clamped to it.
func ListHistory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, d.Logger, &domain.ValidationError{Field: "limit", Reason: "must be an integer"})
				return
			}
			limit = parsed
		}

		entries, err := redisstore.List[*domain.HistoryEntry](r.Context(), d.Store, redisstore.History, limit)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, entries)
	}
}

// SearchHistory matches the q parameter as a case-insensitive substring
// of title or URL. An empty q matches every entry (documented edge
// behavior, not rejected).
func SearchHistory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")

		matches, err := d.Store.SearchHistory(r.Context(), q)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}

		d.Logger.Debug("history search",
			logger.String("q", q),
			logger.Int("matches", len(matches)))
		writeJSON(w, http.StatusOK, matches)
	}
}

// ClearHistory removes every history entry unconditionally.
func ClearHistory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := redisstore.DeleteAll(r.Context(), d.Store, redisstore.History); err != nil {
			writeError(w, d.Logger, err)
			return
		}
		d.Logger.Info("history cleared")
		writeJSON(w, http.StatusOK, messageResponse{Message: "History cleared"})
	}
}

// DeleteHistory removes one history entry by id; 404 when absent.
func DeleteHistory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := redisstore.Delete(r.Context(), d.Store, redisstore.History, id); err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "History item deleted"})
	}
}
