package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/voyage/internal/domain"
	"github.com/MrSnakeDoc/voyage/internal/httpserver/deps"
	redisstore "github.com/MrSnakeDoc/voyage/internal/store/redis"
)

// CreateDownload records one download with a server-assigned id and
// event time.
func CreateDownload(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in domain.DownloadCreate
		if err := decodeBody(r, &in); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		record, err := domain.NewDownloadRecord(in)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}

		if err := redisstore.Save(r.Context(), d.Store, redisstore.Downloads, record); err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, record)
	}
}

// ListDownloads returns downloads newest-first, up to the collection cap.
func ListDownloads(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := redisstore.List[*domain.DownloadRecord](r.Context(), d.Store, redisstore.Downloads, 0)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, records)
	}
}

// DeleteDownload removes one download record by id; 404 when absent.
func DeleteDownload(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := redisstore.Delete(r.Context(), d.Store, redisstore.Downloads, id); err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "Download deleted"})
	}
}
