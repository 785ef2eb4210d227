package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/voyage/internal/domain"
	"github.com/MrSnakeDoc/voyage/internal/httpserver/deps"
	"github.com/MrSnakeDoc/voyage/internal/logger"
	redisstore "github.com/MrSnakeDoc/voyage/internal/store/redis"
)

// CreateBookmark persists a new bookmark with a server-assigned id and
// creation time.
func CreateBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in domain.BookmarkCreate
		if err := decodeBody(r, &in); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		bookmark, err := domain.NewBookmark(in)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}

		if err := redisstore.Save(r.Context(), d.Store, redisstore.Bookmarks, bookmark); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		d.Logger.Info("bookmark created",
			logger.String("id", bookmark.ID),
			logger.String("folder", bookmark.Folder))
		writeJSON(w, http.StatusOK, bookmark)
	}
}

// ListBookmarks returns every bookmark, up to the collection cap, in no
// particular order.
func ListBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookmarks, err := redisstore.List[*domain.Bookmark](r.Context(), d.Store, redisstore.Bookmarks, 0)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, bookmarks)
	}
}

// DeleteBookmark removes one bookmark by id; 404 when absent.
func DeleteBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := redisstore.Delete(r.Context(), d.Store, redisstore.Bookmarks, id); err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "Bookmark deleted"})
	}
}
