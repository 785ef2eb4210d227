package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/voyage/internal/httpserver/deps"
	"github.com/MrSnakeDoc/voyage/internal/logger"
)

type readyzResponse struct {
	Ready bool   `json:"ready"`
	Error string `json:"error,omitempty"`
}

// Readyz reports readiness: the service is ready when the document store
// answers a ping within a short deadline.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := d.Store.Ping(ctx); err != nil {
			d.Logger.Warn("readiness check failed", logger.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, readyzResponse{
				Ready: false,
				Error: "store unreachable",
			})
			return
		}

		writeJSON(w, http.StatusOK, readyzResponse{Ready: true})
	}
}
