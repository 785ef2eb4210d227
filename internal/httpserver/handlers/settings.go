package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/voyage/internal/domain"
	"github.com/MrSnakeDoc/voyage/internal/httpserver/deps"
)

// GetSettings returns the singleton settings record, creating it from
// the configured defaults on first call.
func GetSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := d.Store.GetSettings(r.Context(), d.SettingsDefaults)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, settings)
	}
}

// UpdateSettings merges the partial payload into the current settings
// and returns the full merged record. Fields absent from the payload are
// untouched; fields present with an empty value are applied.
func UpdateSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch domain.SettingsUpdate
		if err := decodeBody(r, &patch); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		merged, err := d.Store.UpdateSettings(r.Context(), d.SettingsDefaults, patch)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, merged)
	}
}
