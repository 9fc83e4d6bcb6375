package api

import (
	"log/slog"
	"net/http"
)

func (cfg *APIConfig) handleDeleteAllUsers(w http.ResponseWriter, r *http.Request) {
	if cfg.platform != "dev" {
		respondWithText(w, http.StatusForbidden, "403 Forbidden")
		return
	}

	err := cfg.db.DeleteUsers(r.Context())
	if err != nil {
		slog.Error(err.Error())
	}

	respondWithText(w, http.StatusOK, "Successfully deleted all users.")
}

func (cfg *APIConfig) handleGetTotalUserCount(w http.ResponseWriter, r *http.Request) {
	if cfg.platform != "dev" {
		respondWithText(w, http.StatusForbidden, "403 Forbidden")
		return
	}

	count, err := cfg.db.GetUserCount(r.Context())
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Could not find any users", err)
		return
	}

	type rspSchema struct {
		Count int64 `json:"count"`
	}

	respondWithJSON(w, http.StatusOK, rspSchema{Count: count})
}
