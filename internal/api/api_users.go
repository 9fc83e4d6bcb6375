package api

import (
	"net/http"

	"github.com/spendtrack/spendtrack-api/internal/auth"
)

// handleDeleteUser removes the acting user's account. The password is
// re-confirmed so a leaked token alone cannot destroy the account; the
// user's expenses go with it through the cascade on the foreign key.
func (cfg *APIConfig) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	type rqSchema struct {
		Password string `json:"password"`
	}

	rqPayload, err := decodePayload[rqSchema](r)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Error decoding parameters", err)
		return
	}

	if rqPayload.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Missing password", nil)
		return
	}

	validatedUserID := getContextUserID(r.Context())

	dbUser, err := cfg.db.GetUserByID(r.Context(), validatedUserID)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "401 Unauthorized", err)
		return
	}

	match, err := auth.CheckPasswordHash(rqPayload.Password, dbUser.HashedPassword)
	if err != nil || !match {
		respondWithError(w, http.StatusUnauthorized, "Incorrect password", nil)
		return
	}

	err = cfg.db.DeleteUserByID(r.Context(), validatedUserID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Couldn't delete user", err)
		return
	}

	respondWithText(w, http.StatusOK, "The user was deleted.")
}
