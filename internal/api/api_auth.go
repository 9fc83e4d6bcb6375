package api

import (
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lib/pq"

	"github.com/spendtrack/spendtrack-api/internal/auth"
	"github.com/spendtrack/spendtrack-api/internal/database"
)

func (cfg *APIConfig) handleSignup(w http.ResponseWriter, r *http.Request) {
	type rqSchema struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	rqPayload, err := decodePayload[rqSchema](r)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failure decoding parameters", err)
		return
	}

	if rqPayload.Username == "" || rqPayload.Email == "" || rqPayload.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Missing username, email or password", nil)
		return
	}

	hashedPass, err := auth.HashPassword(rqPayload.Password)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failure processing request to create user", err)
		return
	}

	dbUser, err := cfg.db.CreateUser(r.Context(), database.CreateUserParams{
		Username:       rqPayload.Username,
		Email:          rqPayload.Email,
		HashedPassword: hashedPass,
	})
	if err != nil {
		if isUniqueViolation(err) {
			respondWithError(w, http.StatusConflict, "Email or username already registered", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failure processing request to create user", err)
		return
	}

	accessToken, err := auth.MakeJWT(dbUser.ID, cfg.signingMethod(), cfg.secret, cfg.tokenTTL)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Trouble signing up", err)
		return
	}

	rspPayload := SessionResponse{
		Token:     accessToken,
		TokenType: "bearer",
		User:      userFromDB(dbUser),
	}

	respondWithJSON(w, http.StatusCreated, rspPayload)
}

func (cfg *APIConfig) handleSignin(w http.ResponseWriter, r *http.Request) {
	type rqSchema struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	rqPayload, err := decodePayload[rqSchema](r)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Could not sign in user", err)
		return
	}

	if rqPayload.Email == "" || rqPayload.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Missing credential(s)", nil)
		return
	}

	// an unknown email and a wrong password respond identically
	dbUser, err := cfg.db.GetUserByEmail(r.Context(), rqPayload.Email)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Incorrect email or password", nil)
		return
	}

	match, err := auth.CheckPasswordHash(rqPayload.Password, dbUser.HashedPassword)
	if err != nil || !match {
		respondWithError(w, http.StatusUnauthorized, "Incorrect email or password", nil)
		return
	}

	accessToken, err := auth.MakeJWT(dbUser.ID, cfg.signingMethod(), cfg.secret, cfg.tokenTTL)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Trouble signing in", err)
		return
	}

	rspPayload := SessionResponse{
		Token:     accessToken,
		TokenType: "bearer",
		User:      userFromDB(dbUser),
	}

	respondWithJSON(w, http.StatusOK, rspPayload)
}

func (cfg *APIConfig) signingMethod() *jwt.SigningMethodHMAC {
	switch cfg.algorithm {
	case "HS384":
		return jwt.SigningMethodHS384
	case "HS512":
		return jwt.SigningMethodHS512
	default:
		return jwt.SigningMethodHS256
	}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
