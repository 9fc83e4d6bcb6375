package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/spendtrack/spendtrack-api/internal/auth"
)

// ================= MIDDLEWARE ================= //

type ctxKey string

// middlewareAuthenticate authenticates JSON Web Tokens
// before passing off requests to another handler.
// This is the only path onto a protected route; every rejection
// reads the same from the outside.
func (cfg *APIConfig) middlewareAuthenticate(next http.HandlerFunc) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := auth.GetBearerToken(r.Header)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "401 Unauthorized", err)
			return
		}
		validatedUserID, err := auth.ValidateJWT(tokenString, cfg.secret, cfg.algorithm)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "401 Unauthorized", nil)
			return
		}
		ctxUserID := ctxKey("user_id")
		ctx := context.WithValue(r.Context(), ctxUserID, validatedUserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// middlewareLogRequest tags every request with an id and logs it on
// the way in.
func (cfg *APIConfig) middlewareLogRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New()
		slog.Debug("request received",
			slog.String("request_id", requestID.String()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		ctxRequestID := ctxKey("request_id")
		ctx := context.WithValue(r.Context(), ctxRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ============== HELPERS =================

func getContextUserID(ctx context.Context) int64 {
	userID, ok := ctx.Value(ctxKey("user_id")).(int64)
	if !ok {
		slog.Warn("failed to retrieve user id from context")
		return 0
	}
	return userID
}
