// Package api handles routes and their associated handlers
package api

import (
	"net/http"

	"github.com/go-chi/cors"
)

func SetupMux(cfg *APIConfig) http.Handler {
	mux := http.NewServeMux()

	// middleware
	mdAuth := cfg.middlewareAuthenticate

	// REGISTER API HANDLERS
	// ======================

	// Admin & State
	mux.HandleFunc("GET /api/healthz", cfg.handleReadiness)
	mux.HandleFunc("POST /admin/reset", cfg.handleDeleteAllUsers)
	mux.HandleFunc("GET /admin/users/count", cfg.handleGetTotalUserCount)
	// User authentication
	mux.HandleFunc("POST /api/auth/signup", cfg.handleSignup)
	mux.HandleFunc("POST /api/auth/signin", cfg.handleSignin)
	mux.HandleFunc("DELETE /api/users", mdAuth(cfg.handleDeleteUser))
	// Expenses
	mux.HandleFunc("GET /api/expenses", mdAuth(cfg.handleListExpenses))
	mux.HandleFunc("POST /api/expenses", mdAuth(cfg.handleCreateExpense))
	mux.HandleFunc("PUT /api/expenses/{expense_id}", mdAuth(cfg.handleUpdateExpense))
	mux.HandleFunc("DELETE /api/expenses/{expense_id}", mdAuth(cfg.handleDeleteExpense))

	corsWrap := cors.Handler(cors.Options{
		AllowedOrigins: cfg.corsOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	})

	return corsWrap(cfg.middlewareLogRequest(mux))
}

func (cfg *APIConfig) handleReadiness(w http.ResponseWriter, r *http.Request) {
	respondWithText(w, http.StatusOK, "OK")
}
