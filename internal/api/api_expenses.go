package api

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/spendtrack/spendtrack-api/internal/database"
)

func (cfg *APIConfig) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	validatedUserID := getContextUserID(r.Context())

	dbExpenses, err := cfg.db.GetUserExpenses(r.Context(), validatedUserID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Couldn't list expenses", err)
		return
	}

	expenses := []Expense{}
	for _, dbExpense := range dbExpenses {
		expenses = append(expenses, expenseFromDB(dbExpense))
	}

	type rspSchema struct {
		Expenses []Expense `json:"expenses"`
	}

	respondWithJSON(w, http.StatusOK, rspSchema{Expenses: expenses})
}

func (cfg *APIConfig) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	validatedUserID := getContextUserID(r.Context())

	type rqSchema struct {
		Category    string   `json:"category"`
		Amount      *float64 `json:"amount"`
		Description *string  `json:"description"`
	}

	rqPayload, err := decodePayload[rqSchema](r)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failure decoding parameters", err)
		return
	}

	if rqPayload.Category == "" {
		respondWithError(w, http.StatusBadRequest, "Category not provided", nil)
		return
	}
	if rqPayload.Amount == nil {
		respondWithError(w, http.StatusBadRequest, "Amount not provided", nil)
		return
	}

	dbExpense, err := cfg.db.CreateExpense(r.Context(), database.CreateExpenseParams{
		Category:    rqPayload.Category,
		Amount:      *rqPayload.Amount,
		Description: nullStringFrom(rqPayload.Description),
		UserID:      validatedUserID,
	})
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Couldn't create expense", err)
		return
	}

	respondWithJSON(w, http.StatusCreated, expenseFromDB(dbExpense))
}

func (cfg *APIConfig) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	validatedUserID := getContextUserID(r.Context())

	expenseID, err := parseIDFromPath("expense_id", r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid expense ID", err)
		return
	}

	type rqSchema struct {
		Category    *string  `json:"category"`
		Amount      *float64 `json:"amount"`
		Description *string  `json:"description"`
	}

	rqPayload, err := decodePayload[rqSchema](r)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failure decoding parameters", err)
		return
	}

	// absent fields stay invalid here and keep their stored value
	dbExpense, err := cfg.db.UpdateExpense(r.Context(), database.UpdateExpenseParams{
		ID:          expenseID,
		UserID:      validatedUserID,
		Category:    nullStringFrom(rqPayload.Category),
		Amount:      nullFloatFrom(rqPayload.Amount),
		Description: nullStringFrom(rqPayload.Description),
	})
	if err != nil {
		// a foreign user's expense and a nonexistent one look the same
		if errors.Is(err, sql.ErrNoRows) {
			respondWithError(w, http.StatusNotFound, "Expense doesn't exist", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Couldn't update expense", err)
		return
	}

	respondWithJSON(w, http.StatusOK, expenseFromDB(dbExpense))
}

func (cfg *APIConfig) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	validatedUserID := getContextUserID(r.Context())

	expenseID, err := parseIDFromPath("expense_id", r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid expense ID", err)
		return
	}

	deleted, err := cfg.db.DeleteExpense(r.Context(), database.DeleteExpenseParams{
		ID:     expenseID,
		UserID: validatedUserID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondWithError(w, http.StatusNotFound, "Expense doesn't exist", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Couldn't delete expense", err)
		return
	}

	type rspSchema struct {
		Message string `json:"message"`
	}

	rspPayload := rspSchema{
		Message: fmt.Sprintf("Expense deleted successfully - Category: '%s', Description: '%s'",
			deleted.Category, deleted.Description.String),
	}

	respondWithJSON(w, http.StatusOK, rspPayload)
}

func nullStringFrom(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullFloatFrom(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
