package api

import (
	"time"

	"github.com/spendtrack/spendtrack-api/internal/database"
)

// Timestamps marshals the shared creation/mutation instants inline in
// every record payload.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type User struct {
	ID int64 `json:"id"`
	Timestamps
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Expense struct {
	ID int64 `json:"id"`
	Timestamps
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description *string `json:"description"`
	UserID      int64   `json:"user_id"`
}

// SessionResponse is the payload returned by both signup and signin: a
// fresh bearer token plus the account it authenticates.
type SessionResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	User      User   `json:"user"`
}

func userFromDB(u database.User) User {
	return User{
		ID: u.ID,
		Timestamps: Timestamps{
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		},
		Username: u.Username,
		Email:    u.Email,
	}
}

func expenseFromDB(e database.Expense) Expense {
	var description *string
	if e.Description.Valid {
		description = &e.Description.String
	}
	return Expense{
		ID: e.ID,
		Timestamps: Timestamps{
			CreatedAt: e.CreatedAt,
			UpdatedAt: e.UpdatedAt,
		},
		Category:    e.Category,
		Amount:      e.Amount,
		Description: description,
		UserID:      e.UserID,
	}
}
