package database

import (
	"context"
)

// Querier is the query surface handlers depend on, so tests can stand
// in a fake store.
type Querier interface {
	CreateUser(ctx context.Context, arg CreateUserParams) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	GetUserByID(ctx context.Context, id int64) (User, error)
	DeleteUserByID(ctx context.Context, id int64) error
	DeleteUsers(ctx context.Context) error
	GetUserCount(ctx context.Context) (int64, error)

	CreateExpense(ctx context.Context, arg CreateExpenseParams) (Expense, error)
	GetUserExpenses(ctx context.Context, userID int64) ([]Expense, error)
	UpdateExpense(ctx context.Context, arg UpdateExpenseParams) (Expense, error)
	DeleteExpense(ctx context.Context, arg DeleteExpenseParams) (DeleteExpenseRow, error)
}

var _ Querier = (*Queries)(nil)
