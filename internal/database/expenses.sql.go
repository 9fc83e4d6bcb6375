package database

import (
	"context"
	"database/sql"
)

const createExpense = `
INSERT INTO expenses (category, amount, description, user_id)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at, updated_at, category, amount, description, user_id
`

type CreateExpenseParams struct {
	Category    string
	Amount      float64
	Description sql.NullString
	UserID      int64
}

func (q *Queries) CreateExpense(ctx context.Context, arg CreateExpenseParams) (Expense, error) {
	row := q.db.QueryRowContext(ctx, createExpense, arg.Category, arg.Amount, arg.Description, arg.UserID)
	var e Expense
	err := row.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt, &e.Category, &e.Amount, &e.Description, &e.UserID)
	return e, err
}

const getUserExpenses = `
SELECT id, created_at, updated_at, category, amount, description, user_id
FROM expenses
WHERE user_id = $1
ORDER BY id
`

func (q *Queries) GetUserExpenses(ctx context.Context, userID int64) ([]Expense, error) {
	rows, err := q.db.QueryContext(ctx, getUserExpenses, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var expenses []Expense
	for rows.Next() {
		var e Expense
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt, &e.Category, &e.Amount, &e.Description, &e.UserID); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return expenses, nil
}

const updateExpense = `
UPDATE expenses
SET category = COALESCE($3, category),
    amount = COALESCE($4, amount),
    description = COALESCE($5, description),
    updated_at = NOW()
WHERE id = $1 AND user_id = $2
RETURNING id, created_at, updated_at, category, amount, description, user_id
`

type UpdateExpenseParams struct {
	ID          int64
	UserID      int64
	Category    sql.NullString
	Amount      sql.NullFloat64
	Description sql.NullString
}

// UpdateExpense overwrites only the fields whose Null* argument is
// valid; the row must belong to the given user or no row matches and
// sql.ErrNoRows comes back.
func (q *Queries) UpdateExpense(ctx context.Context, arg UpdateExpenseParams) (Expense, error) {
	row := q.db.QueryRowContext(ctx, updateExpense, arg.ID, arg.UserID, arg.Category, arg.Amount, arg.Description)
	var e Expense
	err := row.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt, &e.Category, &e.Amount, &e.Description, &e.UserID)
	return e, err
}

const deleteExpense = `
DELETE FROM expenses
WHERE id = $1 AND user_id = $2
RETURNING category, description
`

type DeleteExpenseParams struct {
	ID     int64
	UserID int64
}

type DeleteExpenseRow struct {
	Category    string
	Description sql.NullString
}

func (q *Queries) DeleteExpense(ctx context.Context, arg DeleteExpenseParams) (DeleteExpenseRow, error) {
	row := q.db.QueryRowContext(ctx, deleteExpense, arg.ID, arg.UserID)
	var d DeleteExpenseRow
	err := row.Scan(&d.Category, &d.Description)
	return d, err
}
