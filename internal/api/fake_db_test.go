package api

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/lib/pq"

	"github.com/spendtrack/spendtrack-api/internal/database"
)

// fakeDB is an in-memory database.Querier for handler tests. It keeps
// the store's observable behavior: unique violations come back as pq
// errors, a row filtered out by ownership scans as sql.ErrNoRows, and
// deleting a user takes their expenses with them like the foreign-key
// cascade would.
type fakeDB struct {
	mu sync.Mutex

	nextUserID    int64
	nextExpenseID int64
	users         map[int64]database.User
	expenses      map[int64]database.Expense
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		nextUserID:    1,
		nextExpenseID: 1,
		users:         make(map[int64]database.User),
		expenses:      make(map[int64]database.Expense),
	}
}

var errUniqueViolation = &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"}

func (f *fakeDB) CreateUser(_ context.Context, arg database.CreateUserParams) (database.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Email == arg.Email || u.Username == arg.Username {
			return database.User{}, errUniqueViolation
		}
	}

	now := time.Now().UTC()
	u := database.User{
		ID:             f.nextUserID,
		Timestamps:     database.Timestamps{CreatedAt: now, UpdatedAt: now},
		Username:       arg.Username,
		Email:          arg.Email,
		HashedPassword: arg.HashedPassword,
	}
	f.users[u.ID] = u
	f.nextUserID++
	return u, nil
}

func (f *fakeDB) GetUserByEmail(_ context.Context, email string) (database.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return database.User{}, sql.ErrNoRows
}

func (f *fakeDB) GetUserByID(_ context.Context, id int64) (database.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[id]
	if !ok {
		return database.User{}, sql.ErrNoRows
	}
	return u, nil
}

func (f *fakeDB) DeleteUserByID(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.users, id)
	for eid, e := range f.expenses {
		if e.UserID == id {
			delete(f.expenses, eid)
		}
	}
	return nil
}

func (f *fakeDB) DeleteUsers(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.users = make(map[int64]database.User)
	f.expenses = make(map[int64]database.Expense)
	return nil
}

func (f *fakeDB) GetUserCount(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return int64(len(f.users)), nil
}

func (f *fakeDB) CreateExpense(_ context.Context, arg database.CreateExpenseParams) (database.Expense, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := time.Now().UTC()
	e := database.Expense{
		ID:          f.nextExpenseID,
		Timestamps:  database.Timestamps{CreatedAt: now, UpdatedAt: now},
		Category:    arg.Category,
		Amount:      arg.Amount,
		Description: arg.Description,
		UserID:      arg.UserID,
	}
	f.expenses[e.ID] = e
	f.nextExpenseID++
	return e, nil
}

func (f *fakeDB) GetUserExpenses(_ context.Context, userID int64) ([]database.Expense, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// primary-key order, same as the real query
	var expenses []database.Expense
	for id := int64(1); id < f.nextExpenseID; id++ {
		if e, ok := f.expenses[id]; ok && e.UserID == userID {
			expenses = append(expenses, e)
		}
	}
	return expenses, nil
}

func (f *fakeDB) UpdateExpense(_ context.Context, arg database.UpdateExpenseParams) (database.Expense, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	e, ok := f.expenses[arg.ID]
	if !ok || e.UserID != arg.UserID {
		return database.Expense{}, sql.ErrNoRows
	}
	if arg.Category.Valid {
		e.Category = arg.Category.String
	}
	if arg.Amount.Valid {
		e.Amount = arg.Amount.Float64
	}
	if arg.Description.Valid {
		e.Description = arg.Description
	}
	e.UpdatedAt = time.Now().UTC()
	f.expenses[e.ID] = e
	return e, nil
}

func (f *fakeDB) DeleteExpense(_ context.Context, arg database.DeleteExpenseParams) (database.DeleteExpenseRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	e, ok := f.expenses[arg.ID]
	if !ok || e.UserID != arg.UserID {
		return database.DeleteExpenseRow{}, sql.ErrNoRows
	}
	delete(f.expenses, arg.ID)
	return database.DeleteExpenseRow{Category: e.Category, Description: e.Description}, nil
}

var _ database.Querier = (*fakeDB)(nil)
