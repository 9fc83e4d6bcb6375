package database

import (
	"database/sql"
	"time"
)

// Timestamps carries the creation and last-mutation instants shared by
// every persisted record. Embedded by value; updated_at is refreshed by
// the mutating queries themselves.
type Timestamps struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

type User struct {
	ID int64
	Timestamps
	Username       string
	Email          string
	HashedPassword string
}

type Expense struct {
	ID int64
	Timestamps
	Category    string
	Amount      float64
	Description sql.NullString
	UserID      int64
}
