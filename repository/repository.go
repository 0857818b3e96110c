package repository

import (
	"database/sql"
)

// Repository defines the app's storage layer. It is injected into the service
// layer at construction so that tests can substitute a double.
type Repository interface {
	books
	reviews
	users
}

type repository struct {
	db *sql.DB
}

// New creates a new instance of Repository backed by a database pool.
func New(db *sql.DB) *repository {
	return &repository{db: db}
}
