package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/minato369/bookstack/data"
)

type books interface {
	CreateBook(book *data.Book) error
	GetBook(bookID int64) (*data.Book, error)
	GetAllBooks(criteria data.BookCriteria) ([]*data.Book, error)
	UpdateBookCover(bookID int64, coverPath string) error
}

// CreateBook creates a new book record.
func (r *repository) CreateBook(book *data.Book) error {
	query := `
		INSERT INTO books (name, author, genre)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	args := []interface{}{book.Title, book.Author, book.Genre}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return r.db.QueryRowContext(ctx, query, args...).Scan(&book.ID, &book.CreatedAt)
}

// GetBook retrieves a book record together with the average of its review
// ratings, rounded to one decimal place. The rating is NULL when the book has
// no reviews. A non-positive ID short-circuits without touching the database.
func (r *repository) GetBook(bookID int64) (*data.Book, error) {
	if bookID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT b.id, b.name, b.author, b.genre, b.created_at, COALESCE(b.cover_path, ''),
			ROUND(AVG(r.rating)::numeric, 1)
		FROM books b
		LEFT JOIN reviews r ON r.book_id = b.id
		WHERE b.id = $1
		GROUP BY b.id`
	var book data.Book
	var rating sql.NullFloat64
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, bookID).Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.Genre,
		&book.CreatedAt,
		&book.CoverPath,
		&rating,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	if rating.Valid {
		book.Rating = &rating.Float64
	}
	book.Reviews = []data.ReviewSummary{}
	return &book, nil
}

// GetAllBooks retrieves one page of book records matching the criteria. The
// statement is compiled from the criteria and the flat result rows are folded
// through the aggregator, so duplicate ids collapse in first-seen order. An
// empty page is a valid result.
func (r *repository) GetAllBooks(criteria data.BookCriteria) ([]*data.Book, error) {
	query, args := compileBookQuery(criteria)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	flat := []bookRow{}
	for rows.Next() {
		var row bookRow
		err := rows.Scan(
			&row.ID,
			&row.Title,
			&row.Author,
			&row.Genre,
			&row.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		flat = append(flat, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return aggregateBookRows(flat), nil
}

// UpdateBookCover sets the cover path of a book record.
func (r *repository) UpdateBookCover(bookID int64, coverPath string) error {
	if bookID < 1 {
		return ErrRecordNotFound
	}
	query := `
		UPDATE books
		SET cover_path = $1
		WHERE id = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, coverPath, bookID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
