package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/minato369/bookstack/data"
)

type reviews interface {
	CreateReview(review *data.Review) error
	GetReviewForUser(reviewID int64, userID int64) (*data.Review, error)
	UpdateReview(review *data.Review) error
	DeleteReview(reviewID int64, userID int64) error
	ReviewExistsForUser(bookID int64, userID int64) (bool, error)
	GetBookReviews(bookID int64, filters data.Filters) ([]data.ReviewSummary, error)
}

// CreateReview creates a review record. The reviews table carries a unique
// constraint on (book_id, user_id), so a concurrent duplicate submission that
// slips past the service-level existence check still surfaces as
// ErrDuplicateRecord instead of a second row.
func (r *repository) CreateReview(review *data.Review) error {
	query := `
		INSERT INTO reviews (book_id, user_id, rating, review)
		VALUES ($1, $2, $3, $4)
		RETURNING id, review_date, updated_at`
	args := []interface{}{review.BookID, review.UserID, review.Rating, review.Review}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&review.ID, &review.ReviewDate, &review.UpdatedAt)
	if err != nil {
		switch {
		case err.Error() == `pq: duplicate key value violates unique constraint "reviews_book_id_user_id_key"`:
			return ErrDuplicateRecord
		default:
			return err
		}
	}
	return nil
}

// ReviewExistsForUser reports whether a user already has a review for a book.
func (r *repository) ReviewExistsForUser(bookID int64, userID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM reviews
			WHERE book_id = $1 AND user_id = $2
		)`
	var exists bool
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, bookID, userID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// GetReviewForUser retrieves a review record scoped to its owning user. A
// review that exists but belongs to someone else is indistinguishable from a
// missing one.
func (r *repository) GetReviewForUser(reviewID int64, userID int64) (*data.Review, error) {
	if reviewID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT id, book_id, user_id, rating, review, review_date, updated_at
		FROM reviews
		WHERE id = $1 AND user_id = $2`
	var review data.Review
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, reviewID, userID).Scan(
		&review.ID,
		&review.BookID,
		&review.UserID,
		&review.Rating,
		&review.Review,
		&review.ReviewDate,
		&review.UpdatedAt,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &review, nil
}

// UpdateReview updates a review record. The write is scoped to the owning
// user, so no cross-user mutation is possible.
func (r *repository) UpdateReview(review *data.Review) error {
	query := `
		UPDATE reviews
		SET rating = $1, review = $2, updated_at = now()
		WHERE id = $3 AND user_id = $4
		RETURNING updated_at`
	args := []interface{}{review.Rating, review.Review, review.ID, review.UserID}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&review.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	return nil
}

// DeleteReview deletes a review record, scoped to its owning user.
func (r *repository) DeleteReview(reviewID int64, userID int64) error {
	if reviewID < 1 {
		return ErrRecordNotFound
	}
	query := `
		DELETE FROM reviews
		WHERE id = $1 AND user_id = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, reviewID, userID)
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

// GetBookReviews retrieves one page of review summaries for a book, joined
// with the owning user for the display name. The join is a left join, so a
// review whose user record is gone comes back with a NULL username. An empty
// page is reported as ErrRecordNotFound, unlike the book listing where an
// empty page is a valid result.
func (r *repository) GetBookReviews(bookID int64, filters data.Filters) ([]data.ReviewSummary, error) {
	if bookID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT r.id, r.review, u.username
		FROM reviews r
		LEFT JOIN users u ON u.id = r.user_id
		WHERE r.book_id = $1
		LIMIT $2 OFFSET $3`
	args := []interface{}{bookID, filters.Limit(), filters.Offset()}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	flat := []reviewRow{}
	for rows.Next() {
		var row reviewRow
		err := rows.Scan(&row.ID, &row.Review, &row.Username)
		if err != nil {
			return nil, err
		}
		flat = append(flat, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(flat) == 0 {
		return nil, ErrRecordNotFound
	}
	return aggregateReviewRows(flat), nil
}
