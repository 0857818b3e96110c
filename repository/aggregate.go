package repository

import (
	"database/sql"
	"time"

	"github.com/minato369/bookstack/data"
)

// bookRow is one flat row from the book projection, optionally carrying
// columns from a joined review. The review columns are NULL (invalid) when
// the row comes from an unjoined scan or from a left join with no match.
type bookRow struct {
	ID        int64
	Title     string
	Author    string
	Genre     string
	CreatedAt time.Time
	ReviewID  sql.NullInt64
	Review    sql.NullString
	Username  sql.NullString
}

// reviewRow is one flat row from the review-to-user left join. Username is
// NULL when the owning user record is gone.
type reviewRow struct {
	ID       int64
	Review   string
	Username sql.NullString
}

// aggregateBookRows folds flat join rows into one Book per distinct book id,
// preserving the order in which each id first appears. The first row for an
// id materializes the book shell with an empty reviews slice; every row with
// a non-null review id appends a summary to its book. The mapping is local
// to the call, so re-aggregating the same rows always yields the same result.
func aggregateBookRows(rows []bookRow) []*data.Book {
	byID := make(map[int64]*data.Book)
	books := []*data.Book{}
	for _, row := range rows {
		book, seen := byID[row.ID]
		if !seen {
			book = &data.Book{
				ID:        row.ID,
				CreatedAt: row.CreatedAt,
				Title:     row.Title,
				Author:    row.Author,
				Genre:     row.Genre,
				Reviews:   []data.ReviewSummary{},
			}
			byID[row.ID] = book
			books = append(books, book)
		}
		if row.ReviewID.Valid {
			summary := data.ReviewSummary{
				ID:     row.ReviewID.Int64,
				Review: row.Review.String,
			}
			if row.Username.Valid {
				username := row.Username.String
				summary.Username = &username
			}
			book.Reviews = append(book.Reviews, summary)
		}
	}
	return books
}

// aggregateReviewRows folds flat review rows into one summary per distinct
// review id, preserving first-seen order.
func aggregateReviewRows(rows []reviewRow) []data.ReviewSummary {
	seen := make(map[int64]bool)
	reviews := []data.ReviewSummary{}
	for _, row := range rows {
		if seen[row.ID] {
			continue
		}
		seen[row.ID] = true
		summary := data.ReviewSummary{
			ID:     row.ID,
			Review: row.Review,
		}
		if row.Username.Valid {
			username := row.Username.String
			summary.Username = &username
		}
		reviews = append(reviews, summary)
	}
	return reviews
}
