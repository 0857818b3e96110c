package data

import (
	"time"

	"github.com/minato369/bookstack/internal/validator"
)

// Book defines a book record. Rating is the average of the book's review
// ratings rounded to one decimal place, and is nil when the book has no
// reviews. Reviews is always non-nil once the book has been through the row
// aggregator; a book with no reviews carries an empty slice.
type Book struct {
	ID        int64           `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Title     string          `json:"title"`
	Author    string          `json:"author"`
	Genre     string          `json:"genre"`
	CoverPath string          `json:"cover_path,omitempty"`
	Rating    *float64        `json:"rating"`
	Reviews   []ReviewSummary `json:"reviews"`
}

// BookCriteria is the client-supplied filter for book listings. Zero-valued
// fields impose no constraint. When Search is set, title and author matching
// switches from exact equality to case-sensitive prefix matching; genre is
// always matched exactly.
type BookCriteria struct {
	Title  string
	Author string
	Genre  string
	Search bool
	Filters
}

func ValidateBook(v *validator.Validator, book *Book) {
	v.Check(book.Title != "", "title", "must be provided")
	v.Check(len(book.Title) <= 500, "title", "must not be more than 500 bytes long")
	v.Check(book.Author != "", "author", "must be provided")
	v.Check(len(book.Author) <= 500, "author", "must not be more than 500 bytes long")
	v.Check(book.Genre != "", "genre", "must be provided")
	v.Check(len(book.Genre) <= 100, "genre", "must not be more than 100 bytes long")
}
