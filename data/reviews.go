package data

import (
	"time"

	"github.com/minato369/bookstack/internal/validator"
)

// Review defines a full review record as stored.
type Review struct {
	ID         int64     `json:"id"`
	BookID     int64     `json:"book_id"`
	UserID     int64     `json:"user_id"`
	Rating     int8      `json:"rating"`
	Review     string    `json:"review"`
	ReviewDate time.Time `json:"review_date"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ReviewSummary is the trimmed-down review shape embedded in book responses
// and review listings. Username is nil when the review's owning user record
// has been deleted (the join is a left join).
type ReviewSummary struct {
	ID       int64   `json:"id"`
	Review   string  `json:"review"`
	Username *string `json:"username"`
}

func ValidateReview(v *validator.Validator, review *Review) {
	v.Check(review.Rating >= 1, "rating", "must be at least 1")
	v.Check(review.Rating <= 5, "rating", "must not be greater than 5")
	v.Check(review.Review != "", "review", "must be provided")
	v.Check(len(review.Review) <= 5000, "review", "must not be more than 5000 bytes long")
}
