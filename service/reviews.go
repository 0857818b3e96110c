package service

import (
	"errors"

	"github.com/minato369/bookstack/data"
	"github.com/minato369/bookstack/internal/validator"
	"github.com/minato369/bookstack/repository"
)

type reviews interface {
	AddReview(bookID int64, userID int64, rating int8, comment string) (*data.Review, error)
	UpdateReview(reviewID int64, userID int64, rating *int8, comment *string) (*data.Review, error)
	DeleteReview(reviewID int64, userID int64) error
}

// AddReview service creates a review for a book on behalf of a user. A user
// may review a given book at most once.
func (s *service) AddReview(bookID int64, userID int64, rating int8, comment string) (*data.Review, error) {
	review := &data.Review{
		BookID: bookID,
		UserID: userID,
		Rating: rating,
		Review: comment,
	}
	v := validator.New()
	if data.ValidateReview(v, review); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	// Make sure the book exists before checking for an earlier review
	_, err := s.repo.GetBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	exists, err := s.repo.ReviewExistsForUser(bookID, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateRecord
	}
	err = s.repo.CreateReview(review)
	if err != nil {
		switch {
		// The unique constraint closes the window between the existence check
		// and the insert when two submissions race.
		case errors.Is(err, repository.ErrDuplicateRecord):
			return nil, ErrDuplicateRecord
		default:
			return nil, err
		}
	}
	return review, nil
}

// UpdateReview service updates a review. Only the review's author can update
// it; a review belonging to another user is reported as not found.
func (s *service) UpdateReview(reviewID int64, userID int64, rating *int8, comment *string) (*data.Review, error) {
	review, err := s.repo.GetReviewForUser(reviewID, userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	if rating != nil {
		review.Rating = *rating
	}
	if comment != nil {
		review.Review = *comment
	}
	v := validator.New()
	if data.ValidateReview(v, review); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err = s.repo.UpdateReview(review)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return review, nil
}

// DeleteReview service deletes a review. The same ownership scoping as
// UpdateReview applies.
func (s *service) DeleteReview(reviewID int64, userID int64) error {
	err := s.repo.DeleteReview(reviewID, userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	return nil
}
