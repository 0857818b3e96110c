package service

import (
	"errors"
	"net/http"

	"github.com/minato369/bookstack/clients"
	"github.com/minato369/bookstack/data"
	"github.com/minato369/bookstack/internal/validator"
	"github.com/minato369/bookstack/repository"
)

type books interface {
	CreateBook(title string, author string, genre string) (*data.Book, error)
	GetBook(bookID int64, page int) (*data.Book, error)
	ListBooks(criteria data.BookCriteria) ([]*data.Book, error)
	ListBookReviews(bookID int64, filters data.Filters) ([]data.ReviewSummary, error)
	UpdateBookCover(bookID int64, r *http.Request) (*data.Book, error)
}

// CreateBook service creates a new book record.
func (s *service) CreateBook(title string, author string, genre string) (*data.Book, error) {
	book := &data.Book{
		Title:   title,
		Author:  author,
		Genre:   genre,
		Reviews: []data.ReviewSummary{},
	}
	v := validator.New()
	if data.ValidateBook(v, book); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err := s.repo.CreateBook(book)
	if err != nil {
		return nil, err
	}
	return book, nil
}

// GetBook service retrieves the details of a book together with its average
// rating and a page of its reviews. A book with no reviews is still
// retrievable; its review list is simply empty.
func (s *service) GetBook(bookID int64, page int) (*data.Book, error) {
	filters := data.Filters{Page: page}
	v := validator.New()
	if data.ValidateFilters(v, filters); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	book, err := s.repo.GetBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	reviews, err := s.repo.GetBookReviews(bookID, filters)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			book.Reviews = []data.ReviewSummary{}
			return book, nil
		default:
			return nil, err
		}
	}
	book.Reviews = reviews
	return book, nil
}

// ListBooks service retrieves a paginated list of books matching the given
// criteria. An empty page is a successful result, not an error.
func (s *service) ListBooks(criteria data.BookCriteria) ([]*data.Book, error) {
	v := validator.New()
	if data.ValidateFilters(v, criteria.Filters); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	books, err := s.repo.GetAllBooks(criteria)
	if err != nil {
		return nil, err
	}
	return books, nil
}

// ListBookReviews service retrieves a page of reviews for a book. A book with
// no reviews on the requested page yields ErrRecordNotFound.
func (s *service) ListBookReviews(bookID int64, filters data.Filters) ([]data.ReviewSummary, error) {
	v := validator.New()
	if data.ValidateFilters(v, filters); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	reviews, err := s.repo.GetBookReviews(bookID, filters)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return reviews, nil
}

// UpdateBookCover service uploads a cover image for a book to s3 object
// storage and stores the resulting URL on the book record.
func (s *service) UpdateBookCover(bookID int64, r *http.Request) (*data.Book, error) {
	book, err := s.repo.GetBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	// Parse form data
	err = r.ParseMultipartForm(5000)
	if err != nil {
		var maxBytesError *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesError):
			return nil, ErrContentTooLarge
		default:
			return nil, ErrBadRequest
		}
	}
	file, fileHeader, err := r.FormFile("cover")
	if err != nil {
		return nil, ErrBadRequest
	}
	defer file.Close()
	// Detect file Mime type and check whether it is supported
	buffer, mtype, err := s.detectMimeType(file, fileHeader)
	if err != nil {
		return nil, err
	}
	supportedMediaType := []string{
		"image/jpeg",
		"image/png",
		"image/webp",
	}
	if validMime := validator.Mime(mtype, supportedMediaType...); !validMime {
		return nil, ErrUnsupportedMediaType
	}
	// Upload file to s3 object storage
	s3Client, err := clients.NewS3Client(s.config)
	if err != nil {
		return nil, err
	}
	coverPath, err := s.uploadFileToS3(s3Client, buffer, mtype, fileHeader)
	if err != nil {
		return nil, err
	}
	err = s.repo.UpdateBookCover(bookID, coverPath)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	book.CoverPath = coverPath
	return book, nil
}
