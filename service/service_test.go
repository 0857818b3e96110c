package service

import (
	"io"
	"sync"
	"testing"

	"github.com/minato369/bookstack/config"
	"github.com/minato369/bookstack/data"
	"github.com/minato369/bookstack/internal/jsonlog"
	"github.com/minato369/bookstack/internal/token"
	"github.com/minato369/bookstack/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRepo implements repository.Repository with overridable func fields so
// each test supplies only the calls it expects.
type mockRepo struct {
	createBook          func(book *data.Book) error
	getBook             func(bookID int64) (*data.Book, error)
	getAllBooks         func(criteria data.BookCriteria) ([]*data.Book, error)
	updateBookCover     func(bookID int64, coverPath string) error
	createReview        func(review *data.Review) error
	getReviewForUser    func(reviewID int64, userID int64) (*data.Review, error)
	updateReview        func(review *data.Review) error
	deleteReview        func(reviewID int64, userID int64) error
	reviewExistsForUser func(bookID int64, userID int64) (bool, error)
	getBookReviews      func(bookID int64, filters data.Filters) ([]data.ReviewSummary, error)
	registerUser        func(user *data.User) error
	getUserByEmail      func(email string) (*data.User, error)
}

func (m *mockRepo) CreateBook(book *data.Book) error { return m.createBook(book) }
func (m *mockRepo) GetBook(bookID int64) (*data.Book, error) {
	return m.getBook(bookID)
}
func (m *mockRepo) GetAllBooks(criteria data.BookCriteria) ([]*data.Book, error) {
	return m.getAllBooks(criteria)
}
func (m *mockRepo) UpdateBookCover(bookID int64, coverPath string) error {
	return m.updateBookCover(bookID, coverPath)
}
func (m *mockRepo) CreateReview(review *data.Review) error { return m.createReview(review) }
func (m *mockRepo) GetReviewForUser(reviewID int64, userID int64) (*data.Review, error) {
	return m.getReviewForUser(reviewID, userID)
}
func (m *mockRepo) UpdateReview(review *data.Review) error { return m.updateReview(review) }
func (m *mockRepo) DeleteReview(reviewID int64, userID int64) error {
	return m.deleteReview(reviewID, userID)
}
func (m *mockRepo) ReviewExistsForUser(bookID int64, userID int64) (bool, error) {
	return m.reviewExistsForUser(bookID, userID)
}
func (m *mockRepo) GetBookReviews(bookID int64, filters data.Filters) ([]data.ReviewSummary, error) {
	return m.getBookReviews(bookID, filters)
}
func (m *mockRepo) RegisterUser(user *data.User) error { return m.registerUser(user) }
func (m *mockRepo) GetUserByEmail(email string) (*data.User, error) {
	return m.getUserByEmail(email)
}

func newTestService(t *testing.T, repo repository.Repository) *service {
	t.Helper()
	var cfg config.Config
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = "30m"
	var wg sync.WaitGroup
	logger := jsonlog.New(io.Discard, jsonlog.LevelFatal)
	return New(cfg, &wg, logger, repo)
}

func TestAddReviewRejectsSecondReviewFromSameUser(t *testing.T) {
	created := false
	repo := &mockRepo{
		getBook: func(bookID int64) (*data.Book, error) {
			return &data.Book{ID: bookID, Title: "Dune"}, nil
		},
		reviewExistsForUser: func(bookID int64, userID int64) (bool, error) {
			return true, nil
		},
		createReview: func(review *data.Review) error {
			created = true
			return nil
		},
	}
	s := newTestService(t, repo)

	_, err := s.AddReview(1, 7, 5, "a classic")
	assert.ErrorIs(t, err, ErrDuplicateRecord)
	assert.False(t, created, "no insert should be attempted once a review exists")
}

func TestAddReviewConstraintBackstop(t *testing.T) {
	// The existence check passes but a concurrent insert wins the race, so
	// the repository reports the unique constraint violation.
	repo := &mockRepo{
		getBook: func(bookID int64) (*data.Book, error) {
			return &data.Book{ID: bookID, Title: "Dune"}, nil
		},
		reviewExistsForUser: func(bookID int64, userID int64) (bool, error) {
			return false, nil
		},
		createReview: func(review *data.Review) error {
			return repository.ErrDuplicateRecord
		},
	}
	s := newTestService(t, repo)

	_, err := s.AddReview(1, 7, 5, "a classic")
	assert.ErrorIs(t, err, ErrDuplicateRecord)
}

func TestAddReviewUnknownBook(t *testing.T) {
	repo := &mockRepo{
		getBook: func(bookID int64) (*data.Book, error) {
			return nil, repository.ErrRecordNotFound
		},
	}
	s := newTestService(t, repo)

	_, err := s.AddReview(42, 7, 3, "fine")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestAddReviewValidatesRating(t *testing.T) {
	s := newTestService(t, &mockRepo{})

	_, err := s.AddReview(1, 7, 6, "too enthusiastic")
	assert.ErrorIs(t, err, ErrFailedValidation)
}

func TestValidationErrorCarriesEveryField(t *testing.T) {
	s := newTestService(t, &mockRepo{})

	// Rating out of range and empty review text must both be reported.
	_, err := s.AddReview(1, 7, 9, "")
	require.ErrorIs(t, err, ErrFailedValidation)

	var validationError *ValidationError
	require.ErrorAs(t, err, &validationError)
	assert.Contains(t, validationError.Fields, "rating")
	assert.Contains(t, validationError.Fields, "review")
	assert.Contains(t, err.Error(), `"rating"`)
	assert.Contains(t, err.Error(), `"review"`)
}

func TestListBookReviewsRejectsUnsafeSortBeforeQuerying(t *testing.T) {
	queried := false
	repo := &mockRepo{
		getBookReviews: func(bookID int64, filters data.Filters) ([]data.ReviewSummary, error) {
			queried = true
			return nil, nil
		},
	}
	s := newTestService(t, repo)

	filters := data.Filters{Page: 1, Sort: "nope", SortSafeList: []string{"id"}}
	_, err := s.ListBookReviews(1, filters)
	assert.ErrorIs(t, err, ErrFailedValidation)
	assert.False(t, queried, "storage must not be touched when the filters are invalid")
}

func TestGetBookWithoutReviews(t *testing.T) {
	repo := &mockRepo{
		getBook: func(bookID int64) (*data.Book, error) {
			return &data.Book{ID: bookID, Title: "Dune", Reviews: []data.ReviewSummary{}}, nil
		},
		getBookReviews: func(bookID int64, filters data.Filters) ([]data.ReviewSummary, error) {
			return nil, repository.ErrRecordNotFound
		},
	}
	s := newTestService(t, repo)

	book, err := s.GetBook(1, 1)
	require.NoError(t, err)
	assert.NotNil(t, book.Reviews)
	assert.Empty(t, book.Reviews)
	assert.Nil(t, book.Rating)
}

func TestGetBookComposesReviewPage(t *testing.T) {
	alice := "alice"
	repo := &mockRepo{
		getBook: func(bookID int64) (*data.Book, error) {
			rating := 4.5
			return &data.Book{ID: bookID, Title: "Dune", Rating: &rating}, nil
		},
		getBookReviews: func(bookID int64, filters data.Filters) ([]data.ReviewSummary, error) {
			assert.Equal(t, 2, filters.Page)
			return []data.ReviewSummary{{ID: 11, Review: "great", Username: &alice}}, nil
		},
	}
	s := newTestService(t, repo)

	book, err := s.GetBook(1, 2)
	require.NoError(t, err)
	require.Len(t, book.Reviews, 1)
	assert.Equal(t, "great", book.Reviews[0].Review)
}

func TestListBookReviewsEmptyPageIsNotFound(t *testing.T) {
	repo := &mockRepo{
		getBookReviews: func(bookID int64, filters data.Filters) ([]data.ReviewSummary, error) {
			return nil, repository.ErrRecordNotFound
		},
	}
	s := newTestService(t, repo)

	_, err := s.ListBookReviews(1, data.Filters{Page: 99})
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestListBooksEmptyResultIsSuccess(t *testing.T) {
	repo := &mockRepo{
		getAllBooks: func(criteria data.BookCriteria) ([]*data.Book, error) {
			return []*data.Book{}, nil
		},
	}
	s := newTestService(t, repo)

	books, err := s.ListBooks(data.BookCriteria{Filters: data.Filters{Page: 1}})
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestCreateAuthenticationToken(t *testing.T) {
	user := &data.User{ID: 7, Username: "alice", Email: "alice@example.com"}
	err := user.Password.Set("pa55word")
	require.NoError(t, err)
	repo := &mockRepo{
		getUserByEmail: func(email string) (*data.User, error) {
			if email != user.Email {
				return nil, repository.ErrRecordNotFound
			}
			return user, nil
		},
	}
	s := newTestService(t, repo)

	t.Run("valid credentials", func(t *testing.T) {
		jwt, err := s.CreateAuthenticationToken("alice@example.com", "pa55word")
		require.NoError(t, err)
		claims, err := token.Parse("test-secret", jwt)
		require.NoError(t, err)
		assert.Equal(t, int64(7), claims.UserID)
		assert.Equal(t, "alice@example.com", claims.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := s.CreateAuthenticationToken("alice@example.com", "not-the-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := s.CreateAuthenticationToken("bob@example.com", "pa55word")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	repo := &mockRepo{
		registerUser: func(user *data.User) error {
			return repository.ErrDuplicateRecord
		},
	}
	s := newTestService(t, repo)

	_, err := s.RegisterUser("alice", "alice@example.com", "pa55word")
	assert.ErrorIs(t, err, ErrFailedValidation)
}
