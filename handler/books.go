package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/minato369/bookstack/data"
	"github.com/minato369/bookstack/data/dto"
	"github.com/minato369/bookstack/service"
)

// ListBooks godoc
// @Summary List books
// @Description This endpoint retrieves a paginated list of books filtered by exact title, author and genre
// @Tags books
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param title query string false "Exact book title"
// @Param author query string false "Exact book author"
// @Param genre query string false "Exact book genre"
// @Param page query int false "Page number"
// @Success 200 {array} data.Book
// @Failure 401
// @Failure 403
// @Failure 422
// @Failure 500
// @Router /v1/books [get]
func (h *Handler) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	criteria := data.BookCriteria{
		Title:  h.readString(qs, "title", ""),
		Author: h.readString(qs, "author", ""),
		Genre:  h.readString(qs, "genre", ""),
		Filters: data.Filters{
			Page:         h.readInt(qs, "page", 1),
			Sort:         h.readString(qs, "sort", ""),
			Order:        h.readString(qs, "order", ""),
			SortSafeList: []string{"id", "title", "author", "genre"},
		},
	}
	books, err := h.service.ListBooks(criteria)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"books": books}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// SearchBooks godoc
// @Summary Search books
// @Description This endpoint searches books by case-sensitive title or author prefix, optionally narrowed by exact genre
// @Tags books
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param title query string false "Book title prefix"
// @Param author query string false "Book author prefix"
// @Param genre query string false "Exact book genre"
// @Param page query int false "Page number"
// @Success 200 {array} data.Book
// @Failure 401
// @Failure 403
// @Failure 422
// @Failure 500
// @Router /v1/search [get]
func (h *Handler) searchBooksHandler(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	criteria := data.BookCriteria{
		Title:  h.readString(qs, "title", ""),
		Author: h.readString(qs, "author", ""),
		Genre:  h.readString(qs, "genre", ""),
		Search: true,
		Filters: data.Filters{
			Page:         h.readInt(qs, "page", 1),
			Sort:         h.readString(qs, "sort", ""),
			Order:        h.readString(qs, "order", ""),
			SortSafeList: []string{"id", "title", "author", "genre"},
		},
	}
	books, err := h.service.ListBooks(criteria)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"books": books}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// CreateBook godoc
// @Summary Create a new book
// @Description This endpoint creates a new book record
// @Tags books
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param body body dto.CreateBookRequestBody true "JSON payload required to create a book"
// @Success 201 {object} data.Book
// @Failure 400
// @Failure 401
// @Failure 403
// @Failure 422
// @Failure 500
// @Router /v1/books [post]
func (h *Handler) createBookHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateBookRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	book, err := h.service.CreateBook(requestBody.Title, requestBody.Author, requestBody.Genre)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/books/%d", book.ID))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"book": book}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ShowBook godoc
// @Summary Show details of a book
// @Description This endpoint shows a book together with its average rating and a page of its reviews
// @Tags books
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param bookId path int true "ID of book to show"
// @Param page query int false "Review page number"
// @Success 200 {object} data.Book
// @Failure 401
// @Failure 403
// @Failure 404
// @Failure 500
// @Router /v1/books/{bookId} [get]
func (h *Handler) showBookHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := h.readIDParam(r, "bookId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	page := h.readInt(r.URL.Query(), "page", 1)
	book, err := h.service.GetBook(bookID, page)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"book": book}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ListBookReviews godoc
// @Summary List reviews for a book
// @Description This endpoint retrieves a page of reviews for a book
// @Tags reviews
// @Accept  json
// @Produce json
// @Param token header string true "Bearer token"
// @Param bookId path int true "ID of book whose reviews to list"
// @Param page query int false "Page number"
// @Success 200 {array} data.ReviewSummary
// @Failure 401
// @Failure 403
// @Failure 404
// @Failure 500
// @Router /v1/books/{bookId}/reviews [get]
func (h *Handler) listBookReviewsHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := h.readIDParam(r, "bookId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	qs := r.URL.Query()
	filters := data.Filters{
		Page:         h.readInt(qs, "page", 1),
		Sort:         h.readString(qs, "sort", ""),
		Order:        h.readString(qs, "order", ""),
		SortSafeList: []string{"id", "rating", "review_date"},
	}
	reviews, err := h.service.ListBookReviews(bookID, filters)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"reviews": reviews}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// UpdateBookCover godoc
// @Summary Update a book's cover image
// @Description This endpoint uploads a cover image for a book to object storage
// @Tags books
// @Accept  mpfd
// @Produce json
// @Param token header string true "Bearer token"
// @Param bookId path int true "ID of book whose cover to update"
// @Param cover formData file true "Cover image file"
// @Success 200 {object} data.Book
// @Failure 400
// @Failure 401
// @Failure 403
// @Failure 404
// @Failure 413
// @Failure 415
// @Failure 500
// @Router /v1/books/{bookId}/cover [patch]
func (h *Handler) updateBookCoverHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := h.readIDParam(r, "bookId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	book, err := h.service.UpdateBookCover(bookID, r)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrBadRequest):
			h.badRequestResponse(w, r, errors.New("invalid multipart form data"))
		case errors.Is(err, service.ErrContentTooLarge):
			h.contentTooLargeResponse(w, r)
		case errors.Is(err, service.ErrUnsupportedMediaType):
			h.unsupportedMediaTypeResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"book": book}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
