package handler

import (
	"expvar"
	"net/http"

	"github.com/julienschmidt/httprouter"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func (h *Handler) Routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(h.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(h.methodNotAllowed)

	router.HandlerFunc(http.MethodGet, "/v1/books", h.authenticate(h.listBooksHandler))
	router.HandlerFunc(http.MethodPost, "/v1/books", h.authenticate(h.createBookHandler))
	router.HandlerFunc(http.MethodGet, "/v1/search", h.authenticate(h.searchBooksHandler))
	router.HandlerFunc(http.MethodGet, "/v1/books/:bookId", h.authenticate(h.showBookHandler))
	router.HandlerFunc(http.MethodPatch, "/v1/books/:bookId/cover", h.authenticate(h.updateBookCoverHandler))

	router.HandlerFunc(http.MethodGet, "/v1/books/:bookId/reviews", h.authenticate(h.listBookReviewsHandler))
	router.HandlerFunc(http.MethodPost, "/v1/books/:bookId/reviews", h.authenticate(h.createReviewHandler))
	router.HandlerFunc(http.MethodPut, "/v1/reviews/:reviewId", h.authenticate(h.updateReviewHandler))
	router.HandlerFunc(http.MethodDelete, "/v1/reviews/:reviewId", h.authenticate(h.deleteReviewHandler))

	router.HandlerFunc(http.MethodPost, "/v1/users", h.registerUserHandler)
	router.HandlerFunc(http.MethodPost, "/v1/tokens/authentication", h.createAuthenticationTokenHandler)

	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", h.healthcheckHandler)
	router.HandlerFunc(http.MethodGet, "/debug/vars", h.basicAuth(expvar.Handler().ServeHTTP))

	// Swagger routes
	router.HandlerFunc(http.MethodGet, "/spec", h.handleSwaggerFile())
	router.HandlerFunc(http.MethodGet, "/docs/*any", httpSwagger.Handler(httpSwagger.URL("/spec")))

	return h.recoverPanic(h.enableCORS(h.rateLimit(h.metrics(router))))
}
