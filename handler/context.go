package handler

import (
	"context"
	"net/http"

	"github.com/minato369/bookstack/data"
)

// Type contextKey is a custom contextKey type, with the underlying type string.
// This is necessary to prevent name collisions with external packages.
type contextKey string

const identityContextKey = contextKey("identity")

// contextSetIdentity returns a new copy of the request with the authenticated
// caller's identity added to the context.
func (h *Handler) contextSetIdentity(r *http.Request, identity data.Identity) *http.Request {
	ctx := context.WithValue(r.Context(), identityContextKey, identity)
	return r.WithContext(ctx)
}

// contextGetIdentity retrieves the caller's identity from the request context.
// It is only called from handlers behind the authenticate middleware, so a
// missing value is firmly an 'unexpected' error.
func (h *Handler) contextGetIdentity(r *http.Request) data.Identity {
	identity, ok := r.Context().Value(identityContextKey).(data.Identity)
	if !ok {
		panic("missing identity value in request context")
	}
	return identity
}
