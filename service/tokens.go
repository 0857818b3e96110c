package service

import (
	"errors"
	"time"

	"github.com/minato369/bookstack/data"
	"github.com/minato369/bookstack/internal/token"
	"github.com/minato369/bookstack/internal/validator"
	"github.com/minato369/bookstack/repository"
)

type tokens interface {
	CreateAuthenticationToken(email string, password string) (string, error)
}

// CreateAuthenticationToken service checks a user's credentials and issues a
// signed JWT on success.
func (s *service) CreateAuthenticationToken(email string, password string) (string, error) {
	v := validator.New()
	data.ValidateEmail(v, email)
	data.ValidatePasswordPlaintext(v, password)
	if !v.Valid() {
		return "", s.failedValidation(v.Errors)
	}
	user, err := s.repo.GetUserByEmail(email)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return "", ErrInvalidCredentials
		default:
			return "", err
		}
	}
	match, err := user.Password.Matches(password)
	if err != nil {
		return "", err
	}
	if !match {
		return "", ErrInvalidCredentials
	}
	ttl, err := time.ParseDuration(s.config.JWT.TTL)
	if err != nil {
		ttl = 30 * time.Minute
	}
	jwt, err := token.New(s.config.JWT.Secret, user.ID, user.Email, ttl)
	if err != nil {
		return "", err
	}
	return jwt, nil
}
