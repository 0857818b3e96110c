package service

import (
	"errors"
	"strings"

	"github.com/minato369/bookstack/data"
	"github.com/minato369/bookstack/internal/mailer"
	"github.com/minato369/bookstack/internal/validator"
	"github.com/minato369/bookstack/repository"
)

type users interface {
	RegisterUser(username string, email string, password string) (*data.User, error)
}

// RegisterUser service registers a new user and sends a welcome email in the
// background.
func (s *service) RegisterUser(username string, email string, password string) (*data.User, error) {
	user := &data.User{
		Username: username,
		Email:    email,
	}
	err := user.Password.Set(password)
	if err != nil {
		return nil, err
	}
	v := validator.New()
	if data.ValidateUser(v, user); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err = s.repo.RegisterUser(user)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRecord):
			v.AddError("email", "a user with this email address already exists")
			return nil, s.failedValidation(v.Errors)
		default:
			return nil, err
		}
	}
	// Send welcome email in a background goroutine to speed up response time
	s.background(func() {
		data := map[string]string{
			"userName": strings.Split(user.Username, " ")[0],
		}
		mailer := mailer.New(s.config.SMTP.Host, s.config.SMTP.Port, s.config.SMTP.Username, s.config.SMTP.Password, s.config.SMTP.Sender)
		err := mailer.Send(user.Email, "user_welcome.tmpl", data)
		if err != nil {
			s.logger.PrintError(err, nil)
		}
	})
	return user, nil
}
