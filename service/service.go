package service

import (
	"sync"

	"github.com/minato369/bookstack/config"
	"github.com/minato369/bookstack/internal/jsonlog"
	"github.com/minato369/bookstack/repository"
)

type Service interface {
	books
	reviews
	users
	tokens
}

// service defines the business logic layer.
type service struct {
	config config.Config
	wg     *sync.WaitGroup
	logger *jsonlog.Logger
	repo   repository.Repository
}

// New creates a new instance of Service. The wait group is shared with the
// server so that graceful shutdown waits for background tasks.
func New(cfg config.Config, wg *sync.WaitGroup, logger *jsonlog.Logger, repo repository.Repository) *service {
	return &service{
		config: cfg,
		wg:     wg,
		logger: logger,
		repo:   repo,
	}
}
