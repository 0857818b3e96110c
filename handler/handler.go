package handler

import (
	"github.com/jellydator/ttlcache/v3"
	"github.com/minato369/bookstack/config"
	"github.com/minato369/bookstack/internal/jsonlog"
	"github.com/minato369/bookstack/service"
	"golang.org/x/time/rate"
)

// Handler defines the handler layer.
type Handler struct {
	config   config.Config
	logger   *jsonlog.Logger
	limiters *ttlcache.Cache[string, *rate.Limiter]
	service  service.Service
}

// New creates a new instance of Handler. The cache holds one rate limiter per
// client IP and evicts idle entries on TTL expiry.
func New(cfg config.Config, logger *jsonlog.Logger, limiters *ttlcache.Cache[string, *rate.Limiter], service service.Service) *Handler {
	return &Handler{
		config:   cfg,
		logger:   logger,
		limiters: limiters,
		service:  service,
	}
}
