package http

import (
	"github.com/itsarev/bitquest-server/internal/config"
	"github.com/itsarev/bitquest-server/internal/logger"
	"github.com/itsarev/bitquest-server/internal/service"
	"github.com/itsarev/bitquest-server/internal/session"
)

type Handler struct {
	services *service.Services
	sessions *session.Manager

	// staticDir is the filesystem root the client application is served from.
	staticDir string

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *session.Manager, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		sessions:  sessions,
		staticDir: cfg.StaticDir,
		logger:    logger,
	}
}
