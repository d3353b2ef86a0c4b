package handler

import (
	"github.com/itsarev/bitquest-server/internal/config"
	"github.com/itsarev/bitquest-server/internal/handler/http"
	"github.com/itsarev/bitquest-server/internal/logger"
	"github.com/itsarev/bitquest-server/internal/service"
	"github.com/itsarev/bitquest-server/internal/session"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, sessions *session.Manager, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, sessions, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
