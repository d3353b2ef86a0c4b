package service

import (
	"github.com/itsarev/bitquest-server/internal/crypto"
	"github.com/itsarev/bitquest-server/internal/logger"
	"github.com/itsarev/bitquest-server/internal/store"
	"github.com/itsarev/bitquest-server/internal/validators"
)

// Services bundles every service the handler layer depends on.
type Services struct {
	AuthService   AuthService
	PlayerService PlayerService
}

// NewServices wires all services over the shared repositories, the request
// validator and the password hasher.
func NewServices(storages *store.Storages, hasher crypto.PasswordHasher, logger *logger.Logger) *Services {
	validator := validators.NewPlayerValidator()

	return &Services{
		AuthService:   NewAuthService(storages.PlayerRepository, validator, hasher, logger),
		PlayerService: NewPlayerService(storages.PlayerRepository, validator, logger),
	}
}
