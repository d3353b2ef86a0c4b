package store

import "github.com/itsarev/bitquest-server/internal/logger"

// Storages bundles every repository the service layer depends on.
type Storages struct {
	PlayerRepository PlayerRepository
}

// NewStorages wires all repositories over the shared database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		PlayerRepository: NewPlayerRepository(db, logger),
	}
}
