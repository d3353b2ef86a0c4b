package store

import (
	"context"

	"github.com/itsarev/bitquest-server/models"
)

// PlayerRepository is the persistence contract for player accounts.
// All write methods that target a username or id return
// [ErrNoPlayerWasFound] when no row matches.
type PlayerRepository interface {
	CreatePlayer(ctx context.Context, player models.Player) (models.Player, error)
	FindPlayerByUsername(ctx context.Context, username string) (models.Player, error)
	FindPlayerByID(ctx context.Context, id int64) (models.Player, error)
	ListPlayers(ctx context.Context) ([]models.Player, error)
	UpdateProfile(ctx context.Context, id int64, update models.ProfileUpdate) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	DeletePlayer(ctx context.Context, id int64) error
	ApplyReward(ctx context.Context, username string, points, coins int64) (models.Player, error)
	SetCoins(ctx context.Context, username string, coins int64) error
	UpdateProgress(ctx context.Context, username string, coins int64, unlockedLevels string, progress *string) error
	UpdateMilestones(ctx context.Context, username string, update models.MilestoneUpdate) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implementations inspect driver-level error codes.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
