package service

import (
	"context"

	"github.com/itsarev/bitquest-server/models"
)

// AuthService covers the credential-bearing operations: registration, login
// verification and password rotation.
type AuthService interface {
	RegisterPlayer(ctx context.Context, req models.CreatePlayerRequest) (models.Player, error)
	Login(ctx context.Context, req models.LoginRequest) (models.Player, error)
	ChangePassword(ctx context.Context, playerID int64, currentPassword, newPassword string) error
}

// PlayerService covers account reads and all non-credential mutations.
type PlayerService interface {
	GetPlayerByUsername(ctx context.Context, username string) (models.Player, error)
	GetPlayerByID(ctx context.Context, id int64) (models.Player, error)
	ListPlayers(ctx context.Context) ([]models.Player, error)
	UpdateProfile(ctx context.Context, id int64, update models.ProfileUpdate) error
	DeleteAccount(ctx context.Context, id int64) error
	Reward(ctx context.Context, req models.RewardRequest) (models.Player, error)
	SetCoins(ctx context.Context, req models.UpdateCoinsRequest) error
	SaveProgress(ctx context.Context, req models.UpdateProgressRequest) error
	SetMilestones(ctx context.Context, req models.UpdateMilestonesRequest) error
}
