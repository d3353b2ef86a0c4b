package service

import (
	"context"
	"fmt"

	"github.com/itsarev/bitquest-server/internal/logger"
	"github.com/itsarev/bitquest-server/internal/store"
	"github.com/itsarev/bitquest-server/internal/validators"
	"github.com/itsarev/bitquest-server/models"
)

// playerService is the concrete implementation of PlayerService. It validates
// request-level preconditions and delegates persistence to a PlayerRepository;
// business invariants that need atomicity (the reward balance floor) live in
// the repository transaction.
type playerService struct {
	playerRepository store.PlayerRepository
	validator        validators.Validator
	logger           *logger.Logger
}

// NewPlayerService constructs a PlayerService over the given repository and
// request validator.
func NewPlayerService(playerRepository store.PlayerRepository, validator validators.Validator, logger *logger.Logger) PlayerService {
	return &playerService{
		playerRepository: playerRepository,
		validator:        validator,
		logger:           logger,
	}
}

// GetPlayerByUsername returns the full player record, stored password hash
// included. Exposure policy is decided by the handlers.
func (p *playerService) GetPlayerByUsername(ctx context.Context, username string) (models.Player, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		return models.Player{}, ErrMissingField
	}

	found, err := p.playerRepository.FindPlayerByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("player search by username failed")
		return models.Player{}, fmt.Errorf("player search by username failed: %w", err)
	}

	return found, nil
}

// GetPlayerByID returns the full player record for an internal id. Used to
// materialize the authenticated player from a session identity.
func (p *playerService) GetPlayerByID(ctx context.Context, id int64) (models.Player, error) {
	log := logger.FromContext(ctx)

	found, err := p.playerRepository.FindPlayerByID(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("player search by id failed")
		return models.Player{}, fmt.Errorf("player search by id failed: %w", err)
	}

	return found, nil
}

// ListPlayers returns every player record ordered by id.
func (p *playerService) ListPlayers(ctx context.Context) ([]models.Player, error) {
	log := logger.FromContext(ctx)

	players, err := p.playerRepository.ListPlayers(ctx)
	if err != nil {
		log.Err(err).Msg("player listing failed")
		return nil, fmt.Errorf("player listing failed: %w", err)
	}

	return players, nil
}

// UpdateProfile applies a partial update of the mutable profile fields.
// An empty update succeeds without touching storage.
func (p *playerService) UpdateProfile(ctx context.Context, id int64, update models.ProfileUpdate) error {
	log := logger.FromContext(ctx)

	if err := p.playerRepository.UpdateProfile(ctx, id, update); err != nil {
		log.Err(err).Int64("id", id).Msg("profile update ended with error")
		return fmt.Errorf("profile update ended with error: %w", err)
	}

	return nil
}

// DeleteAccount permanently removes the player record. Session termination
// is the caller's responsibility; the handler destroys all sessions bound to
// the deleted account.
func (p *playerService) DeleteAccount(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := p.playerRepository.DeletePlayer(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("account deletion ended with error")
		return fmt.Errorf("account deletion ended with error: %w", err)
	}

	return nil
}

// Reward applies point and coin deltas atomically. A negative coin delta
// that would take the balance below zero surfaces as
// store.ErrInsufficientCoins and leaves the balance untouched.
func (p *playerService) Reward(ctx context.Context, req models.RewardRequest) (models.Player, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, req); err != nil {
		return models.Player{}, err
	}

	updated, err := p.playerRepository.ApplyReward(ctx, req.Username, req.Points, req.Coins)
	if err != nil {
		log.Err(err).Str("username", req.Username).
			Int64("points", req.Points).Int64("coins", req.Coins).
			Msg("reward ended with error")
		return models.Player{}, fmt.Errorf("reward ended with error: %w", err)
	}

	return updated, nil
}

// SetCoins overwrites the coin balance with an absolute value. Unlike the
// reward path this performs no floor check, so negative balances can be
// written here.
func (p *playerService) SetCoins(ctx context.Context, req models.UpdateCoinsRequest) error {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, req); err != nil {
		return err
	}

	if err := p.playerRepository.SetCoins(ctx, req.Username, req.Coins); err != nil {
		log.Err(err).Str("username", req.Username).Int64("coins", req.Coins).Msg("coin update ended with error")
		return fmt.Errorf("coin update ended with error: %w", err)
	}

	return nil
}

// SaveProgress persists a progress save: absolute coins, the serialized
// unlocked-levels value and, when the client sent one, the opaque progress
// blob. UnlockedLevels is stored exactly as received.
func (p *playerService) SaveProgress(ctx context.Context, req models.UpdateProgressRequest) error {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, req); err != nil {
		return err
	}

	unlockedLevels := "[]"
	if len(req.UnlockedLevels) > 0 {
		unlockedLevels = string(req.UnlockedLevels)
	}

	if err := p.playerRepository.UpdateProgress(ctx, req.Username, req.Coins, unlockedLevels, req.Progress); err != nil {
		log.Err(err).Str("username", req.Username).Msg("progress update ended with error")
		return fmt.Errorf("progress update ended with error: %w", err)
	}

	return nil
}

// SetMilestones applies a partial update of the milestone flags.
func (p *playerService) SetMilestones(ctx context.Context, req models.UpdateMilestonesRequest) error {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, req); err != nil {
		return err
	}

	if err := p.playerRepository.UpdateMilestones(ctx, req.Username, req.MilestoneUpdate); err != nil {
		log.Err(err).Str("username", req.Username).Msg("milestone update ended with error")
		return fmt.Errorf("milestone update ended with error: %w", err)
	}

	return nil
}
