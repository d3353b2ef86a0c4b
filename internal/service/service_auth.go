package service

import (
	"context"
	"fmt"

	"github.com/itsarev/bitquest-server/internal/crypto"
	"github.com/itsarev/bitquest-server/internal/logger"
	"github.com/itsarev/bitquest-server/internal/store"
	"github.com/itsarev/bitquest-server/internal/validators"
	"github.com/itsarev/bitquest-server/models"
)

// authService is the concrete implementation of AuthService.
// It handles player registration, credential verification and password
// rotation using a PlayerRepository for persistence and bcrypt (via
// [crypto.PasswordHasher]) for password hashing.
type authService struct {
	// playerRepository is the data-access layer used to create and look up players.
	playerRepository store.PlayerRepository

	// validator enforces request-level field presence before any work is done.
	validator validators.Validator

	// hasher hashes new passwords and verifies supplied ones against the
	// stored bcrypt hashes.
	hasher crypto.PasswordHasher

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// PlayerRepository, request validator and password hasher.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(playerRepository store.PlayerRepository, validator validators.Validator, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		playerRepository: playerRepository,
		validator:        validator,
		hasher:           hasher,
		logger:           logger,
	}
}

// RegisterPlayer creates a new player account.
//
// It validates that both Username and Password are non-empty, hashes the
// password, and delegates persistence to the PlayerRepository. The plaintext
// password never reaches the storage layer.
//
// Returns the persisted player (with server-assigned ID and defaults) or:
//   - ErrMissingField if Username or Password is empty.
//   - A wrapped storage error if the repository call fails (e.g. username
//     already taken — see store.ErrUsernameAlreadyExists).
func (a *authService) RegisterPlayer(ctx context.Context, req models.CreatePlayerRequest) (models.Player, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("invalid registration request")
		return models.Player{}, err
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("password hashing failed")
		return models.Player{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registered, err := a.playerRepository.CreatePlayer(ctx, models.Player{
		Username: req.Username,
		Password: hash,
		Email:    req.Email,
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("player creation ended with error")
		return models.Player{}, fmt.Errorf("player creation ended with error: %w", err)
	}

	return registered, nil
}

// Login authenticates an existing player.
//
// It validates that both Username and Password are non-empty, looks up the
// account by username, and verifies the supplied password against the stored
// hash.
//
// Returns the authenticated player record or:
//   - ErrMissingField if Username or Password is empty.
//   - A wrapped storage error if the lookup fails (unknown username surfaces
//     as store.ErrNoPlayerWasFound so handlers can answer not-found).
//   - ErrWrongPassword if the password does not verify.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Player, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("invalid login request")
		return models.Player{}, err
	}

	found, err := a.playerRepository.FindPlayerByUsername(ctx, req.Username)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("player search by username failed")
		return models.Player{}, fmt.Errorf("player search by username failed: %w", err)
	}

	ok, err := a.hasher.Verify(req.Password, found.Password)
	if err != nil {
		log.Err(err).Int64("id", found.ID).Str("username", found.Username).Msg("password verification failed")
		return models.Player{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Warn().Int64("id", found.ID).Str("username", found.Username).Msg("wrong password")
		return models.Player{}, ErrWrongPassword
	}

	return found, nil
}

// ChangePassword rotates the credential of an authenticated player.
//
// The current password must verify against the stored hash before the new
// one is hashed and written.
//
// Returns nil on success or:
//   - ErrMissingField if either password is empty.
//   - A wrapped storage error if the player lookup or the write fails.
//   - ErrWrongPassword if the current password does not verify.
func (a *authService) ChangePassword(ctx context.Context, playerID int64, currentPassword, newPassword string) error {
	log := logger.FromContext(ctx)

	err := a.validator.Validate(ctx, models.ChangePasswordRequest{
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
	})
	if err != nil {
		log.Error().Err(err).Int64("id", playerID).Msg("invalid password change request")
		return err
	}

	found, err := a.playerRepository.FindPlayerByID(ctx, playerID)
	if err != nil {
		log.Err(err).Int64("id", playerID).Msg("player search by id failed")
		return fmt.Errorf("player search by id failed: %w", err)
	}

	ok, err := a.hasher.Verify(currentPassword, found.Password)
	if err != nil {
		log.Err(err).Int64("id", playerID).Msg("password verification failed")
		return fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Warn().Int64("id", playerID).Msg("wrong current password")
		return ErrWrongPassword
	}

	hash, err := a.hasher.Hash(newPassword)
	if err != nil {
		log.Err(err).Int64("id", playerID).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err = a.playerRepository.UpdatePassword(ctx, playerID, hash); err != nil {
		log.Err(err).Int64("id", playerID).Msg("password update ended with error")
		return fmt.Errorf("password update ended with error: %w", err)
	}

	return nil
}
