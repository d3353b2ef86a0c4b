package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itsarev/bitquest-server/internal/logger"
	"github.com/itsarev/bitquest-server/models"
	"github.com/jackc/pgerrcode"
)

// playerRepository is the PostgreSQL-backed implementation of [PlayerRepository].
// It handles player account creation, lookup and progress writes against the
// "players" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type playerRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPlayerRepository constructs a [PlayerRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewPlayerRepository(db *DB, logger *logger.Logger) PlayerRepository {
	logger.Debug().Msg("creating player repository")
	return &playerRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanPlayer.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanPlayer scans one full player row in [playerColumns] order.
func scanPlayer(row rowScanner, p *models.Player) error {
	return row.Scan(
		&p.ID, &p.Username, &p.Password, &p.Email, &p.DisplayName, &p.Theme, &p.Avatar,
		&p.Points, &p.Coins,
		&p.NetworkingCompleted, &p.ProgrammingCompleted, &p.SystemUnitCompleted,
		&p.NetworkingHardPerfect, &p.ProgrammingGameUnlocked,
		&p.Progress, &p.UnlockedLevels, &p.CreatedAt,
	)
}

// CreatePlayer persists a new player record and returns the fully populated
// [models.Player] with server-assigned fields (ID, defaults, CreatedAt).
//
// The INSERT uses the [createPlayer] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *playerRepository) CreatePlayer(ctx context.Context, player models.Player) (models.Player, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createPlayer, player.Username, player.Password, player.Email)

	// create player in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*playerRepository.CreatePlayer").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Player{}, ErrUsernameAlreadyExists
		default:
			return models.Player{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved player from db
	var saved models.Player
	if err := scanPlayer(row, &saved); err != nil {
		log.Err(err).Str("func", "*playerRepository.CreatePlayer").Msg("error: scanning error")
		return models.Player{}, err
	}

	return saved, nil
}

// FindPlayerByUsername retrieves the player record matching the given
// username.
//
// Error handling:
//   - Empty result set ([sql.ErrNoRows]) → [ErrNoPlayerWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *playerRepository) FindPlayerByUsername(ctx context.Context, username string) (models.Player, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findPlayerByUsername, username)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*playerRepository.FindPlayerByUsername").Msg("error: row is nil")
		return models.Player{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var found models.Player
	if err := scanPlayer(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Player{}, ErrNoPlayerWasFound
		}
		log.Err(err).Str("func", "*playerRepository.FindPlayerByUsername").Msg("error: scanning error")
		return models.Player{}, err
	}

	return found, nil
}

// FindPlayerByID retrieves the player record matching the given internal id.
// Used by the session middleware to resolve the authenticated player.
//
// Error handling mirrors [playerRepository.FindPlayerByUsername].
func (r *playerRepository) FindPlayerByID(ctx context.Context, id int64) (models.Player, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findPlayerByID, id)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*playerRepository.FindPlayerByID").Msg("error: row is nil")
		return models.Player{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var found models.Player
	if err := scanPlayer(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Player{}, ErrNoPlayerWasFound
		}
		log.Err(err).Str("func", "*playerRepository.FindPlayerByID").Msg("error: scanning error")
		return models.Player{}, err
	}

	return found, nil
}

// ListPlayers returns every player record ordered by id. The result includes
// the stored credential hashes; exposure policy is decided by the handlers.
func (r *playerRepository) ListPlayers(ctx context.Context) ([]models.Player, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listPlayers)
	if err != nil {
		log.Err(err).Str("func", "*playerRepository.ListPlayers").Msg("error: query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		var p models.Player
		if err = scanPlayer(rows, &p); err != nil {
			log.Err(err).Str("func", "*playerRepository.ListPlayers").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		players = append(players, p)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*playerRepository.ListPlayers").Msg("error: rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return players, nil
}

// UpdateProfile applies a partial update of the mutable profile fields.
// An empty update is a no-op and succeeds without touching the database.
//
// Error handling:
//   - Query construction failure → wrapped [ErrBuildingSQLQuery].
//   - Zero affected rows → [ErrNoPlayerWasFound].
func (r *playerRepository) UpdateProfile(ctx context.Context, id int64, update models.ProfileUpdate) error {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return nil
	}

	query, args, err := buildUpdateProfileQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "*playerRepository.UpdateProfile").Msg("error: building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execExpectingOneRow(ctx, "*playerRepository.UpdateProfile", query, args...)
}

// UpdatePassword replaces the stored credential hash for the given player.
func (r *playerRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return r.execExpectingOneRow(ctx, "*playerRepository.UpdatePassword", updatePassword, passwordHash, id)
}

// DeletePlayer permanently removes the player record.
func (r *playerRepository) DeletePlayer(ctx context.Context, id int64) error {
	return r.execExpectingOneRow(ctx, "*playerRepository.DeletePlayer", deletePlayer, id)
}

// SetCoins overwrites the coin balance with an absolute value. No floor
// check is applied here; the reward path is the one that enforces a
// non-negative balance.
func (r *playerRepository) SetCoins(ctx context.Context, username string, coins int64) error {
	return r.execExpectingOneRow(ctx, "*playerRepository.SetCoins", setCoins, coins, username)
}

// UpdateProgress persists a progress save: the absolute coin balance, the
// serialized unlocked-levels value and, when present, the opaque progress
// blob.
func (r *playerRepository) UpdateProgress(ctx context.Context, username string, coins int64, unlockedLevels string, progress *string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProgressQuery(username, coins, unlockedLevels, progress)
	if err != nil {
		log.Err(err).Str("func", "*playerRepository.UpdateProgress").Msg("error: building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execExpectingOneRow(ctx, "*playerRepository.UpdateProgress", query, args...)
}

// UpdateMilestones applies a partial update of the milestone flags.
// An empty update is a no-op and succeeds without touching the database.
func (r *playerRepository) UpdateMilestones(ctx context.Context, username string, update models.MilestoneUpdate) error {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return nil
	}

	query, args, err := buildUpdateMilestonesQuery(username, update)
	if err != nil {
		log.Err(err).Str("func", "*playerRepository.UpdateMilestones").Msg("error: building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execExpectingOneRow(ctx, "*playerRepository.UpdateMilestones", query, args...)
}

// ApplyReward atomically applies point and coin deltas to one player inside
// a transaction. The player row is locked with SELECT ... FOR UPDATE so
// concurrent rewards for the same player serialize, then the balance floor
// is checked before the UPDATE runs.
//
// Error handling:
//   - Unknown username → [ErrNoPlayerWasFound].
//   - Balance would go below zero → [ErrInsufficientCoins], nothing written.
//   - Transaction begin/commit failure → wrapped sentinel errors; transient
//     driver errors are logged as retryable via the error classifier.
func (r *playerRepository) ApplyReward(ctx context.Context, username string, points, coins int64) (models.Player, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*playerRepository.ApplyReward").Msg("error: beginning transaction")
		return models.Player{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() { _ = tx.Rollback() }()

	// lock the row and read the current balance
	var balance int64
	if err = tx.QueryRowContext(ctx, selectCoinsForUpdate, username).Scan(&balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Player{}, ErrNoPlayerWasFound
		}
		r.logClassified(log, "*playerRepository.ApplyReward", err)
		return models.Player{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if balance+coins < 0 {
		return models.Player{}, ErrInsufficientCoins
	}

	var updated models.Player
	if err = scanPlayer(tx.QueryRowContext(ctx, applyReward, points, coins, username), &updated); err != nil {
		r.logClassified(log, "*playerRepository.ApplyReward", err)
		return models.Player{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err = tx.Commit(); err != nil {
		r.logClassified(log, "*playerRepository.ApplyReward", err)
		return models.Player{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return updated, nil
}

// execExpectingOneRow runs a DML statement that must affect exactly one
// player row. Zero affected rows maps to [ErrNoPlayerWasFound].
func (r *playerRepository) execExpectingOneRow(ctx context.Context, funcName, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error: executing statement")
		r.logClassified(log, funcName, err)
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error: reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoPlayerWasFound
	}

	return nil
}

// logClassified emits a warning for driver errors the classifier considers
// transient, so operators can tell retry-worthy failures from permanent ones.
func (r *playerRepository) logClassified(log *logger.Logger, funcName string, err error) {
	if r.db.errorClassificator != nil && r.db.errorClassificator.Classify(err) == Retryable {
		log.Warn().Str("func", funcName).Err(err).Msg("transient database error, retry may succeed")
	}
}
