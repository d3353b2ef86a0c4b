package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/itsarev/bitquest-server/internal/logger"
	"github.com/itsarev/bitquest-server/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestPlayerRepo(t *testing.T) (*playerRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &playerRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func playerColumnNames() []string {
	return []string{
		"id", "username", "password", "email", "display_name", "theme", "avatar",
		"points", "coins",
		"networking_completed", "programming_completed", "systemunit_completed",
		"networking_hard_perfect", "programming_game_unlocked",
		"progress", "unlocked_levels", "created_at",
	}
}

func playerRow(id int64, username, password string, points, coins int64) *sqlmock.Rows {
	return sqlmock.NewRows(playerColumnNames()).
		AddRow(id, username, password, "", "", "system", "",
			points, coins,
			false, false, false, false, false,
			"", "[]", time.Now())
}

func TestCreatePlayer_Success(t *testing.T) {
	repo, mock, db := newTestPlayerRepo(t)
	defer db.Close()

	ctx := context.Background()
	player := models.Player{
		Username: "alice",
		Password: "$2a$10$hash",
		Email:    "alice@example.com",
	}

	mock.ExpectQuery("INSERT INTO players").
		WithArgs(player.Username, player.Password, player.Email).
		WillReturnRows(playerRow(1, player.Username, player.Password, 0, 0))

	created, err := repo.CreatePlayer(ctx, player)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if created.Username != player.Username {
		t.Errorf("expected username %s, got %s", player.Username, created.Username)
	}
	if created.Theme != "system" {
		t.Errorf("expected default theme, got %q", created.Theme)
	}
}

func TestCreatePlayer_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestPlayerRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO players").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreatePlayer(ctx, models.Player{Username: "alice"})
	if !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}
}

func TestCreatePlayer_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestPlayerRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO players").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreatePlayer(ctx, models.Player{Username: "alice"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindPlayerByUsername_Success(t *testing.T) {
	repo, mock, db := newTestPlayerRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM players").
		WithArgs("alice").
		WillReturnRows(playerRow(7, "alice", "$2a$10$hash", 120, 35))

	found, err := repo.FindPlayerByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != 7 {
		t.Errorf("expected ID=7, got %d", found.ID)
	}
	if found.Coins != 35 {
		t.Errorf("expected coins=35, got %d", found.Coins)
	}
}

func TestFindPlayerByUsername_NotFound(t *testing.T) {
	repo, mock, db := newTestPlayerRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM players").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(playerColumnNames()))

	_, err := repo.FindPlayerByUsername(ctx, "ghost")
	if !errors.Is(err, ErrNoPlayerWasFound) {
		t.Fatalf("expected ErrNoPlayerWasFound, got %v", err)
	}
}

func TestFindPlayerByID_NotFound(t *testing.T) {
	repo, mock, db := newTestPlayerRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM players").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(playerColumnNames()))

	_, err := repo.FindPlayerByID(ctx, 404)
	if !errors.Is(err, ErrNoPlayerWasFound) {
		t.Fatalf("expected ErrNoPlayerWasFound, got %v", err)
	}
}

func TestListPlayers_Success(t *testing.T) {
	repo, mock, db := newTestPlayerRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := playerRow(1, "alice", "$2a$10$a", 10, 5).
		AddRow(2, "bob", "$2a$10$b", "", "", "dark", "",
			int64(20), int64(15),
			true, false, false, false, false,
			"", "[1,2]", time.Now())

	mock.ExpectQuery("SELECT (.+) FROM players").
		WillReturnRows(rows)

	players, err := repo.ListPlayers(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(players))
	}
	if players[1].Username != "bob" {
		t.Errorf("expected second player bob, got %s", players[1].Username)
	}
	if players[1].Password == "" {
		t.Error("list must retain the stored password hash")
	}
}

func TestListPlayers_Empty(t *testing.T) {
	repo, mock, db := newTestPlayerRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM players").
		WillReturnRows(sqlmock.NewRows(playerColumnNames()))

	players, err := repo.ListPlayers(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if players == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(players) != 0 {
		t.Fatalf("expected no players, got %d", len(players))
	}
}

func TestUpdateProfile_Success(t *testing.T) {
	repo, mock, db := newTestPlayerRepo(t)
	defer db.Close()

	ctx := context.Background()
	email := "new@example.com"
	theme := "dark"

	mock.ExpectExec("UPDATE players").
		WithArgs(email, theme, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateProfile(ctx, 7, models.ProfileUpdate{Email: &email, Theme: &theme})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateProfile_EmptyUpdateIsNoop(t *testing.T) {
	repo, mock, db := newTestPlayerRepo(t)
	defer db.Close()

	// no expectations set: an empty update must not touch the database
	err := repo.UpdateProfile(context.Background(), 7, models.ProfileUpdate{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected db interaction: %v", err)
	}
}

func TestUpdateProfile_NotFound(t *testing.T) {
	repo, mock, db := newTestPlayerRepo(t)
	defer db.Close()

	ctx := context.Background()
	email := "new@example.com"

	mock.ExpectExec("UPDATE players").
		WithArgs(email, int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateProfile(ctx, 404, models.ProfileUpdate{Email: &email})
	if !errors.Is(err, ErrNoPlayerWasFound) {
		t.Fatalf("expected ErrNoPlayerWasFound, got %v", err)
	}
}

func TestUpdatePassword_Success(t *testing.T) {
	repo, mock, db := newTestPlayerRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE players").
		WithArgs("$2a$10$newhash", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdatePassword(context.Background(), 7, "$2a$10$newhash"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeletePlayer_NotFound(t *testing.T) {
	repo, mock, db := newTestPlayerRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM players").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeletePlayer(context.Background(), 404)
	if !errors.Is(err, ErrNoPlayerWasFound) {
		t.Fatalf("expected ErrNoPlayerWasFound, got %v", err)
	}
}

func TestSetCoins_Success(t *testing.T) {
	repo, mock, db := newTestPlayerRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE players").
		WithArgs(int64(-50), "alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	// absolute coin writes carry no floor check, negative values go through
	if err := repo.SetCoins(context.Background(), "alice", -50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateProgress_WithProgressBlob(t *testing.T) {
	repo, mock, db := newTestPlayerRepo(t)
	defer db.Close()

	progress := `{"level":3}`

	mock.ExpectExec("UPDATE players").
		WithArgs(int64(40), "[1,2,3]", progress, "alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateProgress(context.Background(), "alice", 40, "[1,2,3]", &progress)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateProgress_NotFound(t *testing.T) {
	repo, mock, db := newTestPlayerRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE players").
		WithArgs(int64(40), "[]", "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateProgress(context.Background(), "ghost", 40, "[]", nil)
	if !errors.Is(err, ErrNoPlayerWasFound) {
		t.Fatalf("expected ErrNoPlayerWasFound, got %v", err)
	}
}

func TestUpdateMilestones_Success(t *testing.T) {
	repo, mock, db := newTestPlayerRepo(t)
	defer db.Close()

	done := true

	mock.ExpectExec("UPDATE players").
		WithArgs(done, "alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateMilestones(context.Background(), "alice", models.MilestoneUpdate{NetworkingCompleted: &done})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestApplyReward_Success(t *testing.T) {
	repo, mock, db := newTestPlayerRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT coins").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"coins"}).AddRow(int64(30)))
	mock.ExpectQuery("UPDATE players").
		WithArgs(int64(10), int64(-20), "alice").
		WillReturnRows(playerRow(7, "alice", "$2a$10$hash", 110, 10))
	mock.ExpectCommit()

	updated, err := repo.ApplyReward(context.Background(), "alice", 10, -20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Coins != 10 {
		t.Errorf("expected coins=10 after reward, got %d", updated.Coins)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestApplyReward_InsufficientCoins(t *testing.T) {
	repo, mock, db := newTestPlayerRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT coins").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"coins"}).AddRow(int64(5)))
	mock.ExpectRollback()

	_, err := repo.ApplyReward(context.Background(), "alice", 0, -20)
	if !errors.Is(err, ErrInsufficientCoins) {
		t.Fatalf("expected ErrInsufficientCoins, got %v", err)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestApplyReward_UnknownPlayer(t *testing.T) {
	repo, mock, db := newTestPlayerRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT coins").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"coins"}))
	mock.ExpectRollback()

	_, err := repo.ApplyReward(context.Background(), "ghost", 10, 10)
	if !errors.Is(err, ErrNoPlayerWasFound) {
		t.Fatalf("expected ErrNoPlayerWasFound, got %v", err)
	}
}

func TestApplyReward_BeginError(t *testing.T) {
	repo, mock, db := newTestPlayerRepo(t)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	_, err := repo.ApplyReward(context.Background(), "alice", 1, 1)
	if !errors.Is(err, ErrBeginningTransaction) {
		t.Fatalf("expected ErrBeginningTransaction, got %v", err)
	}
}

func TestApplyReward_CommitError(t *testing.T) {
	repo, mock, db := newTestPlayerRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT coins").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"coins"}).AddRow(int64(30)))
	mock.ExpectQuery("UPDATE players").
		WithArgs(int64(1), int64(1), "alice").
		WillReturnRows(playerRow(7, "alice", "$2a$10$hash", 1, 31))
	mock.ExpectCommit().WillReturnError(pgError(pgerrcode.SerializationFailure))

	_, err := repo.ApplyReward(context.Background(), "alice", 1, 1)
	if !errors.Is(err, ErrCommitingTransaction) {
		t.Fatalf("expected ErrCommitingTransaction, got %v", err)
	}
}
