// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ilia Tsarev

package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/itsarev/bitquest-server/models"
)

// playerColumns is the canonical column order shared by every query that
// returns full player rows. Scan destinations in scanPlayer must match it.
const playerColumns = `id, username, password, email, display_name, theme, avatar,
    points, coins,
    networking_completed, programming_completed, systemunit_completed,
    networking_hard_perfect, programming_game_unlocked,
    progress, unlocked_levels, created_at`

const (
	createPlayer = `INSERT INTO players (username, password, email)
    VALUES ($1, $2, $3)
    RETURNING ` + playerColumns + `;`

	findPlayerByUsername = `SELECT ` + playerColumns + `
    FROM players
    WHERE username = $1;`

	findPlayerByID = `SELECT ` + playerColumns + `
    FROM players
    WHERE id = $1;`

	listPlayers = `SELECT ` + playerColumns + `
    FROM players
    ORDER BY id;`

	updatePassword = `UPDATE players
    SET password = $1
    WHERE id = $2;`

	deletePlayer = `DELETE FROM players
    WHERE id = $1;`

	setCoins = `UPDATE players
    SET coins = $1
    WHERE username = $2;`

	// selectCoinsForUpdate locks the player row for the duration of the
	// reward transaction so concurrent deltas serialize per player.
	selectCoinsForUpdate = `SELECT coins
    FROM players
    WHERE username = $1
    FOR UPDATE;`

	applyReward = `UPDATE players
    SET points = points + $1, coins = coins + $2
    WHERE username = $3
    RETURNING ` + playerColumns + `;`
)

// statementBuilder produces PostgreSQL-style ($1, $2, ...) placeholders for
// all dynamically assembled queries below.
var statementBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdateProfileQuery dynamically builds an UPDATE for the subset of
// profile fields present in the update. Callers must reject empty updates
// before calling; squirrel refuses an UPDATE with no SET clauses.
func buildUpdateProfileQuery(id int64, update models.ProfileUpdate) (string, []any, error) {
	builder := statementBuilder.Update("players")

	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.DisplayName != nil {
		builder = builder.Set("display_name", *update.DisplayName)
	}
	if update.Theme != nil {
		builder = builder.Set("theme", *update.Theme)
	}
	if update.Avatar != nil {
		builder = builder.Set("avatar", *update.Avatar)
	}

	return builder.Where(sq.Eq{"id": id}).ToSql()
}

// buildUpdateProgressQuery builds the progress-save UPDATE. Coins and the
// unlocked-levels blob are always written; the opaque progress blob only
// when the client sent one.
func buildUpdateProgressQuery(username string, coins int64, unlockedLevels string, progress *string) (string, []any, error) {
	builder := statementBuilder.Update("players").
		Set("coins", coins).
		Set("unlocked_levels", unlockedLevels)

	if progress != nil {
		builder = builder.Set("progress", *progress)
	}

	return builder.Where(sq.Eq{"username": username}).ToSql()
}

// buildUpdateMilestonesQuery builds an UPDATE for the subset of milestone
// flags present in the update. Callers must reject empty updates first.
func buildUpdateMilestonesQuery(username string, update models.MilestoneUpdate) (string, []any, error) {
	builder := statementBuilder.Update("players")

	if update.NetworkingCompleted != nil {
		builder = builder.Set("networking_completed", *update.NetworkingCompleted)
	}
	if update.ProgrammingCompleted != nil {
		builder = builder.Set("programming_completed", *update.ProgrammingCompleted)
	}
	if update.SystemUnitCompleted != nil {
		builder = builder.Set("systemunit_completed", *update.SystemUnitCompleted)
	}
	if update.NetworkingHardPerfect != nil {
		builder = builder.Set("networking_hard_perfect", *update.NetworkingHardPerfect)
	}
	if update.ProgrammingGameUnlocked != nil {
		builder = builder.Set("programming_game_unlocked", *update.ProgrammingGameUnlocked)
	}

	return builder.Where(sq.Eq{"username": username}).ToSql()
}
