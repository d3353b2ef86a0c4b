// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ilia Tsarev

// gamectl is a small operator tool for inspecting and adjusting player
// accounts on a running bitquest server.
//
// Usage:
//
//	gamectl [-server URL] [-timeout DURATION] <command> [arguments]
//
// Commands:
//
//	list                                     print every player row
//	get <username>                           print one player row
//	create <username> <password> [email]     register a new account
//	reward <username> <points> <coins>       apply point/coin deltas
//	set-coins <username> <coins>             overwrite a coin balance
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/itsarev/bitquest-server/internal/adapter"
	"github.com/itsarev/bitquest-server/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	var (
		serverURL = flag.String("server", "http://localhost:8080", "base URL of the game server")
		timeout   = flag.Duration("timeout", 15*time.Second, "request timeout")
		version   = flag.Bool("version", false, "print build info and exit")
	)
	flag.Usage = usage
	flag.Parse()

	if *version {
		printBuildInfo()
		return
	}

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	server := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: *serverURL,
		Timeout: *timeout,
	})

	ctx := context.Background()
	if err := run(ctx, server, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "gamectl: %s\n", describeError(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, server adapter.ServerAdapter, args []string) error {
	command, args := args[0], args[1:]

	switch command {
	case "list":
		players, err := server.ListPlayers(ctx)
		if err != nil {
			return err
		}
		return printJSON(players)

	case "get":
		if len(args) != 1 {
			return errors.New("usage: gamectl get <username>")
		}
		player, err := server.GetPlayer(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(player)

	case "create":
		if len(args) < 2 || len(args) > 3 {
			return errors.New("usage: gamectl create <username> <password> [email]")
		}
		req := models.CreatePlayerRequest{Username: args[0], Password: args[1]}
		if len(args) == 3 {
			req.Email = args[2]
		}
		player, err := server.CreatePlayer(ctx, req)
		if err != nil {
			return err
		}
		return printJSON(player)

	case "reward":
		if len(args) != 3 {
			return errors.New("usage: gamectl reward <username> <points> <coins>")
		}
		points, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid points %q: %w", args[1], err)
		}
		coins, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid coins %q: %w", args[2], err)
		}
		player, err := server.ApplyReward(ctx, models.RewardRequest{
			Username: args[0],
			Points:   points,
			Coins:    coins,
		})
		if err != nil {
			return err
		}
		return printJSON(player)

	case "set-coins":
		if len(args) != 2 {
			return errors.New("usage: gamectl set-coins <username> <coins>")
		}
		coins, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid coins %q: %w", args[1], err)
		}
		updated, err := server.SetCoins(ctx, models.UpdateCoinsRequest{
			Username: args[0],
			Coins:    coins,
		})
		if err != nil {
			return err
		}
		return printJSON(map[string]int64{"coins": updated})

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

// describeError turns adapter sentinel errors into short operator-facing
// messages; anything else is printed as-is.
func describeError(err error) string {
	switch {
	case errors.Is(err, adapter.ErrNotFound):
		return "player not found"
	case errors.Is(err, adapter.ErrConflict):
		return "username is already taken"
	case errors.Is(err, adapter.ErrInsufficientCoins):
		return "reward rejected: coin balance would go negative"
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Sprintf("server rejected the request: %s", err)
	case errors.Is(err, adapter.ErrUnauthorized):
		return "operation requires an authenticated session"
	default:
		return err.Error()
	}
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: gamectl [flags] <command> [arguments]

Commands:
  list                                     print every player row
  get <username>                           print one player row
  create <username> <password> [email]     register a new account
  reward <username> <points> <coins>       apply point/coin deltas
  set-coins <username> <coins>             overwrite a coin balance

Flags:
`)
	flag.PrintDefaults()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
