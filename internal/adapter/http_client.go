package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/itsarev/bitquest-server/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) CreatePlayer(ctx context.Context, req models.CreatePlayerRequest) (models.Player, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/create-player")
	if err != nil {
		return models.Player{}, fmt.Errorf("create-player request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.Player{}, err
	}

	var body models.SuccessResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.Player{}, fmt.Errorf("create-player decode response: %w", err)
	}
	if body.Player == nil {
		return models.Player{}, fmt.Errorf("create-player response without player")
	}

	return *body.Player, nil
}

func (h *httpServerAdapter) ListPlayers(ctx context.Context) ([]models.Player, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/get-players")
	if err != nil {
		return nil, fmt.Errorf("list-players request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	var players []models.Player
	if err = json.Unmarshal(resp.Body(), &players); err != nil {
		return nil, fmt.Errorf("list-players decode response: %w", err)
	}

	return players, nil
}

func (h *httpServerAdapter) GetPlayer(ctx context.Context, username string) (models.Player, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/player/" + username)
	if err != nil {
		return models.Player{}, fmt.Errorf("get-player request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.Player{}, err
	}

	var body models.SuccessResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.Player{}, fmt.Errorf("get-player decode response: %w", err)
	}
	if body.Player == nil {
		return models.Player{}, fmt.Errorf("get-player response without player")
	}

	return *body.Player, nil
}

func (h *httpServerAdapter) ApplyReward(ctx context.Context, req models.RewardRequest) (models.Player, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/reward")
	if err != nil {
		return models.Player{}, fmt.Errorf("reward request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.Player{}, err
	}

	var body models.SuccessResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.Player{}, fmt.Errorf("reward decode response: %w", err)
	}
	if body.Player == nil {
		return models.Player{}, fmt.Errorf("reward response without player")
	}

	return *body.Player, nil
}

func (h *httpServerAdapter) SetCoins(ctx context.Context, req models.UpdateCoinsRequest) (int64, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/update-coins")
	if err != nil {
		return 0, fmt.Errorf("update-coins request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return 0, err
	}

	var body models.SuccessResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return 0, fmt.Errorf("update-coins decode response: %w", err)
	}
	if body.Coins == nil {
		return 0, fmt.Errorf("update-coins response without coins")
	}

	return *body.Coins, nil
}

// mapAPIError converts a non-2xx response into one of the package's sentinel
// errors, preferring the error kind from the server's JSON envelope over the
// raw HTTP status.
func mapAPIError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var envelope models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Error != "" {
		switch envelope.Error {
		case "MissingField":
			return fmt.Errorf("%w: %s", ErrBadRequest, envelope.Message)
		case "Conflict":
			return fmt.Errorf("%w: %s", ErrConflict, envelope.Message)
		case "NotFound":
			return fmt.Errorf("%w: %s", ErrNotFound, envelope.Message)
		case "InvalidCredential", "Unauthenticated":
			return fmt.Errorf("%w: %s", ErrUnauthorized, envelope.Message)
		case "InsufficientCoins":
			return fmt.Errorf("%w: %s", ErrInsufficientCoins, envelope.Message)
		case "Internal":
			return fmt.Errorf("%w: %s", ErrInternalServerError, envelope.Message)
		}
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
