// Package remote is the HTTP client of the places service.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"placebook/config"
	"placebook/internal/domain/entity"
	domainerrors "placebook/internal/domain/errors"
	"placebook/internal/domain/repository"

	"github.com/pkg/errors"
)

// maxBodySize caps how much of a response is read.
const maxBodySize = 4 << 20

// Client implements repository.PlaceRemote over HTTP+JSON
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a places service client from config
func NewClient(cfg *config.Config, logger *slog.Logger) repository.PlaceRemote {
	cfg.ApplyDefaults()

	return New(cfg.API.BaseURL, &http.Client{Timeout: cfg.API.Timeout}, logger)
}

// New creates a client for baseURL using httpClient, which tests point at httptest servers
func New(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// ListPlaces fetches GET /places
func (c *Client) ListPlaces(ctx context.Context) ([]repository.PlaceRecord, error) {
	payload, err := c.do(ctx, http.MethodGet, "/places", "", nil, domainerrors.ErrFetch)
	if err != nil {
		return nil, err
	}

	var wires []PlaceWire
	if trimmed := bytes.TrimSpace(payload); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &wires); err != nil {
			return nil, decodeError(domainerrors.ErrFetch, err)
		}
	} else {
		var body placeListBody
		if err := json.Unmarshal(payload, &body); err != nil {
			return nil, decodeError(domainerrors.ErrFetch, err)
		}
		// A 2xx that is not a success must not pass for an empty list.
		if body.Status != "" && body.Status != domainerrors.StatusSuccess {
			return nil, domainerrors.NewRemoteError(
				domainerrors.ErrFetch,
				0,
				body.Message,
				errors.Errorf("list status %q", body.Status),
			)
		}
		wires = body.Data.Places
	}

	records := make([]repository.PlaceRecord, 0, len(wires))
	for _, w := range wires {
		records = append(records, w.Record())
	}

	return records, nil
}

// CreatePlace sends POST /places
func (c *Client) CreatePlace(ctx context.Context, input repository.PlaceInput) (repository.PlaceRecord, error) {
	payload, err := c.do(ctx, http.MethodPost, "/places", "", input, domainerrors.ErrCreate)
	if err != nil {
		return repository.PlaceRecord{}, err
	}

	return decodePlace(payload, domainerrors.ErrCreate)
}

// UpdatePlace sends PATCH /places/:id with the bearer token
func (c *Client) UpdatePlace(ctx context.Context, token, id string, changes repository.PlaceChanges) (repository.PlaceRecord, error) {
	payload, err := c.do(ctx, http.MethodPatch, placePath(id), token, changes, domainerrors.ErrUpdate)
	if err != nil {
		return repository.PlaceRecord{}, err
	}

	return decodePlace(payload, domainerrors.ErrUpdate)
}

// DeletePlace sends DELETE /places/:id with the bearer token
func (c *Client) DeletePlace(ctx context.Context, token, id string) error {
	_, err := c.do(ctx, http.MethodDelete, placePath(id), token, nil, domainerrors.ErrDelete)

	return err
}

// CurrentUser fetches GET /users/me
func (c *Client) CurrentUser(ctx context.Context, token string) (entity.User, error) {
	payload, err := c.do(ctx, http.MethodGet, "/users/me", token, nil, domainerrors.ErrUserFetch)
	if err != nil {
		return entity.User{}, err
	}

	var body userBody
	if err := json.Unmarshal(payload, &body); err != nil {
		return entity.User{}, decodeError(domainerrors.ErrUserFetch, err)
	}
	if body.Data.User == nil {
		return entity.User{}, decodeError(domainerrors.ErrUserFetch, errors.New("response carries no user"))
	}

	return body.Data.User.User(), nil
}

// Login exchanges credentials at POST /auth/login
func (c *Client) Login(ctx context.Context, email, password string) (string, entity.User, error) {
	payload, err := c.do(ctx, http.MethodPost, "/auth/login", "", loginRequest{Email: email, Password: password}, domainerrors.ErrUserFetch)
	if err != nil {
		return "", entity.User{}, err
	}

	var body loginBody
	if err := json.Unmarshal(payload, &body); err != nil {
		return "", entity.User{}, decodeError(domainerrors.ErrUserFetch, err)
	}

	// A 2xx with a non-success status is still a rejected login.
	if body.Status != "" && body.Status != domainerrors.StatusSuccess {
		return "", entity.User{}, domainerrors.NewRemoteError(
			domainerrors.ErrInvalidCredentials,
			http.StatusUnauthorized,
			body.Message,
			errors.Errorf("login status %q", body.Status),
		)
	}

	token := body.token()
	if token == "" {
		return "", entity.User{}, decodeError(domainerrors.ErrUserFetch, errors.New("response carries no token"))
	}

	var user entity.User
	if body.Data.User != nil {
		user = body.Data.User.User()
	}

	return token, user, nil
}

// do sends one request and returns the body of a 2xx response. Any other
// outcome becomes a RemoteError of kind carrying the status and server message.
func (c *Client) do(ctx context.Context, method, path, token string, in any, kind *domainerrors.BaseError) ([]byte, error) {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return nil, domainerrors.NewRemoteError(kind, 0, "", errors.WithStack(err))
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, domainerrors.NewRemoteError(kind, 0, "", errors.WithStack(err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("[PlacesAPI] Sending request",
		slog.String("method", method),
		slog.String("path", path),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.NewRemoteError(kind, 0, "", errors.WithStack(err))
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, domainerrors.NewRemoteError(kind, resp.StatusCode, "", errors.Wrap(err, "read response body"))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := serverMessage(payload)

		c.logger.Debug("[PlacesAPI] Request rejected",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("message", message),
		)

		return nil, domainerrors.NewRemoteError(kind, resp.StatusCode, message,
			errors.Errorf("%s %s returned status %d", method, path, resp.StatusCode))
	}

	return payload, nil
}

func decodePlace(payload []byte, kind *domainerrors.BaseError) (repository.PlaceRecord, error) {
	var body placeBody
	if err := json.Unmarshal(payload, &body); err != nil {
		return repository.PlaceRecord{}, decodeError(kind, err)
	}

	wire := body.place()
	if wire.Identifier() == "" {
		return repository.PlaceRecord{}, decodeError(kind, errors.New("response carries no place id"))
	}

	return wire.Record(), nil
}

func decodeError(kind *domainerrors.BaseError, err error) error {
	return domainerrors.NewRemoteError(kind, 0, "", errors.Wrap(err, "decode response"))
}

// serverMessage extracts the message of an error body; non-JSON bodies yield ""
func serverMessage(payload []byte) string {
	var body domainerrors.ErrorBody
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}

	return body.ServerMessage()
}

func placePath(id string) string {
	return "/places/" + url.PathEscape(id)
}
