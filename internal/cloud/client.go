// Package cloud is the client side of the save-sync REST API. Cloud
// saves are a best-effort mirror of local state: calls never block
// gameplay, failures surface as transient errors, and a request that
// is superseded by a newer one has its result discarded so the last
// request always wins.
package cloud

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/forgebound/forge-api/internal/errors"
)

// User mirrors the API's user payload.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"createdAt"`
}

// Session is a successful register or login result.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Save is a downloaded save slot.
type Save struct {
	GameState json.RawMessage `json:"gameState"`
	SavedAt   int64           `json:"savedAt"`
	Version   int64           `json:"version"`
}

// SaveReceipt acknowledges an upload.
type SaveReceipt struct {
	SavedAt int64 `json:"savedAt"`
	Version int64 `json:"version"`
}

// SaveInfo is slot metadata without the payload.
type SaveInfo struct {
	HasSave bool   `json:"hasSave"`
	SavedAt *int64 `json:"savedAt,omitempty"`
	Version *int64 `json:"version,omitempty"`
}

// Config configures the cloud client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the save-sync service. Safe for use from the UI's
// single logical thread; the supersede bookkeeping is locked in case
// callers race anyway.
type Client struct {
	baseURL string
	http    *http.Client

	mu     sync.Mutex
	token  string
	gen    uint64
	cancel context.CancelFunc
}

// New creates a cloud client.
func New(cfg *Config) (*Client, error) {
	if cfg == nil || cfg.BaseURL == "" {
		return nil, errors.InvalidArgument("base URL is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// SetToken installs the bearer token used for authenticated calls.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Register creates an account and adopts its token.
func (c *Client) Register(ctx context.Context, username, email, password string) (*Session, error) {
	body := map[string]string{"username": username, "email": email, "password": password}

	var session Session
	if err := c.do(ctx, http.MethodPost, "/auth/register", body, &session); err != nil {
		return nil, err
	}
	c.SetToken(session.Token)
	return &session, nil
}

// Login authenticates and adopts the session token.
func (c *Client) Login(ctx context.Context, usernameOrEmail, password string) (*Session, error) {
	body := map[string]string{"usernameOrEmail": usernameOrEmail, "password": password}

	var session Session
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &session); err != nil {
		return nil, err
	}
	c.SetToken(session.Token)
	return &session, nil
}

// Refresh swaps the current token for a fresh one.
func (c *Client) Refresh(ctx context.Context) error {
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/refresh", nil, &resp); err != nil {
		return err
	}
	c.SetToken(resp.Token)
	return nil
}

// UploadSave pushes the serialized game state. A later Upload or
// Download supersedes this call.
func (c *Client) UploadSave(ctx context.Context, gameState json.RawMessage) (*SaveReceipt, error) {
	ctx, gen := c.begin(ctx)

	body := map[string]json.RawMessage{"gameState": gameState}
	var receipt SaveReceipt
	err := c.do(ctx, http.MethodPost, "/save", body, &receipt)
	if !c.isCurrent(gen) {
		return nil, errors.Canceled("superseded by a newer sync request")
	}
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

// DownloadSave pulls the save slot. A later Upload or Download
// supersedes this call.
func (c *Client) DownloadSave(ctx context.Context) (*Save, error) {
	ctx, gen := c.begin(ctx)

	var save Save
	err := c.do(ctx, http.MethodGet, "/save", nil, &save)
	if !c.isCurrent(gen) {
		return nil, errors.Canceled("superseded by a newer sync request")
	}
	if err != nil {
		return nil, err
	}
	return &save, nil
}

// DeleteSave removes the cloud slot.
func (c *Client) DeleteSave(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/save", nil, nil)
}

// FetchSaveInfo reads slot metadata without the payload.
func (c *Client) FetchSaveInfo(ctx context.Context) (*SaveInfo, error) {
	var info SaveInfo
	if err := c.do(ctx, http.MethodGet, "/save/info", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// begin registers a new sync generation, canceling any in-flight
// predecessor.
func (c *Client) begin(ctx context.Context) (context.Context, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.gen++
	return ctx, c.gen
}

func (c *Client) isCurrent(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return gen == c.gen
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal request")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrapf(err, "failed to build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.mu.Lock()
	token := c.token
	c.mu.Unlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return errors.Canceled("sync request canceled")
		}
		// Network trouble is transient; the caller retries on explicit
		// user action, never silently.
		return errors.WrapWithCode(err, errors.CodeUnavailable, "save service unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode response")
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	var apiErr struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Code == "" {
		return errors.Newf(errors.CodeUnavailable, "save service returned status %d", resp.StatusCode)
	}
	return errors.New(errors.Code(apiErr.Code), fmt.Sprintf("save service: %s", apiErr.Message))
}
