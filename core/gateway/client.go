package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bithunter/bithunter-go/core/logger"
)

const (
	loginPath    = "/api/accounts/login/"
	registerPath = "/api/accounts/register/"
	profilePath  = "/api/accounts/profile/"

	// maxResponseBody caps how much of a response the client is willing to read.
	maxResponseBody = 1 << 20
)

// User is the backend's representation of an account, optionally returned
// alongside the access token on login.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// LoginResult carries the bearer credential issued by the backend and the
// optional user object from the same response.
type LoginResult struct {
	AccessToken string
	User        *User
}

// Client talks to the BitHunter account endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a gateway client. The config must carry a backend address.
func New(cfg Config, opts ...Option) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("gateway: empty base URL")
	}

	c := &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Access string `json:"access"`
	User   *User  `json:"user,omitempty"`
}

// Login exchanges credentials for a bearer token. Failures are reported as
// *AuthError; see the package documentation for the status-to-reason table.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return LoginResult{}, NewAuthError(ReasonMalformedResponse, err)
	}

	resp, err := c.post(ctx, loginPath, body)
	if err != nil {
		c.log.DebugContext(ctx, "login request failed", logger.Error(err))
		return LoginResult{}, NewAuthError(ReasonNetworkUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return LoginResult{}, NewAuthError(ReasonInvalidCredentials, nil)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return LoginResult{}, NewAuthError(ReasonMalformedResponse,
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var parsed loginResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBody)).Decode(&parsed); err != nil {
		return LoginResult{}, NewAuthError(ReasonMalformedResponse, err)
	}
	if parsed.Access == "" {
		return LoginResult{}, NewAuthError(ReasonMalformedResponse,
			errors.New("response carries no access token"))
	}

	c.log.DebugContext(ctx, "login succeeded", slog.String("username", username))
	return LoginResult{AccessToken: parsed.Access, User: parsed.User}, nil
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account. The caller still has to log in afterwards;
// the backend does not issue a token on registration.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	body, err := json.Marshal(registerRequest{Username: username, Email: email, Password: password})
	if err != nil {
		return errors.Join(ErrRegistrationFailed, err)
	}

	resp, err := c.post(ctx, registerPath, body)
	if err != nil {
		return errors.Join(ErrRegistrationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Join(ErrRegistrationFailed,
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
	return nil
}

// Profile fetches the signed-in user's account using the given bearer token.
func (c *Client) Profile(ctx context.Context, token string) (User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+profilePath, nil)
	if err != nil {
		return User{}, errors.Join(ErrProfileFetchFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return User{}, errors.Join(ErrProfileFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return User{}, errors.Join(ErrProfileFetchFailed,
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var user User
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBody)).Decode(&user); err != nil {
		return User{}, errors.Join(ErrProfileFetchFailed, err)
	}
	return user, nil
}

func (c *Client) post(ctx context.Context, path string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.httpClient.Do(req)
}
