package know2

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/yakov-partners/know2-cli/internal/domain"
	"github.com/yakov-partners/know2-cli/internal/ports"
)

// Config describes how a session is established. Either an explicit
// credential pair or Admin mode (with a service credential) must be
// supplied; constructing with neither fails before any network call.
type Config struct {
	BaseURL  string
	Username string
	Password string

	// Admin selects the fixed service credential instead of an explicit
	// user credential pair.
	Admin           bool
	ServiceUsername string
	ServicePassword string

	// RequestTimeout bounds each remote call, login included. Zero means
	// the package default.
	RequestTimeout time.Duration

	HTTPClient *http.Client
	Logger     zerolog.Logger
}

func (cfg Config) credentials() (string, string, error) {
	if cfg.Admin {
		if cfg.ServiceUsername == "" || cfg.ServicePassword == "" {
			return "", "", &domain.ConfigError{Reason: "admin mode requires a service credential"}
		}
		return cfg.ServiceUsername, cfg.ServicePassword, nil
	}
	if cfg.Username == "" || cfg.Password == "" {
		return "", "", &domain.ConfigError{Reason: "username and password are required unless admin mode is set"}
	}
	return cfg.Username, cfg.Password, nil
}

// Session is an authenticated catalog handle. It owns the cookie jar the
// login call populated; catalog fetches borrow it read-only and are safe to
// run concurrently. Close releases the transport connections.
type Session struct {
	*client
	httpClient *http.Client
}

var _ ports.Catalog = (*Session)(nil)

// Dial validates the configuration, logs in, and returns a live session.
// A non-2xx login status surfaces as AuthError.
func Dial(ctx context.Context, cfg Config) (*Session, error) {
	if cfg.BaseURL == "" {
		return nil, &domain.ConfigError{Reason: "base url is required"}
	}

	username, password, err := cfg.credentials()
	if err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("create cookie jar: %w", err)
		}
		httpClient = &http.Client{Jar: jar}
	}

	c, err := newClient(cfg.BaseURL, httpClient, cfg.RequestTimeout, cfg.Logger)
	if err != nil {
		return nil, err
	}

	session := &Session{client: c, httpClient: httpClient}
	if err := session.login(ctx, username, password); err != nil {
		session.Close()
		return nil, err
	}

	return session, nil
}

func (s *Session) login(ctx context.Context, username, password string) error {
	body := loginRequest{Username: username, Password: password}
	raw, err := s.do(ctx, http.MethodPost, "/api/v1/auth/login", nil, body, func(status int, respBody string) error {
		return &domain.AuthError{Op: "login", StatusCode: status, Body: respBody}
	})
	if err != nil {
		return err
	}

	var resp messageResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return fmt.Errorf("decode login response: %w", err)
	}

	s.log.Debug().Str("username", username).Msg("session authenticated")
	return nil
}

// Check verifies session liveness against the auth introspection endpoint.
func (s *Session) Check(ctx context.Context) error {
	raw, err := s.do(ctx, http.MethodGet, "/api/v1/auth/check", nil, nil, func(status int, respBody string) error {
		return &domain.AuthError{Op: "check", StatusCode: status, Body: respBody}
	})
	if err != nil {
		return err
	}

	var resp messageResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return fmt.Errorf("decode auth check response: %w", err)
	}
	return nil
}

// Close frees the transport-level resources of the session. It must run on
// every exit path once Dial succeeds.
func (s *Session) Close() {
	s.httpClient.CloseIdleConnections()
}
