package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
)

type httpCredentialAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPCredentialAdapter constructs an HTTP/REST implementation of
// [CredentialAdapter]. The base URL is taken from cfg.HTTPAddress; a missing
// scheme defaults to http.
func NewHTTPCredentialAdapter(cfg config.ClientAdapter, logger *logger.Logger) (CredentialAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpCredentialAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpCredentialAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpCredentialAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register POSTs req to /api/v1/auth/register.
func (h *httpCredentialAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	result, err := h.authenticate(ctx, "/api/v1/auth/register", req)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("register: %w", err)
	}
	return result, nil
}

// Login POSTs req to /api/v1/auth/login.
func (h *httpCredentialAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	result, err := h.authenticate(ctx, "/api/v1/auth/login", req)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("login: %w", err)
	}
	return result, nil
}

// authenticate posts body to path and stores the token of the response. The
// Authorization header wins over the body's token field when both are set.
func (h *httpCredentialAdapter) authenticate(ctx context.Context, path string, body any) (models.AuthResult, error) {
	var result models.AuthResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		ForceContentType("application/json").
		Post(path)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResult{}, err
	}

	token := result.Token
	if header := resp.Header().Get("Authorization"); header != "" {
		token, err = utils.ParseBearerToken(header)
		if err != nil {
			return models.AuthResult{}, fmt.Errorf("parse bearer token: %w", err)
		}
	}
	if token == "" {
		return models.AuthResult{}, fmt.Errorf("server returned no token")
	}

	result.Token = token
	h.SetToken(token)

	if userID, err := utils.ParseUserIDFromJWT(token); err == nil {
		h.logger.Debug().Str("user_id", userID).Msg("token stored")
	}

	return result, nil
}

// GetUser GETs /api/v1/auth/getUser with the stored bearer token.
func (h *httpCredentialAdapter) GetUser(ctx context.Context) (models.PublicProfile, error) {
	token := h.Token()
	if token == "" {
		return models.PublicProfile{}, ErrNoToken
	}

	var profile models.PublicProfile
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&profile).
		ForceContentType("application/json").
		Get("/api/v1/auth/getUser")
	if err != nil {
		return models.PublicProfile{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicProfile{}, fmt.Errorf("get user: %w", err)
	}

	return profile, nil
}

// ServerVersion GETs /api/version.
func (h *httpCredentialAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("version: %w", err)
	}

	return strings.TrimSpace(resp.String()), nil
}
