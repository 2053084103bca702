// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/cardstream/decksync/models"
)

// StaticCredentials is a CredentialsProvider holding a fixed token with no
// refresh capability. Useful in tests and for short-lived CLI invocations.
type StaticCredentials string

func (s StaticCredentials) AccessToken(context.Context) (string, error) {
	if s == "" {
		return "", ErrReauthRequired
	}
	return string(s), nil
}

func (s StaticCredentials) Refresh(context.Context) (string, error) {
	return "", fmt.Errorf("static credentials cannot refresh: %w", ErrReauthRequired)
}

// TokenStore persists the token pair between runs. The settings surface that
// performed the login owns the implementation.
type TokenStore interface {
	LoadTokens() (models.TokenPair, error)
	SaveTokens(models.TokenPair) error
}

// refreshingCredentials exchanges a stored refresh token for fresh access
// tokens against the server's refresh endpoint. Refreshes are serialised so
// concurrent deck syncs hitting an expired token trigger a single refresh.
type refreshingCredentials struct {
	client *resty.Client
	store  TokenStore

	mu     sync.Mutex
	tokens models.TokenPair
	loaded bool
}

// NewRefreshingCredentials builds a CredentialsProvider backed by store and
// the refresh endpoint at baseURL.
func NewRefreshingCredentials(baseURL string, timeout time.Duration, store TokenStore) CredentialsProvider {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout)

	return &refreshingCredentials{client: client, store: store}
}

func (r *refreshingCredentials) AccessToken(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(); err != nil {
		return "", err
	}
	if r.tokens.AccessToken != "" && !tokenExpired(r.tokens) {
		return r.tokens.AccessToken, nil
	}

	return r.refreshLocked(ctx)
}

func (r *refreshingCredentials) Refresh(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureLoaded(); err != nil {
		return "", err
	}

	return r.refreshLocked(ctx)
}

func (r *refreshingCredentials) ensureLoaded() error {
	if r.loaded {
		return nil
	}
	tokens, err := r.store.LoadTokens()
	if err != nil {
		return fmt.Errorf("load tokens: %w", err)
	}
	r.tokens = tokens
	r.loaded = true
	return nil
}

func (r *refreshingCredentials) refreshLocked(ctx context.Context) (string, error) {
	if r.tokens.RefreshToken == "" {
		return "", fmt.Errorf("no refresh token: %w", ErrReauthRequired)
	}

	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RefreshRequest{RefreshToken: r.tokens.RefreshToken}).
		Post("/addon-refresh-token")
	if err != nil {
		return "", fmt.Errorf("refresh token request: %w: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("refresh token: %w", err)
	}

	// Decoded from the raw body: the endpoint's Content-Type is not
	// guaranteed to be application/json.
	var result models.RefreshResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("%w: decode refresh response: %w", ErrMalformedResponse, err)
	}
	if !result.Success || result.AccessToken == "" {
		return "", fmt.Errorf("refresh rejected (%s): %w", result.Message, ErrReauthRequired)
	}

	r.tokens.AccessToken = result.AccessToken
	if result.RefreshToken != "" {
		r.tokens.RefreshToken = result.RefreshToken
	}
	r.tokens.ExpiresAt = result.ExpiresAt

	if err = r.store.SaveTokens(r.tokens); err != nil {
		return "", fmt.Errorf("save refreshed tokens: %w", err)
	}

	return r.tokens.AccessToken, nil
}

// tokenExpired reports whether the pair's access token is past its expiry.
// The stored expires_at timestamp wins when present; otherwise the JWT "exp"
// claim is inspected without signature verification (the server verifies, the
// client only schedules refreshes). A token without readable expiry is
// assumed valid.
func tokenExpired(tokens models.TokenPair) bool {
	if tokens.ExpiresAt != "" {
		if expiry, err := time.Parse(time.RFC3339, tokens.ExpiresAt); err == nil {
			return !time.Now().Before(expiry)
		}
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokens.AccessToken, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !time.Now().Before(exp.Time)
}
