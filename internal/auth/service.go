// Package auth implements the identity-provider client: resource-owner
// password grant, refresh, and logout against an OpenID Connect token
// endpoint. It is the TokenSource for the gateway.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/SISDRUG/bankoffice/internal/common"
	"github.com/SISDRUG/bankoffice/internal/logging"
)

// refreshLeeway triggers a refresh slightly before the access token actually
// expires, so a token handed to the gateway stays valid for the request.
const refreshLeeway = 30 * time.Second

// Service manages identity-provider tokens for one CLI session.
// Tokens are held in memory only; a new session starts unauthenticated.
type Service struct {
	idpURL   string
	realm    string
	clientID string
	client   *http.Client
	log      logging.Logger

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	expiresAt    time.Time
	username     string

	// now is a test seam for the clock.
	now func() time.Time
}

// NewService constructs an identity-provider client.
func NewService(idpURL, realm, clientID string, timeout time.Duration, log logging.Logger) *Service {
	return &Service{
		idpURL:   idpURL,
		realm:    realm,
		clientID: clientID,
		client:   &http.Client{Timeout: timeout},
		log:      log.With("component", "auth"),
		now:      time.Now,
	}
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (s *Service) tokenEndpoint(suffix string) string {
	return fmt.Sprintf("%s/realms/%s/protocol/openid-connect/%s", s.idpURL, s.realm, suffix)
}

func (s *Service) postForm(ctx context.Context, endpoint string, form url.Values) (*tokenResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		var errBody struct {
			ErrorDescription string `json:"error_description"`
		}
		msg := strings.TrimSpace(string(data))
		if err := json.Unmarshal(data, &errBody); err == nil && errBody.ErrorDescription != "" {
			msg = errBody.ErrorDescription
		}
		return nil, fmt.Errorf("identity provider returned %d: %s", resp.StatusCode, msg)
	}

	var tr tokenResponse
	if err := json.Unmarshal(data, &tr); err != nil {
		return nil, fmt.Errorf("decoding token response: %w", err)
	}
	return &tr, nil
}

// storeTokens must be called with s.mu held.
func (s *Service) storeTokens(tr *tokenResponse) {
	s.accessToken = tr.AccessToken
	s.refreshToken = tr.RefreshToken
	s.expiresAt = s.now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	s.username = usernameFromToken(tr.AccessToken)
}

// usernameFromToken reads the preferred_username claim without verifying the
// signature. The client is not the token's audience validator; the claim is
// used only for the status prompt.
func usernameFromToken(token string) string {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return ""
	}
	if name, ok := claims["preferred_username"].(string); ok {
		return name
	}
	return ""
}

// Login authenticates with the password grant and stores the token pair.
func (s *Service) Login(ctx context.Context, username, password string) error {
	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("client_id", s.clientID)
	form.Set("username", username)
	form.Set("password", password)
	form.Set("scope", "openid profile email")

	tr, err := s.postForm(ctx, s.tokenEndpoint("token"), form)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.storeTokens(tr)

	s.log.Info(ctx, "logged in", "username", s.username)
	return nil
}

// Refresh exchanges the refresh token for a fresh token pair.
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.Lock()
	refreshToken := s.refreshToken
	s.mu.Unlock()

	if refreshToken == "" {
		return common.ErrNotAuthenticated
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("client_id", s.clientID)
	form.Set("refresh_token", refreshToken)

	tr, err := s.postForm(ctx, s.tokenEndpoint("token"), form)
	if err != nil {
		return fmt.Errorf("token refresh: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.storeTokens(tr)
	return nil
}

// Logout revokes the session at the identity provider (best effort) and
// always clears the local token state.
func (s *Service) Logout(ctx context.Context) {
	s.mu.Lock()
	refreshToken := s.refreshToken
	s.mu.Unlock()

	if refreshToken != "" {
		form := url.Values{}
		form.Set("client_id", s.clientID)
		form.Set("refresh_token", refreshToken)
		if _, err := s.postForm(ctx, s.tokenEndpoint("logout"), form); err != nil {
			s.log.Warn(ctx, "identity provider logout failed", "error", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = ""
	s.refreshToken = ""
	s.expiresAt = time.Time{}
	s.username = ""
}

// AccessToken returns a valid access token, refreshing it first when within
// refreshLeeway of expiry. Returns common.ErrNotAuthenticated when there is
// no session.
func (s *Service) AccessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	token := s.accessToken
	needsRefresh := token != "" && s.now().After(s.expiresAt.Add(-refreshLeeway))
	s.mu.Unlock()

	if token == "" {
		return "", common.ErrNotAuthenticated
	}

	if needsRefresh {
		if err := s.Refresh(ctx); err != nil {
			return "", err
		}
		s.mu.Lock()
		token = s.accessToken
		s.mu.Unlock()
	}

	return token, nil
}

// IsAuthenticated reports whether a token pair is held.
func (s *Service) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken != ""
}

// Username returns the preferred_username claim of the current session,
// or an empty string when not logged in.
func (s *Service) Username() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.username
}
