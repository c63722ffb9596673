package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SISDRUG/bankoffice/internal/common"
	"github.com/SISDRUG/bankoffice/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// makeToken builds an unsigned JWT carrying a preferred_username claim.
func makeToken(t *testing.T, username string) string {
	t.Helper()
	enc := func(v any) string {
		data, err := json.Marshal(v)
		require.NoError(t, err)
		return base64.RawURLEncoding.EncodeToString(data)
	}
	header := enc(map[string]string{"alg": "HS256", "typ": "JWT"})
	claims := enc(map[string]string{"preferred_username": username})
	return header + "." + claims + "."
}

type idpCall struct {
	path string
	form map[string]string
}

// fakeIdp stands in for the OpenID Connect token endpoint.
type fakeIdp struct {
	srv    *httptest.Server
	calls  []idpCall
	tokens []tokenResponse
	status int
	errMsg string
}

func newFakeIdp(t *testing.T, tokens ...tokenResponse) *fakeIdp {
	t.Helper()
	f := &fakeIdp{tokens: tokens}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form := map[string]string{}
		for k := range r.PostForm {
			form[k] = r.PostForm.Get(k)
		}
		f.calls = append(f.calls, idpCall{path: r.URL.Path, form: form})

		if f.status != 0 {
			w.WriteHeader(f.status)
			_ = json.NewEncoder(w).Encode(map[string]string{"error_description": f.errMsg})
			return
		}
		var tr tokenResponse
		if len(f.tokens) > 0 {
			tr = f.tokens[0]
			if len(f.tokens) > 1 {
				f.tokens = f.tokens[1:]
			}
		}
		_ = json.NewEncoder(w).Encode(tr)
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func newTestService(t *testing.T, idp *fakeIdp) *Service {
	t.Helper()
	return NewService(idp.srv.URL, "master", "bank-app", 5*time.Second, testLogger())
}

func TestLogin_StoresTokensAndUsername(t *testing.T) {
	ctx := context.Background()
	idp := newFakeIdp(t, tokenResponse{
		AccessToken:  makeToken(t, "admin"),
		RefreshToken: "refresh-1",
		ExpiresIn:    300,
	})
	s := newTestService(t, idp)

	require.False(t, s.IsAuthenticated())
	require.NoError(t, s.Login(ctx, "admin", "secret"))

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "admin", s.Username())

	token, err := s.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, makeToken(t, "admin"), token)

	require.Len(t, idp.calls, 1)
	call := idp.calls[0]
	assert.Equal(t, "/realms/master/protocol/openid-connect/token", call.path)
	assert.Equal(t, "password", call.form["grant_type"])
	assert.Equal(t, "bank-app", call.form["client_id"])
	assert.Equal(t, "admin", call.form["username"])
}

func TestLogin_BadCredentials(t *testing.T) {
	idp := newFakeIdp(t)
	idp.status = http.StatusUnauthorized
	idp.errMsg = "Invalid user credentials"
	s := newTestService(t, idp)

	err := s.Login(context.Background(), "admin", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid user credentials")
	assert.False(t, s.IsAuthenticated())
}

func TestAccessToken_NotAuthenticated(t *testing.T) {
	s := newTestService(t, newFakeIdp(t))
	_, err := s.AccessToken(context.Background())
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestAccessToken_RefreshesNearExpiry(t *testing.T) {
	ctx := context.Background()
	idp := newFakeIdp(t,
		tokenResponse{AccessToken: makeToken(t, "admin"), RefreshToken: "refresh-1", ExpiresIn: 60},
		tokenResponse{AccessToken: makeToken(t, "admin2"), RefreshToken: "refresh-2", ExpiresIn: 300},
	)
	s := newTestService(t, idp)

	start := time.Now()
	s.now = func() time.Time { return start }
	require.NoError(t, s.Login(ctx, "admin", "secret"))

	// Still fresh, no refresh call.
	token, err := s.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, makeToken(t, "admin"), token)
	require.Len(t, idp.calls, 1)

	// 40s in, the 60s token is within the refresh leeway.
	s.now = func() time.Time { return start.Add(40 * time.Second) }
	token, err = s.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, makeToken(t, "admin2"), token)

	require.Len(t, idp.calls, 2)
	assert.Equal(t, "refresh_token", idp.calls[1].form["grant_type"])
	assert.Equal(t, "refresh-1", idp.calls[1].form["refresh_token"])
	assert.Equal(t, "admin2", s.Username())
}

func TestRefresh_WithoutSession(t *testing.T) {
	s := newTestService(t, newFakeIdp(t))
	assert.ErrorIs(t, s.Refresh(context.Background()), common.ErrNotAuthenticated)
}

func TestLogout_ClearsState(t *testing.T) {
	ctx := context.Background()
	idp := newFakeIdp(t, tokenResponse{
		AccessToken:  makeToken(t, "admin"),
		RefreshToken: "refresh-1",
		ExpiresIn:    300,
	})
	s := newTestService(t, idp)
	require.NoError(t, s.Login(ctx, "admin", "secret"))

	s.Logout(ctx)

	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Username())
	_, err := s.AccessToken(ctx)
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)

	require.Len(t, idp.calls, 2)
	assert.Equal(t, "/realms/master/protocol/openid-connect/logout", idp.calls[1].path)
	assert.Equal(t, "refresh-1", idp.calls[1].form["refresh_token"])
}

func TestLogout_IdpFailureStillClears(t *testing.T) {
	ctx := context.Background()
	idp := newFakeIdp(t, tokenResponse{
		AccessToken:  makeToken(t, "admin"),
		RefreshToken: "refresh-1",
		ExpiresIn:    300,
	})
	s := newTestService(t, idp)
	require.NoError(t, s.Login(ctx, "admin", "secret"))

	idp.status = http.StatusInternalServerError
	s.Logout(ctx)
	assert.False(t, s.IsAuthenticated())
}
