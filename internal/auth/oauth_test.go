package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenServer(t *testing.T, h http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(srv *httptest.Server) OAuthConfig {
	return OAuthConfig{
		ClientID:     "client",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost/oauth/spotify/callback",
		AuthURL:      srv.URL + "/authorize",
		TokenURL:     srv.URL + "/token",
	}
}

func TestOAuthProvider_AuthCodeURL(t *testing.T) {
	p := NewYouTubeProvider(OAuthConfig{ClientID: "client", RedirectURL: "http://localhost/cb"})

	u, err := url.Parse(p.AuthCodeURL("state-1"))
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "state-1", q.Get("state"))
	assert.Equal(t, "client", q.Get("client_id"))
	assert.Equal(t, "offline", q.Get("access_type"))
	assert.Equal(t, "consent", q.Get("prompt"))
	assert.Contains(t, q.Get("scope"), "youtube.readonly")
}

func TestOAuthProvider_Exchange(t *testing.T) {
	srv := newTokenServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "code-1", r.PostForm.Get("code"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at","refresh_token":"rt","token_type":"Bearer","expires_in":3600,"scope":"user-read-email"}`))
	})

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	p := NewSpotifyProvider(testConfig(srv))
	p.now = func() time.Time { return now }

	acc, err := p.Exchange(context.Background(), "code-1")

	require.NoError(t, err)
	assert.Equal(t, "at", acc.AccessToken)
	assert.Equal(t, "rt", acc.RefreshToken)
	assert.Equal(t, "user-read-email", acc.Scope)
	assert.Equal(t, now, acc.LastSynced)
	assert.False(t, acc.ExpiresAt.IsZero())
}

func TestOAuthProvider_Exchange_Rejected(t *testing.T) {
	srv := newTokenServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	})

	p := NewSpotifyProvider(testConfig(srv))

	_, err := p.Exchange(context.Background(), "bad-code")

	assert.ErrorIs(t, err, domain.ErrOAuthExchange)
}

func TestOAuthProvider_Exchange_MissingCode(t *testing.T) {
	p := NewSpotifyProvider(OAuthConfig{ClientID: "client"})

	_, err := p.Exchange(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrOAuthExchange)
}

func TestOAuthProvider_Refresh_ValidTokenUntouched(t *testing.T) {
	var calls atomic.Int32
	srv := newTokenServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	p := NewSpotifyProvider(testConfig(srv))
	acc := domain.StreamingAccount{AccessToken: "at", RefreshToken: "rt", ExpiresAt: time.Now().Add(time.Hour)}

	got, refreshed, err := p.Refresh(context.Background(), acc)

	require.NoError(t, err)
	assert.False(t, refreshed)
	assert.Equal(t, acc, got)
	assert.Zero(t, calls.Load())
}

func TestOAuthProvider_Refresh_Expired(t *testing.T) {
	srv := newTokenServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "rt", r.PostForm.Get("refresh_token"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at-2","token_type":"Bearer","expires_in":3600}`))
	})

	p := NewSpotifyProvider(testConfig(srv))
	synced := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	acc := domain.StreamingAccount{
		Provider:     domain.ProviderSpotify,
		AccountID:    "sp-user",
		AccessToken:  "at",
		RefreshToken: "rt",
		Scope:        "user-read-email",
		ExpiresAt:    time.Now().Add(-time.Minute),
		LastSynced:   synced,
	}

	got, refreshed, err := p.Refresh(context.Background(), acc)

	require.NoError(t, err)
	assert.True(t, refreshed)
	assert.Equal(t, "at-2", got.AccessToken)
	assert.Equal(t, "rt", got.RefreshToken)
	assert.Equal(t, "user-read-email", got.Scope)
	assert.Equal(t, "sp-user", got.AccountID)
	assert.Equal(t, domain.ProviderSpotify, got.Provider)
	assert.Equal(t, synced, got.LastSynced)
}

func TestOAuthProvider_Refresh_NoRefreshToken(t *testing.T) {
	p := NewSpotifyProvider(OAuthConfig{ClientID: "client"})
	acc := domain.StreamingAccount{AccessToken: "at", ExpiresAt: time.Now().Add(-time.Minute)}

	_, _, err := p.Refresh(context.Background(), acc)

	assert.ErrorIs(t, err, domain.ErrAccountNotLinked)
}
