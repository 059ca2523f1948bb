package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStreamingService(t *testing.T) (*StreamingService, linkMocks) {
	t.Helper()
	m := linkMocks{
		oauth: mocks.NewMockOAuthProvider(t),
		api:   mocks.NewMockStreamingAPI(t),
		users: mocks.NewMockUserRepo(t),
	}
	providers := Providers{
		domain.ProviderSpotify: {OAuth: m.oauth, API: m.api},
	}
	return NewStreamingService(providers, m.users, newTestLogger(t)), m
}

func linkedUser() *domain.User {
	return &domain.User{
		ID: "u1",
		StreamingAccounts: []domain.StreamingAccount{
			{Provider: domain.ProviderSpotify, AccountID: "sp", AccessToken: "old", RefreshToken: "r"},
		},
	}
}

func TestStreamingService_Fetch_NotLinked(t *testing.T) {
	svc, m := newStreamingService(t)

	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

	_, err := svc.Fetch(context.Background(), "u1", domain.ProviderSpotify, "me", false)

	assert.ErrorIs(t, err, domain.ErrAccountNotLinked)
}

func TestStreamingService_Fetch_UsesValidToken(t *testing.T) {
	svc, m := newStreamingService(t)

	user := linkedUser()
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.oauth.EXPECT().Refresh(mock.Anything, user.StreamingAccounts[0]).Return(user.StreamingAccounts[0], false, nil)
	m.api.EXPECT().Fetch(mock.Anything, "me", "old", false).Return(json.RawMessage(`{"id":"sp"}`), nil)

	data, err := svc.Fetch(context.Background(), "u1", domain.ProviderSpotify, "me", false)

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"sp"}`, string(data))
	m.users.AssertNotCalled(t, "UpsertStreamingAccount", mock.Anything, mock.Anything, mock.Anything)
}

func TestStreamingService_Fetch_RefreshesAndPersists(t *testing.T) {
	svc, m := newStreamingService(t)

	user := linkedUser()
	fresh := user.StreamingAccounts[0]
	fresh.AccessToken = "new"

	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.oauth.EXPECT().Refresh(mock.Anything, mock.Anything).Return(fresh, true, nil)
	m.api.EXPECT().Fetch(mock.Anything, "tracks", "new", true).Return(json.RawMessage(`[]`), nil)
	m.users.EXPECT().UpsertStreamingAccount(mock.Anything, "u1", mock.MatchedBy(func(acc domain.StreamingAccount) bool {
		return acc.AccessToken == "new"
	})).Return(nil)

	_, err := svc.Fetch(context.Background(), "u1", domain.ProviderSpotify, "tracks", true)

	require.NoError(t, err)
}

func TestStreamingService_Fetch_UnknownResource(t *testing.T) {
	svc, m := newStreamingService(t)

	user := linkedUser()
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.oauth.EXPECT().Refresh(mock.Anything, mock.Anything).Return(user.StreamingAccounts[0], false, nil)
	m.api.EXPECT().Fetch(mock.Anything, "nope", "old", false).Return(nil, domain.ErrUnknownResource)

	_, err := svc.Fetch(context.Background(), "u1", domain.ProviderSpotify, "nope", false)

	assert.ErrorIs(t, err, domain.ErrUnknownResource)
}

func TestStreamingService_Fetch_RefreshFails(t *testing.T) {
	svc, m := newStreamingService(t)

	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(linkedUser(), nil)
	m.oauth.EXPECT().Refresh(mock.Anything, mock.Anything).Return(domain.StreamingAccount{}, false, errors.New("revoked"))

	_, err := svc.Fetch(context.Background(), "u1", domain.ProviderSpotify, "me", false)

	assert.Error(t, err)
}

func TestStreamingService_Fetch_UnsupportedProvider(t *testing.T) {
	svc, _ := newStreamingService(t)

	_, err := svc.Fetch(context.Background(), "u1", domain.ProviderYouTube, "playlists", false)

	assert.ErrorIs(t, err, domain.ErrProviderNotSupported)
}
