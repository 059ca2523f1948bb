package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type linkMocks struct {
	oauth  *mocks.MockOAuthProvider
	api    *mocks.MockStreamingAPI
	states *mocks.MockStateStore
	users  *mocks.MockUserRepo
}

func newLinkService(t *testing.T) (*LinkService, linkMocks) {
	t.Helper()
	m := linkMocks{
		oauth:  mocks.NewMockOAuthProvider(t),
		api:    mocks.NewMockStreamingAPI(t),
		states: mocks.NewMockStateStore(t),
		users:  mocks.NewMockUserRepo(t),
	}
	providers := Providers{
		domain.ProviderSpotify: {OAuth: m.oauth, API: m.api},
	}
	return NewLinkService(providers, m.states, m.users, newTestLogger(t)), m
}

func TestLinkService_BeginLink(t *testing.T) {
	svc, m := newLinkService(t)

	m.states.EXPECT().IssueState(mock.Anything, "u1").Return("state-1", nil)
	m.oauth.EXPECT().AuthCodeURL("state-1").Return("https://accounts.spotify.com/authorize?state=state-1")

	url, err := svc.BeginLink(context.Background(), "u1", domain.ProviderSpotify)

	require.NoError(t, err)
	assert.Contains(t, url, "state=state-1")
}

func TestLinkService_BeginLink_UnsupportedProvider(t *testing.T) {
	svc, _ := newLinkService(t)

	_, err := svc.BeginLink(context.Background(), "u1", domain.ProviderAppleMusic)

	assert.ErrorIs(t, err, domain.ErrProviderNotSupported)
}

func TestLinkService_LinkAccount_Success(t *testing.T) {
	svc, m := newLinkService(t)

	payload := domain.CallbackPayload{Code: "code-1", State: "state-1"}
	m.states.EXPECT().ConsumeState(mock.Anything, "state-1").Return("u1", nil)
	m.oauth.EXPECT().Exchange(mock.Anything, "code-1").Return(&domain.StreamingAccount{
		AccessToken:  "access",
		RefreshToken: "refresh",
	}, nil)
	m.api.EXPECT().AccountID(mock.Anything, "access").Return("spotify-user", nil)
	m.users.EXPECT().UpsertStreamingAccount(mock.Anything, "u1", mock.MatchedBy(func(acc domain.StreamingAccount) bool {
		return acc.Provider == domain.ProviderSpotify && acc.AccountID == "spotify-user" && acc.RefreshToken == "refresh"
	})).Return(nil)

	acc, err := svc.LinkAccount(context.Background(), "u1", domain.ProviderSpotify, payload)

	require.NoError(t, err)
	assert.Equal(t, "spotify-user", acc.AccountID)
	assert.False(t, acc.LastSynced.IsZero())
}

func TestLinkService_LinkAccount_StateOfAnotherUser(t *testing.T) {
	svc, m := newLinkService(t)

	m.states.EXPECT().ConsumeState(mock.Anything, "state-1").Return("u2", nil)

	_, err := svc.LinkAccount(context.Background(), "u1", domain.ProviderSpotify, domain.CallbackPayload{Code: "c", State: "state-1"})

	assert.ErrorIs(t, err, domain.ErrInvalidOAuthState)
	m.oauth.AssertNotCalled(t, "Exchange", mock.Anything, mock.Anything)
}

func TestLinkService_LinkAccount_ExchangeFails(t *testing.T) {
	svc, m := newLinkService(t)

	m.states.EXPECT().ConsumeState(mock.Anything, "state-1").Return("u1", nil)
	m.oauth.EXPECT().Exchange(mock.Anything, "bad").Return(nil, domain.ErrOAuthExchange)

	_, err := svc.LinkAccount(context.Background(), "u1", domain.ProviderSpotify, domain.CallbackPayload{Code: "bad", State: "state-1"})

	assert.ErrorIs(t, err, domain.ErrOAuthExchange)
}

func TestLinkService_CompleteLink_ReturnsUser(t *testing.T) {
	svc, m := newLinkService(t)

	m.states.EXPECT().ConsumeState(mock.Anything, "s").Return("u1", nil)
	m.oauth.EXPECT().Exchange(mock.Anything, "c").Return(&domain.StreamingAccount{AccessToken: "a"}, nil)
	m.api.EXPECT().AccountID(mock.Anything, "a").Return("acc", nil)
	m.users.EXPECT().UpsertStreamingAccount(mock.Anything, "u1", mock.Anything).Return(nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

	user, err := svc.CompleteLink(context.Background(), "u1", domain.ProviderSpotify, domain.CallbackPayload{Code: "c", State: "s"})

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestLinkService_LinkAccount_AccountIDError(t *testing.T) {
	svc, m := newLinkService(t)

	m.states.EXPECT().ConsumeState(mock.Anything, "s").Return("u1", nil)
	m.oauth.EXPECT().Exchange(mock.Anything, "c").Return(&domain.StreamingAccount{AccessToken: "a"}, nil)
	m.api.EXPECT().AccountID(mock.Anything, "a").Return("", errors.New("boom"))

	_, err := svc.LinkAccount(context.Background(), "u1", domain.ProviderSpotify, domain.CallbackPayload{Code: "c", State: "s"})

	assert.Error(t, err)
	m.users.AssertNotCalled(t, "UpsertStreamingAccount", mock.Anything, mock.Anything, mock.Anything)
}
