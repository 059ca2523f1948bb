package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/spotify"
)

var (
	DefaultSpotifyScopes = []string{
		"user-read-email",
		"user-read-private",
		"user-follow-read",
		"user-library-read",
		"user-top-read",
		"playlist-read-private",
	}
	DefaultYouTubeScopes = []string{
		"https://www.googleapis.com/auth/youtube.readonly",
	}
)

type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
	// AuthURL и TokenURL переопределяют адреса провайдера, если заданы.
	AuthURL  string
	TokenURL string
}

// OAuthProvider - authorization code flow одного провайдера поверх golang.org/x/oauth2.
type OAuthProvider struct {
	conf     *oauth2.Config
	authOpts []oauth2.AuthCodeOption
	now      func() time.Time
}

func NewSpotifyProvider(cfg OAuthConfig) *OAuthProvider {
	if len(cfg.Scopes) == 0 {
		cfg.Scopes = DefaultSpotifyScopes
	}
	return newProvider(cfg, spotify.Endpoint)
}

func NewYouTubeProvider(cfg OAuthConfig) *OAuthProvider {
	if len(cfg.Scopes) == 0 {
		cfg.Scopes = DefaultYouTubeScopes
	}
	// Google выдаёт refresh token только при offline доступе
	return newProvider(cfg, google.Endpoint, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

func newProvider(cfg OAuthConfig, endpoint oauth2.Endpoint, opts ...oauth2.AuthCodeOption) *OAuthProvider {
	if cfg.AuthURL != "" {
		endpoint.AuthURL = cfg.AuthURL
	}
	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}

	return &OAuthProvider{
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     endpoint,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
		},
		authOpts: opts,
		now:      time.Now,
	}
}

func (p *OAuthProvider) AuthCodeURL(state string) string {
	return p.conf.AuthCodeURL(state, p.authOpts...)
}

func (p *OAuthProvider) Exchange(ctx context.Context, code string) (*domain.StreamingAccount, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: missing code", domain.ErrOAuthExchange)
	}

	tok, err := p.conf.Exchange(ctx, code)
	if err != nil {
		var rErr *oauth2.RetrieveError
		if errors.As(err, &rErr) {
			return nil, fmt.Errorf("%w: %v", domain.ErrOAuthExchange, rErr)
		}
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	acc := accountFromToken(tok)
	acc.LastSynced = p.now().UTC()
	return &acc, nil
}

func (p *OAuthProvider) Refresh(ctx context.Context, acc domain.StreamingAccount) (domain.StreamingAccount, bool, error) {
	tok := &oauth2.Token{
		AccessToken:  acc.AccessToken,
		RefreshToken: acc.RefreshToken,
		TokenType:    "Bearer",
		Expiry:       acc.ExpiresAt,
	}
	if tok.Valid() {
		return acc, false, nil
	}
	if acc.RefreshToken == "" {
		return acc, false, fmt.Errorf("%w: access token expired", domain.ErrAccountNotLinked)
	}

	fresh, err := p.conf.TokenSource(ctx, tok).Token()
	if err != nil {
		return acc, false, fmt.Errorf("refresh token: %w", err)
	}

	next := accountFromToken(fresh)
	next.Provider = acc.Provider
	next.AccountID = acc.AccountID
	if next.RefreshToken == "" {
		next.RefreshToken = acc.RefreshToken
	}
	if next.Scope == "" {
		next.Scope = acc.Scope
	}
	next.LastSynced = acc.LastSynced

	return next, true, nil
}

func accountFromToken(tok *oauth2.Token) domain.StreamingAccount {
	acc := domain.StreamingAccount{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    tok.Expiry,
	}
	if scope, ok := tok.Extra("scope").(string); ok {
		acc.Scope = scope
	}
	return acc
}
