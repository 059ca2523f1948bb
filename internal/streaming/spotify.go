package streaming

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const SpotifyBaseURL = "https://api.spotify.com/v1"

var spotifyResources = map[string]string{
	"me":          "me",
	"following":   "me/following?type=artist&limit=50",
	"tracks":      "me/tracks?limit=50",
	"albums":      "me/albums?limit=50",
	"playlists":   "me/playlists?limit=50",
	"top-artists": "me/top/artists?limit=50",
	"top-tracks":  "me/top/tracks?limit=50",
}

// Spotify - клиент Spotify Web API только для чтения.
type Spotify struct {
	*client
	baseURL string
}

func NewSpotify(baseURL string, opts Options, log logger.Logger) *Spotify {
	if baseURL == "" {
		baseURL = SpotifyBaseURL
	}
	return &Spotify{
		client:  newClient(opts, log),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *Spotify) AccountID(ctx context.Context, accessToken string) (string, error) {
	body, err := s.do(ctx, s.baseURL+"/me", accessToken)
	if err != nil {
		return "", err
	}

	var profile struct {
		ID string `json:"id"`
	}
	if err = json.Unmarshal(body, &profile); err != nil || profile.ID == "" {
		return "", fmt.Errorf("%w: spotify profile has no id", domain.ErrUpstream)
	}
	return profile.ID, nil
}

func (s *Spotify) Fetch(ctx context.Context, resource, accessToken string, all bool) (json.RawMessage, error) {
	path, ok := spotifyResources[resource]
	if !ok {
		return nil, fmt.Errorf("%w: spotify %s", domain.ErrUnknownResource, resource)
	}

	url := s.baseURL + "/" + path
	if !all || resource == "me" {
		return s.get(ctx, url, accessToken)
	}
	return s.collect(ctx, url, accessToken, spotifyPage)
}

// spotifyPage понимает обычный paging object и курсорный ответ /me/following.
func spotifyPage(body json.RawMessage) ([]json.RawMessage, string, error) {
	type paging struct {
		Items []json.RawMessage `json:"items"`
		Next  *string           `json:"next"`
	}
	var page struct {
		paging
		Artists *paging `json:"artists"`
	}
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, "", err
	}

	p := page.paging
	if page.Artists != nil {
		p = *page.Artists
	}

	next := ""
	if p.Next != nil {
		next = *p.Next
	}
	return p.Items, next, nil
}
