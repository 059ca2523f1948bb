package streaming

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const YouTubeBaseURL = "https://www.googleapis.com/youtube/v3"

var youtubeResources = map[string]string{
	"playlists": "playlists?part=snippet,contentDetails&mine=true&maxResults=50",
	"channel":   "channels?part=snippet,statistics&mine=true",
}

type YouTube struct {
	*client
	baseURL string
}

func NewYouTube(baseURL string, opts Options, log logger.Logger) *YouTube {
	if baseURL == "" {
		baseURL = YouTubeBaseURL
	}
	return &YouTube{
		client:  newClient(opts, log),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (y *YouTube) AccountID(ctx context.Context, accessToken string) (string, error) {
	body, err := y.do(ctx, y.baseURL+"/channels?part=id&mine=true", accessToken)
	if err != nil {
		return "", err
	}

	var resp struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}
	if err = json.Unmarshal(body, &resp); err != nil || len(resp.Items) == 0 {
		return "", fmt.Errorf("%w: youtube account has no channel", domain.ErrUpstream)
	}
	return resp.Items[0].ID, nil
}

func (y *YouTube) Fetch(ctx context.Context, resource, accessToken string, all bool) (json.RawMessage, error) {
	path, ok := youtubeResources[resource]
	if !ok {
		return nil, fmt.Errorf("%w: youtube %s", domain.ErrUnknownResource, resource)
	}

	u := y.baseURL + "/" + path
	if !all {
		return y.get(ctx, u, accessToken)
	}
	return y.collect(ctx, u, accessToken, youtubePager(u))
}

// youtubePager строит следующую страницу из nextPageToken.
func youtubePager(first string) pager {
	return func(body json.RawMessage) ([]json.RawMessage, string, error) {
		var page struct {
			Items         []json.RawMessage `json:"items"`
			NextPageToken string            `json:"nextPageToken"`
		}
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, "", err
		}
		if page.NextPageToken == "" {
			return page.Items, "", nil
		}

		u, err := url.Parse(first)
		if err != nil {
			return nil, "", err
		}
		q := u.Query()
		q.Set("pageToken", page.NextPageToken)
		u.RawQuery = q.Encode()

		return page.Items, u.String(), nil
	}
}
