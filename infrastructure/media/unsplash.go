package media

import (
	"context"
	"fmt"
	"net/url"

	"sciscroll/domain/content"
)

// UnsplashProvider searches Unsplash photos. Requires an access key;
// returns nil from the constructor when unconfigured so the registry
// skips it.
type UnsplashProvider struct {
	baseURL   string
	accessKey string
}

// NewUnsplashProvider creates the provider, or nil without a key.
func NewUnsplashProvider(accessKey string) *UnsplashProvider {
	if accessKey == "" {
		return nil
	}
	return &UnsplashProvider{
		baseURL:   "https://api.unsplash.com",
		accessKey: accessKey,
	}
}

type unsplashSearchResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
		Width  int `json:"width"`
		Height int `json:"height"`
		User   struct {
			Name string `json:"name"`
		} `json:"user"`
		Description string `json:"description"`
	} `json:"results"`
}

// Search returns the first matching photo, or nil when nothing matches.
func (p *UnsplashProvider) Search(ctx context.Context, q Query) (*content.MediaPayload, error) {
	params := url.Values{
		"query":    {q.Text},
		"per_page": {"1"},
	}
	endpoint := p.baseURL + "/search/photos?" + params.Encode()
	headers := map[string]string{"Authorization": "Client-ID " + p.accessKey}

	var result unsplashSearchResponse
	if err := getJSON(ctx, endpoint, headers, &result); err != nil {
		return nil, err
	}
	if len(result.Results) == 0 {
		return nil, nil
	}

	photo := result.Results[0]
	return &content.MediaPayload{
		URL:         photo.URLs.Regular,
		Source:      "Unsplash",
		Attribution: fmt.Sprintf("Photo by %s on Unsplash", photo.User.Name),
		Width:       &photo.Width,
		Height:      &photo.Height,
		Description: photo.Description,
	}, nil
}
