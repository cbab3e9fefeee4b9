package media

import (
	"context"
	"fmt"
	"net/url"

	"sciscroll/domain/content"
)

// WikimediaProvider searches Wikimedia Commons for diagrams and
// illustrations. Needs no credentials.
type WikimediaProvider struct {
	baseURL string
}

// NewWikimediaProvider creates the provider.
func NewWikimediaProvider() *WikimediaProvider {
	return &WikimediaProvider{baseURL: "https://commons.wikimedia.org/w/api.php"}
}

type commonsSearchResponse struct {
	Query struct {
		Pages map[string]struct {
			Title     string `json:"title"`
			ImageInfo []struct {
				URL    string `json:"url"`
				Width  int    `json:"width"`
				Height int    `json:"height"`
			} `json:"imageinfo"`
		} `json:"pages"`
	} `json:"query"`
}

// Search returns the first matching Commons file, or nil when the
// search comes up empty.
func (p *WikimediaProvider) Search(ctx context.Context, q Query) (*content.MediaPayload, error) {
	params := url.Values{
		"action":    {"query"},
		"format":    {"json"},
		"generator": {"search"},
		"gsrsearch": {q.Text},
		"gsrlimit":  {"1"},
		// Namespace 6 restricts the search to files.
		"gsrnamespace": {"6"},
		"prop":         {"imageinfo"},
		"iiprop":       {"url|size"},
	}

	var result commonsSearchResponse
	if err := getJSON(ctx, p.baseURL+"?"+params.Encode(), nil, &result); err != nil {
		return nil, err
	}

	for _, page := range result.Query.Pages {
		if len(page.ImageInfo) == 0 || page.ImageInfo[0].URL == "" {
			continue
		}
		info := page.ImageInfo[0]
		return &content.MediaPayload{
			URL:         info.URL,
			Source:      "Wikimedia Commons",
			Attribution: fmt.Sprintf("Diagram from Wikimedia Commons: %s", page.Title),
			Width:       &info.Width,
			Height:      &info.Height,
			Description: page.Title,
		}, nil
	}
	return nil, nil
}
