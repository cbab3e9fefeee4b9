package media

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"sciscroll/domain/content"
)

// WikipediaProvider fetches the lead image of a Wikipedia article via
// the REST summary endpoint. Needs no credentials, so it is always
// available.
type WikipediaProvider struct {
	baseURL string
}

// NewWikipediaProvider creates the provider.
func NewWikipediaProvider() *WikipediaProvider {
	return &WikipediaProvider{baseURL: "https://en.wikipedia.org/api/rest_v1"}
}

type wikipediaImage struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type wikipediaSummary struct {
	Title         string          `json:"title"`
	Thumbnail     *wikipediaImage `json:"thumbnail"`
	OriginalImage *wikipediaImage `json:"originalimage"`
}

// Search resolves the query as an article title and returns its page
// image, or nil when the article has none.
func (p *WikipediaProvider) Search(ctx context.Context, q Query) (*content.MediaPayload, error) {
	title := strings.ReplaceAll(strings.TrimSpace(q.Text), " ", "_")
	endpoint := fmt.Sprintf("%s/page/summary/%s", p.baseURL, url.PathEscape(title))

	var summary wikipediaSummary
	if err := getJSON(ctx, endpoint, nil, &summary); err != nil {
		return nil, err
	}

	image := summary.OriginalImage
	if image == nil {
		image = summary.Thumbnail
	}
	if image == nil || image.Source == "" {
		return nil, nil
	}

	return &content.MediaPayload{
		URL:         image.Source,
		Source:      "Wikipedia",
		Attribution: fmt.Sprintf("Image from Wikipedia article: %s", summary.Title),
		Width:       &image.Width,
		Height:      &image.Height,
	}, nil
}

// getJSON performs a GET with optional headers and decodes the JSON
// body. Non-2xx statuses are errors.
func getJSON(ctx context.Context, endpoint string, headers map[string]string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	for k, val := range headers {
		req.Header.Set(k, val)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("GET %s: status %d", endpoint, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
