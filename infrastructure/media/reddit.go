package media

import (
	"context"
	"fmt"
	"net/url"

	"sciscroll/domain/content"
)

// RedditProvider searches r/science posts through Reddit's public JSON
// listing. Reddit requires a descriptive User-Agent; without one
// configured the provider is disabled.
type RedditProvider struct {
	baseURL   string
	userAgent string
}

// NewRedditProvider creates the provider, or nil without a user agent.
func NewRedditProvider(userAgent string) *RedditProvider {
	if userAgent == "" {
		return nil
	}
	return &RedditProvider{
		baseURL:   "https://www.reddit.com",
		userAgent: userAgent,
	}
}

type redditListing struct {
	Data struct {
		Children []struct {
			Data struct {
				Title     string `json:"title"`
				Permalink string `json:"permalink"`
				Score     int    `json:"score"`
				Author    string `json:"author"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// Search returns the top matching r/science post, or nil when the
// search is empty.
func (p *RedditProvider) Search(ctx context.Context, q Query) (*content.MediaPayload, error) {
	params := url.Values{
		"q":           {q.Text},
		"restrict_sr": {"1"},
		"sort":        {"top"},
		"limit":       {"1"},
	}
	endpoint := p.baseURL + "/r/science/search.json?" + params.Encode()
	headers := map[string]string{"User-Agent": p.userAgent}

	var listing redditListing
	if err := getJSON(ctx, endpoint, headers, &listing); err != nil {
		return nil, err
	}
	if len(listing.Data.Children) == 0 {
		return nil, nil
	}

	post := listing.Data.Children[0].Data
	return &content.MediaPayload{
		URL:         p.baseURL + post.Permalink,
		Source:      "r/science",
		Attribution: fmt.Sprintf("Posted by u/%s on r/science", post.Author),
		Title:       post.Title,
		Score:       post.Score,
	}, nil
}
