package media

import (
	"context"
	"fmt"
	"net/url"

	"sciscroll/domain/content"
)

// TwitterProvider searches recent tweets through the v2 API. Requires a
// bearer token.
type TwitterProvider struct {
	baseURL     string
	bearerToken string
}

// NewTwitterProvider creates the provider, or nil without a token.
func NewTwitterProvider(bearerToken string) *TwitterProvider {
	if bearerToken == "" {
		return nil
	}
	return &TwitterProvider{
		baseURL:     "https://api.twitter.com/2",
		bearerToken: bearerToken,
	}
}

type twitterSearchResponse struct {
	Data []struct {
		ID            string `json:"id"`
		Text          string `json:"text"`
		AuthorID      string `json:"author_id"`
		PublicMetrics struct {
			LikeCount    int `json:"like_count"`
			RetweetCount int `json:"retweet_count"`
		} `json:"public_metrics"`
	} `json:"data"`
}

// Search returns the first matching recent tweet, or nil when none
// match.
func (p *TwitterProvider) Search(ctx context.Context, q Query) (*content.MediaPayload, error) {
	params := url.Values{
		"query":        {q.Text + " -is:retweet lang:en"},
		"max_results":  {"10"},
		"tweet.fields": {"public_metrics,author_id"},
	}
	endpoint := p.baseURL + "/tweets/search/recent?" + params.Encode()
	headers := map[string]string{"Authorization": "Bearer " + p.bearerToken}

	var result twitterSearchResponse
	if err := getJSON(ctx, endpoint, headers, &result); err != nil {
		return nil, err
	}
	if len(result.Data) == 0 {
		return nil, nil
	}

	tweet := result.Data[0]
	return &content.MediaPayload{
		URL:         fmt.Sprintf("https://twitter.com/i/web/status/%s", tweet.ID),
		Source:      "Twitter/X",
		Attribution: fmt.Sprintf("Tweet %s", tweet.ID),
		Text:        tweet.Text,
		Likes:       tweet.PublicMetrics.LikeCount,
		Retweets:    tweet.PublicMetrics.RetweetCount,
	}, nil
}
