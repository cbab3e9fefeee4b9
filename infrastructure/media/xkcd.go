package media

import (
	"context"
	"fmt"
	"strings"

	"sciscroll/domain/content"
)

// XKCDProvider serves xkcd comics. xkcd has no search API, so a small
// curated index maps science keywords to well-known comics; anything
// outside the index yields nothing and falls back to mock media.
type XKCDProvider struct {
	baseURL string
}

// NewXKCDProvider creates the provider.
func NewXKCDProvider() *XKCDProvider {
	return &XKCDProvider{baseURL: "https://xkcd.com"}
}

// comicsByKeyword indexes comics the orchestrator is likely to ask for.
var comicsByKeyword = map[string]int{
	"correlation":      552,
	"standards":        927,
	"purity":           435,
	"physics":          435,
	"climate":          1732,
	"temperature":      1732,
	"machine learning": 1838,
	"neural":           1838,
	"explained":        1053,
}

type xkcdComic struct {
	Num   int    `json:"num"`
	Title string `json:"title"`
	Img   string `json:"img"`
	Alt   string `json:"alt"`
}

// Search matches the query against the curated index and fetches the
// comic's metadata.
func (p *XKCDProvider) Search(ctx context.Context, q Query) (*content.MediaPayload, error) {
	query := strings.ToLower(q.Text)

	num := 0
	for keyword, n := range comicsByKeyword {
		if strings.Contains(query, keyword) {
			num = n
			break
		}
	}
	if num == 0 {
		return nil, nil
	}

	var comic xkcdComic
	endpoint := fmt.Sprintf("%s/%d/info.0.json", p.baseURL, num)
	if err := getJSON(ctx, endpoint, nil, &comic); err != nil {
		return nil, err
	}
	if comic.Img == "" {
		return nil, nil
	}

	return &content.MediaPayload{
		URL:         comic.Img,
		Source:      "xkcd",
		Attribution: fmt.Sprintf("xkcd #%d: %s", comic.Num, comic.Title),
		AltText:     comic.Alt,
		Title:       fmt.Sprintf("xkcd: %s", comic.Title),
	}, nil
}
