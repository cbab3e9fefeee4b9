package content

import "fmt"

// MockMedia synthesizes a placeholder media payload for a kind. The
// shape is deterministic in the topic label and slug so the mock path
// and external-provider fallbacks always produce schema-valid blocks.
func MockMedia(kind MediaKind, topicLabel, topicSlug string) *MediaPayload {
	switch kind {
	case KindWikipediaImage:
		return &MediaPayload{
			URL:         fmt.Sprintf("https://upload.wikimedia.org/placeholder-%s.jpg", topicSlug),
			Source:      "Wikipedia",
			Attribution: fmt.Sprintf("Image from Wikipedia article: %s", topicLabel),
			Width:       intPtr(800),
			Height:      intPtr(600),
		}
	case KindWikimedia:
		return &MediaPayload{
			URL:         fmt.Sprintf("https://upload.wikimedia.org/commons/placeholder-%s-diagram.svg", topicSlug),
			Source:      "Wikimedia Commons",
			Attribution: fmt.Sprintf("Diagram from Wikimedia Commons: %s", topicLabel),
			Width:       intPtr(1200),
			Height:      intPtr(900),
			Description: fmt.Sprintf("Scientific diagram illustrating %s", topicLabel),
		}
	case KindReddit:
		return &MediaPayload{
			URL:         fmt.Sprintf("https://reddit.com/r/science/placeholder-%s", topicSlug),
			Source:      "r/science",
			Attribution: fmt.Sprintf("Discussion about %s on r/science", topicLabel),
			Title:       fmt.Sprintf("Fascinating new research on %s", topicLabel),
			Score:       1542,
		}
	case KindXKCD:
		return &MediaPayload{
			URL:         fmt.Sprintf("https://imgs.xkcd.com/comics/placeholder-%s.png", topicSlug),
			Source:      "xkcd",
			Attribution: fmt.Sprintf("xkcd comic related to %s", topicLabel),
			Width:       intPtr(740),
			Height:      intPtr(420),
			AltText:     fmt.Sprintf("A humorous take on %s", topicLabel),
			Title:       fmt.Sprintf("xkcd: %s", topicLabel),
		}
	case KindMeme:
		return &MediaPayload{
			URL:         fmt.Sprintf("https://i.imgflip.com/placeholder-%s.jpg", topicSlug),
			Source:      "Imgflip",
			Attribution: fmt.Sprintf("Science meme about %s", topicLabel),
			Width:       intPtr(500),
			Height:      intPtr(500),
		}
	case KindTweet:
		return &MediaPayload{
			URL:         fmt.Sprintf("https://twitter.com/sciencemagazine/status/placeholder-%s", topicSlug),
			Source:      "Twitter/X",
			Attribution: "@sciencemagazine",
			Text:        fmt.Sprintf("Exciting developments in %s research! New findings suggest...", topicLabel),
			Likes:       234,
			Retweets:    87,
		}
	default:
		// Unknown kinds get the unsplash shape, same as KindUnsplash.
		return &MediaPayload{
			URL:         fmt.Sprintf("https://images.unsplash.com/placeholder-%s?w=1080&h=720", topicSlug),
			Source:      "Unsplash",
			Attribution: fmt.Sprintf("Photo related to %s on Unsplash", topicLabel),
			Width:       intPtr(1080),
			Height:      intPtr(720),
		}
	}
}

func intPtr(v int) *int {
	return &v
}
