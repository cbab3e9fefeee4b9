package content

import (
	"fmt"

	"github.com/google/uuid"
)

// Strategy is the content-selection mode chosen from the engagement score.
type Strategy string

const (
	StrategyDeeper Strategy = "deeper"
	StrategyBranch Strategy = "branch"
	StrategyPivot  Strategy = "pivot"
)

// Strategies lists every valid strategy in fallback order: when one
// strategy has no unvisited subtopics left, the others are tried in
// this order.
var Strategies = []Strategy{StrategyDeeper, StrategyBranch, StrategyPivot}

// IsValidStrategy reports whether s is one of the known strategies.
func IsValidStrategy(s Strategy) bool {
	switch s {
	case StrategyDeeper, StrategyBranch, StrategyPivot:
		return true
	}
	return false
}

// MediaKind identifies the source type of a media block.
type MediaKind string

const (
	KindUnsplash       MediaKind = "unsplash"
	KindWikipediaImage MediaKind = "wikipedia_image"
	KindWikimedia      MediaKind = "wikimedia"
	KindReddit         MediaKind = "reddit"
	KindXKCD           MediaKind = "xkcd"
	KindMeme           MediaKind = "meme"
	KindTweet          MediaKind = "tweet"
)

// MediaKinds is the full rotation set used by the variety tracker.
var MediaKinds = []MediaKind{
	KindUnsplash,
	KindWikipediaImage,
	KindWikimedia,
	KindReddit,
	KindXKCD,
	KindMeme,
	KindTweet,
}

// IsMediaKind reports whether k is a recognized media kind.
func IsMediaKind(k MediaKind) bool {
	for _, known := range MediaKinds {
		if k == known {
			return true
		}
	}
	return false
}

// BlockTypeText is the type tag for text blocks; every other valid type
// is a MediaKind.
const BlockTypeText = "text"

// MediaPayload carries the displayable media data for a media block.
// URL and Source are required for every kind; the remaining fields are
// kind-specific. Width and Height are pointers because embed-style
// kinds (reddit, tweet) have no intrinsic dimensions and serialize
// them as null.
type MediaPayload struct {
	URL         string `json:"url"`
	Source      string `json:"source"`
	Attribution string `json:"attribution"`
	Width       *int   `json:"width"`
	Height      *int   `json:"height"`
	Description string `json:"description,omitempty"`
	Title       string `json:"title,omitempty"`
	AltText     string `json:"alt_text,omitempty"`
	Score       int    `json:"score,omitempty"`
	Text        string `json:"text,omitempty"`
	Likes       int    `json:"likes,omitempty"`
	Retweets    int    `json:"retweets,omitempty"`
}

// Block is one unit of the content feed. Blocks come in text/media
// pairs sharing a GroupID; the GroupRole vocabulary differs between
// text and media blocks. Blocks are created fresh per response and
// never mutated afterwards.
type Block struct {
	ID        string        `json:"id"`
	Type      string        `json:"type"`
	Content   string        `json:"content"`
	GroupID   string        `json:"group_id"`
	GroupRole string        `json:"group_role"`
	Media     *MediaPayload `json:"media,omitempty"`
}

// IsText reports whether the block is a text block.
func (b Block) IsText() bool {
	return b.Type == BlockTypeText
}

// NewID generates a short unique ID with a prefix, e.g. "grp-1a2b3c4d".
func NewID(prefix string) string {
	id := uuid.New()
	short := fmt.Sprintf("%x", id[:4])
	if prefix == "" {
		return short
	}
	return prefix + "-" + short
}
