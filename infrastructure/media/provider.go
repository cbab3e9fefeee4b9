// Package media holds the external media provider clients, one per
// media kind, behind a common Provider interface. Provider failures are
// never fatal: the assembler substitutes mock payloads.
package media

import (
	"context"
	"net/http"
	"time"

	"sciscroll/domain/content"
)

// Query is one media search. TopText and BottomText are only used by
// the meme provider, which captions a template image.
type Query struct {
	Text       string
	TopText    string
	BottomText string
}

// Provider searches one external media source. A nil payload with a nil
// error means "nothing found"; both cases fall back to mock media.
type Provider interface {
	Search(ctx context.Context, q Query) (*content.MediaPayload, error)
}

const requestTimeout = 10 * time.Second

// httpClient is shared by all providers. Timeout keeps a slow provider
// from stalling an assembly; there is no retry, a failed call is
// immediately replaced by its mock equivalent.
var httpClient = &http.Client{Timeout: requestTimeout}

// Registry maps media kinds to their providers. Kinds without a
// provider (missing API credentials) are simply absent.
type Registry struct {
	providers map[content.MediaKind]Provider
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[content.MediaKind]Provider)}
}

// Register adds a provider for a kind. Nil providers are ignored so
// constructors can return nil for unconfigured credentials.
func (r *Registry) Register(kind content.MediaKind, p Provider) {
	if p != nil {
		r.providers[kind] = p
	}
}

// Get returns the provider for a kind, if configured.
func (r *Registry) Get(kind content.MediaKind) (Provider, bool) {
	p, ok := r.providers[kind]
	return p, ok
}

// AvailableKinds lists the kinds with a configured provider, in the
// canonical rotation order.
func (r *Registry) AvailableKinds() []content.MediaKind {
	var kinds []content.MediaKind
	for _, kind := range content.MediaKinds {
		if _, ok := r.providers[kind]; ok {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

// apiNameByKind maps media kinds to the provider names reported by the
// health endpoint.
var apiNameByKind = map[content.MediaKind]string{
	content.KindUnsplash:       "unsplash",
	content.KindWikipediaImage: "wikipedia",
	content.KindWikimedia:      "wikimedia",
	content.KindReddit:         "reddit",
	content.KindXKCD:           "xkcd",
	content.KindMeme:           "imgflip",
	content.KindTweet:          "twitter",
}

// Availability reports each provider's configured state by API name,
// for the health endpoint and the orchestrator prompt.
func (r *Registry) Availability() map[string]bool {
	avail := make(map[string]bool, len(apiNameByKind))
	for kind, name := range apiNameByKind {
		_, ok := r.providers[kind]
		avail[name] = ok
	}
	return avail
}
