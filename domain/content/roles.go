package content

// Group roles describe how a block functions within its text/media
// pair. Text blocks and media blocks draw from separate vocabularies;
// validation treats a role from the wrong vocabulary as an error.

// TextRoles is the valid group_role set for text blocks.
var TextRoles = map[string]bool{
	"explanation": true,
	"caption":     true,
	"context":     true,
	"funfact":     true,
}

// MediaRoles is the valid group_role set for media blocks.
var MediaRoles = map[string]bool{
	"visual":     true,
	"diagram":    true,
	"discussion": true,
	"humor":      true,
	"social":     true,
}

var mediaRoleByKind = map[MediaKind]string{
	KindUnsplash:       "visual",
	KindWikipediaImage: "visual",
	KindWikimedia:      "diagram",
	KindReddit:         "discussion",
	KindXKCD:           "humor",
	KindMeme:           "humor",
	KindTweet:          "social",
}

var textRoleByKind = map[MediaKind]string{
	KindUnsplash:       "explanation",
	KindWikipediaImage: "explanation",
	KindWikimedia:      "caption",
	KindReddit:         "context",
	KindXKCD:           "funfact",
	KindMeme:           "funfact",
	KindTweet:          "context",
}

// MediaRoleFor returns the default group role for a media block of the
// given kind.
func MediaRoleFor(kind MediaKind) string {
	if role, ok := mediaRoleByKind[kind]; ok {
		return role
	}
	return "visual"
}

// TextRoleFor returns the group role for the text block paired with a
// media block of the given kind.
func TextRoleFor(kind MediaKind) string {
	if role, ok := textRoleByKind[kind]; ok {
		return role
	}
	return "explanation"
}
