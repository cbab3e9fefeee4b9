// Package orchestrator asks an LLM to plan the next batch of content
// groups. The planner is optional: when it is unavailable or fails, the
// assembler falls back entirely to the deterministic mock path.
package orchestrator

import (
	"context"

	"sciscroll/domain/content"
)

// CandidateNode is an unvisited topic-graph node offered to the planner
// as a possible next step, tagged with the strategy it belongs to.
type CandidateNode struct {
	ID       string           `json:"id"`
	Label    string           `json:"label"`
	Strategy content.Strategy `json:"strategy"`
}

// PlanRequest describes one planning call: where the user is, how
// engaged they are, and which media providers can be drawn on.
type PlanRequest struct {
	TopicLabel      string
	Description     string
	Strategy        content.Strategy
	EngagementScore float64
	VisitedNodes    []string
	LastParagraph   string
	AvailableMedia  []content.MediaKind
	CandidateNodes  []CandidateNode
}

// MediaRequest is the planner's ask for one media block. TopText and
// BottomText are only set for meme requests.
type MediaRequest struct {
	Type       string `json:"type"`
	Query      string `json:"query"`
	TopText    string `json:"top_text,omitempty"`
	BottomText string `json:"bottom_text,omitempty"`
}

// PlanGroup is one planned text/media pair. Either field may be empty,
// but not both.
type PlanGroup struct {
	Text           string        `json:"text"`
	MediaRequest   *MediaRequest `json:"media_request"`
	GroupRoleText  string        `json:"group_role_text"`
	GroupRoleMedia string        `json:"group_role_media"`
}

// ContentPlan is the planner's full answer: ordered content groups plus
// suggested next node slugs.
type ContentPlan struct {
	Groups    []PlanGroup `json:"groups"`
	NextNodes []string    `json:"next_nodes"`
}

// Planner produces a content plan for a request. Implementations must
// confine failures to the returned error; any error (or a plan with no
// groups) makes the caller fall back to mock assembly.
type Planner interface {
	GeneratePlan(ctx context.Context, req PlanRequest) (*ContentPlan, error)
}
