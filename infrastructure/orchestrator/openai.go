package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// DefaultModel is the chat model used when none is configured.
const DefaultModel = "gpt-4o-mini"

const planTimeout = 30 * time.Second

// OpenAIPlanner generates content plans through the OpenAI chat API.
type OpenAIPlanner struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// NewOpenAIPlanner creates a planner. An empty API key is an error;
// callers treat that as mock mode and pass no planner at all.
func NewOpenAIPlanner(apiKey, model string, logger *zap.Logger) (*OpenAIPlanner, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("orchestrator API key is required")
	}
	if model == "" {
		model = DefaultModel
	}
	return &OpenAIPlanner{
		client: openai.NewClient(apiKey),
		model:  model,
		logger: logger,
	}, nil
}

// GeneratePlan asks the model for a content plan and parses its JSON
// reply. A reply without content groups is an error so callers fall
// back to mock assembly instead of serving an empty response.
func (p *OpenAIPlanner) GeneratePlan(ctx context.Context, req PlanRequest) (*ContentPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, planTimeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(req)},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("plan completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("plan completion: no choices returned")
	}

	plan, err := parsePlan(resp.Choices[0].Message.Content)
	if err != nil {
		p.logger.Warn("Discarding unparseable content plan",
			zap.String("topic", req.TopicLabel),
			zap.Error(err),
		)
		return nil, err
	}
	return plan, nil
}

// parsePlan decodes the model's JSON reply, tolerating markdown code
// fences despite the prompt forbidding them.
func parsePlan(raw string) (*ContentPlan, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var plan ContentPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return nil, fmt.Errorf("parse plan JSON: %w", err)
	}
	if len(plan.Groups) == 0 {
		return nil, fmt.Errorf("plan has no content groups")
	}
	return &plan, nil
}
