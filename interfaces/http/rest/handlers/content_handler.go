package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"sciscroll/application/assembler"
	"sciscroll/application/validation"
	"sciscroll/domain/engagement"
	"sciscroll/infrastructure/topicgraph"
	"sciscroll/pkg/utils"
)

// ContentHandler handles content generation HTTP requests
type ContentHandler struct {
	assembler *assembler.Assembler
	logger    *zap.Logger
}

// NewContentHandler creates a new content handler
func NewContentHandler(asm *assembler.Assembler, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{
		assembler: asm,
		logger:    logger,
	}
}

// InitialRequest represents the request body for starting a topic
type InitialRequest struct {
	Topic string `json:"topic" validate:"required,max=200"`
}

// GenerateRequest represents the request body for a follow-up batch.
// All fields except current_node are optional; absent telemetry is
// coerced to a default sample rather than rejected.
type GenerateRequest struct {
	CurrentNode   string                 `json:"current_node" validate:"required,max=200"`
	TimeData      map[string]interface{} `json:"time_data,omitempty"`
	VisitedNodes  []string               `json:"visited_nodes,omitempty"`
	LastParagraph string                 `json:"last_paragraph,omitempty"`
	TopicPath     []string               `json:"topic_path,omitempty"`
}

// Initial handles POST /api/initial
func (h *ContentHandler) Initial(w http.ResponseWriter, r *http.Request) {
	defer h.recoverGeneration(w, "initial")

	var req InitialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	req.Topic = strings.TrimSpace(req.Topic)
	if err := utils.ValidateStruct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	resp := h.assembler.InitialLive(r.Context(), req.Topic)

	if problems := validation.ValidateInitial(resp); len(problems) > 0 {
		h.logger.Warn("Initial response failed validation",
			zap.String("topic", req.Topic),
			zap.Strings("problems", problems),
		)
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// Generate handles POST /api/generate
func (h *ContentHandler) Generate(w http.ResponseWriter, r *http.Request) {
	defer h.recoverGeneration(w, "generate")

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	req.CurrentNode = strings.TrimSpace(req.CurrentNode)
	if err := utils.ValidateStruct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	sample := engagement.Sanitize(req.TimeData)
	if sample.CurrentNodeID == "" {
		sample.CurrentNodeID = req.CurrentNode
	}
	score := engagement.ComputeScore(sample)
	strategy := engagement.SelectStrategy(score)
	topicID := topicgraph.Slugify(req.CurrentNode)

	blocks, nextNodes := h.assembler.GenerateLive(
		r.Context(), topicID, strategy, req.VisitedNodes, req.LastParagraph, score)

	resp := &assembler.GeneratedContent{
		ContentBlocks:   blocks,
		NextNodes:       nextNodes,
		StrategyUsed:    strategy,
		EngagementScore: score,
	}

	if problems := validation.ValidateGenerate(resp); len(problems) > 0 {
		h.logger.Warn("Generated response failed validation",
			zap.String("topic", topicID),
			zap.String("strategy", string(strategy)),
			zap.Strings("problems", problems),
		)
	}

	h.logger.Info("Content generated",
		zap.String("topic", topicID),
		zap.String("strategy", string(strategy)),
		zap.Float64("engagement_score", score),
		zap.Int("blocks", len(blocks)),
		zap.Int("next_nodes", len(nextNodes)),
	)

	h.respondJSON(w, http.StatusOK, resp)
}

// recoverGeneration converts an assembly panic into a generic failure
// response instead of leaking internals to the caller.
func (h *ContentHandler) recoverGeneration(w http.ResponseWriter, operation string) {
	if rec := recover(); rec != nil {
		h.logger.Error("Content generation failed",
			zap.String("operation", operation),
			zap.Any("panic", rec),
		)
		h.respondError(w, http.StatusInternalServerError, "Content generation failed")
	}
}

func (h *ContentHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *ContentHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    status,
	})
}
