package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"sciscroll/infrastructure/media"
)

// HealthHandler reports service status and which external integrations
// are live.
type HealthHandler struct {
	providers *media.Registry
	mockMode  bool
	logger    *zap.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(providers *media.Registry, mockMode bool, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		providers: providers,
		mockMode:  mockMode,
		logger:    logger,
	}
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status        string          `json:"status"`
	MockMode      bool            `json:"mock_mode"`
	AvailableAPIs map[string]bool `json:"available_apis"`
}

// Health handles GET /api/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	available := map[string]bool{}
	if h.providers != nil {
		available = h.providers.Availability()
	}
	available["openai"] = !h.mockMode

	resp := HealthResponse{
		Status:        "healthy",
		MockMode:      h.mockMode,
		AvailableAPIs: available,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("Failed to encode health response", zap.Error(err))
	}
}
