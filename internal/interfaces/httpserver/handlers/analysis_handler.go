package handlers

import (
	"context"

	"jan-server/services/vision-chat-api/internal/domain/analysis"
	"jan-server/services/vision-chat-api/internal/infrastructure/metrics"
)

// AnalysisHandler handles text and image analysis HTTP requests.
type AnalysisHandler struct {
	text  analysis.TextService
	image analysis.ImageService
	rules analysis.ImageRules
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(text analysis.TextService, image analysis.ImageService, rules analysis.ImageRules) *AnalysisHandler {
	return &AnalysisHandler{text: text, image: image, rules: rules}
}

// ImageRules returns the upload limits enforced before an image reaches the service.
func (h *AnalysisHandler) ImageRules() analysis.ImageRules {
	return h.rules
}

// AnalyzeText runs a text analysis.
func (h *AnalysisHandler) AnalyzeText(ctx context.Context, req analysis.TextRequest) (*analysis.TextResult, error) {
	result, err := h.text.Analyze(ctx, req)
	metrics.RecordAnalysis("text", err == nil)
	return result, err
}

// AnalyzeImage runs an image analysis.
func (h *AnalysisHandler) AnalyzeImage(ctx context.Context, upload analysis.ImageUpload) *analysis.ImageResult {
	result := h.image.Analyze(ctx, upload)
	metrics.RecordAnalysis("image", result.Success)
	return result
}
