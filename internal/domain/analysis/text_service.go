package analysis

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"jan-server/services/vision-chat-api/internal/utils/platformerrors"
)

// TextAnalyzer runs the provider-backed text analyses.
type TextAnalyzer interface {
	AnalyzeSentiment(ctx context.Context, text string) (map[string]any, error)
	SummarizeText(ctx context.Context, text string) (map[string]any, error)
	AnalyzeTextComprehensive(ctx context.Context, text string) (map[string]any, error)
}

// TextService analyzes free text. Provider failures are returned as errors.
type TextService interface {
	Analyze(ctx context.Context, req TextRequest) (*TextResult, error)
}

type textService struct {
	analyzer TextAnalyzer
	log      zerolog.Logger
}

// NewTextService creates a new text analysis service.
func NewTextService(analyzer TextAnalyzer, log zerolog.Logger) TextService {
	return &textService{
		analyzer: analyzer,
		log:      log.With().Str("component", "text-analysis-service").Logger(),
	}
}

func (s *textService) Analyze(ctx context.Context, req TextRequest) (*TextResult, error) {
	start := time.Now()

	analysisType := req.AnalysisType
	if analysisType == "" {
		analysisType = TypeComprehensive
	}
	if err := validateText(ctx, req.Text, analysisType); err != nil {
		return nil, err
	}

	var (
		result map[string]any
		err    error
	)
	switch analysisType {
	case TypeSentiment:
		result, err = s.analyzer.AnalyzeSentiment(ctx, req.Text)
	case TypeSummary:
		result, err = s.analyzer.SummarizeText(ctx, req.Text)
	default:
		result, err = s.analyzer.AnalyzeTextComprehensive(ctx, req.Text)
	}
	if err != nil {
		return nil, err
	}

	s.log.Debug().Str("analysis_type", string(analysisType)).Int("chars", len(req.Text)).Msg("text analyzed")

	return &TextResult{
		Success:        true,
		AnalysisType:   analysisType,
		Analysis:       result,
		WordCount:      len(strings.Fields(req.Text)),
		CharacterCount: utf8.RuneCountInString(req.Text),
		ProcessingTime: processingTime(start),
	}, nil
}

func validateText(ctx context.Context, text string, analysisType Type) error {
	if strings.TrimSpace(text) == "" {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"Text cannot be empty", nil)
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			fmt.Sprintf("Text too long. Maximum length: %d characters", MaxTextLength), nil)
	}
	if !analysisType.Valid() {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			fmt.Sprintf("Unsupported analysis type %q", analysisType), nil)
	}
	return nil
}
