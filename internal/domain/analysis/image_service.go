package analysis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ImageAnalyzer runs the provider-backed image analysis. On failure it returns
// a fallback analysis alongside the error.
type ImageAnalyzer interface {
	AnalyzeImage(ctx context.Context, image []byte, mimeType string) (map[string]any, error)
}

// ImageRules bounds the uploads ImageService accepts.
type ImageRules struct {
	MaxFileSize  int64
	AllowedTypes []string
}

// ImageService analyzes uploaded images. It never returns an error: rejected
// uploads and provider failures are reported with Success=false.
type ImageService interface {
	Analyze(ctx context.Context, upload ImageUpload) *ImageResult
}

type imageService struct {
	analyzer ImageAnalyzer
	rules    ImageRules
	log      zerolog.Logger
}

// NewImageService creates a new image analysis service.
func NewImageService(analyzer ImageAnalyzer, rules ImageRules, log zerolog.Logger) ImageService {
	return &imageService{
		analyzer: analyzer,
		rules:    rules,
		log:      log.With().Str("component", "image-analysis-service").Logger(),
	}
}

func (s *imageService) Analyze(ctx context.Context, upload ImageUpload) *ImageResult {
	start := time.Now()

	result := &ImageResult{
		Filename: upload.Filename,
		FileSize: int64(len(upload.Data)),
	}
	if result.Filename == "" {
		result.Filename = DefaultFilename
	}

	if reason := s.reject(upload); reason != "" {
		s.log.Warn().Str("filename", result.Filename).Str("content_type", upload.ContentType).Msg(reason)
		result.Analysis = map[string]any{"error": reason}
		result.ProcessingTime = processingTime(start)
		return result
	}

	analysis, err := s.analyzer.AnalyzeImage(ctx, upload.Data, NormalizeImageType(upload.ContentType))
	result.Analysis = analysis
	result.Success = err == nil
	result.ProcessingTime = processingTime(start)

	if err != nil {
		s.log.Error().Err(err).Str("filename", result.Filename).Msg("image analysis failed")
	}
	return result
}

func (s *imageService) reject(upload ImageUpload) string {
	if !s.rules.Allows(upload.ContentType) {
		return fmt.Sprintf("Invalid file type. Allowed types: %s", strings.Join(s.rules.AllowedTypes, ", "))
	}
	if len(upload.Data) == 0 {
		return "File is empty"
	}
	if s.rules.MaxFileSize > 0 && int64(len(upload.Data)) > s.rules.MaxFileSize {
		return fmt.Sprintf("File too large. Maximum size: %.1fMB", float64(s.rules.MaxFileSize)/(1024*1024))
	}
	return ""
}

// Allows reports whether the MIME type is one of the accepted upload types.
func (r ImageRules) Allows(contentType string) bool {
	normalized := NormalizeImageType(contentType)
	for _, t := range r.AllowedTypes {
		if NormalizeImageType(t) == normalized {
			return true
		}
	}
	return false
}

// NormalizeImageType lowercases a MIME type, drops parameters and maps image/jpg to image/jpeg.
func NormalizeImageType(mimeType string) string {
	mt, _, _ := strings.Cut(mimeType, ";")
	mt = strings.ToLower(strings.TrimSpace(mt))
	if mt == "image/jpg" {
		return "image/jpeg"
	}
	return mt
}
