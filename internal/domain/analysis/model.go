package analysis

import (
	"fmt"
	"time"
)

// Type selects which text analysis is performed.
type Type string

// Supported text analysis types.
const (
	TypeSentiment     Type = "sentiment"
	TypeSummary       Type = "summary"
	TypeComprehensive Type = "comprehensive"
)

// MaxTextLength is the longest text accepted for analysis, in characters.
const MaxTextLength = 10000

// DefaultFilename is reported for uploads without a filename.
const DefaultFilename = "unknown.jpg"

// Valid reports whether t is a known analysis type.
func (t Type) Valid() bool {
	switch t {
	case TypeSentiment, TypeSummary, TypeComprehensive:
		return true
	}
	return false
}

// TextRequest is the input to TextService.Analyze.
type TextRequest struct {
	Text         string
	AnalysisType Type
}

// TextResult is the outcome of a text analysis.
type TextResult struct {
	Success        bool           `json:"success"`
	AnalysisType   Type           `json:"analysis_type"`
	Analysis       map[string]any `json:"analysis"`
	WordCount      int            `json:"word_count"`
	CharacterCount int            `json:"character_count"`
	ProcessingTime string         `json:"processing_time"`
}

// ImageUpload is an image received from a caller, held in memory only.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ImageResult is the outcome of an image analysis. Success is false when the
// upload was rejected or the provider failed; Analysis then carries an "error" field.
type ImageResult struct {
	Success        bool           `json:"success"`
	Filename       string         `json:"filename"`
	Analysis       map[string]any `json:"analysis"`
	ProcessingTime string         `json:"processing_time"`
	FileSize       int64          `json:"file_size,omitempty"`
}

func processingTime(start time.Time) string {
	return fmt.Sprintf("%.2fs", time.Since(start).Seconds())
}
