package completion

import "context"

// Provider is a generative-AI backend that turns prompts into free text.
type Provider interface {
	// Name identifies the provider in logs, metrics and health output.
	Name() string

	// Generate returns the provider's text reply to a prompt.
	Generate(ctx context.Context, prompt string) (string, error)

	// GenerateWithImage returns the provider's text reply to a prompt about an image.
	GenerateWithImage(ctx context.Context, image []byte, mimeType, prompt string) (string, error)
}
