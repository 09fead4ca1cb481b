// Package visionchatapi implements the vision-chat-api service, a gateway that
// forwards image, text and chat requests to a generative AI provider.
//
// The service provides:
//   - Chat with in-memory conversation tracking (message, list, get, delete, stats)
//   - Image analysis over JPEG, PNG and WebP uploads
//   - Sentiment, summary and comprehensive text analysis
//   - Gemini and OpenAI-compatible providers selected by AI_PROVIDER
//
// Conversations live for the lifetime of the process.
package visionchatapi
